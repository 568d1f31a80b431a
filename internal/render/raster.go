package render

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847

type faceKey struct {
	size float32
	bold bool
}

// Rasterizer draws display lists into RGBA images. It is safe for
// concurrent use; font faces are cached per size and weight.
type Rasterizer struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// NewRasterizer loads the bundled Go fonts. If they cannot be parsed the
// rasterizer falls back to the fixed 7x13 bitmap face.
func NewRasterizer() *Rasterizer {
	r := &Rasterizer{faces: make(map[faceKey]font.Face)}

	var err error
	if r.regular, err = opentype.Parse(goregular.TTF); err != nil {
		slog.Warn("regular font unavailable, using bitmap face", "error", err)
	}
	if r.bold, err = opentype.Parse(gobold.TTF); err != nil {
		slog.Warn("bold font unavailable, using bitmap face", "error", err)
	}
	return r
}

// Rasterize is a convenience for NewRasterizer().Draw
func Rasterize(cmds []Command, width, height int) *image.RGBA {
	return NewRasterizer().Draw(cmds, width, height)
}

// Draw paints cmds in order onto a white width x height canvas
func (r *Rasterizer) Draw(cmds []Command, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)

	for _, cmd := range cmds {
		switch cmd.Kind {
		case KindRect:
			r.drawRect(dst, cmd)
		case KindText:
			r.drawText(dst, cmd.Text, cmd.Origin, cmd.TextSize, cmd.Bold, cmd.Color)
		case KindTextBox:
			r.drawTextBox(dst, cmd)
		case KindImage:
			drawImage(dst, cmd)
		}
	}
	return dst
}

// MeasureText returns the advance width of text in pixels
func (r *Rasterizer) MeasureText(text string, size float32, bold bool) float32 {
	face := r.face(size, bold)
	return float32(font.MeasureString(face, text)) / 64
}

func (r *Rasterizer) face(size float32, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}

	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.faces[key]; ok {
		return f
	}

	src := r.regular
	if bold {
		src = r.bold
	}

	var face font.Face = basicfont.Face7x13
	if src != nil {
		f, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			face = f
		} else {
			slog.Warn("font face unavailable", "size", size, "bold", bold, "error", err)
		}
	}

	r.faces[key] = face
	return face
}

func (r *Rasterizer) drawText(dst *image.RGBA, text string, origin Point, size float32, bold bool, c color.Color) {
	if text == "" {
		return
	}
	face := r.face(size, bold)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(orBlack(c)),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(origin.X), Y: toFixed(origin.Y)},
	}
	d.DrawString(text)

	// the bitmap face has no bold cut; overstrike one pixel to the right
	if bold && face == basicfont.Face7x13 {
		d.Dot = fixed.Point26_6{X: toFixed(origin.X + 1), Y: toFixed(origin.Y)}
		d.DrawString(text)
	}
}

func (r *Rasterizer) drawTextBox(dst *image.RGBA, cmd Command) {
	face := r.face(cmd.TextSize, cmd.Bold)
	m := face.Metrics()
	ascent := float32(m.Ascent) / 64
	descent := float32(m.Descent) / 64
	lineHeight := float32(m.Height) / 64

	measure := func(s string) float32 { return float32(font.MeasureString(face, s)) / 64 }
	bottom := cmd.Bounds.Y + cmd.Bounds.H

	y := cmd.Bounds.Y + ascent
	for _, line := range WrapText(cmd.Text, cmd.Bounds.W, measure) {
		if y+descent > bottom {
			break
		}
		r.drawText(dst, line, Point{X: cmd.Bounds.X, Y: y}, cmd.TextSize, cmd.Bold, cmd.Color)
		y += lineHeight
	}
}

func (r *Rasterizer) drawRect(dst *image.RGBA, cmd Command) {
	b := cmd.Bounds
	if b.W <= 0 || b.H <= 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	if cmd.Fill != nil {
		z := vector.NewRasterizer(w, h)
		z.DrawOp = xdraw.Over
		traceRoundedRect(z, b, cmd.Radius, false)
		z.Draw(dst, dst.Bounds(), image.NewUniform(cmd.Fill), image.Point{})
	}

	if cmd.Stroke != nil && cmd.StrokeWidth > 0 {
		half := cmd.StrokeWidth / 2
		outer := Rect{X: b.X - half, Y: b.Y - half, W: b.W + cmd.StrokeWidth, H: b.H + cmd.StrokeWidth}
		inner := Rect{X: b.X + half, Y: b.Y + half, W: b.W - cmd.StrokeWidth, H: b.H - cmd.StrokeWidth}

		z := vector.NewRasterizer(w, h)
		z.DrawOp = xdraw.Over
		traceRoundedRect(z, outer, cmd.Radius+half, false)
		if inner.W > 0 && inner.H > 0 {
			traceRoundedRect(z, inner, max(cmd.Radius-half, 0), true)
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(cmd.Stroke), image.Point{})
	}
}

func drawImage(dst *image.RGBA, cmd Command) {
	if cmd.Image == nil || cmd.Bounds.W <= 0 || cmd.Bounds.H <= 0 {
		return
	}
	target := image.Rect(
		round(cmd.Bounds.X), round(cmd.Bounds.Y),
		round(cmd.Bounds.X+cmd.Bounds.W), round(cmd.Bounds.Y+cmd.Bounds.H),
	)
	xdraw.CatmullRom.Scale(dst, target, cmd.Image, cmd.Image.Bounds(), xdraw.Over, nil)
}

type corner struct {
	in, c1, c2, out Point
}

// roundedCorners lists the four corner arcs clockwise from top-right
func roundedCorners(b Rect, radius float32) []corner {
	r := min(radius, b.W/2, b.H/2)
	if r < 0 {
		r = 0
	}
	k := r * kappa
	x0, y0, x1, y1 := b.X, b.Y, b.X+b.W, b.Y+b.H

	return []corner{
		{Point{x1 - r, y0}, Point{x1 - r + k, y0}, Point{x1, y0 + r - k}, Point{x1, y0 + r}},
		{Point{x1, y1 - r}, Point{x1, y1 - r + k}, Point{x1 - r + k, y1}, Point{x1 - r, y1}},
		{Point{x0 + r, y1}, Point{x0 + r - k, y1}, Point{x0, y1 - r + k}, Point{x0, y1 - r}},
		{Point{x0, y0 + r}, Point{x0, y0 + r - k}, Point{x0 + r - k, y0}, Point{x0 + r, y0}},
	}
}

// traceRoundedRect adds a closed rounded rectangle to z. A reversed path
// cancels coverage of an enclosing forward path, which is how strokes are cut.
func traceRoundedRect(z *vector.Rasterizer, b Rect, radius float32, reverse bool) {
	corners := roundedCorners(b, radius)
	if reverse {
		rev := make([]corner, len(corners))
		for i, c := range corners {
			rev[len(corners)-1-i] = corner{in: c.out, c1: c.c2, c2: c.c1, out: c.in}
		}
		corners = rev
	}

	last := corners[len(corners)-1].out
	z.MoveTo(last.X, last.Y)
	for _, c := range corners {
		z.LineTo(c.in.X, c.in.Y)
		z.CubeTo(c.c1.X, c.c1.Y, c.c2.X, c.c2.Y, c.out.X, c.out.Y)
	}
	z.ClosePath()
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
