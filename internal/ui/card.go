package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/pokeview/pokedex/internal/render"
)

// CardView shows a display list as Fyne canvas objects on a fixed-size surface
type CardView struct {
	content    *fyne.Container
	background *canvas.Rectangle
	commands   []render.Command
}

// NewCardView creates an empty card surface of the canvas size
func NewCardView() *CardView {
	size := fyne.NewSize(render.CanvasWidth, render.CanvasHeight)

	bg := canvas.NewRectangle(color.White)
	bg.SetMinSize(size)
	bg.Resize(size)

	return &CardView{
		content:    container.NewWithoutLayout(bg),
		background: bg,
	}
}

// Object returns the canvas object to place in a layout
func (v *CardView) Object() fyne.CanvasObject {
	return v.content
}

// Commands returns the display list currently shown
func (v *CardView) Commands() []render.Command {
	return v.commands
}

// Show replaces the surface contents with cmds. Must run on the UI thread.
func (v *CardView) Show(cmds []render.Command) {
	objects := []fyne.CanvasObject{v.background}
	for _, cmd := range cmds {
		objects = append(objects, toObjects(cmd)...)
	}

	v.commands = cmds
	v.content.Objects = objects
	v.content.Refresh()
}

func toObjects(cmd render.Command) []fyne.CanvasObject {
	switch cmd.Kind {
	case render.KindRect:
		if cmd.Bounds.W <= 0 || cmd.Bounds.H <= 0 {
			return nil
		}
		return []fyne.CanvasObject{rectObject(cmd)}
	case render.KindText:
		return []fyne.CanvasObject{textObject(cmd.Text, cmd.Origin, cmd.TextSize, cmd.Bold, cmd.Color)}
	case render.KindTextBox:
		return textBoxObjects(cmd)
	case render.KindImage:
		if cmd.Image == nil {
			return nil
		}
		img := canvas.NewImageFromImage(cmd.Image)
		img.FillMode = canvas.ImageFillStretch
		img.ScaleMode = canvas.ImageScaleSmooth
		place(img, cmd.Bounds)
		return []fyne.CanvasObject{img}
	}
	return nil
}

func rectObject(cmd render.Command) *canvas.Rectangle {
	r := canvas.NewRectangle(orTransparent(cmd.Fill))
	r.CornerRadius = cmd.Radius
	if cmd.Stroke != nil {
		r.StrokeColor = cmd.Stroke
		r.StrokeWidth = cmd.StrokeWidth
	}
	place(r, cmd.Bounds)
	return r
}

// textObject positions a canvas.Text so its baseline lands on origin
func textObject(text string, origin render.Point, size float32, bold bool, c color.Color) *canvas.Text {
	t := canvas.NewText(text, orBlack(c))
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: bold}

	dims, baseline := textMetrics(text, size, t.TextStyle)
	t.Move(fyne.NewPos(origin.X, origin.Y-baseline))
	t.Resize(dims)
	return t
}

func textBoxObjects(cmd render.Command) []fyne.CanvasObject {
	style := fyne.TextStyle{Bold: cmd.Bold}
	measure := func(s string) float32 {
		return fyne.MeasureText(s, cmd.TextSize, style).Width
	}

	lineSize, baseline := textMetrics("Ag", cmd.TextSize, style)
	bottom := cmd.Bounds.Y + cmd.Bounds.H

	var objects []fyne.CanvasObject
	top := cmd.Bounds.Y
	for _, line := range render.WrapText(cmd.Text, cmd.Bounds.W, measure) {
		if top+lineSize.Height > bottom {
			break
		}
		origin := render.Point{X: cmd.Bounds.X, Y: top + baseline}
		objects = append(objects, textObject(line, origin, cmd.TextSize, cmd.Bold, cmd.Color))
		top += lineSize.Height
	}
	return objects
}

// textMetrics returns the rendered size and baseline offset of text. Without
// a running driver the baseline is approximated by the font size.
func textMetrics(text string, size float32, style fyne.TextStyle) (fyne.Size, float32) {
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		return app.Driver().RenderedTextSize(text, size, style, nil)
	}
	return fyne.NewSize(float32(len(text))*size/2, size*1.3), size
}

func place(o fyne.CanvasObject, b render.Rect) {
	o.Move(fyne.NewPos(b.X, b.Y))
	o.Resize(fyne.NewSize(b.W, b.H))
}

func orTransparent(c color.Color) color.Color {
	if c == nil {
		return color.Transparent
	}
	return c
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
