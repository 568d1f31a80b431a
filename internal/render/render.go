package render

import (
	"image"
	"strconv"
	"strings"

	"github.com/pokeview/pokedex/internal/model"
)

// Canvas messages
const (
	NoImageMessage = "No image available"
	LoadingMessage = "Loading…"
	NoDataMessage  = "No data yet."
	StatsHeading   = "Base stats"
)

// Frame draws the whole canvas for a state: the outer frame, then either the
// record card or a one-line status.
func Frame(state *model.QueryState) []Command {
	return DefaultLayout().Frame(state)
}

// Render draws the record card on the default canvas
func Render(rec *model.Record, img image.Image) []Command {
	return DefaultLayout().Render(rec, img)
}

// Frame draws the whole canvas for a state using this layout
func (l Layout) Frame(state *model.QueryState) []Command {
	cmds := []Command{rectCmd(l.Border, frameRadius, nil, ink(alphaFrame))}

	switch {
	case state == nil || state.Phase == model.QueryPhaseIdle:
		return append(cmds, l.status(NoDataMessage))
	case state.Phase == model.QueryPhaseLoading:
		return append(cmds, l.status(LoadingMessage))
	case state.Phase == model.QueryPhaseFailed:
		return append(cmds, l.status("Error: "+state.Err))
	case state.Record == nil:
		return append(cmds, l.status(NoDataMessage))
	}

	return append(cmds, l.Render(state.Record, state.Image)...)
}

func (l Layout) status(msg string) Command {
	return textCmd(msg, cardLeft, cardTop, statusSize, false, ink(alphaStatus))
}

// Render lays out the record card. It has no side effects and returns the
// same commands for the same inputs.
func (l Layout) Render(rec *model.Record, img image.Image) []Command {
	var cmds []Command

	cmds = append(cmds, l.imagePanel(img)...)

	x := l.ColumnX
	top := float32(cardTop)

	cmds = append(cmds,
		textCmd(Title(rec), x, top+24, titleSize, true, ink(alphaTitle)),
		textCmd("Type: "+FormatTypes(rec), x, top+52, bodySize, false, ink(alphaBody)),
		textCmd("Height: "+FormatTenths(rec.Height)+" m", x, top+74, bodySize, false, ink(alphaBody)),
		textCmd("Weight: "+FormatTenths(rec.Weight)+" kg", x, top+96, bodySize, false, ink(alphaBody)),
		Command{
			Kind:     KindTextBox,
			Bounds:   Rect{X: x, Y: top + 124, W: l.ColumnWidth, H: abilitiesBoxH},
			Text:     "Abilities: " + FormatAbilities(rec),
			TextSize: bodySize,
			Color:    ink(alphaBody),
		},
	)

	return append(cmds, l.stats(rec.Stats)...)
}

func (l Layout) imagePanel(img image.Image) []Command {
	box := l.ImageBox
	cmds := []Command{rectCmd(box, imageBoxRadius, nil, ink(alphaImageBox))}

	if img == nil {
		return append(cmds, textCmd(NoImageMessage, box.X+14, box.Y+28, bodySize, false, ink(alphaPlaceholder)))
	}

	b := img.Bounds()
	inner := Rect{X: box.X + imageInset, Y: box.Y + imageInset, W: box.W - 2*imageInset, H: box.H - 2*imageInset}
	fit := FitContain(float32(b.Dx()), float32(b.Dy()), inner.W, inner.H)

	return append(cmds, Command{
		Kind:   KindImage,
		Bounds: Rect{X: inner.X + fit.X, Y: inner.Y + fit.Y, W: fit.W, H: fit.H},
		Image:  img,
	})
}

func (l Layout) stats(stats []model.Stat) []Command {
	x := l.ColumnX
	baseY := float32(cardTop + statsTopOffset)
	barX := x + statLabelWidth

	cmds := []Command{textCmd(StatsHeading, x, baseY-14, bodySize, true, ink(alphaTitle))}

	for i, s := range stats {
		y := baseY + float32(i*statRowHeight)
		barTop := y - 14

		cmds = append(cmds,
			textCmd(strings.ToUpper(s.Name), x, y, bodySize, false, ink(alphaStatLabel)),
			rectCmd(Rect{X: barX, Y: barTop, W: l.MaxBar, H: statBarHeight}, statBarRadius, ink(alphaTrack), nil),
			rectCmd(Rect{X: barX, Y: barTop, W: BarWidth(s.BaseValue, l.MaxBar), H: statBarHeight}, statBarRadius, ink(alphaBar), nil),
			textCmd(strconv.Itoa(s.BaseValue), barX+l.MaxBar+statValueGap, y, bodySize, false, ink(alphaStatLabel)),
		)
	}

	return cmds
}
