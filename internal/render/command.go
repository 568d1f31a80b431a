package render

import (
	"image"
	"image/color"
)

// Kind identifies a drawing command
type Kind int

const (
	// KindRect is a (possibly rounded) rectangle with optional fill and stroke
	KindRect Kind = iota
	// KindText is a single line drawn from a baseline origin
	KindText
	// KindTextBox is text wrapped inside Bounds, clipped at its bottom edge
	KindTextBox
	// KindImage is a bitmap scaled into Bounds
	KindImage
)

// Point is a canvas coordinate in pixels
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned box in canvas pixels
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether inner lies entirely within r
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.X+inner.W <= r.X+r.W && inner.Y+inner.H <= r.Y+r.H
}

// Command is one entry of the display list
type Command struct {
	Kind Kind

	// Bounds is used by KindRect, KindTextBox and KindImage
	Bounds Rect
	// Origin is the left end of the baseline for KindText
	Origin Point

	Radius      float32
	Fill        color.Color // nil means no fill
	Stroke      color.Color // nil means no stroke
	StrokeWidth float32

	Text     string
	TextSize float32
	Bold     bool
	Color    color.Color

	Image image.Image
}

// ink returns black at the given alpha, the way every card element is tinted
func ink(alpha uint8) color.NRGBA {
	return color.NRGBA{A: alpha}
}

func rectCmd(b Rect, radius float32, fill, stroke color.Color) Command {
	cmd := Command{Kind: KindRect, Bounds: b, Radius: radius, Fill: fill, Stroke: stroke}
	if stroke != nil {
		cmd.StrokeWidth = 1
	}
	return cmd
}

func textCmd(text string, x, y, size float32, bold bool, c color.Color) Command {
	return Command{
		Kind:     KindText,
		Origin:   Point{X: x, Y: y},
		Text:     text,
		TextSize: size,
		Bold:     bold,
		Color:    c,
	}
}
