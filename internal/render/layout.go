package render

// Canvas and card geometry, in pixels
const (
	CanvasWidth  = 900
	CanvasHeight = 520

	framePadding = 24
	frameRadius  = 12

	cardLeft = 40
	cardTop  = 60

	imageBoxW      = 320
	imageBoxH      = 360
	imageBoxRadius = 10
	imageInset     = 12

	columnGap  = 24
	rightInset = 40

	titleSize  = 26
	bodySize   = 14
	statusSize = 16

	abilitiesBoxH = 80

	statsTopOffset = 220
	statRowHeight  = 32
	statLabelWidth = 120
	statBarHeight  = 16
	statBarRadius  = 6
	statValueGap   = 10
	maxBarCap      = 320

	// StatDomainMax is the base stat value that fills a bar completely
	StatDomainMax = 200
)

// Ink alpha levels
const (
	alphaFrame       = 30
	alphaImageBox    = 25
	alphaPlaceholder = 120
	alphaBody        = 170
	alphaStatLabel   = 160
	alphaTrack       = 25
	alphaBar         = 120
	alphaStatus      = 180
	alphaTitle       = 255
)

// Layout holds derived positions for a canvas size
type Layout struct {
	Width, Height float32

	Border   Rect
	ImageBox Rect

	ColumnX     float32
	ColumnWidth float32
	MaxBar      float32
}

// NewLayout derives card geometry for a canvas of the given size
func NewLayout(width, height float32) Layout {
	l := Layout{Width: width, Height: height}
	l.Border = Rect{X: framePadding, Y: framePadding, W: width - 2*framePadding, H: height - 2*framePadding}
	l.ImageBox = Rect{X: cardLeft, Y: cardTop, W: imageBoxW, H: imageBoxH}
	l.ColumnX = cardLeft + imageBoxW + columnGap
	l.ColumnWidth = width - l.ColumnX - rightInset
	l.MaxBar = min(maxBarCap, l.ColumnWidth-statLabelWidth)
	if l.MaxBar < 0 {
		l.MaxBar = 0
	}
	return l
}

// DefaultLayout is the layout of the fixed 900x520 canvas
func DefaultLayout() Layout {
	return NewLayout(CanvasWidth, CanvasHeight)
}
