package render

import (
	"math"
	"testing"
)

func TestFitContain(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, dstW, dstH float32
		expected               Rect
	}{
		{"square into tall box", 96, 96, 296, 336, Rect{X: 0, Y: 20, W: 296, H: 296}},
		{"wide into tall box", 200, 100, 296, 336, Rect{X: 0, Y: 94, W: 296, H: 148}},
		{"tall into wide box", 100, 200, 400, 100, Rect{X: 175, Y: 0, W: 50, H: 100}},
		{"same aspect", 475, 475, 100, 100, Rect{X: 0, Y: 0, W: 100, H: 100}},
		{"zero source", 0, 10, 100, 100, Rect{}},
		{"zero box", 10, 10, 0, 100, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitContain(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
			if !rectNear(got, tt.expected) {
				t.Errorf("FitContain(%v, %v, %v, %v) = %+v, expected %+v",
					tt.srcW, tt.srcH, tt.dstW, tt.dstH, got, tt.expected)
			}
		})
	}
}

func TestFitContainProperties(t *testing.T) {
	sizes := []float32{1, 7, 40, 96, 120, 475, 1000}
	box := Rect{W: 296, H: 336}

	for _, w := range sizes {
		for _, h := range sizes {
			fit := FitContain(w, h, box.W, box.H)

			if !box.Contains(shrink(fit)) {
				t.Errorf("FitContain(%v, %v) = %+v overflows box", w, h, fit)
			}

			srcAR := float64(w) / float64(h)
			fitAR := float64(fit.W) / float64(fit.H)
			if math.Abs(srcAR-fitAR)/srcAR > 1e-3 {
				t.Errorf("FitContain(%v, %v) aspect = %v, expected %v", w, h, fitAR, srcAR)
			}

			touchesW := near(fit.W, box.W)
			touchesH := near(fit.H, box.H)
			if !touchesW && !touchesH {
				t.Errorf("FitContain(%v, %v) = %+v touches neither side", w, h, fit)
			}
			if touchesW && !near(fit.Y, (box.H-fit.H)/2) {
				t.Errorf("FitContain(%v, %v) not centered vertically: %+v", w, h, fit)
			}
			if touchesH && !near(fit.X, (box.W-fit.W)/2) {
				t.Errorf("FitContain(%v, %v) not centered horizontally: %+v", w, h, fit)
			}
		}
	}
}

func TestBarWidth(t *testing.T) {
	const maxBar = 320

	tests := []struct {
		value    int
		expected float32
	}{
		{0, 0},
		{-10, 0},
		{100, 160},
		{200, maxBar},
		{255, maxBar},
		{300, maxBar},
	}

	for _, tt := range tests {
		if got := BarWidth(tt.value, maxBar); !near(got, tt.expected) {
			t.Errorf("BarWidth(%d) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
}

func TestLinearMap(t *testing.T) {
	if got := LinearMap(5, 0, 10, 100, 200); got != 150 {
		t.Errorf("LinearMap(5) = %v, expected 150", got)
	}
	if got := LinearMap(20, 0, 10, 0, 1); got != 2 {
		t.Errorf("LinearMap(20) = %v, expected 2 (no clamping)", got)
	}
	if got := LinearMap(3, 4, 4, 7, 9); got != 7 {
		t.Errorf("LinearMap on empty domain = %v, expected 7", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, expected float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.expected {
			t.Errorf("Clamp(%v) = %v, expected %v", tt.v, got, tt.expected)
		}
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func rectNear(a, b Rect) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.W, b.W) && near(a.H, b.H)
}

// shrink trims float noise so Contains does not trip on the last ulp
func shrink(r Rect) Rect {
	const eps = 0.001
	return Rect{X: r.X + eps, Y: r.Y + eps, W: r.W - 2*eps, H: r.H - 2*eps}
}
