package render

// FitContain scales a srcW x srcH image to the largest size that fits in a
// dstW x dstH box without cropping, keeping its aspect ratio. The returned
// rect is relative to the box and centered along the axis with slack.
func FitContain(srcW, srcH, dstW, dstH float32) Rect {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Rect{}
	}

	srcAR := srcW / srcH
	dstAR := dstW / dstH

	if srcAR > dstAR {
		w := dstW
		h := min(dstW/srcAR, dstH)
		return Rect{X: 0, Y: (dstH - h) / 2, W: w, H: h}
	}

	h := dstH
	w := min(dstH*srcAR, dstW)
	return Rect{X: (dstW - w) / 2, Y: 0, W: w, H: h}
}

// LinearMap re-maps v from [inMin, inMax] to [outMin, outMax] without clamping
func LinearMap(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BarWidth is the filled width of a stat bar of length maxBar
func BarWidth(value int, maxBar float32) float32 {
	m := float64(maxBar)
	return float32(Clamp(LinearMap(float64(value), 0, StatDomainMax, 0, m), 0, m))
}
