package input

import (
	"math"

	"inkboard/internal/config"
)

// PressureWidthGain converts a pressure delta into a stroke width delta:
// width = base * (0.5 + pressure*PressureWidthGain). Shared with the stroke
// builder so the interpolation trigger and the rendered width agree.
const PressureWidthGain = 2.5

const (
	// Below these the transition is invisible and interpolation is skipped.
	minPressureDelta = 0.01
	minPointDistance = 2 // px

	// A brush this wide shows width stepping more readily and gets lower
	// trigger thresholds plus a denser point baseline.
	thickBrushWidth = 30 // px
)

// Interpolate synthesizes intermediate samples between two accepted samples
// whose pressure difference would otherwise produce a visible width jump.
// The returned samples exclude both endpoints; the caller already has them.
// Interpolated samples are treated as accepted and are never re-run through
// the sampling filter.
func Interpolate(p1, p2 Sample, brush config.Brush) []Sample {
	if !brush.PressureEnabled {
		return nil
	}
	delta := abs32(p2.Pressure - p1.Pressure)
	if delta < minPressureDelta {
		return nil
	}
	dist := p1.Distance(p2)
	if dist < minPointDistance {
		return nil
	}

	thick := brush.BaseWidth > thickBrushWidth
	sizeChange := brush.BaseWidth * delta * PressureWidthGain
	gradient := delta / dist

	sizeThreshold := float32(3)
	gradientThreshold := float32(0.02)
	if thick {
		sizeThreshold = 2
		gradientThreshold = 0.015
	}
	if sizeChange <= sizeThreshold && gradient <= gradientThreshold {
		return nil
	}

	n := pointCount(gradient, sizeChange, thick)
	if n < 2 {
		return nil
	}

	out := make([]Sample, 0, n-1)
	for i := 1; i < n; i++ {
		t := float32(i) / float32(n)
		out = append(out, Sample{
			X:        p1.X + (p2.X-p1.X)*t,
			Y:        p1.Y + (p2.Y-p1.Y)*t,
			Pressure: p1.Pressure + (p2.Pressure-p1.Pressure)*t,
			Time:     p1.Time + int64(t*float32(p2.Time-p1.Time)),
		})
	}
	return out
}

// pointCount picks how many spans the transition is divided into: a baseline
// from the pressure gradient, scaled by how large the width change actually
// is. Thick brushes get both a denser baseline and a higher scale cap.
func pointCount(gradient, sizeChange float32, thick bool) int {
	var base int
	switch {
	case gradient >= 0.05:
		base = 6
	case gradient >= 0.03:
		base = 4
	default:
		base = 2
	}
	maxFactor := float32(2)
	if thick {
		base += 2
		maxFactor = 3
	}

	factor := sizeChange / 5
	if factor < 0.5 {
		factor = 0.5
	}
	if factor > maxFactor {
		factor = maxFactor
	}
	return int(math.Ceil(float64(base) * float64(factor)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
