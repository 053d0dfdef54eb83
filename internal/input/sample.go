// Package input implements the raw-pointer-to-geometry stages of the drawing
// pipeline: the sampling filter that thins high-frequency pointer streams,
// the smoothing engine that damps position and pressure noise, and the
// transition interpolator that fills in sharp pressure jumps.
package input

import "inkboard/internal/geom"

// Sample is one pointer sample in scene-local coordinates.
type Sample struct {
	X, Y     float32
	Pressure float32
	Time     int64 // milliseconds
}

// At builds a sample.
func At(x, y, pressure float32, timeMs int64) Sample {
	return Sample{X: x, Y: y, Pressure: pressure, Time: timeMs}
}

// Point returns the sample position.
func (s Sample) Point() geom.Point {
	return geom.Pt(s.X, s.Y)
}

// Distance returns the distance to another sample's position.
func (s Sample) Distance(o Sample) float32 {
	return s.Point().Distance(o.Point())
}
