package input

// Exponential-moving-average smoothing of position and pressure. The position
// coefficient is fixed; the pressure coefficient adapts to how noisy the
// recent pressure readings are, so shaky hardware gets damped hard while
// steady pressure tracks with little lag.

const (
	positionAlpha        = 0.3
	defaultPressureAlpha = 0.3

	// pressureWindowSize bounds the rolling pressure history used for the
	// variance estimate.
	pressureWindowSize = 5

	// minVarianceSamples is how many readings the window needs before the
	// variance estimate is trusted over the default coefficient.
	minVarianceSamples = 3
)

// Smoother carries the per-session smoothing state. It is created on
// pointer-down and discarded on pointer-up; nothing persists across strokes.
type Smoother struct {
	initialized bool
	x, y        float32
	pressure    float32
	window      []float32
}

// NewSmoother creates an empty smoother.
func NewSmoother() *Smoother {
	return &Smoother{window: make([]float32, 0, pressureWindowSize)}
}

// Apply feeds one accepted raw sample through the smoother and returns the
// smoothed sample. When smoothPosition is false (eraser sessions draw from
// raw input for precise removal) the position passes through unchanged but
// pressure is still smoothed.
func (s *Smoother) Apply(raw Sample, smoothPosition bool) Sample {
	s.observe(raw.Pressure)

	if !s.initialized {
		s.initialized = true
		s.x, s.y = raw.X, raw.Y
		s.pressure = raw.Pressure
		return raw
	}

	alpha := s.pressureAlpha()
	s.pressure = alpha*raw.Pressure + (1-alpha)*s.pressure

	if smoothPosition {
		s.x = positionAlpha*raw.X + (1-positionAlpha)*s.x
		s.y = positionAlpha*raw.Y + (1-positionAlpha)*s.y
	} else {
		s.x, s.y = raw.X, raw.Y
	}

	return Sample{X: s.x, Y: s.y, Pressure: s.pressure, Time: raw.Time}
}

// observe pushes a raw pressure reading into the rolling window.
func (s *Smoother) observe(p float32) {
	if len(s.window) == pressureWindowSize {
		copy(s.window, s.window[1:])
		s.window = s.window[:pressureWindowSize-1]
	}
	s.window = append(s.window, p)
}

// pressureAlpha selects the EMA coefficient from the variance of the recent
// raw pressure readings. Low variance means the hardware is steady and the
// smoothed value may track quickly; high variance calls for heavy damping.
func (s *Smoother) pressureAlpha() float32 {
	if len(s.window) < minVarianceSamples {
		return defaultPressureAlpha
	}
	switch v := variance(s.window); {
	case v < 0.001:
		return 0.4
	case v < 0.005:
		return 0.3
	case v < 0.01:
		return 0.2
	default:
		return 0.1
	}
}

func variance(xs []float32) float64 {
	var mean float64
	for _, x := range xs {
		mean += float64(x)
	}
	mean /= float64(len(xs))

	var sum float64
	for _, x := range xs {
		d := float64(x) - mean
		sum += d * d
	}
	return sum / float64(len(xs))
}
