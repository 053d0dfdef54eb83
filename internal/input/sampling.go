package input

const (
	// MinSamplingDistance is the movement below which a sample adds no
	// useful geometry.
	MinSamplingDistance = 3 // px

	// MinSamplingInterval caps the accepted rate at roughly 120Hz while
	// still letting slow, precise motion through on the time axis.
	MinSamplingInterval = 8 // ms
)

// ShouldAccept reports whether next should enter the pipeline given the last
// accepted sample. A sample passes when it moved far enough or enough time
// has elapsed; rejected samples are dropped outright, never buffered.
func ShouldAccept(last, next Sample) bool {
	if next.Distance(last) >= MinSamplingDistance {
		return true
	}
	return next.Time-last.Time >= MinSamplingInterval
}
