package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldAccept(t *testing.T) {
	last := At(100, 100, 0.5, 1000)

	tests := []struct {
		name string
		next Sample
		want bool
	}{
		{"close and fast", At(101, 100, 0.5, 1003), false},
		{"zero movement zero time", At(100, 100, 0.5, 1000), false},
		{"just under both thresholds", At(102, 100, 0.5, 1007), false},
		{"distance at threshold", At(103, 100, 0.5, 1001), true},
		{"distance beyond threshold", At(100, 110, 0.9, 1001), true},
		{"time at threshold", At(100, 100, 0.5, 1008), true},
		{"time beyond threshold", At(100.5, 100, 0.5, 1200), true},
		{"diagonal below threshold", At(102, 102, 0.5, 1001), false}, // dist ~2.83
		{"diagonal above threshold", At(103, 103, 0.5, 1001), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldAccept(last, tt.next))
		})
	}
}

// Shrinking distance and elapsed time strictly below both thresholds must
// never flip a rejection into an acceptance.
func TestShouldAcceptShrinking(t *testing.T) {
	last := At(0, 0, 0.5, 0)
	for d := float32(2.9); d >= 0; d -= 0.3 {
		for dt := int64(7); dt >= 0; dt-- {
			next := At(d, 0, 0.5, dt)
			assert.False(t, ShouldAccept(last, next), "d=%v dt=%v", d, dt)
		}
	}
}
