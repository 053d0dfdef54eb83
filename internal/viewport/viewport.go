// Package viewport holds the pan/zoom state of the drawing surface and maps
// pointer device coordinates into scene-local coordinates. Every pointer
// event goes through ToLocal before it reaches the sampling filter; nothing
// downstream interprets client pixels.
package viewport

import "sync"

const (
	MinScale = 0.3
	MaxScale = 3.0

	zoomStep = 1.2
)

// Viewport is the pan/zoom gesture state plus the surface origin in client
// coordinates.
type Viewport struct {
	mu               sync.RWMutex
	scale            float32
	offsetX, offsetY float32
	originX, originY float32
}

// New creates a viewport at identity: no pan, scale 1.
func New() *Viewport {
	return &Viewport{scale: 1}
}

// SetOrigin records the drawing surface's top-left corner in client
// coordinates. The shell calls this when the surface moves or resizes.
func (v *Viewport) SetOrigin(x, y float32) {
	v.mu.Lock()
	v.originX, v.originY = x, y
	v.mu.Unlock()
}

// ToLocal converts a client-coordinate position to scene-local coordinates:
// subtract the surface origin, subtract the pan offset, divide by the scale.
func (v *Viewport) ToLocal(clientX, clientY float32) (x, y float32) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return (clientX - v.originX - v.offsetX) / v.scale,
		(clientY - v.originY - v.offsetY) / v.scale
}

// Pan shifts the offset by a client-coordinate delta.
func (v *Viewport) Pan(dx, dy float32) {
	v.mu.Lock()
	v.offsetX += dx
	v.offsetY += dy
	v.mu.Unlock()
}

// Offset returns the current pan offset.
func (v *Viewport) Offset() (x, y float32) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.offsetX, v.offsetY
}

// Scale returns the current zoom scale.
func (v *Viewport) Scale() float32 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.scale
}

// ZoomIn steps the scale up, clamped to MaxScale.
func (v *Viewport) ZoomIn() {
	v.mu.Lock()
	v.scale *= zoomStep
	if v.scale > MaxScale {
		v.scale = MaxScale
	}
	v.mu.Unlock()
}

// ZoomOut steps the scale down, clamped to MinScale.
func (v *Viewport) ZoomOut() {
	v.mu.Lock()
	v.scale /= zoomStep
	if v.scale < MinScale {
		v.scale = MinScale
	}
	v.mu.Unlock()
}

// Reset restores identity pan and zoom.
func (v *Viewport) Reset() {
	v.mu.Lock()
	v.scale = 1
	v.offsetX, v.offsetY = 0, 0
	v.mu.Unlock()
}
