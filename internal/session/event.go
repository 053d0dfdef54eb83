package session

// PointerKind distinguishes the device class behind a pointer event. Touch
// drawing can be suppressed while a pen is in use; pens carry the secondary
// eraser button.
type PointerKind string

const (
	PointerMouse PointerKind = "mouse"
	PointerTouch PointerKind = "touch"
	PointerPen   PointerKind = "pen"
)

// PointerEvent is one raw pointer event in client (device) coordinates.
// Events for the same ID arrive strictly in order; events for different IDs
// may interleave while several pointers are down at once.
type PointerEvent struct {
	ID       int
	Kind     PointerKind
	ClientX  float32
	ClientY  float32
	Pressure float32 // 0..1; devices without pressure report a constant
	TimeMs   int64

	// EraserButton is the stylus barrel/eraser contact state. When it
	// disagrees with the persisted tool a temporary tool switch begins.
	EraserButton bool
}
