package scene

import "github.com/google/uuid"

// Cap/join style is fixed for freehand strokes; round ends avoid visible
// seams where split segments meet.
const (
	CapRound  = "round"
	JoinRound = "round"
)

// Point is a single stroke point. W is the resolved width derived from
// pressure when the point was created; zero means "use the stroke width".
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	W float32 `json:"w,omitempty"`
}

// Stroke is one connected freehand path in the scene. A single drag may
// produce several strokes in sequence when pressure jumps split the segment;
// they are independent scene children and are never merged back.
type Stroke struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
	Color  string  `json:"color,omitempty"`
	Width  float32 `json:"width"`
	Erase  string  `json:"erase,omitempty"` // "" for drawing strokes, else "path" or "pixel"
	Cap    string  `json:"cap"`
	Join   string  `json:"join"`
}

// NewStroke creates an empty drawing stroke.
func NewStroke(color string, width float32) *Stroke {
	return &Stroke{
		ID:    uuid.NewString(),
		Color: color,
		Width: width,
		Cap:   CapRound,
		Join:  JoinRound,
	}
}

// NewEraserStroke creates an empty eraser stroke tagged with the given erase
// mode. Eraser strokes render with a fixed opaque marker color.
func NewEraserStroke(mode string, size float32) *Stroke {
	s := NewStroke("#ffffff", size)
	s.Erase = mode
	return s
}

// IsEraser reports whether the stroke erases rather than draws.
func (s *Stroke) IsEraser() bool {
	return s.Erase != ""
}

// Append adds a point to the stroke.
func (s *Stroke) Append(p Point) {
	s.Points = append(s.Points, p)
}

// Last returns the most recently appended point. ok is false for an empty
// stroke.
func (s *Stroke) Last() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}
