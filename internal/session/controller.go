// Package session drives the per-pointer drawing state machines. The
// Controller owns one session per active pointer id, resolves the effective
// tool (including temporary stylus-button switches), feeds accepted samples
// through smoothing into the stroke builder, and triggers the debounced
// history snapshot once every pointer has lifted. It is the facade the UI
// shell talks to.
package session

import (
	"sync"

	"inkboard/internal/config"
	"inkboard/internal/history"
	"inkboard/internal/input"
	"inkboard/internal/scene"
	"inkboard/internal/stroke"
)

// Mapper converts client coordinates to scene-local coordinates. Satisfied
// by *viewport.Viewport.
type Mapper interface {
	ToLocal(clientX, clientY float32) (x, y float32)
}

// session is the transient state of one active pointer, created on
// pointer-down and destroyed on pointer-up or pointer-cancel.
type session struct {
	id       int
	kind     PointerKind
	eraser   bool
	builder  *stroke.Builder
	smoother *input.Smoother
	lastRaw  input.Sample // last sample accepted by the filter
}

// Controller coordinates every active pointer session against the shared
// scene graph and history engine.
type Controller struct {
	mu       sync.Mutex
	scene    *scene.Graph
	mapper   Mapper
	config   *config.Store
	history  *history.Engine
	sessions map[int]*session

	// tempEraser overrides the persisted tool while a stylus button state
	// disagrees with it; nil when no switch is in effect. Cleared once all
	// pointers are released.
	tempEraser *bool

	// Capture hooks let the windowing layer hold and release pointer
	// capture for the drawing surface. Either may be nil.
	OnCapture func(id int)
	OnRelease func(id int)
}

// NewController wires the controller to its collaborators. scene or mapper
// may be nil when the UI has not finished mounting; pointer events are
// no-ops until both are set.
func NewController(g *scene.Graph, m Mapper, cfg *config.Store, h *history.Engine) *Controller {
	return &Controller{
		scene:    g,
		mapper:   m,
		config:   cfg,
		history:  h,
		sessions: make(map[int]*session),
	}
}

// Attach supplies the scene graph and mapper after construction, for shells
// that mount the drawing surface late.
func (c *Controller) Attach(g *scene.Graph, m Mapper) {
	c.mu.Lock()
	c.scene = g
	c.mapper = m
	c.mu.Unlock()
}

// PointerDown opens a drawing session for the event's pointer id. It is a
// no-op when the scene graph or mapper is missing, when touch drawing is
// disabled and the pointer is a touch, or when the id is already active.
func (c *Controller) PointerDown(ev PointerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scene == nil || c.mapper == nil {
		return
	}
	if _, active := c.sessions[ev.ID]; active {
		return
	}

	cfg := c.config.Get()

	// A pen in use auto-disables touch drawing so a resting palm does not
	// scribble. The flag stays off when the pen lifts; re-enabling is the
	// user's call.
	if ev.Kind == PointerPen && cfg.TouchDrawing {
		c.config.Update(func(t *config.Tool) { t.TouchDrawing = false })
		cfg = c.config.Get()
	}
	if ev.Kind == PointerTouch && !cfg.TouchDrawing {
		return
	}

	eraser := c.resolveEraser(ev, cfg)

	x, y := c.mapper.ToLocal(ev.ClientX, ev.ClientY)
	raw := input.At(x, y, clamp01(ev.Pressure), ev.TimeMs)

	// A new stroke supersedes any snapshot still waiting on the debounce;
	// it is rescheduled when this pointer lifts.
	c.history.CancelPending()

	s := &session{
		id:       ev.ID,
		kind:     ev.Kind,
		eraser:   eraser,
		builder:  stroke.NewBuilder(c.scene, eraser),
		smoother: input.NewSmoother(),
		lastRaw:  raw,
	}
	seed := s.smoother.Apply(raw, false)
	s.builder.Start(cfg, seed)
	c.sessions[ev.ID] = s

	if c.OnCapture != nil {
		c.OnCapture(ev.ID)
	}
}

// resolveEraser picks the effective tool for a new session. The persisted
// tool applies unless a temporary stylus-button switch is (or becomes)
// active.
func (c *Controller) resolveEraser(ev PointerEvent, cfg config.Tool) bool {
	persisted := cfg.Type == config.ToolEraser
	if c.tempEraser == nil && ev.Kind == PointerPen && ev.EraserButton != persisted {
		v := ev.EraserButton
		c.tempEraser = &v
	}
	if c.tempEraser != nil {
		return *c.tempEraser
	}
	return persisted
}

// PointerMove extends the session's open stroke with the event, if the
// sampling filter accepts it. Events for unknown ids are silently ignored;
// they are expected during races between capture loss and event delivery.
func (c *Controller) PointerMove(ev PointerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[ev.ID]
	if !ok {
		return
	}

	x, y := c.mapper.ToLocal(ev.ClientX, ev.ClientY)
	raw := input.At(x, y, clamp01(ev.Pressure), ev.TimeMs)
	if !input.ShouldAccept(s.lastRaw, raw) {
		return
	}
	s.lastRaw = raw

	cfg := c.config.Get()
	sample := raw
	if cfg.Brush.SmartSmoothing && !s.eraser {
		sample = s.smoother.Apply(raw, true)
	}
	s.builder.Extend(cfg, sample)
}

// PointerUp closes the session for the event's pointer id. When the last
// active pointer lifts, the temporary tool switch ends and the debounced
// history snapshot is armed.
func (c *Controller) PointerUp(ev PointerEvent) {
	c.endSession(ev.ID)
}

// PointerCancel is handled identically to PointerUp: the session is removed
// and capture released, so a cancelled drag never leaks an open segment.
func (c *Controller) PointerCancel(ev PointerEvent) {
	c.endSession(ev.ID)
}

func (c *Controller) endSession(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sessions[id]; !ok {
		return
	}
	delete(c.sessions, id)

	if c.OnRelease != nil {
		c.OnRelease(id)
	}

	if len(c.sessions) == 0 {
		c.tempEraser = nil
		c.history.SchedulePush()
	}
}

// ActiveSessions returns the number of pointers currently drawing.
func (c *Controller) ActiveSessions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Undo steps the scene back one snapshot.
func (c *Controller) Undo() { c.history.Undo() }

// Redo re-applies the most recently undone snapshot.
func (c *Controller) Redo() { c.history.Redo() }

// CanUndo reports whether an undo step is available.
func (c *Controller) CanUndo() bool { return c.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (c *Controller) CanRedo() bool { return c.history.CanRedo() }

// ClearCanvas wipes the scene. The pre-clear state is pushed synchronously
// first, bypassing the debounce; if that push fails the scene is left
// untouched rather than losing the only copy of its contents. The post-wipe
// state is pushed as well so the wipe itself is one undo step.
func (c *Controller) ClearCanvas() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scene == nil {
		return nil
	}
	c.history.CancelPending()
	if err := c.history.PushState(); err != nil {
		return err
	}
	c.scene.RemoveAll()
	return c.history.PushState()
}

// Close flushes any pending debounced snapshot. Call on shell teardown.
func (c *Controller) Close() {
	c.history.Close()
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
