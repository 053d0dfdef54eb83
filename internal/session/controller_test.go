package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkboard/internal/config"
	"inkboard/internal/history"
	"inkboard/internal/scene"
	"inkboard/internal/viewport"
)

type fixture struct {
	graph *scene.Graph
	view  *viewport.Viewport
	cfg   *config.Store
	hist  *history.Engine
	ctrl  *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		graph: scene.NewGraph(),
		view:  viewport.New(),
		cfg:   config.NewStore(config.Default()),
	}
	f.hist = history.NewEngine(f.graph, 0, time.Hour)
	f.ctrl = NewController(f.graph, f.view, f.cfg, f.hist)
	return f
}

func pen(id int, x, y, pressure float32, tMs int64) PointerEvent {
	return PointerEvent{ID: id, Kind: PointerPen, ClientX: x, ClientY: y, Pressure: pressure, TimeMs: tMs}
}

func touch(id int, x, y float32, tMs int64) PointerEvent {
	return PointerEvent{ID: id, Kind: PointerTouch, ClientX: x, ClientY: y, Pressure: 0.5, TimeMs: tMs}
}

func TestDrawLifecycle(t *testing.T) {
	f := newFixture(t)

	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	assert.Equal(t, 1, f.ctrl.ActiveSessions())
	require.Equal(t, 1, f.graph.Len())

	f.ctrl.PointerMove(pen(1, 10, 0, 0.5, 10))
	f.ctrl.PointerMove(pen(1, 20, 0, 0.5, 20))
	assert.GreaterOrEqual(t, len(f.graph.Children()[0].Points), 3)

	f.ctrl.PointerUp(pen(1, 20, 0, 0.5, 30))
	assert.Zero(t, f.ctrl.ActiveSessions())
}

func TestMoveForUnknownPointerIgnored(t *testing.T) {
	f := newFixture(t)
	f.ctrl.PointerMove(pen(7, 10, 10, 0.5, 0))
	f.ctrl.PointerUp(pen(7, 10, 10, 0.5, 10))
	assert.Zero(t, f.graph.Len())
}

func TestDownWithoutSceneIsNoop(t *testing.T) {
	f := newFixture(t)
	ctrl := NewController(nil, nil, f.cfg, f.hist)

	ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	assert.Zero(t, ctrl.ActiveSessions())
	ctrl.PointerMove(pen(1, 10, 0, 0.5, 10))
	ctrl.PointerUp(pen(1, 10, 0, 0.5, 20))

	// attach late and events work
	ctrl.Attach(f.graph, f.view)
	ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	assert.Equal(t, 1, ctrl.ActiveSessions())
}

// Moving one pointer must not disturb another pointer's session state.
func TestConcurrentPointersAreIsolated(t *testing.T) {
	f := newFixture(t)

	// touch first: a pen contact suppresses new touch sessions but leaves
	// already-active ones alone
	f.ctrl.PointerDown(touch(2, 100, 100, 0))
	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	require.Equal(t, 2, f.ctrl.ActiveSessions())

	before := f.ctrl.sessions[2].lastRaw
	strokeTwo := f.ctrl.sessions[2].builder.Current()
	pointsBefore := len(strokeTwo.Points)

	f.ctrl.PointerMove(pen(1, 10, 0, 0.5, 10))
	f.ctrl.PointerMove(pen(1, 20, 0, 0.5, 20))

	assert.Equal(t, before, f.ctrl.sessions[2].lastRaw)
	assert.Equal(t, pointsBefore, len(strokeTwo.Points))
}

func TestSamplingFilterAppliesPerSession(t *testing.T) {
	f := newFixture(t)

	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	// 1px and 3ms later: below both thresholds, dropped
	f.ctrl.PointerMove(pen(1, 1, 0, 0.5, 3))
	assert.Len(t, f.graph.Children()[0].Points, 1)

	// fine motion passes on the time axis
	f.ctrl.PointerMove(pen(1, 1, 0, 0.5, 12))
	assert.Len(t, f.graph.Children()[0].Points, 2)
}

func TestPointerCancelCleansUpLikeUp(t *testing.T) {
	f := newFixture(t)

	released := []int{}
	f.ctrl.OnRelease = func(id int) { released = append(released, id) }

	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	f.ctrl.PointerCancel(pen(1, 5, 5, 0.5, 10))

	assert.Zero(t, f.ctrl.ActiveSessions())
	assert.Equal(t, []int{1}, released)

	// snapshot was armed: flushing it commits the stroke
	f.hist.Flush()
	assert.True(t, f.ctrl.CanUndo())
}

func TestSnapshotWaitsForAllPointers(t *testing.T) {
	f := newFixture(t)

	f.ctrl.PointerDown(touch(2, 50, 50, 0))
	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))

	f.ctrl.PointerUp(pen(1, 0, 0, 0.5, 10))
	f.hist.Flush()
	assert.False(t, f.ctrl.CanUndo(), "no snapshot while a pointer is still down")

	f.ctrl.PointerUp(touch(2, 50, 50, 20))
	f.hist.Flush()
	assert.True(t, f.ctrl.CanUndo())
}

// A stylus eraser button held while the persisted tool is the pen makes the
// session erase; the override ends when all pointers lift.
func TestTemporaryToolSwitch(t *testing.T) {
	f := newFixture(t)

	ev := pen(1, 0, 0, 0.5, 0)
	ev.EraserButton = true
	f.ctrl.PointerDown(ev)

	require.Equal(t, 1, f.graph.Len())
	assert.True(t, f.graph.Children()[0].IsEraser())
	assert.NotNil(t, f.ctrl.tempEraser)

	f.ctrl.PointerUp(ev)
	assert.Nil(t, f.ctrl.tempEraser)

	// without the button the persisted pen is back
	f.ctrl.PointerDown(pen(2, 10, 10, 0.5, 100))
	assert.False(t, f.graph.Children()[1].IsEraser())
}

func TestPersistedEraserTool(t *testing.T) {
	f := newFixture(t)
	f.cfg.Update(func(c *config.Tool) {
		c.Type = config.ToolEraser
		c.Eraser.Mode = config.ErasePixel
	})

	f.ctrl.PointerDown(touch(1, 0, 0, 0))
	require.Equal(t, 1, f.graph.Len())
	st := f.graph.Children()[0]
	assert.Equal(t, string(config.ErasePixel), st.Erase)
}

// Pen contact disables touch drawing (palm rejection); the flag stays off
// after the pen lifts.
func TestPenSuppressesTouchDrawing(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.cfg.Get().TouchDrawing)

	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	assert.False(t, f.cfg.Get().TouchDrawing)

	f.ctrl.PointerDown(touch(2, 50, 50, 10))
	assert.Equal(t, 1, f.ctrl.ActiveSessions(), "touch must not open a session")
	assert.Equal(t, 1, f.graph.Len())

	f.ctrl.PointerUp(pen(1, 0, 0, 0.5, 20))
	assert.False(t, f.cfg.Get().TouchDrawing, "not re-enabled on release")
}

func TestCoordinateMapping(t *testing.T) {
	f := newFixture(t)
	f.view.Pan(40, 20)
	f.view.ZoomIn() // scale 1.2

	f.ctrl.PointerDown(pen(1, 100, 80, 0.5, 0))

	wantX := (float32(100) - 40) / 1.2
	wantY := (float32(80) - 20) / 1.2
	p := f.graph.Children()[0].Points[0]
	assert.InDelta(t, wantX, p.X, 1e-4)
	assert.InDelta(t, wantY, p.Y, 1e-4)
}

func TestNewStrokeCancelsPendingSnapshot(t *testing.T) {
	f := newFixture(t)

	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	f.ctrl.PointerUp(pen(1, 0, 0, 0.5, 10))
	// snapshot armed; a new stroke within the idle window cancels it
	f.ctrl.PointerDown(pen(1, 10, 10, 0.5, 50))
	f.hist.Flush()
	assert.False(t, f.ctrl.CanUndo())

	f.ctrl.PointerUp(pen(1, 10, 10, 0.5, 60))
	f.hist.Flush()
	assert.True(t, f.ctrl.CanUndo())
}

func TestClearCanvasPushesThenWipes(t *testing.T) {
	f := newFixture(t)

	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	f.ctrl.PointerMove(pen(1, 10, 0, 0.5, 10))
	f.ctrl.PointerUp(pen(1, 10, 0, 0.5, 20))
	require.Equal(t, 1, f.graph.Len())

	require.NoError(t, f.ctrl.ClearCanvas())
	assert.Zero(t, f.graph.Len())
	assert.True(t, f.ctrl.CanUndo())

	f.ctrl.Undo()
	assert.Equal(t, 1, f.graph.Len(), "undo after clear restores the drawing")
}

func TestDuplicateDownIgnored(t *testing.T) {
	f := newFixture(t)

	f.ctrl.PointerDown(pen(1, 0, 0, 0.5, 0))
	f.ctrl.PointerDown(pen(1, 50, 50, 0.5, 5))
	assert.Equal(t, 1, f.ctrl.ActiveSessions())
	assert.Equal(t, 1, f.graph.Len())
}

func TestCaptureHooks(t *testing.T) {
	f := newFixture(t)

	var captured, released []int
	f.ctrl.OnCapture = func(id int) { captured = append(captured, id) }
	f.ctrl.OnRelease = func(id int) { released = append(released, id) }

	f.ctrl.PointerDown(pen(3, 0, 0, 0.5, 0))
	f.ctrl.PointerUp(pen(3, 0, 0, 0.5, 10))

	assert.Equal(t, []int{3}, captured)
	assert.Equal(t, []int{3}, released)
}
