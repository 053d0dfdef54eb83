package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/scene"
	"inkboard/internal/session"
	"inkboard/internal/viewport"
)

// mousePressure is the constant pressure reported for pointer devices
// without a pressure axis. 0.2 resolves to exactly the configured base
// width, so mouse strokes match the width slider.
const mousePressure = 0.2

// mousePointerID is the pointer id used for the single desktop mouse.
const mousePointerID = 0

// Board is the drawing surface widget. It owns no drawing state itself: it
// translates Fyne mouse events into pointer events for the session
// controller and renders whatever the scene graph currently holds.
type Board struct {
	widget.BaseWidget

	controller *session.Controller
	scene      *scene.Graph
	view       *viewport.Viewport

	// OnSceneChanged fires after every Refresh; the toolbar uses it to
	// keep the undo/redo buttons in sync with the history stacks.
	OnSceneChanged func()
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)

// NewBoard creates the drawing surface over the given collaborators.
func NewBoard(ctrl *session.Controller, g *scene.Graph, view *viewport.Viewport) *Board {
	b := &Board{controller: ctrl, scene: g, view: view}
	b.ExtendBaseWidget(b)
	return b
}

func (b *Board) pointerEvent(pos fyne.Position) session.PointerEvent {
	return session.PointerEvent{
		ID:       mousePointerID,
		Kind:     session.PointerMouse,
		ClientX:  pos.X,
		ClientY:  pos.Y,
		Pressure: mousePressure,
		TimeMs:   time.Now().UnixMilli(),
	}
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.controller.PointerDown(b.pointerEvent(e.Position))
		b.Refresh()
	}
}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.controller.PointerUp(b.pointerEvent(e.Position))
		b.Refresh()
	}
}

// Dragged extends the active stroke, or pans the viewport when no pointer is
// drawing (secondary-button drags never opened a session).
func (b *Board) Dragged(e *fyne.DragEvent) {
	if b.controller.ActiveSessions() > 0 {
		b.controller.PointerMove(b.pointerEvent(e.Position))
	} else {
		b.view.Pan(e.Dragged.DX, e.Dragged.DY)
	}
	b.Refresh()
}

func (b *Board) DragEnd() {}

// Scrolled zooms around the current view.
func (b *Board) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		b.view.ZoomIn()
	} else {
		b.view.ZoomOut()
	}
	b.Refresh()
}

func (b *Board) MouseIn(*desktop.MouseEvent)    {}
func (b *Board) MouseOut()                      {}
func (b *Board) MouseMoved(*desktop.MouseEvent) {}

func (b *Board) Refresh() {
	b.BaseWidget.Refresh()
	if b.OnSceneChanged != nil {
		b.OnSceneChanged()
	}
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
}

// Objects rebuilds the line segments for every stroke in the scene with the
// current pan/zoom applied. Eraser strokes render in the background color.
func (r *boardRenderer) Objects() []fyne.CanvasObject {
	b := r.board
	scale := b.view.Scale()
	offX, offY := b.view.Offset()

	objects := []fyne.CanvasObject{r.background}
	for _, st := range b.scene.Children() {
		col := strokeColor(st)
		for i := 1; i < len(st.Points); i++ {
			p1, p2 := st.Points[i-1], st.Points[i]
			line := canvas.NewLine(col)
			line.StrokeWidth = pointWidth(st, i) * scale
			line.Position1 = fyne.NewPos(p1.X*scale+offX, p1.Y*scale+offY)
			line.Position2 = fyne.NewPos(p2.X*scale+offX, p2.Y*scale+offY)
			objects = append(objects, line)
		}
	}
	return objects
}

func strokeColor(st *scene.Stroke) color.Color {
	if st.IsEraser() {
		return color.White
	}
	if cr, cg, cb, ok := scene.ParseColor(st.Color); ok {
		return color.NRGBA{R: cr, G: cg, B: cb, A: 255}
	}
	return color.Black
}

// pointWidth picks the display width for the segment ending at index i.
func pointWidth(st *scene.Stroke, i int) float32 {
	if w := st.Points[i].W; w > 0 {
		return w
	}
	return st.Width
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}
