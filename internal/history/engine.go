// Package history provides snapshot-based undo/redo over an external scene
// graph. Every entry is a literal serialization of the full child list, so
// restoring is exact and idempotent regardless of how the scene got into its
// current state.
package history

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

const (
	// DefaultMaxHistory bounds the undo stack; the oldest entry is evicted
	// once the bound is exceeded.
	DefaultMaxHistory = 50

	// DefaultDebounce is the idle delay after the last pointer lifts before
	// a snapshot is committed.
	DefaultDebounce = 500 * time.Millisecond
)

// Scene is the slice of the scene graph the engine consumes: full-children
// serialization plus remove-all/re-add for restoration. Re-adding a blob the
// scene produced must reconstruct the child identically.
type Scene interface {
	Serialize() ([]json.RawMessage, error)
	RemoveAll()
	AddSerialized(json.RawMessage) error
}

// Snapshot is one immutable history entry: the serialized scene children in
// order. The engine treats each blob as opaque.
type Snapshot []json.RawMessage

// Engine maintains the bounded undo/redo stacks. The undo stack's top entry
// is always the scene as of the most recent push; undoing restores the entry
// beneath it. All methods are safe for concurrent use since the debounce
// timer fires on its own goroutine.
type Engine struct {
	scene      Scene
	maxHistory int
	debounce   time.Duration
	sched      *scheduler

	mu   sync.Mutex
	undo []Snapshot
	redo []Snapshot
}

// NewEngine creates an engine over the given scene. maxHistory and debounce
// fall back to the defaults when zero.
func NewEngine(scene Scene, maxHistory int, debounce time.Duration) *Engine {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	e := &Engine{
		scene:      scene,
		maxHistory: maxHistory,
		debounce:   debounce,
	}
	e.sched = newScheduler(func() {
		if err := e.PushState(); err != nil {
			log.Printf("history: debounced snapshot failed: %v", err)
		}
	})
	return e
}

// PushState serializes the scene onto the undo stack and clears the redo
// stack. A serialization failure leaves both stacks untouched.
func (e *Engine) PushState() error {
	snap, err := e.scene.Serialize()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.undo = append(e.undo, Snapshot(snap))
	if len(e.undo) > e.maxHistory {
		e.undo = append(e.undo[:0:0], e.undo[1:]...)
	}
	e.redo = nil
	return nil
}

// Undo moves the top undo entry onto the redo stack and restores the scene
// to the entry now on top, or to empty when the stack drains. No-op when
// there is nothing to undo.
func (e *Engine) Undo() {
	e.mu.Lock()
	if len(e.undo) == 0 {
		e.mu.Unlock()
		return
	}
	top := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = append(e.redo, top)

	var target Snapshot
	if len(e.undo) > 0 {
		target = e.undo[len(e.undo)-1]
	}
	e.mu.Unlock()

	e.restore(target)
}

// Redo moves the top redo entry back onto the undo stack and restores the
// scene to it. No-op without a prior Undo.
func (e *Engine) Redo() {
	e.mu.Lock()
	if len(e.redo) == 0 {
		e.mu.Unlock()
		return
	}
	top := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = append(e.undo, top)
	e.mu.Unlock()

	e.restore(top)
}

// restore replaces the scene contents with a snapshot, preserving its order.
func (e *Engine) restore(snap Snapshot) {
	e.scene.RemoveAll()
	for _, raw := range snap {
		if err := e.scene.AddSerialized(raw); err != nil {
			// A snapshot only ever holds blobs the scene itself produced,
			// so this indicates scene-side breakage, not bad history.
			log.Printf("history: restore element failed: %v", err)
		}
	}
}

// CanUndo reports whether Undo would change the scene.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.undo) > 0
}

// CanRedo reports whether Redo would change the scene.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.redo) > 0
}

// Depth returns the undo and redo stack depths.
func (e *Engine) Depth() (undo, redo int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.undo), len(e.redo)
}

// SchedulePush arms (or re-arms) the debounced snapshot. Called when the
// last active pointer lifts.
func (e *Engine) SchedulePush() {
	e.sched.schedule(e.debounce)
}

// CancelPending drops a scheduled snapshot. Called when a new stroke begins
// before the debounce fires; the snapshot is rescheduled on the next lift.
func (e *Engine) CancelPending() {
	e.sched.cancel()
}

// Flush commits a pending debounced snapshot immediately.
func (e *Engine) Flush() {
	e.sched.flush()
}

// Close flushes any pending snapshot. Call on teardown so the last stroke is
// not silently lost.
func (e *Engine) Close() {
	e.sched.flush()
}
