// Package stroke turns accepted pointer samples into scene strokes. A Builder
// owns the one open segment of a single pointer's drag: it resolves
// pressure-driven widths, appends points, and splits the segment into a fresh
// scene child whenever pressure moves far enough to need a new width.
package stroke

import (
	"inkboard/internal/config"
	"inkboard/internal/input"
	"inkboard/internal/scene"
)

// Builder holds the open segment of one active pointer. Every segment it
// starts is inserted into the scene graph immediately so partial strokes
// render while the drag is still in flight; the scene owns them from that
// moment on.
type Builder struct {
	graph   *scene.Graph
	eraser  bool
	current *scene.Stroke

	// last appended sample and the pressure the current segment's width
	// was resolved at.
	last         input.Sample
	basePressure float32
}

// NewBuilder creates a builder that appends segments to g.
func NewBuilder(g *scene.Graph, eraser bool) *Builder {
	return &Builder{graph: g, eraser: eraser}
}

// ResolveWidth maps pressure to a stroke width: pressure 0 yields half the
// base width, pressure 1 three times it. The pressure factor blends between
// a flat base-width stroke (0) and the fully pressure-driven width (1).
func ResolveWidth(brush config.Brush, pressure float32) float32 {
	if !brush.PressureEnabled {
		return brush.BaseWidth
	}
	scale := 0.5 + pressure*input.PressureWidthGain
	scale = 1 + (scale-1)*brush.PressureFactor
	return brush.BaseWidth * scale
}

// splitThreshold is how far pressure may drift from the value the segment
// width was resolved at before the segment is split. Finer brushes change
// width less per unit of pressure, so they tolerate larger swings.
func splitThreshold(baseWidth float32) float32 {
	switch {
	case baseWidth < 10:
		return 0.05
	case baseWidth < 30:
		return 0.03
	default:
		return 0.015
	}
}

// Start opens the first segment of a drag at the given sample.
func (b *Builder) Start(cfg config.Tool, s input.Sample) {
	b.openSegment(cfg, s, nil)
	b.last = s
	b.basePressure = s.Pressure
}

// Extend appends an accepted sample to the open segment, splitting it first
// when the pressure change warrants a new width. Eraser segments never split;
// their width is fixed regardless of pressure.
func (b *Builder) Extend(cfg config.Tool, s input.Sample) {
	if b.current == nil {
		return
	}

	if !b.eraser && cfg.Brush.PressureEnabled &&
		abs32(s.Pressure-b.basePressure) > splitThreshold(cfg.Brush.BaseWidth) {
		b.split(cfg, s)
	} else {
		b.current.Append(b.point(cfg, s))
	}
	b.last = s
}

// split closes the current segment and continues in fresh ones: each
// interpolated transition sample becomes its own short sub-segment so the
// width ramps instead of jumping, then a final segment carries on at the new
// pressure. Each sub-segment is anchored at the previous endpoint to keep the
// drawn line connected.
func (b *Builder) split(cfg config.Tool, s input.Sample) {
	prev := b.last
	for _, mid := range input.Interpolate(b.last, s, cfg.Brush) {
		anchor := b.point(cfg, prev)
		b.openSegmentAt(cfg, mid, anchor)
		prev = mid
	}
	anchor := b.point(cfg, prev)
	b.openSegmentAt(cfg, s, anchor)
	b.basePressure = s.Pressure
}

func (b *Builder) openSegmentAt(cfg config.Tool, s input.Sample, anchor scene.Point) {
	b.openSegment(cfg, s, &anchor)
}

// openSegment creates a new scene stroke whose width is resolved from the
// sample's pressure, optionally anchored at the previous segment's endpoint,
// and inserts it into the scene graph right away.
func (b *Builder) openSegment(cfg config.Tool, s input.Sample, anchor *scene.Point) {
	var st *scene.Stroke
	if b.eraser {
		st = scene.NewEraserStroke(string(cfg.Eraser.Mode), cfg.Eraser.Size)
	} else {
		st = scene.NewStroke(cfg.Brush.Color, ResolveWidth(cfg.Brush, s.Pressure))
	}
	if anchor != nil {
		st.Append(*anchor)
	}
	st.Append(b.point(cfg, s))
	b.graph.Add(st)
	b.current = st
}

// point converts a sample to a scene point, carrying the resolved width when
// pressure is driving it.
func (b *Builder) point(cfg config.Tool, s input.Sample) scene.Point {
	p := scene.Point{X: s.X, Y: s.Y}
	if !b.eraser && cfg.Brush.PressureEnabled {
		p.W = ResolveWidth(cfg.Brush, s.Pressure)
	}
	return p
}

// Current returns the open segment, or nil before Start.
func (b *Builder) Current() *scene.Stroke {
	return b.current
}

// Last returns the most recently appended sample.
func (b *Builder) Last() input.Sample {
	return b.last
}

// IsEraser reports whether this builder produces eraser strokes.
func (b *Builder) IsEraser() bool {
	return b.eraser
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
