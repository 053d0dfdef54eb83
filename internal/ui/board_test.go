package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkboard/internal/scene"
)

func TestStrokeColor(t *testing.T) {
	red := scene.NewStroke("#e53935", 3)
	assert.Equal(t, color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 255}, strokeColor(red))

	junk := scene.NewStroke("chartreuse", 3)
	assert.Equal(t, color.Black, strokeColor(junk))

	eraser := scene.NewEraserStroke("path", 20)
	assert.Equal(t, color.White, strokeColor(eraser))
}

func TestPointWidth(t *testing.T) {
	st := scene.NewStroke("#1a1a1a", 5)
	st.Append(scene.Point{X: 0, Y: 0})
	st.Append(scene.Point{X: 10, Y: 0, W: 8})
	st.Append(scene.Point{X: 20, Y: 0})

	assert.Equal(t, float32(8), pointWidth(st, 1), "per-point resolved width wins")
	assert.Equal(t, float32(5), pointWidth(st, 2), "stroke width is the fallback")
}

func TestMousePressureResolvesToBaseWidth(t *testing.T) {
	// 0.5 + 0.2*2.5 == 1.0: mouse strokes match the slider width exactly
	assert.InDelta(t, 1.0, 0.5+mousePressure*2.5, 1e-6)
}
