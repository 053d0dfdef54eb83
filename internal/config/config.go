package config

import (
	"fmt"
	"math"
)

// ToolType selects the active drawing tool.
type ToolType string

const (
	ToolPen    ToolType = "pen"
	ToolEraser ToolType = "eraser"
)

// EraseMode selects how eraser strokes remove content. The mode is carried
// through to the scene graph untouched; the pipeline never interprets it.
type EraseMode string

const (
	ErasePath  EraseMode = "path"  // vector boolean subtraction
	ErasePixel EraseMode = "pixel" // raster-level erasure
)

// Brush holds the pen settings.
type Brush struct {
	Color           string  `json:"color"`
	BaseWidth       float32 `json:"base_width"`
	PressureEnabled bool    `json:"pressure_enabled"`
	PressureFactor  float32 `json:"pressure_factor"` // 0..1, how much pressure drives width
	SmartSmoothing  bool    `json:"smart_smoothing"`
}

// Eraser holds the eraser settings.
type Eraser struct {
	Mode EraseMode `json:"mode"`
	Size float32   `json:"size"`
}

// Tool is the full tool configuration read by every pipeline stage.
// It is a plain value: mutate a copy and publish it through a Store.
type Tool struct {
	Type         ToolType `json:"type"`
	Brush        Brush    `json:"brush"`
	Eraser       Eraser   `json:"eraser"`
	TouchDrawing bool     `json:"touch_drawing"`
}

// Default returns the configuration a fresh board starts with.
func Default() Tool {
	return Tool{
		Type: ToolPen,
		Brush: Brush{
			Color:           "#1a1a1a",
			BaseWidth:       3,
			PressureEnabled: true,
			PressureFactor:  1,
			SmartSmoothing:  true,
		},
		Eraser: Eraser{
			Mode: ErasePath,
			Size: 20,
		},
		TouchDrawing: true,
	}
}

// Validate reports whether the configuration satisfies the invariants the
// pipeline depends on: finite, non-negative numeric fields and a pressure
// factor in [0,1].
func (t Tool) Validate() error {
	check := func(name string, v float32) error {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("config: %s is not finite", name)
		}
		if v < 0 {
			return fmt.Errorf("config: %s is negative", name)
		}
		return nil
	}
	if err := check("brush.base_width", t.Brush.BaseWidth); err != nil {
		return err
	}
	if err := check("eraser.size", t.Eraser.Size); err != nil {
		return err
	}
	if err := check("brush.pressure_factor", t.Brush.PressureFactor); err != nil {
		return err
	}
	if t.Brush.PressureFactor > 1 {
		return fmt.Errorf("config: brush.pressure_factor %v out of range [0,1]", t.Brush.PressureFactor)
	}
	switch t.Type {
	case ToolPen, ToolEraser:
	default:
		return fmt.Errorf("config: unknown tool type %q", t.Type)
	}
	switch t.Eraser.Mode {
	case ErasePath, ErasePixel:
	default:
		return fmt.Errorf("config: unknown erase mode %q", t.Eraser.Mode)
	}
	return nil
}
