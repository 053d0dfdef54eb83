package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/config"
	"inkboard/internal/scene"
	"inkboard/internal/session"
)

// --- Custom Widget for Color Swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(hex string)) *colorSwatch {
	var c color.Color = color.Black
	if r, g, b, ok := scene.ParseColor(hex); ok {
		c = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	s := &colorSwatch{Color: c, Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// --- The Main Toolbar ---

// NewToolbar builds the tool strip: pen/eraser selection, color palette,
// width slider, pressure and smoothing toggles, and undo/redo/clear wired to
// the session controller.
func NewToolbar(ctrl *session.Controller, cfg *config.Store, board *Board) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			cfg.Update(func(t *config.Tool) { t.Type = config.ToolPen })
		}), // Pen
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			cfg.Update(func(t *config.Tool) { t.Type = config.ToolEraser })
		}), // Eraser
	)

	// --- Color Palette ---
	onColorTapped := func(hex string) {
		cfg.Update(func(t *config.Tool) {
			t.Type = config.ToolPen
			t.Brush.Color = hex
		})
	}
	colorBox := container.NewHBox(
		newColorSwatch("#1a1a1a", onColorTapped),
		newColorSwatch("#e53935", onColorTapped), // Red
		newColorSwatch("#43a047", onColorTapped), // Green
		newColorSwatch("#1e88e5", onColorTapped), // Blue
		newColorSwatch("#fdd835", onColorTapped), // Yellow
	)

	// --- Stroke Width Slider ---
	widthSlider := widget.NewSlider(1, 50)
	widthSlider.SetValue(float64(cfg.Get().Brush.BaseWidth))
	widthSlider.OnChanged = func(val float64) {
		cfg.Update(func(t *config.Tool) { t.Brush.BaseWidth = float32(val) })
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	// --- Pipeline toggles ---
	pressureCheck := widget.NewCheck("Pressure", func(on bool) {
		cfg.Update(func(t *config.Tool) { t.Brush.PressureEnabled = on })
	})
	pressureCheck.SetChecked(cfg.Get().Brush.PressureEnabled)

	smoothCheck := widget.NewCheck("Smoothing", func(on bool) {
		cfg.Update(func(t *config.Tool) { t.Brush.SmartSmoothing = on })
	})
	smoothCheck.SetChecked(cfg.Get().Brush.SmartSmoothing)

	// --- History ---
	undoBtn := widget.NewButtonWithIcon("", theme.ContentUndoIcon(), func() {
		ctrl.Undo()
		board.Refresh()
	})
	redoBtn := widget.NewButtonWithIcon("", theme.ContentRedoIcon(), func() {
		ctrl.Redo()
		board.Refresh()
	})
	clearBtn := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		if err := ctrl.ClearCanvas(); err == nil {
			board.Refresh()
		}
	})

	syncHistory := func() {
		if ctrl.CanUndo() {
			undoBtn.Enable()
		} else {
			undoBtn.Disable()
		}
		if ctrl.CanRedo() {
			redoBtn.Enable()
		} else {
			redoBtn.Disable()
		}
	}
	board.OnSceneChanged = syncHistory
	syncHistory()

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		pressureCheck,
		smoothCheck,
		widget.NewSeparator(),
		undoBtn,
		redoBtn,
		clearBtn,
		layout.NewSpacer(),
	)
}
