package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"inkboard/internal/export"
	"inkboard/internal/scene"
	"inkboard/internal/session"
	"inkboard/internal/store"
)

// documentKey is where the current drawing lives in the document store.
const documentKey = "document"

// RunApp assembles the window and runs the event loop until the window
// closes. Teardown flushes any pending history snapshot.
func RunApp(board *Board, toolbar fyne.CanvasObject, ctrl *session.Controller, g *scene.Graph, docs *store.Store) {
	myApp := app.New()
	myWindow := myApp.NewWindow("inkboard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	myWindow.SetMainMenu(mainMenu(myWindow, board, ctrl, g, docs))
	myWindow.SetContent(container.NewBorder(toolbar, nil, nil, nil, board))
	myWindow.SetOnClosed(func() {
		ctrl.Close()
	})
	myWindow.ShowAndRun()
}

func mainMenu(win fyne.Window, board *Board, ctrl *session.Controller, g *scene.Graph, docs *store.Store) *fyne.MainMenu {
	saveDoc := fyne.NewMenuItem("Save", func() {
		blob, err := g.ToJSON()
		if err != nil {
			log.Printf("save: serialize failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		if err := docs.Set(documentKey, blob); err != nil {
			log.Printf("save: store write failed: %v", err)
			dialog.ShowError(err, win)
		}
	})

	loadDoc := fyne.NewMenuItem("Open", func() {
		blob, ok := docs.Get(documentKey)
		if !ok {
			log.Println("open: no saved document")
			return
		}
		if err := g.FromJSON(blob); err != nil {
			log.Printf("open: parse failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		board.Refresh()
	})

	exportPDF := fyne.NewMenuItem("Export PDF...", func() {
		dialog.ShowFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil || w == nil {
				return
			}
			path := w.URI().Path()
			w.Close()
			if err := export.PDF(path, g); err != nil {
				log.Printf("export: pdf failed: %v", err)
				dialog.ShowError(err, win)
			}
		}, win)
	})

	exportPNG := fyne.NewMenuItem("Export PNG...", func() {
		dialog.ShowFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil || w == nil {
				return
			}
			path := w.URI().Path()
			w.Close()
			if err := export.PNG(path, g); err != nil {
				log.Printf("export: png failed: %v", err)
				dialog.ShowError(err, win)
			}
		}, win)
	})

	undo := fyne.NewMenuItem("Undo", func() {
		ctrl.Undo()
		board.Refresh()
	})
	redo := fyne.NewMenuItem("Redo", func() {
		ctrl.Redo()
		board.Refresh()
	})
	clear := fyne.NewMenuItem("Clear Canvas", func() {
		if err := ctrl.ClearCanvas(); err != nil {
			log.Printf("clear: snapshot failed, canvas untouched: %v", err)
			return
		}
		board.Refresh()
	})

	return fyne.NewMainMenu(
		fyne.NewMenu("File", saveDoc, loadDoc, fyne.NewMenuItemSeparator(), exportPDF, exportPNG),
		fyne.NewMenu("Edit", undo, redo, fyne.NewMenuItemSeparator(), clear),
	)
}
