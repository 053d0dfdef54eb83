package main

import (
	"log"
	"os"
	"path/filepath"

	"inkboard/internal/config"
	"inkboard/internal/history"
	"inkboard/internal/scene"
	"inkboard/internal/session"
	"inkboard/internal/store"
	"inkboard/internal/ui"
	"inkboard/internal/viewport"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid default config: %v", err)
	}
	cfgStore := config.NewStore(cfg)

	graph := scene.NewGraph()
	view := viewport.New()
	hist := history.NewEngine(graph, history.DefaultMaxHistory, history.DefaultDebounce)
	ctrl := session.NewController(graph, view, cfgStore, hist)

	docs, err := store.Open(documentPath())
	if err != nil {
		log.Fatalf("open document store: %v", err)
	}

	board := ui.NewBoard(ctrl, graph, view)
	toolbar := ui.NewToolbar(ctrl, cfgStore, board)

	ui.RunApp(board, toolbar, ctrl, graph, docs)
}

// documentPath places the document store next to the user's other app data,
// falling back to the working directory.
func documentPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "inkboard.json"
	}
	if err := os.MkdirAll(filepath.Join(dir, "inkboard"), 0o755); err != nil {
		return "inkboard.json"
	}
	return filepath.Join(dir, "inkboard", "documents.json")
}
