package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskmgr/internal/config"
	"taskmgr/internal/filter"
	"taskmgr/internal/storage"
	"taskmgr/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	mode, err := cfg.View()
	if err != nil {
		fmt.Printf("invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Printf("starting with config %s, view %s", configPath, mode)

	store := storage.New(storage.Seed())
	if err := ui.Run(store, filter.New(mode), cfg, logger); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

// openLog sends the std logger to path. The terminal is owned by the UI,
// so an empty path discards log output.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := tea.LogToFile(path, "taskmgr")
	if err != nil {
		return nil, nil, err
	}
	return log.Default(), func() { f.Close() }, nil
}
