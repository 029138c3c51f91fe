// cmd/afrofeast/main.go
//
// This is the entry point for the AfroFeast terminal.
// Run `afrofeast` from the estate's project directory, or pass the directory
// as the first argument.
//
// Flow:
// 1. Make sure the .afrofeast folder and its config.yaml exist
// 2. Load configuration, catalog and the order journal
// 3. Launch the TUI

package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/afrofeast/internal/config"
	"github.com/kingrea/afrofeast/internal/tui"
)

func main() {
	projectDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		projectDir, err = filepath.Abs(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
	}

	if err := config.InitEstateDir(projectDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .afrofeast directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(projectDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting AfroFeast: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Run blocks until the user quits
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
