// Package ui hosts the interactive terminal mode: a scan → category
// selection → confirmation → cleanup → summary flow built on Bubble Tea.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/macsweep/macsweep/internal/cleaner"
	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/scanner"
	"github.com/macsweep/macsweep/internal/ui/models"
)

// RunInteractive starts the interactive TUI over the given scan roots.
func RunInteractive(cfg *config.Config, roots []string, maxDepth int) error {
	scnr, err := scanner.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create scanner: %w", err)
	}

	scanView := models.NewScanViewModel(scnr, roots, maxDepth)
	opts := cleaner.Options{DryRun: cfg.DryRun, Verbose: false}

	m := models.NewAppModel(scanView, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running interactive mode: %w", err)
	}
	return nil
}
