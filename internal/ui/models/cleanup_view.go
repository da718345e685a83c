package models

import (
	"fmt"
	"strings"
	"time"

	teaprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/macsweep/macsweep/internal/cleaner"
	"github.com/macsweep/macsweep/internal/progress"
	"github.com/macsweep/macsweep/internal/ui/styles"
	"github.com/macsweep/macsweep/pkg/utils"
)

// CleanupViewModel runs the executor in the background and renders a
// progress bar driven by its progress reporter.
type CleanupViewModel struct {
	executor *cleaner.Executor
	paths    []string

	reporter *progress.Reporter
	updates  <-chan interface{}

	bar         teaprogress.Model
	removed     int
	total       int
	freed       int64
	currentPath string
	startTime   time.Time
	cleaning    bool
}

// NewCleanupViewModel creates a cleanup view for the given paths.
func NewCleanupViewModel(opts cleaner.Options, paths []string) *CleanupViewModel {
	exec := cleaner.New(opts)
	reporter := progress.NewReporter()
	exec.SetProgressReporter(reporter)

	return &CleanupViewModel{
		executor:  exec,
		paths:     paths,
		reporter:  reporter,
		updates:   reporter.Subscribe(),
		bar:       teaprogress.New(teaprogress.WithDefaultGradient()),
		total:     len(paths),
		startTime: time.Now(),
		cleaning:  true,
	}
}

// Init starts the cleanup and the progress pump.
func (m *CleanupViewModel) Init() tea.Cmd {
	return tea.Batch(m.performCleanup, m.waitForProgress())
}

func (m *CleanupViewModel) performCleanup() tea.Msg {
	return CleanupCompleteMsg{Result: m.executor.Clean(m.paths)}
}

func (m *CleanupViewModel) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.updates
		if !ok {
			return nil
		}
		if p, ok := update.(*progress.CleanProgress); ok {
			return CleanProgressMsg{
				Removed:     p.Removed,
				Total:       p.Total,
				Freed:       p.BytesFreed,
				CurrentPath: p.CurrentPath,
			}
		}
		return CleanProgressMsg{}
	}
}

// Update handles messages.
func (m *CleanupViewModel) Update(msg tea.Msg) (*CleanupViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case CleanProgressMsg:
		m.removed = msg.Removed
		m.freed = msg.Freed
		if msg.Total > 0 {
			m.total = msg.Total
		}
		if msg.CurrentPath != "" {
			m.currentPath = msg.CurrentPath
		}
		return m, m.waitForProgress()

	case CleanupCompleteMsg:
		m.cleaning = false
		return m, nil

	case teaprogress.FrameMsg:
		model, cmd := m.bar.Update(msg)
		m.bar = model.(teaprogress.Model)
		return m, cmd
	}

	return m, nil
}

// View renders the cleanup progress.
func (m *CleanupViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🧹 Cleaning"))
	b.WriteString("\n\n")

	pct := float64(progress.Percent(m.removed, m.total)) / 100
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%d/%d items — %s freed ",
		m.removed, m.total, utils.FormatBytes(m.freed)))
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("(%s)",
		progress.FormatDuration(time.Since(m.startTime)))))
	b.WriteString("\n")

	if m.currentPath != "" {
		b.WriteString(styles.DimStyle.Render("Current: "))
		b.WriteString(styles.FilePathStyle.Render(truncatePath(m.currentPath, 60)))
		b.WriteString("\n")
	}

	if m.cleaning {
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("Cleanup in progress — please wait"))
	}

	return b.String()
}
