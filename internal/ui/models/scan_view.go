package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/macsweep/macsweep/internal/progress"
	"github.com/macsweep/macsweep/internal/scanner"
	"github.com/macsweep/macsweep/internal/ui/styles"
	"github.com/macsweep/macsweep/pkg/utils"
)

// ScanViewModel drives the scanning phase: it counts the files the scan
// will visit, runs the scan in the background and renders live progress.
type ScanViewModel struct {
	scanner  *scanner.Scanner
	roots    []string
	maxDepth int

	reporter *progress.Reporter
	updates  <-chan interface{}

	spinner     spinner.Model
	scanning    bool
	visited     int
	total       int
	found       int
	size        int64
	currentPath string
	startTime   time.Time
}

// NewScanViewModel creates a scan view over one or more roots.
func NewScanViewModel(scnr *scanner.Scanner, roots []string, maxDepth int) *ScanViewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	reporter := progress.NewReporter()
	scnr.SetProgressReporter(reporter)

	return &ScanViewModel{
		scanner:   scnr,
		roots:     roots,
		maxDepth:  maxDepth,
		reporter:  reporter,
		updates:   reporter.Subscribe(),
		spinner:   s,
		scanning:  true,
		startTime: time.Now(),
	}
}

// scanTotalMsg carries the precomputed file count used as the progress
// denominator.
type scanTotalMsg struct {
	total int
}

// Init starts the spinner, the count pass and the progress pump. The scan
// itself starts once the count arrives.
func (m *ScanViewModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.countFiles,
		m.waitForProgress(),
	)
}

// countFiles precomputes the number of files the scan will visit so that
// progress has a denominator.
func (m *ScanViewModel) countFiles() tea.Msg {
	total := 0
	for _, root := range m.roots {
		total += m.scanner.CountFiles(root, m.maxDepth)
	}
	return scanTotalMsg{total: total}
}

// performScan scans each root and merges the results in root order.
func (m *ScanViewModel) performScan() tea.Msg {
	merged := scanner.NewScanResult()
	for _, root := range m.roots {
		merged.Merge(m.scanner.Scan(root, m.maxDepth))
	}
	return ScanCompleteMsg{Result: merged}
}

// waitForProgress forwards the next reporter update into the tea loop.
func (m *ScanViewModel) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.updates
		if !ok {
			return nil
		}
		if p, ok := update.(*progress.ScanProgress); ok {
			return ScanProgressMsg{
				Visited:     p.FilesVisited,
				Found:       p.FilesFound,
				Size:        p.TotalSize,
				CurrentPath: p.CurrentPath,
			}
		}
		return ScanProgressMsg{}
	}
}

// Update handles messages.
func (m *ScanViewModel) Update(msg tea.Msg) (*ScanViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanTotalMsg:
		m.total = msg.total
		return m, m.performScan

	case ScanProgressMsg:
		m.visited = msg.Visited
		m.found = msg.Found
		m.size = msg.Size
		if msg.CurrentPath != "" {
			m.currentPath = msg.CurrentPath
		}
		return m, m.waitForProgress()

	case ScanCompleteMsg:
		m.scanning = false
		return m, nil
	}

	return m, nil
}

// View renders the scan view.
func (m *ScanViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🧹 MacSweep — Scanning"))
	b.WriteString("\n\n")

	if m.scanning {
		b.WriteString(m.spinner.View())
		pct := progress.Percent(m.visited, m.total)
		b.WriteString(fmt.Sprintf(" Scanning... %d/%d files (%d%%) ", m.visited, m.total, pct))
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("(%s)", time.Since(m.startTime).Round(time.Second))))
		b.WriteString("\n\n")

		if m.currentPath != "" {
			b.WriteString(styles.DimStyle.Render("Current: "))
			b.WriteString(styles.FilePathStyle.Render(truncatePath(m.currentPath, 60)))
			b.WriteString("\n\n")
		}

		b.WriteString(styles.BoldStyle.Render(fmt.Sprintf("Candidates so far: %d (%s)",
			m.found, utils.FormatBytes(m.size))))
	} else {
		b.WriteString(styles.SuccessStyle.Render("✓ Scan complete"))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("Moving to category selection..."))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("Press ctrl+c to cancel"))

	return b.String()
}

// truncatePath shortens a path for single-line display.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
