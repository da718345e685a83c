package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/macsweep/macsweep/internal/cleaner"
	"github.com/macsweep/macsweep/internal/ui/styles"
	"github.com/macsweep/macsweep/pkg/utils"
)

// SummaryViewModel shows the final cleanup accounting.
type SummaryViewModel struct {
	result *cleaner.Result
}

// NewSummaryViewModel creates the summary view.
func NewSummaryViewModel(result *cleaner.Result) *SummaryViewModel {
	return &SummaryViewModel{result: result}
}

// Init initializes the summary view.
func (m *SummaryViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *SummaryViewModel) Update(msg tea.Msg) (*SummaryViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "enter", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the summary.
func (m *SummaryViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📊 Cleanup Complete"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s items removed\n",
		styles.SuccessStyle.Render("✓"),
		styles.BoldStyle.Render(fmt.Sprintf("%d", m.result.FilesRemoved))))
	b.WriteString(fmt.Sprintf("%s %s freed\n",
		styles.SuccessStyle.Render("✓"),
		styles.FileSizeStyle.Render(utils.FormatBytes(m.result.BytesFreed))))

	if len(m.result.Skipped) > 0 {
		b.WriteString(fmt.Sprintf("\n%s %d items skipped:\n",
			styles.WarningStyle.Render("⚠"), len(m.result.Skipped)))
		for i, path := range m.result.Skipped {
			if i == 5 {
				b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  ... and %d more\n", len(m.result.Skipped)-5)))
				break
			}
			b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %s\n", m.result.SkippedReason[path])))
		}
	}

	if m.result.DryRun {
		b.WriteString("\n")
		b.WriteString(styles.WarningStyle.Render("This was a dry run. No files were actually deleted."))
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("Run without --dry-run to perform the actual cleanup."))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("Press q to quit"))

	return b.String()
}
