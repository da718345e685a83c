package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/macsweep/macsweep/internal/ui/styles"
	"github.com/macsweep/macsweep/pkg/utils"
)

// ConfirmViewModel shows what is about to be deleted and asks for a final
// yes/no.
type ConfirmViewModel struct {
	paths  []string
	total  int64
	dryRun bool
}

// NewConfirmViewModel creates a confirmation view for the selected paths.
func NewConfirmViewModel(paths []string, total int64, dryRun bool) *ConfirmViewModel {
	return &ConfirmViewModel{paths: paths, total: total, dryRun: dryRun}
}

// Init initializes the confirm view.
func (m *ConfirmViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *ConfirmViewModel) Update(msg tea.Msg) (*ConfirmViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			return m, func() tea.Msg { return ConfirmedMsg{} }
		case "n", "N", "esc":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}
	return m, nil
}

// View renders the confirmation.
func (m *ConfirmViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("⚠️  Confirm Cleanup"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Items to be removed: %s\n",
		styles.BoldStyle.Render(fmt.Sprintf("%d", len(m.paths)))))
	b.WriteString(fmt.Sprintf("Total size: %s\n\n",
		styles.FileSizeStyle.Render(utils.FormatBytes(m.total))))

	b.WriteString(styles.SubtitleStyle.Render("Sample:"))
	b.WriteString("\n")
	for i, path := range m.paths {
		if i == 10 {
			b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  ... and %d more\n", len(m.paths)-10)))
			break
		}
		b.WriteString("  • ")
		b.WriteString(styles.FilePathStyle.Render(truncatePath(path, 70)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.dryRun {
		b.WriteString(styles.WarningStyle.Render("DRY RUN — nothing will actually be deleted"))
	} else {
		b.WriteString(styles.ErrorStyle.Render("This operation cannot be undone!"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("y confirm • n cancel"))

	return b.String()
}
