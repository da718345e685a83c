package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/macsweep/macsweep/internal/classify"
	"github.com/macsweep/macsweep/internal/scanner"
	"github.com/macsweep/macsweep/internal/ui/styles"
	"github.com/macsweep/macsweep/pkg/utils"
)

// CategoryItem is one selectable category row.
type CategoryItem struct {
	Category classify.Category
	Count    int
	Size     int64
	Selected bool
}

// CategoryViewModel handles category selection.
type CategoryViewModel struct {
	result     *scanner.ScanResult
	categories []CategoryItem
	cursor     int
}

// NewCategoryViewModel builds the checklist from the scan totals, keeping
// the fixed category order.
func NewCategoryViewModel(result *scanner.ScanResult) *CategoryViewModel {
	var categories []CategoryItem
	for _, t := range result.Totals() {
		categories = append(categories, CategoryItem{
			Category: t.Category,
			Count:    t.FileCount,
			Size:     t.TotalSize,
		})
	}

	return &CategoryViewModel{
		result:     result,
		categories: categories,
	}
}

// Init initializes the category view.
func (m *CategoryViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *CategoryViewModel) Update(msg tea.Msg) (*CategoryViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.categories)-1 {
				m.cursor++
			}
		case " ":
			if len(m.categories) > 0 {
				m.categories[m.cursor].Selected = !m.categories[m.cursor].Selected
			}
		case "a":
			for i := range m.categories {
				m.categories[i].Selected = true
			}
		case "n":
			for i := range m.categories {
				m.categories[i].Selected = false
			}
		case "enter":
			selected := m.selectedCategories()
			if len(selected) == 0 {
				return m, nil
			}
			return m, func() tea.Msg {
				return CategoriesSelectedMsg{Selected: selected}
			}
		}
	}

	return m, nil
}

func (m *CategoryViewModel) selectedCategories() []classify.Category {
	var selected []classify.Category
	for _, item := range m.categories {
		if item.Selected {
			selected = append(selected, item.Category)
		}
	}
	return selected
}

// View renders the category checklist.
func (m *CategoryViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🧹 Select Categories to Clean"))
	b.WriteString("\n\n")

	if len(m.categories) == 0 {
		b.WriteString(styles.SuccessStyle.Render("✨ No cleanup candidates found. Your system looks clean!"))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("Press q to quit"))
		return b.String()
	}

	var selCount int
	var selSize int64

	for i, item := range m.categories {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.SelectedStyle.Render("> ")
		}

		checkbox := styles.CheckboxUncheckedStyle.Render("[ ]")
		if item.Selected {
			checkbox = styles.CheckboxStyle.Render("[x]")
			selCount += item.Count
			selSize += item.Size
		}

		line := fmt.Sprintf("%s%s %s (%d items, %s)",
			cursor,
			checkbox,
			styles.CategoryStyle.Render(item.Category.Title()),
			item.Count,
			utils.FormatBytes(item.Size))

		if i == m.cursor {
			line = styles.BoldStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.BoldStyle.Render(fmt.Sprintf("Selected: %d items, %s",
		selCount, utils.FormatBytes(selSize))))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ move • space toggle • a all • n none • enter continue • q quit"))

	return b.String()
}
