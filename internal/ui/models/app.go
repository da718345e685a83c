package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/macsweep/macsweep/internal/cleaner"
	"github.com/macsweep/macsweep/internal/scanner"
)

// ViewState represents the current view in the app.
type ViewState int

const (
	ViewScanning ViewState = iota
	ViewCategorySelection
	ViewConfirmation
	ViewCleaning
	ViewSummary
)

// AppModel is the root model for the interactive TUI. It owns the scan →
// select → confirm → clean → summary state machine and delegates rendering
// to the view model of the active state.
type AppModel struct {
	state ViewState

	cleanerOpts cleaner.Options
	scanResult  *scanner.ScanResult

	scanView     *ScanViewModel
	categoryView *CategoryViewModel
	confirmView  *ConfirmViewModel
	cleanupView  *CleanupViewModel
	summaryView  *SummaryViewModel

	selectedPaths []string
	selectedSize  int64

	width  int
	height int
}

// NewAppModel creates the root model. The scan view is handed in ready to
// run so the program starts scanning immediately.
func NewAppModel(scanView *ScanViewModel, opts cleaner.Options) *AppModel {
	return &AppModel{
		state:       ViewScanning,
		cleanerOpts: opts,
		scanView:    scanView,
	}
}

// Init initializes the model.
func (m *AppModel) Init() tea.Cmd {
	return m.scanView.Init()
}

// Update handles messages.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Quitting mid-deletion would leave the accounting unseen.
			if m.state != ViewCleaning {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ScanCompleteMsg:
		m.scanResult = msg.Result
		m.categoryView = NewCategoryViewModel(m.scanResult)
		// Let the scan view render its completion state once, then move on.
		m.state = ViewCategorySelection
		return m, nil

	case CategoriesSelectedMsg:
		m.selectedPaths, m.selectedSize = m.scanResult.Paths(msg.Selected...)
		m.confirmView = NewConfirmViewModel(m.selectedPaths, m.selectedSize, m.cleanerOpts.DryRun)
		m.state = ViewConfirmation
		return m, nil

	case ConfirmedMsg:
		m.cleanupView = NewCleanupViewModel(m.cleanerOpts, m.selectedPaths)
		m.state = ViewCleaning
		return m, m.cleanupView.Init()

	case CancelledMsg:
		m.state = ViewCategorySelection
		return m, nil

	case CleanupCompleteMsg:
		m.summaryView = NewSummaryViewModel(msg.Result)
		m.state = ViewSummary
		return m, nil
	}

	return m.delegateUpdate(msg)
}

// delegateUpdate forwards the message to the active view.
func (m *AppModel) delegateUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case ViewScanning:
		if m.scanView != nil {
			m.scanView, cmd = m.scanView.Update(msg)
		}
	case ViewCategorySelection:
		if m.categoryView != nil {
			m.categoryView, cmd = m.categoryView.Update(msg)
		}
	case ViewConfirmation:
		if m.confirmView != nil {
			m.confirmView, cmd = m.confirmView.Update(msg)
		}
	case ViewCleaning:
		if m.cleanupView != nil {
			m.cleanupView, cmd = m.cleanupView.Update(msg)
		}
	case ViewSummary:
		if m.summaryView != nil {
			m.summaryView, cmd = m.summaryView.Update(msg)
		}
	}

	return m, cmd
}

// View renders the active view.
func (m *AppModel) View() string {
	switch m.state {
	case ViewScanning:
		if m.scanView != nil {
			return m.scanView.View()
		}
	case ViewCategorySelection:
		if m.categoryView != nil {
			return m.categoryView.View()
		}
	case ViewConfirmation:
		if m.confirmView != nil {
			return m.confirmView.View()
		}
	case ViewCleaning:
		if m.cleanupView != nil {
			return m.cleanupView.View()
		}
	case ViewSummary:
		if m.summaryView != nil {
			return m.summaryView.View()
		}
	}
	return ""
}
