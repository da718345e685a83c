package models

import (
	"github.com/macsweep/macsweep/internal/classify"
	"github.com/macsweep/macsweep/internal/cleaner"
	"github.com/macsweep/macsweep/internal/scanner"
)

// ScanCompleteMsg is sent when the scan finishes.
type ScanCompleteMsg struct {
	Result *scanner.ScanResult
}

// ScanProgressMsg carries a live scan progress snapshot.
type ScanProgressMsg struct {
	Visited     int
	Found       int
	Size        int64
	CurrentPath string
}

// CategoriesSelectedMsg is sent when the user confirms a category choice.
type CategoriesSelectedMsg struct {
	Selected []classify.Category
}

// ConfirmedMsg is sent when the user confirms the deletion.
type ConfirmedMsg struct{}

// CancelledMsg is sent when the user backs out of the confirmation.
type CancelledMsg struct{}

// CleanProgressMsg carries a live cleanup progress snapshot.
type CleanProgressMsg struct {
	Removed     int
	Total       int
	Freed       int64
	CurrentPath string
}

// CleanupCompleteMsg is sent when the cleanup finishes.
type CleanupCompleteMsg struct {
	Result *cleaner.Result
}
