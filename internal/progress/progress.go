// Package progress provides thread-safe progress reporting for scans and
// cleanup runs. Producers publish snapshots; any number of consumers
// subscribe through buffered channels with non-blocking delivery.
package progress

import (
	"fmt"
	"sync"
	"time"
)

// Phase represents the current phase of an operation.
type Phase string

const (
	PhaseScanning Phase = "scanning"
	PhaseCleaning Phase = "cleaning"
	PhaseComplete Phase = "complete"
	PhaseError    Phase = "error"
)

// ScanProgress is a snapshot of a running scan. FilesVisited increases
// monotonically and, divided by the precomputed CountFiles total, yields a
// completion percentage.
type ScanProgress struct {
	Phase        Phase
	Root         string
	CurrentPath  string
	FilesVisited int
	FilesFound   int
	TotalSize    int64
	StartTime    time.Time
	Error        error
}

// CleanProgress is a snapshot of a running cleanup.
type CleanProgress struct {
	Phase       Phase
	CurrentPath string
	Removed     int
	Total       int
	BytesFreed  int64
	StartTime   time.Time
	Error       error
}

// Reporter fans progress updates out to subscribers.
type Reporter struct {
	scanProgress  *ScanProgress
	cleanProgress *CleanProgress
	mu            sync.RWMutex
	listeners     []chan interface{}
}

// NewReporter creates a progress reporter with no subscribers.
func NewReporter() *Reporter {
	return &Reporter{listeners: make([]chan interface{}, 0)}
}

// Subscribe returns a channel that receives progress updates.
func (r *Reporter) Subscribe() <-chan interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan interface{}, 16)
	r.listeners = append(r.listeners, ch)
	return ch
}

// Unsubscribe closes and removes a listener channel.
func (r *Reporter) Unsubscribe(ch <-chan interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, listener := range r.listeners {
		if listener == ch {
			close(listener)
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// UpdateScanProgress records a scan snapshot and notifies listeners.
func (r *Reporter) UpdateScanProgress(update *ScanProgress) {
	r.mu.Lock()
	r.scanProgress = update
	listeners := make([]chan interface{}, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	r.notify(listeners, update)
}

// UpdateCleanProgress records a cleanup snapshot and notifies listeners.
func (r *Reporter) UpdateCleanProgress(update *CleanProgress) {
	r.mu.Lock()
	r.cleanProgress = update
	listeners := make([]chan interface{}, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	r.notify(listeners, update)
}

// notify delivers an update without blocking; slow listeners miss
// intermediate snapshots rather than stalling the operation.
func (r *Reporter) notify(listeners []chan interface{}, update interface{}) {
	for _, listener := range listeners {
		select {
		case listener <- update:
		default:
		}
	}
}

// GetScanProgress returns the most recent scan snapshot.
func (r *Reporter) GetScanProgress() *ScanProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scanProgress
}

// GetCleanProgress returns the most recent cleanup snapshot.
func (r *Reporter) GetCleanProgress() *CleanProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cleanProgress
}

// Percent computes a completion percentage against a precomputed total.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	if done >= total {
		return 100
	}
	return done * 100 / total
}

// FormatDuration formats a duration as 1h2m3s, 2m3s or 3s.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
