package progress

import (
	"testing"
	"time"
)

func TestReporterPubSub(t *testing.T) {
	r := NewReporter()
	ch := r.Subscribe()

	want := &ScanProgress{Phase: PhaseScanning, FilesVisited: 7}
	r.UpdateScanProgress(want)

	select {
	case update := <-ch:
		got, ok := update.(*ScanProgress)
		if !ok || got.FilesVisited != 7 {
			t.Errorf("received %v, want the published scan snapshot", update)
		}
	case <-time.After(time.Second):
		t.Fatal("no update delivered to subscriber")
	}

	if got := r.GetScanProgress(); got != want {
		t.Errorf("GetScanProgress() = %v, want the last published snapshot", got)
	}
}

func TestReporterCleanProgress(t *testing.T) {
	r := NewReporter()

	want := &CleanProgress{Phase: PhaseCleaning, Removed: 3, Total: 10}
	r.UpdateCleanProgress(want)

	if got := r.GetCleanProgress(); got != want {
		t.Errorf("GetCleanProgress() = %v, want the last published snapshot", got)
	}
}

func TestReporterSlowListenerDoesNotBlock(t *testing.T) {
	r := NewReporter()
	r.Subscribe() // never drained

	// Publishing more updates than the channel buffers must not stall.
	for i := 0; i < 100; i++ {
		r.UpdateScanProgress(&ScanProgress{FilesVisited: i})
	}
	if got := r.GetScanProgress().FilesVisited; got != 99 {
		t.Errorf("last snapshot = %d, want 99", got)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	r := NewReporter()
	ch := r.Subscribe()
	r.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Error("unsubscribed channel should be closed")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{15, 10, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.done, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{3 * time.Second, "3s"},
		{2*time.Minute + 3*time.Second, "2m3s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h2m3s"},
		{500 * time.Millisecond, "1s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
