package scanner

import (
	"testing"
	"time"

	"github.com/macsweep/macsweep/internal/classify"
)

func entry(path string, size int64) Entry {
	return Entry{Path: path, Size: size, ModTime: time.Now()}
}

func TestScanResultTotals(t *testing.T) {
	r := NewScanResult()
	r.add(classify.CategoryLogs, entry("/a/app.log", 10))
	r.add(classify.CategoryLogs, entry("/a/sys.log", 20))
	r.add(classify.CategoryCache, entry("/a/x.tmp", 5))

	if r.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d, want 3", r.TotalCount())
	}
	if r.TotalSize() != 35 {
		t.Errorf("TotalSize() = %d, want 35", r.TotalSize())
	}

	totals := r.Totals()
	if len(totals) != 2 {
		t.Fatalf("Totals() returned %d categories, want 2", len(totals))
	}
	// Fixed category order: cache precedes logs.
	if totals[0].Category != classify.CategoryCache || totals[0].TotalSize != 5 {
		t.Errorf("totals[0] = %+v, want cache with 5 bytes", totals[0])
	}
	if totals[1].Category != classify.CategoryLogs || totals[1].FileCount != 2 || totals[1].TotalSize != 30 {
		t.Errorf("totals[1] = %+v, want logs with 2 files, 30 bytes", totals[1])
	}
}

func TestScanResultIsEmpty(t *testing.T) {
	r := NewScanResult()
	if !r.IsEmpty() {
		t.Error("fresh result should be empty")
	}
	r.add(classify.CategoryCache, entry("/x.tmp", 1))
	if r.IsEmpty() {
		t.Error("result with an entry should not be empty")
	}
}

func TestScanResultMergeKeepsDuplicates(t *testing.T) {
	a := NewScanResult()
	a.add(classify.CategoryLogs, entry("/shared/app.log", 10))

	b := NewScanResult()
	b.add(classify.CategoryLogs, entry("/shared/app.log", 10))
	b.add(classify.CategoryCache, entry("/other/x.tmp", 3))

	a.Merge(b)

	// Overlapping roots are not deduplicated.
	logs := a.Entries(classify.CategoryLogs)
	if len(logs) != 2 {
		t.Errorf("logs after merge = %d entries, want 2 (duplicate preserved)", len(logs))
	}
	if a.TotalCount() != 3 || a.TotalSize() != 23 {
		t.Errorf("after merge count=%d size=%d, want 3 and 23", a.TotalCount(), a.TotalSize())
	}
}

func TestScanResultPaths(t *testing.T) {
	r := NewScanResult()
	r.add(classify.CategoryLogs, entry("/a/app.log", 10))
	r.add(classify.CategoryCache, entry("/a/x.tmp", 5))
	r.add(classify.CategoryBackups, entry("/a/db.bak", 7))

	paths, total := r.Paths(classify.CategoryLogs, classify.CategoryBackups)
	if len(paths) != 2 || total != 17 {
		t.Errorf("Paths() = %v, %d; want 2 paths totalling 17", paths, total)
	}

	paths, total = r.Paths()
	if len(paths) != 0 || total != 0 {
		t.Errorf("Paths() with no categories = %v, %d; want empty", paths, total)
	}
}

func TestFormatScanResultTotalsSorted(t *testing.T) {
	r := NewFormatScanResult()
	r.add(classify.FormatImages, ".png", entry("/d/a.png", 100))
	r.add(classify.FormatImages, ".jpg", entry("/d/b.jpg", 300))
	r.add(classify.FormatDocuments, ".pdf", entry("/d/c.pdf", 50))

	totals := r.Totals()
	if len(totals) != 2 {
		t.Fatalf("Totals() returned %d categories, want 2", len(totals))
	}
	if totals[0].Category != classify.FormatImages || totals[0].TotalSize != 400 {
		t.Errorf("totals[0] = %+v, want images with 400 bytes", totals[0])
	}
	if totals[0].Extensions[0].Extension != ".jpg" {
		t.Errorf("largest images extension = %s, want .jpg", totals[0].Extensions[0].Extension)
	}
	if totals[1].Category != classify.FormatDocuments {
		t.Errorf("totals[1] = %+v, want documents", totals[1])
	}
}

func TestFormatScanResultPaths(t *testing.T) {
	r := NewFormatScanResult()
	r.add(classify.FormatImages, ".png", entry("/d/a.png", 100))
	r.add(classify.FormatImages, ".jpg", entry("/d/b.jpg", 300))

	paths, total := r.Paths(classify.FormatImages, ".png")
	if len(paths) != 1 || paths[0] != "/d/a.png" || total != 100 {
		t.Errorf("Paths(images, .png) = %v, %d; want just a.png with 100", paths, total)
	}

	paths, total = r.Paths(classify.FormatVideos, ".mkv")
	if len(paths) != 0 || total != 0 {
		t.Errorf("Paths of an absent pair = %v, %d; want empty", paths, total)
	}
}
