package scanner

import (
	"testing"

	"github.com/macsweep/macsweep/internal/classify"
	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/progress"
	"github.com/macsweep/macsweep/internal/testutil"
)

func newTestScanner(t *testing.T) *Scanner {
	t.Helper()
	s, err := New(config.GetDefault())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestScanCategorizesByDepth(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("a.log", []byte("log line"))
	f.CreateFile("sub/b.tmp", []byte("scratch"))
	f.CreateFile("sub/keep.txt", []byte("keep me"))
	f.CreateFile("sub/deep/deeper/too-far.log", []byte("below the cutoff"))

	s := newTestScanner(t)
	result := s.Scan(f.RootDir, 3)

	logs := result.Entries(classify.CategoryLogs)
	if len(logs) != 1 || logs[0].Path != f.Path("a.log") {
		t.Errorf("logs = %v, want single entry for a.log", logs)
	}
	cache := result.Entries(classify.CategoryCache)
	if len(cache) != 1 || cache[0].Path != f.Path("sub/b.tmp") {
		t.Errorf("cache = %v, want single entry for sub/b.tmp", cache)
	}

	// keep.txt is fresh and small: not a candidate. too-far.log sits at
	// depth 3 and the cutoff stops descent before it is visited.
	for _, e := range result.Entries(classify.CategoryLogs) {
		if e.Path == f.Path("sub/deep/deeper/too-far.log") {
			t.Error("file below the depth cutoff was classified")
		}
	}
	if result.TotalCount() != 2 {
		t.Errorf("TotalCount() = %d, want 2", result.TotalCount())
	}
}

func TestScanDepthZeroVisitsNothing(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("a.log", []byte("x"))

	s := newTestScanner(t)
	result := s.Scan(f.RootDir, 0)
	if !result.IsEmpty() {
		t.Errorf("Scan with maxDepth 0 classified %d entries, want none", result.TotalCount())
	}
	if got := s.CountFiles(f.RootDir, 0); got != 0 {
		t.Errorf("CountFiles with maxDepth 0 = %d, want 0", got)
	}
}

func TestScanSkipsHiddenDirsExceptAllowlist(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile(".hidden/secret.log", []byte("x"))
	f.CreateFile(".cache/blob.dat", []byte("x"))

	s := newTestScanner(t)
	result := s.Scan(f.RootDir, 3)

	for _, e := range result.Entries(classify.CategoryLogs) {
		if e.Path == f.Path(".hidden/secret.log") {
			t.Error("scan descended into a non-allowlisted hidden directory")
		}
	}

	// .cache is allowlisted; it matches the cache category as a directory
	// and is recorded as a single unit.
	cache := result.Entries(classify.CategoryCache)
	if len(cache) != 1 || cache[0].Path != f.Path(".cache") {
		t.Errorf("cache = %v, want single directory entry for .cache", cache)
	}
}

func TestScanDirectoryAsUnit(t *testing.T) {
	f := testutil.NewFixture(t)
	nm := f.PopulateNodeModules("proj")

	s := newTestScanner(t)
	result := s.Scan(f.RootDir, 5)

	// node_modules is recorded as a directory unit. Its non-hidden
	// subdirectories carry "node_modules" in their paths and match again
	// on their own; .bin is hidden and skipped.
	dev := result.Entries(classify.CategoryDevelopment)
	if len(dev) != 3 {
		t.Fatalf("development entries = %d, want 3 (node_modules, lodash, express)", len(dev))
	}
	if dev[0].Path != nm {
		t.Errorf("first development entry = %s, want %s", dev[0].Path, nm)
	}
	if dev[0].Size <= 0 {
		t.Errorf("directory entry size = %d, want recursive content size > 0", dev[0].Size)
	}
}

func TestScanSuppressedFilesStillVisited(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("proj/node_modules/pkg/index.js", []byte("x"))
	f.CreateFile("proj/node_modules/pkg/util.log", []byte("x"))
	f.CreateFile("readme.txt", []byte("x"))

	s := newTestScanner(t)
	pr := progress.NewReporter()
	s.SetProgressReporter(pr)

	result := s.Scan(f.RootDir, 5)

	// util.log lives under the matched node_modules unit: it is visited
	// by the walk but never classified as a separate entry.
	if len(result.Entries(classify.CategoryLogs)) != 0 {
		t.Error("file under a matched directory was classified separately")
	}

	final := pr.GetScanProgress()
	if final == nil || final.Phase != progress.PhaseComplete {
		t.Fatalf("final progress = %+v, want complete phase", final)
	}
	if want := s.CountFiles(f.RootDir, 5); final.FilesVisited != want {
		t.Errorf("FilesVisited = %d, CountFiles = %d; counters must agree", final.FilesVisited, want)
	}
}

func TestCountFilesMatchesVisited(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("a.log", []byte("x"))
	f.CreateFile("sub/b.tmp", []byte("x"))
	f.CreateFile("sub/c.txt", []byte("x"))
	f.CreateFile(".hidden/d.txt", []byte("x"))
	f.CreateFile("sub/deep/deeper/e.txt", []byte("x"))

	s := newTestScanner(t)
	pr := progress.NewReporter()
	s.SetProgressReporter(pr)

	for _, depth := range []int{1, 2, 3, 10} {
		s.Scan(f.RootDir, depth)
		visited := pr.GetScanProgress().FilesVisited
		if counted := s.CountFiles(f.RootDir, depth); counted != visited {
			t.Errorf("depth %d: CountFiles = %d, scan visited %d", depth, counted, visited)
		}
	}
}

func TestScanMissingRoot(t *testing.T) {
	s := newTestScanner(t)
	result := s.Scan("/nonexistent/root", 3)
	if !result.IsEmpty() {
		t.Errorf("Scan of a missing root returned %d entries, want none", result.TotalCount())
	}
}
