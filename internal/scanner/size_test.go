package scanner

import (
	"testing"

	"github.com/macsweep/macsweep/internal/testutil"
)

func TestDirSize(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("tree/a.txt", make([]byte, 100))
	f.CreateFile("tree/sub/b.txt", make([]byte, 200))
	f.CreateFile("tree/sub/deep/c.txt", make([]byte, 50))

	if got := DirSize(f.Path("tree")); got != 350 {
		t.Errorf("DirSize() = %d, want 350", got)
	}
}

func TestDirSizeEmptyDir(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := f.CreateDir("empty")
	if got := DirSize(dir); got != 0 {
		t.Errorf("DirSize(empty) = %d, want 0", got)
	}
}

func TestDirSizeMissingPath(t *testing.T) {
	// Best-effort: a missing root yields zero, not an error.
	if got := DirSize("/nonexistent/tree"); got != 0 {
		t.Errorf("DirSize(missing) = %d, want 0", got)
	}
}

func TestDirSizeIgnoresBrokenSymlinks(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("tree/a.txt", make([]byte, 10))
	f.CreateBrokenSymlink("tree/dangling")

	if got := DirSize(f.Path("tree")); got != 10 {
		t.Errorf("DirSize() = %d, want 10 (symlink not followed)", got)
	}
}
