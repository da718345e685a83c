// Package testutil provides test fixtures for macsweep tests.
// All file operations use t.TempDir() for isolated, auto-cleaned trees.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Fixture builds a scannable directory tree under a temp root.
type Fixture struct {
	T       *testing.T
	RootDir string
}

// NewFixture creates an empty fixture rooted in t.TempDir().
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, RootDir: t.TempDir()}
}

// Path returns the full path for a relative path within the fixture.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.RootDir, relPath)
}

// CreateFile creates a file with the given content, making parent
// directories as needed, and returns its full path.
func (f *Fixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateFileWithAge creates a file and backdates its modification time.
func (f *Fixture) CreateFileWithAge(relPath string, content []byte, age time.Duration) string {
	f.T.Helper()

	fullPath := f.CreateFile(relPath, content)
	oldTime := time.Now().Add(-age)
	if err := os.Chtimes(fullPath, oldTime, oldTime); err != nil {
		f.T.Fatalf("failed to set file time for %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateFileOfSize creates a sparse file of the given size. Sparse files
// report the requested size from Stat without occupying disk.
func (f *Fixture) CreateFileOfSize(relPath string, size int64) string {
	f.T.Helper()

	fullPath := f.CreateFile(relPath, nil)
	if err := os.Truncate(fullPath, size); err != nil {
		f.T.Fatalf("failed to grow file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateDir creates a directory (and parents) and returns its full path.
func (f *Fixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateSymlink creates a symbolic link at linkPath pointing to target.
func (f *Fixture) CreateSymlink(target, linkPath string) string {
	f.T.Helper()

	fullLinkPath := filepath.Join(f.RootDir, linkPath)
	if err := os.MkdirAll(filepath.Dir(fullLinkPath), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullLinkPath, err)
	}
	if err := os.Symlink(target, fullLinkPath); err != nil {
		f.T.Fatalf("failed to create symlink %s -> %s: %v", fullLinkPath, target, err)
	}
	return fullLinkPath
}

// CreateBrokenSymlink creates a symlink to a target that does not exist.
func (f *Fixture) CreateBrokenSymlink(linkPath string) string {
	f.T.Helper()
	return f.CreateSymlink(filepath.Join(f.RootDir, "missing-target"), linkPath)
}

// FileExists reports whether the path resolves to an existing file.
func (f *Fixture) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AssertFileExists fails the test if the file does not exist.
func (f *Fixture) AssertFileExists(path string) {
	f.T.Helper()
	if !f.FileExists(path) {
		f.T.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file still exists.
func (f *Fixture) AssertFileNotExists(path string) {
	f.T.Helper()
	if f.FileExists(path) {
		f.T.Errorf("expected file to not exist: %s", path)
	}
}

// PopulateNodeModules creates a node_modules tree with a few packages
// under the given project directory and returns the node_modules path.
func (f *Fixture) PopulateNodeModules(projectRel string) string {
	f.T.Helper()

	nm := filepath.Join(projectRel, "node_modules")
	for _, pkg := range []string{"lodash", "express", ".bin"} {
		f.CreateFile(filepath.Join(nm, pkg, "package.json"),
			[]byte(`{"name": "`+pkg+`", "version": "1.0.0"}`))
	}
	return f.Path(nm)
}
