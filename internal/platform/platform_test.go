package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home := "/home/tester"

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/", home},
		{"~/Downloads", "/home/tester/Downloads"},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/other", "~user/other"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in, home); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuickScanRoots(t *testing.T) {
	tmp := t.TempDir()
	existing := filepath.Join(tmp, "Caches")
	if err := os.MkdirAll(existing, 0755); err != nil {
		t.Fatal(err)
	}

	roots, err := QuickScanRoots([]string{existing, filepath.Join(tmp, "missing")})
	if err != nil {
		t.Fatalf("QuickScanRoots failed: %v", err)
	}
	if len(roots) != 1 || roots[0] != existing {
		t.Errorf("QuickScanRoots = %v, want just %s", roots, existing)
	}
}

func TestValidateScanRoot(t *testing.T) {
	tmp := t.TempDir()

	if err := ValidateScanRoot(tmp); err != nil {
		t.Errorf("ValidateScanRoot(existing dir) = %v, want nil", err)
	}
	if err := ValidateScanRoot(filepath.Join(tmp, "missing")); err == nil {
		t.Error("ValidateScanRoot(missing) should error")
	}

	file := filepath.Join(tmp, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateScanRoot(file); err == nil {
		t.Error("ValidateScanRoot(regular file) should error")
	}
}

func TestIsProtectedPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/bin", true},
		{"/usr", true},
		{"/System", true},
		{"/bin/..", true},
		{"/usr/", true},
		{"/home/user/.cache", false},
		{"/tmp/scratch", false},
		{"/usr/local", false},
	}

	for _, tt := range tests {
		if got := IsProtectedPath(tt.path); got != tt.want {
			t.Errorf("IsProtectedPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
