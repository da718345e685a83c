// Package platform resolves user-specific filesystem locations and guards
// against scanning or deleting system paths.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	return os.UserHomeDir()
}

// DownloadsDir returns the user's downloads folder, the default target for
// format analysis.
func DownloadsDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads"), nil
}

// ExpandPath expands a leading "~" against home. Paths without a leading
// tilde are returned unchanged.
func ExpandPath(path, home string) string {
	if path == "~" || path == "~/" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// QuickScanRoots expands the configured quick-scan paths and keeps only
// those that exist as directories.
func QuickScanRoots(paths []string) ([]string, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}

	var roots []string
	for _, p := range paths {
		expanded := ExpandPath(p, home)
		info, err := os.Stat(expanded)
		if err != nil || !info.IsDir() {
			continue
		}
		roots = append(roots, expanded)
	}
	return roots, nil
}

// ValidateScanRoot checks the one fatal precondition of a scan: the root
// must exist and be a directory.
func ValidateScanRoot(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path %q does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access path %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", path)
	}
	return nil
}

// IsProtectedPath reports whether a path must never be deleted, regardless
// of what the scan classified it as.
func IsProtectedPath(path string) bool {
	protected := []string{
		"/",
		"/bin",
		"/boot",
		"/dev",
		"/etc",
		"/lib",
		"/lib64",
		"/proc",
		"/root",
		"/sbin",
		"/sys",
		"/usr",
		"/var",
		"/System",         // macOS
		"/Applications",   // macOS
		"/Library/System", // macOS
	}

	clean := filepath.Clean(path)
	for _, p := range protected {
		if clean == p {
			return true
		}
	}
	return false
}
