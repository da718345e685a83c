package classify

import (
	"os"
	"strings"
	"time"
)

// Default fallback thresholds.
const (
	DefaultLargeFileBytes = 100 * 1024 * 1024
	DefaultOldFileAge     = 30 * 24 * time.Hour
)

// Classifier maps filesystem entries to cleanup categories. It is safe for
// concurrent use: it holds no mutable state.
type Classifier struct {
	largeFileBytes int64
	oldFileAge     time.Duration
}

// NewClassifier returns a Classifier with the given fallback thresholds.
// Non-positive values fall back to the defaults.
func NewClassifier(largeFileBytes int64, oldFileAge time.Duration) *Classifier {
	if largeFileBytes <= 0 {
		largeFileBytes = DefaultLargeFileBytes
	}
	if oldFileAge <= 0 {
		oldFileAge = DefaultOldFileAge
	}
	return &Classifier{
		largeFileBytes: largeFileBytes,
		oldFileAge:     oldFileAge,
	}
}

// CategorizeFile returns the cleanup category for a regular file, or false
// when the file is not a cleanup candidate. Pattern rules are checked
// first; the size and age fallbacks re-stat the path and treat any stat
// failure as "rule does not match".
func (c *Classifier) CategorizeFile(path, name string) (Category, bool) {
	nameLower := strings.ToLower(name)
	pathLower := strings.ToLower(path)

	for _, r := range cleanupRules {
		for _, pattern := range r.patterns {
			if strings.HasSuffix(nameLower, pattern) || strings.Contains(pathLower, pattern) {
				return r.category, true
			}
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}

	if info.Size() > c.largeFileBytes {
		return CategoryLargeFiles, true
	}

	if time.Since(info.ModTime()) > c.oldFileAge {
		return CategoryOldFiles, true
	}

	return "", false
}

// CategorizeDirectory returns the cleanup category for a directory, or
// false when it is not a cleanup candidate. Directories have no size or
// age fallback: only the pattern rules apply.
func (c *Classifier) CategorizeDirectory(path, name string) (Category, bool) {
	nameLower := strings.ToLower(name)
	pathLower := strings.ToLower(path)

	for _, r := range cleanupRules {
		for _, pattern := range r.patterns {
			if nameLower == pattern || strings.Contains(pathLower, pattern) {
				return r.category, true
			}
		}
	}

	return "", false
}
