package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/macsweep/macsweep/internal/classify"
	"github.com/macsweep/macsweep/internal/progress"
)

// ScanFormats walks a single directory (recursively, skipping hidden
// subtrees) and buckets every regular file by format rather than cleanup
// intent. Unlike Scan there is no depth bound and every file receives a
// category; the default bucket is "other".
func (s *Scanner) ScanFormats(dir string) *FormatScanResult {
	result := NewFormatScanResult()
	start := time.Now()
	visited := 0

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		cat := classify.CategorizeFormat(ext, path)
		result.add(cat, ext, Entry{Path: path, Size: info.Size(), ModTime: info.ModTime()})

		visited++
		s.report(&progress.ScanProgress{
			Phase:        progress.PhaseScanning,
			Root:         dir,
			CurrentPath:  path,
			FilesVisited: visited,
			FilesFound:   visited,
			TotalSize:    result.TotalSize(),
			StartTime:    start,
		})
		return nil
	})

	s.report(&progress.ScanProgress{
		Phase:        progress.PhaseComplete,
		Root:         dir,
		FilesVisited: visited,
		FilesFound:   result.TotalCount(),
		TotalSize:    result.TotalSize(),
		StartTime:    start,
	})

	return result
}
