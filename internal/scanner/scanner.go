// Package scanner walks directory trees to a bounded depth and collects
// cleanup candidates by category. Traversal is single-threaded and
// best-effort: unreadable entries are skipped, unreadable subtrees abort
// descent into that subtree only, and no failure aborts the whole scan.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/macsweep/macsweep/internal/classify"
	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/progress"
)

// hiddenAllowlist names the hidden directories that are still descended
// into (and evaluated as candidates) despite the general hidden-directory
// exclusion. They are exactly the cleanup-relevant ones.
var hiddenAllowlist = map[string]bool{
	".cache": true,
	".tmp":   true,
	".trash": true,
	".Trash": true,
}

// Scanner categorizes the contents of a directory tree.
type Scanner struct {
	classifier       *classify.Classifier
	progressReporter *progress.Reporter
}

// New builds a Scanner using the configuration's fallback thresholds.
func New(cfg *config.Config) (*Scanner, error) {
	largeBytes, err := cfg.LargeFileBytes()
	if err != nil {
		return nil, err
	}
	return &Scanner{
		classifier: classify.NewClassifier(largeBytes, cfg.OldFileAge()),
	}, nil
}

// SetProgressReporter attaches a progress reporter. Nil disables reporting.
func (s *Scanner) SetProgressReporter(pr *progress.Reporter) {
	s.progressReporter = pr
}

// Scan walks root down to maxDepth and returns the categorized entries.
// root must be an existing directory; the caller validates it up front.
//
// Depth is the number of path separators between root and the current
// directory. Once a directory sits at depth >= maxDepth the walk does not
// descend into it: its files are neither visited nor classified.
//
// A directory that itself matches a category is recorded as a single entry
// sized by DirSize, and the files beneath it are not classified as
// separate entries. Deeper directories are still enumerated and may match
// on their own.
func (s *Scanner) Scan(root string, maxDepth int) *ScanResult {
	result := NewScanResult()
	w := &walkState{scanner: s, root: root, startTime: time.Now()}

	w.walk(root, 0, maxDepth, false, result)

	s.report(&progress.ScanProgress{
		Phase:        progress.PhaseComplete,
		Root:         root,
		FilesVisited: w.visited,
		FilesFound:   result.TotalCount(),
		TotalSize:    result.TotalSize(),
		StartTime:    w.startTime,
	})

	return result
}

// CountFiles performs the identical depth-bounded descent without
// classifying anything and returns the number of regular files the scan
// will visit. Progress consumers divide the scan's visited counter by this
// total to compute completion percentage.
func (s *Scanner) CountFiles(root string, maxDepth int) int {
	return countFiles(root, 0, maxDepth)
}

func countFiles(dir string, depth, maxDepth int) int {
	if depth >= maxDepth {
		return 0
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	n := 0
	for _, ent := range entries {
		if ent.IsDir() {
			if skipHiddenDir(ent.Name()) {
				continue
			}
			n += countFiles(filepath.Join(dir, ent.Name()), depth+1, maxDepth)
			continue
		}
		if ent.Type().IsRegular() {
			n++
		}
	}
	return n
}

// walkState carries the per-scan counters through the recursion.
type walkState struct {
	scanner   *Scanner
	root      string
	visited   int
	startTime time.Time
}

func (w *walkState) walk(dir string, depth, maxDepth int, suppressFiles bool, result *ScanResult) {
	if depth >= maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Permission denied or vanished: abort this subtree only.
		return
	}

	var subdirs []os.DirEntry
	for _, ent := range entries {
		if ent.IsDir() {
			if skipHiddenDir(ent.Name()) {
				continue
			}
			subdirs = append(subdirs, ent)
			continue
		}
		if !ent.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, ent.Name())
		w.visited++
		w.scanner.report(&progress.ScanProgress{
			Phase:        progress.PhaseScanning,
			Root:         w.root,
			CurrentPath:  path,
			FilesVisited: w.visited,
			FilesFound:   result.TotalCount(),
			TotalSize:    result.TotalSize(),
			StartTime:    w.startTime,
		})

		if suppressFiles {
			// An ancestor directory is already the cleanup unit.
			continue
		}

		info, err := ent.Info()
		if err != nil {
			continue
		}
		if cat, ok := w.scanner.classifier.CategorizeFile(path, ent.Name()); ok {
			result.add(cat, Entry{Path: path, Size: info.Size(), ModTime: info.ModTime()})
		}
	}

	for _, d := range subdirs {
		path := filepath.Join(dir, d.Name())
		childSuppress := suppressFiles

		if cat, ok := w.scanner.classifier.CategorizeDirectory(path, d.Name()); ok {
			if info, err := os.Stat(path); err == nil {
				result.add(cat, Entry{Path: path, Size: DirSize(path), ModTime: info.ModTime()})
				childSuppress = true
			}
		}

		w.walk(path, depth+1, maxDepth, childSuppress, result)
	}
}

func (s *Scanner) report(p *progress.ScanProgress) {
	if s.progressReporter == nil {
		return
	}
	s.progressReporter.UpdateScanProgress(p)
}

func skipHiddenDir(name string) bool {
	return strings.HasPrefix(name, ".") && !hiddenAllowlist[name]
}
