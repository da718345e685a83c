// Package cleaner deletes caller-selected paths one at a time. Deletion is
// best effort: a failure on one path is recorded and skipped, never fatal.
package cleaner

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/macsweep/macsweep/internal/platform"
	"github.com/macsweep/macsweep/internal/progress"
	"github.com/macsweep/macsweep/internal/scanner"
	"github.com/macsweep/macsweep/pkg/utils"
)

// Options configures a cleanup run. The values are fixed for the lifetime
// of the Executor.
type Options struct {
	// DryRun computes full size/removal accounting without mutating the
	// filesystem.
	DryRun bool

	// Verbose logs each removal to the executor's output writer.
	Verbose bool
}

// Result accumulates cleanup accounting. FilesRemoved and BytesFreed count
// every path successfully sized and removed (or sized alone under dry-run).
type Result struct {
	FilesRemoved  int
	BytesFreed    int64
	Skipped       []string
	SkippedReason map[string]string
	Errors        []*DeletionError
	DryRun        bool
}

// Executor removes files and directories with dry-run support.
type Executor struct {
	opts             Options
	out              io.Writer
	progressReporter *progress.Reporter
}

// New creates an Executor. Verbose output goes to stdout unless redirected
// with SetOutput.
func New(opts Options) *Executor {
	return &Executor{
		opts: opts,
		out:  os.Stdout,
	}
}

// SetOutput redirects verbose logging.
func (e *Executor) SetOutput(w io.Writer) {
	e.out = w
}

// SetProgressReporter attaches a progress reporter. Nil disables reporting.
func (e *Executor) SetProgressReporter(pr *progress.Reporter) {
	e.progressReporter = pr
}

// Clean processes paths in the order given, one at a time. For each path it
// determines whether it is a file or a directory, computes the size before
// any removal (dry-run must report what would be freed), then deletes
// unless dry-run is set. Paths that are neither file nor directory —
// already gone, broken symlinks — are skipped silently and count toward
// nothing. Removal failures are categorized, recorded and skipped.
func (e *Executor) Clean(paths []string) *Result {
	result := &Result{
		SkippedReason: make(map[string]string),
		DryRun:        e.opts.DryRun,
	}

	start := time.Now()
	total := len(paths)

	for _, path := range paths {
		e.report(&progress.CleanProgress{
			Phase:       progress.PhaseCleaning,
			CurrentPath: path,
			Removed:     result.FilesRemoved,
			Total:       total,
			BytesFreed:  result.BytesFreed,
			StartTime:   start,
		})

		if platform.IsProtectedPath(path) {
			e.skip(result, &DeletionError{
				Path:     path,
				Reason:   ErrorProtectedPath,
				Original: fmt.Errorf("protected system path"),
			})
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			// Already gone, broken symlink, unreadable: not counted.
			continue
		}

		var size int64
		var isDir bool
		switch {
		case info.IsDir():
			isDir = true
			size = scanner.DirSize(path)
		case info.Mode().IsRegular():
			size = info.Size()
		default:
			// Sockets, devices and the like are never cleanup units.
			continue
		}

		if !e.opts.DryRun {
			var rmErr error
			if isDir {
				rmErr = os.RemoveAll(path)
			} else {
				rmErr = os.Remove(path)
			}
			if rmErr != nil {
				e.skip(result, CategorizeError(path, rmErr))
				continue
			}
		}

		if e.opts.Verbose {
			kind := "file"
			if isDir {
				kind = "directory"
			}
			fmt.Fprintf(e.out, "Removed %s: %s (%s)\n", kind, path, utils.FormatBytes(size))
		}

		result.FilesRemoved++
		result.BytesFreed += size
	}

	e.report(&progress.CleanProgress{
		Phase:      progress.PhaseComplete,
		Removed:    result.FilesRemoved,
		Total:      total,
		BytesFreed: result.BytesFreed,
		StartTime:  start,
	})

	return result
}

func (e *Executor) skip(result *Result, delErr *DeletionError) {
	result.Errors = append(result.Errors, delErr)
	result.Skipped = append(result.Skipped, delErr.Path)
	result.SkippedReason[delErr.Path] = delErr.UserMessage()
	if e.opts.Verbose {
		fmt.Fprintf(e.out, "Error removing %s: %v\n", delErr.Path, delErr.Original)
	}
}

func (e *Executor) report(p *progress.CleanProgress) {
	if e.progressReporter == nil {
		return
	}
	e.progressReporter.UpdateCleanProgress(p)
}
