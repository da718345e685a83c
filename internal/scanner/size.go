package scanner

import (
	"io/fs"
	"path/filepath"
)

// DirSize returns the total size in bytes of every regular file reachable
// from path. It is a best-effort metric: unreadable entries contribute
// nothing, and a traversal failure yields the partial sum accumulated so
// far rather than an error.
func DirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
