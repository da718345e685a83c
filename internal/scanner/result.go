package scanner

import (
	"sort"
	"time"

	"github.com/macsweep/macsweep/internal/classify"
)

// Entry is one filesystem object selected as a cleanup or classification
// unit. A directory entry's size is the recursive sum of its contents and
// stands in for everything beneath it.
type Entry struct {
	Path    string    `json:"path" yaml:"path"`
	Size    int64     `json:"size" yaml:"size"`
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// ScanResult maps categories to entries in traversal discovery order. An
// entry never appears under two categories within the same result.
type ScanResult struct {
	categories map[classify.Category][]Entry
}

// NewScanResult returns an empty ScanResult.
func NewScanResult() *ScanResult {
	return &ScanResult{categories: make(map[classify.Category][]Entry)}
}

func (r *ScanResult) add(cat classify.Category, e Entry) {
	r.categories[cat] = append(r.categories[cat], e)
}

// Entries returns the entries recorded for a category, in discovery order.
func (r *ScanResult) Entries(cat classify.Category) []Entry {
	return r.categories[cat]
}

// IsEmpty reports whether the result holds no entries at all.
func (r *ScanResult) IsEmpty() bool {
	for _, entries := range r.categories {
		if len(entries) > 0 {
			return false
		}
	}
	return true
}

// TotalCount returns the number of entries across all categories.
func (r *ScanResult) TotalCount() int {
	n := 0
	for _, entries := range r.categories {
		n += len(entries)
	}
	return n
}

// TotalSize returns the byte total across all categories.
func (r *ScanResult) TotalSize() int64 {
	var total int64
	for _, entries := range r.categories {
		for _, e := range entries {
			total += e.Size
		}
	}
	return total
}

// Merge appends every entry of other onto this result, category by
// category, preserving relative order within each source. No dedup by path
// is performed: if two scan roots overlap, an entry appears twice. That
// mirrors how quick-scan roots are combined and is a known limitation.
func (r *ScanResult) Merge(other *ScanResult) {
	for _, cat := range classify.CleanupCategories() {
		if entries := other.categories[cat]; len(entries) > 0 {
			r.categories[cat] = append(r.categories[cat], entries...)
		}
	}
}

// CategoryTotal summarizes one category of a scan.
type CategoryTotal struct {
	Category  classify.Category `json:"category" yaml:"category"`
	FileCount int               `json:"file_count" yaml:"file_count"`
	TotalSize int64             `json:"total_size" yaml:"total_size"`
}

// Totals returns per-category counts and byte totals for every non-empty
// category, in the fixed category order.
func (r *ScanResult) Totals() []CategoryTotal {
	var totals []CategoryTotal
	for _, cat := range classify.CleanupCategories() {
		entries := r.categories[cat]
		if len(entries) == 0 {
			continue
		}
		t := CategoryTotal{Category: cat, FileCount: len(entries)}
		for _, e := range entries {
			t.TotalSize += e.Size
		}
		totals = append(totals, t)
	}
	return totals
}

// Paths flattens the entries of the selected categories into the list the
// cleanup executor consumes, and returns the combined size total for
// confirmation display.
func (r *ScanResult) Paths(categories ...classify.Category) ([]string, int64) {
	var paths []string
	var total int64
	for _, cat := range categories {
		for _, e := range r.categories[cat] {
			paths = append(paths, e.Path)
			total += e.Size
		}
	}
	return paths, total
}

// FormatScanResult is the two-level Category -> Extension -> entries
// mapping produced by format analysis. The extension key is the lowercased
// filename suffix including the leading dot, or "" when absent.
type FormatScanResult struct {
	categories map[classify.Category]map[string][]Entry
}

// NewFormatScanResult returns an empty FormatScanResult.
func NewFormatScanResult() *FormatScanResult {
	return &FormatScanResult{categories: make(map[classify.Category]map[string][]Entry)}
}

func (r *FormatScanResult) add(cat classify.Category, ext string, e Entry) {
	byExt := r.categories[cat]
	if byExt == nil {
		byExt = make(map[string][]Entry)
		r.categories[cat] = byExt
	}
	byExt[ext] = append(byExt[ext], e)
}

// Entries returns the entries recorded for a (category, extension) pair.
func (r *FormatScanResult) Entries(cat classify.Category, ext string) []Entry {
	return r.categories[cat][ext]
}

// IsEmpty reports whether the result holds no entries at all.
func (r *FormatScanResult) IsEmpty() bool {
	return len(r.categories) == 0
}

// TotalCount returns the number of files across all categories.
func (r *FormatScanResult) TotalCount() int {
	n := 0
	for _, byExt := range r.categories {
		for _, entries := range byExt {
			n += len(entries)
		}
	}
	return n
}

// TotalSize returns the byte total across all categories.
func (r *FormatScanResult) TotalSize() int64 {
	var total int64
	for _, byExt := range r.categories {
		for _, entries := range byExt {
			for _, e := range entries {
				total += e.Size
			}
		}
	}
	return total
}

// ExtensionTotal summarizes one extension within a format category.
type ExtensionTotal struct {
	Extension string `json:"extension" yaml:"extension"`
	FileCount int    `json:"file_count" yaml:"file_count"`
	TotalSize int64  `json:"total_size" yaml:"total_size"`
}

// FormatCategoryTotal summarizes one format category.
type FormatCategoryTotal struct {
	Category   classify.Category `json:"category" yaml:"category"`
	FileCount  int               `json:"file_count" yaml:"file_count"`
	TotalSize  int64             `json:"total_size" yaml:"total_size"`
	Extensions []ExtensionTotal  `json:"extensions" yaml:"extensions"`
}

// Totals returns per-category summaries sorted by descending byte total,
// with the extensions inside each category likewise sorted descending.
func (r *FormatScanResult) Totals() []FormatCategoryTotal {
	var totals []FormatCategoryTotal
	for cat, byExt := range r.categories {
		t := FormatCategoryTotal{Category: cat}
		for ext, entries := range byExt {
			et := ExtensionTotal{Extension: ext, FileCount: len(entries)}
			for _, e := range entries {
				et.TotalSize += e.Size
			}
			t.FileCount += et.FileCount
			t.TotalSize += et.TotalSize
			t.Extensions = append(t.Extensions, et)
		}
		sort.SliceStable(t.Extensions, func(i, j int) bool {
			return t.Extensions[i].TotalSize > t.Extensions[j].TotalSize
		})
		totals = append(totals, t)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalSize > totals[j].TotalSize
	})
	return totals
}

// Paths flattens the entries of the selected (category, extension) pairs
// for deletion, mirroring ScanResult.Paths. Selecting a category with no
// extensions contributes nothing.
func (r *FormatScanResult) Paths(cat classify.Category, exts ...string) ([]string, int64) {
	var paths []string
	var total int64
	for _, ext := range exts {
		for _, e := range r.categories[cat][ext] {
			paths = append(paths, e.Path)
			total += e.Size
		}
	}
	return paths, total
}
