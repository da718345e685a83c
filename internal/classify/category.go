// Package classify assigns filesystem entries to cleanup categories and,
// in analyze mode, buckets files by format. All decisions are deterministic
// and driven by ordered rule tables: the first category whose pattern
// matches wins, so table order is part of the contract.
package classify

// Category identifies the bucket a scanned entry belongs to. An entry
// belongs to at most one category.
type Category string

// Cleanup categories, in rule-evaluation order. The large/old categories
// are fallbacks applied only when no pattern rule matched.
const (
	CategoryCache       Category = "cache"
	CategoryLogs        Category = "logs"
	CategoryBackups     Category = "backups"
	CategoryDownloads   Category = "downloads"
	CategoryTrash       Category = "trash"
	CategoryDevelopment Category = "development"
	CategorySystem      Category = "system"
	CategoryBrowser     Category = "browser"
	CategoryLargeFiles  Category = "large_files"
	CategoryOldFiles    Category = "old_files"
)

// Format categories for analyze mode.
const (
	FormatDocuments   Category = "documents"
	FormatImages      Category = "images"
	FormatVideos      Category = "videos"
	FormatAudio       Category = "audio"
	FormatArchives    Category = "archives"
	FormatExecutables Category = "executables"
	FormatCode        Category = "code"
	FormatData        Category = "data"
	FormatFonts       Category = "fonts"
	FormatOther       Category = "other"
)

// rule pairs a category with the patterns that select it.
type rule struct {
	category Category
	patterns []string
}

// cleanupRules is evaluated top to bottom, patterns left to right. A file
// matches a pattern when its lowercased name ends with the pattern or the
// pattern appears anywhere in its lowercased path; a directory matches when
// its lowercased name equals the pattern or the pattern appears in its
// lowercased path. Path-substring matching is deliberate: it catches files
// deep inside e.g. Library/Caches that carry no cache-like extension.
var cleanupRules = []rule{
	{CategoryCache, []string{".cache", ".tmp", ".temp", ".ds_store"}},
	{CategoryLogs, []string{".log", ".out", ".err"}},
	{CategoryBackups, []string{".bak", ".backup", ".old", ".orig"}},
	{CategoryDownloads, []string{"downloads"}},
	{CategoryTrash, []string{".trash"}},
	{CategoryDevelopment, []string{"node_modules", ".git", "__pycache__", ".pytest_cache", ".venv", "venv"}},
	{CategorySystem, []string{"library/caches", "library/logs", "library/application support"}},
	{CategoryBrowser, []string{"library/safari", "library/application support/google/chrome", "library/application support/firefox"}},
}

// CleanupCategories returns every cleanup category in display order.
func CleanupCategories() []Category {
	cats := make([]Category, 0, len(cleanupRules)+2)
	for _, r := range cleanupRules {
		cats = append(cats, r.category)
	}
	return append(cats, CategoryLargeFiles, CategoryOldFiles)
}

// FormatCategories returns every format category in display order.
func FormatCategories() []Category {
	cats := make([]Category, 0, len(formatRules)+1)
	for _, r := range formatRules {
		cats = append(cats, r.category)
	}
	return append(cats, FormatOther)
}

// Title returns a human-friendly label for a category, e.g.
// "large_files" -> "Large Files".
func (c Category) Title() string {
	out := make([]byte, 0, len(c))
	upper := true
	for i := 0; i < len(c); i++ {
		ch := c[i]
		if ch == '_' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper && ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		upper = false
		out = append(out, ch)
	}
	return string(out)
}
