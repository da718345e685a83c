package classify

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// formatRules maps lowercased extensions (including the leading dot) to
// format categories. Unlike the cleanup rules the lists are disjoint, so
// order only fixes the display sequence.
var formatRules = []rule{
	{FormatDocuments, []string{".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".pages", ".md", ".tex", ".epub", ".xls", ".xlsx", ".ppt", ".pptx", ".key", ".numbers"}},
	{FormatImages, []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".svg", ".webp", ".heic", ".ico", ".raw", ".psd"}},
	{FormatVideos, []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm", ".m4v", ".mpg", ".mpeg", ".3gp"}},
	{FormatAudio, []string{".mp3", ".wav", ".aac", ".flac", ".ogg", ".m4a", ".wma", ".aiff", ".opus"}},
	{FormatArchives, []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".tgz", ".dmg", ".iso"}},
	{FormatExecutables, []string{".app", ".exe", ".pkg", ".deb", ".rpm", ".msi", ".bin", ".command", ".jar"}},
	{FormatCode, []string{".py", ".js", ".ts", ".go", ".java", ".c", ".cpp", ".h", ".hpp", ".rb", ".php", ".sh", ".rs", ".swift", ".kt", ".html", ".css", ".scss"}},
	{FormatData, []string{".csv", ".json", ".xml", ".yaml", ".yml", ".toml", ".sql", ".db", ".sqlite", ".plist", ".parquet"}},
	{FormatFonts, []string{".ttf", ".otf", ".woff", ".woff2", ".eot"}},
}

var formatByExt = func() map[string]Category {
	m := make(map[string]Category)
	for _, r := range formatRules {
		for _, ext := range r.patterns {
			m[ext] = r.category
		}
	}
	return m
}()

// CategorizeFormat maps an extension to a format category. The extension
// is the lowercased filename suffix including the leading dot, or the
// empty string when absent; extensionless files are content-sniffed at
// path. It always returns a category, falling back to FormatOther.
func CategorizeFormat(ext, path string) Category {
	ext = strings.ToLower(ext)
	if ext != "" {
		if cat, ok := formatByExt[ext]; ok {
			return cat
		}
		return FormatOther
	}
	return categorizeByMIME(path)
}

// categorizeByMIME sniffs the file content and maps the detected MIME type
// to a format category. Detection failures yield FormatOther, never an
// error.
func categorizeByMIME(path string) Category {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return FormatOther
	}

	mime := mtype.String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	switch {
	case strings.HasPrefix(mime, "image/"):
		return FormatImages
	case strings.HasPrefix(mime, "video/"):
		return FormatVideos
	case strings.HasPrefix(mime, "audio/"):
		return FormatAudio
	case strings.HasPrefix(mime, "text/"):
		return FormatDocuments
	case mime == "application/pdf":
		return FormatDocuments
	case mime == "application/zip",
		mime == "application/x-rar-compressed",
		mime == "application/vnd.rar",
		mime == "application/x-7z-compressed":
		return FormatArchives
	default:
		return FormatOther
	}
}
