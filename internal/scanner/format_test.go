package scanner

import (
	"testing"

	"github.com/macsweep/macsweep/internal/classify"
	"github.com/macsweep/macsweep/internal/testutil"
)

func TestScanFormats(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("report.PDF", []byte("%PDF-1.4 fake"))
	f.CreateFile("photo.jpeg", []byte("jpegdata"))
	f.CreateFile("nested/clip.mkv", []byte("mkvdata"))
	f.CreateFile("mystery.qqq", []byte("?"))

	s := newTestScanner(t)
	result := s.ScanFormats(f.RootDir)

	// Extensions are lowercased regardless of input case.
	docs := result.Entries(classify.FormatDocuments, ".pdf")
	if len(docs) != 1 || docs[0].Path != f.Path("report.PDF") {
		t.Errorf("documents/.pdf = %v, want report.PDF", docs)
	}
	if got := result.Entries(classify.FormatImages, ".jpeg"); len(got) != 1 {
		t.Errorf("images/.jpeg = %v, want one entry", got)
	}
	if got := result.Entries(classify.FormatVideos, ".mkv"); len(got) != 1 {
		t.Errorf("videos/.mkv = %v, want one entry (subdirectories are walked)", got)
	}
	if got := result.Entries(classify.FormatOther, ".qqq"); len(got) != 1 {
		t.Errorf("other/.qqq = %v, want one entry", got)
	}
	if result.TotalCount() != 4 {
		t.Errorf("TotalCount() = %d, want 4", result.TotalCount())
	}
}

func TestScanFormatsExtensionless(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("README", []byte("plain text readme contents\n"))

	s := newTestScanner(t)
	result := s.ScanFormats(f.RootDir)

	// Sniffed as text and keyed under the empty extension.
	got := result.Entries(classify.FormatDocuments, "")
	if len(got) != 1 || got[0].Path != f.Path("README") {
		t.Errorf("documents/(no ext) = %v, want README", got)
	}
}

func TestScanFormatsSkipsHiddenSubtrees(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile(".stash/secret.pdf", []byte("x"))
	f.CreateFile("visible.pdf", []byte("x"))

	s := newTestScanner(t)
	result := s.ScanFormats(f.RootDir)

	if result.TotalCount() != 1 {
		t.Errorf("TotalCount() = %d, want 1 (hidden subtree skipped)", result.TotalCount())
	}
}

func TestScanFormatsEmptyDir(t *testing.T) {
	f := testutil.NewFixture(t)
	s := newTestScanner(t)
	if result := s.ScanFormats(f.RootDir); !result.IsEmpty() {
		t.Errorf("empty directory produced %d entries", result.TotalCount())
	}
}
