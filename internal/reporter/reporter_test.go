package reporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/scanner"
	"github.com/macsweep/macsweep/internal/testutil"
)

func scanFixture(t *testing.T) *scanner.ScanResult {
	t.Helper()

	f := testutil.NewFixture(t)
	f.CreateFile("app.log", make([]byte, 10))
	f.CreateFile("sub/data.tmp", make([]byte, 20))

	s, err := scanner.New(config.GetDefault())
	if err != nil {
		t.Fatalf("scanner.New failed: %v", err)
	}
	return s.Scan(f.RootDir, 3)
}

func TestReportSummary(t *testing.T) {
	result := scanFixture(t)

	var buf bytes.Buffer
	if err := New(&buf, FormatSummary).Report(result); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"CACHE", "LOGS", "app.log", "TOTAL: 2 items"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestReportTable(t *testing.T) {
	result := scanFixture(t)

	var buf bytes.Buffer
	if err := New(&buf, FormatTable).Report(result); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Path") || !strings.Contains(out, "Total: 2 items") {
		t.Errorf("table output malformed:\n%s", out)
	}
}

func TestReportJSON(t *testing.T) {
	result := scanFixture(t)

	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).Report(result); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	var report struct {
		TotalItems int `json:"total_items"`
		Categories []struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if report.TotalItems != 2 || len(report.Categories) != 2 {
		t.Errorf("report = %+v, want 2 items in 2 categories", report)
	}
}

func TestReportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, OutputFormat("csv")).Report(scanner.NewScanResult()); err == nil {
		t.Error("unknown format should error")
	}
}

func TestReportFormatsSummary(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("report.pdf", make([]byte, 100))
	f.CreateFile("photo.jpg", make([]byte, 300))
	f.CreateFile("README", []byte("plain text readme\n"))

	s, err := scanner.New(config.GetDefault())
	if err != nil {
		t.Fatalf("scanner.New failed: %v", err)
	}
	result := s.ScanFormats(f.RootDir)

	var buf bytes.Buffer
	if err := New(&buf, FormatSummary).ReportFormats(result); err != nil {
		t.Fatalf("ReportFormats failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Images", "Documents", "(no extension)", "TOTAL: 3 files"} {
		if !strings.Contains(out, want) {
			t.Errorf("format summary missing %q:\n%s", want, out)
		}
	}

	// Images outweigh documents and must come first.
	if strings.Index(out, "Images") > strings.Index(out, "Documents") {
		t.Errorf("categories not sorted by size:\n%s", out)
	}
}

func TestSaveToFile(t *testing.T) {
	result := scanFixture(t)
	path := filepath.Join(t.TempDir(), "report.json")

	if err := SaveToFile(result, path, FormatJSON); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file unreadable: %v", err)
	}
	if !json.Valid(data) {
		t.Errorf("saved report is not valid JSON:\n%s", data)
	}
}
