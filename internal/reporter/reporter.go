// Package reporter renders scan and format-analysis results for display or
// machine consumption.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/macsweep/macsweep/internal/classify"
	"github.com/macsweep/macsweep/internal/scanner"
	"github.com/macsweep/macsweep/pkg/utils"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// Reporter handles report generation.
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter.
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{writer: writer, format: format}
}

// Report renders a cleanup scan result.
func (r *Reporter) Report(result *scanner.ScanResult) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(result)
	case FormatJSON:
		return r.encodeStructured(json.NewEncoder(r.writer), result)
	case FormatYAML:
		return r.reportYAML(result)
	case FormatSummary:
		return r.reportSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// ReportFormats renders a format-analysis result.
func (r *Reporter) ReportFormats(result *scanner.FormatScanResult) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(newFormatReport(result))
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		defer enc.Close()
		return enc.Encode(newFormatReport(result))
	case FormatSummary, FormatTable:
		return r.reportFormatSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportSummary prints per-category totals with a few example entries,
// like the interactive display but static.
func (r *Reporter) reportSummary(result *scanner.ScanResult) error {
	fmt.Fprintf(r.writer, "=== Cleanup Suggestions ===\n")

	for _, t := range result.Totals() {
		fmt.Fprintf(r.writer, "\n%s:\n", strings.ToUpper(t.Category.Title()))
		fmt.Fprintf(r.writer, "  Files: %d\n", t.FileCount)
		fmt.Fprintf(r.writer, "  Size:  %s\n", utils.FormatBytes(t.TotalSize))

		entries := result.Entries(t.Category)
		for i, e := range entries {
			if i == 3 {
				fmt.Fprintf(r.writer, "    ... and %d more\n", len(entries)-3)
				break
			}
			fmt.Fprintf(r.writer, "    • %s (%s)\n", e.Path, utils.FormatBytes(e.Size))
		}
	}

	fmt.Fprintf(r.writer, "\nTOTAL: %d items, %s\n", result.TotalCount(), utils.FormatBytes(result.TotalSize()))
	return nil
}

// reportTable prints every entry as one row.
func (r *Reporter) reportTable(result *scanner.ScanResult) error {
	fmt.Fprintf(r.writer, "%-60s | %-12s | %-14s | %s\n", "Path", "Size", "Category", "Modified")
	fmt.Fprintln(r.writer, strings.Repeat("-", 110))

	for _, cat := range classify.CleanupCategories() {
		for _, e := range result.Entries(cat) {
			path := e.Path
			if len(path) > 60 {
				path = "..." + path[len(path)-57:]
			}
			fmt.Fprintf(r.writer, "%-60s | %-12s | %-14s | %s\n",
				path,
				utils.FormatBytes(e.Size),
				cat,
				e.ModTime.Format("2006-01-02 15:04:05"))
		}
	}

	fmt.Fprintln(r.writer, strings.Repeat("-", 110))
	fmt.Fprintf(r.writer, "Total: %d items, %s\n", result.TotalCount(), utils.FormatBytes(result.TotalSize()))
	return nil
}

// scanReport is the machine-readable shape of a scan result.
type scanReport struct {
	Timestamp          string                  `json:"timestamp" yaml:"timestamp"`
	TotalItems         int                     `json:"total_items" yaml:"total_items"`
	TotalSize          int64                   `json:"total_size" yaml:"total_size"`
	TotalSizeFormatted string                  `json:"total_size_formatted" yaml:"total_size_formatted"`
	Categories         []scanReportCategory    `json:"categories" yaml:"categories"`
}

type scanReportCategory struct {
	Category classify.Category `json:"category" yaml:"category"`
	Count    int               `json:"count" yaml:"count"`
	Size     int64             `json:"size" yaml:"size"`
	Entries  []scanner.Entry   `json:"entries" yaml:"entries"`
}

func newScanReport(result *scanner.ScanResult) scanReport {
	report := scanReport{
		Timestamp:          time.Now().Format(time.RFC3339),
		TotalItems:         result.TotalCount(),
		TotalSize:          result.TotalSize(),
		TotalSizeFormatted: utils.FormatBytes(result.TotalSize()),
	}
	for _, t := range result.Totals() {
		report.Categories = append(report.Categories, scanReportCategory{
			Category: t.Category,
			Count:    t.FileCount,
			Size:     t.TotalSize,
			Entries:  result.Entries(t.Category),
		})
	}
	return report
}

func (r *Reporter) encodeStructured(enc *json.Encoder, result *scanner.ScanResult) error {
	enc.SetIndent("", "  ")
	return enc.Encode(newScanReport(result))
}

func (r *Reporter) reportYAML(result *scanner.ScanResult) error {
	enc := yaml.NewEncoder(r.writer)
	defer enc.Close()
	return enc.Encode(newScanReport(result))
}

// formatReport is the machine-readable shape of a format analysis.
type formatReport struct {
	Timestamp          string                        `json:"timestamp" yaml:"timestamp"`
	TotalFiles         int                           `json:"total_files" yaml:"total_files"`
	TotalSize          int64                         `json:"total_size" yaml:"total_size"`
	TotalSizeFormatted string                        `json:"total_size_formatted" yaml:"total_size_formatted"`
	Categories         []scanner.FormatCategoryTotal `json:"categories" yaml:"categories"`
}

func newFormatReport(result *scanner.FormatScanResult) formatReport {
	return formatReport{
		Timestamp:          time.Now().Format(time.RFC3339),
		TotalFiles:         result.TotalCount(),
		TotalSize:          result.TotalSize(),
		TotalSizeFormatted: utils.FormatBytes(result.TotalSize()),
		Categories:         result.Totals(),
	}
}

// reportFormatSummary prints format categories sorted by descending size,
// with the extensions inside each category likewise sorted.
func (r *Reporter) reportFormatSummary(result *scanner.FormatScanResult) error {
	fmt.Fprintf(r.writer, "=== Format Analysis ===\n")

	for _, t := range result.Totals() {
		fmt.Fprintf(r.writer, "\n%s: %d files, %s\n",
			t.Category.Title(), t.FileCount, utils.FormatBytes(t.TotalSize))
		for _, et := range t.Extensions {
			ext := et.Extension
			if ext == "" {
				ext = "(no extension)"
			}
			fmt.Fprintf(r.writer, "  %-14s %4d files  %s\n",
				ext, et.FileCount, utils.FormatBytes(et.TotalSize))
		}
	}

	fmt.Fprintf(r.writer, "\nTOTAL: %d files, %s\n", result.TotalCount(), utils.FormatBytes(result.TotalSize()))
	return nil
}

// SaveToFile writes a cleanup scan report to a file.
func SaveToFile(result *scanner.ScanResult, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return New(file, format).Report(result)
}
