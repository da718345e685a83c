package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macsweep/macsweep/internal/classify"
	"github.com/macsweep/macsweep/internal/cleaner"
	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/platform"
	"github.com/macsweep/macsweep/internal/reporter"
	"github.com/macsweep/macsweep/internal/scanner"
	"github.com/macsweep/macsweep/internal/ui"
	"github.com/macsweep/macsweep/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	verbose    bool
	dryRun     bool
	force      bool
	quick      bool
	maxDepth   int
	categories string
	outputFmt  string
	outputFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "macsweep",
	Short: "Filesystem cleanup wizard",
	Long: `MacSweep finds files and directories that are candidates for deletion —
caches, logs, backups, stale trash, development artifacts, oversized and
stale files — and removes the subset you approve, reporting space reclaimed.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan for cleanable files without deleting anything",
	Long:  `Scans a directory tree and reports what can be cleaned, grouped by category.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		result, err := runScan(cfg, args)
		if err != nil {
			return err
		}

		return report(cfg, result)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Scan and remove cleanable files",
	Long: `Scans a directory tree, shows the cleanup suggestions, asks for
confirmation and removes the selected categories.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("dry-run") {
			cfg.DryRun = dryRun
		}

		result, err := runScan(cfg, args)
		if err != nil {
			return err
		}

		if result.IsEmpty() {
			fmt.Println("\n✨ No files found for cleanup. Your system looks clean!")
			return nil
		}

		if err := report(cfg, result); err != nil {
			return err
		}

		selected, err := selectedCategories(result)
		if err != nil {
			return err
		}
		paths, total := result.Paths(selected...)

		if !force && !cfg.DryRun {
			fmt.Printf("\nRemove %d items (%s)? (y/N): ", len(paths), utils.FormatBytes(total))
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Cleanup cancelled")
				return nil
			}
		}

		if cfg.DryRun {
			fmt.Println("\n[DRY RUN MODE] No files will be deleted.")
		} else {
			fmt.Println("\n🧹 Cleaning...")
		}

		exec := cleaner.New(cleaner.Options{DryRun: cfg.DryRun, Verbose: cfg.Verbose || verbose})
		cleanResult := exec.Clean(paths)

		fmt.Printf("\n📊 Cleanup complete!\n")
		fmt.Printf("Files removed: %d\n", cleanResult.FilesRemoved)
		fmt.Printf("Space freed:   %s\n", utils.FormatBytes(cleanResult.BytesFreed))
		if summary := cleaner.FormatErrorSummary(cleanResult.Errors); summary != "" {
			fmt.Print(summary)
		}
		if cfg.DryRun {
			fmt.Println("\n💡 This was a dry run. Run without --dry-run to perform the actual cleanup.")
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Classify files in a directory by format",
	Long: `Classifies every file in a single directory (default: your downloads
folder) by format — documents, images, videos, archives and so on —
independent of cleanup intent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var dir string
		if len(args) > 0 {
			dir = args[0]
		} else {
			dir, err = platform.DownloadsDir()
			if err != nil {
				return fmt.Errorf("failed to locate downloads folder: %w", err)
			}
		}
		if err := platform.ValidateScanRoot(dir); err != nil {
			return err
		}

		scnr, err := scanner.New(cfg)
		if err != nil {
			return err
		}

		result := scnr.ScanFormats(dir)
		if result.IsEmpty() {
			fmt.Printf("No files found in %s\n", dir)
			return nil
		}

		rptr := reporter.New(os.Stdout, outputFormat(cfg))
		return rptr.ReportFormats(result)
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive [path]",
	Short: "Run the interactive cleanup TUI",
	Long: `Scans with a live progress display, then walks through category
selection, confirmation and cleanup in the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("dry-run") {
			cfg.DryRun = dryRun
		}

		roots, depth, err := scanRoots(cfg, args)
		if err != nil {
			return err
		}
		return ui.RunInteractive(cfg, roots, depth)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create the default config file and show its location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.EnsureConfigExists()
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		fmt.Printf("Config file: %s\n", path)
		return nil
	},
}

// runScan resolves the scan roots and produces a merged result.
func runScan(cfg *config.Config, args []string) (*scanner.ScanResult, error) {
	roots, depth, err := scanRoots(cfg, args)
	if err != nil {
		return nil, err
	}

	scnr, err := scanner.New(cfg)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Scanning (max depth %d)...\n", depth)

	merged := scanner.NewScanResult()
	for _, root := range roots {
		merged.Merge(scnr.Scan(root, depth))
	}
	return merged, nil
}

// scanRoots resolves either the quick-scan roots or the single requested
// root (default: home), and validates the explicit one up front.
func scanRoots(cfg *config.Config, args []string) ([]string, int, error) {
	depth := cfg.MaxDepth
	if maxDepth > 0 {
		depth = maxDepth
	}

	if quick {
		roots, err := platform.QuickScanRoots(cfg.QuickScanPaths)
		if err != nil {
			return nil, 0, err
		}
		if len(roots) == 0 {
			return nil, 0, fmt.Errorf("none of the quick-scan locations exist")
		}
		return roots, depth, nil
	}

	var root string
	if len(args) > 0 {
		root = args[0]
	} else {
		home, err := platform.HomeDir()
		if err != nil {
			return nil, 0, err
		}
		root = home
	}
	if err := platform.ValidateScanRoot(root); err != nil {
		return nil, 0, err
	}
	return []string{root}, depth, nil
}

// selectedCategories parses the --categories flag, defaulting to every
// non-empty category in the result.
func selectedCategories(result *scanner.ScanResult) ([]classify.Category, error) {
	if categories == "" {
		var all []classify.Category
		for _, t := range result.Totals() {
			all = append(all, t.Category)
		}
		return all, nil
	}

	known := make(map[classify.Category]bool)
	for _, cat := range classify.CleanupCategories() {
		known[cat] = true
	}

	var selected []classify.Category
	for _, name := range strings.Split(categories, ",") {
		cat := classify.Category(strings.TrimSpace(strings.ToLower(name)))
		if !known[cat] {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		selected = append(selected, cat)
	}
	return selected, nil
}

func report(cfg *config.Config, result *scanner.ScanResult) error {
	if outputFile != "" {
		return reporter.SaveToFile(result, outputFile, outputFormat(cfg))
	}
	rptr := reporter.New(os.Stdout, outputFormat(cfg))
	return rptr.Report(result)
}

func outputFormat(cfg *config.Config) reporter.OutputFormat {
	if outputFmt != "" {
		return reporter.OutputFormat(outputFmt)
	}
	if cfg.Output != "" {
		return reporter.OutputFormat(cfg.Output)
	}
	return reporter.FormatSummary
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed output")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "depth", 0, "maximum scan depth (default from config)")
	rootCmd.PersistentFlags().BoolVar(&quick, "quick", false, "quick scan of common cleanup locations")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format: summary, table, json, yaml")

	scanCmd.Flags().StringVar(&outputFile, "output-file", "", "write the report to a file")

	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be deleted without deleting")
	cleanCmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	cleanCmd.Flags().StringVar(&categories, "categories", "", "comma-separated categories to clean (default: all found)")

	interactiveCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be deleted without deleting")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(configCmd)
}
