package config

// GetDefault returns the default configuration.
func GetDefault() *Config {
	return &Config{
		MaxDepth: 3,
		QuickScanPaths: []string{
			"~/Library/Caches",
			"~/Library/Logs",
			"~/Downloads",
			"~/.cache",
			"~/.tmp",
		},
		LargeFileSize: "100MB",
		OldFileDays:   30,
		DryRun:        false,
		Verbose:       false,
		Output:        "summary",
	}
}
