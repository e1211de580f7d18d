package commands

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SiddiqueAhmad/ai-costing/internal/analyzer"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

var (
	// Logging related
	debug bool

	// Feed source
	sheetId   string
	sheetGid  string
	inputFile string
	cacheTTL  time.Duration

	// Output related
	outputFormat string
	timezone     string

	// Rate configuration
	rateSource string
	configPath string

	rootCmd = &cobra.Command{
		Use:   "ai-costing [flags]",
		Short: "Machine activity costing tool",
		Long: `ai-costing fetches machine activity submissions from a published
spreadsheet feed, normalizes them, applies a configurable rate card and
reports cost, billable hours and per-machine timelines.

Examples:
  ai-costing --sheet-id 1AbC... --gid 0              # Analyze the published sheet
  ai-costing --input activity.csv                    # Analyze a local CSV export
  ai-costing --output json                           # Emit the full report as JSON
  ai-costing --rate-source file --config rates.yaml  # Use a custom rate card
  ai-costing watch --interval 30s                    # Re-render continuously`,
		RunE: runAnalyze,
	}
)

const defaultLogFile = "~/.ai-costing/logs/app.log"

func init() {
	// Feed source configuration
	rootCmd.PersistentFlags().StringVar(&sheetId, "sheet-id", "",
		"Google Sheets document id of the activity feed")
	rootCmd.PersistentFlags().StringVar(&sheetGid, "gid", "0",
		"Sheet tab gid within the document")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "",
		"Local CSV file to analyze instead of the sheet")
	rootCmd.PersistentFlags().DurationVar(&cacheTTL, "cache-ttl", 60*time.Second,
		"How long a fetched feed stays fresh")

	// Output configuration
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Karachi, UTC)")

	// Rate configuration
	rootCmd.PersistentFlags().StringVar(&rateSource, "rate-source", "default",
		"Rate card source (default, file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Rate card YAML file (required with --rate-source file)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

// initRuntime sets up logging and the time provider from the shared flags.
func initRuntime() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)

	return util.InitializeTimeProvider(timezone)
}

func buildConfig() *analyzer.Config {
	return &analyzer.Config{
		SheetId:      sheetId,
		Gid:          sheetGid,
		InputFile:    expandInput(inputFile),
		OutputFormat: outputFormat,
		Timezone:     timezone,
		CacheTTL:     cacheTTL,
		RateSource:   rateSource,
		ConfigPath:   expandInput(configPath),
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	a, err := analyzer.New(buildConfig())
	if err != nil {
		return err
	}
	return a.Run(cmd.Context())
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

// expandInput expands a user-supplied path but leaves empty values alone so
// "not set" stays distinguishable.
func expandInput(path string) string {
	if path == "" {
		return ""
	}
	return expandPath(path)
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
