package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/knowledgehub/chapterize/internal/config"
)

var (
	flagOutputDir string
	flagOverrides string
)

var rootCmd = &cobra.Command{
	Use:   "chapterize",
	Short: "Split page-tagged book text into chapter files",
	Long: `Chapterize detects chapter, part, section and appendix headings in
extracted book text and splits each book into one file per section, with a
manifest describing exactly which page ranges went where.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output", "o", "", "Output directory (default $OUTPUT_DIR or ./extracted)")
	rootCmd.PersistentFlags().StringVar(&flagOverrides, "overrides", "", "Path to per-book overrides YAML (default $OVERRIDES_PATH)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges env config with command-line flags.
func loadConfig() (config.Config, *config.Overrides, error) {
	cfg := config.Load()
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagOverrides != "" {
		cfg.OverridesPath = flagOverrides
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	overrides, err := config.LoadOverrides(cfg.OverridesPath)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, overrides, nil
}
