package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/knowledgehub/chapterize/internal/parser"
	"github.com/knowledgehub/chapterize/internal/pipeline"
	"github.com/knowledgehub/chapterize/internal/report"
	"github.com/knowledgehub/chapterize/internal/writer"
)

var (
	flagInputDir   string
	flagBatchForce bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Split every supported book in the input directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, overrides, err := loadConfig()
		if err != nil {
			return err
		}
		if flagInputDir != "" {
			cfg.InputDir = flagInputDir
		}

		entries, err := os.ReadDir(cfg.InputDir)
		if err != nil {
			return fmt.Errorf("read input dir: %w", err)
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
				continue
			}
			files = append(files, filepath.Join(cfg.InputDir, e.Name()))
		}
		sort.Strings(files)
		if len(files) == 0 {
			return fmt.Errorf("no supported files in %s", cfg.InputDir)
		}

		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		w := pipeline.NewWorker(cfg, overrides, writer.New(cfg.OutputDir, false, log), log)

		out := cmd.OutOrStdout()
		var summary report.Summary
		for _, path := range files {
			job, err := newFileJob(path, "", overrides.StripPrefixes)
			if err != nil {
				report.FormatError(out, filepath.Base(path), err)
				summary.Failed++
				continue
			}
			job.Force = flagBatchForce

			report.FormatBookHeader(out, job.Book, path)
			w.Process(context.Background(), job)

			switch job.Status {
			case pipeline.StatusCompleted:
				summary.Processed++
				summary.Sections += job.Progress.SectionsFound
				summary.Files += job.Progress.FilesCreated
				m, err := writer.ReadManifest(filepath.Join(cfg.OutputDir, job.Book, writer.ManifestFile))
				if err == nil {
					report.FormatManifest(out, m)
				}
			case pipeline.StatusSkipped:
				summary.Skipped++
				report.FormatSkipped(out, job.Book)
			default:
				summary.Failed++
				report.FormatError(out, job.Book, fmt.Errorf("%v", job.Progress.Errors))
			}
		}

		fmt.Fprintln(out)
		report.FormatSummary(out, summary)
		if summary.Failed > 0 {
			return fmt.Errorf("%d book(s) failed", summary.Failed)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&flagInputDir, "input", "i", "", "Input directory (default $INPUT_DIR or ./books)")
	batchCmd.Flags().BoolVar(&flagBatchForce, "force", false, "Reprocess books that already have a manifest")
	rootCmd.AddCommand(batchCmd)
}
