package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/knowledgehub/chapterize/internal/pipeline"
	"github.com/knowledgehub/chapterize/internal/report"
	"github.com/knowledgehub/chapterize/internal/writer"
)

var (
	flagBook   string
	flagForce  bool
	flagDryRun bool
)

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Split a single book into section files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, overrides, err := loadConfig()
		if err != nil {
			return err
		}

		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		w := pipeline.NewWorker(cfg, overrides, writer.New(cfg.OutputDir, flagDryRun, log), log)

		job, err := newFileJob(args[0], flagBook, overrides.StripPrefixes)
		if err != nil {
			return err
		}
		// Dry runs never have a manifest to resume from.
		job.Force = flagForce || flagDryRun

		out := cmd.OutOrStdout()
		report.FormatBookHeader(out, job.Book, args[0])
		w.Process(context.Background(), job)

		switch job.Status {
		case pipeline.StatusCompleted:
			if flagDryRun {
				fmt.Fprintf(out, "  dry run: %d section(s), %d file(s) would be written\n",
					job.Progress.SectionsFound, job.Progress.FilesCreated)
				return nil
			}
			m, err := writer.ReadManifest(filepath.Join(cfg.OutputDir, job.Book, writer.ManifestFile))
			if err != nil {
				return fmt.Errorf("read manifest: %w", err)
			}
			report.FormatManifest(out, m)
			return nil
		case pipeline.StatusSkipped:
			report.FormatSkipped(out, job.Book)
			return nil
		default:
			report.FormatError(out, job.Book, fmt.Errorf("%v", job.Progress.Errors))
			return fmt.Errorf("split failed: %s", job.Status)
		}
	},
}

func init() {
	splitCmd.Flags().StringVar(&flagBook, "book", "", "Book name override (default derived from filename)")
	splitCmd.Flags().BoolVar(&flagForce, "force", false, "Reprocess even when a manifest already exists")
	splitCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Detect sections without writing files")
	rootCmd.AddCommand(splitCmd)
}

// newFileJob builds a queued job from a file on disk.
func newFileJob(path, book string, stripPrefixes []string) (*pipeline.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if book == "" {
		book = pipeline.BookName(path, stripPrefixes)
	}
	job := &pipeline.Job{
		ID:       pipeline.ContentHashHex(data)[:20],
		Book:     book,
		Filename: filepath.Base(path),
		Status:   pipeline.StatusQueued,
		Phase:    "queued",
	}
	job.SetFileData(data)
	return job, nil
}
