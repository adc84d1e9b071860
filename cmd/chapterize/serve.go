package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/knowledgehub/chapterize/internal/api"
	"github.com/knowledgehub/chapterize/internal/pipeline"
	"github.com/knowledgehub/chapterize/internal/writer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, overrides, err := loadConfig()
		if err != nil {
			return err
		}

		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		orch := pipeline.NewOrchestrator(cfg, overrides, writer.New(cfg.OutputDir, false, log), log)
		orch.Start(ctx)

		srv := api.NewServer(orch, overrides, log, cfg)

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Info("shutting down...")

			orch.Stop()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting chapterize", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
