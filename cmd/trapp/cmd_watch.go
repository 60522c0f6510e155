package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dev0l/trapp/internal/config"
	"github.com/dev0l/trapp/internal/logger"
	"github.com/dev0l/trapp/internal/processor"
	"github.com/dev0l/trapp/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox and turn new transcript files into study programs",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := app.cfg
	log := app.log

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Study Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Engine: %s", cfg.Pipeline.Engine)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	proc := processor.New(cfg, app.store, app.service, app.exporter, log)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			log.Info(ctx, "Shutdown signal received")
			log.Info(ctx, "Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	err := serveInbox(ctx, cfg, proc, log, func() {
		log.Info(ctx, "========================================")
		log.Info(ctx, "Pipeline is ready!")
		log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
		log.Info(ctx, "Programs: %s", cfg.Paths.Output)
		log.Info(ctx, "Archive: %s", cfg.Paths.Archived)
		log.Info(ctx, "Press Ctrl+C to stop")
		log.Info(ctx, "========================================")
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}

	log.Info(ctx, "Pipeline stopped")
	return nil
}

// serveInbox watches the inbox and then sweeps the files already in it, so
// nothing dropped during the sweep is missed. It calls ready once the sweep
// is done and blocks until ctx is done or the watcher fails.
func serveInbox(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger, ready func()) error {
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	// Pick up files dropped while nothing was watching
	if n, err := proc.ProcessDir(ctx, cfg.Paths.Input); err != nil {
		log.Warn(ctx, "Inbox sweep stopped early: %v", err)
	} else if n > 0 {
		log.Info(ctx, "Processed %d pending transcripts", n)
	}

	if ready != nil {
		ready()
	}
	return <-errChan
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
