package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"vipwatch/internal/adsbone"
	"vipwatch/internal/config"
	"vipwatch/internal/geo"
	"vipwatch/internal/reference"
	"vipwatch/internal/report"
	"vipwatch/internal/scheduler"
	"vipwatch/internal/tasks"
)

// Daemon represents the main daemon structure
type Daemon struct {
	ctx       context.Context
	cancel    context.CancelFunc
	scheduler *scheduler.Scheduler
	done      chan struct{}
}

// New creates a new daemon instance
func New(cfg *config.Config) (*Daemon, error) {
	ctx, cancel := context.WithCancel(context.Background())

	// Load the reference table
	var table *reference.Table
	var err error
	if cfg.Reference.CSVPath != "" {
		table, err = reference.LoadCSV(cfg.Reference.CSVPath)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to load reference table: %w", err)
		}
	} else {
		slog.Info("No reference CSV configured, using builtin table")
		table = reference.Builtin()
	}

	client := adsbone.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.RequestTimeout)*time.Second)

	// The annotator stays nil unless geocoding is enabled and the dataset
	// loads; a typed nil here would defeat the task's nil check
	var annotator tasks.Annotator
	if cfg.Geo.Enabled {
		a, err := geo.NewAnnotator()
		if err != nil {
			slog.Warn("Reverse geocoding unavailable, continuing without location labels", "error", err)
		} else {
			annotator = a
		}
	}

	presenter := report.NewPresenter(os.Stdout, cfg.Report.ShowUnmatched)

	sched := scheduler.New(ctx)
	interval := time.Duration(cfg.API.PollInterval) * time.Second
	sched.AddTask(tasks.NewScanTask(client, table, annotator, presenter, interval))

	return &Daemon{
		ctx:       ctx,
		cancel:    cancel,
		scheduler: sched,
		done:      make(chan struct{}),
	}, nil
}

func (d *Daemon) Start() error {
	slog.Info("Starting daemon")

	d.scheduler.Start()

	// Wait for context cancellation
	go func() {
		<-d.ctx.Done()
		close(d.done)
	}()

	slog.Info("Daemon started successfully")
	return nil
}

// Stop gracefully stops the daemon
func (d *Daemon) Stop() error {
	slog.Info("Stopping daemon")
	d.cancel()
	<-d.done

	d.scheduler.Stop()

	slog.Info("Daemon stopped")
	return nil
}
