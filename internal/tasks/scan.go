package tasks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"vipwatch/internal/matcher"
	"vipwatch/internal/models"
	"vipwatch/internal/reference"
	"vipwatch/internal/report"
)

// AircraftSource provides the live military aircraft list for one cycle.
type AircraftSource interface {
	Military(ctx context.Context) (*models.Response, error)
}

// Annotator resolves coordinates to a country label. A nil Annotator on the
// task disables location annotation entirely.
type Annotator interface {
	Country(lat, lon float64) string
}

// ScanTask runs one poll cycle: fetch the live aircraft list, match it
// against the reference table, annotate positions, and render the report.
// A failed fetch skips the cycle; the scheduler ticks again regardless.
type ScanTask struct {
	source    AircraftSource
	table     *reference.Table
	annotator Annotator
	presenter *report.Presenter
	interval  time.Duration
}

func NewScanTask(source AircraftSource, table *reference.Table, annotator Annotator, presenter *report.Presenter, interval time.Duration) *ScanTask {
	return &ScanTask{
		source:    source,
		table:     table,
		annotator: annotator,
		presenter: presenter,
		interval:  interval,
	}
}

func (t *ScanTask) Name() string {
	return "vip-scan"
}

func (t *ScanTask) Interval() time.Duration {
	return t.interval
}

// Run executes a single cycle. Failures are absorbed here so the poll loop
// always continues to the next tick: a transport or status failure skips the
// cycle's report entirely, while a malformed response body is rendered as an
// empty result set.
func (t *ScanTask) Run(ctx context.Context) error {
	resp, err := t.source.Military(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !errors.Is(err, models.ErrMalformedResponse) {
			slog.Warn("Scan cycle skipped", "error", err)
			return nil
		}
		slog.Warn("Unreadable API response, reporting empty cycle", "error", err)
		resp = &models.Response{}
	}

	results := matcher.MatchAll(resp.Aircraft, t.table)

	if t.annotator != nil {
		for i := range results {
			r := &results[i]
			if r.Matched() && r.Aircraft.HasPosition() {
				r.OverCountry = t.annotator.Country(*r.Aircraft.Lat, *r.Aircraft.Lon)
			}
		}
	}

	t.presenter.Render(results, report.Stats{
		TableSize: t.table.Len(),
		Scanned:   len(resp.Aircraft),
	})

	slog.Debug("Scan cycle complete",
		"scanned", len(resp.Aircraft),
		"rejected", resp.Rejected,
	)
	return nil
}
