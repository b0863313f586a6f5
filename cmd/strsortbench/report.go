package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newLogger builds the structured logger the benchmark driver uses for
// progress and result reporting. The core library itself does no logging
// at all, since it's meant to be embedded.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// Report is one benchmark run's result: every field a sort runner and its
// caller need to compare runs, formatted by Report.String.
type Report struct {
	RunID      string
	Algorithm  string
	Generator  string
	Size       int
	Duration   time.Duration
	NanosPerOp bool
}

// newReport stamps a fresh run ID (google/uuid) for a result; run IDs let
// a benchmark-suite YAML file's runs be cross-referenced later without
// relying on log ordering.
func newReport(algorithm, generator string, size int, d time.Duration, nanosPerOp bool) Report {
	return Report{
		RunID:      uuid.NewString(),
		Algorithm:  algorithm,
		Generator:  generator,
		Size:       size,
		Duration:   d,
		NanosPerOp: nanosPerOp,
	}
}

// String formats a report line with dustin/go-humanize for the
// human-legible size and per-op time fields.
func (r Report) String() string {
	perOp := r.Duration / time.Duration(max(r.Size, 1))
	unit := "ms"
	perOpStr := humanize.Comma(perOp.Milliseconds())
	if r.NanosPerOp {
		unit = "ns"
		perOpStr = humanize.Comma(perOp.Nanoseconds())
	}
	return fmt.Sprintf(
		"[%s] algo=%s generator=%s n=%s total=%s per-op=%s%s",
		r.RunID[:8], r.Algorithm, r.Generator,
		humanize.Comma(int64(r.Size)), r.Duration, perOpStr, unit,
	)
}
