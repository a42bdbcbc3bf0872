package profiler

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pseudocodeus/csvprof/internal/config"
	"github.com/pseudocodeus/csvprof/internal/connectors"
	"github.com/pseudocodeus/csvprof/internal/report"
)

// Summary is the user-facing accounting for one batch, reported whether
// or not the artifact write succeeded.
type Summary struct {
	Discovered int
	Profiled   int
	Skipped    int
	TotalBytes int64
	Written    bool
}

// Runner walks the configured directory, profiles every matching file,
// and writes the aggregated report.
type Runner struct {
	cfg config.ProfilingConfig
	log *slog.Logger

	// OnDiscover is called once with the number of discovered files.
	OnDiscover func(total int)
	// OnFile is called after each file is attempted, profiled or not.
	OnFile func(path string)
}

func NewRunner(cfg config.ProfilingConfig) *Runner {
	return &Runner{cfg: cfg, log: slog.Default()}
}

// Run executes one batch. Per-file failures are logged and counted, not
// returned: the only batch-level error is a report-write failure. A
// batch with nothing to profile terminates early without writing.
func (r *Runner) Run(ctx context.Context) (Summary, []report.FileRecord, error) {
	files, err := connectors.DiscoverFiles(r.cfg.DataDir, "csv", connectors.DiscoveryOptions{
		Recursive: true,
	})
	if err != nil {
		return Summary{}, nil, err
	}

	summary := Summary{Discovered: len(files)}
	if r.OnDiscover != nil {
		r.OnDiscover(len(files))
	}
	if len(files) == 0 {
		r.log.Info("nothing to profile", "dir", r.cfg.DataDir)
		return summary, nil, nil
	}

	// Results keep discovery-order slots so concurrent completion
	// order never leaks into the report.
	results := make([]*report.FileRecord, len(files))
	fp := New(r.cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			rec, err := fp.Profile(gctx, file.Path)
			if r.OnFile != nil {
				r.OnFile(file.Path)
			}
			if err != nil {
				r.log.Error("skipping file", "path", file.Path, "error", err)
				return nil
			}
			results[i] = &rec
			return nil
		})
	}
	g.Wait()

	records := make([]report.FileRecord, 0, len(files))
	for _, rec := range results {
		if rec != nil {
			records = append(records, *rec)
			summary.TotalBytes += rec.SizeBytes
		}
	}
	summary.Profiled = len(records)
	summary.Skipped = summary.Discovered - summary.Profiled

	if len(records) == 0 {
		r.log.Info("nothing to profile", "dir", r.cfg.DataDir,
			"discovered", summary.Discovered, "skipped", summary.Skipped)
		return summary, nil, nil
	}

	if err := report.Write(r.cfg.ReportFile, records); err != nil {
		return summary, records, err
	}
	summary.Written = true
	r.log.Info("report written", "path", r.cfg.ReportFile, "rows", len(records))

	return summary, records, nil
}
