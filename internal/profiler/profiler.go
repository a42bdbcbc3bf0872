// Package profiler sequences the per-file profiling steps and drives a
// whole batch: filesystem metadata, content hash, encoding detection,
// the three parse probes, and the optional external validator, merged
// into one record per file.
package profiler

import (
	"context"
	"fmt"
	"os"

	"github.com/pseudocodeus/csvprof/internal/charset"
	"github.com/pseudocodeus/csvprof/internal/config"
	"github.com/pseudocodeus/csvprof/internal/fingerprint"
	"github.com/pseudocodeus/csvprof/internal/probe"
	"github.com/pseudocodeus/csvprof/internal/report"
	"github.com/pseudocodeus/csvprof/internal/validator"
)

// FileProfiler profiles single files under a fixed configuration.
type FileProfiler struct {
	cfg config.ProfilingConfig
}

func New(cfg config.ProfilingConfig) *FileProfiler {
	return &FileProfiler{cfg: cfg}
}

// Profile builds the complete record for one file. Only a stat or hash
// failure is returned as an error; without those the record would be
// unusable. Every later step folds its failure into the record and the
// remaining steps still run.
func (p *FileProfiler) Profile(ctx context.Context, path string) (report.FileRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.FileTimeout)
	defer cancel()

	info, err := os.Stat(path)
	if err != nil {
		return report.FileRecord{}, fmt.Errorf("stat %s: %w", path, err)
	}

	rec := report.FileRecord{
		Path:         path,
		SizeBytes:    info.Size(),
		LastModified: info.ModTime(),
	}

	sum, err := fingerprint.Hash(path)
	if err != nil {
		return report.FileRecord{}, fmt.Errorf("hash %s: %w", path, err)
	}
	rec.SHA256 = sum

	det := charset.Detect(path, p.cfg.SampleSize)
	rec.Encoding = det.Encoding
	rec.EncodingConfidence = det.Confidence

	// No short-circuiting: every probe runs so their disagreement is
	// preserved.
	for _, pr := range probe.Registry() {
		rec.SetProbe(pr.Name(), probe.Run(pr, path, det.Encoding))
	}

	if p.cfg.CsvstatEnabled {
		rec.SetValidator(validator.Run(ctx, path))
	}

	return rec, nil
}
