// Package report owns the per-file record schema and the columnar
// artifact it is persisted to.
package report

import (
	"time"

	"github.com/pseudocodeus/csvprof/internal/probe"
	"github.com/pseudocodeus/csvprof/internal/validator"
)

// FileRecord is one profiled file. It always carries the full field
// set: steps that did not run or failed leave their optional fields
// nil, so every record in a batch shares one schema regardless of
// which steps succeeded.
type FileRecord struct {
	Path         string    `parquet:"file_path"`
	SizeBytes    int64     `parquet:"file_size_bytes"`
	LastModified time.Time `parquet:"last_modified,timestamp"`
	SHA256       string    `parquet:"sha256"`

	Encoding           string  `parquet:"encoding"`
	EncodingConfidence float64 `parquet:"encoding_confidence"`

	SequentialSuccess bool     `parquet:"sequential_success"`
	SequentialRows    *int64   `parquet:"sequential_rows,optional"`
	SequentialCols    *int64   `parquet:"sequential_cols,optional"`
	SequentialHeaders []string `parquet:"sequential_headers,list,optional"`
	SequentialError   *string  `parquet:"sequential_error,optional"`

	PermissiveSuccess bool     `parquet:"permissive_success"`
	PermissiveRows    *int64   `parquet:"permissive_rows,optional"`
	PermissiveCols    *int64   `parquet:"permissive_cols,optional"`
	PermissiveHeaders []string `parquet:"permissive_headers,list,optional"`
	PermissiveError   *string  `parquet:"permissive_error,optional"`

	StrictSuccess  bool     `parquet:"strict_success"`
	StrictRows     *int64   `parquet:"strict_rows,optional"`
	StrictCols     *int64   `parquet:"strict_cols,optional"`
	StrictHeaders  []string `parquet:"strict_headers,list,optional"`
	StrictColTypes []string `parquet:"strict_col_types,list,optional"`
	StrictError    *string  `parquet:"strict_error,optional"`

	// Csvstat fields stay nil when the external validator is disabled.
	CsvstatSuccess *bool   `parquet:"csvstat_success,optional"`
	CsvstatRows    *int64  `parquet:"csvstat_rows,optional"`
	CsvstatCols    *int64  `parquet:"csvstat_cols,optional"`
	CsvstatError   *string `parquet:"csvstat_error,optional"`
}

// SetProbe stores a probe result under its strategy name.
func (r *FileRecord) SetProbe(name string, res probe.Result) {
	switch name {
	case "sequential":
		r.SequentialSuccess = res.Success
		r.SequentialRows = res.Rows
		r.SequentialCols = res.Cols
		r.SequentialHeaders = res.Headers
		r.SequentialError = res.Err
	case "permissive":
		r.PermissiveSuccess = res.Success
		r.PermissiveRows = res.Rows
		r.PermissiveCols = res.Cols
		r.PermissiveHeaders = res.Headers
		r.PermissiveError = res.Err
	case "strict":
		r.StrictSuccess = res.Success
		r.StrictRows = res.Rows
		r.StrictCols = res.Cols
		r.StrictHeaders = res.Headers
		r.StrictColTypes = res.Types
		r.StrictError = res.Err
	}
}

// SetValidator stores the external validator outcome.
func (r *FileRecord) SetValidator(res validator.Result) {
	success := res.Success
	r.CsvstatSuccess = &success
	r.CsvstatRows = res.Rows
	r.CsvstatCols = res.Cols
	r.CsvstatError = res.Err
}
