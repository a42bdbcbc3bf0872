package report

import (
	"errors"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// ErrWrite marks a failure to persist the report artifact. It aborts
// the batch; records are never silently dropped.
var ErrWrite = errors.New("report write failed")

// Write serializes the records into one parquet file, one row per
// record, overwriting any prior artifact at path.
func Write(path string, records []FileRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrWrite, path, err)
	}

	// The generic writer drops values in optional LIST columns on the
	// parquet-go versions that still build with Go 1.21, so rows go
	// through the reflection-based writer instead. Schema and output
	// are identical.
	w := parquet.NewWriter(f, parquet.SchemaOf(new(FileRecord)))
	for i := range records {
		if err := w.Write(&records[i]); err != nil {
			f.Close()
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Read loads a previously written report.
func Read(path string) ([]FileRecord, error) {
	records, err := parquet.ReadFile[FileRecord](path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	return records, nil
}
