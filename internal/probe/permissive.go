package probe

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pseudocodeus/csvprof/internal/charset"
)

// Permissive is the high-level tabular reading: it infers the structure
// from the header and silently drops records that do not fit it, the
// way a dataframe loader with bad-line skipping would. The reported row
// count is the rows actually retained, which can be lower than the raw
// line count of the file.
type Permissive struct{}

func (Permissive) Name() string { return "permissive" }

func (Permissive) Probe(path, encoding string) Result {
	f, err := os.Open(path)
	if err != nil {
		return fail("failed to open file: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(charset.NewReader(f, encoding))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if err == io.EOF {
		return ok(0, 0, nil)
	}
	if err != nil {
		return fail("failed to read headers: %v", err)
	}

	var retained int64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Bad line: skip it, keep reading.
			continue
		}
		if len(record) != len(headers) {
			continue
		}
		retained++
	}

	return ok(retained, int64(len(headers)), headers)
}
