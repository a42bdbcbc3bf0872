package probe

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pseudocodeus/csvprof/internal/charset"
)

// Strict is the columnar reading: the header fixes the column shape and
// every record is coerced into it, truncating long records and padding
// short ones rather than dropping them. It also infers a type per
// column from the values it saw, so its result describes the columnar
// schema a table engine would have built for this file.
type Strict struct{}

func (Strict) Name() string { return "strict" }

func (Strict) Probe(path, encoding string) Result {
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

	columns := make([]columnKind, len(headers))
	var rows int64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fail("record %d: %v", rows+1, err)
		}

		// Coerce into the columnar shape: extra fields fall off,
		// missing fields count as empty.
		for i := range columns {
			if i < len(record) {
				columns[i].observe(record[i])
			}
		}
		rows++
	}

	res := ok(rows, int64(len(headers)), headers)
	res.Types = make([]string, len(columns))
	for i := range columns {
		res.Types[i] = columns[i].String()
	}
	return res
}

const (
	kindUnknown = iota
	kindInt
	kindFloat
	kindString
)

// columnKind tracks the widest value type seen in one column. Types
// only widen: int -> float -> string.
type columnKind struct {
	kind int
}

func (c *columnKind) observe(value string) {
	if value == "" {
		return
	}
	k := kindString
	if fastIsInt(value) {
		k = kindInt
	} else if fastIsFloat(value) {
		k = kindFloat
	}
	if k > c.kind {
		c.kind = k
	}
}

func (c *columnKind) String() string {
	switch c.kind {
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	default:
		return "string"
	}
}

// fastIsInt quickly checks if a string is likely an integer
func fastIsInt(str string) bool {
	if len(str) == 0 || len(str) >= 20 {
		return false
	}

	i := 0
	if str[0] == '-' || str[0] == '+' {
		if len(str) == 1 {
			return false
		}
		i = 1
	}

	for ; i < len(str); i++ {
		c := str[i]
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// fastIsFloat quickly checks if a string is likely a float
func fastIsFloat(str string) bool {
	if len(str) == 0 || len(str) >= 25 {
		return false
	}

	hasDot := false
	hasExp := false
	i := 0

	if str[0] == '-' || str[0] == '+' {
		if len(str) == 1 {
			return false
		}
		i = 1
	}

	for ; i < len(str); i++ {
		c := str[i]
		switch {
		case c >= '0' && c <= '9':
			// Continue
		case c == '.':
			if hasDot || hasExp {
				return false
			}
			hasDot = true
		case c == 'e' || c == 'E':
			if hasExp || i == len(str)-1 {
				return false
			}
			hasExp = true
		default:
			return false
		}
	}
	return hasDot || hasExp
}
