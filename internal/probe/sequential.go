package probe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pseudocodeus/csvprof/internal/charset"
)

// Sequential is the most literal reading of the content: a rune-by-rune
// quote-aware walk that counts header fields and remaining records. It
// is the least forgiving strategy and surfaces the rawest error text;
// any record whose field count differs from the header fails the probe.
type Sequential struct{}

func (Sequential) Name() string { return "sequential" }

func (Sequential) Probe(path, encoding string) Result {
	f, err := os.Open(path)
	if err != nil {
		return fail("failed to open file: %v", err)
	}
	defer f.Close()

	sc := newFieldScanner(charset.NewReader(f, encoding))

	headers, err := sc.next()
	if err == io.EOF {
		return ok(0, 0, nil)
	}
	if err != nil {
		return fail("%v", err)
	}

	var rows int64
	for {
		startLine := sc.line
		record, err := sc.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fail("%v", err)
		}
		if len(record) != len(headers) {
			return fail("record on line %d: expected %d fields, got %d",
				startLine, len(headers), len(record))
		}
		rows++
	}

	return ok(rows, int64(len(headers)), headers)
}

// fieldScanner splits a decoded stream into records of fields. The
// quote handling mirrors RFC 4180: a field starting with a quote runs
// until its closing quote, doubled quotes escape, and newlines inside
// quotes belong to the field.
type fieldScanner struct {
	r    *bufio.Reader
	line int
}

func newFieldScanner(r io.Reader) *fieldScanner {
	return &fieldScanner{r: bufio.NewReader(r), line: 1}
}

// next returns the fields of one record, or io.EOF when the input is
// exhausted.
func (s *fieldScanner) next() ([]string, error) {
	var (
		fields   []string
		field    strings.Builder
		started  bool
		inQuotes bool // currently inside a quoted section
		closed   bool // quoted section has been closed
	)

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
		closed = false
	}

	for {
		ch, _, err := s.r.ReadRune()
		if err == io.EOF {
			if !started {
				return nil, io.EOF
			}
			if inQuotes {
				return nil, fmt.Errorf("line %d: unterminated quoted field", s.line)
			}
			endField()
			return fields, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", s.line, err)
		}
		started = true

		if inQuotes {
			if ch == '"' {
				next, _, err := s.r.ReadRune()
				if err == nil && next == '"' {
					field.WriteRune('"')
					continue
				}
				if err == nil {
					s.r.UnreadRune()
				}
				inQuotes = false
				closed = true
				continue
			}
			if ch == '\n' {
				s.line++
			}
			field.WriteRune(ch)
			continue
		}

		switch ch {
		case ',':
			endField()
		case '\n':
			s.line++
			endField()
			return fields, nil
		case '\r':
			next, _, err := s.r.ReadRune()
			if err == nil && next == '\n' {
				s.line++
				endField()
				return fields, nil
			}
			if err == nil {
				s.r.UnreadRune()
			}
			field.WriteRune('\r')
		case '"':
			if field.Len() == 0 && !closed {
				inQuotes = true
				continue
			}
			return nil, fmt.Errorf("line %d: bare quote in field", s.line)
		default:
			if closed {
				return nil, fmt.Errorf("line %d: unexpected character after closing quote", s.line)
			}
			field.WriteRune(ch)
		}
	}
}
