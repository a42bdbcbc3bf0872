// Package charset guesses the character encoding of a file from a
// bounded prefix sample. The guess is advisory: probes receive it and
// decide on their own how to handle decode failures under it.
package charset

import (
	"io"
	"os"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the fallback when detection yields nothing usable.
const DefaultEncoding = "utf-8"

// Detection is a best-effort encoding guess. Confidence is in [0, 1]
// and is 0 when the fallback was used.
type Detection struct {
	Encoding   string
	Confidence float64
}

func fallback() Detection {
	return Detection{Encoding: DefaultEncoding, Confidence: 0}
}

// Detect samples at most sampleSize bytes from the start of the file
// and returns the best encoding guess. It never fails: unreadable or
// empty files and undetectable content all return the fallback.
func Detect(path string, sampleSize int) Detection {
	f, err := os.Open(path)
	if err != nil {
		return fallback()
	}
	defer f.Close()

	buf := make([]byte, sampleSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return fallback()
	}
	if n == 0 {
		return fallback()
	}

	best, err := chardet.NewTextDetector().DetectBest(buf[:n])
	if err != nil || best == nil || best.Charset == "" {
		return fallback()
	}

	return Detection{
		Encoding:   strings.ToLower(best.Charset),
		Confidence: float64(best.Confidence) / 100,
	}
}

// NewReader wraps r with a decoder for the named encoding. Unknown
// names produce the identity reader so probes see the raw bytes and
// surface their own errors.
func NewReader(r io.Reader, name string) io.Reader {
	enc, err := htmlindex.Get(name)
	if err != nil || enc == nil {
		return r
	}
	return enc.NewDecoder().Reader(r)
}
