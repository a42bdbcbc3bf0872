// Package probe defines the parse-probe contract and the three
// strategies applied to every file. Probes are fully independent: none
// shares state with or depends on the outcome of another, so their
// disagreement on a malformed file is diagnostic signal rather than an
// ordering artifact.
package probe

import "fmt"

// Result is the uniform outcome of one probe against one file. Exactly
// one of (Success with Rows/Cols/Headers) or (failure with Err) holds.
type Result struct {
	Success bool
	Rows    *int64
	Cols    *int64
	Headers []string
	// Types holds inferred per-column types; only the strict probe
	// populates it.
	Types []string
	Err   *string
}

func ok(rows, cols int64, headers []string) Result {
	return Result{Success: true, Rows: &rows, Cols: &cols, Headers: headers}
}

func fail(format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	return Result{Err: &msg}
}

// ParseProbe is one parsing strategy. Probe never returns an error:
// every failure mode is folded into the Result.
type ParseProbe interface {
	Name() string
	Probe(path, encoding string) Result
}

// Registry returns the fixed, ordered set of probes applied to every
// file. Adding a strategy means appending here, nothing else.
func Registry() []ParseProbe {
	return []ParseProbe{
		Sequential{},
		Permissive{},
		Strict{},
	}
}

// Run executes a probe with a panic boundary. A panicking probe is
// converted into a failed Result so it can never take down the batch
// or the other probes.
func Run(p ParseProbe, path, encoding string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fail("probe %s panicked: %v", p.Name(), r)
		}
	}()
	return p.Probe(path, encoding)
}
