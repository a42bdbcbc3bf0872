// Package validator shells out to csvstat for a second opinion on file
// structure. The tool is optional: a missing binary, a timeout, or
// garbage output all degrade into a failed result, never an error that
// could stall or abort the batch.
package validator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// Timeout bounds one csvstat invocation. The process is killed when it
// expires.
const Timeout = 10 * time.Second

const tool = "csvstat"

// Result mirrors the probe result shape, sourced from the external
// process instead of an in-process parse.
type Result struct {
	Success bool
	Rows    *int64
	Cols    *int64
	Err     *string
}

func fail(msg string) Result {
	return Result{Err: &msg}
}

// Run invokes `csvstat <file> --json` and extracts the row and column
// counts from its output: one JSON array element per column, each
// carrying a row_count field.
func Run(ctx context.Context, path string) Result {
	return run(ctx, path, Timeout)
}

func run(ctx context.Context, path string, timeout time.Duration) Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, tool, path, "--json")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fail("csvstat timed out after " + timeout.String())
		}
		if errors.Is(err, exec.ErrNotFound) {
			return fail("csvstat not found in PATH")
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fail(msg)
	}

	var stats []struct {
		RowCount *int64 `json:"row_count"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &stats); err != nil {
		return fail("malformed csvstat output: " + err.Error())
	}
	if len(stats) == 0 {
		return fail("csvstat reported no columns")
	}

	cols := int64(len(stats))
	return Result{Success: true, Rows: stats[0].RowCount, Cols: &cols}
}
