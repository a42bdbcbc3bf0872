package validator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool installs a shell script named csvstat on a private PATH.
func fakeTool(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts are posix-only")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "csvstat")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	t.Setenv("PATH", dir)
}

func TestRunParsesOutput(t *testing.T) {
	fakeTool(t, `echo '[{"row_count": 42}, {"row_count": 42}, {"row_count": 42}]'`)

	res := Run(context.Background(), "some.csv")
	require.True(t, res.Success, "expected success: %v", res.Err)
	require.NotNil(t, res.Rows)
	assert.Equal(t, int64(42), *res.Rows)
	assert.Equal(t, int64(3), *res.Cols)
	assert.Nil(t, res.Err)
}

func TestRunToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	res := Run(context.Background(), "some.csv")
	require.False(t, res.Success)
	assert.Contains(t, *res.Err, "not found")
	assert.Nil(t, res.Rows)
}

func TestRunNonZeroExit(t *testing.T) {
	fakeTool(t, "echo 'CSV contains NUL byte' >&2\nexit 1")

	res := Run(context.Background(), "some.csv")
	require.False(t, res.Success)
	assert.Contains(t, *res.Err, "NUL byte")
}

func TestRunMalformedOutput(t *testing.T) {
	fakeTool(t, "echo 'not json at all'")

	res := Run(context.Background(), "some.csv")
	require.False(t, res.Success)
	assert.Contains(t, *res.Err, "malformed")
}

func TestRunEmptyArray(t *testing.T) {
	fakeTool(t, "echo '[]'")

	res := Run(context.Background(), "some.csv")
	require.False(t, res.Success)
	assert.Contains(t, *res.Err, "no columns")
}

func TestRunTimeout(t *testing.T) {
	fakeTool(t, "exec /bin/sleep 5")

	start := time.Now()
	res := run(context.Background(), "some.csv", 100*time.Millisecond)
	require.False(t, res.Success)
	assert.Contains(t, *res.Err, "timed out")
	assert.Less(t, time.Since(start), 3*time.Second, "process must be killed, not waited on")
}
