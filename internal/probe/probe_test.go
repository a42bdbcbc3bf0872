package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "probe.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// checkInvariant asserts that exactly one of success-with-shape or
// failure-with-error holds.
func checkInvariant(t *testing.T, name string, res Result) {
	t.Helper()
	if res.Success {
		assert.Nil(t, res.Err, "%s: success with populated error", name)
		assert.NotNil(t, res.Rows, "%s: success without rows", name)
		assert.NotNil(t, res.Cols, "%s: success without cols", name)
	} else {
		assert.NotNil(t, res.Err, "%s: failure without error", name)
		assert.Nil(t, res.Rows, "%s: failure with rows", name)
		assert.Nil(t, res.Cols, "%s: failure with cols", name)
	}
}

func TestRegistryOrder(t *testing.T) {
	reg := Registry()
	require.Len(t, reg, 3)
	assert.Equal(t, "sequential", reg[0].Name())
	assert.Equal(t, "permissive", reg[1].Name())
	assert.Equal(t, "strict", reg[2].Name())
}

func TestProbesAgreeOnCleanFile(t *testing.T) {
	path := writeCSV(t, "id,name,score\n1,alpha,0.5\n2,beta,0.9\n")

	for _, p := range Registry() {
		res := Run(p, path, "utf-8")
		checkInvariant(t, p.Name(), res)
		require.True(t, res.Success, "%s should succeed: %v", p.Name(), res.Err)
		assert.Equal(t, int64(2), *res.Rows, p.Name())
		assert.Equal(t, int64(3), *res.Cols, p.Name())
		assert.Equal(t, []string{"id", "name", "score"}, res.Headers, p.Name())
	}
}

func TestProbesDisagreeOnMalformedFile(t *testing.T) {
	// Header has 3 fields, second data row has 5.
	path := writeCSV(t, "a,b,c\n1,2,3\n1,2,3,4,5\n4,5,6\n")

	seq := Run(Sequential{}, path, "utf-8")
	checkInvariant(t, "sequential", seq)
	require.False(t, seq.Success, "sequential should reject the field-count mismatch")
	assert.Contains(t, *seq.Err, "fields")

	perm := Run(Permissive{}, path, "utf-8")
	checkInvariant(t, "permissive", perm)
	require.True(t, perm.Success)
	assert.Equal(t, int64(2), *perm.Rows, "permissive drops the malformed row")

	strict := Run(Strict{}, path, "utf-8")
	checkInvariant(t, "strict", strict)
	require.True(t, strict.Success)
	assert.Equal(t, int64(3), *strict.Rows, "strict coerces and keeps every row")
	assert.Equal(t, int64(3), *strict.Cols)
}

func TestProbesOnEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	for _, p := range Registry() {
		res := Run(p, path, "utf-8")
		checkInvariant(t, p.Name(), res)
		require.True(t, res.Success, "%s should accept an empty file", p.Name())
		assert.Equal(t, int64(0), *res.Rows, p.Name())
		assert.Equal(t, int64(0), *res.Cols, p.Name())
	}
}

func TestProbesOnMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.csv")
	for _, p := range Registry() {
		res := Run(p, path, "utf-8")
		checkInvariant(t, p.Name(), res)
		assert.False(t, res.Success, p.Name())
	}
}

func TestSequentialQuotedFields(t *testing.T) {
	path := writeCSV(t, "name,notes\nalpha,\"says \"\"hi\"\", then\nleaves\"\nbeta,plain\n")

	res := Run(Sequential{}, path, "utf-8")
	require.True(t, res.Success, "quoted commas and newlines should parse: %v", res.Err)
	assert.Equal(t, int64(2), *res.Rows)
	assert.Equal(t, int64(2), *res.Cols)
}

func TestSequentialBareQuote(t *testing.T) {
	path := writeCSV(t, "a,b\nval\"ue,2\n")

	res := Run(Sequential{}, path, "utf-8")
	checkInvariant(t, "sequential", res)
	require.False(t, res.Success)
	assert.Contains(t, *res.Err, "quote")

	// The permissive probe shrugs at the same content.
	perm := Run(Permissive{}, path, "utf-8")
	assert.True(t, perm.Success)
}

func TestSequentialUnterminatedQuote(t *testing.T) {
	path := writeCSV(t, "a,b\n\"open,2\n")

	res := Run(Sequential{}, path, "utf-8")
	require.False(t, res.Success)
	assert.Contains(t, *res.Err, "unterminated")
}

func TestStrictInfersColumnTypes(t *testing.T) {
	path := writeCSV(t, "count,ratio,label\n1,0.5,alpha\n2,1.5e3,beta\n-3,.25,gamma\n")

	res := Run(Strict{}, path, "utf-8")
	require.True(t, res.Success)
	assert.Equal(t, []string{"int", "float", "string"}, res.Types)
}

func TestStrictWidensMixedColumn(t *testing.T) {
	path := writeCSV(t, "v\n1\n2.5\n")

	res := Run(Strict{}, path, "utf-8")
	require.True(t, res.Success)
	assert.Equal(t, []string{"float"}, res.Types)
}

func TestStrictPadsShortRows(t *testing.T) {
	path := writeCSV(t, "a,b,c\n1,2\n1,2,3\n")

	res := Run(Strict{}, path, "utf-8")
	require.True(t, res.Success)
	assert.Equal(t, int64(2), *res.Rows)
	assert.Equal(t, int64(3), *res.Cols)
}

func TestPermissiveLatin1(t *testing.T) {
	raw := []byte("name,city\nren\xe9,par\xeds\n") // ISO-8859-1 bytes
	path := filepath.Join(t.TempDir(), "latin1.csv")
	require.NoError(t, os.WriteFile(path, raw, 0644))

	res := Run(Permissive{}, path, "iso-8859-1")
	require.True(t, res.Success, "decoded read should succeed: %v", res.Err)
	assert.Equal(t, int64(1), *res.Rows)
}

type panicProbe struct{}

func (panicProbe) Name() string { return "panicky" }
func (panicProbe) Probe(path, encoding string) Result {
	panic("boom")
}

func TestRunRecoversPanic(t *testing.T) {
	res := Run(panicProbe{}, "whatever.csv", "utf-8")
	checkInvariant(t, "panicky", res)
	require.False(t, res.Success)
	assert.Contains(t, *res.Err, "boom")
}
