package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNEOCSV = `pdes,name,pha,diameter
433,Eros,N,16.84
99942,Apophis,Y,0.34
2020 AB,,,
`

const testCADJSON = `{
	"fields": ["des", "cd", "dist", "v_rel"],
	"data": [
		["433", "1900-Dec-27 01:30", "0.3", "5.1"],
		["433", "1931-Jan-30 04:07", "0.17", "5.9"],
		["99942", "2029-Apr-13 21:46", "0.000254", "7.42"],
		["2020 AB", "", null, null]
	]
}`

// writeDataFiles drops the test data set into a temp dir and returns the
// two paths.
func writeDataFiles(t *testing.T) (neofile, cadfile string) {
	t.Helper()
	dir := t.TempDir()
	neofile = filepath.Join(dir, "neos.csv")
	cadfile = filepath.Join(dir, "cad.json")
	require.NoError(t, os.WriteFile(neofile, []byte(testNEOCSV), 0644))
	require.NoError(t, os.WriteFile(cadfile, []byte(testCADJSON), 0644))
	return neofile, cadfile
}

// execute runs the CLI with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// dataArgs prefixes args with the data-file flags.
func dataArgs(neofile, cadfile string, args ...string) []string {
	return append([]string{args[0], "--neofile", neofile, "--cadfile", cadfile}, args[1:]...)
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, err := execute(t, "query", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestInspect_ByDesignation(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "inspect", "--pdes", "433")...)
	require.NoError(t, err)
	assert.Contains(t, out, "433 Eros")
	assert.Contains(t, out, "16.840 km")
}

func TestInspect_ByNameWithApproaches(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "inspect", "--name", "Eros", "--approaches")...)
	require.NoError(t, err)
	assert.Contains(t, out, "433 Eros")
	assert.Contains(t, out, "1900-12-27 01:30")
	assert.Contains(t, out, "1931-01-30 04:07")
}

func TestInspect_MissExitsOne(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "inspect", "--pdes", "99999")...)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
}

func TestInspect_JSONFormat(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "inspect", "--pdes", "433", "--format", "json")...)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "433", data["designation"])
	assert.Equal(t, "433 Eros", data["fullname"])
}

func TestInspect_MissingDataFile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "inspect", "--pdes", "433",
		"--neofile", filepath.Join(dir, "nope.csv"),
		"--cadfile", filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestQuery_NoCriteriaYieldsAll(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "query")...)
	require.NoError(t, err)
	assert.Contains(t, out, "1900-12-27 01:30")
	assert.Contains(t, out, "2029-04-13 21:46")
	assert.Contains(t, out, "an unknown time")
}

func TestQuery_CriteriaAndLimit(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "query", "--pdes", "433", "--limit", "1")...)
	require.NoError(t, err)
	assert.Contains(t, out, "1900-12-27 01:30")
	assert.NotContains(t, out, "1931-01-30 04:07")
}

func TestQuery_Hazardous(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "query", "--hazardous")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Apophis")
	assert.NotContains(t, out, "Eros")
}

func TestQuery_NoMatches(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "query", "--min-distance", "50")...)
	require.NoError(t, err)
	assert.Contains(t, out, "No matching close approaches.")
}

func TestQuery_InvertedBoundsExitTwo(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	_, err := execute(t, dataArgs(neofile, cadfile, "query",
		"--min-distance", "1", "--max-distance", "0.5")...)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid query criteria")
}

func TestQuery_BadDateExitTwo(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	_, err := execute(t, dataArgs(neofile, cadfile, "query", "--date", "27/12/1900")...)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestQuery_OutfileCSV(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	outfile := filepath.Join(t.TempDir(), "results.csv")

	_, err := execute(t, dataArgs(neofile, cadfile, "query", "--name", "Apophis", "--outfile", outfile)...)
	require.NoError(t, err)

	data, err := os.ReadFile(outfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "datetime_utc,distance_au,velocity_km_s,designation,name,diameter_km,potentially_hazardous")
	assert.Contains(t, string(data), "2029-04-13 21:46")
	assert.Contains(t, string(data), "Apophis")
}

func TestQuery_OutfileUnsupportedFormat(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	_, err := execute(t, dataArgs(neofile, cadfile, "query",
		"--outfile", filepath.Join(t.TempDir(), "results.xlsx"))...)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestQuery_JSONFormat(t *testing.T) {
	neofile, cadfile := writeDataFiles(t)
	out, err := execute(t, dataArgs(neofile, cadfile, "query", "--pdes", "99942", "--format", "json")...)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "2029-04-13 21:46", rows[0]["datetime_utc"])
}
