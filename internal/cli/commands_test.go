package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsurface-io/resfilter/internal/testutil"
)

const testManifestYAML = `
ensembles:
  - caseUuid: "2f9cbf08-52f1-4e1c-b16f-2e8d8e2a1437"
    caseName: drogon_design
    name: iter-0
    displayName: Iteration 0
    field: DROGON
    realizations: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 15]
presets:
  - name: keep-first-three
    ensemble: "2f9cbf08-52f1-4e1c-b16f-2e8d8e2a1437::iter-0"
    mode: include
    tags: ["1-3"]
`

func writeTestManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ensembles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifestYAML), 0o644))
	return path
}

func execCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand_ValidManifest(t *testing.T) {
	out, err := execCLI(t, "validate", writeTestManifest(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Manifest valid")
	assert.Contains(t, out, "1 ensemble(s)")
}

func TestValidateCommand_InvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ensembles:\n  - caseUuid: nope\n    name: iter-0\n    realizations: [0]\n"), 0o644))

	out, err := execCLI(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "malformed case UUID")
}

func TestValidateCommand_MissingPath(t *testing.T) {
	_, err := execCLI(t, "validate", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestLoadAndListEnsembles(t *testing.T) {
	db := filepath.Join(t.TempDir(), "session.db")

	out, err := execCLI(t, "load", writeTestManifest(t), "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 1 ensemble(s)")

	out, err = execCLI(t, "ensembles", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, testutil.DrogonCaseUUID+"::iter-0")
	assert.Contains(t, out, "Iteration 0")
	assert.Contains(t, out, "11 realization(s)")
}

func TestEnsemblesCommand_EmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")

	out, err := execCLI(t, "ensembles", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No ensembles stored.")
}

func TestResolveCommand_WithTags(t *testing.T) {
	db := filepath.Join(t.TempDir(), "session.db")
	_, err := execCLI(t, "load", writeTestManifest(t), "--db", db)
	require.NoError(t, err)

	ident := testutil.DrogonCaseUUID + "::iter-0"
	out, err := execCLI(t, "resolve", ident, "--db", db, "--tags", "1-3,9")
	require.NoError(t, err)
	assert.Contains(t, out, "4 of 11 realization(s)")
	assert.Contains(t, out, "1, 2, 3, 9")
	assert.Contains(t, out, "1-3, 9")
}

func TestResolveCommand_CommitThenStoredState(t *testing.T) {
	db := filepath.Join(t.TempDir(), "session.db")
	_, err := execCLI(t, "load", writeTestManifest(t), "--db", db)
	require.NoError(t, err)

	ident := testutil.DrogonCaseUUID + "::iter-0"
	out, err := execCLI(t, "resolve", ident, "--db", db,
		"--tags", "4-8", "--mode", "exclude", "--commit")
	require.NoError(t, err)
	assert.Contains(t, out, "6 of 11 realization(s)")

	// Without tags the committed state is applied.
	out, err = execCLI(t, "resolve", ident, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "6 of 11 realization(s)")
	assert.Contains(t, out, "1-3, 9-10, 15")
}

func TestResolveCommand_NoStoredStateResolvesUniverse(t *testing.T) {
	db := filepath.Join(t.TempDir(), "session.db")
	_, err := execCLI(t, "load", writeTestManifest(t), "--db", db)
	require.NoError(t, err)

	out, err := execCLI(t, "resolve", testutil.DrogonCaseUUID+"::iter-0", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "11 of 11 realization(s)")
}

func TestResolveCommand_UnknownEnsemble(t *testing.T) {
	db := filepath.Join(t.TempDir(), "session.db")
	_, err := execCLI(t, "load", writeTestManifest(t), "--db", db)
	require.NoError(t, err)

	_, err = execCLI(t, "resolve", testutil.DrogonCaseUUID+"::iter-9", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestResolveCommand_MalformedTags(t *testing.T) {
	db := filepath.Join(t.TempDir(), "session.db")
	_, err := execCLI(t, "load", writeTestManifest(t), "--db", db)
	require.NoError(t, err)

	_, err = execCLI(t, "resolve", testutil.DrogonCaseUUID+"::iter-0",
		"--db", db, "--tags", "3-1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestLoadCommand_ApplyPresets(t *testing.T) {
	db := filepath.Join(t.TempDir(), "session.db")
	out, err := execCLI(t, "load", writeTestManifest(t), "--db", db, "--apply-presets")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied 1 preset(s)")

	out, err = execCLI(t, "resolve", testutil.DrogonCaseUUID+"::iter-0", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "3 of 11 realization(s)")
	assert.Contains(t, out, "1-3")
}

func TestCompressCommand_Text(t *testing.T) {
	out, err := execCLI(t, "compress", "1", "2", "3", "9", "10", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "1-3, 9-10, 15")
}

func TestCompressCommand_JSON(t *testing.T) {
	out, err := execCLI(t, "--format", "json", "compress", "5", "0", "1", "2")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result CompressResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, []string{"0-2", "5"}, result.Tags)
}

func TestCompressCommand_RejectsNonNumbers(t *testing.T) {
	_, err := execCLI(t, "compress", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
