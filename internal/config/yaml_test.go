package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsurface-io/resfilter/internal/testutil"
)

const validYAML = `
ensembles:
  - caseUuid: "2f9cbf08-52f1-4e1c-b16f-2e8d8e2a1437"
    caseName: drogon_design
    name: iter-0
    displayName: Iteration 0
    realizations: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 15]
  - caseUuid: "2f9cbf08-52f1-4e1c-b16f-2e8d8e2a1437"
    name: iter-1
    realizations: [0, 1, 2, 3]
    parameters:
      - ident: "GLOBVAR:FWL"
        numericValues:
          0: 1680.0
          1: 1695.5
          2: 1700.0
          3: 1712.25
      - ident: "FACIES:MODEL"
        discrete: true
        stringValues:
          0: channel
          1: lobe
          2: channel
          3: sheet
presets:
  - name: keep-first-three
    ensemble: "2f9cbf08-52f1-4e1c-b16f-2e8d8e2a1437::iter-0"
    mode: include
    tags: ["1-3"]
`

func TestParseManifestYAML_Valid(t *testing.T) {
	m, err := ParseManifestYAML([]byte(validYAML))
	require.NoError(t, err)

	require.Len(t, m.Ensembles, 2)
	assert.Equal(t, "iter-0", m.Ensembles[0].Name)
	assert.Equal(t, testutil.DrogonCaseUUID, m.Ensembles[0].CaseUUID)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Ensembles[1].Realizations)

	require.Len(t, m.Ensembles[1].Parameters, 2)
	assert.Equal(t, "GLOBVAR:FWL", m.Ensembles[1].Parameters[0].Ident)
	assert.Equal(t, 1695.5, m.Ensembles[1].Parameters[0].NumericValues[1])
	assert.Equal(t, "sheet", m.Ensembles[1].Parameters[1].StringValues[3])

	require.Len(t, m.Presets, 1)
	assert.Equal(t, "keep-first-three", m.Presets[0].Name)
}

func TestParseManifestYAML_InvalidYAML(t *testing.T) {
	_, err := ParseManifestYAML([]byte("ensembles: [unclosed"))
	require.Error(t, err)
	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeBuildFailed, loadErr.Code)
}

func TestParseManifestYAML_NoEnsembles(t *testing.T) {
	_, err := ParseManifestYAML([]byte("presets: []"))
	require.Error(t, err)
	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestParseManifestYAML_ValidationFailure(t *testing.T) {
	src := `
ensembles:
  - caseUuid: not-a-uuid
    name: iter-0
    realizations: [0]
`
	_, err := ParseManifestYAML([]byte(src))
	require.Error(t, err)
	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInvalid, loadErr.Code)
	assert.Contains(t, loadErr.Message, "malformed case UUID")
}

func TestLoadManifestYAML_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	m, err := LoadManifestYAML(path)
	require.NoError(t, err)
	assert.Len(t, m.Ensembles, 2)
}

func TestLoadManifestYAML_MissingFile(t *testing.T) {
	_, err := LoadManifestYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}
