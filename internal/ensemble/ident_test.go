package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCaseUUID = "11111111-2222-3333-4444-555555555555"

func TestIdent_String(t *testing.T) {
	ident := NewIdent(testCaseUUID, "iter-0")
	assert.Equal(t, testCaseUUID+"::iter-0", ident.String())
}

func TestIdent_Equal(t *testing.T) {
	a := NewIdent(testCaseUUID, "iter-0")
	b := NewIdent(testCaseUUID, "iter-0")
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(NewIdent(testCaseUUID, "iter-1")), "same case, different name")
	assert.False(t, a.Equal(NewIdent("99999999-2222-3333-4444-555555555555", "iter-0")),
		"same name, different case")
}

func TestParseIdentString_RoundTrip(t *testing.T) {
	ident := NewIdent(testCaseUUID, "iter-0")

	parsed, err := ParseIdentString(ident.String())
	require.NoError(t, err)
	assert.Equal(t, ident, parsed)
	assert.Equal(t, testCaseUUID, parsed.CaseUUID())
	assert.Equal(t, "iter-0", parsed.EnsembleName())
}

func TestParseIdentString_Malformed(t *testing.T) {
	testCases := []struct {
		name        string
		identString string
	}{
		{"empty", ""},
		{"no separator", "just-a-name"},
		{"two separators", testCaseUUID + "::iter-0::extra"},
		{"malformed uuid", "not-a-uuid::iter-0"},
		{"empty name", testCaseUUID + "::"},
		{"single colon separator", testCaseUUID + ":iter-0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseIdentString(tc.identString)
			assert.Error(t, err)
		})
	}
}
