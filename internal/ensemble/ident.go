package ensemble

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// identSeparator joins the case UUID and ensemble name in the string
// encoding of an Ident.
const identSeparator = "::"

// Ident is the identity of an ensemble: the owning case UUID plus the
// ensemble name within that case. Two idents are equal iff both fields
// match exactly, so Ident is a comparable value type.
type Ident struct {
	caseUUID     string
	ensembleName string
}

// NewIdent creates an ensemble identity.
func NewIdent(caseUUID, ensembleName string) Ident {
	return Ident{caseUUID: caseUUID, ensembleName: ensembleName}
}

// CaseUUID returns the owning case UUID.
func (i Ident) CaseUUID() string {
	return i.caseUUID
}

// EnsembleName returns the ensemble name within the case.
func (i Ident) EnsembleName() string {
	return i.ensembleName
}

// String encodes the identity as "<caseUuid>::<ensembleName>".
// ParseIdentString is the inverse.
func (i Ident) String() string {
	return i.caseUUID + identSeparator + i.ensembleName
}

// Equal reports whether two idents match exactly in both fields.
func (i Ident) Equal(other Ident) bool {
	return i == other
}

// ParseIdentString decodes an "<caseUuid>::<ensembleName>" string.
// Returns an error for a missing or repeated separator, an empty ensemble
// name, or a case UUID that is not a well-formed RFC 4122 UUID. It never
// panics; callers that treat decode failure as "not found" (Set lookups)
// simply discard the error.
func ParseIdentString(s string) (Ident, error) {
	parts := strings.Split(s, identSeparator)
	if len(parts) != 2 {
		return Ident{}, fmt.Errorf("ensemble ident %q: expected exactly one %q separator", s, identSeparator)
	}

	caseUUID, ensembleName := parts[0], parts[1]
	if _, err := uuid.Parse(caseUUID); err != nil {
		return Ident{}, fmt.Errorf("ensemble ident %q: malformed case UUID: %w", s, err)
	}
	if ensembleName == "" {
		return Ident{}, fmt.Errorf("ensemble ident %q: empty ensemble name", s)
	}

	return Ident{caseUUID: caseUUID, ensembleName: ensembleName}, nil
}
