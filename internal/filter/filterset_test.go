package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsurface-io/resfilter/internal/ensemble"
	"github.com/subsurface-io/resfilter/internal/selection"
	"github.com/subsurface-io/resfilter/internal/testutil"
)

func TestNewFilterSet_OneFilterPerEnsembleInOrder(t *testing.T) {
	ensembles := testutil.TwoCaseSet()
	s := NewFilterSet(ensembles)

	require.Equal(t, ensembles.Len(), s.Len())

	idents := s.Idents()
	for i, e := range ensembles.All() {
		assert.True(t, idents[i].Equal(e.Ident()))
	}
}

func TestFilterSet_FilterForEnsemble(t *testing.T) {
	s := NewFilterSet(testutil.TwoCaseSet())
	ident := ensemble.NewIdent(testutil.DrogonCaseUUID, "iter-0")

	f := s.FilterForEnsemble(ident)
	require.NotNil(t, f)
	assert.True(t, f.AssignedEnsembleIdent().Equal(ident))
}

func TestFilterSet_UnknownIdentYieldsNil(t *testing.T) {
	s := NewFilterSet(testutil.TwoCaseSet())
	unknown := ensemble.NewIdent(testutil.RandomCaseUUID(), "iter-0")

	assert.Nil(t, s.FilterForEnsemble(unknown))
	assert.Nil(t, s.FilteredRealizations(unknown))
}

func TestFilterSet_FilteredRealizationsReflectsCommit(t *testing.T) {
	s := NewFilterSet(testutil.TwoCaseSet())
	ident := ensemble.NewIdent(testutil.DrogonCaseUUID, "iter-0")

	// Default: full universe before any commit.
	assert.Equal(t, testutil.GappedUniverse(), s.FilteredRealizations(ident))

	f := s.FilterForEnsemble(ident)
	f.SetSelections([]selection.RealizationSelection{selection.Range(1, 3)})
	f.RunFiltering()

	assert.Equal(t, []int{1, 2, 3}, s.FilteredRealizations(ident))
}

func TestFilterSet_FiltersAreIndependent(t *testing.T) {
	s := NewFilterSet(testutil.TwoCaseSet())
	gapped := ensemble.NewIdent(testutil.DrogonCaseUUID, "iter-0")
	second := ensemble.NewIdent(testutil.SecondCaseUUID, "iter-0")

	f := s.FilterForEnsemble(gapped)
	f.SetSelections([]selection.RealizationSelection{selection.Single(1)})
	f.RunFiltering()

	assert.Equal(t, []int{1}, s.FilteredRealizations(gapped))
	assert.Equal(t, []int{0, 1, 2, 3}, s.FilteredRealizations(second),
		"committing one ensemble's filter must not disturb another's")
}
