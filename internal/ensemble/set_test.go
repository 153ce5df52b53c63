package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const otherCaseUUID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func newTestSet() *Set {
	return NewSet([]*Ensemble{
		New(testCaseUUID, "iter-0", []int{0, 1, 2}),
		New(testCaseUUID, "iter-1", []int{0, 1, 2, 3}),
		New(otherCaseUUID, "iter-0", []int{5, 6}),
	})
}

func TestSet_Empty(t *testing.T) {
	s := NewSet(nil)

	assert.False(t, s.HasAny())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
	assert.Nil(t, s.Find(NewIdent(testCaseUUID, "iter-0")))
	assert.Nil(t, s.FindByIdentString(testCaseUUID+"::iter-0"))
}

func TestSet_FindExactIdentity(t *testing.T) {
	s := newTestSet()
	require.True(t, s.HasAny())

	e := s.Find(NewIdent(testCaseUUID, "iter-1"))
	require.NotNil(t, e)
	assert.Equal(t, []int{0, 1, 2, 3}, e.Realizations())
}

func TestSet_FindNearMissReturnsNil(t *testing.T) {
	s := newTestSet()

	assert.Nil(t, s.Find(NewIdent(testCaseUUID, "iter-9")), "right case, wrong name")
	assert.Nil(t, s.Find(NewIdent("99999999-bbbb-cccc-dddd-eeeeeeeeeeee", "iter-0")),
		"right name, wrong case")
}

func TestSet_FindDistinguishesCasesWithSameName(t *testing.T) {
	s := newTestSet()

	e := s.Find(NewIdent(otherCaseUUID, "iter-0"))
	require.NotNil(t, e)
	assert.Equal(t, otherCaseUUID, e.CaseUUID())
}

func TestSet_FindByIdentString(t *testing.T) {
	s := newTestSet()

	e := s.FindByIdentString(testCaseUUID + "::iter-0")
	require.NotNil(t, e)
	assert.True(t, e.Ident().Equal(NewIdent(testCaseUUID, "iter-0")))
}

func TestSet_FindByIdentString_MalformedReturnsNil(t *testing.T) {
	s := newTestSet()

	assert.Nil(t, s.FindByIdentString(""))
	assert.Nil(t, s.FindByIdentString("no-separator"))
	assert.Nil(t, s.FindByIdentString("not-a-uuid::iter-0"))
	assert.Nil(t, s.FindByIdentString(testCaseUUID+"::iter-0::extra"))
}

func TestSet_AllPreservesOrderAndIsCopied(t *testing.T) {
	s := newTestSet()

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "iter-0", all[0].EnsembleName())
	assert.Equal(t, "iter-1", all[1].EnsembleName())

	all[0] = nil
	assert.NotNil(t, s.All()[0], "mutating the returned slice must not affect the set")
}
