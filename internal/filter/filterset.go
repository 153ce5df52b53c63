package filter

import "github.com/subsurface-io/resfilter/internal/ensemble"

// FilterSet maps each ensemble in a session to its realization filter.
// Visualization consumers query it per ensemble ident; the settings surface
// fetches the filter itself to mutate and commit.
//
// The set exclusively owns its filters and is rebuilt whenever the session's
// ensemble collection is replaced.
type FilterSet struct {
	filters map[ensemble.Ident]*RealizationFilter
	order   []ensemble.Ident
}

// NewFilterSet creates one default-configured filter per ensemble in the
// given set, preserving set order.
func NewFilterSet(ensembles *ensemble.Set) *FilterSet {
	all := ensembles.All()
	s := &FilterSet{
		filters: make(map[ensemble.Ident]*RealizationFilter, len(all)),
		order:   make([]ensemble.Ident, 0, len(all)),
	}
	for _, e := range all {
		s.filters[e.Ident()] = New(e)
		s.order = append(s.order, e.Ident())
	}
	return s
}

// Len returns the number of filters in the set.
func (s *FilterSet) Len() int {
	return len(s.order)
}

// Idents returns the governed ensemble identities in set order.
func (s *FilterSet) Idents() []ensemble.Ident {
	idents := make([]ensemble.Ident, len(s.order))
	copy(idents, s.order)
	return idents
}

// FilterForEnsemble returns the filter governing the given ensemble, or nil
// when the ident is not in the set. A miss is not an error.
func (s *FilterSet) FilterForEnsemble(ident ensemble.Ident) *RealizationFilter {
	return s.filters[ident]
}

// FilteredRealizations returns the committed filtered realizations for the
// given ensemble, or nil when the ident is not in the set. This is the read
// surface layers use to decide which realizations to render or aggregate.
func (s *FilterSet) FilteredRealizations(ident ensemble.Ident) []int {
	f := s.filters[ident]
	if f == nil {
		return nil
	}
	return f.FilteredRealizations()
}
