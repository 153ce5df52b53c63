package filter

import (
	"github.com/subsurface-io/resfilter/internal/ensemble"
	"github.com/subsurface-io/resfilter/internal/selection"
)

// FilterType selects which configuration axis drives the filtering.
type FilterType string

const (
	// ByRealizationNumber filters against the realization number selections.
	ByRealizationNumber FilterType = "byRealizationNumber"
	// ByParameterValues filters against the parameter value selections.
	ByParameterValues FilterType = "byParameterValues"
)

// InclusionMode is the polarity of the filter: whether the selection names
// the kept set or the removed set.
type InclusionMode string

const (
	// IncludeFilter keeps the realizations named by the selection.
	IncludeFilter InclusionMode = "include"
	// ExcludeFilter removes the realizations named by the selection.
	ExcludeFilter InclusionMode = "exclude"
)

// RealizationFilter holds one ensemble's filter configuration and the
// derived filtered realization list.
//
// The filtered list is a cache with an explicit commit contract: mutators
// never recompute it, only RunFiltering does. Until RunFiltering has run,
// FilteredRealizations reflects the configuration as of the LAST run, or
// the full universe if it never ran. Callers batch their mutations and
// commit once.
type RealizationFilter struct {
	assignedEnsemble *ensemble.Ensemble

	filterType    FilterType
	inclusionMode InclusionMode

	// selections is nil when no explicit selection exists, meaning "all
	// realizations". An empty non-nil slice means "none selected".
	selections []selection.RealizationSelection

	// parameterValueSelections is consulted only for ByParameterValues.
	parameterValueSelections map[string]ParameterValueSelection

	filtered []int
	hasRun   bool
}

// New creates a filter for the given ensemble with the documented defaults:
// filter by realization number, include polarity, no explicit selection.
// The filter references the ensemble, it does not own it.
func New(assigned *ensemble.Ensemble) *RealizationFilter {
	return &RealizationFilter{
		assignedEnsemble: assigned,
		filterType:       ByRealizationNumber,
		inclusionMode:    IncludeFilter,
	}
}

// AssignedEnsembleIdent returns the identity of the governed ensemble.
// The assignment is fixed at construction.
func (f *RealizationFilter) AssignedEnsembleIdent() ensemble.Ident {
	return f.assignedEnsemble.Ident()
}

// FilterType returns the configured filter type.
func (f *RealizationFilter) FilterType() FilterType {
	return f.filterType
}

// SetFilterType updates the filter type. Does not recompute the cache.
func (f *RealizationFilter) SetFilterType(t FilterType) {
	f.filterType = t
}

// InclusionMode returns the configured include/exclude polarity.
func (f *RealizationFilter) InclusionMode() InclusionMode {
	return f.inclusionMode
}

// SetInclusionMode updates the polarity. Does not recompute the cache.
func (f *RealizationFilter) SetInclusionMode(mode InclusionMode) {
	f.inclusionMode = mode
}

// Selections returns the realization number selections, or nil when no
// explicit selection is set (meaning all realizations).
func (f *RealizationFilter) Selections() []selection.RealizationSelection {
	return f.selections
}

// SetSelections replaces the realization number selections. A nil slice
// means "no explicit selection - use all realizations". Does not recompute
// the cache.
func (f *RealizationFilter) SetSelections(selections []selection.RealizationSelection) {
	f.selections = selections
}

// ParameterValueSelections returns the parameter ident to value-selection
// map, or nil when none is set.
func (f *RealizationFilter) ParameterValueSelections() map[string]ParameterValueSelection {
	return f.parameterValueSelections
}

// SetParameterValueSelections replaces the parameter value selections.
// Cross-field consistency (parameter idents existing on the ensemble) is
// the caller's concern; the filter never validates it. Does not recompute
// the cache.
func (f *RealizationFilter) SetParameterValueSelections(selections map[string]ParameterValueSelection) {
	f.parameterValueSelections = selections
}

// RunFiltering recomputes the filtered realization list from the current
// configuration. This is the only operation that touches the cache.
//
// The selected set is expanded from the configuration (nil selections mean
// the full universe); include polarity keeps universe members present in
// the selected set, exclude polarity keeps those absent. The result is
// always ordered by the ensemble's universe order, regardless of how the
// selections were entered.
func (f *RealizationFilter) RunFiltering() {
	universe := f.assignedEnsemble.Realizations()

	var selected map[int]bool
	switch f.filterType {
	case ByParameterValues:
		selected = f.selectedByParameterValues(universe)
	default:
		selected = f.selectedByNumber(universe)
	}

	include := f.inclusionMode != ExcludeFilter
	filtered := make([]int, 0, len(universe))
	for _, n := range universe {
		if selected[n] == include {
			filtered = append(filtered, n)
		}
	}

	f.filtered = filtered
	f.hasRun = true
}

// FilteredRealizations returns the last committed filtering result in
// universe order. Before the first RunFiltering call it returns the full
// universe as a safe default. The returned slice is a copy.
func (f *RealizationFilter) FilteredRealizations() []int {
	if !f.hasRun {
		return f.assignedEnsemble.Realizations()
	}
	filtered := make([]int, len(f.filtered))
	copy(filtered, f.filtered)
	return filtered
}

// selectedByNumber builds the selected set from the realization number
// selections. Nil selections select the whole universe.
func (f *RealizationFilter) selectedByNumber(universe []int) map[int]bool {
	if f.selections == nil {
		selected := make(map[int]bool, len(universe))
		for _, n := range universe {
			selected[n] = true
		}
		return selected
	}

	expanded := selection.Expand(f.selections)
	selected := make(map[int]bool, len(expanded))
	for _, n := range expanded {
		selected[n] = true
	}
	return selected
}

// selectedByParameterValues builds the selected set by intersecting the
// realizations matching every parameter value selection. Entries naming a
// parameter the ensemble does not carry are skipped: validating idents is
// the configuring collaborator's job, not the filter's. With no entries at
// all, the whole universe is selected.
func (f *RealizationFilter) selectedByParameterValues(universe []int) map[int]bool {
	selected := make(map[int]bool, len(universe))
	for _, n := range universe {
		selected[n] = true
	}

	params := f.assignedEnsemble.Parameters()
	if params == nil {
		if len(f.parameterValueSelections) > 0 {
			// Selections exist but the ensemble has no parameter data at
			// all: nothing can match.
			return map[int]bool{}
		}
		return selected
	}

	for ident, sel := range f.parameterValueSelections {
		p, ok := params.Get(ident)
		if !ok {
			continue
		}
		for n := range selected {
			if !matchesParameter(sel, p, n) {
				delete(selected, n)
			}
		}
	}
	return selected
}
