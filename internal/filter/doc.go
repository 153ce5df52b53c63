// Package filter implements per-ensemble realization filtering.
//
// A RealizationFilter owns one ensemble's filter configuration: the filter
// type (by realization number or by parameter values), the include/exclude
// polarity, and the selection itself. Configuration mutation and result
// computation are deliberately two-phase: mutators only record state, and
// the filtered realization list is recomputed solely by RunFiltering. This
// keeps multi-field edits cheap - a settings panel can change type,
// polarity, and selections before paying for one recomputation.
//
// Filtered output is always ordered by the ensemble's realization universe,
// never by the order the user entered selections, so every consumer sees
// the same deterministic presentation order.
package filter
