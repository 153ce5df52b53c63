// Package selection implements realization number selections and their
// compact range notation.
//
// A selection describes a user-chosen chunk of realization numbers: either a
// single number or an inclusive range. Selections round-trip through "picker
// tags" - the short strings users type into range pickers ("12", "3-7") -
// and can be produced from a flat list of numbers via BestCompressed, which
// collapses maximal runs of consecutive integers into ranges.
//
// The package is pure and stateless. It performs no validation beyond tag
// syntax: semantic checks (start <= end, membership in an ensemble) belong
// to callers.
package selection
