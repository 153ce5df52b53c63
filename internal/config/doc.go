// Package config loads ensemble manifests and filter presets.
//
// Manifests describe the ensembles of a session (identity, realization
// universe, optional parameter values) plus named filter presets that can
// be applied to a filter set in one step. Manifests are authored in CUE
// (the primary surface, loaded from a directory of .cue files) or YAML (a
// single file).
//
// All semantic validation lives here, at the boundary: the core ensemble
// and filter packages never validate, so the loader rejects duplicate
// idents, duplicate or negative realization numbers, malformed picker tags
// and unknown preset modes before anything reaches them.
package config
