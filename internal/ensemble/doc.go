// Package ensemble models simulation ensembles and their identities.
//
// An Ensemble is the immutable record of one simulation case/ensemble pair:
// its identity, display metadata, the full ordered list of realization
// numbers that exist ("the universe"), and optionally the parameter values
// recorded per realization. A Set is the session-level ordered collection
// of ensembles with lookup by identity or by its string encoding.
//
// Lookups never fail loudly: a missing or malformed identity yields nil,
// matching how downstream visualization layers probe for ensembles they may
// or may not have.
package ensemble
