// Package store persists ensembles and committed filter state in SQLite.
//
// The store holds the session's ensemble manifests (identity, display
// metadata, realization universe in discovery order) and, per ensemble, the
// last committed filter configuration. Filter selections are serialized as
// picker tags so the stored form matches what users typed.
//
// Writes are idempotent upserts; reads order deterministically so a
// restored session always sees ensembles and realizations in the order
// they were first saved.
package store
