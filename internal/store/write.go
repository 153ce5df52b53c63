package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/subsurface-io/resfilter/internal/ensemble"
	"github.com/subsurface-io/resfilter/internal/filter"
	"github.com/subsurface-io/resfilter/internal/selection"
)

// SaveEnsemble upserts an ensemble and replaces its stored realization
// universe. The whole operation runs in one transaction so readers never
// observe an ensemble with a partially written universe.
func (s *Store) SaveEnsemble(ctx context.Context, e *ensemble.Ensemble) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ensembles (case_uuid, name, case_name, display_name, field, stratigraphic_column, color)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (case_uuid, name) DO UPDATE SET
			case_name = excluded.case_name,
			display_name = excluded.display_name,
			field = excluded.field,
			stratigraphic_column = excluded.stratigraphic_column,
			color = excluded.color
	`, e.CaseUUID(), e.EnsembleName(), e.CaseName(), e.DisplayName(),
		e.FieldIdentifier(), e.StratigraphicColumn(), e.Color())
	if err != nil {
		return fmt.Errorf("upsert ensemble %s: %w", e.Ident(), err)
	}

	// Replace the universe wholesale; position encodes discovery order.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM realizations WHERE case_uuid = ? AND ensemble_name = ?
	`, e.CaseUUID(), e.EnsembleName())
	if err != nil {
		return fmt.Errorf("clear realizations for %s: %w", e.Ident(), err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO realizations (case_uuid, ensemble_name, position, number)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare realization insert: %w", err)
	}
	defer stmt.Close()

	for i, n := range e.Realizations() {
		if _, err := stmt.ExecContext(ctx, e.CaseUUID(), e.EnsembleName(), i, n); err != nil {
			return fmt.Errorf("insert realization %d for %s: %w", n, e.Ident(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ensemble %s: %w", e.Ident(), err)
	}
	return nil
}

// SaveSet saves every ensemble in the set. Each ensemble commits in its own
// transaction; a failure leaves earlier ensembles saved.
func (s *Store) SaveSet(ctx context.Context, set *ensemble.Set) error {
	for _, e := range set.All() {
		if err := s.SaveEnsemble(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// SaveFilterState persists the committed configuration of a filter for the
// ensemble it governs. Selections are stored as a JSON array of picker tags;
// a nil selection list is stored as NULL to keep "no explicit selection"
// distinct from "empty selection".
func (s *Store) SaveFilterState(ctx context.Context, f *filter.RealizationFilter) error {
	ident := f.AssignedEnsembleIdent()

	tags, err := encodeSelectionTags(f.Selections())
	if err != nil {
		return fmt.Errorf("encode selections for %s: %w", ident, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO filter_states (case_uuid, ensemble_name, filter_type, inclusion_mode, selection_tags)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (case_uuid, ensemble_name) DO UPDATE SET
			filter_type = excluded.filter_type,
			inclusion_mode = excluded.inclusion_mode,
			selection_tags = excluded.selection_tags
	`, ident.CaseUUID(), ident.EnsembleName(), string(f.FilterType()), string(f.InclusionMode()), tags)
	if err != nil {
		return fmt.Errorf("upsert filter state for %s: %w", ident, err)
	}
	return nil
}

// DeleteFilterState removes the stored filter state for an ensemble.
// Deleting an absent state is not an error.
func (s *Store) DeleteFilterState(ctx context.Context, ident ensemble.Ident) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM filter_states WHERE case_uuid = ? AND ensemble_name = ?
	`, ident.CaseUUID(), ident.EnsembleName())
	if err != nil {
		return fmt.Errorf("delete filter state for %s: %w", ident, err)
	}
	return nil
}

// encodeSelectionTags renders selections as a JSON array of picker tags.
// Nil selections become SQL NULL.
func encodeSelectionTags(selections []selection.RealizationSelection) (sql.NullString, error) {
	if selections == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(selection.FormatPickerTags(selections))
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
