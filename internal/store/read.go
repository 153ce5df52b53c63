package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/subsurface-io/resfilter/internal/ensemble"
	"github.com/subsurface-io/resfilter/internal/filter"
	"github.com/subsurface-io/resfilter/internal/selection"
)

// FilterState is the stored filter configuration for one ensemble.
// Selections follows the in-memory convention: nil means "no explicit
// selection" (all realizations), an empty non-nil slice means "none".
type FilterState struct {
	Ident         ensemble.Ident
	FilterType    filter.FilterType
	InclusionMode filter.InclusionMode
	Selections    []selection.RealizationSelection
}

// Apply configures a filter from the stored state and commits the result.
func (fs *FilterState) Apply(f *filter.RealizationFilter) {
	f.SetFilterType(fs.FilterType)
	f.SetInclusionMode(fs.InclusionMode)
	f.SetSelections(fs.Selections)
	f.RunFiltering()
}

// LoadEnsemble reads one ensemble and its realization universe.
// Returns (nil, nil) when the ensemble is not stored.
func (s *Store) LoadEnsemble(ctx context.Context, ident ensemble.Ident) (*ensemble.Ensemble, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT case_name, display_name, field, stratigraphic_column, color
		FROM ensembles
		WHERE case_uuid = ? AND name = ?
	`, ident.CaseUUID(), ident.EnsembleName())

	var caseName, displayName, field, stratColumn, color string
	if err := row.Scan(&caseName, &displayName, &field, &stratColumn, &color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load ensemble %s: %w", ident, err)
	}

	realizations, err := s.loadRealizations(ctx, ident)
	if err != nil {
		return nil, err
	}

	return ensemble.New(ident.CaseUUID(), ident.EnsembleName(), realizations,
		ensemble.WithCaseName(caseName),
		ensemble.WithDisplayName(displayName),
		ensemble.WithFieldIdentifier(field),
		ensemble.WithStratigraphicColumn(stratColumn),
		ensemble.WithColor(color),
	), nil
}

// LoadSet reads every stored ensemble in the order they were first saved.
func (s *Store) LoadSet(ctx context.Context) (*ensemble.Set, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT case_uuid, name FROM ensembles ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list ensembles: %w", err)
	}
	defer rows.Close()

	var idents []ensemble.Ident
	for rows.Next() {
		var caseUUID, name string
		if err := rows.Scan(&caseUUID, &name); err != nil {
			return nil, fmt.Errorf("scan ensemble row: %w", err)
		}
		idents = append(idents, ensemble.NewIdent(caseUUID, name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ensembles: %w", err)
	}

	ensembles := make([]*ensemble.Ensemble, 0, len(idents))
	for _, ident := range idents {
		e, err := s.LoadEnsemble(ctx, ident)
		if err != nil {
			return nil, err
		}
		if e != nil {
			ensembles = append(ensembles, e)
		}
	}
	return ensemble.NewSet(ensembles), nil
}

// LoadFilterState reads the stored filter state for an ensemble.
// Returns (nil, nil) when no state is stored.
func (s *Store) LoadFilterState(ctx context.Context, ident ensemble.Ident) (*FilterState, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT filter_type, inclusion_mode, selection_tags
		FROM filter_states
		WHERE case_uuid = ? AND ensemble_name = ?
	`, ident.CaseUUID(), ident.EnsembleName())

	var filterType, inclusionMode string
	var tags sql.NullString
	if err := row.Scan(&filterType, &inclusionMode, &tags); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load filter state for %s: %w", ident, err)
	}

	selections, err := decodeSelectionTags(tags)
	if err != nil {
		return nil, fmt.Errorf("decode selections for %s: %w", ident, err)
	}

	return &FilterState{
		Ident:         ident,
		FilterType:    filter.FilterType(filterType),
		InclusionMode: filter.InclusionMode(inclusionMode),
		Selections:    selections,
	}, nil
}

func (s *Store) loadRealizations(ctx context.Context, ident ensemble.Ident) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT number FROM realizations
		WHERE case_uuid = ? AND ensemble_name = ?
		ORDER BY position
	`, ident.CaseUUID(), ident.EnsembleName())
	if err != nil {
		return nil, fmt.Errorf("load realizations for %s: %w", ident, err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan realization row: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate realizations for %s: %w", ident, err)
	}
	return numbers, nil
}

// decodeSelectionTags parses a stored JSON tag array back into selections.
// SQL NULL decodes to nil.
func decodeSelectionTags(tags sql.NullString) ([]selection.RealizationSelection, error) {
	if !tags.Valid {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(tags.String), &list); err != nil {
		return nil, err
	}
	return selection.ParsePickerTags(list)
}
