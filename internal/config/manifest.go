package config

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/subsurface-io/resfilter/internal/ensemble"
	"github.com/subsurface-io/resfilter/internal/filter"
	"github.com/subsurface-io/resfilter/internal/selection"
)

// Manifest is the loaded session description: ensembles and optional
// filter presets, both in author order.
type Manifest struct {
	Ensembles []EnsembleEntry `yaml:"ensembles"`
	Presets   []PresetEntry   `yaml:"presets,omitempty"`
}

// EnsembleEntry describes one ensemble in a manifest.
type EnsembleEntry struct {
	CaseUUID            string           `yaml:"caseUuid"`
	CaseName            string           `yaml:"caseName,omitempty"`
	Name                string           `yaml:"name"`
	DisplayName         string           `yaml:"displayName,omitempty"`
	Field               string           `yaml:"field,omitempty"`
	StratigraphicColumn string           `yaml:"stratigraphicColumn,omitempty"`
	Color               string           `yaml:"color,omitempty"`
	Realizations        []int            `yaml:"realizations"`
	Parameters          []ParameterEntry `yaml:"parameters,omitempty"`
}

// ParameterEntry describes one parameter's per-realization values.
// Exactly one of NumericValues/StringValues is populated, matching Discrete.
type ParameterEntry struct {
	Ident         string          `yaml:"ident"`
	Discrete      bool            `yaml:"discrete,omitempty"`
	NumericValues map[int]float64 `yaml:"numericValues,omitempty"`
	StringValues  map[int]string  `yaml:"stringValues,omitempty"`
}

// PresetEntry is a named, ready-to-apply filter configuration.
type PresetEntry struct {
	Name       string   `yaml:"name"`
	Ensemble   string   `yaml:"ensemble"` // ident string "<caseUuid>::<name>"
	FilterType string   `yaml:"filterType,omitempty"`
	Mode       string   `yaml:"mode,omitempty"`
	Tags       []string `yaml:"tags,omitempty"`
}

// Preset filter types and modes accepted in manifests.
var (
	validPresetFilterTypes = map[string]filter.FilterType{
		"":                    filter.ByRealizationNumber,
		"byRealizationNumber": filter.ByRealizationNumber,
	}
	validPresetModes = map[string]filter.InclusionMode{
		"":        filter.IncludeFilter,
		"include": filter.IncludeFilter,
		"exclude": filter.ExcludeFilter,
	}
)

// Validate checks the manifest's semantic invariants. It returns the first
// violation found, positioned by ensemble/preset name.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Ensembles))

	for _, e := range m.Ensembles {
		if err := e.validate(); err != nil {
			return err
		}
		identString := e.CaseUUID + "::" + e.Name
		if seen[identString] {
			return fmt.Errorf("ensemble %q: duplicate ident", identString)
		}
		seen[identString] = true
	}

	for _, p := range m.Presets {
		if err := p.validate(seen); err != nil {
			return err
		}
	}
	return nil
}

func (e *EnsembleEntry) validate() error {
	if e.Name == "" {
		return fmt.Errorf("ensemble with case %q: missing name", e.CaseUUID)
	}
	if _, err := uuid.Parse(e.CaseUUID); err != nil {
		return fmt.Errorf("ensemble %q: malformed case UUID %q: %w", e.Name, e.CaseUUID, err)
	}
	if len(e.Realizations) == 0 {
		return fmt.Errorf("ensemble %q: no realizations", e.Name)
	}

	present := make(map[int]bool, len(e.Realizations))
	for _, n := range e.Realizations {
		if n < 0 {
			return fmt.Errorf("ensemble %q: negative realization number %d", e.Name, n)
		}
		if present[n] {
			return fmt.Errorf("ensemble %q: duplicate realization number %d", e.Name, n)
		}
		present[n] = true
	}

	for _, p := range e.Parameters {
		if p.Ident == "" {
			return fmt.Errorf("ensemble %q: parameter with empty ident", e.Name)
		}
		if p.Discrete && len(p.NumericValues) > 0 {
			return fmt.Errorf("ensemble %q: discrete parameter %q carries numeric values", e.Name, p.Ident)
		}
		if !p.Discrete && len(p.StringValues) > 0 {
			return fmt.Errorf("ensemble %q: continuous parameter %q carries string values", e.Name, p.Ident)
		}
	}
	return nil
}

func (p *PresetEntry) validate(knownEnsembles map[string]bool) error {
	if p.Name == "" {
		return fmt.Errorf("preset for ensemble %q: missing name", p.Ensemble)
	}
	if _, err := ensemble.ParseIdentString(p.Ensemble); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if !knownEnsembles[p.Ensemble] {
		return fmt.Errorf("preset %q: unknown ensemble %q", p.Name, p.Ensemble)
	}
	if _, ok := validPresetFilterTypes[p.FilterType]; !ok {
		return fmt.Errorf("preset %q: unknown filter type %q", p.Name, p.FilterType)
	}
	if _, ok := validPresetModes[p.Mode]; !ok {
		return fmt.Errorf("preset %q: unknown mode %q", p.Name, p.Mode)
	}
	if _, err := selection.ParsePickerTags(p.Tags); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return nil
}

// BuildSet converts the manifest's ensembles into an ensemble set,
// preserving author order. Call Validate first; BuildSet assumes a valid
// manifest.
func (m *Manifest) BuildSet() *ensemble.Set {
	ensembles := make([]*ensemble.Ensemble, 0, len(m.Ensembles))
	for _, e := range m.Ensembles {
		ensembles = append(ensembles, e.build())
	}
	return ensemble.NewSet(ensembles)
}

func (e *EnsembleEntry) build() *ensemble.Ensemble {
	opts := []ensemble.Option{}
	if e.CaseName != "" {
		opts = append(opts, ensemble.WithCaseName(e.CaseName))
	}
	if e.DisplayName != "" {
		opts = append(opts, ensemble.WithDisplayName(e.DisplayName))
	}
	if e.Field != "" {
		opts = append(opts, ensemble.WithFieldIdentifier(e.Field))
	}
	if e.StratigraphicColumn != "" {
		opts = append(opts, ensemble.WithStratigraphicColumn(e.StratigraphicColumn))
	}
	if e.Color != "" {
		opts = append(opts, ensemble.WithColor(e.Color))
	}
	if len(e.Parameters) > 0 {
		params := make([]ensemble.Parameter, 0, len(e.Parameters))
		for _, p := range e.Parameters {
			params = append(params, ensemble.Parameter{
				Ident:         p.Ident,
				Discrete:      p.Discrete,
				NumericValues: p.NumericValues,
				StringValues:  p.StringValues,
			})
		}
		opts = append(opts, ensemble.WithParameters(ensemble.NewParameterCollection(params...)))
	}
	return ensemble.New(e.CaseUUID, e.Name, e.Realizations, opts...)
}

// ApplyPreset configures and commits the filter governing the preset's
// ensemble. The preset must have passed Validate; unknown idents in the
// filter set still fail explicitly here because a set built from a
// different manifest may not contain the ensemble.
func ApplyPreset(p PresetEntry, filters *filter.FilterSet) error {
	ident, err := ensemble.ParseIdentString(p.Ensemble)
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	f := filters.FilterForEnsemble(ident)
	if f == nil {
		return fmt.Errorf("preset %q: ensemble %q not in filter set", p.Name, p.Ensemble)
	}

	selections, err := selection.ParsePickerTags(p.Tags)
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}

	f.SetFilterType(validPresetFilterTypes[p.FilterType])
	f.SetInclusionMode(validPresetModes[p.Mode])
	if len(p.Tags) == 0 {
		f.SetSelections(nil)
	} else {
		f.SetSelections(selections)
	}
	f.RunFiltering()
	return nil
}
