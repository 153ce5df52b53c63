package ensemble

// Ensemble is one simulation ensemble: identity, display metadata, and the
// full ordered list of realization numbers that exist in it. Instances are
// immutable after construction; the realization order reflects discovery
// order and is preserved in every output derived from the ensemble.
type Ensemble struct {
	ident               Ident
	caseName            string
	displayName         string
	fieldIdentifier     string
	stratigraphicColumn string
	color               string
	realizations        []int
	parameters          *ParameterCollection
}

// Option configures optional ensemble metadata at construction time.
type Option func(*Ensemble)

// WithCaseName sets the human-readable case name.
func WithCaseName(name string) Option {
	return func(e *Ensemble) { e.caseName = name }
}

// WithDisplayName sets the human-readable ensemble display name.
func WithDisplayName(name string) Option {
	return func(e *Ensemble) { e.displayName = name }
}

// WithFieldIdentifier sets the field identifier, e.g. "DROGON".
func WithFieldIdentifier(field string) Option {
	return func(e *Ensemble) { e.fieldIdentifier = field }
}

// WithStratigraphicColumn sets the stratigraphic column identifier.
func WithStratigraphicColumn(column string) Option {
	return func(e *Ensemble) { e.stratigraphicColumn = column }
}

// WithColor sets a custom display color (hex string).
func WithColor(color string) Option {
	return func(e *Ensemble) { e.color = color }
}

// WithParameters attaches the ensemble's parameter collection.
func WithParameters(parameters *ParameterCollection) Option {
	return func(e *Ensemble) { e.parameters = parameters }
}

// New constructs an ensemble. The realization slice is copied, so later
// mutation of the caller's slice cannot leak in. Realization numbers are
// expected to be unique; uniqueness is validated at manifest load time, not
// here.
func New(caseUUID, ensembleName string, realizations []int, opts ...Option) *Ensemble {
	nums := make([]int, len(realizations))
	copy(nums, realizations)

	e := &Ensemble{
		ident:        NewIdent(caseUUID, ensembleName),
		displayName:  ensembleName,
		realizations: nums,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ident returns the ensemble's identity.
func (e *Ensemble) Ident() Ident {
	return e.ident
}

// CaseUUID returns the owning case UUID.
func (e *Ensemble) CaseUUID() string {
	return e.ident.caseUUID
}

// EnsembleName returns the ensemble name within the case.
func (e *Ensemble) EnsembleName() string {
	return e.ident.ensembleName
}

// CaseName returns the human-readable case name (may be empty).
func (e *Ensemble) CaseName() string {
	return e.caseName
}

// DisplayName returns the human-readable ensemble name.
// Defaults to the ensemble name when not set explicitly.
func (e *Ensemble) DisplayName() string {
	return e.displayName
}

// FieldIdentifier returns the field identifier (may be empty).
func (e *Ensemble) FieldIdentifier() string {
	return e.fieldIdentifier
}

// StratigraphicColumn returns the stratigraphic column identifier (may be empty).
func (e *Ensemble) StratigraphicColumn() string {
	return e.stratigraphicColumn
}

// Color returns the custom display color (may be empty).
func (e *Ensemble) Color() string {
	return e.color
}

// Realizations returns the full realization-number universe in discovery
// order. The returned slice is a copy; callers may not mutate the ensemble
// through it.
func (e *Ensemble) Realizations() []int {
	nums := make([]int, len(e.realizations))
	copy(nums, e.realizations)
	return nums
}

// RealizationCount returns the size of the realization universe.
func (e *Ensemble) RealizationCount() int {
	return len(e.realizations)
}

// Parameters returns the parameter collection, or nil when the ensemble was
// loaded without parameter data.
func (e *Ensemble) Parameters() *ParameterCollection {
	return e.parameters
}
