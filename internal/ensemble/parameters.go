package ensemble

// Parameter holds one parameter's values across the realizations of an
// ensemble. A parameter is either continuous (numeric values) or discrete
// (string-encoded values); exactly one of the value maps is populated.
type Parameter struct {
	// Ident is the parameter identity string, e.g. "GLOBVAR:FWL".
	Ident string

	// Discrete marks string-valued parameters. Continuous parameters carry
	// NumericValues; discrete parameters carry StringValues.
	Discrete bool

	// NumericValues maps realization number to value for continuous parameters.
	NumericValues map[int]float64

	// StringValues maps realization number to value for discrete parameters.
	StringValues map[int]string
}

// ParameterCollection is an ordered, ident-keyed set of parameters for one
// ensemble. Immutable after construction.
type ParameterCollection struct {
	byIdent map[string]Parameter
	order   []string
}

// NewParameterCollection builds a collection from parameters in listed
// order. A later parameter with a duplicate ident replaces the earlier one
// but keeps the original position.
func NewParameterCollection(parameters ...Parameter) *ParameterCollection {
	c := &ParameterCollection{
		byIdent: make(map[string]Parameter, len(parameters)),
		order:   make([]string, 0, len(parameters)),
	}
	for _, p := range parameters {
		if _, exists := c.byIdent[p.Ident]; !exists {
			c.order = append(c.order, p.Ident)
		}
		c.byIdent[p.Ident] = p
	}
	return c
}

// Get returns the parameter with the given ident string.
func (c *ParameterCollection) Get(ident string) (Parameter, bool) {
	p, ok := c.byIdent[ident]
	return p, ok
}

// Has reports whether a parameter with the given ident string exists.
func (c *ParameterCollection) Has(ident string) bool {
	_, ok := c.byIdent[ident]
	return ok
}

// Idents returns parameter ident strings in listed order.
func (c *ParameterCollection) Idents() []string {
	idents := make([]string, len(c.order))
	copy(idents, c.order)
	return idents
}

// Len returns the number of parameters in the collection.
func (c *ParameterCollection) Len() int {
	return len(c.order)
}
