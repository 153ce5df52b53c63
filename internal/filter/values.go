package filter

import "github.com/subsurface-io/resfilter/internal/ensemble"

// ParameterValueSelection is a sealed interface over the two ways to select
// parameter values: a discrete value set or a continuous numeric range.
// Only DiscreteValues and NumericRange implement it.
type ParameterValueSelection interface {
	parameterValueSelection() // Sealed - only these types implement it
}

// DiscreteValues selects realizations whose discrete parameter value is one
// of the listed strings.
type DiscreteValues []string

func (DiscreteValues) parameterValueSelection() {}

// NumericRange selects realizations whose continuous parameter value lies
// in [Min, Max] inclusive.
type NumericRange struct {
	Min float64
	Max float64
}

func (NumericRange) parameterValueSelection() {}

// matchesParameter reports whether realization n satisfies the selection
// against the given parameter. Realizations with no recorded value never
// match, and a selection kind mismatched to the parameter kind (range over
// a discrete parameter or value set over a continuous one) matches nothing.
func matchesParameter(sel ParameterValueSelection, p ensemble.Parameter, n int) bool {
	switch s := sel.(type) {
	case DiscreteValues:
		if !p.Discrete {
			return false
		}
		value, ok := p.StringValues[n]
		if !ok {
			return false
		}
		for _, candidate := range s {
			if candidate == value {
				return true
			}
		}
		return false

	case NumericRange:
		if p.Discrete {
			return false
		}
		value, ok := p.NumericValues[n]
		if !ok {
			return false
		}
		return s.Min <= value && value <= s.Max

	default:
		return false
	}
}
