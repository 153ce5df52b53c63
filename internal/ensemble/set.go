package ensemble

// Set is an ordered collection of ensembles, typically the full set loaded
// for a session. Uniqueness of identities is expected by construction (the
// manifest loader enforces it) but not re-checked by the container.
type Set struct {
	ensembles []*Ensemble
}

// NewSet builds a set from ensembles in listed order. The slice is copied.
func NewSet(ensembles []*Ensemble) *Set {
	list := make([]*Ensemble, len(ensembles))
	copy(list, ensembles)
	return &Set{ensembles: list}
}

// HasAny reports whether the set contains at least one ensemble.
func (s *Set) HasAny() bool {
	return len(s.ensembles) > 0
}

// Len returns the number of ensembles in the set.
func (s *Set) Len() int {
	return len(s.ensembles)
}

// All returns the ensembles in set order. The slice is a copy.
func (s *Set) All() []*Ensemble {
	list := make([]*Ensemble, len(s.ensembles))
	copy(list, s.ensembles)
	return list
}

// Find returns the ensemble with the given identity, or nil when absent.
// A lookup miss is not an error: consumers probe for ensembles that may
// have been replaced since they captured the ident.
func (s *Set) Find(ident Ident) *Ensemble {
	for _, e := range s.ensembles {
		if e.ident.Equal(ident) {
			return e
		}
	}
	return nil
}

// FindByIdentString decodes "<caseUuid>::<ensembleName>" and looks the
// identity up. Any decode failure (missing separator, malformed UUID) is
// treated as a lookup miss and yields nil rather than an error.
func (s *Set) FindByIdentString(identString string) *Ensemble {
	ident, err := ParseIdentString(identString)
	if err != nil {
		return nil
	}
	return s.Find(ident)
}
