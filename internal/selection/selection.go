package selection

// RealizationSelection is a sealed interface over the two selection variants.
// Only SingleRealization and RealizationRange implement it, so type switches
// over selections are exhaustive by construction.
type RealizationSelection interface {
	realizationSelection() // Sealed - only these types implement it
}

// SingleRealization selects exactly one realization number.
type SingleRealization int

func (SingleRealization) realizationSelection() {}

// RealizationRange selects every realization number in [Start, End] inclusive.
// Start <= End is expected but not enforced here; ParsePickerTag and the
// config loader validate it at the boundary.
type RealizationRange struct {
	Start int
	End   int
}

func (RealizationRange) realizationSelection() {}

// Single creates a SingleRealization selection.
func Single(n int) SingleRealization {
	return SingleRealization(n)
}

// Range creates a RealizationRange selection.
func Range(start, end int) RealizationRange {
	return RealizationRange{Start: start, End: end}
}

// Expand flattens selections to individual realization numbers.
// Selections contribute in their listed order; a range contributes every
// integer in [Start, End] ascending. Duplicates across selections are
// preserved - deduplication happens when filtering against an ensemble
// universe, not here.
func Expand(selections []RealizationSelection) []int {
	numbers := make([]int, 0, len(selections))
	for _, sel := range selections {
		switch s := sel.(type) {
		case SingleRealization:
			numbers = append(numbers, int(s))
		case RealizationRange:
			for n := s.Start; n <= s.End; n++ {
				numbers = append(numbers, n)
			}
		}
	}
	return numbers
}
