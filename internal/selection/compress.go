package selection

import "sort"

// BestCompressed converts a flat list of realization numbers into the
// minimal selection list: every maximal run of consecutive integers becomes
// one range and every isolated integer stays single. Runs of exactly two
// become a two-element range, not two singles.
//
// Input is deduplicated and sorted ascending first, so the caller's order
// does not matter. Empty input yields an empty (non-nil) result.
func BestCompressed(numbers []int) []RealizationSelection {
	selections := make([]RealizationSelection, 0, len(numbers))
	if len(numbers) == 0 {
		return selections
	}

	sorted := dedupeSorted(numbers)

	current := RealizationSelection(SingleRealization(sorted[0]))
	for _, n := range sorted[1:] {
		if n == trailing(current)+1 {
			current = extend(current, n)
			continue
		}
		selections = append(selections, current)
		current = SingleRealization(n)
	}
	return append(selections, current)
}

// dedupeSorted returns a sorted copy of numbers with duplicates removed.
func dedupeSorted(numbers []int) []int {
	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	unique := sorted[:1]
	for _, n := range sorted[1:] {
		if n != unique[len(unique)-1] {
			unique = append(unique, n)
		}
	}
	return unique
}

// trailing returns the last number covered by a selection.
func trailing(sel RealizationSelection) int {
	switch s := sel.(type) {
	case SingleRealization:
		return int(s)
	case RealizationRange:
		return s.End
	default:
		return 0
	}
}

// extend grows a selection to also cover n, which must be trailing(sel)+1.
// A single becomes a range; a range moves its end.
func extend(sel RealizationSelection, n int) RealizationSelection {
	switch s := sel.(type) {
	case SingleRealization:
		return RealizationRange{Start: int(s), End: n}
	case RealizationRange:
		return RealizationRange{Start: s.Start, End: n}
	default:
		return sel
	}
}
