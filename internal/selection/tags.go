package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TagError reports a picker tag that could not be parsed.
type TagError struct {
	Tag     string // the offending tag
	Message string // what was wrong with it
}

func (e *TagError) Error() string {
	return fmt.Sprintf("invalid picker tag %q: %s", e.Tag, e.Message)
}

// IsTagError returns true if the error is a tag parse error.
// Uses errors.As to handle wrapped errors.
func IsTagError(err error) bool {
	var te *TagError
	return errors.As(err, &te)
}

// FormatPickerTag encodes a selection as a picker tag.
// A single realization n becomes "n"; a range becomes "start-end".
func FormatPickerTag(sel RealizationSelection) string {
	switch s := sel.(type) {
	case SingleRealization:
		return strconv.Itoa(int(s))
	case RealizationRange:
		return fmt.Sprintf("%d-%d", s.Start, s.End)
	default:
		// Unreachable: RealizationSelection is sealed.
		return ""
	}
}

// FormatPickerTags encodes each selection as a picker tag.
// A nil slice yields an empty slice, never nil.
func FormatPickerTags(selections []RealizationSelection) []string {
	tags := make([]string, 0, len(selections))
	for _, sel := range selections {
		tags = append(tags, FormatPickerTag(sel))
	}
	return tags
}

// ParsePickerTag decodes a picker tag into a selection.
// "12" parses to a single realization, "3-7" to an inclusive range.
// Malformed tags (empty, more than one separator, non-numeric parts,
// negative numbers, start > end) return a *TagError.
func ParsePickerTag(tag string) (RealizationSelection, error) {
	parts := strings.Split(tag, "-")
	switch len(parts) {
	case 1:
		n, err := parseRealizationNumber(tag, parts[0])
		if err != nil {
			return nil, err
		}
		return SingleRealization(n), nil

	case 2:
		start, err := parseRealizationNumber(tag, parts[0])
		if err != nil {
			return nil, err
		}
		end, err := parseRealizationNumber(tag, parts[1])
		if err != nil {
			return nil, err
		}
		if start > end {
			return nil, &TagError{Tag: tag, Message: fmt.Sprintf("range start %d exceeds end %d", start, end)}
		}
		return RealizationRange{Start: start, End: end}, nil

	default:
		return nil, &TagError{Tag: tag, Message: "expected a single number or start-end"}
	}
}

// ParsePickerTags decodes each tag, failing on the first malformed one.
func ParsePickerTags(tags []string) ([]RealizationSelection, error) {
	selections := make([]RealizationSelection, 0, len(tags))
	for _, tag := range tags {
		sel, err := ParsePickerTag(tag)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	return selections, nil
}

// parseRealizationNumber parses one non-negative integer segment of a tag.
func parseRealizationNumber(tag, segment string) (int, error) {
	if segment == "" {
		return 0, &TagError{Tag: tag, Message: "empty number"}
	}
	n, err := strconv.Atoi(segment)
	if err != nil {
		return 0, &TagError{Tag: tag, Message: fmt.Sprintf("%q is not an integer", segment)}
	}
	if n < 0 {
		return 0, &TagError{Tag: tag, Message: "realization numbers are non-negative"}
	}
	return n, nil
}
