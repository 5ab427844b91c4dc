package hymnal

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned for a Type outside the known hymnals.
	ErrUnsupportedType = errors.New("unsupported hymnal type")
	// ErrNoSupplement is returned when a supplement number is requested
	// for a hymnal without supplement numbering.
	ErrNoSupplement = errors.New("hymnal has no supplement hymns")
)

// RangeError reports a number outside [1, Max].
type RangeError struct {
	Type Type
	No   int
	Max  int
}

func (e *RangeError) Error() string {
	if e.Type == DB {
		return fmt.Sprintf("%s: hymn number must be between 1 and %d (supplement 1 to %d)",
			e.Type.Title(), e.Max, DBSNoMax)
	}
	return fmt.Sprintf("%s: hymn number must be between 1 and %d", e.Type.Title(), e.Max)
}

// GapError reports a number that falls inside one of the numbering gaps
// left by multi-page scores.
type GapError struct {
	Type  Type
	No    int
	Range Range
}

func (e *GapError) Error() string {
	return fmt.Sprintf("%s: hymn numbers %d to %d do not exist",
		e.Type.Title(), e.Range.Lower, e.Range.Upper)
}

// Validate checks no against the numbering rules of t and returns the
// absolute hymn number to use.
//
// DB supplement numbers (fu with no <= DBSNoMax) are shifted past DBNoMax
// before the bounds check.
func Validate(t Type, no int, fu bool) (int, error) {
	switch t {
	case ER, XB, BB:
		if fu {
			return -1, ErrNoSupplement
		}
		if no > t.Max() {
			return -1, &RangeError{Type: t, No: no, Max: t.Max()}
		}
		if no < 1 {
			return -1, &RangeError{Type: t, No: no, Max: t.Max()}
		}
		if r, ok := gapFor(t, no); ok {
			return -1, &GapError{Type: t, No: no, Range: r}
		}
		return no, nil

	case DB:
		if fu && no <= DBSNoMax {
			no += DBNoMax
		}
		if no > DBNoTMax {
			return -1, &RangeError{Type: t, No: no, Max: DBNoMax}
		}
		if no < 1 {
			return -1, &RangeError{Type: t, No: no, Max: DBNoMax}
		}
		return no, nil

	default:
		return -1, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// ValidateRef is Validate for a Ref.
func ValidateRef(r Ref) (int, error) {
	return Validate(r.Type, r.No, r.Fu)
}

func gapFor(t Type, no int) (Range, bool) {
	for _, r := range invalidRanges[t] {
		if r.Contains(no) {
			return r, true
		}
	}
	return Range{}, false
}
