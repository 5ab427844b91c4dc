package hymnal

import "fmt"

// block is a run of consecutive valid hymn numbers.
type block struct {
	first int
	last  int
}

func (b block) size() int { return b.last - b.first + 1 }

var numberBlocks = map[Type][]block{
	ER: deriveBlocks(erLimits),
	BB: deriveBlocks(bbLimits),
}

// deriveBlocks is the complement of deriveRanges: block i holds the numbers
// from the start of the hundred up to limit-1.
func deriveBlocks(limits []int) []block {
	blocks := make([]block, 0, len(limits))
	for i, limit := range limits {
		first := 100*i + 1
		if i == 0 {
			first = 1
		}
		blocks = append(blocks, block{first: first, last: limit - 1})
	}
	return blocks
}

// IndexMax returns the number of browsable hymns in t.
func IndexMax(t Type) int {
	switch t {
	case ER:
		return ERIndexMax
	case XB:
		return XBIndexMax
	case BB:
		return BBIndexMax
	case DB:
		return DBIndexMax
	default:
		return 0
	}
}

// NumberAt maps a 0-based page index to the hymn shown on that page.
func NumberAt(t Type, index int) (Ref, error) {
	if !t.Valid() {
		return Ref{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	if index < 0 || index >= IndexMax(t) {
		return Ref{}, fmt.Errorf("index %d out of range for %s (0..%d)", index, t, IndexMax(t)-1)
	}

	switch t {
	case ER, BB:
		rem := index
		for _, b := range numberBlocks[t] {
			if rem < b.size() {
				return Ref{Type: t, No: b.first + rem}, nil
			}
			rem -= b.size()
		}
		return Ref{}, fmt.Errorf("index %d beyond %s numbering", index, t)
	default:
		return FromAbsolute(t, index+1), nil
	}
}

// IndexOf is the inverse of NumberAt. The ref must be valid.
func IndexOf(r Ref) (int, error) {
	no, err := ValidateRef(r)
	if err != nil {
		return -1, err
	}

	switch r.Type {
	case ER, BB:
		index := 0
		for _, b := range numberBlocks[r.Type] {
			if no <= b.last {
				return index + no - b.first, nil
			}
			index += b.size()
		}
		return -1, &RangeError{Type: r.Type, No: no, Max: r.Type.Max()}
	default:
		return no - 1, nil
	}
}
