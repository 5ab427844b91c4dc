package hymnal

// Range is a closed interval of hymn numbers.
type Range struct {
	Lower int
	Upper int
}

// Contains reports whether no lies within [Lower, Upper].
func (r Range) Contains(no int) bool {
	return no >= r.Lower && no <= r.Upper
}

// First number past the last hymn of each hundred-block. Multi-page scores
// consume the remaining slots of their block, so everything from the limit
// up to the end of the block is not a hymn.
// These must be updated whenever new content is added.
var (
	bbLimits = []int{38, 151, 259, 350, 471, 544, 630, 763, 881, 931, 1006}
	erLimits = []int{18, 125, 213, 324, 446, 525, 622, 720, 837, 921, 1040, 1119, 1233}
)

var invalidRanges = map[Type][]Range{
	ER: deriveRanges(erLimits),
	BB: deriveRanges(bbLimits),
}

// deriveRanges turns block limits into the invalid ranges [limit, 100*(i+1)].
// The last limit only closes the final block and produces no range.
func deriveRanges(limits []int) []Range {
	ranges := make([]Range, 0, len(limits)-1)
	for i := 0; i < len(limits)-1; i++ {
		ranges = append(ranges, Range{Lower: limits[i], Upper: 100 * (i + 1)})
	}
	return ranges
}

// Ranges returns the invalid number ranges of t. Only ER and BB have any.
func Ranges(t Type) []Range {
	src := invalidRanges[t]
	out := make([]Range, len(src))
	copy(out, src)
	return out
}
