package pattern

import "sort"

// maxRune bounds the alphabet above the highest valid Unicode scalar value.
const maxRune = 0x10FFFF + 1

// Alphabet is a finite partition of the Unicode scalar range into disjoint
// intervals ("symbolic alphabet") fine enough to distinguish
// every character class boundary that appears across the patterns being
// compared. Symbol i covers runes [bounds[i], bounds[i+1]-1].
type Alphabet struct {
	bounds []rune // strictly increasing, bounds[0] == 0, last == maxRune
}

// symbolCount returns the number of symbols in the alphabet.
func (a Alphabet) symbolCount() int { return len(a.bounds) - 1 }

// symbolRange returns the rune range covered by symbol i.
func (a Alphabet) symbolRange(i int) (lo, hi rune) {
	return a.bounds[i], a.bounds[i+1] - 1
}

// symbolFor returns the index of the symbol containing r.
func (a Alphabet) symbolFor(r rune) int {
	// bounds[i] <= r < bounds[i+1]
	i := sort.Search(len(a.bounds), func(i int) bool { return a.bounds[i] > r }) - 1
	if i < 0 {
		i = 0
	}
	if i >= a.symbolCount() {
		i = a.symbolCount() - 1
	}
	return i
}

// buildAlphabet constructs the coarsest common refinement covering every
// boundary implied by the given rune-range edges (lo, hi+1 for each range).
func buildAlphabet(edges [][2]rune) Alphabet {
	set := map[rune]struct{}{0: {}, maxRune: {}}
	for _, e := range edges {
		set[e[0]] = struct{}{}
		if e[1]+1 <= maxRune {
			set[e[1]+1] = struct{}{}
		}
	}
	bounds := make([]rune, 0, len(set))
	for b := range set {
		bounds = append(bounds, b)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	return Alphabet{bounds: bounds}
}

// mergeAlphabets returns the common refinement of two alphabets.
func mergeAlphabets(a, b Alphabet) Alphabet {
	set := map[rune]struct{}{}
	for _, x := range a.bounds {
		set[x] = struct{}{}
	}
	for _, x := range b.bounds {
		set[x] = struct{}{}
	}
	bounds := make([]rune, 0, len(set))
	for x := range set {
		bounds = append(bounds, x)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	return Alphabet{bounds: bounds}
}

// remapSymbol returns the index, in the coarser alphabet "from", of the
// symbol that contains the entirety of symbol i of the finer alphabet "to".
// Valid only when "to" is a refinement of "from" (every boundary of "from"
// also appears in "to"), which buildAlphabet/mergeAlphabets guarantee.
func remapSymbol(to Alphabet, i int, from Alphabet) int {
	lo, _ := to.symbolRange(i)
	return from.symbolFor(lo)
}
