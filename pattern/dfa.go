package pattern

import (
	"sort"
	"strconv"
)

// dfa is a complete (total) deterministic automaton over an Alphabet: every
// state has exactly one transition per symbol, including a dead state for
// non-matching symbols.
type dfa struct {
	alphabet Alphabet
	trans    [][]int // trans[state][symbol] -> state
	accept   []bool
	start    int
	dead     int
}

// stateKey canonicalizes a set of NFA state ids for use as a map key during
// subset construction.
func stateKey(states map[int]bool) string {
	ids := make([]int, 0, len(states))
	for s := range states {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	b := make([]byte, 0, len(ids)*5)
	for i, id := range ids {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(id), 10)
	}
	return string(b)
}

// toDFA determinizes n against alphabet via subset construction. alphabet
// must already be fine enough to distinguish every rune-range edge in n
// (buildAlphabet(n.collectRanges()) or a merge with another automaton's).
func (n *nfa) toDFA(alphabet Alphabet) *dfa {
	symTransitions := make([][]rangeEdge, len(n.states))
	for i, st := range n.states {
		symTransitions[i] = st.ranges
	}

	startSet := n.epsilonClosure(map[int]bool{n.start: true})
	startKey := stateKey(startSet)

	order := []map[int]bool{startSet}
	index := map[string]int{startKey: 0}

	var trans [][]int
	var accept []bool

	deadIdx := -1

	for i := 0; i < len(order); i++ {
		set := order[i]
		row := make([]int, alphabet.symbolCount())
		isAccept := set[n.accept]
		for sym := 0; sym < alphabet.symbolCount(); sym++ {
			lo, _ := alphabet.symbolRange(sym)
			next := map[int]bool{}
			for s := range set {
				for _, e := range symTransitions[s] {
					if lo >= e.lo && lo <= e.hi {
						next[e.to] = true
					}
				}
			}
			if len(next) == 0 {
				if deadIdx == -1 {
					deadIdx = len(order)
					order = append(order, map[int]bool{})
				}
				row[sym] = deadIdx
				continue
			}
			closure := n.epsilonClosure(next)
			key := stateKey(closure)
			idx, ok := index[key]
			if !ok {
				idx = len(order)
				index[key] = idx
				order = append(order, closure)
			}
			row[sym] = idx
		}
		trans = append(trans, row)
		accept = append(accept, isAccept)
	}

	if deadIdx != -1 {
		for len(trans) <= deadIdx {
			row := make([]int, alphabet.symbolCount())
			for i := range row {
				row[i] = deadIdx
			}
			trans = append(trans, row)
			accept = append(accept, false)
		}
	} else {
		deadIdx = addDeadState(&trans, &accept, alphabet.symbolCount())
	}

	return &dfa{alphabet: alphabet, trans: trans, accept: accept, start: 0, dead: deadIdx}
}

func addDeadState(trans *[][]int, accept *[]bool, symbols int) int {
	idx := len(*trans)
	row := make([]int, symbols)
	for i := range row {
		row[i] = idx
	}
	*trans = append(*trans, row)
	*accept = append(*accept, false)
	return idx
}

// remapOnto rebuilds d's transition table over a finer alphabet "onto",
// preserving semantics (used to bring two independently-built DFAs onto
// one shared alphabet before a product construction).
func (d *dfa) remapOnto(onto Alphabet) *dfa {
	trans := make([][]int, len(d.trans))
	for i := range d.trans {
		row := make([]int, onto.symbolCount())
		for sym := 0; sym < onto.symbolCount(); sym++ {
			orig := remapSymbol(onto, sym, d.alphabet)
			row[sym] = d.trans[i][orig]
		}
		trans[i] = row
	}
	accept := make([]bool, len(d.accept))
	copy(accept, d.accept)
	return &dfa{alphabet: onto, trans: trans, accept: accept, start: d.start, dead: d.dead}
}

// reachableAccepting reports whether any accepting state is reachable from
// d's start state — i.e. whether d's language is non-empty.
func (d *dfa) reachableAccepting() bool {
	visited := map[int]bool{d.start: true}
	stack := []int{d.start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if d.accept[s] {
			return true
		}
		for _, next := range d.trans[s] {
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}
