// Package pattern decides containment, intersection-emptiness, union and
// equality between two regular-expression patterns drawn from the
// restricted dialect that regexp/syntax can parse — no backreferences, no
// lookaround, and (ideally) no word/line anchors, since whole-string
// matching is assumed throughout the pattern keyword.
//
// Every comparison works by building a Thompson NFA per pattern, picking an
// alphabet fine enough to distinguish both patterns' rune-range edges, and
// determinizing both against that shared alphabet so a product automaton
// can decide emptiness without ever enumerating strings.
package pattern

import "regexp/syntax"

// Pattern is a compiled, comparable regular expression.
type Pattern struct {
	source   string
	nfa      *nfa
	alphabet Alphabet
	dfa      *dfa
}

// Source returns the original pattern text.
func (p *Pattern) Source() string { return p.source }

// Compile parses and builds a Pattern from a regular expression string,
// using Go's own regex dialect (RE2) as the supported surface. Constructs
// RE2 simply cannot parse (backreferences, lookaround) surface as a parse
// error; constructs it parses but this package cannot reason about
// (word/line anchors) surface as *UnsupportedPatternError.
func Compile(expr string) (*Pattern, error) {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, err
	}
	re = re.Simplify()

	n, err := build(re)
	if err != nil {
		return nil, err
	}
	alphabet := buildAlphabet(n.collectRanges())
	d := n.toDFA(alphabet)
	return &Pattern{source: expr, nfa: n, alphabet: alphabet, dfa: d}, nil
}

// pairDFAs determinizes both patterns against their merged alphabet.
func pairDFAs(p, q *Pattern) (*dfa, *dfa) {
	shared := mergeAlphabets(p.alphabet, q.alphabet)
	return p.dfa.remapOnto(shared), q.dfa.remapOnto(shared)
}

// Empty reports whether p matches no string at all.
func (p *Pattern) Empty() bool {
	return !p.dfa.reachableAccepting()
}

// Contains reports whether every string matched by p is also matched by q
// (p <: q): equivalently, whether p's language minus q's is empty.
func Contains(p, q *Pattern) bool {
	dp, dq := pairDFAs(p, q)
	return complementDifferenceEmpty(dp, dq)
}

// IntersectionEmpty reports whether p and q match no string in common.
func IntersectionEmpty(p, q *Pattern) bool {
	dp, dq := pairDFAs(p, q)
	return productEmpty(dp, dq)
}

// UnionEmpty reports whether neither p nor q matches anything.
func UnionEmpty(p, q *Pattern) bool {
	dp, dq := pairDFAs(p, q)
	return productUnionEmpty(dp, dq)
}

// Equal reports whether p and q match exactly the same set of strings.
func Equal(p, q *Pattern) bool {
	return Contains(p, q) && Contains(q, p)
}

// Complement returns a synthetic Pattern matching every string p does not
// match. It has no regex source and cannot be re-displayed as text; it
// exists only to participate in further Contains/IntersectionEmpty/
// UnionEmpty/Equal comparisons.
func Complement(p *Pattern) *Pattern {
	accept := make([]bool, len(p.dfa.accept))
	for i, a := range p.dfa.accept {
		accept[i] = !a
	}
	d := &dfa{alphabet: p.dfa.alphabet, trans: p.dfa.trans, accept: accept, start: p.dfa.start, dead: p.dfa.dead}
	return &Pattern{source: "", alphabet: p.alphabet, dfa: d}
}
