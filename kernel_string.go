package subschema

import (
	"github.com/schemalattice/subschema/pattern"
	"github.com/schemalattice/subschema/semantic"
)

// stringSubtype decides S1 <: S2 for two string shapes: S1's length range
// must sit inside S2's, and every pattern S2 requires must be implied by
// S1's pattern set (S1 satisfies at least as many patterns, so S2's
// required patterns must each contain the intersection of S1's).
func stringSubtype(a, b StringShape) (semantic.Tri, error) {
	if b.MinLength > a.MinLength {
		return semantic.No, nil
	}
	if b.MaxLength != -1 && (a.MaxLength == -1 || a.MaxLength > b.MaxLength) {
		return semantic.No, nil
	}

	aCombined, err := intersectAll(a.Patterns)
	if err != nil {
		return semantic.Unknown, err
	}

	for _, bp := range b.Patterns {
		if aCombined == nil {
			// a has no pattern restriction at all; b requires one S1 can't
			// be guaranteed to satisfy.
			return semantic.No, nil
		}
		if !pattern.Contains(aCombined, bp) {
			return semantic.No, nil
		}
	}
	return semantic.Yes, nil
}

// intersectAll combines a conjunctive pattern list into one pattern
// representing their intersection, for containment checks. Returns nil
// (meaning "unconstrained") for an empty list.
func intersectAll(patterns []*pattern.Pattern) (*pattern.Pattern, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	// The pattern package does not expose a materialized intersection
	// automaton as a *Pattern (only emptiness/containment predicates), so
	// several simultaneous patterns cannot be combined into one. A single
	// pattern is returned as is; more than one is reported as
	// *UnsupportedError.
	if len(patterns) == 1 {
		return patterns[0], nil
	}
	return nil, &UnsupportedError{Keyword: "pattern", Reason: "subtype check across multiple simultaneous pattern constraints on one side is not supported"}
}

// stringMeet intersects two string shapes: tighter length bounds, and the
// union of both pattern lists (meet of an AND-list is just concatenation).
func stringMeet(a, b StringShape) (StringShape, bool) {
	result := StringShape{
		MinLength: maxInt(a.MinLength, b.MinLength),
		MaxLength: minBound(a.MaxLength, b.MaxLength),
	}
	if result.MaxLength != -1 && result.MinLength > result.MaxLength {
		return StringShape{}, false
	}
	result.Patterns = append(append([]*pattern.Pattern{}, a.Patterns...), b.Patterns...)
	for _, p := range result.Patterns {
		if p.Empty() {
			return StringShape{}, false
		}
	}
	return result, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minBound treats -1 as "unbounded" and returns the tighter (smaller)
// finite bound, or -1 if both are unbounded.
func minBound(a, b int) int {
	if a == -1 {
		return b
	}
	if b == -1 {
		return a
	}
	if a < b {
		return a
	}
	return b
}
