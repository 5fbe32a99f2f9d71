// Package interval reasons about numeric constraints: closed/open-ended
// intervals combined with a multipleOf divisibility constraint and an
// integrality bit. It has no JSON or Schema concerns — the canonicalizer
// is responsible for turning a raw "minimum"/"maximum"/"multipleOf"
// keyword set into a Constraint.
package interval

import "math/big"

// Bound is one side of an interval: either a finite rational value (with
// an open/closed flag) or an unbounded ±∞ side.
type Bound struct {
	Infinite bool
	Open     bool
	Value    *big.Rat
}

// Unbounded constructs an infinite bound.
func Unbounded() Bound { return Bound{Infinite: true} }

// Closed constructs a finite, inclusive bound.
func Closed(v *big.Rat) Bound { return Bound{Value: v} }

// OpenBound constructs a finite, exclusive bound.
func OpenBound(v *big.Rat) Bound { return Bound{Value: v, Open: true} }

// Interval is a (possibly unbounded, possibly open-ended) range over the
// rationals.
type Interval struct {
	Min Bound
	Max Bound
}

// Full is the interval containing every rational.
func Full() Interval { return Interval{Min: Unbounded(), Max: Unbounded()} }

// Empty reports whether the interval admits no value.
func (iv Interval) Empty() bool {
	if iv.Min.Infinite || iv.Max.Infinite {
		return false
	}
	cmp := iv.Min.Value.Cmp(iv.Max.Value)
	if cmp > 0 {
		return true
	}
	if cmp == 0 && (iv.Min.Open || iv.Max.Open) {
		return true
	}
	return false
}

// Subset reports whether every value admitted by iv is admitted by other:
// iv.Min must be at least as tight as other.Min, and iv.Max at least as
// tight as other.Max.
func (iv Interval) Subset(other Interval) bool {
	return boundGE(iv.Min, other.Min, true) && boundLE(iv.Max, other.Max, false)
}

// boundGE reports whether bound a's lower edge is at or inside bound b's
// lower edge (a admits no value that violates b). isMin selects lower-edge
// comparison semantics.
func boundGE(a, b Bound, isMin bool) bool {
	_ = isMin
	if b.Infinite {
		return true
	}
	if a.Infinite {
		return false
	}
	c := a.Value.Cmp(b.Value)
	if c > 0 {
		return true
	}
	if c < 0 {
		return false
	}
	// Equal values: a's edge is at least as tight as b's if a is open or b
	// is closed (open excludes more).
	return a.Open || !b.Open
}

// boundLE is the upper-edge mirror of boundGE.
func boundLE(a, b Bound, isMin bool) bool {
	_ = isMin
	if b.Infinite {
		return true
	}
	if a.Infinite {
		return false
	}
	c := a.Value.Cmp(b.Value)
	if c < 0 {
		return true
	}
	if c > 0 {
		return false
	}
	return a.Open || !b.Open
}

// Intersect returns the greatest interval contained in both operands.
func Intersect(a, b Interval) Interval {
	return Interval{
		Min: tighterMin(a.Min, b.Min),
		Max: tighterMax(a.Max, b.Max),
	}
}

// Union returns the smallest interval containing both operands (an
// over-approximation when the operands are disjoint — callers that need
// exact join-as-disjunction behavior check Empty(Intersect(...)) first and
// keep both atoms instead).
func Union(a, b Interval) Interval {
	return Interval{
		Min: looserMin(a.Min, b.Min),
		Max: looserMax(a.Max, b.Max),
	}
}

// Disjoint reports whether a and b admit no common value and are not even
// adjacent-closed (i.e. their intersection is empty).
func Disjoint(a, b Interval) bool {
	return Intersect(a, b).Empty()
}

// Complement returns the (zero, one, or two) intervals covering every
// rational not in iv.
func Complement(iv Interval) []Interval {
	if iv.Empty() {
		return []Interval{Full()}
	}
	var out []Interval
	if !iv.Min.Infinite {
		left := Interval{Min: Unbounded(), Max: Bound{Value: iv.Min.Value, Open: !iv.Min.Open}}
		if !left.Empty() {
			out = append(out, left)
		}
	}
	if !iv.Max.Infinite {
		right := Interval{Min: Bound{Value: iv.Max.Value, Open: !iv.Max.Open}, Max: Unbounded()}
		if !right.Empty() {
			out = append(out, right)
		}
	}
	return out
}

func tighterMin(a, b Bound) Bound {
	if a.Infinite {
		return b
	}
	if b.Infinite {
		return a
	}
	c := a.Value.Cmp(b.Value)
	switch {
	case c > 0:
		return a
	case c < 0:
		return b
	default:
		if a.Open || b.Open {
			return Bound{Value: a.Value, Open: true}
		}
		return a
	}
}

func tighterMax(a, b Bound) Bound {
	if a.Infinite {
		return b
	}
	if b.Infinite {
		return a
	}
	c := a.Value.Cmp(b.Value)
	switch {
	case c < 0:
		return a
	case c > 0:
		return b
	default:
		if a.Open || b.Open {
			return Bound{Value: a.Value, Open: true}
		}
		return a
	}
}

func looserMin(a, b Bound) Bound {
	if a.Infinite || b.Infinite {
		return Unbounded()
	}
	c := a.Value.Cmp(b.Value)
	switch {
	case c < 0:
		return a
	case c > 0:
		return b
	default:
		if !a.Open || !b.Open {
			return Bound{Value: a.Value}
		}
		return a
	}
}

func looserMax(a, b Bound) Bound {
	if a.Infinite || b.Infinite {
		return Unbounded()
	}
	c := a.Value.Cmp(b.Value)
	switch {
	case c > 0:
		return a
	case c < 0:
		return b
	default:
		if !a.Open || !b.Open {
			return Bound{Value: a.Value}
		}
		return a
	}
}
