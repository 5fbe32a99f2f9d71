package interval

import "math/big"

// Constraint is a full Integer/Number atom's numeric shape: an interval,
// an optional multipleOf, and whether the constraint demands integrality.
type Constraint struct {
	Interval   Interval
	MultipleOf *big.Rat // nil means unconstrained
	Integral   bool
}

// Empty reports whether no rational satisfies the constraint: either the
// interval itself is empty, or integrality is required and the interval
// contains no integer multiple of MultipleOf.
func (c Constraint) Empty() bool {
	if c.Interval.Empty() {
		return true
	}
	if !c.Integral {
		return false
	}
	return !hasIntegerInInterval(c.Interval, c.MultipleOf)
}

// hasIntegerInInterval reports whether the interval contains an integer
// that is also a multiple of m (m == nil means "any integer").
func hasIntegerInInterval(iv Interval, m *big.Rat) bool {
	step := big.NewRat(1, 1)
	if m != nil {
		step = m
	}

	// An interval unbounded below holds arbitrarily negative integer
	// multiples of step, so it always contains one.
	if iv.Min.Infinite {
		return true
	}

	// Smallest candidate >= iv.Min.
	candidate := ceilMultiple(iv.Min.Value, step)
	if candidate.Cmp(iv.Min.Value) == 0 && iv.Min.Open {
		candidate = new(big.Rat).Add(candidate, step)
	}

	if !candidate.IsInt() {
		// step itself isn't an integer multiple scheme that lands on an
		// integer near here; search the next integer multiple of step that
		// is itself whole.
		candidate = nextIntegerMultiple(candidate, step)
	}

	if iv.Max.Infinite {
		return true
	}
	cmp := candidate.Cmp(iv.Max.Value)
	if cmp < 0 {
		return true
	}
	if cmp == 0 && !iv.Max.Open {
		return true
	}
	return false
}

// ceilMultiple returns the smallest multiple of step that is >= v.
func ceilMultiple(v, step *big.Rat) *big.Rat {
	q := new(big.Rat).Quo(v, step)
	qi := new(big.Int).Div(q.Num(), q.Denom())
	qr := new(big.Rat).SetInt(qi)
	if qr.Cmp(q) < 0 {
		qr.Add(qr, big.NewRat(1, 1))
	}
	return new(big.Rat).Mul(qr, step)
}

// nextIntegerMultiple walks forward in units of step from v until it finds
// a value that is a whole number, up to a bounded number of steps (step is
// rational; if step is itself irrational-in-denominator this may not
// terminate on an integer — callers treat a failure to find one within the
// bound as "none found", which is conservative for Empty()).
func nextIntegerMultiple(v, step *big.Rat) *big.Rat {
	cur := new(big.Rat).Set(v)
	for i := 0; i < denomBound(step); i++ {
		if cur.IsInt() {
			return cur
		}
		cur = new(big.Rat).Add(cur, step)
	}
	return cur
}

func denomBound(r *big.Rat) int {
	d := r.Denom().Int64()
	if d < 1 {
		d = 1
	}
	if d > 10000 {
		d = 10000
	}
	return int(d) + 1
}

// Subtype implements C1 <: C2 for numeric constraints: interval
// containment, multipleOf divisibility (m2 | m1), and the Integer <:
// Number refinement (C2's integrality, if set, must be implied by C1's).
func Subtype(c1, c2 Constraint) bool {
	if c1.Empty() {
		return true
	}
	if !c1.Interval.Subset(c2.Interval) {
		return false
	}
	if c2.Integral && !c1.Integral {
		return false
	}
	if c2.MultipleOf != nil {
		if c1.MultipleOf == nil {
			return false
		}
		if !divides(c2.MultipleOf, c1.MultipleOf) {
			return false
		}
	}
	return true
}

// divides reports whether a | b, i.e. b/a is an integer, for positive
// rationals a, b.
func divides(a, b *big.Rat) bool {
	q := new(big.Rat).Quo(b, a)
	return q.IsInt()
}

// Meet intersects two constraints: interval intersection, lcm of
// multipleOf, OR of integrality.
func Meet(c1, c2 Constraint) Constraint {
	return Constraint{
		Interval:   Intersect(c1.Interval, c2.Interval),
		MultipleOf: lcmRat(c1.MultipleOf, c2.MultipleOf),
		Integral:   c1.Integral || c2.Integral,
	}
}

// Join returns the smallest enclosing constraint — callers check
// Disjoint(c1.Interval, c2.Interval) first and keep both atoms as
// separate disjuncts when disjoint, rather than over-approximating with
// a single enclosing range.
func Join(c1, c2 Constraint) Constraint {
	return Constraint{
		Interval:   Union(c1.Interval, c2.Interval),
		MultipleOf: gcdRat(c1.MultipleOf, c2.MultipleOf),
		Integral:   c1.Integral && c2.Integral,
	}
}

func lcmRat(a, b *big.Rat) *big.Rat {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	// lcm(p1/q1, p2/q2) = lcm(p1*q2, p2*q1) / (q1*q2) reduced; for positive
	// rationals the simplest faithful definition is lcm of numerators over
	// gcd of denominators once both are scaled to a common denominator.
	an := new(big.Int).Mul(a.Num(), b.Denom())
	bn := new(big.Int).Mul(b.Num(), a.Denom())
	g := new(big.Int).GCD(nil, nil, an, bn)
	if g.Sign() == 0 {
		return big.NewRat(0, 1)
	}
	l := new(big.Int).Div(new(big.Int).Mul(an, bn), g)
	d := new(big.Int).Mul(a.Denom(), b.Denom())
	return new(big.Rat).SetFrac(l, d)
}

func gcdRat(a, b *big.Rat) *big.Rat {
	if a == nil || b == nil {
		return nil
	}
	an := new(big.Int).Mul(a.Num(), b.Denom())
	bn := new(big.Int).Mul(b.Num(), a.Denom())
	g := new(big.Int).GCD(nil, nil, an, bn)
	d := new(big.Int).Mul(a.Denom(), b.Denom())
	return new(big.Rat).SetFrac(g, d)
}
