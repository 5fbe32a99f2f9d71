package subschema

import (
	"github.com/schemalattice/subschema/interval"
	"github.com/schemalattice/subschema/semantic"
)

// numberSubtype decides C1 <: C2 for two atoms of the same numeric kind.
func numberSubtype(a, b Atom) bool {
	return interval.Subtype(a.Numeric, b.Numeric)
}

// numberMeet intersects two same-kind numeric constraints.
func numberMeet(a, b Atom) interval.Constraint {
	return interval.Meet(a.Numeric, b.Numeric)
}

// tryMergeNumber merges two numeric atoms of the same kind into one when
// their intervals overlap or touch and neither carries an enum or a
// multipleOf that would make a merged interval lossy.
func tryMergeNumber(a, b Atom) (Atom, bool) {
	if a.Enum != nil || b.Enum != nil {
		return Atom{}, false
	}
	if a.Numeric.MultipleOf != nil || b.Numeric.MultipleOf != nil {
		return Atom{}, false
	}
	if interval.Disjoint(a.Numeric.Interval, b.Numeric.Interval) {
		return Atom{}, false
	}
	merged := a
	merged.Numeric = interval.Constraint{
		Interval: interval.Union(a.Numeric.Interval, b.Numeric.Interval),
		Integral: a.Numeric.Integral && b.Numeric.Integral,
	}
	return merged, true
}

// subtypeIntegerAsNumber decides Integer <: Number: the integer atom's
// numeric shape must satisfy the number atom's constraints, ignoring the
// number atom's (always-false) integrality requirement.
func subtypeIntegerAsNumber(c *ctx, a, b Atom) (semantic.Tri, error) {
	enumTri := subtypeEnum(a.Enum, b.Enum)
	if enumTri == semantic.No {
		return semantic.No, nil
	}
	stypeTri := subtypeStype(c, a.Stype, b.Stype)
	if stypeTri == semantic.No {
		return semantic.No, nil
	}
	shapeOK := interval.Subtype(a.Numeric, interval.Constraint{
		Interval:   b.Numeric.Interval,
		MultipleOf: b.Numeric.MultipleOf,
		Integral:   false,
	})
	return semantic.AndAll(enumTri, stypeTri, semantic.FromBool(shapeOK)), nil
}

// meetIntegerNumber meets an Integer atom with a Number atom: the result
// is an Integer-kind atom satisfying both constraint sets.
func meetIntegerNumber(c *ctx, integerAtom, numberAtom Atom) (*Atom, error) {
	enum := meetEnum(integerAtom.Enum, numberAtom.Enum)
	if enum.collapsed {
		return nil, nil
	}
	stype, ok := meetStype(c, integerAtom.Stype, numberAtom.Stype)
	if !ok {
		return nil, nil
	}
	numeric := interval.Meet(integerAtom.Numeric, numberAtom.Numeric)
	numeric.Integral = true
	if numeric.Empty() {
		return nil, nil
	}
	return &Atom{Kind: KindInteger, Enum: enum.value, Stype: stype, Numeric: numeric}, nil
}
