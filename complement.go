package subschema

import (
	"github.com/schemalattice/subschema/interval"
	"github.com/schemalattice/subschema/pattern"
	"github.com/schemalattice/subschema/semantic"
)

// complementAtoms computes NOT(inner) as a canonical schema. For a kind
// absent from inner's disjuncts entirely, the whole kind survives
// unconstrained (inner never restricted it); number atoms count as
// restricting the integer kind too, since every integer is a number, and
// are folded into its complement as integral atoms. For a kind inner does
// restrict, the atom's own constraints are negated one at a time and
// re-disjoined: NOT(C1 AND C2 AND ... Cn) = NOT(C1) OR NOT(C2) OR ... —
// each disjunct holds every other Ci at its unconstrained (Top) value,
// which is exact as long as every individual Ci can be negated. A
// constraint this package cannot negate in isolation (a "multipleOf", a
// true "uniqueItems", or a non-empty "required" list) makes the whole NOT
// unsupported rather than silently unsound.
func complementAtoms(inner *Atoms) (*Atoms, error) {
	byKind := map[Kind][]Atom{}
	for _, a := range inner.Disjuncts {
		byKind[a.Kind] = append(byKind[a.Kind], a)
	}

	var out []Atom
	for _, k := range allKinds {
		atoms := byKind[k]
		if k == KindInteger {
			for _, a := range byKind[KindNumber] {
				a.Kind = KindInteger
				a.Numeric.Integral = true
				atoms = append(atoms, a)
			}
		}
		if len(atoms) == 0 {
			out = append(out, topAtom(k))
			continue
		}
		// NOT(A1 OR A2 OR ...) = NOT(A1) AND NOT(A2) AND ...: complement
		// each atom of this kind independently, then meet (intersect) the
		// results across atoms, since only values rejected by every
		// original atom survive.
		acc := &Atoms{Disjuncts: []Atom{topAtom(k)}}
		nullCtx := &ctx{resolver: semantic.NullResolver{}}
		for _, a := range atoms {
			comp, err := complementAtom(a)
			if err != nil {
				return nil, err
			}
			acc, err = meetAtoms(nullCtx, acc, &Atoms{Disjuncts: comp})
			if err != nil {
				return nil, err
			}
		}
		out = append(out, acc.Disjuncts...)
	}
	return &Atoms{Disjuncts: out}, nil
}

// complementAtom negates a single atom's constraints within its own kind
// via De Morgan expansion over its independent sub-constraints.
func complementAtom(a Atom) ([]Atom, error) {
	if a.Enum != nil {
		return complementEnum(a)
	}

	switch a.Kind {
	case KindNull:
		return nil, nil
	case KindBoolean:
		return nil, nil
	case KindInteger, KindNumber:
		return complementNumeric(a)
	case KindString:
		return complementString(a)
	case KindArray:
		return complementArray(a)
	case KindObject:
		return complementObject(a)
	}
	return nil, nil
}

func complementEnum(a Atom) ([]Atom, error) {
	if a.Kind == KindBoolean {
		hasTrue, hasFalse := false, false
		for _, v := range a.Enum {
			if b, ok := v.(bool); ok {
				if b {
					hasTrue = true
				} else {
					hasFalse = true
				}
			}
		}
		var out []any
		if !hasTrue {
			out = append(out, true)
		}
		if !hasFalse {
			out = append(out, false)
		}
		if len(out) == 0 {
			return nil, nil
		}
		return []Atom{{Kind: KindBoolean, Enum: out}}, nil
	}
	return nil, &UnsupportedError{Keyword: "enum", Reason: "complement of an enum restriction over an infinite domain is not representable"}
}

func complementNumeric(a Atom) ([]Atom, error) {
	if a.Numeric.MultipleOf != nil {
		return nil, &UnsupportedError{Keyword: "multipleOf", Reason: "complement of a divisibility constraint is not representable as an interval"}
	}
	pieces := interval.Complement(a.Numeric.Interval)
	out := make([]Atom, 0, len(pieces))
	for _, iv := range pieces {
		out = append(out, Atom{Kind: a.Kind, Numeric: interval.Constraint{Interval: iv, Integral: a.Numeric.Integral}, Stype: a.Stype})
	}
	return out, nil
}

func complementString(a Atom) ([]Atom, error) {
	var out []Atom
	if a.String.MinLength > 0 {
		out = append(out, Atom{Kind: KindString, String: StringShape{MinLength: 0, MaxLength: a.String.MinLength - 1}, Stype: a.Stype})
	}
	if a.String.MaxLength != -1 {
		out = append(out, Atom{Kind: KindString, String: StringShape{MinLength: a.String.MaxLength + 1, MaxLength: -1}, Stype: a.Stype})
	}
	for _, p := range a.String.Patterns {
		out = append(out, Atom{Kind: KindString, String: StringShape{MinLength: 0, MaxLength: -1, Patterns: []*pattern.Pattern{pattern.Complement(p)}}, Stype: a.Stype})
	}
	return out, nil
}

func complementArray(a Atom) ([]Atom, error) {
	if a.Array.UniqueItems {
		return nil, &UnsupportedError{Keyword: "uniqueItems", Reason: "complement of a uniqueness constraint is not representable"}
	}

	var out []Atom
	if a.Array.MinItems > 0 {
		out = append(out, Atom{Kind: KindArray, Array: ArrayShape{MinItems: 0, MaxItems: a.Array.MinItems - 1}, Stype: a.Stype})
	}
	if a.Array.MaxItems != -1 {
		out = append(out, Atom{Kind: KindArray, Array: ArrayShape{MinItems: a.Array.MaxItems + 1, MaxItems: -1}, Stype: a.Stype})
	}
	for i, sub := range a.Array.PrefixItems {
		neg := &Schema{Not: sub}
		shape := ArrayShape{MinItems: i + 1, MaxItems: -1, PrefixItems: make([]*Schema, i+1)}
		for j := 0; j < i; j++ {
			shape.PrefixItems[j] = a.Array.PrefixItems[j]
		}
		shape.PrefixItems[i] = neg
		out = append(out, Atom{Kind: KindArray, Array: shape, Stype: a.Stype})
	}
	if a.Array.Items != nil {
		shape := ArrayShape{MinItems: len(a.Array.PrefixItems) + 1, MaxItems: -1, PrefixItems: a.Array.PrefixItems, Items: &Schema{Not: a.Array.Items}}
		out = append(out, Atom{Kind: KindArray, Array: shape, Stype: a.Stype})
	}
	return out, nil
}

// complementObject negates an object atom's constraints. A required
// property is not independently negatable in this model (it would need a
// "property must be absent" constraint this package does not represent),
// so a required property contributes an UnsupportedError; a non-required
// property's schema negates via the same synthetic Not-wrapping used for
// arrays.
func complementObject(a Atom) ([]Atom, error) {
	var out []Atom

	if a.Object.MinProperties > 0 {
		out = append(out, Atom{Kind: KindObject, Object: ObjectShape{Properties: map[string]PropertyShape{}, MinProperties: 0, MaxProperties: a.Object.MinProperties - 1}, Stype: a.Stype})
	}
	if a.Object.MaxProperties != -1 {
		out = append(out, Atom{Kind: KindObject, Object: ObjectShape{Properties: map[string]PropertyShape{}, MinProperties: a.Object.MaxProperties + 1, MaxProperties: -1}, Stype: a.Stype})
	}

	for name, prop := range a.Object.Properties {
		if prop.Required {
			return nil, &UnsupportedError{Keyword: "required", Reason: "complement of a required-property constraint is not representable"}
		}
		shape := ObjectShape{
			Properties:    map[string]PropertyShape{name: {Schema: &Schema{Not: prop.Schema}, Required: true}},
			MinProperties: 0, MaxProperties: -1,
		}
		out = append(out, Atom{Kind: KindObject, Object: shape, Stype: a.Stype})
	}

	if a.Object.AdditionalProperties != nil {
		shape := ObjectShape{
			Properties:           map[string]PropertyShape{},
			AdditionalProperties: &Schema{Not: a.Object.AdditionalProperties},
			MinProperties:        0, MaxProperties: -1,
		}
		out = append(out, Atom{Kind: KindObject, Object: shape, Stype: a.Stype})
	}

	return out, nil
}
