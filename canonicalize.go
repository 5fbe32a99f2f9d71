package subschema

import (
	"errors"
	"math"
	"math/big"

	"github.com/schemalattice/subschema/interval"
	"github.com/schemalattice/subschema/pattern"
	"github.com/schemalattice/subschema/semantic"
)

// canonicalize turns a raw Schema into its canonical disjunctive form: an
// Atoms value whose Disjuncts are mutually independent "one base type,
// plus that type's constraints" atoms. allOf narrows via conjunction
// (cross-product meet), anyOf/oneOf widen via disjunction (concatenation),
// not computes a structural complement, and $ref is resolved against the
// document's own $defs table. resolver is threaded through so an allOf
// combining two related-but-distinct "stype" tags narrows correctly
// instead of being treated as unrelated.
func canonicalize(rt *refTable, resolver semantic.Resolver, s *Schema) (*Atoms, error) {
	return canonicalizeVisited(rt, resolver, s, map[*Schema]bool{})
}

func canonicalizeVisited(rt *refTable, resolver semantic.Resolver, s *Schema, refVisited map[*Schema]bool) (*Atoms, error) {
	if s == nil {
		return Top(), nil
	}
	if s.Precomputed != nil {
		return s.Precomputed, nil
	}
	if s.Boolean != nil {
		if *s.Boolean {
			return Top(), nil
		}
		return Bottom(), nil
	}

	if s.Ref != "" {
		if refVisited[s] {
			return nil, &InvalidSchemaError{Location: s.Ref, Err: ErrUnresolvedReference}
		}
		target, err := rt.lookup(s.Ref)
		if err != nil {
			return nil, err
		}
		next := map[*Schema]bool{s: true}
		for k := range refVisited {
			next[k] = true
		}
		return canonicalizeVisited(rt, resolver, target, next)
	}

	base, err := canonicalizeLeaf(rt, s)
	if err != nil {
		return nil, err
	}

	innerCtx := &ctx{resolver: resolver, rt1: rt, rt2: rt}

	for _, sub := range s.AllOf {
		subAtoms, err := canonicalizeVisited(rt, resolver, sub, refVisited)
		if err != nil {
			return nil, err
		}
		base, err = meetAtoms(innerCtx, base, subAtoms)
		if err != nil {
			return nil, err
		}
	}

	if len(s.AnyOf) > 0 {
		var unioned *Atoms
		for _, sub := range s.AnyOf {
			subAtoms, err := canonicalizeVisited(rt, resolver, sub, refVisited)
			if err != nil {
				return nil, err
			}
			if unioned == nil {
				unioned = subAtoms
			} else {
				unioned = joinAtoms(innerCtx, unioned, subAtoms)
			}
		}
		base, err = meetAtoms(innerCtx, base, unioned)
		if err != nil {
			return nil, err
		}
	}

	if len(s.OneOf) > 0 {
		// Conservative anyOf semantics: oneOf is treated as anyOf for the
		// purposes of subtype/meet/join. Exclusivity between branches is
		// not independently verified; see the facade's oneOf overlap
		// diagnostic for a best-effort check.
		var unioned *Atoms
		for _, sub := range s.OneOf {
			subAtoms, err := canonicalizeVisited(rt, resolver, sub, refVisited)
			if err != nil {
				return nil, err
			}
			if unioned == nil {
				unioned = subAtoms
			} else {
				unioned = joinAtoms(innerCtx, unioned, subAtoms)
			}
		}
		base, err = meetAtoms(innerCtx, base, unioned)
		if err != nil {
			return nil, err
		}
	}

	if s.Not != nil {
		notAtoms, err := canonicalizeVisited(rt, resolver, s.Not, refVisited)
		if err != nil {
			return nil, err
		}
		complement, err := complementAtoms(notAtoms)
		if err != nil {
			return nil, err
		}
		base, err = meetAtoms(innerCtx, base, complement)
		if err != nil {
			return nil, err
		}
	}

	return base, nil
}

func canonicalizeLeaf(rt *refTable, s *Schema) (*Atoms, error) {
	kinds := kindsFor(s.Type)

	var disjuncts []Atom
	for _, k := range kinds {
		atom, ok, err := buildAtom(rt, s, k)
		if err != nil {
			return nil, err
		}
		if ok {
			disjuncts = append(disjuncts, atom)
		}
	}

	result := &Atoms{Disjuncts: disjuncts}

	if s.Enum != nil {
		result = restrictToEnum(result, s.Enum)
	}
	if s.Const != nil && s.Const.IsSet {
		result = restrictToEnum(result, []any{s.Const.Value})
	}

	return result, nil
}

func kindsFor(t SchemaType) []Kind {
	if len(t) == 0 {
		return allKinds
	}
	var out []Kind
	for _, name := range t {
		switch name {
		case "null":
			out = append(out, KindNull)
		case "boolean":
			out = append(out, KindBoolean)
		case "integer":
			out = append(out, KindInteger)
		case "number":
			out = append(out, KindNumber)
		case "string":
			out = append(out, KindString)
		case "array":
			out = append(out, KindArray)
		case "object":
			out = append(out, KindObject)
		}
	}
	return out
}

// buildAtom constructs the atom for kind k out of s's keywords relevant
// to that kind. ok is false if s's keywords make this kind unsatisfiable
// (e.g. minLength > maxLength).
func buildAtom(rt *refTable, s *Schema, k Kind) (Atom, bool, error) {
	atom := topAtom(k)
	atom.Stype = s.Stype

	switch k {
	case KindInteger, KindNumber:
		atom.Numeric = numericConstraintFrom(s, k == KindInteger)
		if atom.Numeric.Empty() {
			return Atom{}, false, nil
		}
	case KindString:
		shape, ok, err := stringShapeFrom(s)
		if err != nil {
			return Atom{}, false, err
		}
		if !ok {
			return Atom{}, false, nil
		}
		atom.String = shape
	case KindArray:
		atom.Array = arrayShapeFrom(s)
	case KindObject:
		shape, err := objectShapeFrom(rt, s)
		if err != nil {
			return Atom{}, false, err
		}
		atom.Object = shape
	}
	return atom, true, nil
}

func numericConstraintFrom(s *Schema, integral bool) interval.Constraint {
	min := interval.Unbounded()
	max := interval.Unbounded()
	if s.Minimum != nil {
		min = interval.Closed(s.Minimum.Rat)
	}
	if s.ExclusiveMinimum != nil {
		min = interval.OpenBound(s.ExclusiveMinimum.Rat)
	}
	if s.Maximum != nil {
		max = interval.Closed(s.Maximum.Rat)
	}
	if s.ExclusiveMaximum != nil {
		max = interval.OpenBound(s.ExclusiveMaximum.Rat)
	}
	var multipleOf *big.Rat
	if s.MultipleOf != nil {
		multipleOf = s.MultipleOf.Rat
	}
	return interval.Constraint{
		Interval:   interval.Interval{Min: min, Max: max},
		MultipleOf: multipleOf,
		Integral:   integral,
	}
}

func stringShapeFrom(s *Schema) (StringShape, bool, error) {
	shape := StringShape{MinLength: 0, MaxLength: -1}
	if s.MinLength != nil {
		shape.MinLength = int(*s.MinLength)
	}
	if s.MaxLength != nil {
		shape.MaxLength = int(*s.MaxLength)
	}
	if shape.MaxLength != -1 && shape.MinLength > shape.MaxLength {
		return StringShape{}, false, nil
	}
	if s.Pattern != nil {
		p, err := pattern.Compile(*s.Pattern)
		if err != nil {
			return StringShape{}, false, patternError("pattern", err)
		}
		shape.Patterns = []*pattern.Pattern{p}
	}
	return shape, true, nil
}

// patternError classifies a pattern.Compile failure: a construct outside
// the supported regex dialect is an *UnsupportedError, any other failure
// (a regex that does not parse) makes the schema invalid.
func patternError(location string, err error) error {
	var unsupported *pattern.UnsupportedPatternError
	if errors.As(err, &unsupported) {
		return &UnsupportedError{Location: location, Keyword: "pattern", Reason: unsupported.Reason}
	}
	return &InvalidSchemaError{Location: location, Err: err}
}

func arrayShapeFrom(s *Schema) ArrayShape {
	shape := ArrayShape{MinItems: 0, MaxItems: -1}
	if s.MinItems != nil {
		shape.MinItems = int(*s.MinItems)
	}
	if s.MaxItems != nil {
		shape.MaxItems = int(*s.MaxItems)
	}
	if s.UniqueItems != nil {
		shape.UniqueItems = *s.UniqueItems
	}
	shape.PrefixItems = s.PrefixItems
	shape.Items = s.Items
	return shape
}

func objectShapeFrom(rt *refTable, s *Schema) (ObjectShape, error) {
	shape := ObjectShape{
		Properties:           map[string]PropertyShape{},
		MinProperties:        0,
		MaxProperties:        -1,
		AdditionalProperties: s.AdditionalProperties,
	}
	if s.MinProperties != nil {
		shape.MinProperties = int(*s.MinProperties)
	}
	if s.MaxProperties != nil {
		shape.MaxProperties = int(*s.MaxProperties)
	}

	required := map[string]bool{}
	for _, name := range s.Required {
		required[name] = true
	}
	for name, sub := range s.Properties {
		shape.Properties[name] = PropertyShape{Schema: sub, Required: required[name]}
	}
	// A name can be required without appearing in "properties" at all; it
	// still constrains subtyping (a supertype requiring it demands a
	// subtype that guarantees its presence), so it needs its own entry
	// even though it carries no schema of its own beyond Top.
	for name := range required {
		if _, ok := shape.Properties[name]; !ok {
			shape.Properties[name] = PropertyShape{Required: true}
		}
	}

	for pat, sub := range s.PatternProperties {
		p, err := pattern.Compile(pat)
		if err != nil {
			return ObjectShape{}, patternError("patternProperties", err)
		}
		shape.PatternProperties = append(shape.PatternProperties, PatternPropertyShape{Pattern: p, Schema: sub})
	}

	return shape, nil
}

// restrictToEnum narrows every disjunct to the subset of values agreeing
// with its base kind, grouping the flat enum/const value list by runtime
// JSON kind. A whole-number value is filed under both KindNumber and
// KindInteger, since an "integer" atom is just as entitled to keep its
// share of the enum as a "number" atom — JSON numbers decode as float64
// regardless of the schema's declared type, so classifying them by
// runtime type alone would starve every integer atom's enum.
func restrictToEnum(atoms *Atoms, values []any) *Atoms {
	byKind := map[Kind][]any{}
	for _, v := range values {
		k := kindOfValue(v)
		byKind[k] = append(byKind[k], v)
		if k == KindNumber && isIntegralValue(v) {
			byKind[KindInteger] = append(byKind[KindInteger], v)
		}
	}

	var out []Atom
	for _, a := range atoms.Disjuncts {
		vs, ok := byKind[a.Kind]
		if !ok {
			continue
		}
		a.Enum = mergeEnumRestriction(a.Enum, vs)
		if a.Enum != nil && len(a.Enum) == 0 {
			continue
		}
		out = append(out, a)
	}
	return &Atoms{Disjuncts: out}
}

func mergeEnumRestriction(existing, newSet []any) []any {
	if existing == nil {
		return newSet
	}
	var out []any
	for _, v := range existing {
		if containsValue(newSet, v) {
			out = append(out, v)
		}
	}
	return out
}

func kindOfValue(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64, int, int64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindNumber
	}
}

// isIntegralValue reports whether v is a JSON number with no fractional
// part, regardless of its Go runtime type.
func isIntegralValue(v any) bool {
	f, ok := toFloat(v)
	if !ok {
		return false
	}
	return f == math.Trunc(f)
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case float64:
		bf, ok := toFloat(b)
		return ok && av == bf
	default:
		return deepEqualJSON(a, b)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func deepEqualJSON(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !valuesEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
