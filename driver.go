package subschema

import (
	"github.com/schemalattice/subschema/semantic"
)

// ctx threads the pieces every recursive subtype/meet/join call needs: the
// ontology resolver for "stype" comparisons, the $ref table for the
// document being compared, and a set of diagnostics accumulated along the
// way (non-fatal observations like a non-disjoint oneOf or a resolver that
// answered Unknown).
type ctx struct {
	resolver semantic.Resolver
	rt1, rt2 *refTable
	diags    *[]Diagnostic
	visited  map[schemaPair]bool
}

// schemaPair identifies a (lhs, rhs) comparison in progress, used to cut
// off infinite recursion through cyclic $refs by coinduction: once a pair
// is seen again before it has finished, it is assumed to hold (greatest
// fixed point) rather than re-expanded.
type schemaPair struct {
	a, b *Schema
}

// subtypeSchema recursively compares two (possibly $ref-bearing) nested
// subschemas, short-circuiting to Yes on a repeated pair.
func subtypeSchema(c *ctx, a, b *Schema) (semantic.Tri, error) {
	key := schemaPair{a, b}
	if c.visited[key] {
		return semantic.Yes, nil
	}
	if c.visited == nil {
		c.visited = map[schemaPair]bool{}
	}
	c.visited[key] = true
	defer delete(c.visited, key)

	ca, err := canonicalize(c.rt1, c.resolver, a)
	if err != nil {
		return semantic.Unknown, err
	}
	cb, err := canonicalize(c.rt2, c.resolver, b)
	if err != nil {
		return semantic.Unknown, err
	}
	return subtypeAtoms(c, ca, cb)
}

// meetSchema canonicalizes two nested subschemas from possibly different
// documents and returns their conjunction in canonical form.
func meetSchema(c *ctx, a, b *Schema) (*Atoms, error) {
	ca, err := canonicalize(c.rt1, c.resolver, a)
	if err != nil {
		return nil, err
	}
	cb, err := canonicalize(c.rt2, c.resolver, b)
	if err != nil {
		return nil, err
	}
	return meetAtoms(c, ca, cb)
}

// schemaOrTop substitutes the trivial "always true" schema for a nil
// keyword value (e.g. an absent "items" or "additionalProperties"), so
// recursive comparisons never need a nil special case.
func schemaOrTop(s *Schema) *Schema {
	if s == nil {
		return &Schema{Boolean: boolPtr(true)}
	}
	return s
}

func boolPtr(b bool) *bool { return &b }

// Diagnostic is a non-fatal observation surfaced alongside a result.
type Diagnostic struct {
	Kind    string
	Message string
}

func (c *ctx) warn(kind, msg string) {
	if c.diags != nil {
		*c.diags = append(*c.diags, Diagnostic{Kind: kind, Message: msg})
	}
}

// subtypeAtoms decides A <: B for two canonical schemas: every disjunct of
// A must be covered by some disjunct of B.
func subtypeAtoms(c *ctx, a, b *Atoms) (semantic.Tri, error) {
	if a.IsBottom() {
		return semantic.Yes, nil
	}
	if b.IsBottom() {
		return semantic.No, nil
	}

	results := make([]semantic.Tri, 0, len(a.Disjuncts))
	for _, da := range a.Disjuncts {
		covered := make([]semantic.Tri, 0, len(b.Disjuncts))
		for _, db := range b.Disjuncts {
			t, err := subtypeAtomAny(c, da, db)
			if err != nil {
				return semantic.Unknown, err
			}
			covered = append(covered, t)
		}
		results = append(results, semantic.OrAll(covered...))
	}
	result := semantic.AndAll(results...)
	if result == semantic.Unknown {
		c.warn("resolver-unknown", "subtype decision depends on an Unknown semantic-resolver answer")
	}
	return result, nil
}

// subtypeAtomAny dispatches subtypeAtom across kinds, including the
// Integer <: Number refinement.
func subtypeAtomAny(c *ctx, a, b Atom) (semantic.Tri, error) {
	if a.Kind != b.Kind {
		if a.Kind == KindInteger && b.Kind == KindNumber {
			return subtypeIntegerAsNumber(c, a, b)
		}
		return semantic.No, nil
	}

	enumTri := subtypeEnum(a.Enum, b.Enum)
	if enumTri == semantic.No {
		return semantic.No, nil
	}

	stypeTri := subtypeStype(c, a.Stype, b.Stype)
	if stypeTri == semantic.No {
		return semantic.No, nil
	}

	var shapeTri semantic.Tri
	var err error
	switch a.Kind {
	case KindNull:
		shapeTri = semantic.Yes
	case KindBoolean:
		shapeTri = semantic.Yes
	case KindInteger, KindNumber:
		shapeTri = semantic.FromBool(numberSubtype(a, b))
	case KindString:
		shapeTri, err = stringSubtype(a.String, b.String)
	case KindArray:
		shapeTri, err = arraySubtype(c, a.Array, b.Array)
	case KindObject:
		shapeTri, err = objectSubtype(c, a.Object, b.Object)
	}
	if err != nil {
		return semantic.Unknown, err
	}

	return semantic.AndAll(enumTri, stypeTri, shapeTri), nil
}

// subtypeEnum compares two optional value-enumeration restrictions: a's
// enum (if set) must be a subset of b's enum (if set).
func subtypeEnum(a, b []any) semantic.Tri {
	if b == nil {
		return semantic.Yes
	}
	if a == nil {
		return semantic.No // b restricts to finitely many values, a doesn't
	}
	for _, av := range a {
		if !containsValue(b, av) {
			return semantic.No
		}
	}
	return semantic.Yes
}

func containsValue(set []any, v any) bool {
	for _, s := range set {
		if valuesEqual(s, v) {
			return true
		}
	}
	return false
}

// subtypeStype compares semantic-type tags via the configured resolver.
// An empty tag means "unconstrained" and is always a supertype.
func subtypeStype(c *ctx, a, b string) semantic.Tri {
	if b == "" {
		return semantic.Yes
	}
	if a == "" {
		return semantic.No
	}
	ia := c.resolver.Normalize(a)
	ib := c.resolver.Normalize(b)
	if ia == ib {
		return semantic.Yes
	}
	return c.resolver.IsSubconcept(ia, ib)
}

// meetAtoms computes the cross-product conjunction of two canonical
// schemas, dropping any pairwise meet that collapses to Bottom.
func meetAtoms(c *ctx, a, b *Atoms) (*Atoms, error) {
	if a.IsBottom() || b.IsBottom() {
		return Bottom(), nil
	}
	var out []Atom
	for _, da := range a.Disjuncts {
		for _, db := range b.Disjuncts {
			m, err := meetAtomAny(c, da, db)
			if err != nil {
				return nil, err
			}
			if m != nil {
				out = append(out, *m)
			}
		}
	}
	return &Atoms{Disjuncts: out}, nil
}

func meetAtomAny(c *ctx, a, b Atom) (*Atom, error) {
	if a.Kind != b.Kind {
		if a.Kind == KindInteger && b.Kind == KindNumber {
			return meetIntegerNumber(c, a, b)
		}
		if a.Kind == KindNumber && b.Kind == KindInteger {
			return meetIntegerNumber(c, b, a)
		}
		return nil, nil
	}

	enum := meetEnum(a.Enum, b.Enum)
	if enum.collapsed {
		return nil, nil
	}

	stype, ok := meetStype(c, a.Stype, b.Stype)
	if !ok {
		return nil, nil
	}

	result := Atom{Kind: a.Kind, Enum: enum.value, Stype: stype}
	switch a.Kind {
	case KindNull, KindBoolean:
		// no shape fields beyond enum
	case KindInteger, KindNumber:
		result.Numeric = numberMeet(a, b)
		if result.Numeric.Empty() {
			return nil, nil
		}
	case KindString:
		shape, ok := stringMeet(a.String, b.String)
		if !ok {
			return nil, nil
		}
		result.String = shape
	case KindArray:
		shape, err := arrayMeet(c, a.Array, b.Array)
		if err != nil {
			return nil, err
		}
		result.Array = shape
	case KindObject:
		shape, err := objectMeet(c, a.Object, b.Object)
		if err != nil {
			return nil, err
		}
		result.Object = shape
	}
	return &result, nil
}

type enumMeetResult struct {
	value     []any
	collapsed bool
}

func meetEnum(a, b []any) enumMeetResult {
	if a == nil && b == nil {
		return enumMeetResult{}
	}
	if a == nil {
		return enumMeetResult{value: b}
	}
	if b == nil {
		return enumMeetResult{value: a}
	}
	var out []any
	for _, av := range a {
		if containsValue(b, av) {
			out = append(out, av)
		}
	}
	if len(out) == 0 {
		return enumMeetResult{collapsed: true}
	}
	return enumMeetResult{value: out}
}

// meetStype intersects two semantic-type tags: the more specific of the
// two survives when the resolver can order them. The meet is never
// rejected: when neither tag is a subconcept of the other (unrelated or
// Unknown), a is kept and a "resolver-unknown" diagnostic is recorded.
func meetStype(c *ctx, a, b string) (string, bool) {
	if a == "" {
		return b, true
	}
	if b == "" {
		return a, true
	}
	ia, ib := c.resolver.Normalize(a), c.resolver.Normalize(b)
	if ia == ib {
		return a, true
	}
	if c.resolver.IsSubconcept(ia, ib) == semantic.Yes {
		return a, true
	}
	if c.resolver.IsSubconcept(ib, ia) == semantic.Yes {
		return b, true
	}
	c.warn("resolver-unknown", "meet of unrelated or unresolved stype tags kept conservatively")
	return a, true
}

// joinAtoms computes the disjunction of two canonical schemas: simply the
// union of their disjuncts. This is always exact, since Atoms is already
// a disjunctive normal form — no cross-product is needed for join, only
// (optionally) a simplification pass that merges mergeable same-kind
// disjuncts for a more compact result.
func joinAtoms(c *ctx, a, b *Atoms) *Atoms {
	out := append(append([]Atom{}, a.Disjuncts...), b.Disjuncts...)
	return &Atoms{Disjuncts: simplifyDisjuncts(c, out)}
}

// simplifyDisjuncts greedily merges pairs of disjuncts that a kernel can
// fold into one without losing precision (e.g. overlapping numeric
// intervals). Never required for correctness, only for a smaller result.
func simplifyDisjuncts(c *ctx, atoms []Atom) []Atom {
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(atoms); i++ {
			for j := i + 1; j < len(atoms); j++ {
				if merged, ok := tryMerge(c, atoms[i], atoms[j]); ok {
					atoms[i] = merged
					atoms = append(atoms[:j], atoms[j+1:]...)
					changed = true
					break
				}
			}
			if changed {
				break
			}
		}
	}
	return atoms
}

func tryMerge(c *ctx, a, b Atom) (Atom, bool) {
	if a.Kind != b.Kind || a.Stype != b.Stype {
		return Atom{}, false
	}
	switch a.Kind {
	case KindInteger, KindNumber:
		return tryMergeNumber(a, b)
	default:
		return Atom{}, false
	}
}
