package subschema

import "github.com/schemalattice/subschema/semantic"

// Result pairs a decision with any non-fatal diagnostics accumulated
// while reaching it (a resolver answering Unknown, an unverified oneOf
// overlap, an approximated patternProperties check).
type Result struct {
	Tri         semantic.Tri
	Diagnostics []Diagnostic
}

// Checker holds the configuration shared across a batch of comparisons:
// primarily the semantic resolver consulted for "stype" subsumption.
// The zero Checker uses semantic.NullResolver{}, under which two schemas
// are stype-equivalent only when their tags are character-for-character
// identical.
type Checker struct {
	Resolver semantic.Resolver
}

// NewChecker builds a Checker with an explicit resolver. Passing nil is
// equivalent to semantic.NullResolver{}.
func NewChecker(resolver semantic.Resolver) *Checker {
	if resolver == nil {
		resolver = semantic.NullResolver{}
	}
	return &Checker{Resolver: resolver}
}

func (k *Checker) resolver() semantic.Resolver {
	if k.Resolver == nil {
		return semantic.NullResolver{}
	}
	return k.Resolver
}

// IsSubschema decides whether every instance validated by s1 is also
// validated by s2 (s1 <: s2).
func (k *Checker) IsSubschema(s1, s2 *Schema) (Result, error) {
	c := &ctx{resolver: k.resolver(), rt1: newRefTable(s1), rt2: newRefTable(s2)}
	var diags []Diagnostic
	c.diags = &diags

	a1, err := canonicalize(c.rt1, c.resolver, s1)
	if err != nil {
		return Result{}, err
	}
	a2, err := canonicalize(c.rt2, c.resolver, s2)
	if err != nil {
		return Result{}, err
	}

	checkOneOfOverlap(c, s1)
	checkOneOfOverlap(c, s2)

	tri, err := subtypeAtoms(c, a1, a2)
	if err != nil {
		return Result{}, err
	}
	return Result{Tri: tri, Diagnostics: diags}, nil
}

// Meet computes the canonical schema satisfied by exactly those instances
// that satisfy both s1 and s2.
func (k *Checker) Meet(s1, s2 *Schema) (*Atoms, []Diagnostic, error) {
	c := &ctx{resolver: k.resolver(), rt1: newRefTable(s1), rt2: newRefTable(s2)}
	var diags []Diagnostic
	c.diags = &diags

	a1, err := canonicalize(c.rt1, c.resolver, s1)
	if err != nil {
		return nil, nil, err
	}
	a2, err := canonicalize(c.rt2, c.resolver, s2)
	if err != nil {
		return nil, nil, err
	}
	m, err := meetAtoms(c, a1, a2)
	if err != nil {
		return nil, nil, err
	}
	return m, diags, nil
}

// Join computes the canonical schema satisfied by every instance that
// satisfies s1 or s2.
func (k *Checker) Join(s1, s2 *Schema) (*Atoms, []Diagnostic, error) {
	c := &ctx{resolver: k.resolver(), rt1: newRefTable(s1), rt2: newRefTable(s2)}
	var diags []Diagnostic
	c.diags = &diags

	a1, err := canonicalize(c.rt1, c.resolver, s1)
	if err != nil {
		return nil, nil, err
	}
	a2, err := canonicalize(c.rt2, c.resolver, s2)
	if err != nil {
		return nil, nil, err
	}
	return joinAtoms(c, a1, a2), diags, nil
}

// IsEquivalent decides s1 <: s2 and s2 <: s1 together, short-circuiting
// the second direction only when the first is already No.
func (k *Checker) IsEquivalent(s1, s2 *Schema) (Result, error) {
	r1, err := k.IsSubschema(s1, s2)
	if err != nil {
		return Result{}, err
	}
	if r1.Tri == semantic.No {
		return Result{Tri: semantic.No, Diagnostics: r1.Diagnostics}, nil
	}
	r2, err := k.IsSubschema(s2, s1)
	if err != nil {
		return Result{}, err
	}
	diags := append(r1.Diagnostics, r2.Diagnostics...)
	return Result{Tri: semantic.AndAll(r1.Tri, r2.Tri), Diagnostics: diags}, nil
}

// checkOneOfOverlap walks every oneOf site in s and records a diagnostic
// when two branches are not provably disjoint — oneOf is canonicalized as
// anyOf (see canonicalize.go), so this is the only place non-exclusivity
// is surfaced.
func checkOneOfOverlap(c *ctx, s *Schema) {
	if s == nil {
		return
	}
	if len(s.OneOf) > 1 {
		rt := newRefTable(s)
		for i := 0; i < len(s.OneOf); i++ {
			for j := i + 1; j < len(s.OneOf); j++ {
				ai, err1 := canonicalize(rt, c.resolver, s.OneOf[i])
				aj, err2 := canonicalize(rt, c.resolver, s.OneOf[j])
				if err1 != nil || err2 != nil {
					continue
				}
				m, err := meetAtoms(c, ai, aj)
				if err == nil && !m.IsBottom() {
					c.warn("oneof-overlap", "oneOf branches are not provably disjoint")
				}
			}
		}
	}
	for _, sub := range s.AllOf {
		checkOneOfOverlap(c, sub)
	}
	for _, sub := range s.AnyOf {
		checkOneOfOverlap(c, sub)
	}
	for _, sub := range s.OneOf {
		checkOneOfOverlap(c, sub)
	}
}

// IsSubschema is a package-level convenience using semantic.NullResolver{}.
func IsSubschema(s1, s2 *Schema) (Result, error) {
	return NewChecker(nil).IsSubschema(s1, s2)
}

// MeetSchemas is a package-level convenience using semantic.NullResolver{}.
func MeetSchemas(s1, s2 *Schema) (*Atoms, []Diagnostic, error) {
	return NewChecker(nil).Meet(s1, s2)
}

// JoinSchemas is a package-level convenience using semantic.NullResolver{}.
func JoinSchemas(s1, s2 *Schema) (*Atoms, []Diagnostic, error) {
	return NewChecker(nil).Join(s1, s2)
}

// IsEquivalent is a package-level convenience using semantic.NullResolver{}.
func IsEquivalent(s1, s2 *Schema) (Result, error) {
	return NewChecker(nil).IsEquivalent(s1, s2)
}
