package subschema

import (
	"github.com/schemalattice/subschema/interval"
	"github.com/schemalattice/subschema/pattern"
)

// Kind names a base JSON type an Atom constrains.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// StringShape is the canonical constraint set for KindString atoms.
type StringShape struct {
	MinLength int
	MaxLength int // -1 means unbounded
	Patterns  []*pattern.Pattern
}

// ArrayShape is the canonical constraint set for KindArray atoms. Nested
// schemas stay as *Schema rather than being eagerly canonicalized: a
// cyclic $ref through "items" would otherwise force an infinite
// expansion. The driver canonicalizes a nested *Schema the moment it
// needs to compare it, guarded by its own visited-pair set.
type ArrayShape struct {
	PrefixItems []*Schema // tuple-positional schemas
	Items       *Schema   // schema for indices beyond len(PrefixItems), nil means Top
	MinItems    int
	MaxItems    int // -1 means unbounded
	UniqueItems bool
}

// PropertyShape pairs a property's subschema with whether its name is
// required.
type PropertyShape struct {
	Schema   *Schema
	Required bool
}

// PatternPropertyShape pairs a patternProperties regex with the
// subschema it applies to matching property names.
type PatternPropertyShape struct {
	Pattern *pattern.Pattern
	Schema  *Schema
}

// ObjectShape is the canonical constraint set for KindObject atoms.
type ObjectShape struct {
	Properties           map[string]PropertyShape
	PatternProperties    []PatternPropertyShape
	AdditionalProperties *Schema // nil means Top (unrestricted)
	MinProperties        int
	MaxProperties        int // -1 means unbounded
}

// Atom is one disjunct of a canonical schema: a base type plus the
// constraints specific to that type, an optional value enumeration that
// narrows the atom to a finite set of concrete values, and an optional
// semantic-type tag.
type Atom struct {
	Kind Kind

	Enum []any // nil means unrestricted; non-nil restricts to exactly these values

	Numeric interval.Constraint // meaningful for KindInteger, KindNumber
	String  StringShape         // meaningful for KindString
	Array   ArrayShape          // meaningful for KindArray
	Object  ObjectShape         // meaningful for KindObject

	Stype string // "" means unconstrained
}

// Atoms is a canonical schema: the disjunction (logical OR) of its Atoms.
// An empty Atoms is Bottom (no value satisfies it); a nil Atoms pointer is
// never used — Top is represented by a single Atoms per base Kind with no
// constraints, since "type" is itself always implicitly restrictive in
// this dialect (an unconstrained schema canonicalizes to one atom per
// Kind).
type Atoms struct {
	Disjuncts []Atom
}

// Bottom returns the canonical schema that no value satisfies.
func Bottom() *Atoms { return &Atoms{} }

// allKinds lists every base kind in a fixed order, used when a raw schema
// omits "type" and therefore ranges over every kind.
var allKinds = []Kind{KindNull, KindBoolean, KindInteger, KindNumber, KindString, KindArray, KindObject}

// topAtom returns the unconstrained atom for kind k.
func topAtom(k Kind) Atom {
	a := Atom{Kind: k}
	switch k {
	case KindInteger, KindNumber:
		a.Numeric = interval.Constraint{Interval: interval.Full(), Integral: k == KindInteger}
	case KindString:
		a.String = StringShape{MinLength: 0, MaxLength: -1}
	case KindArray:
		a.Array = ArrayShape{MinItems: 0, MaxItems: -1}
	case KindObject:
		a.Object = ObjectShape{MinProperties: 0, MaxProperties: -1}
	}
	return a
}

// Top returns the canonical schema satisfied by every value of every kind.
func Top() *Atoms {
	disjuncts := make([]Atom, 0, len(allKinds))
	for _, k := range allKinds {
		disjuncts = append(disjuncts, topAtom(k))
	}
	return &Atoms{Disjuncts: disjuncts}
}

// IsBottom reports whether a has no satisfiable disjunct.
func (a *Atoms) IsBottom() bool {
	return a == nil || len(a.Disjuncts) == 0
}
