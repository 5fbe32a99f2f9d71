package semantic

import "fmt"

// IRI is a fully-expanded ontology concept identifier.
type IRI string

// Resolver is the only source of semantic truth the core consults when
// comparing "stype" annotations. It never parses ontology formats itself
// — that is the concrete resolver implementation's job (see
// internal/ontology for this repository's built-in one).
type Resolver interface {
	// Normalize expands a compact prefixed name ("prefix:localName") or
	// passes through a full IRI unchanged.
	Normalize(stype string) IRI

	// IsSubconcept answers whether a is an ontological subconcept of b,
	// transitively closed over the resolver's configured relations. a == b
	// always yields Yes; concepts absent from the graph yield Unknown.
	IsSubconcept(a, b IRI) Tri
}

// Equivalent derives semantic equivalence as mutual subsumption.
func Equivalent(r Resolver, a, b IRI) bool {
	return r.IsSubconcept(a, b) == Yes && r.IsSubconcept(b, a) == Yes
}

// NullResolver disables semantic reasoning: it reports Yes only for
// identical concepts and No for everything else, so schemas without
// "stype" see exactly plain structural subtyping. It is the façade's
// default.
type NullResolver struct{}

// Normalize returns stype unchanged — the null resolver has no prefix map.
func (NullResolver) Normalize(stype string) IRI { return IRI(stype) }

// IsSubconcept returns Yes only for a == b.
func (NullResolver) IsSubconcept(a, b IRI) Tri {
	if a == b {
		return Yes
	}
	return No
}

// Identity returns a string identifying this resolver instance, used as
// part of the memoization cache key so cache invalidation tracks resolver
// identity. Resolvers that don't implement it fall back to an identity
// derived from their type name (or String() value), so all instances of
// such a type share one cache identity.
type Identity interface {
	CacheIdentity() string
}

// CacheIdentity returns the resolver's cache identity, falling back to
// "anon:" plus the type name (or the resolver's String() value) for
// resolvers that don't implement Identity; separate instances of such a
// type therefore share cached results.
func CacheIdentity(r Resolver) string {
	if id, ok := r.(Identity); ok {
		return id.CacheIdentity()
	}
	return "anon:" + typeName(r)
}

func typeName(r Resolver) string {
	if r == nil {
		return "nil"
	}
	type named interface{ String() string }
	if n, ok := r.(named); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", r)
}

// CacheIdentity implements Identity for NullResolver.
func (NullResolver) CacheIdentity() string { return "null" }
