// Package ontology provides a small, built-in subsumption resolver: a
// fixed concept graph loaded once at startup (no networked lookups), its
// transitive closure precomputed so IsSubconcept answers are O(1) set
// membership checks rather than graph walks.
package ontology

import (
	"fmt"

	"github.com/schemalattice/subschema/semantic"
)

// Edge is one "narrower is-a broader" relationship in the source fixture.
type Edge struct {
	Narrower string `yaml:"narrower"`
	Broader  string `yaml:"broader"`
}

// Fixture is the on-disk shape of an ontology definition file.
type Fixture struct {
	Prefixes map[string]string `yaml:"prefixes"`
	Edges    []Edge            `yaml:"edges"`
}

// Graph is a semantic.Resolver backed by a precomputed transitive
// closure over a fixed set of IRIs.
type Graph struct {
	prefixes semantic.PrefixMap
	ancestry map[semantic.IRI]map[semantic.IRI]bool
	known    map[semantic.IRI]bool
}

// NewGraph builds a Graph from a parsed Fixture, computing the
// transitive closure eagerly.
func NewGraph(f Fixture) *Graph {
	g := &Graph{
		prefixes: semantic.PrefixMap(f.Prefixes),
		ancestry: map[semantic.IRI]map[semantic.IRI]bool{},
		known:    map[semantic.IRI]bool{},
	}

	direct := map[semantic.IRI][]semantic.IRI{}
	for _, e := range f.Edges {
		n := g.prefixes.Normalize(e.Narrower)
		b := g.prefixes.Normalize(e.Broader)
		direct[n] = append(direct[n], b)
		g.known[n] = true
		g.known[b] = true
	}

	for node := range g.known {
		g.ancestry[node] = closureFrom(node, direct)
	}
	return g
}

// closureFrom computes every ancestor reachable from node via direct
// edges, including node itself (a concept always subsumes itself).
func closureFrom(node semantic.IRI, direct map[semantic.IRI][]semantic.IRI) map[semantic.IRI]bool {
	seen := map[semantic.IRI]bool{node: true}
	stack := []semantic.IRI{node}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, parent := range direct[cur] {
			if !seen[parent] {
				seen[parent] = true
				stack = append(stack, parent)
			}
		}
	}
	return seen
}

// Normalize implements semantic.Resolver.
func (g *Graph) Normalize(stype string) semantic.IRI {
	return g.prefixes.Normalize(stype)
}

// IsSubconcept implements semantic.Resolver: Yes if a is known to be b or
// a descendant of b, No if both are known concepts but unrelated, Unknown
// if either IRI never appears in the graph at all.
func (g *Graph) IsSubconcept(a, b semantic.IRI) semantic.Tri {
	if a == b {
		return semantic.Yes
	}
	if !g.known[a] || !g.known[b] {
		return semantic.Unknown
	}
	if g.ancestry[a][b] {
		return semantic.Yes
	}
	return semantic.No
}

// CacheIdentity implements semantic.Identity so a CachingChecker can key
// memoized results by which ontology was in effect.
func (g *Graph) CacheIdentity() string {
	return fmt.Sprintf("ontology-graph:%p", g)
}
