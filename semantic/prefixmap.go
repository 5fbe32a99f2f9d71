package semantic

import "strings"

// PrefixMap expands compact prefixed names ("skos:broader") into full
// IRIs. Concrete resolvers embed PrefixMap to get Normalize for free.
type PrefixMap map[string]string

// Normalize implements the Normalize half of Resolver.
func (m PrefixMap) Normalize(stype string) IRI {
	prefix, local, found := strings.Cut(stype, ":")
	if !found {
		return IRI(stype)
	}
	base, ok := m[prefix]
	if !ok {
		return IRI(stype)
	}
	return IRI(base + local)
}
