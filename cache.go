package subschema

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/schemalattice/subschema/semantic"
)

// CachingChecker wraps a Checker with an LRU memoization layer keyed by a
// structural hash of the two input schemas plus the resolver's identity
// string, so repeated comparisons of the same two schemas under the same
// ontology skip re-canonicalization entirely.
type CachingChecker struct {
	inner *Checker
	cache *lru.Cache[string, Result]
}

// NewCachingChecker wraps resolver in a Checker with an LRU cache of the
// given size. size <= 0 defaults to 4096 entries.
func NewCachingChecker(resolver semantic.Resolver, size int) (*CachingChecker, error) {
	if size <= 0 {
		size = 4096
	}
	c, err := lru.New[string, Result](size)
	if err != nil {
		return nil, fmt.Errorf("subschema: building cache: %w", err)
	}
	return &CachingChecker{inner: NewChecker(resolver), cache: c}, nil
}

func (cc *CachingChecker) key(op string, s1, s2 *Schema) (string, error) {
	h1, err := hashstructure.Hash(s1, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("subschema: hashing lhs schema: %w", err)
	}
	h2, err := hashstructure.Hash(s2, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("subschema: hashing rhs schema: %w", err)
	}
	return fmt.Sprintf("%s:%s:%x:%x", op, semantic.CacheIdentity(cc.inner.resolver()), h1, h2), nil
}

// IsSubschema behaves like Checker.IsSubschema, consulting and populating
// the cache.
func (cc *CachingChecker) IsSubschema(s1, s2 *Schema) (Result, error) {
	key, err := cc.key("subschema", s1, s2)
	if err != nil {
		return cc.inner.IsSubschema(s1, s2)
	}
	if r, ok := cc.cache.Get(key); ok {
		return r, nil
	}
	r, err := cc.inner.IsSubschema(s1, s2)
	if err != nil {
		return r, err
	}
	cc.cache.Add(key, r)
	return r, nil
}

// IsEquivalent behaves like Checker.IsEquivalent, consulting and
// populating the cache.
func (cc *CachingChecker) IsEquivalent(s1, s2 *Schema) (Result, error) {
	key, err := cc.key("equivalent", s1, s2)
	if err != nil {
		return cc.inner.IsEquivalent(s1, s2)
	}
	if r, ok := cc.cache.Get(key); ok {
		return r, nil
	}
	r, err := cc.inner.IsEquivalent(s1, s2)
	if err != nil {
		return r, err
	}
	cc.cache.Add(key, r)
	return r, nil
}

// Purge drops every cached entry.
func (cc *CachingChecker) Purge() { cc.cache.Purge() }
