package subschema

import "github.com/schemalattice/subschema/semantic"

// arraySubtype decides A1 <: A2 for two array shapes. Every positional
// slot A2 constrains (via prefixItems or the shared items/additional
// schema beyond A2's own prefixItems) must be satisfied by the
// corresponding slot on the A1 side, and A1's size bounds must sit inside
// A2's.
func arraySubtype(c *ctx, a, b ArrayShape) (semantic.Tri, error) {
	if b.MinItems > a.MinItems {
		return semantic.No, nil
	}
	if b.MaxItems != -1 && (a.MaxItems == -1 || a.MaxItems > b.MaxItems) {
		return semantic.No, nil
	}
	if b.UniqueItems && !a.UniqueItems {
		return semantic.No, nil
	}

	n := len(b.PrefixItems)
	if len(a.PrefixItems) > n {
		n = len(a.PrefixItems)
	}

	results := make([]semantic.Tri, 0, n+1)
	for i := 0; i < n; i++ {
		results = append(results, semantic.Yes)
		sa := itemSchemaAt(a, i)
		sb := itemSchemaAt(b, i)
		t, err := subtypeSchema(c, sa, sb)
		if err != nil {
			return semantic.Unknown, err
		}
		results[len(results)-1] = t
	}

	// Tail items (indices >= max(len(prefixes))) compared via each side's
	// own "items" schema.
	tailA := schemaOrTop(a.Items)
	tailB := schemaOrTop(b.Items)
	t, err := subtypeSchema(c, tailA, tailB)
	if err != nil {
		return semantic.Unknown, err
	}
	results = append(results, t)

	return semantic.AndAll(results...), nil
}

// itemSchemaAt returns the schema governing index i of an array shape:
// the prefix schema if i is within prefixItems, else the trailing items
// schema (Top if absent).
func itemSchemaAt(shape ArrayShape, i int) *Schema {
	if i < len(shape.PrefixItems) {
		return shape.PrefixItems[i]
	}
	return schemaOrTop(shape.Items)
}

// arrayMeet intersects two array shapes: tighter size bounds, OR of
// uniqueItems (the result demands unique items as soon as either side
// does, since an instance of the meet must satisfy both), and the meet
// schema at every positional slot.
func arrayMeet(c *ctx, a, b ArrayShape) (ArrayShape, error) {
	result := ArrayShape{
		MinItems:    maxInt(a.MinItems, b.MinItems),
		MaxItems:    minBound(a.MaxItems, b.MaxItems),
		UniqueItems: a.UniqueItems || b.UniqueItems,
	}

	n := len(a.PrefixItems)
	if len(b.PrefixItems) > n {
		n = len(b.PrefixItems)
	}
	result.PrefixItems = make([]*Schema, n)
	for i := 0; i < n; i++ {
		merged, err := meetSchema(c, itemSchemaAt(a, i), itemSchemaAt(b, i))
		if err != nil {
			return ArrayShape{}, err
		}
		result.PrefixItems[i] = atomsAsSchema(merged)
	}

	tailMerged, err := meetSchema(c, schemaOrTop(a.Items), schemaOrTop(b.Items))
	if err != nil {
		return ArrayShape{}, err
	}
	result.Items = atomsAsSchema(tailMerged)

	return result, nil
}

// atomsAsSchema wraps an already-canonicalized result back into a
// *Schema placeholder so it can sit in a shape field and be
// re-canonicalized (as a no-op) by later comparisons; canonicalize
// special-cases a Schema carrying a Precomputed value.
func atomsAsSchema(a *Atoms) *Schema {
	return &Schema{Precomputed: a}
}
