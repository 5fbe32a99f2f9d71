package subschema

import "github.com/schemalattice/subschema/semantic"

// objectSubtype decides O1 <: O2. Every property O2 declares must be
// covered on the O1 side (present with a subtype schema, and required if
// O2 requires it), every property only O1 declares must fit O2's
// additionalProperties, and O1's additionalProperties must refine O2's.
// patternProperties are not reasoned about: when either shape has any,
// the answer is Unknown (with a "pattern-properties-approx" diagnostic)
// unless the property-count bounds already rule the subtype out.
func objectSubtype(c *ctx, a, b ObjectShape) (semantic.Tri, error) {
	if b.MinProperties > a.MinProperties {
		return semantic.No, nil
	}
	if b.MaxProperties != -1 && (a.MaxProperties == -1 || a.MaxProperties > b.MaxProperties) {
		return semantic.No, nil
	}
	if len(a.PatternProperties) > 0 || len(b.PatternProperties) > 0 {
		c.warn("pattern-properties-approx", "patternProperties are not reasoned about in object subtype checks; the result is Unknown")
		return semantic.Unknown, nil
	}

	var results []semantic.Tri
	for name, bprop := range b.Properties {
		aprop, ok := a.Properties[name]
		var aschema *Schema
		if ok {
			aschema = aprop.Schema
			if bprop.Required && !aprop.Required {
				return semantic.No, nil
			}
		} else {
			if bprop.Required {
				return semantic.No, nil
			}
			aschema = additionalSchemaFor(a, name)
		}
		t, err := subtypeSchema(c, aschema, bprop.Schema)
		if err != nil {
			return semantic.Unknown, err
		}
		results = append(results, t)
	}

	for name, aprop := range a.Properties {
		if _, ok := b.Properties[name]; ok {
			continue
		}
		bschema := additionalSchemaFor(b, name)
		t, err := subtypeSchema(c, aprop.Schema, bschema)
		if err != nil {
			return semantic.Unknown, err
		}
		results = append(results, t)
	}

	t, err := subtypeSchema(c, schemaOrTop(a.AdditionalProperties), schemaOrTop(b.AdditionalProperties))
	if err != nil {
		return semantic.Unknown, err
	}
	results = append(results, t)

	return semantic.AndAll(results...), nil
}

// additionalSchemaFor returns the schema that governs a property name not
// explicitly listed in shape.Properties: the shape's additionalProperties
// schema. patternProperties entries are not consulted.
func additionalSchemaFor(shape ObjectShape, name string) *Schema {
	return schemaOrTop(shape.AdditionalProperties)
}

// objectMeet intersects two object shapes: the union of both property
// sets (meeting the schema and OR-ing Required where both sides name the
// property), concatenation of patternProperties, and the meet of both
// additionalProperties schemas.
func objectMeet(c *ctx, a, b ObjectShape) (ObjectShape, error) {
	result := ObjectShape{
		Properties:    map[string]PropertyShape{},
		MinProperties: maxInt(a.MinProperties, b.MinProperties),
		MaxProperties: minBound(a.MaxProperties, b.MaxProperties),
	}

	names := map[string]bool{}
	for name := range a.Properties {
		names[name] = true
	}
	for name := range b.Properties {
		names[name] = true
	}

	for name := range names {
		ap, aok := a.Properties[name]
		bp, bok := b.Properties[name]
		var sa, sb *Schema
		required := false
		switch {
		case aok && bok:
			sa, sb = ap.Schema, bp.Schema
			required = ap.Required || bp.Required
		case aok:
			sa, sb = ap.Schema, schemaOrTop(a.AdditionalProperties)
			sb = schemaOrTop(b.AdditionalProperties)
			required = ap.Required
		case bok:
			sa = schemaOrTop(a.AdditionalProperties)
			sb = bp.Schema
			required = bp.Required
		}
		merged, err := meetSchema(c, sa, sb)
		if err != nil {
			return ObjectShape{}, err
		}
		result.Properties[name] = PropertyShape{Schema: atomsAsSchema(merged), Required: required}
	}

	result.PatternProperties = append(append([]PatternPropertyShape{}, a.PatternProperties...), b.PatternProperties...)

	addMerged, err := meetSchema(c, schemaOrTop(a.AdditionalProperties), schemaOrTop(b.AdditionalProperties))
	if err != nil {
		return ObjectShape{}, err
	}
	result.AdditionalProperties = atomsAsSchema(addMerged)

	return result, nil
}
