// Package subschema decides subtyping, meet, and join over JSON Schema
// documents extended with a semantic-type (stype) annotation.
package subschema

import (
	"bytes"
	"maps"

	"github.com/goccy/go-json"
)

// knownSchemaFields lists every keyword this system's dialect recognizes.
// Anything else collected from the input is preserved as Extra but never
// participates in canonicalization or the lattice.
var knownSchemaFields = map[string]struct{}{
	"$id": {}, "$schema": {}, "$ref": {}, "$defs": {}, "definitions": {},
	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {},
	"type": {}, "enum": {}, "const": {},
	"multipleOf": {}, "maximum": {}, "exclusiveMaximum": {},
	"minimum": {}, "exclusiveMinimum": {},
	"maxLength": {}, "minLength": {}, "pattern": {},
	"items": {}, "additionalItems": {}, "prefixItems": {},
	"maxItems": {}, "minItems": {}, "uniqueItems": {},
	"properties": {}, "patternProperties": {}, "additionalProperties": {},
	"required": {}, "maxProperties": {}, "minProperties": {},
	"stype": {},
}

// Schema is a raw, uncanonicalized JSON Schema document in this system's
// supported dialect: a Draft-04-ish subset plus the "stype" semantic-type
// extension. It is the canonicalizer's only input type; callers build or
// parse a Schema and hand it to a Checker or to the package-level
// IsSubschema, MeetSchemas, JoinSchemas and IsEquivalent.
type Schema struct {
	ID     string             `json:"$id,omitempty"`
	Schema string             `json:"$schema,omitempty"`
	Ref    string             `json:"$ref,omitempty"`
	Defs   map[string]*Schema `json:"$defs,omitempty"`

	// Boolean is set when the schema is the bare JSON literal true/false.
	Boolean *bool `json:"-"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	Type  SchemaType  `json:"type,omitempty"`
	Enum  []any       `json:"enum,omitempty"`
	Const *ConstValue `json:"const,omitempty"`

	MultipleOf       *RatValue `json:"multipleOf,omitempty"`
	Maximum          *RatValue `json:"maximum,omitempty"`
	ExclusiveMaximum *RatValue `json:"exclusiveMaximum,omitempty"`
	Minimum          *RatValue `json:"minimum,omitempty"`
	ExclusiveMinimum *RatValue `json:"exclusiveMinimum,omitempty"`

	MaxLength *float64 `json:"maxLength,omitempty"`
	MinLength *float64 `json:"minLength,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`

	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	Items       *Schema   `json:"items,omitempty"`

	MaxItems    *float64 `json:"maxItems,omitempty"`
	MinItems    *float64 `json:"minItems,omitempty"`
	UniqueItems *bool    `json:"uniqueItems,omitempty"`

	Properties           SchemaMap `json:"properties,omitempty"`
	PatternProperties    SchemaMap `json:"patternProperties,omitempty"`
	AdditionalProperties *Schema   `json:"additionalProperties,omitempty"`

	MaxProperties *float64 `json:"maxProperties,omitempty"`
	MinProperties *float64 `json:"minProperties,omitempty"`
	Required      []string `json:"required,omitempty"`

	// Stype names a concept in an external ontology. Either a full IRI or
	// a compact prefixed name resolved against a Resolver's configured
	// prefix map.
	Stype string `json:"stype,omitempty"`

	Extra map[string]any `json:"-"`

	// Precomputed lets internal meet/join kernels splice an already
	// canonicalized result back into a shape field (e.g. the merged
	// "items" schema produced by an array meet) without round-tripping
	// it through JSON. Never set by ParseSchema.
	Precomputed *Atoms `json:"-"`
}

// SchemaMap is a collection of named subschemas; property iteration order
// never affects subtype/meet/join results, so a plain map is sufficient.
type SchemaMap map[string]*Schema

// SchemaType holds one or more base-type names, accepting "type" as
// either a single string or an array.
type SchemaType []string

// ConstValue distinguishes an explicit JSON null const from "no const".
type ConstValue struct {
	Value any
	IsSet bool
}

// ParseSchema parses raw JSON (or YAML, pre-normalized to JSON by the
// caller) into a Schema.
func ParseSchema(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, &InvalidSchemaError{Err: err}
	}
	return s, nil
}

// UnmarshalJSON implements json.Unmarshaler, handling the boolean-schema
// and Draft-07 items-as-tuple forms, and collecting unknown fields.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Boolean = &b
		return nil
	}

	type Alias Schema
	aux := &struct {
		Items           json.RawMessage `json:"items,omitempty"`
		AdditionalItems *Schema         `json:"additionalItems,omitempty"`
		*Alias
	}{Alias: (*Alias)(s)}

	if err := json.Unmarshal(data, aux); err != nil {
		return &InvalidSchemaError{Err: err}
	}

	if len(aux.Items) > 0 {
		trimmed := bytes.TrimSpace(aux.Items)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(aux.Items, &s.PrefixItems); err != nil {
				return &InvalidSchemaError{Err: err}
			}
			if aux.AdditionalItems != nil {
				s.Items = aux.AdditionalItems
			}
		} else {
			if err := json.Unmarshal(aux.Items, &s.Items); err != nil {
				return &InvalidSchemaError{Err: err}
			}
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &InvalidSchemaError{Err: err}
	}

	if defsData, ok := raw["definitions"]; ok && s.Defs == nil {
		var defs map[string]*Schema
		if err := json.Unmarshal(defsData, &defs); err != nil {
			return &InvalidSchemaError{Err: err}
		}
		s.Defs = defs
	}

	if constData, ok := raw["const"]; ok {
		s.Const = &ConstValue{IsSet: true}
		if string(constData) == "null" {
			s.Const.Value = nil
		} else if err := json.Unmarshal(constData, &s.Const.Value); err != nil {
			return &InvalidSchemaError{Err: err}
		}
	}

	extra := map[string]any{}
	for k, v := range raw {
		if _, known := knownSchemaFields[k]; known {
			continue
		}
		var val any
		_ = json.Unmarshal(v, &val)
		extra[k] = val
	}
	if len(extra) > 0 {
		s.Extra = extra
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Boolean != nil {
		return json.Marshal(*s.Boolean)
	}

	type Alias Schema
	data, err := json.Marshal((*Alias)(s))
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	if s.Const != nil {
		result["const"] = s.Const.Value
	}

	maps.Copy(result, s.Extra)

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler for SchemaType, accepting a
// single type name or an array of names.
func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*st = SchemaType{single}
		return nil
	}

	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*st = SchemaType(multi)
		return nil
	}

	return ErrInvalidSchemaType
}

// MarshalJSON implements json.Marshaler for SchemaType.
func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}
