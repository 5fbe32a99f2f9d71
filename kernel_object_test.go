package subschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalattice/subschema/semantic"
)

func TestObjectSubtypeRequiredPropertyMustStayRequired(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"name": {Schema: mustParse(t, `{"type":"string"}`), Required: false}},
	}
	b := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"name": {Schema: mustParse(t, `{"type":"string"}`), Required: true}},
	}
	tri, err := objectSubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.No, tri, "b requires \"name\" but a does not guarantee its presence")
}

func TestObjectSubtypeHoldsWhenPropertiesNarrow(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"age": {Schema: mustParse(t, `{"type":"integer"}`), Required: true}},
	}
	b := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"age": {Schema: mustParse(t, `{"type":"number"}`), Required: true}},
	}
	tri, err := objectSubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.Yes, tri)
}

func TestObjectSubtypeMissingRequiredPropertyFails(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ObjectShape{MaxProperties: -1, Properties: map[string]PropertyShape{}}
	b := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"id": {Schema: mustParse(t, `{"type":"string"}`), Required: true}},
	}
	tri, err := objectSubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.No, tri)
}

func TestObjectSubtypeExtraPropertyMustFitAdditional(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"extra": {Schema: mustParse(t, `{"type":"string"}`)}},
	}
	b := ObjectShape{
		MaxProperties:        -1,
		Properties:           map[string]PropertyShape{},
		AdditionalProperties: mustParse(t, `{"type":"number"}`),
	}
	tri, err := objectSubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.No, tri, "a's extra property is a string, which does not fit b's additionalProperties:number")
}

func TestObjectMeetUnionsRequiredFlags(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"id": {Schema: mustParse(t, `{"type":"string"}`), Required: false}},
	}
	b := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"id": {Schema: mustParse(t, `{"type":"string"}`), Required: true}},
	}
	merged, err := objectMeet(c, a, b)
	require.NoError(t, err)
	assert.True(t, merged.Properties["id"].Required)
}

func TestObjectMeetTakesTighterPropertyCountBounds(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ObjectShape{MinProperties: 1, MaxProperties: 10, Properties: map[string]PropertyShape{}}
	b := ObjectShape{MinProperties: 3, MaxProperties: 5, Properties: map[string]PropertyShape{}}
	merged, err := objectMeet(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.MinProperties)
	assert.Equal(t, 5, merged.MaxProperties)
}

func TestObjectMeetMergesDistinctPropertySets(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"name": {Schema: mustParse(t, `{"type":"string"}`), Required: true}},
	}
	b := ObjectShape{
		MaxProperties: -1,
		Properties:    map[string]PropertyShape{"age": {Schema: mustParse(t, `{"type":"integer"}`), Required: true}},
	}
	merged, err := objectMeet(c, a, b)
	require.NoError(t, err)
	require.Contains(t, merged.Properties, "name")
	require.Contains(t, merged.Properties, "age")
	assert.True(t, merged.Properties["name"].Required)
	assert.True(t, merged.Properties["age"].Required)
}
