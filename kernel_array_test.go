package subschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalattice/subschema/semantic"
)

func TestArraySubtypeMinItemsMustWiden(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ArrayShape{MinItems: 3, MaxItems: -1}
	b := ArrayShape{MinItems: 1, MaxItems: -1}
	tri, err := arraySubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.Yes, tri, "a requires at least 3 items, which already satisfies b's looser minimum of 1")
}

func TestArraySubtypeFailsWhenMinItemsTooLoose(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ArrayShape{MinItems: 1, MaxItems: -1}
	b := ArrayShape{MinItems: 3, MaxItems: -1}
	tri, err := arraySubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.No, tri)
}

func TestArraySubtypeFailsWhenUniqueItemsDropped(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ArrayShape{MaxItems: -1, UniqueItems: false}
	b := ArrayShape{MaxItems: -1, UniqueItems: true}
	tri, err := arraySubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.No, tri)
}

func TestArraySubtypePrefixItemsCheckedPositionally(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ArrayShape{
		MaxItems:    -1,
		PrefixItems: []*Schema{mustParse(t, `{"type":"integer"}`), mustParse(t, `{"type":"string"}`)},
	}
	b := ArrayShape{
		MaxItems:    -1,
		PrefixItems: []*Schema{mustParse(t, `{"type":"number"}`), mustParse(t, `{"type":"string"}`)},
	}
	tri, err := arraySubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.Yes, tri)
}

func TestArraySubtypePrefixItemsMismatchFails(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ArrayShape{
		MaxItems:    -1,
		PrefixItems: []*Schema{mustParse(t, `{"type":"string"}`)},
	}
	b := ArrayShape{
		MaxItems:    -1,
		PrefixItems: []*Schema{mustParse(t, `{"type":"integer"}`)},
	}
	tri, err := arraySubtype(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, semantic.No, tri)
}

func TestArrayMeetTakesTighterSizeBounds(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ArrayShape{MinItems: 1, MaxItems: 10}
	b := ArrayShape{MinItems: 3, MaxItems: 5}
	merged, err := arrayMeet(c, a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.MinItems)
	assert.Equal(t, 5, merged.MaxItems)
}

func TestArrayMeetUniqueItemsFromEitherSide(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ArrayShape{MaxItems: -1, UniqueItems: true}
	b := ArrayShape{MaxItems: -1, UniqueItems: false}
	merged, err := arrayMeet(c, a, b)
	require.NoError(t, err)
	assert.True(t, merged.UniqueItems)
}

func TestArrayMeetMergesPrefixItemsPositionally(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	a := ArrayShape{
		MaxItems:    -1,
		PrefixItems: []*Schema{mustParse(t, `{"type":"integer","minimum":0}`)},
	}
	b := ArrayShape{
		MaxItems:    -1,
		PrefixItems: []*Schema{mustParse(t, `{"type":"integer","maximum":10}`)},
	}
	merged, err := arrayMeet(c, a, b)
	require.NoError(t, err)
	require.Len(t, merged.PrefixItems, 1)

	tri, err := subtypeSchema(c, merged.PrefixItems[0], mustParse(t, `{"type":"integer","minimum":0,"maximum":10}`))
	require.NoError(t, err)
	assert.Equal(t, semantic.Yes, tri)
}
