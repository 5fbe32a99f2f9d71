package subschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplementAtomsAbsentKindSurvivesWhole(t *testing.T) {
	inner, err := canonicalize(newRefTable(nil), nil, mustParse(t, `{"type":"string"}`))
	require.NoError(t, err)

	comp, err := complementAtoms(inner)
	require.NoError(t, err)

	kinds := map[Kind]bool{}
	for _, a := range comp.Disjuncts {
		kinds[a.Kind] = true
	}
	assert.True(t, kinds[KindInteger], "integer was never restricted, so it survives NOT(string) entirely")
	assert.True(t, kinds[KindNumber])
	assert.True(t, kinds[KindObject])
	assert.False(t, kindHasAnyStringDisjunct(comp), "NOT(string) must exclude every string")
}

func kindHasAnyStringDisjunct(a *Atoms) bool {
	for _, d := range a.Disjuncts {
		if d.Kind == KindString {
			return true
		}
	}
	return false
}

func TestComplementNumericBothSidesBounded(t *testing.T) {
	inner, err := canonicalize(newRefTable(nil), nil, mustParse(t, `{"type":"number","minimum":0,"maximum":10}`))
	require.NoError(t, err)

	comp, err := complementAtoms(inner)
	require.NoError(t, err)

	var numberPieces int
	for _, d := range comp.Disjuncts {
		if d.Kind == KindNumber {
			numberPieces++
		}
	}
	assert.Equal(t, 2, numberPieces, "complement of a two-sided bounded interval is two unbounded pieces")
}

func TestComplementBooleanEnum(t *testing.T) {
	inner, err := canonicalize(newRefTable(nil), nil, mustParse(t, `{"const":true}`))
	require.NoError(t, err)

	comp, err := complementAtoms(inner)
	require.NoError(t, err)

	r, err := IsSubschema(mustParse(t, `{"const":false}`), atomsToSchemaForTest(comp))
	require.NoError(t, err)
	assert.Equal(t, "yes", r.Tri.String(), "NOT(const true) must accept false")

	r, err = IsSubschema(mustParse(t, `{"const":true}`), atomsToSchemaForTest(comp))
	require.NoError(t, err)
	assert.Equal(t, "no", r.Tri.String(), "NOT(const true) must reject true")
}

// atomsToSchemaForTest wraps an already-canonicalized Atoms value as a
// *Schema so it can be handed back into the public façade in a test.
func atomsToSchemaForTest(a *Atoms) *Schema {
	return &Schema{Precomputed: a}
}

func TestComplementOfNumericEnumIsUnsupported(t *testing.T) {
	inner, err := canonicalize(newRefTable(nil), nil, mustParse(t, `{"enum":[1,2,3]}`))
	require.NoError(t, err)

	_, err = complementAtoms(inner)
	require.Error(t, err)
	var unsupported *UnsupportedError
	assert.ErrorAs(t, err, &unsupported)
}

func TestComplementArrayUniqueItemsUnsupported(t *testing.T) {
	inner, err := canonicalize(newRefTable(nil), nil, mustParse(t, `{"type":"array","uniqueItems":true}`))
	require.NoError(t, err)

	_, err = complementAtoms(inner)
	require.Error(t, err)
	var unsupported *UnsupportedError
	assert.ErrorAs(t, err, &unsupported)
}
