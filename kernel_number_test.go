package subschema

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalattice/subschema/interval"
	"github.com/schemalattice/subschema/semantic"
)

func rat(n int64) *big.Rat { return big.NewRat(n, 1) }

func TestNumberSubtypeNarrowerRangeHolds(t *testing.T) {
	wide := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(0)), Max: interval.Closed(rat(10))},
	}}
	narrow := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(2)), Max: interval.Closed(rat(5))},
	}}
	assert.True(t, numberSubtype(narrow, wide))
	assert.False(t, numberSubtype(wide, narrow))
}

func TestNumberMeetIntersectsIntervals(t *testing.T) {
	a := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(0)), Max: interval.Closed(rat(10))},
	}}
	b := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(5)), Max: interval.Closed(rat(15))},
	}}
	got := numberMeet(a, b)
	assert.False(t, got.Empty())
	assert.Equal(t, 0, got.Interval.Min.Value.Cmp(rat(5)))
	assert.Equal(t, 0, got.Interval.Max.Value.Cmp(rat(10)))
}

func TestTryMergeNumberMergesOverlapping(t *testing.T) {
	a := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(0)), Max: interval.Closed(rat(5))},
	}}
	b := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(5)), Max: interval.Closed(rat(10))},
	}}
	merged, ok := tryMergeNumber(a, b)
	require.True(t, ok)
	assert.Equal(t, 0, merged.Numeric.Interval.Min.Value.Cmp(rat(0)))
	assert.Equal(t, 0, merged.Numeric.Interval.Max.Value.Cmp(rat(10)))
}

func TestTryMergeNumberRefusesDisjoint(t *testing.T) {
	a := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(0)), Max: interval.Closed(rat(1))},
	}}
	b := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(5)), Max: interval.Closed(rat(10))},
	}}
	_, ok := tryMergeNumber(a, b)
	assert.False(t, ok)
}

func TestTryMergeNumberRefusesWithMultipleOf(t *testing.T) {
	a := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval:   interval.Interval{Min: interval.Closed(rat(0)), Max: interval.Closed(rat(10))},
		MultipleOf: rat(2),
	}}
	b := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(5)), Max: interval.Closed(rat(15))},
	}}
	_, ok := tryMergeNumber(a, b)
	assert.False(t, ok)
}

func TestSubtypeIntegerAsNumberHoldsWhenShapeFits(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	integer := Atom{Kind: KindInteger, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(2)), Max: interval.Closed(rat(8))},
		Integral: true,
	}}
	number := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(0)), Max: interval.Closed(rat(10))},
	}}
	tri, err := subtypeIntegerAsNumber(c, integer, number)
	require.NoError(t, err)
	assert.Equal(t, semantic.Yes, tri)
}

func TestSubtypeIntegerAsNumberFailsWhenRangeTooWide(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	integer := Atom{Kind: KindInteger, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(-5)), Max: interval.Closed(rat(20))},
		Integral: true,
	}}
	number := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(0)), Max: interval.Closed(rat(10))},
	}}
	tri, err := subtypeIntegerAsNumber(c, integer, number)
	require.NoError(t, err)
	assert.Equal(t, semantic.No, tri)
}

func TestMeetIntegerNumberProducesIntegerKindAtom(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	integer := Atom{Kind: KindInteger, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(0)), Max: interval.Closed(rat(10))},
		Integral: true,
	}}
	number := Atom{Kind: KindNumber, Numeric: interval.Constraint{
		Interval: interval.Interval{Min: interval.Closed(rat(5)), Max: interval.Closed(rat(15))},
	}}
	result, err := meetIntegerNumber(c, integer, number)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, KindInteger, result.Kind)
	assert.True(t, result.Numeric.Integral)
	assert.Equal(t, 0, result.Numeric.Interval.Min.Value.Cmp(rat(5)))
	assert.Equal(t, 0, result.Numeric.Interval.Max.Value.Cmp(rat(10)))
}

func TestMeetIntegerNumberCollapsesOnDisjointEnum(t *testing.T) {
	c := &ctx{resolver: semantic.NullResolver{}}
	integer := Atom{Kind: KindInteger, Enum: []any{float64(1), float64(2)}}
	number := Atom{Kind: KindNumber, Enum: []any{float64(3), float64(4)}}
	result, err := meetIntegerNumber(c, integer, number)
	require.NoError(t, err)
	assert.Nil(t, result)
}
