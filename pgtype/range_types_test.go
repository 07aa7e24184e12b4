package pgtype_test

import (
	"encoding/json"
	"testing"

	"github.com/extpg/extpg/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInt4(t testing.TB, n int64) pgtype.Int4 {
	t.Helper()
	v, err := pgtype.NewInt4(n)
	require.NoError(t, err)
	return v
}

func mustDate(t testing.TB, s string) pgtype.Date {
	t.Helper()
	d, err := pgtype.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseInt4Range(t *testing.T) {
	tests := []struct {
		src    string
		result string
	}{
		{src: "[1,3)", result: "[1,3)"},
		{src: "(1,3]", result: "(1,3]"},
		{src: " [ 1 , 3 ) ", result: "[1,3)"},
		{src: `["1","3")`, result: "[1,3)"},
		{src: "empty", result: "empty"},
		{src: "[2,2)", result: "empty"},
		{src: "(2,2]", result: "empty"},
		{src: "[2,2]", result: "[2,2]"},
		{src: "(2,2)", result: "(2,2)"},
	}

	for i, tt := range tests {
		r, err := pgtype.ParseInt4Range(tt.src)
		require.NoErrorf(t, err, "%d. %s", i, tt.src)
		assert.Equalf(t, tt.result, r.String(), "%d. %s", i, tt.src)
	}
}

func TestParseInt4RangeErrors(t *testing.T) {
	for i, src := range []string{"", "1,3", "[1,3", "[1,)", "[,3)", "[1,2,3)", "[1,3)x", "[1,x)", "[1,9999999999)"} {
		_, err := pgtype.ParseInt4Range(src)
		assert.ErrorIsf(t, err, pgtype.ErrInvalidFormat, "%d. %s", i, src)
	}

	_, err := pgtype.ParseInt4Range("[1,)")
	require.Error(t, err)
	assert.Equal(t, "invalid Int4Range string: unbounded ranges are not supported", err.Error())
}

func TestRangeAccessors(t *testing.T) {
	r, err := pgtype.ParseInt4Range("(1,3]")
	require.NoError(t, err)

	assert.Equal(t, pgtype.ExcludeLower, r.LowerBound())
	assert.Equal(t, pgtype.IncludeUpper, r.UpperBound())
	assert.False(t, r.IsEmpty())
	assert.Same(t, pgtype.Int4RangeType, r.Type())

	lo, ok := r.LowerValue()
	require.True(t, ok)
	assert.Equal(t, int32(1), lo.Int32())

	hi, ok := r.UpperValue()
	require.True(t, ok)
	assert.Equal(t, int32(3), hi.Int32())

	empty := r.WithEmpty()
	assert.True(t, empty.IsEmpty())
	_, ok = empty.LowerValue()
	assert.False(t, ok)
	assert.Equal(t, "empty", empty.String())
}

func TestRangeContains(t *testing.T) {
	r, err := pgtype.ParseDateRange("[2022-09-01,2022-09-03)")
	require.NoError(t, err)

	assert.True(t, r.Contains(mustDate(t, "2022-09-01")))
	assert.True(t, r.Contains(mustDate(t, "2022-09-02")))
	assert.False(t, r.Contains(mustDate(t, "2022-09-03")))
	assert.False(t, r.Contains(mustDate(t, "2022-08-31")))

	open, err := pgtype.ParseInt4Range("(1,3)")
	require.NoError(t, err)
	assert.False(t, open.Contains(mustInt4(t, 1)))
	assert.True(t, open.Contains(mustInt4(t, 2)))
	assert.False(t, open.Contains(mustInt4(t, 3)))

	closed, err := pgtype.ParseInt4Range("[1,3]")
	require.NoError(t, err)
	assert.True(t, closed.Contains(mustInt4(t, 1)))
	assert.True(t, closed.Contains(mustInt4(t, 3)))

	assert.False(t, pgtype.Int4RangeType.Empty().Contains(mustInt4(t, 0)))
}

func TestTimestampRangeQuoting(t *testing.T) {
	r, err := pgtype.ParseTimestampRange(`["2022-09-02 10:00:00","2022-09-02 12:00:00"]`)
	require.NoError(t, err)
	assert.Equal(t, `["2022-09-02 10:00:00","2022-09-02 12:00:00"]`, r.String())

	again, err := pgtype.ParseTimestampRange(r.String())
	require.NoError(t, err)
	assert.True(t, r.Equal(again))
}

func TestTimestampTZRangeContainsByInstant(t *testing.T) {
	r, err := pgtype.ParseTimestampTZRange(`["2022-09-02 10:00:00+00","2022-09-02 12:00:00+00")`)
	require.NoError(t, err)

	inside, err := pgtype.ParseTimestampTZ("2022-09-02 13:00:00+02")
	require.NoError(t, err)
	assert.True(t, r.Contains(inside))

	outside, err := pgtype.ParseTimestampTZ("2022-09-02 12:00:00-01")
	require.NoError(t, err)
	assert.False(t, r.Contains(outside))

	// Same instants, different offsets: endpoints differ.
	shifted, err := pgtype.ParseTimestampTZRange(`["2022-09-02 12:00:00+02","2022-09-02 14:00:00+02")`)
	require.NoError(t, err)
	assert.False(t, r.Equal(shifted))
}

func TestNewRange(t *testing.T) {
	r, err := pgtype.Int4RangeType.New(pgtype.IncludeLower, pgtype.IncludeUpper, mustInt4(t, 1), mustInt4(t, 5))
	require.NoError(t, err)
	assert.Equal(t, "[1,5]", r.String())

	_, err = pgtype.Int4RangeType.New(pgtype.LowerBound('x'), pgtype.ExcludeUpper, mustInt4(t, 1), mustInt4(t, 5))
	assert.ErrorIs(t, err, pgtype.ErrInvalidArguments)
	assert.ErrorIs(t, err, pgtype.ErrOutOfRange)

	fv := pgtype.Int4RangeType.FromValues(mustInt4(t, 1), mustInt4(t, 5))
	assert.Equal(t, "[1,5)", fv.String())
}

func TestRangeFromObject(t *testing.T) {
	r, err := pgtype.Int4RangeType.FromObject(pgtype.RangeObject[pgtype.Int4]{
		Lower: pgtype.ExcludeLower,
		Upper: pgtype.IncludeUpper,
		Value: []pgtype.Int4{mustInt4(t, 1), mustInt4(t, 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, "(1,2]", r.String())

	empty, err := pgtype.Int4RangeType.FromObject(pgtype.RangeObject[pgtype.Int4]{})
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = pgtype.Int4RangeType.FromObject(pgtype.RangeObject[pgtype.Int4]{
		Lower: pgtype.IncludeLower,
		Upper: pgtype.ExcludeUpper,
		Value: []pgtype.Int4{mustInt4(t, 1)},
	})
	require.ErrorIs(t, err, pgtype.ErrInvalidObject)
	assert.Equal(t, "invalid Int4Range object: too few values", err.Error())

	_, err = pgtype.Int4RangeType.FromObject(pgtype.RangeObject[pgtype.Int4]{
		Value: []pgtype.Int4{mustInt4(t, 1), mustInt4(t, 2)},
	})
	assert.ErrorIs(t, err, pgtype.ErrInvalidObject)
}

func TestRangeEqual(t *testing.T) {
	r, err := pgtype.ParseInt4Range("[1,3)")
	require.NoError(t, err)

	one, three := mustInt4(t, 1), mustInt4(t, 3)

	assert.True(t, r.Equal("[1,3)"))
	assert.False(t, r.Equal("[1,2]"))
	assert.True(t, r.Equal(&r))
	assert.True(t, r.Equal([2]pgtype.Int4{one, three}))
	assert.True(t, r.Equal([]pgtype.Int4{one, three}))
	assert.False(t, r.Equal([]pgtype.Int4{one}))
	assert.True(t, r.Equal(r.Object()))
	assert.False(t, r.Equal("not a range"))
	assert.False(t, r.Equal(42))

	e1, _ := pgtype.ParseInt4Range("empty")
	e2, _ := pgtype.ParseInt4Range("[5,5)")
	assert.True(t, e1.Equal(e2))
	assert.False(t, e1.Equal(r))
}

func TestRangeSetters(t *testing.T) {
	r, err := pgtype.ParseInt4Range("[1,3)")
	require.NoError(t, err)

	r2, err := r.WithBounds(pgtype.ExcludeLower, pgtype.IncludeUpper)
	require.NoError(t, err)
	assert.Equal(t, "(1,3]", r2.String())
	assert.Equal(t, "[1,3)", r.String())

	r3, err := r.WithValue(mustInt4(t, 7), mustInt4(t, 9))
	require.NoError(t, err)
	assert.Equal(t, "[7,9)", r3.String())

	r4, err := r.WithValue(mustInt4(t, 4), mustInt4(t, 4))
	require.NoError(t, err)
	assert.True(t, r4.IsEmpty())

	_, err = r.WithBounds(pgtype.LowerBound('{'), pgtype.IncludeUpper)
	assert.ErrorIs(t, err, pgtype.ErrOutOfRange)
}

func TestZeroRange(t *testing.T) {
	var r pgtype.Range[pgtype.Int4]
	assert.True(t, r.IsEmpty())
	assert.Equal(t, "empty", r.String())
	assert.False(t, r.Contains(mustInt4(t, 1)))
	assert.True(t, r.Equal("empty"))
	assert.True(t, r.Equal(pgtype.Int4RangeType.Empty()))
	assert.True(t, pgtype.Int4RangeType.Empty().Equal(r))
	assert.False(t, r.Equal("[1,2)"))

	v, err := r.Value()
	require.NoError(t, err)
	assert.Equal(t, "empty", v)

	_, err = r.WithValue(mustInt4(t, 1), mustInt4(t, 2))
	assert.ErrorIs(t, err, pgtype.ErrInvalidArguments)
	_, err = r.WithBounds(pgtype.IncludeLower, pgtype.IncludeUpper)
	assert.ErrorIs(t, err, pgtype.ErrInvalidArguments)
}

func TestRangeIs(t *testing.T) {
	r, err := pgtype.ParseInt4Range("[1,3)")
	require.NoError(t, err)

	assert.True(t, pgtype.Int4RangeType.Is(r))
	assert.True(t, pgtype.Int4RangeType.Is(&r))
	assert.False(t, pgtype.Int4RangeType.Is("[1,3)"))

	other := pgtype.NewRangeType("OtherInt4Range", pgtype.Int4Element)
	assert.False(t, other.Is(r))
	assert.False(t, pgtype.Int8RangeType.Is(r))
}

func TestRangeJSON(t *testing.T) {
	r, err := pgtype.ParseInt4Range("[1,3)")
	require.NoError(t, err)

	buf, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lower":"[","upper":")","value":[{"Int4":1},{"Int4":3}]}`, string(buf))

	decoded := pgtype.Int4RangeType.Empty()
	require.NoError(t, json.Unmarshal(buf, &decoded))
	assert.True(t, r.Equal(decoded))

	fromText := pgtype.Int4RangeType.Empty()
	require.NoError(t, json.Unmarshal([]byte(`"(4,6]"`), &fromText))
	assert.Equal(t, "(4,6]", fromText.String())

	buf, err = json.Marshal(pgtype.Int4RangeType.Empty())
	require.NoError(t, err)
	assert.JSONEq(t, `{"lower":"[","upper":")","value":null}`, string(buf))

	var untyped pgtype.Range[pgtype.Int4]
	assert.Error(t, json.Unmarshal([]byte(`"[1,3)"`), &untyped))
}

func TestRangeValue(t *testing.T) {
	r, err := pgtype.ParseDateRange("[2022-09-01,2022-09-03)")
	require.NoError(t, err)

	v, err := r.Value()
	require.NoError(t, err)
	assert.Equal(t, "[2022-09-01,2022-09-03)", v)
}

func TestRangeScan(t *testing.T) {
	r := pgtype.DateRangeType.Empty()
	require.NoError(t, r.Scan([]byte("[2022-09-01,2022-09-03)")))
	assert.Equal(t, "[2022-09-01,2022-09-03)", r.String())

	require.NoError(t, r.Scan("empty"))
	assert.True(t, r.IsEmpty())

	assert.Error(t, r.Scan(nil))
	assert.ErrorIs(t, r.Scan("[2022-09-01"), pgtype.ErrInvalidFormat)

	var untyped pgtype.Range[pgtype.Date]
	assert.Error(t, untyped.Scan("[2022-09-01,2022-09-03)"))
}
