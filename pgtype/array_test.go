package pgtype

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUntypedTextArray(t *testing.T) {
	tests := []struct {
		source string
		result UntypedTextArray
	}{
		{
			source: "{}",
			result: UntypedTextArray{
				Elements:   []string{},
				Quoted:     []bool{},
				Dimensions: []ArrayDimension{},
			},
		},
		{
			source: "{1}",
			result: UntypedTextArray{
				Elements:   []string{"1"},
				Quoted:     []bool{false},
				Dimensions: []ArrayDimension{{Length: 1, LowerBound: 1}},
			},
		},
		{
			source: "{a,b}",
			result: UntypedTextArray{
				Elements:   []string{"a", "b"},
				Quoted:     []bool{false, false},
				Dimensions: []ArrayDimension{{Length: 2, LowerBound: 1}},
			},
		},
		{
			source: `{"NULL"}`,
			result: UntypedTextArray{
				Elements:   []string{"NULL"},
				Quoted:     []bool{true},
				Dimensions: []ArrayDimension{{Length: 1, LowerBound: 1}},
			},
		},
		{
			source: `{""}`,
			result: UntypedTextArray{
				Elements:   []string{""},
				Quoted:     []bool{true},
				Dimensions: []ArrayDimension{{Length: 1, LowerBound: 1}},
			},
		},
		{
			source: `{"He said, \"Hello.\""}`,
			result: UntypedTextArray{
				Elements:   []string{`He said, "Hello."`},
				Quoted:     []bool{true},
				Dimensions: []ArrayDimension{{Length: 1, LowerBound: 1}},
			},
		},
		{
			source: "{{a,b},{c,d},{e,f}}",
			result: UntypedTextArray{
				Elements:   []string{"a", "b", "c", "d", "e", "f"},
				Quoted:     []bool{false, false, false, false, false, false},
				Dimensions: []ArrayDimension{{Length: 3, LowerBound: 1}, {Length: 2, LowerBound: 1}},
			},
		},
		{
			source: "{{{a,b},{c,d},{e,f}},{{a,b},{c,d},{e,f}}}",
			result: UntypedTextArray{
				Elements: []string{"a", "b", "c", "d", "e", "f", "a", "b", "c", "d", "e", "f"},
				Quoted:   []bool{false, false, false, false, false, false, false, false, false, false, false, false},
				Dimensions: []ArrayDimension{
					{Length: 2, LowerBound: 1},
					{Length: 3, LowerBound: 1},
					{Length: 2, LowerBound: 1},
				},
			},
		},
		{
			source: "[4:4]={1}",
			result: UntypedTextArray{
				Elements:   []string{"1"},
				Quoted:     []bool{false},
				Dimensions: []ArrayDimension{{Length: 1, LowerBound: 4}},
			},
		},
		{
			source: "[4:5][2:3]={{a,b},{c,d}}",
			result: UntypedTextArray{
				Elements: []string{"a", "b", "c", "d"},
				Quoted:   []bool{false, false, false, false},
				Dimensions: []ArrayDimension{
					{Length: 2, LowerBound: 4},
					{Length: 2, LowerBound: 2},
				},
			},
		},
		{
			source: "[-4:-2]={1,2,3}",
			result: UntypedTextArray{
				Elements:   []string{"1", "2", "3"},
				Quoted:     []bool{false, false, false},
				Dimensions: []ArrayDimension{{Length: 3, LowerBound: -4}},
			},
		},
		{
			source: "{NULL, null ,\"NULL\"}",
			result: UntypedTextArray{
				Elements:   []string{"NULL", "null", "NULL"},
				Quoted:     []bool{false, false, true},
				Dimensions: []ArrayDimension{{Length: 3, LowerBound: 1}},
			},
		},
		{
			source: "{ a b , c }",
			result: UntypedTextArray{
				Elements:   []string{"a b", "c"},
				Quoted:     []bool{false, false},
				Dimensions: []ArrayDimension{{Length: 2, LowerBound: 1}},
			},
		},
		{
			source: `{"(1,2)","(3,4)"}`,
			result: UntypedTextArray{
				Elements:   []string{"(1,2)", "(3,4)"},
				Quoted:     []bool{true, true},
				Dimensions: []ArrayDimension{{Length: 2, LowerBound: 1}},
			},
		},
		{
			source: `{a\,b,c}`,
			result: UntypedTextArray{
				Elements:   []string{"a,b", "c"},
				Quoted:     []bool{false, false},
				Dimensions: []ArrayDimension{{Length: 2, LowerBound: 1}},
			},
		},
	}

	for i, tt := range tests {
		r, err := ParseUntypedTextArray(tt.source, ",")
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}

		if !reflect.DeepEqual(*r, tt.result) {
			t.Errorf("%d: expected %+v to be parsed to %+v, but it was %+v", i, tt.source, tt.result, *r)
		}
	}
}

func TestParseUntypedTextArrayDelimiter(t *testing.T) {
	r, err := ParseUntypedTextArray("{(1,2),(3,4);(5,6),(7,8)}", ";")
	require.NoError(t, err)
	assert.Equal(t, []string{"(1,2),(3,4)", "(5,6),(7,8)"}, r.Elements)

	_, err = ParseUntypedTextArray("{a}", ";;")
	assert.Error(t, err)
}

func TestParseUntypedTextArrayErrors(t *testing.T) {
	for i, src := range []string{"", "{", "{a", `{"a}`, "{a}x", "[1:2={a,b}", "[a:b]={a,b}"} {
		_, err := ParseUntypedTextArray(src, ",")
		assert.Errorf(t, err, "%d: %q", i, src)
	}
}

func TestParseArray(t *testing.T) {
	dates, err := ParseArray("{2022-09-01,2022-09-02}", ",", ParseDate)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "2022-09-02", dates[1].String())

	empty, err := ParseArray("{}", ",", ParseDate)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)

	nested, err := ParseArray("{{1,2},{3,4}}", ",", ParseInt4)
	require.NoError(t, err)
	assert.Len(t, nested, 4)

	for _, src := range []string{"", "2022-09-01", "(1,2)", "[1,2)"} {
		notArray, err := ParseArray(src, ",", ParseDate)
		require.NoError(t, err)
		assert.Nil(t, notArray)
	}

	_, err = ParseArray("{2022-09-01,NULL}", ",", ParseDate)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseArray("{2022-09-01,nope}", ",", ParseDate)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Date", pe.TypeName)

	quoted, err := ParseArray(`{"NULL"}`, ",", func(s string) (string, error) { return s, nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"NULL"}, quoted)
}

func TestEncodeArray(t *testing.T) {
	identity := func(s string) string { return s }

	tests := []struct {
		elems  []string
		delim  string
		result string
	}{
		{elems: nil, delim: ",", result: "{}"},
		{elems: []string{"a", "b"}, delim: ",", result: "{a,b}"},
		{elems: []string{"", "NULL", "null"}, delim: ",", result: `{"","NULL","null"}`},
		{elems: []string{"a b", "c,d", `e"f`, `g\h`, "{i}"}, delim: ",", result: `{"a b","c,d","e\"f","g\\h","{i}"}`},
		{elems: []string{"(1,2),(3,4)"}, delim: ";", result: "{(1,2),(3,4)}"},
		{elems: []string{"a;b"}, delim: ";", result: `{"a;b"}`},
	}
	for i, tt := range tests {
		assert.Equalf(t, tt.result, EncodeArray(tt.elems, tt.delim, identity), "%d", i)
	}

	for i, tt := range tests {
		if len(tt.elems) == 0 {
			continue
		}
		elems, err := ParseArray(tt.result, tt.delim, func(s string) (string, error) { return s, nil })
		require.NoErrorf(t, err, "%d", i)
		assert.Equalf(t, tt.elems, elems, "%d", i)
	}
}
