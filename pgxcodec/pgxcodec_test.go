package pgxcodec_test

import (
	"testing"
	"time"

	"github.com/extpg/extpg"
	"github.com/extpg/extpg/pgtype"
	"github.com/extpg/extpg/pgxcodec"
	pgxtype "github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTypeMap(t testing.TB) *pgxtype.Map {
	t.Helper()
	m := pgxtype.NewMap()
	require.NoError(t, pgxcodec.Register(m, extpg.DefaultTypes()...))
	return m
}

func TestRegisterUnknownType(t *testing.T) {
	m := pgxtype.NewMap()
	custom := extpg.NewType("Money", "money", 790, 791, pgtype.ParseInt8)
	err := pgxcodec.Register(m, custom)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Money")

	pgxcodec.RegisterType(m, custom, pgtype.ParseInt8)
	var n pgtype.Int8
	require.NoError(t, m.Scan(790, pgxtype.TextFormatCode, []byte("12"), &n))
	assert.Equal(t, "12", n.String())
}

func TestScanValue(t *testing.T) {
	m := newTypeMap(t)

	var r pgtype.Range[pgtype.Int4]
	require.NoError(t, m.Scan(pgtype.Int4rangeOID, pgxtype.TextFormatCode, []byte("[1,3)"), &r))
	assert.Equal(t, "[1,3)", r.String())
	assert.True(t, pgtype.Int4RangeType.Is(r))

	var mr pgtype.Multirange[pgtype.Date]
	require.NoError(t, m.Scan(pgtype.DatemultirangeOID, pgxtype.TextFormatCode, []byte("{[2022-09-01,2022-09-03)}"), &mr))
	assert.Equal(t, 1, mr.Len())

	var iv pgtype.Interval
	require.NoError(t, m.Scan(pgtype.IntervalOID, pgxtype.TextFormatCode, []byte("1 day"), &iv))
	assert.Equal(t, "1 day", iv.String())

	var mac pgtype.MACAddress
	err := m.Scan(pgtype.MacaddrOID, pgxtype.TextFormatCode, []byte("08:00:2b:01:02"), &mac)
	assert.ErrorIs(t, err, pgtype.ErrInvalidFormat)

	err = m.Scan(pgtype.MacaddrOID, pgxtype.TextFormatCode, nil, &mac)
	assert.Error(t, err)
}

func TestScanPointerToValue(t *testing.T) {
	m := newTypeMap(t)

	var p *pgtype.Point
	require.NoError(t, m.Scan(pgtype.PointOID, pgxtype.TextFormatCode, []byte("(1,2)"), &p))
	require.NotNil(t, p)
	assert.Equal(t, "(1,2)", p.String())

	require.NoError(t, m.Scan(pgtype.PointOID, pgxtype.TextFormatCode, nil, &p))
	assert.Nil(t, p)
}

func TestScanAnyAndString(t *testing.T) {
	m := newTypeMap(t)

	var v any
	require.NoError(t, m.Scan(pgtype.UUIDOID, pgxtype.TextFormatCode, []byte("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"), &v))
	require.IsType(t, pgtype.UUID{}, v)

	var s string
	require.NoError(t, m.Scan(pgtype.CircleOID, pgxtype.TextFormatCode, []byte("<(1,2),3>"), &s))
	assert.Equal(t, "<(1,2),3>", s)
}

func TestScanFallsBackToPreviousCodec(t *testing.T) {
	m := newTypeMap(t)

	var n int32
	require.NoError(t, m.Scan(pgtype.Int4OID, pgxtype.TextFormatCode, []byte("42"), &n))
	assert.EqualValues(t, 42, n)

	var d time.Time
	require.NoError(t, m.Scan(pgtype.DateOID, pgxtype.TextFormatCode, []byte("2022-09-01"), &d))
	assert.Equal(t, time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC), d)

	var ns []int64
	require.NoError(t, m.Scan(pgtype.Int8ArrayOID, pgxtype.TextFormatCode, []byte("{1,2}"), &ns))
	assert.Equal(t, []int64{1, 2}, ns)
}

func TestScanArray(t *testing.T) {
	m := newTypeMap(t)

	var boxes []pgtype.Box
	require.NoError(t, m.Scan(pgtype.BoxArrayOID, pgxtype.TextFormatCode, []byte("{(1,2),(3,4);(5,6),(7,8)}"), &boxes))
	require.Len(t, boxes, 2)
	assert.Equal(t, "(5,6),(7,8)", boxes[1].String())

	var ranges []pgtype.Range[pgtype.Int8]
	require.NoError(t, m.Scan(pgtype.Int8rangeArrayOID, pgxtype.TextFormatCode, []byte(`{"[1,3)",empty}`), &ranges))
	require.Len(t, ranges, 2)
	assert.True(t, ranges[1].IsEmpty())

	require.NoError(t, m.Scan(pgtype.Int8rangeArrayOID, pgxtype.TextFormatCode, nil, &ranges))
	assert.Nil(t, ranges)

	var v any
	require.NoError(t, m.Scan(pgtype.DateArrayOID, pgxtype.TextFormatCode, []byte("{2022-09-01}"), &v))
	require.IsType(t, []pgtype.Date{}, v)

	var dates []pgtype.Date
	err := m.Scan(pgtype.DateArrayOID, pgxtype.TextFormatCode, []byte("{2022-09-01,NULL}"), &dates)
	assert.ErrorIs(t, err, pgtype.ErrInvalidFormat)
}

func TestEncode(t *testing.T) {
	m := newTypeMap(t)

	r, err := pgtype.ParseTimestampRange(`["2022-09-02 10:00:00","2022-09-02 12:00:00")`)
	require.NoError(t, err)

	buf, err := m.Encode(pgtype.TsrangeOID, pgxtype.TextFormatCode, r, nil)
	require.NoError(t, err)
	assert.Equal(t, `["2022-09-02 10:00:00","2022-09-02 12:00:00")`, string(buf))

	buf, err = m.Encode(pgtype.TsrangeOID, pgxtype.TextFormatCode, &r, nil)
	require.NoError(t, err)
	assert.Equal(t, `["2022-09-02 10:00:00","2022-09-02 12:00:00")`, string(buf))

	typ, ok := m.TypeForOID(pgtype.Int2OID)
	require.True(t, ok)
	plan := typ.Codec.PlanEncode(m, pgtype.Int2OID, pgxtype.TextFormatCode, "  7 ")
	require.NotNil(t, plan)
	buf, err = plan.Encode("  7 ", nil)
	require.NoError(t, err)
	assert.Equal(t, "7", string(buf))

	_, err = plan.Encode("70000", nil)
	assert.ErrorIs(t, err, pgtype.ErrInvalidFormat)

	assert.Nil(t, typ.Codec.PlanEncode(m, pgtype.Int2OID, pgxtype.BinaryFormatCode, "7"))

	buf, err = m.Encode(pgtype.Int4OID, pgxtype.TextFormatCode, int32(5), nil)
	require.NoError(t, err)
	assert.Equal(t, "5", string(buf))
}

func TestEncodeArray(t *testing.T) {
	m := newTypeMap(t)

	a, err := pgtype.ParseBox("(1,2),(3,4)")
	require.NoError(t, err)
	b, err := pgtype.ParseBox("(5,6),(7,8)")
	require.NoError(t, err)

	buf, err := m.Encode(pgtype.BoxArrayOID, pgxtype.TextFormatCode, []pgtype.Box{a, b}, nil)
	require.NoError(t, err)
	assert.Equal(t, "{(1,2),(3,4);(5,6),(7,8)}", string(buf))

	ts, err := pgtype.ParseTimestamp("2022-09-02 10:00:00")
	require.NoError(t, err)
	buf, err = m.Encode(pgtype.TimestampArrayOID, pgxtype.TextFormatCode, []pgtype.Timestamp{ts}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"2022-09-02 10:00:00"}`, string(buf))

	buf, err = m.Encode(pgtype.TimestampArrayOID, pgxtype.TextFormatCode, []pgtype.Timestamp(nil), nil)
	require.NoError(t, err)
	assert.Nil(t, buf)
}

func TestDecodeValue(t *testing.T) {
	m := newTypeMap(t)

	typ, ok := m.TypeForOID(pgtype.Int4multirangeOID)
	require.True(t, ok)
	assert.Equal(t, "int4multirange", typ.Name)

	v, err := typ.Codec.DecodeValue(m, pgtype.Int4multirangeOID, pgxtype.TextFormatCode, []byte("{[1,3)}"))
	require.NoError(t, err)
	require.IsType(t, pgtype.Multirange[pgtype.Int4]{}, v)

	dv, err := typ.Codec.DecodeDatabaseSQLValue(m, pgtype.Int4multirangeOID, pgxtype.TextFormatCode, []byte("{[1,3)}"))
	require.NoError(t, err)
	assert.Equal(t, "{[1,3)}", dv)

	assert.True(t, typ.Codec.FormatSupported(pgxtype.TextFormatCode))
	assert.False(t, typ.Codec.FormatSupported(pgxtype.BinaryFormatCode))
	assert.Equal(t, int16(pgxtype.TextFormatCode), typ.Codec.PreferredFormat())
}
