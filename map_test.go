package extpg_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/extpg/extpg"
	"github.com/extpg/extpg/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLog struct {
	lvl  extpg.LogLevel
	msg  string
	data map[string]any
}

type testLogger struct {
	logs []testLog

	mux sync.Mutex
}

func (l *testLogger) Log(ctx context.Context, level extpg.LogLevel, msg string, data map[string]any) {
	l.mux.Lock()
	defer l.mux.Unlock()

	l.logs = append(l.logs, testLog{lvl: level, msg: msg, data: data})
}

func (l *testLogger) FilterByMsg(msg string) (res []testLog) {
	l.mux.Lock()
	defer l.mux.Unlock()

	for _, log := range l.logs {
		if log.msg == msg {
			res = append(res, log)
		}
	}

	return res
}

func TestMapZeroValue(t *testing.T) {
	var m extpg.Map

	v, err := m.ParseText(pgtype.DateOID, ptr("2022-09-01"))
	require.NoError(t, err)
	assert.Equal(t, "2022-09-01", v)

	v, err = m.ParseText(pgtype.DateOID, nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, ok := m.TextParser(pgtype.DateOID)
	assert.False(t, ok)
}

func TestMapParseText(t *testing.T) {
	var m extpg.Map
	extpg.Register(&m, extpg.DefaultTypes()...)

	tests := []struct {
		oid    uint32
		src    string
		result string
	}{
		{oid: pgtype.DateOID, src: "2022-09-01", result: "2022-09-01"},
		{oid: pgtype.IntervalOID, src: "1 day 02:00:00", result: "1 day 2 hours"},
		{oid: pgtype.PointOID, src: "(1,2)", result: "(1,2)"},
		{oid: pgtype.MacaddrOID, src: "08:00:2b:01:02:03", result: "08:00:2b:01:02:03"},
		{oid: pgtype.UUIDOID, src: "A0EEBC99-9C0B-4EF8-BB6D-6BB9BD380A11", result: "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"},
		{oid: pgtype.Int8OID, src: "9223372036854775807", result: "9223372036854775807"},
		{oid: pgtype.Int4rangeOID, src: "[1,3)", result: "[1,3)"},
		{oid: pgtype.Int4multirangeOID, src: "{[1,3),[5,7)}", result: "{[1,3),[5,7)}"},
	}

	for i, tt := range tests {
		v, err := m.ParseText(tt.oid, ptr(tt.src))
		require.NoErrorf(t, err, "%d. %s", i, tt.src)
		require.Implementsf(t, (*pgtype.Value)(nil), v, "%d. %s", i, tt.src)
		assert.Equalf(t, tt.result, v.(pgtype.Value).String(), "%d. %s", i, tt.src)
	}

	// Unregistered OIDs pass through as text.
	v, err := m.ParseText(25, ptr("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = m.ParseText(pgtype.Int2OID, ptr("40000"))
	assert.ErrorIs(t, err, pgtype.ErrInvalidFormat)
}

func TestMapParseArrayText(t *testing.T) {
	var m extpg.Map
	extpg.Register(&m, extpg.DefaultTypes()...)

	v, err := m.ParseArrayText(pgtype.DateArrayOID, ptr("{2022-09-01,2022-09-02}"))
	require.NoError(t, err)
	dates, ok := v.([]pgtype.Date)
	require.True(t, ok)
	require.Len(t, dates, 2)
	assert.Equal(t, "2022-09-02", dates[1].String())

	v, err = m.ParseArrayText(pgtype.Int4rangeArrayOID, ptr(`{"[1,3)","[5,7)"}`))
	require.NoError(t, err)
	ranges, ok := v.([]pgtype.Range[pgtype.Int4])
	require.True(t, ok)
	require.Len(t, ranges, 2)
	assert.Equal(t, "[5,7)", ranges[1].String())

	v, err = m.ParseArrayText(pgtype.DateArrayOID, nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = m.ParseArrayText(pgtype.DateArrayOID, ptr("{2022-09-01,nope}"))
	assert.ErrorIs(t, err, pgtype.ErrInvalidFormat)
}

func TestMapOIDForName(t *testing.T) {
	var m extpg.Map
	extpg.Register(&m, extpg.DefaultTypes()...)

	oid, ok := m.OIDForName("tstzrange")
	require.True(t, ok)
	assert.EqualValues(t, pgtype.TstzrangeOID, oid)

	oid, ok = m.OIDForName("_box")
	require.True(t, ok)
	assert.EqualValues(t, pgtype.BoxArrayOID, oid)

	_, ok = m.OIDForName("text")
	assert.False(t, ok)
}

func TestMapLogging(t *testing.T) {
	logger := &testLogger{}
	m := &extpg.Map{Logger: logger, LogLevel: extpg.LogLevelDebug}
	extpg.Register(m, extpg.DefaultTypes()...)

	registered := logger.FilterByMsg("RegisterType")
	require.Len(t, registered, 29)
	assert.Equal(t, extpg.LogLevelDebug, registered[0].lvl)
	assert.Equal(t, "Date", registered[0].data["type"])

	_, err := m.ParseText(pgtype.MacaddrOID, ptr("08:00:2b:01:02"))
	require.Error(t, err)

	failures := logger.FilterByMsg("ParseText")
	require.Len(t, failures, 1)
	assert.Equal(t, extpg.LogLevelError, failures[0].lvl)
	assert.Equal(t, "MACAddress", failures[0].data["type"])
	assert.EqualValues(t, pgtype.MacaddrOID, failures[0].data["oid"])
	assert.Equal(t, err, failures[0].data["err"])

	_, err = m.ParseArrayText(pgtype.MacaddrArrayOID, ptr("{nope}"))
	require.Error(t, err)
	failures = logger.FilterByMsg("ParseText")
	require.Len(t, failures, 2)
	assert.Equal(t, "MACAddress[]", failures[1].data["type"])
}

func TestMapLogLevelFiltersMessages(t *testing.T) {
	logger := &testLogger{}
	m := &extpg.Map{Logger: logger, LogLevel: extpg.LogLevelError}
	extpg.Register(m, extpg.DefaultTypes()...)
	assert.Empty(t, logger.FilterByMsg("RegisterType"))

	m.LogLevel = extpg.LogLevelNone
	_, err := m.ParseText(pgtype.Int4OID, ptr("x"))
	require.Error(t, err)
	assert.Empty(t, logger.FilterByMsg("ParseText"))
}

func TestMapRegisterParsers(t *testing.T) {
	logger := &testLogger{}
	m := &extpg.Map{Logger: logger, LogLevel: extpg.LogLevelTrace}

	m.RegisterTextParser(25, func(src *string) (any, error) {
		return fmt.Sprintf("<%s>", *src), nil
	})
	m.RegisterArrayParser(1009, func(src *string) (any, error) {
		return []string{*src}, nil
	})

	v, err := m.ParseText(25, ptr("a"))
	require.NoError(t, err)
	assert.Equal(t, "<a>", v)

	v, err = m.ParseArrayText(1009, ptr("{a}"))
	require.NoError(t, err)
	assert.Equal(t, []string{"{a}"}, v)

	assert.Len(t, logger.FilterByMsg("RegisterTextParser"), 1)
	assert.Len(t, logger.FilterByMsg("RegisterArrayParser"), 1)
}

func TestMapConcurrentUse(t *testing.T) {
	var m extpg.Map
	types := extpg.DefaultTypes()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			extpg.Register(&m, types...)
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = m.ParseText(pgtype.Int4OID, ptr("1"))
			}
		}()
	}
	wg.Wait()

	v, err := m.ParseText(pgtype.Int4OID, ptr("1"))
	require.NoError(t, err)
	assert.Equal(t, "1", v.(pgtype.Int4).String())
}
