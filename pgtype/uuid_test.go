package pgtype_test

import (
	"encoding/json"
	"testing"

	"github.com/extpg/extpg/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUID(t *testing.T) {
	for i, src := range []string{
		"00010203-0405-0607-0809-0a0b0c0d0e0f",
		"00010203-0405-0607-0809-0A0B0C0D0E0F",
	} {
		u, err := pgtype.ParseUUID(src)
		require.NoErrorf(t, err, "%d: %q", i, src)
		assert.Equalf(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", u.String(), "%d", i)
		assert.Equalf(t, [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, u.Bytes(), "%d", i)
	}

	for i, src := range []string{
		"",
		"000102030405060708090a0b0c0d0e0f",
		"{00010203-0405-0607-0809-0a0b0c0d0e0f}",
		"urn:uuid:00010203-0405-0607-0809-0a0b0c0d0e0f",
		"00010203-0405-0607-0809-0a0b0c0d0e0g",
	} {
		_, err := pgtype.ParseUUID(src)
		assert.ErrorIsf(t, err, pgtype.ErrInvalidFormat, "%d: %q", i, src)
	}
}

func TestGenerateUUID(t *testing.T) {
	a, err := pgtype.GenerateUUID()
	require.NoError(t, err)
	b, err := pgtype.GenerateUUID()
	require.NoError(t, err)

	assert.Equal(t, byte(4), a.Version())
	assert.False(t, a.Equal(b))
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, a.String())
}

func TestUUID(t *testing.T) {
	u, err := pgtype.NewUUID([16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	require.NoError(t, err)

	assert.True(t, u.Equal("00010203-0405-0607-0809-0A0B0C0D0E0F"))
	assert.True(t, u.Equal(pgtype.UUIDObject{UUID: "00010203-0405-0607-0809-0a0b0c0d0e0f"}))
	assert.True(t, pgtype.IsUUID(&u))
	assert.False(t, pgtype.IsUUID("00010203-0405-0607-0809-0a0b0c0d0e0f"))

	buf, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"00010203-0405-0607-0809-0a0b0c0d0e0f"}`, string(buf))

	var decoded pgtype.UUID
	require.NoError(t, json.Unmarshal(buf, &decoded))
	assert.Equal(t, u, decoded)

	var scanned pgtype.UUID
	require.NoError(t, scanned.Scan("00010203-0405-0607-0809-0a0b0c0d0e0f"))
	assert.Equal(t, u, scanned)
	require.NoError(t, scanned.Scan(u.Bytes()))
	assert.Equal(t, u, scanned)
}
