package pgtype_test

import (
	"encoding/json"
	"math/big"
	"net"
	"testing"

	"github.com/extpg/extpg/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMACAddress(t *testing.T) {
	for i, src := range []string{
		"08:00:2b:01:02:03",
		"08-00-2b-01-02-03",
		"08.00.2b.01.02.03",
		"0800.2b01.0203",
		"08002b:010203",
		"08002b-010203",
		"08002b010203",
		"08:00:2B:01:02:03",
	} {
		m, err := pgtype.ParseMACAddress(src)
		require.NoErrorf(t, err, "%d: %q", i, src)
		assert.Equalf(t, "08:00:2b:01:02:03", m.String(), "%d", i)
		assert.Equalf(t, uint64(8796814508547), m.ToLong(), "%d", i)
	}

	_, err := pgtype.ParseMACAddress("08:00:2b:01:02:03:04")
	assert.EqualError(t, err, "invalid MACAddress string: too many octets")

	_, err = pgtype.ParseMACAddress("08:00:2b:01:02")
	assert.EqualError(t, err, "invalid MACAddress string: too few octets")

	for i, src := range []string{"", "08:00:2b:01:02:0g", "8:0:2b:1:2:3", "08:00:2b:01:02:03:"} {
		_, err := pgtype.ParseMACAddress(src)
		assert.ErrorIsf(t, err, pgtype.ErrInvalidFormat, "%d: %q", i, src)
	}
}

func TestMACAddressIntegers(t *testing.T) {
	m, err := pgtype.NewMACAddressFromUint64(8796814508547)
	require.NoError(t, err)
	assert.Equal(t, "08:00:2b:01:02:03", m.String())

	m, err = pgtype.NewMACAddressFromUint64(1<<48 - 1)
	require.NoError(t, err)
	assert.Equal(t, "ff:ff:ff:ff:ff:ff", m.String())

	_, err = pgtype.NewMACAddressFromUint64(1 << 48)
	require.ErrorIs(t, err, pgtype.ErrOutOfRange)
	assert.Contains(t, err.Error(), "must be 48-bit")

	_, err = pgtype.NewMACAddressFromInt64(-1)
	assert.ErrorIs(t, err, pgtype.ErrOutOfRange)
}

func TestMACAddress(t *testing.T) {
	hw, err := net.ParseMAC("08:00:2b:01:02:03")
	require.NoError(t, err)

	m, err := pgtype.NewMACAddress(hw)
	require.NoError(t, err)
	assert.Equal(t, hw, m.HardwareAddr())
	assert.True(t, m.Equal("08-00-2B-01-02-03"))
	assert.True(t, m.Equal(pgtype.MACAddressObject{MACAddress: "08:00:2b:01:02:03"}))

	_, err = pgtype.NewMACAddress(hw[:5])
	assert.ErrorIs(t, err, pgtype.ErrInvalidArguments)

	_, err = pgtype.MACAddressFromObject(pgtype.MACAddressObject{MACAddress: "nope"})
	assert.ErrorIs(t, err, pgtype.ErrInvalidObject)

	buf, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"MACAddress":"08:00:2b:01:02:03"}`, string(buf))

	var decoded pgtype.MACAddress
	require.NoError(t, json.Unmarshal(buf, &decoded))
	assert.Equal(t, m, decoded)
}

func TestParseMACAddress8(t *testing.T) {
	for i, src := range []string{
		"08:00:2b:01:02:03:04:05",
		"08-00-2b-01-02-03-04-05",
		"0800.2b01.0203.0405",
		"08002b0102030405",
	} {
		m, err := pgtype.ParseMACAddress8(src)
		require.NoErrorf(t, err, "%d: %q", i, src)
		assert.Equalf(t, "08:00:2b:01:02:03:04:05", m.String(), "%d", i)
	}

	_, err := pgtype.ParseMACAddress8("08:00:2b:01:02:03")
	assert.EqualError(t, err, "invalid MACAddress8 string: too few octets")

	_, err = pgtype.ParseMACAddress8("08:00:2b:01:02:03:04:05:06")
	assert.EqualError(t, err, "invalid MACAddress8 string: too many octets")
}

func TestMACAddress8Conversions(t *testing.T) {
	m, err := pgtype.ParseMACAddress("08:00:2b:01:02:03")
	require.NoError(t, err)

	m8 := pgtype.MACAddress8FromMACAddress(m)
	assert.Equal(t, "08:00:2b:ff:fe:01:02:03", m8.String())
	assert.Equal(t, uint64(576509130781557251), m8.ToLong())
	assert.Equal(t, big.NewInt(576509130781557251), m8.ToBigInt())

	back, err := m8.ToMACAddress()
	require.NoError(t, err)
	assert.Equal(t, m, back)

	other, err := pgtype.ParseMACAddress8("08:00:2b:01:02:03:04:05")
	require.NoError(t, err)
	_, err = other.ToMACAddress()
	assert.ErrorIs(t, err, pgtype.ErrOutOfRange)

	max, err := pgtype.NewMACAddress8FromBigInt(new(big.Int).SetUint64(1<<64 - 1))
	require.NoError(t, err)
	assert.Equal(t, "ff:ff:ff:ff:ff:ff:ff:ff", max.String())

	_, err = pgtype.NewMACAddress8FromBigInt(new(big.Int).Lsh(big.NewInt(1), 64))
	require.ErrorIs(t, err, pgtype.ErrOutOfRange)
	assert.Contains(t, err.Error(), "must be 64-bit")

	_, err = pgtype.NewMACAddress8FromBigInt(big.NewInt(-1))
	assert.ErrorIs(t, err, pgtype.ErrOutOfRange)

	buf, err := json.Marshal(m8)
	require.NoError(t, err)
	assert.JSONEq(t, `{"MACAddress8":"08:00:2b:ff:fe:01:02:03"}`, string(buf))
}
