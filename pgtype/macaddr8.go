package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"math/big"
	"net"
)

// MACAddress8 is a 64-bit EUI-64 hardware address.
type MACAddress8 struct {
	octets [8]byte
}

type MACAddress8Object struct {
	MACAddress8 string `json:"MACAddress8"`
}

func ParseMACAddress8(s string) (MACAddress8, error) {
	octets, err := parseMACOctets("MACAddress8", s, 8)
	if err != nil {
		return MACAddress8{}, err
	}

	var m MACAddress8
	copy(m.octets[:], octets)
	return m, nil
}

func NewMACAddress8FromUint64(n uint64) (MACAddress8, error) {
	var m MACAddress8
	uint64ToMAC(n, m.octets[:])
	return m, nil
}

// NewMACAddress8FromBigInt returns the address whose octets are the big-endian bytes of n. n must fit in an
// unsigned 64-bit integer.
func NewMACAddress8FromBigInt(n *big.Int) (MACAddress8, error) {
	if n == nil || n.Sign() < 0 || n.BitLen() > 64 {
		return MACAddress8{}, rangeError("MACAddress8", "must be 64-bit")
	}
	return NewMACAddress8FromUint64(n.Uint64())
}

func NewMACAddress8(addr net.HardwareAddr) (MACAddress8, error) {
	switch {
	case len(addr) > 8:
		return MACAddress8{}, argumentsError("MACAddress8", "too many octets")
	case len(addr) < 8:
		return MACAddress8{}, argumentsError("MACAddress8", "too few octets")
	}

	var m MACAddress8
	copy(m.octets[:], addr)
	return m, nil
}

// MACAddress8FromMACAddress converts an EUI-48 address to EUI-64 by inserting ff:fe after the third octet, as
// PostgreSQL's macaddr to macaddr8 cast does.
func MACAddress8FromMACAddress(addr MACAddress) MACAddress8 {
	var m MACAddress8
	copy(m.octets[:3], addr.octets[:3])
	m.octets[3] = 0xff
	m.octets[4] = 0xfe
	copy(m.octets[5:], addr.octets[3:])
	return m
}

func MACAddress8FromObject(o MACAddress8Object) (MACAddress8, error) {
	m, err := ParseMACAddress8(o.MACAddress8)
	if err != nil {
		return MACAddress8{}, withKind(err, ErrInvalidObject)
	}
	return m, nil
}

func MACAddress8From(m MACAddress8) (MACAddress8, error) {
	return m, nil
}

func IsMACAddress8(v any) bool {
	switch v.(type) {
	case MACAddress8, *MACAddress8:
		return true
	}
	return false
}

// MACAddress8 returns the canonical text of m.
func (m MACAddress8) MACAddress8() string {
	return m.String()
}

func (m MACAddress8) WithMACAddress8(s string) (MACAddress8, error) {
	return ParseMACAddress8(s)
}

func (m MACAddress8) HardwareAddr() net.HardwareAddr {
	return append(net.HardwareAddr(nil), m.octets[:]...)
}

// ToMACAddress returns the EUI-48 address m was derived from. It fails unless the fourth and fifth octets are ff:fe.
func (m MACAddress8) ToMACAddress() (MACAddress, error) {
	if m.octets[3] != 0xff || m.octets[4] != 0xfe {
		return MACAddress{}, rangeError("MACAddress", "not derived from a 48-bit address")
	}

	var addr MACAddress
	copy(addr.octets[:3], m.octets[:3])
	copy(addr.octets[3:], m.octets[5:])
	return addr, nil
}

func (m MACAddress8) ToLong() uint64 {
	return macToUint64(m.octets[:])
}

func (m MACAddress8) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(m.ToLong())
}

func (m MACAddress8) String() string {
	return formatMAC(m.octets[:])
}

func (m MACAddress8) Object() MACAddress8Object {
	return MACAddress8Object{MACAddress8: m.String()}
}

func (m MACAddress8) Equal(other any) bool {
	switch other := other.(type) {
	case MACAddress8:
		return m == other
	case *MACAddress8:
		return other != nil && m == *other
	case MACAddress8Object:
		o, err := MACAddress8FromObject(other)
		return err == nil && m == o
	case string:
		o, err := ParseMACAddress8(other)
		return err == nil && m == o
	}
	return false
}

func (m MACAddress8) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Object())
}

func (m *MACAddress8) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseMACAddress8, MACAddress8FromObject)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (m *MACAddress8) Scan(src any) error {
	v, err := scanText(src, ParseMACAddress8)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (m MACAddress8) Value() (driver.Value, error) {
	return m.String(), nil
}
