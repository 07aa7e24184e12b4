package pgtype

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"net"
	"regexp"
	"strings"
)

var macRegexp = regexp.MustCompile(`^[0-9a-fA-F]{2}(?:[:.-]?[0-9a-fA-F]{2})*$`)

// parseMACOctets parses hex octets optionally separated by colons, hyphens or dots. Any of 08:00:2b:01:02:03,
// 08-00-2b-01-02-03, 08.00.2b.01.02.03, 0800.2b01.0203, 08002b:010203 and 08002b010203 is accepted.
func parseMACOctets(typeName, s string, n int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !macRegexp.MatchString(s) {
		return nil, formatError(typeName, "")
	}

	digits := strings.NewReplacer(":", "", "-", "", ".", "").Replace(s)
	switch {
	case len(digits) > n*2:
		return nil, formatError(typeName, "too many octets")
	case len(digits) < n*2:
		return nil, formatError(typeName, "too few octets")
	}

	octets, err := hex.DecodeString(digits)
	if err != nil {
		return nil, formatErrorf(typeName, err, "")
	}
	return octets, nil
}

func formatMAC(octets []byte) string {
	var sb strings.Builder
	for i, b := range octets {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(hex.EncodeToString([]byte{b}))
	}
	return sb.String()
}

func macToUint64(octets []byte) uint64 {
	var n uint64
	for _, b := range octets {
		n = n<<8 | uint64(b)
	}
	return n
}

func uint64ToMAC(n uint64, octets []byte) {
	for i := len(octets) - 1; i >= 0; i-- {
		octets[i] = byte(n)
		n >>= 8
	}
}

// MACAddress is a 48-bit EUI-48 hardware address.
type MACAddress struct {
	octets [6]byte
}

type MACAddressObject struct {
	MACAddress string `json:"MACAddress"`
}

func ParseMACAddress(s string) (MACAddress, error) {
	octets, err := parseMACOctets("MACAddress", s, 6)
	if err != nil {
		return MACAddress{}, err
	}

	var m MACAddress
	copy(m.octets[:], octets)
	return m, nil
}

// NewMACAddressFromUint64 returns the address whose octets are the big-endian bytes of n. n must fit in 48 bits.
func NewMACAddressFromUint64(n uint64) (MACAddress, error) {
	if n >= 1<<48 {
		return MACAddress{}, rangeError("MACAddress", "must be 48-bit")
	}

	var m MACAddress
	uint64ToMAC(n, m.octets[:])
	return m, nil
}

// NewMACAddressFromInt64 is NewMACAddressFromUint64 for signed input. Negative numbers are out of range.
func NewMACAddressFromInt64(n int64) (MACAddress, error) {
	if n < 0 {
		return MACAddress{}, rangeError("MACAddress", "must be 48-bit")
	}
	return NewMACAddressFromUint64(uint64(n))
}

func NewMACAddress(addr net.HardwareAddr) (MACAddress, error) {
	switch {
	case len(addr) > 6:
		return MACAddress{}, argumentsError("MACAddress", "too many octets")
	case len(addr) < 6:
		return MACAddress{}, argumentsError("MACAddress", "too few octets")
	}

	var m MACAddress
	copy(m.octets[:], addr)
	return m, nil
}

func MACAddressFromObject(o MACAddressObject) (MACAddress, error) {
	m, err := ParseMACAddress(o.MACAddress)
	if err != nil {
		return MACAddress{}, withKind(err, ErrInvalidObject)
	}
	return m, nil
}

func MACAddressFrom(m MACAddress) (MACAddress, error) {
	return m, nil
}

func IsMACAddress(v any) bool {
	switch v.(type) {
	case MACAddress, *MACAddress:
		return true
	}
	return false
}

// MACAddress returns the canonical text of m.
func (m MACAddress) MACAddress() string {
	return m.String()
}

func (m MACAddress) WithMACAddress(s string) (MACAddress, error) {
	return ParseMACAddress(s)
}

func (m MACAddress) HardwareAddr() net.HardwareAddr {
	return append(net.HardwareAddr(nil), m.octets[:]...)
}

func (m MACAddress) ToLong() uint64 {
	return macToUint64(m.octets[:])
}

func (m MACAddress) String() string {
	return formatMAC(m.octets[:])
}

func (m MACAddress) Object() MACAddressObject {
	return MACAddressObject{MACAddress: m.String()}
}

func (m MACAddress) Equal(other any) bool {
	switch other := other.(type) {
	case MACAddress:
		return m == other
	case *MACAddress:
		return other != nil && m == *other
	case MACAddressObject:
		o, err := MACAddressFromObject(other)
		return err == nil && m == o
	case string:
		o, err := ParseMACAddress(other)
		return err == nil && m == o
	}
	return false
}

func (m MACAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Object())
}

func (m *MACAddress) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseMACAddress, MACAddressFromObject)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (m *MACAddress) Scan(src any) error {
	v, err := scanText(src, ParseMACAddress)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (m MACAddress) Value() (driver.Value, error) {
	return m.String(), nil
}
