package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
)

type Int8 struct {
	n int64
}

type Int8Object struct {
	Int8 int64 `json:"int8"`
}

func ParseInt8(s string) (Int8, error) {
	n, err := parseInteger("Int8", s, math.MinInt64, math.MaxInt64)
	if err != nil {
		return Int8{}, err
	}
	return Int8{n: n}, nil
}

func NewInt8(n int64) (Int8, error) {
	if err := checkInteger("Int8", n, math.MinInt64, math.MaxInt64); err != nil {
		return Int8{}, err
	}
	return Int8{n: n}, nil
}

// NewInt8FromFloat64 fails for any f with a fractional part.
func NewInt8FromFloat64(f float64) (Int8, error) {
	n, err := integerFromFloat("Int8", f, math.MinInt64, math.MaxInt64)
	if err != nil {
		return Int8{}, err
	}
	return Int8{n: n}, nil
}

// NewInt8FromBigInt fails unless n fits in a signed 64-bit integer.
func NewInt8FromBigInt(n *big.Int) (Int8, error) {
	if n == nil {
		return Int8{}, argumentsError("Int8", "nil big.Int")
	}
	if !n.IsInt64() {
		return Int8{}, integerRangeError("Int8", math.MinInt64, math.MaxInt64)
	}
	return Int8{n: n.Int64()}, nil
}

func Int8FromObject(o Int8Object) (Int8, error) {
	if err := checkInteger("Int8", o.Int8, math.MinInt64, math.MaxInt64); err != nil {
		return Int8{}, withKind(err, ErrInvalidObject)
	}
	return Int8{n: o.Int8}, nil
}

func Int8From(n Int8) (Int8, error) {
	return n, nil
}

func IsInt8(v any) bool {
	switch v.(type) {
	case Int8, *Int8:
		return true
	}
	return false
}

func (n Int8) Int64() int64    { return n.n }
func (n Int8) ToNumber() int64 { return n.n }

func (n Int8) ToBigInt() *big.Int {
	return big.NewInt(n.n)
}

func (n Int8) WithValue(v int64) (Int8, error) {
	return NewInt8(v)
}

func (n Int8) String() string {
	return strconv.FormatInt(n.n, 10)
}

func (n Int8) Object() Int8Object {
	return Int8Object{Int8: n.n}
}

func (n Int8) Equal(other any) bool {
	switch other := other.(type) {
	case Int8:
		return n == other
	case *Int8:
		return other != nil && n == *other
	case Int8Object:
		return n.n == other.Int8
	case string:
		o, err := ParseInt8(other)
		return err == nil && n == o
	case *big.Int:
		return other != nil && other.IsInt64() && other.Int64() == n.n
	}
	if i, ok := integerOf(other); ok {
		return n.n == i
	}
	return false
}

// Compare returns -1, 0 or 1 as n is less than, equal to or greater than other.
func (n Int8) Compare(other Int8) int {
	switch {
	case n.n < other.n:
		return -1
	case n.n > other.n:
		return 1
	}
	return 0
}

func (n Int8) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Object())
}

func (n *Int8) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseInt8, Int8FromObject)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (n *Int8) Scan(src any) error {
	v, err := scanInteger("Int8", src, math.MinInt64, math.MaxInt64)
	if err != nil {
		return err
	}
	*n = Int8{n: v}
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (n Int8) Value() (driver.Value, error) {
	return n.n, nil
}
