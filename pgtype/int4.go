package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"strconv"
)

type Int4 struct {
	n int32
}

type Int4Object struct {
	Int4 int64 `json:"Int4"`
}

func ParseInt4(s string) (Int4, error) {
	n, err := parseInteger("Int4", s, math.MinInt32, math.MaxInt32)
	if err != nil {
		return Int4{}, err
	}
	return Int4{n: int32(n)}, nil
}

func NewInt4(n int64) (Int4, error) {
	if err := checkInteger("Int4", n, math.MinInt32, math.MaxInt32); err != nil {
		return Int4{}, err
	}
	return Int4{n: int32(n)}, nil
}

// NewInt4FromFloat64 fails for any f with a fractional part.
func NewInt4FromFloat64(f float64) (Int4, error) {
	n, err := integerFromFloat("Int4", f, math.MinInt32, math.MaxInt32)
	if err != nil {
		return Int4{}, err
	}
	return Int4{n: int32(n)}, nil
}

func Int4FromObject(o Int4Object) (Int4, error) {
	if err := checkInteger("Int4", o.Int4, math.MinInt32, math.MaxInt32); err != nil {
		return Int4{}, withKind(err, ErrInvalidObject)
	}
	return Int4{n: int32(o.Int4)}, nil
}

func Int4From(n Int4) (Int4, error) {
	return n, nil
}

func IsInt4(v any) bool {
	switch v.(type) {
	case Int4, *Int4:
		return true
	}
	return false
}

func (n Int4) Int32() int32    { return n.n }
func (n Int4) ToNumber() int64 { return int64(n.n) }

func (n Int4) WithValue(v int64) (Int4, error) {
	return NewInt4(v)
}

func (n Int4) String() string {
	return strconv.FormatInt(int64(n.n), 10)
}

func (n Int4) Object() Int4Object {
	return Int4Object{Int4: int64(n.n)}
}

func (n Int4) Equal(other any) bool {
	switch other := other.(type) {
	case Int4:
		return n == other
	case *Int4:
		return other != nil && n == *other
	case Int4Object:
		return int64(n.n) == other.Int4
	case string:
		o, err := ParseInt4(other)
		return err == nil && n == o
	}
	if i, ok := integerOf(other); ok {
		return int64(n.n) == i
	}
	return false
}

// Compare returns -1, 0 or 1 as n is less than, equal to or greater than other.
func (n Int4) Compare(other Int4) int {
	return compareInts(int(n.n), int(other.n))
}

func (n Int4) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Object())
}

func (n *Int4) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseInt4, Int4FromObject)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (n *Int4) Scan(src any) error {
	v, err := scanInteger("Int4", src, math.MinInt32, math.MaxInt32)
	if err != nil {
		return err
	}
	*n = Int4{n: int32(v)}
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (n Int4) Value() (driver.Value, error) {
	return int64(n.n), nil
}
