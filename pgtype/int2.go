package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"strconv"
)

type Int2 struct {
	n int16
}

type Int2Object struct {
	Int2 int64 `json:"Int2"`
}

func ParseInt2(s string) (Int2, error) {
	n, err := parseInteger("Int2", s, math.MinInt16, math.MaxInt16)
	if err != nil {
		return Int2{}, err
	}
	return Int2{n: int16(n)}, nil
}

func NewInt2(n int64) (Int2, error) {
	if err := checkInteger("Int2", n, math.MinInt16, math.MaxInt16); err != nil {
		return Int2{}, err
	}
	return Int2{n: int16(n)}, nil
}

// NewInt2FromFloat64 fails for any f with a fractional part.
func NewInt2FromFloat64(f float64) (Int2, error) {
	n, err := integerFromFloat("Int2", f, math.MinInt16, math.MaxInt16)
	if err != nil {
		return Int2{}, err
	}
	return Int2{n: int16(n)}, nil
}

func Int2FromObject(o Int2Object) (Int2, error) {
	if err := checkInteger("Int2", o.Int2, math.MinInt16, math.MaxInt16); err != nil {
		return Int2{}, withKind(err, ErrInvalidObject)
	}
	return Int2{n: int16(o.Int2)}, nil
}

func Int2From(n Int2) (Int2, error) {
	return n, nil
}

func IsInt2(v any) bool {
	switch v.(type) {
	case Int2, *Int2:
		return true
	}
	return false
}

func (n Int2) Int16() int16    { return n.n }
func (n Int2) ToNumber() int64 { return int64(n.n) }

func (n Int2) WithValue(v int64) (Int2, error) {
	return NewInt2(v)
}

func (n Int2) String() string {
	return strconv.FormatInt(int64(n.n), 10)
}

func (n Int2) Object() Int2Object {
	return Int2Object{Int2: int64(n.n)}
}

func (n Int2) Equal(other any) bool {
	switch other := other.(type) {
	case Int2:
		return n == other
	case *Int2:
		return other != nil && n == *other
	case Int2Object:
		return int64(n.n) == other.Int2
	case string:
		o, err := ParseInt2(other)
		return err == nil && n == o
	}
	if i, ok := integerOf(other); ok {
		return int64(n.n) == i
	}
	return false
}

// Compare returns -1, 0 or 1 as n is less than, equal to or greater than other.
func (n Int2) Compare(other Int2) int {
	return compareInts(int(n.n), int(other.n))
}

func (n Int2) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Object())
}

func (n *Int2) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseInt2, Int2FromObject)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (n *Int2) Scan(src any) error {
	v, err := scanInteger("Int2", src, math.MinInt16, math.MaxInt16)
	if err != nil {
		return err
	}
	*n = Int2{n: int16(v)}
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (n Int2) Value() (driver.Value, error) {
	return int64(n.n), nil
}
