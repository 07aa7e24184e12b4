package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// Line is the infinite line ax + by + c = 0.
type Line struct {
	a, b, c float64
}

type LineObject struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

func validateLine(a, b float64) error {
	if a == 0 && b == 0 {
		return rangeError("Line", "a and b cannot both be zero")
	}
	return nil
}

// ParseLine parses {a,b,c}.
func ParseLine(s string) (Line, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return Line{}, formatError("Line", "")
	}

	n, ok := parseNumberList(s[1:len(s)-1], 3)
	if !ok {
		return Line{}, formatError("Line", "")
	}
	if err := validateLine(n[0], n[1]); err != nil {
		return Line{}, withKind(err, ErrInvalidFormat)
	}
	return Line{a: n[0], b: n[1], c: n[2]}, nil
}

func NewLine(a, b, c float64) (Line, error) {
	if err := validateLine(a, b); err != nil {
		return Line{}, withKind(err, ErrInvalidArguments)
	}
	return Line{a: a, b: b, c: c}, nil
}

func LineFromObject(o LineObject) (Line, error) {
	if err := validateLine(o.A, o.B); err != nil {
		return Line{}, withKind(err, ErrInvalidObject)
	}
	return Line{a: o.A, b: o.B, c: o.C}, nil
}

// NewLineFromPoints returns the line through p and q.
func NewLineFromPoints(p, q Point) (Line, error) {
	a := q.y - p.y
	b := p.x - q.x
	c := -a*p.x - b*p.y
	if err := validateLine(a, b); err != nil {
		return Line{}, withKind(err, ErrInvalidArguments)
	}
	return Line{a: a, b: b, c: c}, nil
}

func LineFrom(l Line) (Line, error) {
	return NewLine(l.a, l.b, l.c)
}

func IsLine(v any) bool {
	switch v.(type) {
	case Line, *Line:
		return true
	}
	return false
}

func (l Line) A() float64 { return l.a }
func (l Line) B() float64 { return l.b }
func (l Line) C() float64 { return l.c }

func (l Line) WithA(a float64) (Line, error) {
	if err := validateLine(a, l.b); err != nil {
		return l, err
	}
	l.a = a
	return l, nil
}

func (l Line) WithB(b float64) (Line, error) {
	if err := validateLine(l.a, b); err != nil {
		return l, err
	}
	l.b = b
	return l, nil
}

func (l Line) WithC(c float64) (Line, error) {
	l.c = c
	return l, nil
}

func (l Line) String() string {
	return "{" + formatFloat(l.a) + "," + formatFloat(l.b) + "," + formatFloat(l.c) + "}"
}

func (l Line) Object() LineObject {
	return LineObject{A: l.a, B: l.b, C: l.c}
}

func (l Line) equal(other Line) bool {
	return floatEqual(l.a, other.a) && floatEqual(l.b, other.b) && floatEqual(l.c, other.c)
}

func (l Line) Equal(other any) bool {
	switch other := other.(type) {
	case Line:
		return l.equal(other)
	case *Line:
		return other != nil && l.equal(*other)
	case LineObject:
		return l.equal(Line{a: other.A, b: other.B, c: other.C})
	case string:
		o, err := ParseLine(other)
		return err == nil && l.equal(o)
	}
	return false
}

func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Object())
}

func (l *Line) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseLine, LineFromObject)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (l *Line) Scan(src any) error {
	v, err := scanText(src, ParseLine)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (l Line) Value() (driver.Value, error) {
	return l.String(), nil
}
