package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// Box is a rectangle given by two opposite corners. Corners are kept in the order given; PostgreSQL itself always
// returns the upper right corner first.
type Box struct {
	x1, y1 float64
	x2, y2 float64
}

type BoxObject struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// ParseBox parses (x1,y1),(x2,y2).
func ParseBox(s string) (Box, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "((") && strings.HasSuffix(s, "))") {
		s = s[1 : len(s)-1]
	}

	points, ok := parsePointList(s)
	if !ok || len(points) != 2 {
		return Box{}, formatError("Box", "")
	}
	return Box{x1: points[0].x, y1: points[0].y, x2: points[1].x, y2: points[1].y}, nil
}

func NewBox(x1, y1, x2, y2 float64) (Box, error) {
	return Box{x1: x1, y1: y1, x2: x2, y2: y2}, nil
}

// NewBoxFromPoints returns the box with corners a and b.
func NewBoxFromPoints(a, b Point) (Box, error) {
	return NewBox(a.x, a.y, b.x, b.y)
}

func BoxFromObject(o BoxObject) (Box, error) {
	return NewBox(o.X1, o.Y1, o.X2, o.Y2)
}

func BoxFrom(b Box) (Box, error) {
	return b, nil
}

func IsBox(v any) bool {
	switch v.(type) {
	case Box, *Box:
		return true
	}
	return false
}

func (b Box) X1() float64 { return b.x1 }
func (b Box) Y1() float64 { return b.y1 }
func (b Box) X2() float64 { return b.x2 }
func (b Box) Y2() float64 { return b.y2 }

func (b Box) WithX1(x1 float64) (Box, error) {
	b.x1 = x1
	return b, nil
}

func (b Box) WithY1(y1 float64) (Box, error) {
	b.y1 = y1
	return b, nil
}

func (b Box) WithX2(x2 float64) (Box, error) {
	b.x2 = x2
	return b, nil
}

func (b Box) WithY2(y2 float64) (Box, error) {
	b.y2 = y2
	return b, nil
}

// ArrayDelimiter returns the element delimiter of box arrays. Boxes contain commas, so PostgreSQL separates them
// with a semicolon.
func (Box) ArrayDelimiter() string {
	return ";"
}

func (b Box) String() string {
	return Point{x: b.x1, y: b.y1}.String() + "," + Point{x: b.x2, y: b.y2}.String()
}

func (b Box) Object() BoxObject {
	return BoxObject{X1: b.x1, Y1: b.y1, X2: b.x2, Y2: b.y2}
}

func (b Box) equal(other Box) bool {
	return floatEqual(b.x1, other.x1) && floatEqual(b.y1, other.y1) &&
		floatEqual(b.x2, other.x2) && floatEqual(b.y2, other.y2)
}

func (b Box) Equal(other any) bool {
	switch other := other.(type) {
	case Box:
		return b.equal(other)
	case *Box:
		return other != nil && b.equal(*other)
	case BoxObject:
		return b.equal(Box{x1: other.X1, y1: other.Y1, x2: other.X2, y2: other.Y2})
	case string:
		o, err := ParseBox(other)
		return err == nil && b.equal(o)
	}
	return false
}

func (b Box) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Object())
}

func (b *Box) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseBox, BoxFromObject)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (b *Box) Scan(src any) error {
	v, err := scanText(src, ParseBox)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (b Box) Value() (driver.Value, error) {
	return b.String(), nil
}
