package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// LineSegment is the finite segment between points A and B.
type LineSegment struct {
	a, b Point
}

type LineSegmentObject struct {
	A PointObject `json:"a"`
	B PointObject `json:"b"`
}

// ParseLineSegment parses [(x1,y1),(x2,y2)]. The brackets are optional.
func ParseLineSegment(s string) (LineSegment, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}

	points, ok := parsePointList(s)
	if !ok || len(points) != 2 {
		return LineSegment{}, formatError("LineSegment", "")
	}
	return LineSegment{a: points[0], b: points[1]}, nil
}

func NewLineSegment(a, b Point) (LineSegment, error) {
	return LineSegment{a: a, b: b}, nil
}

func LineSegmentFromObject(o LineSegmentObject) (LineSegment, error) {
	return LineSegment{a: Point{x: o.A.X, y: o.A.Y}, b: Point{x: o.B.X, y: o.B.Y}}, nil
}

func LineSegmentFrom(l LineSegment) (LineSegment, error) {
	return l, nil
}

func IsLineSegment(v any) bool {
	switch v.(type) {
	case LineSegment, *LineSegment:
		return true
	}
	return false
}

func (l LineSegment) A() Point { return l.a }
func (l LineSegment) B() Point { return l.b }

func (l LineSegment) WithA(a Point) (LineSegment, error) {
	l.a = a
	return l, nil
}

func (l LineSegment) WithB(b Point) (LineSegment, error) {
	l.b = b
	return l, nil
}

func (l LineSegment) String() string {
	return "[" + l.a.String() + "," + l.b.String() + "]"
}

func (l LineSegment) Object() LineSegmentObject {
	return LineSegmentObject{A: l.a.Object(), B: l.b.Object()}
}

func (l LineSegment) equal(other LineSegment) bool {
	return l.a.equal(other.a) && l.b.equal(other.b)
}

func (l LineSegment) Equal(other any) bool {
	switch other := other.(type) {
	case LineSegment:
		return l.equal(other)
	case *LineSegment:
		return other != nil && l.equal(*other)
	case LineSegmentObject:
		o, _ := LineSegmentFromObject(other)
		return l.equal(o)
	case string:
		o, err := ParseLineSegment(other)
		return err == nil && l.equal(o)
	}
	return false
}

func (l LineSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Object())
}

func (l *LineSegment) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseLineSegment, LineSegmentFromObject)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (l *LineSegment) Scan(src any) error {
	v, err := scanText(src, ParseLineSegment)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (l LineSegment) Value() (driver.Value, error) {
	return l.String(), nil
}
