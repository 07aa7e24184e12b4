package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// Polygon is a closed figure of at least one point.
type Polygon struct {
	points []Point
}

type PolygonObject struct {
	Points []PointObject `json:"points"`
}

func newPolygon(points []Point) (Polygon, error) {
	if len(points) == 0 {
		return Polygon{}, rangeError("Polygon", "too few points")
	}
	return Polygon{points: append([]Point(nil), points...)}, nil
}

func ParsePolygon(s string) (Polygon, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Polygon{}, formatError("Polygon", "")
	}

	points, ok := parsePointList(s[1 : len(s)-1])
	if !ok {
		return Polygon{}, formatError("Polygon", "")
	}
	return Polygon{points: points}, nil
}

func NewPolygon(points ...Point) (Polygon, error) {
	p, err := newPolygon(points)
	if err != nil {
		return Polygon{}, withKind(err, ErrInvalidArguments)
	}
	return p, nil
}

func PolygonFromObject(o PolygonObject) (Polygon, error) {
	points := make([]Point, len(o.Points))
	for i, p := range o.Points {
		points[i] = Point{x: p.X, y: p.Y}
	}

	p, err := newPolygon(points)
	if err != nil {
		return Polygon{}, withKind(err, ErrInvalidObject)
	}
	return p, nil
}

func PolygonFrom(p Polygon) (Polygon, error) {
	return NewPolygon(p.points...)
}

func IsPolygon(v any) bool {
	switch v.(type) {
	case Polygon, *Polygon:
		return true
	}
	return false
}

// Points returns a copy of the vertices of p.
func (p Polygon) Points() []Point {
	return append([]Point(nil), p.points...)
}

func (p Polygon) WithPoints(points []Point) (Polygon, error) {
	return newPolygon(points)
}

func (p Polygon) String() string {
	return "(" + formatPointList(p.points) + ")"
}

func (p Polygon) Object() PolygonObject {
	points := make([]PointObject, len(p.points))
	for i, pt := range p.points {
		points[i] = pt.Object()
	}
	return PolygonObject{Points: points}
}

func (p Polygon) Equal(other any) bool {
	switch other := other.(type) {
	case Polygon:
		return pointsEqual(p.points, other.points)
	case *Polygon:
		return other != nil && pointsEqual(p.points, other.points)
	case []Point:
		return pointsEqual(p.points, other)
	case PolygonObject:
		o, err := PolygonFromObject(other)
		return err == nil && pointsEqual(p.points, o.points)
	case string:
		o, err := ParsePolygon(other)
		return err == nil && pointsEqual(p.points, o.points)
	}
	return false
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Object())
}

func (p *Polygon) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParsePolygon, PolygonFromObject)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (p *Polygon) Scan(src any) error {
	v, err := scanText(src, ParsePolygon)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (p Polygon) Value() (driver.Value, error) {
	return p.String(), nil
}
