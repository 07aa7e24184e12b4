package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

type Connection string

const (
	ConnectionOpen   Connection = "open"
	ConnectionClosed Connection = "closed"
)

// Path is a sequence of at least one point. An open path is written (p1,...) and a closed path [p1,...].
type Path struct {
	points     []Point
	connection Connection
}

type PathObject struct {
	Points     []PointObject `json:"points"`
	Connection Connection    `json:"connection"`
}

func newPath(points []Point, connection Connection) (Path, error) {
	if len(points) == 0 {
		return Path{}, rangeError("Path", "too few points")
	}
	if connection != ConnectionOpen && connection != ConnectionClosed {
		return Path{}, rangeError("Path", "invalid connection")
	}
	return Path{points: append([]Point(nil), points...), connection: connection}, nil
}

func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Path{}, formatError("Path", "")
	}

	var connection Connection
	switch {
	case s[0] == '[' && s[len(s)-1] == ']':
		connection = ConnectionClosed
	case s[0] == '(' && s[len(s)-1] == ')':
		connection = ConnectionOpen
	default:
		return Path{}, formatError("Path", "")
	}

	points, ok := parsePointList(s[1 : len(s)-1])
	if !ok {
		return Path{}, formatError("Path", "")
	}
	return Path{points: points, connection: connection}, nil
}

func NewPath(points []Point, connection Connection) (Path, error) {
	p, err := newPath(points, connection)
	if err != nil {
		return Path{}, withKind(err, ErrInvalidArguments)
	}
	return p, nil
}

func PathFromObject(o PathObject) (Path, error) {
	points := make([]Point, len(o.Points))
	for i, p := range o.Points {
		points[i] = Point{x: p.X, y: p.Y}
	}

	p, err := newPath(points, o.Connection)
	if err != nil {
		return Path{}, withKind(err, ErrInvalidObject)
	}
	return p, nil
}

func PathFrom(p Path) (Path, error) {
	return NewPath(p.points, p.connection)
}

func IsPath(v any) bool {
	switch v.(type) {
	case Path, *Path:
		return true
	}
	return false
}

// Points returns a copy of the points of p.
func (p Path) Points() []Point {
	return append([]Point(nil), p.points...)
}

func (p Path) Connection() Connection { return p.connection }
func (p Path) Closed() bool           { return p.connection == ConnectionClosed }

func (p Path) WithPoints(points []Point) (Path, error) {
	return newPath(points, p.connection)
}

func (p Path) WithConnection(connection Connection) (Path, error) {
	return newPath(p.points, connection)
}

func (p Path) String() string {
	if p.connection == ConnectionClosed {
		return "[" + formatPointList(p.points) + "]"
	}
	return "(" + formatPointList(p.points) + ")"
}

func (p Path) Object() PathObject {
	points := make([]PointObject, len(p.points))
	for i, pt := range p.points {
		points[i] = pt.Object()
	}
	return PathObject{Points: points, Connection: p.connection}
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}

func (p Path) equal(other Path) bool {
	return p.connection == other.connection && pointsEqual(p.points, other.points)
}

func (p Path) Equal(other any) bool {
	switch other := other.(type) {
	case Path:
		return p.equal(other)
	case *Path:
		return other != nil && p.equal(*other)
	case PathObject:
		o, err := PathFromObject(other)
		return err == nil && p.equal(o)
	case string:
		o, err := ParsePath(other)
		return err == nil && p.equal(o)
	}
	return false
}

func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Object())
}

func (p *Path) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParsePath, PathFromObject)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (p *Path) Scan(src any) error {
	v, err := scanText(src, ParsePath)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (p Path) Value() (driver.Value, error) {
	return p.String(), nil
}
