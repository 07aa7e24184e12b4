package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

const numberPattern = `[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?|[+-]?(?i:infinity|inf)|(?i:nan)`

var (
	pointPattern    = `\(\s*(` + numberPattern + `)\s*,\s*(` + numberPattern + `)\s*\)`
	pointRegexp     = regexp.MustCompile(pointPattern)
	pointListRegexp = regexp.MustCompile(`^` + pointPattern + `(?:\s*,\s*` + pointPattern + `)*$`)
)

// parsePointList parses a comma separated list of (x,y) points.
func parsePointList(s string) ([]Point, bool) {
	s = strings.TrimSpace(s)
	if !pointListRegexp.MatchString(s) {
		return nil, false
	}

	matches := pointRegexp.FindAllStringSubmatch(s, -1)
	points := make([]Point, len(matches))
	for i, m := range matches {
		x, err := parseFloat(m[1])
		if err != nil {
			return nil, false
		}
		y, err := parseFloat(m[2])
		if err != nil {
			return nil, false
		}
		points[i] = Point{x: x, y: y}
	}
	return points, true
}

// parseNumberList parses exactly n comma separated numbers.
func parseNumberList(s string, n int) ([]float64, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, false
	}

	numbers := make([]float64, n)
	for i, p := range parts {
		f, err := parseFloat(p)
		if err != nil {
			return nil, false
		}
		numbers[i] = f
	}
	return numbers, true
}

func formatPointList(points []Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

// floatEqual treats NaN as equal to itself, as PostgreSQL's geometric operators do.
func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

type Point struct {
	x float64
	y float64
}

type PointObject struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ParsePoint parses (x,y). The parentheses are optional.
func ParsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		s = "(" + s + ")"
	}

	points, ok := parsePointList(s)
	if !ok || len(points) != 1 {
		return Point{}, formatError("Point", "")
	}
	return points[0], nil
}

func NewPoint(x, y float64) (Point, error) {
	return Point{x: x, y: y}, nil
}

func PointFromObject(o PointObject) (Point, error) {
	return Point{x: o.X, y: o.Y}, nil
}

func PointFrom(p Point) (Point, error) {
	return p, nil
}

func IsPoint(v any) bool {
	switch v.(type) {
	case Point, *Point:
		return true
	}
	return false
}

func (p Point) X() float64 { return p.x }
func (p Point) Y() float64 { return p.y }

func (p Point) WithX(x float64) (Point, error) {
	p.x = x
	return p, nil
}

func (p Point) WithY(y float64) (Point, error) {
	p.y = y
	return p, nil
}

func (p Point) String() string {
	return "(" + formatFloat(p.x) + "," + formatFloat(p.y) + ")"
}

func (p Point) Object() PointObject {
	return PointObject{X: p.x, Y: p.y}
}

func (p Point) equal(other Point) bool {
	return floatEqual(p.x, other.x) && floatEqual(p.y, other.y)
}

func (p Point) Equal(other any) bool {
	switch other := other.(type) {
	case Point:
		return p.equal(other)
	case *Point:
		return other != nil && p.equal(*other)
	case PointObject:
		return p.equal(Point{x: other.X, y: other.Y})
	case string:
		o, err := ParsePoint(other)
		return err == nil && p.equal(o)
	}
	return false
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Object())
}

func (p *Point) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParsePoint, PointFromObject)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (p *Point) Scan(src any) error {
	v, err := scanText(src, ParsePoint)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (p Point) Value() (driver.Value, error) {
	return p.String(), nil
}
