package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"regexp"
)

// Circle is a center point and a non-negative radius.
type Circle struct {
	x, y   float64
	radius float64
}

type CircleObject struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

var circleRegexp = regexp.MustCompile(`^\s*<\s*(` + pointPattern + `)\s*,\s*(` + numberPattern + `)\s*>\s*$`)

func validateRadius(radius float64) error {
	if radius < 0 || math.IsNaN(radius) {
		return rangeError("Circle", "radius must not be negative")
	}
	return nil
}

// ParseCircle parses <(x,y),r>.
func ParseCircle(s string) (Circle, error) {
	m := circleRegexp.FindStringSubmatch(s)
	if m == nil {
		return Circle{}, formatError("Circle", "")
	}

	center, err := ParsePoint(m[1])
	if err != nil {
		return Circle{}, formatError("Circle", "")
	}
	radius, err := parseFloat(m[4])
	if err != nil {
		return Circle{}, formatErrorf("Circle", err, "")
	}
	if err := validateRadius(radius); err != nil {
		return Circle{}, withKind(err, ErrInvalidFormat)
	}
	return Circle{x: center.x, y: center.y, radius: radius}, nil
}

func NewCircle(x, y, radius float64) (Circle, error) {
	if err := validateRadius(radius); err != nil {
		return Circle{}, withKind(err, ErrInvalidArguments)
	}
	return Circle{x: x, y: y, radius: radius}, nil
}

func CircleFromObject(o CircleObject) (Circle, error) {
	if err := validateRadius(o.Radius); err != nil {
		return Circle{}, withKind(err, ErrInvalidObject)
	}
	return Circle{x: o.X, y: o.Y, radius: o.Radius}, nil
}

func CircleFrom(c Circle) (Circle, error) {
	return NewCircle(c.x, c.y, c.radius)
}

func IsCircle(v any) bool {
	switch v.(type) {
	case Circle, *Circle:
		return true
	}
	return false
}

func (c Circle) X() float64      { return c.x }
func (c Circle) Y() float64      { return c.y }
func (c Circle) Radius() float64 { return c.radius }
func (c Circle) Center() Point   { return Point{x: c.x, y: c.y} }

func (c Circle) WithX(x float64) (Circle, error) {
	c.x = x
	return c, nil
}

func (c Circle) WithY(y float64) (Circle, error) {
	c.y = y
	return c, nil
}

func (c Circle) WithRadius(radius float64) (Circle, error) {
	if err := validateRadius(radius); err != nil {
		return c, err
	}
	c.radius = radius
	return c, nil
}

func (c Circle) String() string {
	return "<" + c.Center().String() + "," + formatFloat(c.radius) + ">"
}

func (c Circle) Object() CircleObject {
	return CircleObject{X: c.x, Y: c.y, Radius: c.radius}
}

func (c Circle) equal(other Circle) bool {
	return floatEqual(c.x, other.x) && floatEqual(c.y, other.y) && floatEqual(c.radius, other.radius)
}

func (c Circle) Equal(other any) bool {
	switch other := other.(type) {
	case Circle:
		return c.equal(other)
	case *Circle:
		return other != nil && c.equal(*other)
	case CircleObject:
		return c.equal(Circle{x: other.X, y: other.Y, radius: other.Radius})
	case string:
		o, err := ParseCircle(other)
		return err == nil && c.equal(o)
	}
	return false
}

func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Object())
}

func (c *Circle) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseCircle, CircleFromObject)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (c *Circle) Scan(src any) error {
	v, err := scanText(src, ParseCircle)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (c Circle) Value() (driver.Value, error) {
	return c.String(), nil
}
