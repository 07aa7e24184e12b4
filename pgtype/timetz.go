package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"regexp"
	"time"
)

// TimeTZ is a time of day with a UTC offset. As with Time, String and Equal work at whole-second precision.
type TimeTZ struct {
	clock  Time
	offset Offset
}

type TimeTZObject struct {
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
	Offset Offset  `json:"offset"`
}

var timeTZRegexp = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(?:\.(\d+))?\s*([+-][\d:]+|[A-Za-z]+)$`)

func ParseTimeTZ(s string) (TimeTZ, error) {
	m := timeTZRegexp.FindStringSubmatch(s)
	if m == nil {
		return TimeTZ{}, formatError("TimeTZ", "")
	}

	clock, err := parseClock("TimeTZ", m[1], m[2], m[3], m[4])
	if err != nil {
		return TimeTZ{}, err
	}
	offset, err := parseZone("TimeTZ", m[5])
	if err != nil {
		return TimeTZ{}, err
	}
	return TimeTZ{clock: clock, offset: offset}, nil
}

func newTimeTZ(hour, minute int, second float64, offset Offset) (TimeTZ, error) {
	clock, err := newClock("TimeTZ", hour, minute, second)
	if err != nil {
		return TimeTZ{}, err
	}
	if err := offset.validate("TimeTZ"); err != nil {
		return TimeTZ{}, err
	}
	return TimeTZ{clock: clock, offset: offset}, nil
}

func NewTimeTZ(hour, minute int, second float64, offsetHour, offsetMinute int, direction Direction) (TimeTZ, error) {
	t, err := newTimeTZ(hour, minute, second, Offset{Hour: offsetHour, Minute: offsetMinute, Direction: direction})
	if err != nil {
		return TimeTZ{}, withKind(err, ErrInvalidArguments)
	}
	return t, nil
}

func TimeTZFromObject(o TimeTZObject) (TimeTZ, error) {
	t, err := newTimeTZ(o.Hour, o.Minute, o.Second, o.Offset)
	if err != nil {
		return TimeTZ{}, withKind(err, ErrInvalidObject)
	}
	return t, nil
}

// TimeTZFromTime returns the wall clock time of t with the offset of t's location.
func TimeTZFromTime(t time.Time) (TimeTZ, error) {
	clock, _ := TimeFromTime(t)
	offset := offsetOf(t)
	if err := offset.validate("TimeTZ"); err != nil {
		return TimeTZ{}, err
	}
	return TimeTZ{clock: clock, offset: offset}, nil
}

func TimeTZFrom(t TimeTZ) (TimeTZ, error) {
	return newTimeTZ(t.clock.hour, t.clock.minute, t.clock.Second(), t.offset)
}

func IsTimeTZ(v any) bool {
	switch v.(type) {
	case TimeTZ, *TimeTZ:
		return true
	}
	return false
}

func (t TimeTZ) Hour() int       { return t.clock.hour }
func (t TimeTZ) Minute() int     { return t.clock.minute }
func (t TimeTZ) Second() float64 { return t.clock.Second() }
func (t TimeTZ) Offset() Offset  { return t.offset }

// Time returns the time of day without the offset.
func (t TimeTZ) Time() Time { return t.clock }

func (t TimeTZ) WithHour(hour int) (TimeTZ, error) {
	clock, err := t.clock.WithHour(hour)
	if err != nil {
		return t, withTypeName(err, "TimeTZ")
	}
	t.clock = clock
	return t, nil
}

func (t TimeTZ) WithMinute(minute int) (TimeTZ, error) {
	clock, err := t.clock.WithMinute(minute)
	if err != nil {
		return t, withTypeName(err, "TimeTZ")
	}
	t.clock = clock
	return t, nil
}

func (t TimeTZ) WithSecond(second float64) (TimeTZ, error) {
	clock, err := newClock("TimeTZ", t.clock.hour, t.clock.minute, second)
	if err != nil {
		return t, err
	}
	t.clock = clock
	return t, nil
}

func (t TimeTZ) WithOffset(offset Offset) (TimeTZ, error) {
	if err := offset.validate("TimeTZ"); err != nil {
		return t, err
	}
	t.offset = offset
	return t, nil
}

func (t TimeTZ) String() string {
	return t.clock.String() + t.offset.String()
}

func (t TimeTZ) Object() TimeTZObject {
	return TimeTZObject{Hour: t.clock.hour, Minute: t.clock.minute, Second: t.clock.Second(), Offset: t.offset}
}

func (t TimeTZ) equal(other TimeTZ) bool {
	return t.clock.truncated() == other.clock.truncated() && t.offset.Seconds() == other.offset.Seconds()
}

func (t TimeTZ) Equal(other any) bool {
	switch other := other.(type) {
	case TimeTZ:
		return t.equal(other)
	case *TimeTZ:
		return other != nil && t.equal(*other)
	case TimeTZObject:
		o, err := TimeTZFromObject(other)
		return err == nil && t.equal(o)
	case string:
		o, err := ParseTimeTZ(other)
		return err == nil && t.equal(o)
	}
	return false
}

func (t TimeTZ) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Object())
}

func (t *TimeTZ) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseTimeTZ, TimeTZFromObject)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (t *TimeTZ) Scan(src any) error {
	if tm, ok := src.(time.Time); ok {
		v, err := TimeTZFromTime(tm)
		if err != nil {
			return err
		}
		*t = v
		return nil
	}

	v, err := scanText(src, ParseTimeTZ)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (t TimeTZ) Value() (driver.Value, error) {
	return t.clock.precise() + t.offset.String(), nil
}
