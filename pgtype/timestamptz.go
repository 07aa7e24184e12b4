package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"
)

// TimestampTZ is a date and time of day with the UTC offset it was written in.
type TimestampTZ struct {
	date   Date
	clock  Time
	offset Offset
}

type TimestampTZObject struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
	Offset Offset  `json:"offset"`
}

func ParseTimestampTZ(s string) (TimestampTZ, error) {
	date, clock, zone, err := parseDateTime("TimestampTZ", s)
	if err != nil {
		return TimestampTZ{}, err
	}
	if zone == "" {
		return TimestampTZ{}, formatError("TimestampTZ", "missing time zone")
	}

	offset, err := parseZone("TimestampTZ", zone)
	if err != nil {
		// Full zone names such as Europe/Paris resolve to the offset in effect at that moment.
		loc, lerr := time.LoadLocation(zone)
		if lerr != nil || strings.ToLower(zone) == "local" {
			return TimestampTZ{}, err
		}
		offset = offsetOf(dateTimeIn(date, clock, loc))
	}
	return TimestampTZ{date: date, clock: clock, offset: offset}, nil
}

func newTimestampTZ(o TimestampTZObject) (TimestampTZ, error) {
	t, err := newTimestamp(TimestampObject{Year: o.Year, Month: o.Month, Day: o.Day, Hour: o.Hour, Minute: o.Minute, Second: o.Second})
	if err != nil {
		return TimestampTZ{}, withTypeName(err, "TimestampTZ")
	}
	if err := o.Offset.validate("TimestampTZ"); err != nil {
		return TimestampTZ{}, err
	}
	return TimestampTZ{date: t.date, clock: t.clock, offset: o.Offset}, nil
}

func NewTimestampTZ(year, month, day, hour, minute int, second float64, offset Offset) (TimestampTZ, error) {
	t, err := newTimestampTZ(TimestampTZObject{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
		Offset: offset,
	})
	if err != nil {
		return TimestampTZ{}, withKind(err, ErrInvalidArguments)
	}
	return t, nil
}

func TimestampTZFromObject(o TimestampTZObject) (TimestampTZ, error) {
	t, err := newTimestampTZ(o)
	if err != nil {
		return TimestampTZ{}, withKind(err, ErrInvalidObject)
	}
	return t, nil
}

// TimestampTZFromTime returns t in the offset of its own location.
func TimestampTZFromTime(t time.Time) (TimestampTZ, error) {
	offset := offsetOf(t)
	if err := offset.validate("TimestampTZ"); err != nil {
		return TimestampTZ{}, err
	}
	date, clock, err := splitTime("TimestampTZ", t)
	if err != nil {
		return TimestampTZ{}, err
	}
	return TimestampTZ{date: date, clock: clock, offset: offset}, nil
}

func TimestampTZFrom(t TimestampTZ) (TimestampTZ, error) {
	return newTimestampTZ(t.Object())
}

func IsTimestampTZ(v any) bool {
	switch v.(type) {
	case TimestampTZ, *TimestampTZ:
		return true
	}
	return false
}

func (t TimestampTZ) Year() int       { return t.date.year }
func (t TimestampTZ) Month() int      { return t.date.month }
func (t TimestampTZ) Day() int        { return t.date.day }
func (t TimestampTZ) Hour() int       { return t.clock.hour }
func (t TimestampTZ) Minute() int     { return t.clock.minute }
func (t TimestampTZ) Second() float64 { return t.clock.Second() }
func (t TimestampTZ) Offset() Offset  { return t.offset }

func (t TimestampTZ) with(o TimestampTZObject) (TimestampTZ, error) {
	v, err := newTimestampTZ(o)
	if err != nil {
		return t, err
	}
	return v, nil
}

func (t TimestampTZ) WithYear(year int) (TimestampTZ, error) {
	o := t.Object()
	o.Year = year
	return t.with(o)
}

func (t TimestampTZ) WithMonth(month int) (TimestampTZ, error) {
	o := t.Object()
	o.Month = month
	return t.with(o)
}

func (t TimestampTZ) WithDay(day int) (TimestampTZ, error) {
	o := t.Object()
	o.Day = day
	return t.with(o)
}

func (t TimestampTZ) WithHour(hour int) (TimestampTZ, error) {
	o := t.Object()
	o.Hour = hour
	return t.with(o)
}

func (t TimestampTZ) WithMinute(minute int) (TimestampTZ, error) {
	o := t.Object()
	o.Minute = minute
	return t.with(o)
}

func (t TimestampTZ) WithSecond(second float64) (TimestampTZ, error) {
	o := t.Object()
	o.Second = second
	return t.with(o)
}

func (t TimestampTZ) WithOffset(offset Offset) (TimestampTZ, error) {
	o := t.Object()
	o.Offset = offset
	return t.with(o)
}

// ToTime returns t as a time.Time in a fixed zone at t's offset.
func (t TimestampTZ) ToTime() time.Time {
	return dateTimeIn(t.date, t.clock, t.offset.Location())
}

func (t TimestampTZ) String() string {
	return t.date.String() + " " + t.clock.precise() + " " + t.offset.String()
}

// ToISO formats t as an RFC 3339 timestamp. A zero offset is written as Z.
func (t TimestampTZ) ToISO() string {
	zone := t.offset.String()
	if t.offset.Seconds() == 0 {
		zone = "Z"
	}
	return t.date.String() + "T" + t.clock.precise() + zone
}

func (t TimestampTZ) Object() TimestampTZObject {
	return TimestampTZObject{
		Year:   t.date.year,
		Month:  t.date.month,
		Day:    t.date.day,
		Hour:   t.clock.hour,
		Minute: t.clock.minute,
		Second: t.clock.Second(),
		Offset: t.offset,
	}
}

func (t TimestampTZ) equal(other TimestampTZ) bool {
	return t.date == other.date && t.clock == other.clock && t.offset.Seconds() == other.offset.Seconds()
}

// Equal reports whether other is the same wall clock time at the same offset. Use Compare to test whether two
// values are the same instant.
func (t TimestampTZ) Equal(other any) bool {
	switch other := other.(type) {
	case TimestampTZ:
		return t.equal(other)
	case *TimestampTZ:
		return other != nil && t.equal(*other)
	case TimestampTZObject:
		o, err := TimestampTZFromObject(other)
		return err == nil && t.equal(o)
	case string:
		o, err := ParseTimestampTZ(other)
		return err == nil && t.equal(o)
	}
	return false
}

// Compare orders t and other by instant.
func (t TimestampTZ) Compare(other TimestampTZ) int {
	return t.ToTime().Compare(other.ToTime())
}

func (t TimestampTZ) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Object())
}

func (t *TimestampTZ) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseTimestampTZ, TimestampTZFromObject)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (t *TimestampTZ) Scan(src any) error {
	if tm, ok := src.(time.Time); ok {
		v, err := TimestampTZFromTime(tm)
		if err != nil {
			return err
		}
		*t = v
		return nil
	}

	v, err := scanText(src, ParseTimestampTZ)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (t TimestampTZ) Value() (driver.Value, error) {
	return t.String(), nil
}
