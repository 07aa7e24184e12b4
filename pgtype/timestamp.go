package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

// Timestamp is a date and time of day without a time zone. Input carrying a zone is converted to UTC.
type Timestamp struct {
	date  Date
	clock Time
}

type TimestampObject struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
}

var dateTimeRegexp = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[T ](\d{2}):(\d{2}):(\d{2})(?:\.(\d+))?(.*)$`)

// parseDateTime parses the date and time of day at the start of s. The remainder is returned with surrounding
// whitespace removed.
func parseDateTime(typeName, s string) (Date, Time, string, error) {
	m := dateTimeRegexp.FindStringSubmatch(s)
	if m == nil {
		return Date{}, Time{}, "", formatError(typeName, "")
	}

	date, err := ParseDate(m[1])
	if err != nil {
		return Date{}, Time{}, "", withTypeName(err, typeName)
	}
	clock, err := parseClock(typeName, m[2], m[3], m[4], m[5])
	if err != nil {
		return Date{}, Time{}, "", err
	}
	return date, clock, strings.TrimSpace(m[6]), nil
}

func dateTimeIn(date Date, clock Time, loc *time.Location) time.Time {
	return time.Date(date.year, time.Month(date.month), date.day,
		clock.hour, clock.minute, clock.second, clock.microseconds*1000, loc)
}

func splitTime(typeName string, t time.Time) (Date, Time, error) {
	date, err := DateFromTime(t)
	if err != nil {
		return Date{}, Time{}, withTypeName(err, typeName)
	}
	clock, _ := TimeFromTime(t)
	return date, clock, nil
}

func ParseTimestamp(s string) (Timestamp, error) {
	date, clock, zone, err := parseDateTime("Timestamp", s)
	if err != nil {
		return Timestamp{}, err
	}
	if zone == "" {
		return Timestamp{date: date, clock: clock}, nil
	}

	offset, err := parseZone("Timestamp", zone)
	if err != nil {
		return Timestamp{}, err
	}
	date, clock, err = splitTime("Timestamp", dateTimeIn(date, clock, offset.Location()).UTC())
	if err != nil {
		return Timestamp{}, withKind(err, ErrInvalidFormat)
	}
	return Timestamp{date: date, clock: clock}, nil
}

func newTimestamp(o TimestampObject) (Timestamp, error) {
	if err := validateDate(o.Year, o.Month, o.Day); err != nil {
		return Timestamp{}, withTypeName(err, "Timestamp")
	}
	clock, err := newClock("Timestamp", o.Hour, o.Minute, o.Second)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{date: Date{year: o.Year, month: o.Month, day: o.Day}, clock: clock}, nil
}

func NewTimestamp(year, month, day, hour, minute int, second float64) (Timestamp, error) {
	t, err := newTimestamp(TimestampObject{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second})
	if err != nil {
		return Timestamp{}, withKind(err, ErrInvalidArguments)
	}
	return t, nil
}

func TimestampFromObject(o TimestampObject) (Timestamp, error) {
	t, err := newTimestamp(o)
	if err != nil {
		return Timestamp{}, withKind(err, ErrInvalidObject)
	}
	return t, nil
}

// TimestampFromTime returns the wall clock date and time of t. The location of t is discarded.
func TimestampFromTime(t time.Time) (Timestamp, error) {
	date, clock, err := splitTime("Timestamp", t)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{date: date, clock: clock}, nil
}

func TimestampFrom(t Timestamp) (Timestamp, error) {
	return newTimestamp(t.Object())
}

func IsTimestamp(v any) bool {
	switch v.(type) {
	case Timestamp, *Timestamp:
		return true
	}
	return false
}

func (t Timestamp) Year() int       { return t.date.year }
func (t Timestamp) Month() int      { return t.date.month }
func (t Timestamp) Day() int        { return t.date.day }
func (t Timestamp) Hour() int       { return t.clock.hour }
func (t Timestamp) Minute() int     { return t.clock.minute }
func (t Timestamp) Second() float64 { return t.clock.Second() }
func (t Timestamp) Date() Date      { return t.date }
func (t Timestamp) Time() Time      { return t.clock }

func (t Timestamp) with(o TimestampObject) (Timestamp, error) {
	v, err := newTimestamp(o)
	if err != nil {
		return t, err
	}
	return v, nil
}

func (t Timestamp) WithYear(year int) (Timestamp, error) {
	o := t.Object()
	o.Year = year
	return t.with(o)
}

func (t Timestamp) WithMonth(month int) (Timestamp, error) {
	o := t.Object()
	o.Month = month
	return t.with(o)
}

func (t Timestamp) WithDay(day int) (Timestamp, error) {
	o := t.Object()
	o.Day = day
	return t.with(o)
}

func (t Timestamp) WithHour(hour int) (Timestamp, error) {
	o := t.Object()
	o.Hour = hour
	return t.with(o)
}

func (t Timestamp) WithMinute(minute int) (Timestamp, error) {
	o := t.Object()
	o.Minute = minute
	return t.with(o)
}

func (t Timestamp) WithSecond(second float64) (Timestamp, error) {
	o := t.Object()
	o.Second = second
	return t.with(o)
}

// ToTime returns t as a time.Time in UTC.
func (t Timestamp) ToTime() time.Time {
	return dateTimeIn(t.date, t.clock, time.UTC)
}

func (t Timestamp) String() string {
	return t.date.String() + " " + t.clock.precise()
}

// ToISO formats t as an RFC 3339 UTC timestamp.
func (t Timestamp) ToISO() string {
	return t.date.String() + "T" + t.clock.precise() + "Z"
}

func (t Timestamp) Object() TimestampObject {
	return TimestampObject{
		Year:   t.date.year,
		Month:  t.date.month,
		Day:    t.date.day,
		Hour:   t.clock.hour,
		Minute: t.clock.minute,
		Second: t.clock.Second(),
	}
}

func (t Timestamp) Equal(other any) bool {
	switch other := other.(type) {
	case Timestamp:
		return t == other
	case *Timestamp:
		return other != nil && t == *other
	case TimestampObject:
		o, err := TimestampFromObject(other)
		return err == nil && t == o
	case string:
		o, err := ParseTimestamp(other)
		return err == nil && t == o
	}
	return false
}

// Compare returns -1, 0 or 1 as t is before, equal to or after other.
func (t Timestamp) Compare(other Timestamp) int {
	return t.ToTime().Compare(other.ToTime())
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Object())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseTimestamp, TimestampFromObject)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (t *Timestamp) Scan(src any) error {
	if tm, ok := src.(time.Time); ok {
		v, err := TimestampFromTime(tm)
		if err != nil {
			return err
		}
		*t = v
		return nil
	}

	v, err := scanText(src, ParseTimestamp)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (t Timestamp) Value() (driver.Value, error) {
	return t.String(), nil
}
