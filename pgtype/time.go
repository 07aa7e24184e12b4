package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Time is a time of day without a time zone. The fractional part of the second is kept but String and Equal work at
// whole-second precision.
type Time struct {
	hour         int
	minute       int
	second       int
	microseconds int
}

type TimeObject struct {
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
}

var timeRegexp = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(?:\.(\d+))?$`)

func validateClock(typeName string, hour, minute int, second float64) error {
	switch {
	case hour < 0 || hour > 23:
		return rangeError(typeName, "hour must be between 0 and 23")
	case minute < 0 || minute > 59:
		return rangeError(typeName, "minute must be between 0 and 59")
	case math.IsNaN(second) || second < 0 || second >= 60:
		return rangeError(typeName, "second must be between 0 and 60")
	}
	return nil
}

func newClock(typeName string, hour, minute int, second float64) (Time, error) {
	if err := validateClock(typeName, hour, minute, second); err != nil {
		return Time{}, err
	}
	whole, micro := splitSeconds(second)
	if whole >= 60 {
		// Rounded up past 59.999999.
		whole, micro = 59, 999999
	}
	return Time{hour: hour, minute: minute, second: whole, microseconds: micro}, nil
}

// parseClock parses the HH, MM, SS and fraction submatches of a time of day.
func parseClock(typeName, hh, mm, ss, fraction string) (Time, error) {
	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	second, _ := strconv.Atoi(ss)
	micro, ok := parseFraction(fraction)
	if !ok {
		return Time{}, formatError(typeName, "")
	}
	if err := validateClock(typeName, hour, minute, float64(second)); err != nil {
		return Time{}, withKind(err, ErrInvalidFormat)
	}
	return Time{hour: hour, minute: minute, second: second, microseconds: micro}, nil
}

func ParseTime(s string) (Time, error) {
	m := timeRegexp.FindStringSubmatch(s)
	if m == nil {
		return Time{}, formatError("Time", "")
	}
	return parseClock("Time", m[1], m[2], m[3], m[4])
}

func NewTime(hour, minute int, second float64) (Time, error) {
	t, err := newClock("Time", hour, minute, second)
	if err != nil {
		return Time{}, withKind(err, ErrInvalidArguments)
	}
	return t, nil
}

func TimeFromObject(o TimeObject) (Time, error) {
	t, err := newClock("Time", o.Hour, o.Minute, o.Second)
	if err != nil {
		return Time{}, withKind(err, ErrInvalidObject)
	}
	return t, nil
}

// TimeFromTime returns the wall clock time of t.
func TimeFromTime(t time.Time) (Time, error) {
	return Time{hour: t.Hour(), minute: t.Minute(), second: t.Second(), microseconds: t.Nanosecond() / 1000}, nil
}

func TimeFrom(t Time) (Time, error) {
	return NewTime(t.hour, t.minute, t.Second())
}

func IsTime(v any) bool {
	switch v.(type) {
	case Time, *Time:
		return true
	}
	return false
}

func (t Time) Hour() int   { return t.hour }
func (t Time) Minute() int { return t.minute }

// Second returns the seconds including the fractional part.
func (t Time) Second() float64 {
	return float64(t.second) + float64(t.microseconds)/1e6
}

func (t Time) WithHour(hour int) (Time, error) {
	if err := validateClock("Time", hour, t.minute, 0); err != nil {
		return t, err
	}
	t.hour = hour
	return t, nil
}

func (t Time) WithMinute(minute int) (Time, error) {
	if err := validateClock("Time", t.hour, minute, 0); err != nil {
		return t, err
	}
	t.minute = minute
	return t, nil
}

func (t Time) WithSecond(second float64) (Time, error) {
	return newClock("Time", t.hour, t.minute, second)
}

// Duration returns the time elapsed since midnight.
func (t Time) Duration() time.Duration {
	return time.Duration(t.hour)*time.Hour +
		time.Duration(t.minute)*time.Minute +
		time.Duration(t.second)*time.Second +
		time.Duration(t.microseconds)*time.Microsecond
}

func (t Time) String() string {
	return pad2(t.hour) + ":" + pad2(t.minute) + ":" + pad2(t.second)
}

// precise formats t including the fractional second.
func (t Time) precise() string {
	return t.String() + formatFraction(t.microseconds)
}

func (t Time) Object() TimeObject {
	return TimeObject{Hour: t.hour, Minute: t.minute, Second: t.Second()}
}

func (t Time) truncated() Time {
	t.microseconds = 0
	return t
}

func (t Time) Equal(other any) bool {
	switch other := other.(type) {
	case Time:
		return t.truncated() == other.truncated()
	case *Time:
		return other != nil && t.truncated() == other.truncated()
	case TimeObject:
		o, err := TimeFromObject(other)
		return err == nil && t.truncated() == o.truncated()
	case string:
		o, err := ParseTime(other)
		return err == nil && t.truncated() == o.truncated()
	}
	return false
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Object())
}

func (t *Time) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseTime, TimeFromObject)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (t *Time) Scan(src any) error {
	if tm, ok := src.(time.Time); ok {
		*t, _ = TimeFromTime(tm)
		return nil
	}

	v, err := scanText(src, ParseTime)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Value implements the database/sql/driver Valuer interface. The fractional second is included.
func (t Time) Value() (driver.Value, error) {
	return t.precise(), nil
}
