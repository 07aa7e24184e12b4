package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar date without a time zone. Days are checked against a fixed 1-31 window only; 2023-02-31 is a
// valid Date.
type Date struct {
	year  int
	month int
	day   int
}

type DateObject struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

var dateRegexp = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

func validateDate(year, month, day int) error {
	switch {
	case year < 1 || year > 9999:
		return rangeError("Date", "year must be between 1 and 9999")
	case month < 1 || month > 12:
		return rangeError("Date", "month must be between 1 and 12")
	case day < 1 || day > 31:
		return rangeError("Date", "day must be between 1 and 31")
	}
	return nil
}

func ParseDate(s string) (Date, error) {
	m := dateRegexp.FindStringSubmatch(s)
	if m == nil {
		return Date{}, formatError("Date", "")
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if err := validateDate(year, month, day); err != nil {
		return Date{}, withKind(err, ErrInvalidFormat)
	}
	return Date{year: year, month: month, day: day}, nil
}

func NewDate(year, month, day int) (Date, error) {
	if err := validateDate(year, month, day); err != nil {
		return Date{}, withKind(err, ErrInvalidArguments)
	}
	return Date{year: year, month: month, day: day}, nil
}

func DateFromObject(o DateObject) (Date, error) {
	if err := validateDate(o.Year, o.Month, o.Day); err != nil {
		return Date{}, withKind(err, ErrInvalidObject)
	}
	return Date{year: o.Year, month: o.Month, day: o.Day}, nil
}

// DateFromTime returns the date of t in t's location.
func DateFromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	if err := validateDate(year, int(month), day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: int(month), day: day}, nil
}

// DateFrom returns a copy of d after validating it again.
func DateFrom(d Date) (Date, error) {
	return NewDate(d.year, d.month, d.day)
}

func IsDate(v any) bool {
	switch v.(type) {
	case Date, *Date:
		return true
	}
	return false
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

func (d Date) WithYear(year int) (Date, error) {
	if err := validateDate(year, d.month, d.day); err != nil {
		return d, err
	}
	d.year = year
	return d, nil
}

func (d Date) WithMonth(month int) (Date, error) {
	if err := validateDate(d.year, month, d.day); err != nil {
		return d, err
	}
	d.month = month
	return d, nil
}

func (d Date) WithDay(day int) (Date, error) {
	if err := validateDate(d.year, d.month, day); err != nil {
		return d, err
	}
	d.day = day
	return d, nil
}

// ToTime returns midnight of d in loc. A nil loc means UTC. Days past the end of the month normalize forward as
// time.Date does.
func (d Date) ToTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) Object() DateObject {
	return DateObject{Year: d.year, Month: d.month, Day: d.day}
}

func (d Date) Equal(other any) bool {
	switch other := other.(type) {
	case Date:
		return d == other
	case *Date:
		return other != nil && d == *other
	case DateObject:
		return d.Object() == other
	case string:
		return d.String() == other
	}
	return false
}

// Compare returns -1, 0 or 1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return compareInts(d.year, other.year)
	case d.month != other.month:
		return compareInts(d.month, other.month)
	}
	return compareInts(d.day, other.day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Object())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseDate, DateFromObject)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (d *Date) Scan(src any) error {
	if t, ok := src.(time.Time); ok {
		v, err := DateFromTime(t)
		if err != nil {
			return err
		}
		*d = v
		return nil
	}

	v, err := scanText(src, ParseDate)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
