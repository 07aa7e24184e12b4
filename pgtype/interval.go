package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Milliseconds per unit used by the Total methods. Years are 365 days and months are a twelfth of that.
const (
	millisecondsPerYear   = 31_536_000_000
	millisecondsPerMonth  = 2_628_000_000
	millisecondsPerDay    = 86_400_000
	millisecondsPerHour   = 3_600_000
	millisecondsPerMinute = 60_000
)

// Interval is a PostgreSQL interval. Fields are kept as given and are not normalized against each other.
type Interval struct {
	years        int
	months       int
	days         int
	hours        int
	minutes      int
	seconds      int
	milliseconds float64
}

type IntervalObject struct {
	Years        int     `json:"years,omitempty"`
	Months       int     `json:"months,omitempty"`
	Days         int     `json:"days,omitempty"`
	Hours        int     `json:"hours,omitempty"`
	Minutes      int     `json:"minutes,omitempty"`
	Seconds      int     `json:"seconds,omitempty"`
	Milliseconds float64 `json:"milliseconds,omitempty"`
}

var (
	intervalClockRegexp = regexp.MustCompile(`^([+-])?(\d+):(\d{2}):(\d{2})(?:\.(\d{1,6}))?$`)
	intervalISORegexp   = regexp.MustCompile(`^P(?:(-?\d+)Y)?(?:(-?\d+)M)?(?:(-?\d+)W)?(?:(-?\d+)D)?(?:T(?:(-?\d+)H)?(?:(-?\d+)M)?(?:(-?\d+(?:\.\d+)?)S)?)?$`)
)

// splitFractionalSeconds splits seconds into whole seconds and milliseconds rounded to the microsecond. Both parts
// carry the sign of seconds.
func splitFractionalSeconds(seconds float64) (int, float64) {
	whole, frac := math.Modf(seconds)
	return int(whole), math.Round(frac*1e6) / 1e3
}

// ParseInterval parses the PostgreSQL verbose output format (1 year 2 mons 3 days 04:05:06.007) and ISO 8601
// durations (P1Y2M3DT4H5M6.007S).
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "P") {
		return parseISOInterval(s)
	}
	return parseVerboseInterval(s)
}

func parseISOInterval(s string) (Interval, error) {
	m := intervalISORegexp.FindStringSubmatch(s)
	if m == nil || s == "P" || strings.HasSuffix(s, "T") {
		return Interval{}, formatError("Interval", "")
	}

	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	var iv Interval
	iv.years = atoi(m[1])
	iv.months = atoi(m[2])
	iv.days = atoi(m[3])*7 + atoi(m[4])
	iv.hours = atoi(m[5])
	iv.minutes = atoi(m[6])
	if m[7] != "" {
		f, err := strconv.ParseFloat(m[7], 64)
		if err != nil {
			return Interval{}, formatErrorf("Interval", err, "")
		}
		iv.seconds, iv.milliseconds = splitFractionalSeconds(f)
	}
	return iv, nil
}

func parseVerboseInterval(s string) (Interval, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Interval{}, formatError("Interval", "")
	}

	var iv Interval
	var sawClock bool
	for i := 0; i < len(fields); i++ {
		if m := intervalClockRegexp.FindStringSubmatch(fields[i]); m != nil {
			if sawClock {
				return Interval{}, formatError("Interval", "more than one time part")
			}
			sawClock = true
			iv.addClock(m)
			continue
		}

		n, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return Interval{}, formatError("Interval", "")
		}

		// A trailing number without a unit is seconds.
		unit := "seconds"
		if i+1 < len(fields) {
			i++
			unit = fields[i]
		}
		if err := iv.addUnit(n, unit); err != nil {
			return Interval{}, err
		}
	}
	return iv, nil
}

// addClock adds a [+-]HH:MM:SS[.ffffff] time part. The sign applies to every field of the time part.
func (iv *Interval) addClock(m []string) {
	sign := 1
	if m[1] == "-" {
		sign = -1
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	seconds, _ := strconv.Atoi(m[4])
	micro, _ := parseFraction(m[5])

	iv.hours += sign * hours
	iv.minutes += sign * minutes
	iv.seconds += sign * seconds
	iv.milliseconds += float64(sign*micro) / 1e3
}

func (iv *Interval) addUnit(n float64, unit string) error {
	whole := int(n)
	integral := float64(whole) == n

	switch unit {
	case "second", "seconds", "sec", "secs", "s":
		seconds, ms := splitFractionalSeconds(n)
		iv.seconds += seconds
		iv.milliseconds += ms
		return nil
	case "millisecond", "milliseconds", "msec", "msecs", "ms":
		iv.milliseconds += n
		return nil
	}

	if !integral {
		return formatError("Interval", "fractional "+unit)
	}
	switch unit {
	case "year", "years", "yr", "yrs", "y":
		iv.years += whole
	case "month", "months", "mon", "mons":
		iv.months += whole
	case "week", "weeks", "w":
		iv.days += whole * 7
	case "day", "days", "d":
		iv.days += whole
	case "hour", "hours", "hr", "hrs", "h":
		iv.hours += whole
	case "minute", "minutes", "min", "mins", "m":
		iv.minutes += whole
	default:
		return formatError("Interval", "unknown unit "+strconv.Quote(unit))
	}
	return nil
}

func NewInterval(years, months, days, hours, minutes, seconds int, milliseconds float64) (Interval, error) {
	if math.IsNaN(milliseconds) || math.IsInf(milliseconds, 0) {
		return Interval{}, argumentsError("Interval", "milliseconds must be finite")
	}
	return Interval{
		years:        years,
		months:       months,
		days:         days,
		hours:        hours,
		minutes:      minutes,
		seconds:      seconds,
		milliseconds: milliseconds,
	}, nil
}

func IntervalFromObject(o IntervalObject) (Interval, error) {
	iv, err := NewInterval(o.Years, o.Months, o.Days, o.Hours, o.Minutes, o.Seconds, o.Milliseconds)
	if err != nil {
		return Interval{}, withKind(err, ErrInvalidObject)
	}
	return iv, nil
}

// IntervalFromDuration splits d into hours, minutes, seconds and milliseconds.
func IntervalFromDuration(d time.Duration) (Interval, error) {
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	return NewInterval(0, 0, 0, int(hours), int(minutes), int(seconds), float64(d)/float64(time.Millisecond))
}

func IntervalFrom(iv Interval) (Interval, error) {
	return IntervalFromObject(iv.Object())
}

func IsInterval(v any) bool {
	switch v.(type) {
	case Interval, *Interval:
		return true
	}
	return false
}

func (iv Interval) Years() int            { return iv.years }
func (iv Interval) Months() int           { return iv.months }
func (iv Interval) Days() int             { return iv.days }
func (iv Interval) Hours() int            { return iv.hours }
func (iv Interval) Minutes() int          { return iv.minutes }
func (iv Interval) Seconds() int          { return iv.seconds }
func (iv Interval) Milliseconds() float64 { return iv.milliseconds }

func (iv Interval) WithYears(years int) (Interval, error) {
	iv.years = years
	return iv, nil
}

func (iv Interval) WithMonths(months int) (Interval, error) {
	iv.months = months
	return iv, nil
}

func (iv Interval) WithDays(days int) (Interval, error) {
	iv.days = days
	return iv, nil
}

func (iv Interval) WithHours(hours int) (Interval, error) {
	iv.hours = hours
	return iv, nil
}

func (iv Interval) WithMinutes(minutes int) (Interval, error) {
	iv.minutes = minutes
	return iv, nil
}

func (iv Interval) WithSeconds(seconds int) (Interval, error) {
	iv.seconds = seconds
	return iv, nil
}

func (iv Interval) WithMilliseconds(milliseconds float64) (Interval, error) {
	if math.IsNaN(milliseconds) || math.IsInf(milliseconds, 0) {
		return iv, rangeError("Interval", "milliseconds must be finite")
	}
	iv.milliseconds = milliseconds
	return iv, nil
}

func (iv Interval) TotalMilliseconds() float64 {
	return float64(iv.years)*millisecondsPerYear +
		float64(iv.months)*millisecondsPerMonth +
		float64(iv.days)*millisecondsPerDay +
		float64(iv.hours)*millisecondsPerHour +
		float64(iv.minutes)*millisecondsPerMinute +
		float64(iv.seconds)*1000 +
		iv.milliseconds
}

func (iv Interval) TotalSeconds() float64 { return iv.TotalMilliseconds() / 1000 }
func (iv Interval) TotalMinutes() float64 { return iv.TotalSeconds() / 60 }
func (iv Interval) TotalHours() float64   { return iv.TotalMinutes() / 60 }
func (iv Interval) TotalDays() float64    { return iv.TotalHours() / 24 }
func (iv Interval) TotalMonths() float64  { return iv.TotalDays() / 30 }
func (iv Interval) TotalYears() float64   { return iv.TotalMonths() / 12 }

// secondsString formats seconds plus milliseconds with at most six fractional digits.
func (iv Interval) secondsString() string {
	if iv.milliseconds == 0 {
		return strconv.Itoa(iv.seconds)
	}
	s := strconv.FormatFloat(float64(iv.seconds)+iv.milliseconds/1000, 'f', 6, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// String formats the non-zero fields with unit names, for example "1 year 2 months 3 days 4 hours 5 minutes 6.007
// seconds". The zero interval is "0".
func (iv Interval) String() string {
	parts := make([]string, 0, 6)
	add := func(value string, unit string) {
		if value != "1" {
			unit += "s"
		}
		parts = append(parts, value+" "+unit)
	}

	for _, f := range []struct {
		n    int
		unit string
	}{
		{iv.years, "year"},
		{iv.months, "month"},
		{iv.days, "day"},
		{iv.hours, "hour"},
		{iv.minutes, "minute"},
	} {
		if f.n != 0 {
			add(strconv.Itoa(f.n), f.unit)
		}
	}
	if seconds := iv.secondsString(); seconds != "0" {
		add(seconds, "second")
	}

	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " ")
}

// ISOString formats iv as an ISO 8601 duration. When short is true zero fields are omitted.
func (iv Interval) ISOString(short bool) string {
	designator := func(value string, d string) string {
		if short && value == "0" {
			return ""
		}
		return value + d
	}

	datePart := designator(strconv.Itoa(iv.years), "Y") +
		designator(strconv.Itoa(iv.months), "M") +
		designator(strconv.Itoa(iv.days), "D")
	timePart := designator(strconv.Itoa(iv.hours), "H") +
		designator(strconv.Itoa(iv.minutes), "M") +
		designator(iv.secondsString(), "S")

	switch {
	case datePart == "" && timePart == "":
		return "PT0S"
	case timePart == "":
		return "P" + datePart
	}
	return "P" + datePart + "T" + timePart
}

func (iv Interval) Object() IntervalObject {
	return IntervalObject{
		Years:        iv.years,
		Months:       iv.months,
		Days:         iv.days,
		Hours:        iv.hours,
		Minutes:      iv.minutes,
		Seconds:      iv.seconds,
		Milliseconds: iv.milliseconds,
	}
}

// equal compares the canonical text, so seconds and milliseconds are compared as one quantity:
// 1 second -500 milliseconds equals 500 milliseconds.
func (iv Interval) equal(other Interval) bool {
	return iv.String() == other.String()
}

func (iv Interval) Equal(other any) bool {
	switch other := other.(type) {
	case Interval:
		return iv.equal(other)
	case *Interval:
		return other != nil && iv.equal(*other)
	case IntervalObject:
		o, err := IntervalFromObject(other)
		return err == nil && iv.equal(o)
	case string:
		if other == iv.String() || other == iv.ISOString(false) || other == iv.ISOString(true) {
			return true
		}
		o, err := ParseInterval(other)
		return err == nil && iv.equal(o)
	}
	return false
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(iv.Object())
}

func (iv *Interval) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseInterval, IntervalFromObject)
	if err != nil {
		return err
	}
	*iv = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (iv *Interval) Scan(src any) error {
	if d, ok := src.(time.Duration); ok {
		v, err := IntervalFromDuration(d)
		if err != nil {
			return err
		}
		*iv = v
		return nil
	}

	v, err := scanText(src, ParseInterval)
	if err != nil {
		return err
	}
	*iv = v
	return nil
}

// Value implements the database/sql/driver Valuer interface. The ISO 8601 form is used since PostgreSQL accepts it
// regardless of IntervalStyle.
func (iv Interval) Value() (driver.Value, error) {
	return iv.ISOString(true), nil
}
