package pgtype

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Direction string

const (
	DirectionPlus  Direction = "plus"
	DirectionMinus Direction = "minus"
)

// Offset is a UTC offset as carried by TimeTZ and TimestampTZ.
type Offset struct {
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	Direction Direction `json:"direction"`
}

// UTCOffset is the zero offset.
var UTCOffset = Offset{Direction: DirectionPlus}

func NewOffset(hour, minute int, direction Direction) (Offset, error) {
	o := Offset{Hour: hour, Minute: minute, Direction: direction}
	if err := o.validate("Offset"); err != nil {
		return Offset{}, err
	}
	return o, nil
}

// OffsetFromSeconds converts seconds east of UTC to an Offset. Leftover seconds are dropped.
func OffsetFromSeconds(seconds int) Offset {
	o := Offset{Direction: DirectionPlus}
	if seconds < 0 {
		o.Direction = DirectionMinus
		seconds = -seconds
	}
	o.Hour = seconds / 3600
	o.Minute = seconds % 3600 / 60
	return o
}

func (o Offset) validate(typeName string) error {
	switch {
	case o.Hour < 0 || o.Hour > 15:
		return rangeError(typeName, "offset hour must be between 0 and 15")
	case o.Minute < 0 || o.Minute > 59:
		return rangeError(typeName, "offset minute must be between 0 and 59")
	case o.Direction != DirectionPlus && o.Direction != DirectionMinus:
		return rangeError(typeName, `offset direction must be "plus" or "minus"`)
	}
	return nil
}

// Seconds returns the offset in seconds east of UTC.
func (o Offset) Seconds() int {
	s := o.Hour*3600 + o.Minute*60
	if o.Direction == DirectionMinus {
		return -s
	}
	return s
}

// Location returns a fixed time.Location at the offset.
func (o Offset) Location() *time.Location {
	if o.Seconds() == 0 {
		return time.UTC
	}
	return time.FixedZone(o.String(), o.Seconds())
}

// String returns the offset as ±HH:MM.
func (o Offset) String() string {
	sign := "+"
	if o.Direction == DirectionMinus && o.Seconds() != 0 {
		sign = "-"
	}
	return sign + pad2(o.Hour) + ":" + pad2(o.Minute)
}

var numericOffsetRegexp = regexp.MustCompile(`^([+-])(\d{1,2})(?::?(\d{2}))?$`)

// zoneAbbreviations maps the time zone abbreviations PostgreSQL accepts by default to their offsets in minutes.
var zoneAbbreviations = map[string]int{
	"UTC":  0,
	"UT":   0,
	"GMT":  0,
	"Z":    0,
	"ZULU": 0,
	"WET":  0,
	"WEST": 60,
	"BST":  60,
	"CET":  60,
	"CEST": 120,
	"MET":  60,
	"MEST": 120,
	"EET":  120,
	"EEST": 180,
	"MSK":  180,
	"IST":  330,
	"HKT":  480,
	"SGT":  480,
	"AWST": 480,
	"JST":  540,
	"KST":  540,
	"ACST": 570,
	"ACDT": 630,
	"AEST": 600,
	"AEDT": 660,
	"NZST": 720,
	"NZDT": 780,
	"NST":  -210,
	"NDT":  -150,
	"AST":  -240,
	"ADT":  -180,
	"EST":  -300,
	"EDT":  -240,
	"CST":  -360,
	"CDT":  -300,
	"MST":  -420,
	"MDT":  -360,
	"PST":  -480,
	"PDT":  -420,
	"AKST": -540,
	"AKDT": -480,
	"HST":  -600,
}

// LookupZoneAbbreviation returns the offset of a time zone abbreviation such as EST. Case is ignored.
func LookupZoneAbbreviation(name string) (Offset, bool) {
	minutes, ok := zoneAbbreviations[strings.ToUpper(name)]
	if !ok {
		return Offset{}, false
	}
	return OffsetFromSeconds(minutes * 60), true
}

// parseNumericOffset parses ±HH, ±HH:MM and ±HHMM.
func parseNumericOffset(s string) (Offset, bool) {
	m := numericOffsetRegexp.FindStringSubmatch(s)
	if m == nil {
		return Offset{}, false
	}

	o := Offset{Direction: DirectionPlus}
	if m[1] == "-" {
		o.Direction = DirectionMinus
	}
	o.Hour, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		o.Minute, _ = strconv.Atoi(m[3])
	}
	return o, true
}

// parseZone parses a numeric offset or a zone abbreviation.
func parseZone(typeName, s string) (Offset, error) {
	s = strings.TrimSpace(s)
	o, ok := parseNumericOffset(s)
	if !ok {
		o, ok = LookupZoneAbbreviation(s)
	}
	if !ok {
		return Offset{}, formatError(typeName, "unknown time zone "+strconv.Quote(s))
	}
	if err := o.validate(typeName); err != nil {
		return Offset{}, withKind(err, ErrInvalidFormat)
	}
	return o, nil
}

// offsetOf returns the offset t has in its own location.
func offsetOf(t time.Time) Offset {
	_, seconds := t.Zone()
	return OffsetFromSeconds(seconds)
}
