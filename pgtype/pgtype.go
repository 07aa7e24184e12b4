package pgtype

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PostgreSQL oids for the types handled by this package.
const (
	Int8OID                = 20
	Int2OID                = 21
	Int4OID                = 23
	PointOID               = 600
	LsegOID                = 601
	PathOID                = 602
	BoxOID                 = 603
	PolygonOID             = 604
	LineOID                = 628
	LineArrayOID           = 629
	CircleOID              = 718
	CircleArrayOID         = 719
	Macaddr8OID            = 774
	Macaddr8ArrayOID       = 775
	MacaddrOID             = 829
	Int2ArrayOID           = 1005
	Int4ArrayOID           = 1007
	Int8ArrayOID           = 1016
	PointArrayOID          = 1017
	LsegArrayOID           = 1018
	PathArrayOID           = 1019
	BoxArrayOID            = 1020
	PolygonArrayOID        = 1027
	MacaddrArrayOID        = 1040
	DateOID                = 1082
	TimeOID                = 1083
	TimestampOID           = 1114
	TimestampArrayOID      = 1115
	DateArrayOID           = 1182
	TimeArrayOID           = 1183
	TimestamptzOID         = 1184
	TimestamptzArrayOID    = 1185
	IntervalOID            = 1186
	IntervalArrayOID       = 1187
	TimetzOID              = 1266
	TimetzArrayOID         = 1270
	UUIDOID                = 2950
	UUIDArrayOID           = 2951
	Int4rangeOID           = 3904
	Int4rangeArrayOID      = 3905
	TsrangeOID             = 3908
	TsrangeArrayOID        = 3909
	TstzrangeOID           = 3910
	TstzrangeArrayOID      = 3911
	DaterangeOID           = 3912
	DaterangeArrayOID      = 3913
	Int8rangeOID           = 3926
	Int8rangeArrayOID      = 3927
	Int4multirangeOID      = 4451
	TsmultirangeOID        = 4533
	TstzmultirangeOID      = 4534
	DatemultirangeOID      = 4535
	Int8multirangeOID      = 4536
	Int4multirangeArrayOID = 6150
	TsmultirangeArrayOID   = 6152
	TstzmultirangeArrayOID = 6153
	DatemultirangeArrayOID = 6155
	Int8multirangeArrayOID = 6157
)

// Value is implemented by every value type in this package.
type Value interface {
	fmt.Stringer

	// Equal reports whether other represents the same value. other may be a value of the same type, a pointer to
	// one, the type's plain-data object form, or its canonical string.
	Equal(other any) bool
}

// formatFloat formats f the way PostgreSQL's float8out does with shortest-precise output: plain decimal notation
// unless the decimal exponent is below -4 or at least 15.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e15) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// pad2 zero pads n to two digits.
func pad2(n int) string {
	if n < 10 && n >= 0 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// formatFraction formats microseconds as a fractional-second suffix with trailing zeros trimmed. It returns the
// empty string when microseconds is zero.
func formatFraction(microseconds int) string {
	if microseconds == 0 {
		return ""
	}
	return "." + strings.TrimRight(fmt.Sprintf("%06d", microseconds), "0")
}

// parseFraction parses up to 6 digits of fractional seconds into microseconds. Extra digits are rounded.
func parseFraction(digits string) (int, bool) {
	if digits == "" {
		return 0, true
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	if len(digits) <= 6 {
		n, _ := strconv.Atoi(digits)
		for i := len(digits); i < 6; i++ {
			n *= 10
		}
		return n, true
	}

	f, err := strconv.ParseFloat("0."+digits, 64)
	if err != nil {
		return 0, false
	}
	n := int(math.Round(f * 1e6))
	if n > 999999 {
		n = 999999
	}
	return n, true
}

// splitSeconds splits a float number of seconds into whole seconds and microseconds.
func splitSeconds(seconds float64) (int, int) {
	whole := math.Floor(seconds)
	micro := int(math.Round((seconds - whole) * 1e6))
	if micro >= 1000000 {
		whole++
		micro -= 1000000
	}
	return int(whole), micro
}

// unmarshalValue decodes data holding either the canonical string or the object form of a value.
func unmarshalValue[T, O any](data []byte, parse func(string) (T, error), fromObject func(O) (T, error)) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return parse(s)
	}

	var o O
	if err := json.Unmarshal(data, &o); err != nil {
		var zero T
		return zero, err
	}
	return fromObject(o)
}

// scanText implements the text branch of database/sql Scan for a value type.
func scanText[T any](src any, parse func(string) (T, error)) (T, error) {
	var zero T
	switch src := src.(type) {
	case string:
		return parse(src)
	case []byte:
		return parse(string(src))
	case nil:
		return zero, fmt.Errorf("cannot scan NULL into %T", &zero)
	}
	return zero, fmt.Errorf("cannot scan %T into %T", src, &zero)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
