package pgtype

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseInteger parses s as a whole number in [min, max]. Exponents and a zero fraction (1e3, 10.0) are accepted;
// any other fraction is rejected rather than rounded.
func parseInteger(typeName, s string, min, max int64) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, formatErrorf(typeName, err, "")
	}
	if d.IsZero() {
		return 0, nil
	}

	// Extreme exponents are settled before anything rescales d.
	exp := d.Exponent()
	if exp > 19 {
		return 0, withKind(integerRangeError(typeName, min, max), ErrInvalidFormat)
	}
	if exp < 0 && -int(exp) >= len(new(big.Int).Abs(d.Coefficient()).String()) {
		return 0, formatError(typeName, "not an integer")
	}

	if !d.Equal(d.Truncate(0)) {
		return 0, formatError(typeName, "not an integer")
	}
	if d.LessThan(decimal.NewFromInt(min)) || d.GreaterThan(decimal.NewFromInt(max)) {
		return 0, withKind(integerRangeError(typeName, min, max), ErrInvalidFormat)
	}
	return d.IntPart(), nil
}

func checkInteger(typeName string, n, min, max int64) error {
	if n < min || n > max {
		return integerRangeError(typeName, min, max)
	}
	return nil
}

func integerFromFloat(typeName string, f float64, min, max int64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, argumentsError(typeName, "not an integer")
	}
	if f < float64(min) || f >= -float64(min) {
		return 0, integerRangeError(typeName, min, max)
	}
	n := int64(f)
	if err := checkInteger(typeName, n, min, max); err != nil {
		return 0, err
	}
	return n, nil
}

func integerRangeError(typeName string, min, max int64) error {
	return rangeError(typeName, "must be between "+strconv.FormatInt(min, 10)+" and "+strconv.FormatInt(max, 10))
}

// integerOf converts the Go integer types Equal accepts.
func integerOf(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	}
	return 0, false
}

// scanInteger converts the values database/sql drivers produce for integer columns.
func scanInteger(typeName string, src any, min, max int64) (int64, error) {
	switch src := src.(type) {
	case int64:
		if err := checkInteger(typeName, src, min, max); err != nil {
			return 0, err
		}
		return src, nil
	case float64:
		return integerFromFloat(typeName, src, min, max)
	}

	return scanText(src, func(s string) (int64, error) {
		return parseInteger(typeName, s, min, max)
	})
}
