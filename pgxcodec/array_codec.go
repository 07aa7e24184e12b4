package pgxcodec

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/extpg/extpg/pgtype"
	pgxtype "github.com/jackc/pgx/v5/pgtype"
)

// ArrayCodec is a text format pgx codec for arrays of T, scanned to and encoded from []T. Multi-dimensional arrays
// are flattened.
type ArrayCodec[T pgtype.Value] struct {
	Parse     func(string) (T, error)
	Delimiter string
	Fallback  pgxtype.Codec
}

func (ArrayCodec[T]) FormatSupported(format int16) bool {
	return format == pgxtype.TextFormatCode
}

func (ArrayCodec[T]) PreferredFormat() int16 {
	return pgxtype.TextFormatCode
}

func (c ArrayCodec[T]) PlanEncode(m *pgxtype.Map, oid uint32, format int16, value any) pgxtype.EncodePlan {
	if format != pgxtype.TextFormatCode {
		return nil
	}

	switch value.(type) {
	case []T, *[]T:
		return encodePlanTextArray[T]{delim: c.Delimiter}
	}

	if c.Fallback != nil {
		return c.Fallback.PlanEncode(m, oid, format, value)
	}
	return nil
}

type encodePlanTextArray[T pgtype.Value] struct {
	delim string
}

func (p encodePlanTextArray[T]) Encode(value any, buf []byte) (newBuf []byte, err error) {
	var elems []T
	switch value := value.(type) {
	case []T:
		elems = value
	case *[]T:
		if value != nil {
			elems = *value
		}
	default:
		return nil, fmt.Errorf("cannot encode %T", value)
	}

	if elems == nil {
		return nil, nil
	}
	return append(buf, pgtype.EncodeArray(elems, p.delim, func(v T) string { return v.String() })...), nil
}

func (c ArrayCodec[T]) PlanScan(m *pgxtype.Map, oid uint32, format int16, target any) pgxtype.ScanPlan {
	if format != pgxtype.TextFormatCode {
		return nil
	}

	switch target.(type) {
	case *[]T:
		return scanPlanTextToSlice[T]{parse: c.parse}
	case *string:
		return scanPlanTextToString{}
	case *any:
		return scanPlanTextToAny{decode: c.decode}
	case sql.Scanner:
		return scanPlanTextToSQLScanner{}
	}

	if c.Fallback != nil {
		return c.Fallback.PlanScan(m, oid, format, target)
	}
	return nil
}

func (c ArrayCodec[T]) parse(src string) ([]T, error) {
	elems, err := pgtype.ParseArray(src, c.Delimiter, c.Parse)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, fmt.Errorf("invalid array: %q", src)
	}
	return elems, nil
}

type scanPlanTextToSlice[T pgtype.Value] struct {
	parse func(string) ([]T, error)
}

func (p scanPlanTextToSlice[T]) Scan(src []byte, dst any) error {
	slice := dst.(*[]T)
	if src == nil {
		*slice = nil
		return nil
	}

	elems, err := p.parse(string(src))
	if err != nil {
		return err
	}
	*slice = elems
	return nil
}

func (c ArrayCodec[T]) decode(src []byte) (any, error) {
	return c.parse(string(src))
}

func (c ArrayCodec[T]) DecodeDatabaseSQLValue(m *pgxtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}
	return string(src), nil
}

func (c ArrayCodec[T]) DecodeValue(m *pgxtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	return c.decode(src)
}
