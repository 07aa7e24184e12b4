package pgxcodec

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/extpg/extpg/pgtype"
	pgxtype "github.com/jackc/pgx/v5/pgtype"
)

// TextCodec is a text format pgx codec for T. Values of other Go types are planned by Fallback, usually the codec
// pgx had registered for the OID before.
type TextCodec[T pgtype.Value] struct {
	Parse    func(string) (T, error)
	Fallback pgxtype.Codec
}

func (TextCodec[T]) FormatSupported(format int16) bool {
	return format == pgxtype.TextFormatCode
}

func (TextCodec[T]) PreferredFormat() int16 {
	return pgxtype.TextFormatCode
}

func (c TextCodec[T]) PlanEncode(m *pgxtype.Map, oid uint32, format int16, value any) pgxtype.EncodePlan {
	if format != pgxtype.TextFormatCode {
		return nil
	}

	switch value.(type) {
	case T, *T, string:
		return encodePlanTextValue[T]{parse: c.Parse}
	}

	if c.Fallback != nil {
		return c.Fallback.PlanEncode(m, oid, format, value)
	}
	return nil
}

type encodePlanTextValue[T pgtype.Value] struct {
	parse func(string) (T, error)
}

func (p encodePlanTextValue[T]) Encode(value any, buf []byte) (newBuf []byte, err error) {
	var v T
	switch value := value.(type) {
	case T:
		v = value
	case *T:
		if value == nil {
			return nil, nil
		}
		v = *value
	case string:
		v, err = p.parse(value)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cannot encode %T", value)
	}

	return append(buf, v.String()...), nil
}

func (c TextCodec[T]) PlanScan(m *pgxtype.Map, oid uint32, format int16, target any) pgxtype.ScanPlan {
	if format != pgxtype.TextFormatCode {
		return nil
	}

	switch target.(type) {
	case *T:
		return scanPlanTextToValue[T]{parse: c.Parse}
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

type scanPlanTextToValue[T pgtype.Value] struct {
	parse func(string) (T, error)
}

func (p scanPlanTextToValue[T]) Scan(src []byte, dst any) error {
	if src == nil {
		return fmt.Errorf("cannot scan NULL into %T", dst)
	}

	v, err := p.parse(string(src))
	if err != nil {
		return err
	}
	*(dst.(*T)) = v
	return nil
}

func (c TextCodec[T]) decode(src []byte) (any, error) {
	return c.Parse(string(src))
}

func (c TextCodec[T]) DecodeDatabaseSQLValue(m *pgxtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}
	return string(src), nil
}

func (c TextCodec[T]) DecodeValue(m *pgxtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	return c.decode(src)
}

type scanPlanTextToString struct{}

func (scanPlanTextToString) Scan(src []byte, dst any) error {
	if src == nil {
		return fmt.Errorf("cannot scan NULL into %T", dst)
	}
	*(dst.(*string)) = string(src)
	return nil
}

type scanPlanTextToAny struct {
	decode func([]byte) (any, error)
}

func (p scanPlanTextToAny) Scan(src []byte, dst any) error {
	if src == nil {
		*(dst.(*any)) = nil
		return nil
	}

	v, err := p.decode(src)
	if err != nil {
		return err
	}
	*(dst.(*any)) = v
	return nil
}

type scanPlanTextToSQLScanner struct{}

func (scanPlanTextToSQLScanner) Scan(src []byte, dst any) error {
	scanner := dst.(sql.Scanner)
	if src == nil {
		return scanner.Scan(nil)
	}
	return scanner.Scan(string(src))
}
