// Package pgxcodec registers extpg types as codecs on a github.com/jackc/pgx/v5 type map.
//
// Registered types are transferred in text format. Go types the codecs do not know, such as int32 for int4 or
// time.Time for date, are planned by the codec pgx had registered for the OID before, so registering a type does
// not take away pgx's own conversions for it.
package pgxcodec

import (
	"fmt"

	"github.com/extpg/extpg"
	"github.com/extpg/extpg/pgtype"
	pgxtype "github.com/jackc/pgx/v5/pgtype"
)

type registerFunc func(m *pgxtype.Map, t *extpg.Type)

func builtin[T pgtype.Value](parse func(string) (T, error)) registerFunc {
	return func(m *pgxtype.Map, t *extpg.Type) {
		RegisterType(m, t, parse)
	}
}

var builtins = map[string]registerFunc{
	"Date":        builtin(pgtype.ParseDate),
	"Time":        builtin(pgtype.ParseTime),
	"TimeTZ":      builtin(pgtype.ParseTimeTZ),
	"Timestamp":   builtin(pgtype.ParseTimestamp),
	"TimestampTZ": builtin(pgtype.ParseTimestampTZ),
	"Interval":    builtin(pgtype.ParseInterval),

	"Point":       builtin(pgtype.ParsePoint),
	"Box":         builtin(pgtype.ParseBox),
	"Circle":      builtin(pgtype.ParseCircle),
	"Line":        builtin(pgtype.ParseLine),
	"LineSegment": builtin(pgtype.ParseLineSegment),
	"Path":        builtin(pgtype.ParsePath),
	"Polygon":     builtin(pgtype.ParsePolygon),

	"MACAddress":  builtin(pgtype.ParseMACAddress),
	"MACAddress8": builtin(pgtype.ParseMACAddress8),
	"UUID":        builtin(pgtype.ParseUUID),

	"Int2": builtin(pgtype.ParseInt2),
	"Int4": builtin(pgtype.ParseInt4),
	"Int8": builtin(pgtype.ParseInt8),

	"Int4Range":        builtin(pgtype.ParseInt4Range),
	"Int8Range":        builtin(pgtype.ParseInt8Range),
	"DateRange":        builtin(pgtype.ParseDateRange),
	"TimestampRange":   builtin(pgtype.ParseTimestampRange),
	"TimestampTZRange": builtin(pgtype.ParseTimestampTZRange),

	"Int4Multirange":        builtin(pgtype.ParseInt4Multirange),
	"Int8Multirange":        builtin(pgtype.ParseInt8Multirange),
	"DateMultirange":        builtin(pgtype.ParseDateMultirange),
	"TimestampMultirange":   builtin(pgtype.ParseTimestampMultirange),
	"TimestampTZMultirange": builtin(pgtype.ParseTimestampTZMultirange),
}

// Register registers a codec for each of the built-in types and its array type on m. Types created with
// extpg.NewType are registered with RegisterType instead.
func Register(m *pgxtype.Map, types ...*extpg.Type) error {
	for _, t := range types {
		if _, ok := builtins[t.Name]; !ok {
			return fmt.Errorf("pgxcodec: no codec for type %s", t.Name)
		}
	}

	for _, t := range types {
		builtins[t.Name](m, t)
	}
	return nil
}

// RegisterType registers a TextCodec for t and an ArrayCodec for its array type on m. Scanning into *any yields
// T and []T.
func RegisterType[T pgtype.Value](m *pgxtype.Map, t *extpg.Type, parse func(string) (T, error)) {
	codec := TextCodec[T]{Parse: parse}
	if prev, ok := m.TypeForOID(t.OID); ok {
		codec.Fallback = prev.Codec
	}
	m.RegisterType(&pgxtype.Type{Name: t.SQLName, OID: t.OID, Codec: codec})

	var zero T
	m.RegisterDefaultPgType(zero, t.SQLName)

	if t.ArrayOID == 0 {
		return
	}

	arrayCodec := ArrayCodec[T]{Parse: parse, Delimiter: t.ArrayDelimiter}
	if prev, ok := m.TypeForOID(t.ArrayOID); ok {
		arrayCodec.Fallback = prev.Codec
	}
	m.RegisterType(&pgxtype.Type{Name: "_" + t.SQLName, OID: t.ArrayOID, Codec: arrayCodec})
	m.RegisterDefaultPgType([]T{}, "_"+t.SQLName)
}
