package extpg

import (
	"github.com/extpg/extpg/pgtype"
)

// TextParser parses one field in text format. A nil src is SQL NULL and yields a nil value.
type TextParser func(src *string) (any, error)

// Registrar is the driver hook that extpg types are registered with.
type Registrar interface {
	RegisterTextParser(oid uint32, fn TextParser)
	RegisterArrayParser(oid uint32, fn TextParser)
}

// Type describes one PostgreSQL type and how to parse its text form.
type Type struct {
	// Name is the Go type name, e.g. Int4Range.
	Name string

	// SQLName is the PostgreSQL type name, e.g. int4range.
	SQLName string

	OID      uint32
	ArrayOID uint32

	// ArrayDelimiter separates array elements. It is "," for every built-in type except box.
	ArrayDelimiter string

	parse      func(string) (any, error)
	parseArray func(src, delim string) (any, error)
}

// NewType returns a Type whose values are parsed by parse. Arrays of the type parse to []T.
func NewType[T any](name, sqlName string, oid, arrayOID uint32, parse func(string) (T, error)) *Type {
	return &Type{
		Name:           name,
		SQLName:        sqlName,
		OID:            oid,
		ArrayOID:       arrayOID,
		ArrayDelimiter: ",",
		parse: func(s string) (any, error) {
			return parse(s)
		},
		parseArray: func(src, delim string) (any, error) {
			elems, err := pgtype.ParseArray(src, delim, parse)
			if err != nil || elems == nil {
				return nil, err
			}
			return elems, nil
		},
	}
}

// ParseScalar parses the text form of a single value.
func (t *Type) ParseScalar(src *string) (any, error) {
	if src == nil {
		return nil, nil
	}
	return t.parse(*src)
}

// ParseArray parses the text form of an array of t. Text that is not framed as an array yields nil.
func (t *Type) ParseArray(src *string) (any, error) {
	if src == nil {
		return nil, nil
	}
	return t.parseArray(*src, t.ArrayDelimiter)
}

// Register registers the scalar and array parsers of each type with r.
func Register(r Registrar, types ...*Type) {
	if m, ok := r.(*Map); ok {
		for _, t := range types {
			m.RegisterType(t)
		}
		return
	}

	for _, t := range types {
		r.RegisterTextParser(t.OID, t.ParseScalar)
		if t.ArrayOID != 0 {
			r.RegisterArrayParser(t.ArrayOID, t.ParseArray)
		}
	}
}

// DefaultTypes returns a new descriptor for every built-in type.
func DefaultTypes() []*Type {
	box := NewType("Box", "box", pgtype.BoxOID, pgtype.BoxArrayOID, pgtype.ParseBox)
	box.ArrayDelimiter = pgtype.Box{}.ArrayDelimiter()

	return []*Type{
		NewType("Date", "date", pgtype.DateOID, pgtype.DateArrayOID, pgtype.ParseDate),
		NewType("Time", "time", pgtype.TimeOID, pgtype.TimeArrayOID, pgtype.ParseTime),
		NewType("TimeTZ", "timetz", pgtype.TimetzOID, pgtype.TimetzArrayOID, pgtype.ParseTimeTZ),
		NewType("Timestamp", "timestamp", pgtype.TimestampOID, pgtype.TimestampArrayOID, pgtype.ParseTimestamp),
		NewType("TimestampTZ", "timestamptz", pgtype.TimestamptzOID, pgtype.TimestamptzArrayOID, pgtype.ParseTimestampTZ),
		NewType("Interval", "interval", pgtype.IntervalOID, pgtype.IntervalArrayOID, pgtype.ParseInterval),

		NewType("Point", "point", pgtype.PointOID, pgtype.PointArrayOID, pgtype.ParsePoint),
		box,
		NewType("Circle", "circle", pgtype.CircleOID, pgtype.CircleArrayOID, pgtype.ParseCircle),
		NewType("Line", "line", pgtype.LineOID, pgtype.LineArrayOID, pgtype.ParseLine),
		NewType("LineSegment", "lseg", pgtype.LsegOID, pgtype.LsegArrayOID, pgtype.ParseLineSegment),
		NewType("Path", "path", pgtype.PathOID, pgtype.PathArrayOID, pgtype.ParsePath),
		NewType("Polygon", "polygon", pgtype.PolygonOID, pgtype.PolygonArrayOID, pgtype.ParsePolygon),

		NewType("MACAddress", "macaddr", pgtype.MacaddrOID, pgtype.MacaddrArrayOID, pgtype.ParseMACAddress),
		NewType("MACAddress8", "macaddr8", pgtype.Macaddr8OID, pgtype.Macaddr8ArrayOID, pgtype.ParseMACAddress8),
		NewType("UUID", "uuid", pgtype.UUIDOID, pgtype.UUIDArrayOID, pgtype.ParseUUID),

		NewType("Int2", "int2", pgtype.Int2OID, pgtype.Int2ArrayOID, pgtype.ParseInt2),
		NewType("Int4", "int4", pgtype.Int4OID, pgtype.Int4ArrayOID, pgtype.ParseInt4),
		NewType("Int8", "int8", pgtype.Int8OID, pgtype.Int8ArrayOID, pgtype.ParseInt8),

		NewType("Int4Range", "int4range", pgtype.Int4rangeOID, pgtype.Int4rangeArrayOID, pgtype.ParseInt4Range),
		NewType("Int8Range", "int8range", pgtype.Int8rangeOID, pgtype.Int8rangeArrayOID, pgtype.ParseInt8Range),
		NewType("DateRange", "daterange", pgtype.DaterangeOID, pgtype.DaterangeArrayOID, pgtype.ParseDateRange),
		NewType("TimestampRange", "tsrange", pgtype.TsrangeOID, pgtype.TsrangeArrayOID, pgtype.ParseTimestampRange),
		NewType("TimestampTZRange", "tstzrange", pgtype.TstzrangeOID, pgtype.TstzrangeArrayOID, pgtype.ParseTimestampTZRange),

		NewType("Int4Multirange", "int4multirange", pgtype.Int4multirangeOID, pgtype.Int4multirangeArrayOID, pgtype.ParseInt4Multirange),
		NewType("Int8Multirange", "int8multirange", pgtype.Int8multirangeOID, pgtype.Int8multirangeArrayOID, pgtype.ParseInt8Multirange),
		NewType("DateMultirange", "datemultirange", pgtype.DatemultirangeOID, pgtype.DatemultirangeArrayOID, pgtype.ParseDateMultirange),
		NewType("TimestampMultirange", "tsmultirange", pgtype.TsmultirangeOID, pgtype.TsmultirangeArrayOID, pgtype.ParseTimestampMultirange),
		NewType("TimestampTZMultirange", "tstzmultirange", pgtype.TstzmultirangeOID, pgtype.TstzmultirangeArrayOID, pgtype.ParseTimestampTZMultirange),
	}
}
