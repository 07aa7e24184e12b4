package pgtype

func sameValue[T comparable](a, b T) bool { return a == b }

// Element types for the built-in range types. Timestamps compare by instant; TimestampTZ endpoints are equal only
// when date, clock and offset all match.
var (
	Int4Element = ElementType[Int4]{
		Name:    "Int4",
		Parse:   ParseInt4,
		Format:  Int4.String,
		Equal:   sameValue[Int4],
		Compare: Int4.Compare,
	}

	Int8Element = ElementType[Int8]{
		Name:    "Int8",
		Parse:   ParseInt8,
		Format:  Int8.String,
		Equal:   sameValue[Int8],
		Compare: Int8.Compare,
	}

	DateElement = ElementType[Date]{
		Name:    "Date",
		Parse:   ParseDate,
		Format:  Date.String,
		Equal:   sameValue[Date],
		Compare: Date.Compare,
	}

	TimestampElement = ElementType[Timestamp]{
		Name:    "Timestamp",
		Parse:   ParseTimestamp,
		Format:  Timestamp.String,
		Equal:   sameValue[Timestamp],
		Compare: Timestamp.Compare,
	}

	TimestampTZElement = ElementType[TimestampTZ]{
		Name:    "TimestampTZ",
		Parse:   ParseTimestampTZ,
		Format:  TimestampTZ.String,
		Equal:   func(a, b TimestampTZ) bool { return a.Equal(b) },
		Compare: TimestampTZ.Compare,
	}
)

var (
	Int4RangeType        = NewRangeType("Int4Range", Int4Element)
	Int8RangeType        = NewRangeType("Int8Range", Int8Element)
	DateRangeType        = NewRangeType("DateRange", DateElement)
	TimestampRangeType   = NewRangeType("TimestampRange", TimestampElement)
	TimestampTZRangeType = NewRangeType("TimestampTZRange", TimestampTZElement)
)

var (
	Int4MultirangeType        = NewMultirangeType("Int4Multirange", Int4RangeType)
	Int8MultirangeType        = NewMultirangeType("Int8Multirange", Int8RangeType)
	DateMultirangeType        = NewMultirangeType("DateMultirange", DateRangeType)
	TimestampMultirangeType   = NewMultirangeType("TimestampMultirange", TimestampRangeType)
	TimestampTZMultirangeType = NewMultirangeType("TimestampTZMultirange", TimestampTZRangeType)
)

// Convenience wrappers over the built-in range and multirange types.

func ParseInt4Range(s string) (Range[Int4], error)               { return Int4RangeType.Parse(s) }
func ParseInt8Range(s string) (Range[Int8], error)               { return Int8RangeType.Parse(s) }
func ParseDateRange(s string) (Range[Date], error)               { return DateRangeType.Parse(s) }
func ParseTimestampRange(s string) (Range[Timestamp], error)     { return TimestampRangeType.Parse(s) }
func ParseTimestampTZRange(s string) (Range[TimestampTZ], error) { return TimestampTZRangeType.Parse(s) }

func ParseInt4Multirange(s string) (Multirange[Int4], error) { return Int4MultirangeType.Parse(s) }
func ParseInt8Multirange(s string) (Multirange[Int8], error) { return Int8MultirangeType.Parse(s) }
func ParseDateMultirange(s string) (Multirange[Date], error) { return DateMultirangeType.Parse(s) }

func ParseTimestampMultirange(s string) (Multirange[Timestamp], error) {
	return TimestampMultirangeType.Parse(s)
}

func ParseTimestampTZMultirange(s string) (Multirange[TimestampTZ], error) {
	return TimestampTZMultirangeType.Parse(s)
}
