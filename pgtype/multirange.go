package pgtype

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// MultirangeType builds and parses multiranges of one range type.
type MultirangeType[T any] struct {
	Name  string
	Range *RangeType[T]
}

func NewMultirangeType[T any](name string, rangeType *RangeType[T]) *MultirangeType[T] {
	return &MultirangeType[T]{Name: name, Range: rangeType}
}

// Multirange is an ordered list of ranges. Order is kept as given and significant to equality; overlapping or
// adjacent ranges are not merged.
type Multirange[T any] struct {
	typ    *MultirangeType[T]
	ranges []Range[T]
}

type MultirangeObject[T any] struct {
	Ranges []RangeObject[T] `json:"ranges"`
}

func (mt *MultirangeType[T]) build(ranges []Range[T]) (Multirange[T], error) {
	for i, r := range ranges {
		if r.typ != mt.Range {
			return Multirange[T]{}, rangeError(mt.Name, fmt.Sprintf("range %d is not a %s", i, mt.Range.Name))
		}
	}
	return Multirange[T]{typ: mt, ranges: append([]Range[T](nil), ranges...)}, nil
}

func (mt *MultirangeType[T]) New(ranges ...Range[T]) (Multirange[T], error) {
	m, err := mt.build(ranges)
	if err != nil {
		return Multirange[T]{}, withKind(err, ErrInvalidArguments)
	}
	return m, nil
}

func (mt *MultirangeType[T]) FromObject(o MultirangeObject[T]) (Multirange[T], error) {
	ranges := make([]Range[T], len(o.Ranges))
	for i, ro := range o.Ranges {
		r, err := mt.Range.FromObject(ro)
		if err != nil {
			return Multirange[T]{}, &ParseError{TypeName: mt.Name, Kind: ErrInvalidObject, Reason: "invalid ranges", Err: err}
		}
		ranges[i] = r
	}
	return Multirange[T]{typ: mt, ranges: ranges}, nil
}

// Parse parses {r1,r2,...}. {} is the empty multirange.
func (mt *MultirangeType[T]) Parse(s string) (Multirange[T], error) {
	elements, err := parseUntypedTextMultirange(s)
	if err != nil {
		return Multirange[T]{}, formatErrorf(mt.Name, err, "")
	}

	ranges := make([]Range[T], len(elements))
	for i, e := range elements {
		r, err := mt.Range.Parse(e)
		if err != nil {
			return Multirange[T]{}, formatErrorf(mt.Name, err, "invalid ranges")
		}
		ranges[i] = r
	}
	return Multirange[T]{typ: mt, ranges: ranges}, nil
}

// Is reports whether v is a Multirange built by mt.
func (mt *MultirangeType[T]) Is(v any) bool {
	switch v := v.(type) {
	case Multirange[T]:
		return v.typ == mt
	case *Multirange[T]:
		return v != nil && v.typ == mt
	}
	return false
}

func (m Multirange[T]) Type() *MultirangeType[T] { return m.typ }
func (m Multirange[T]) Len() int                 { return len(m.ranges) }

// Ranges returns a copy of the ranges of m.
func (m Multirange[T]) Ranges() []Range[T] {
	return append([]Range[T](nil), m.ranges...)
}

func (m Multirange[T]) WithRanges(ranges ...Range[T]) (Multirange[T], error) {
	if m.typ == nil {
		var zero T
		return m, argumentsError(fmt.Sprintf("Multirange[%T]", zero), "multirange has no type")
	}
	return m.typ.build(ranges)
}

// Contains reports whether any range of m contains v.
func (m Multirange[T]) Contains(v T) bool {
	for _, r := range m.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

func (m Multirange[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range m.ranges {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (m Multirange[T]) Object() MultirangeObject[T] {
	ranges := make([]RangeObject[T], len(m.ranges))
	for i, r := range m.ranges {
		ranges[i] = r.Object()
	}
	return MultirangeObject[T]{Ranges: ranges}
}

func (m Multirange[T]) equalRanges(ranges []Range[T]) bool {
	if len(m.ranges) != len(ranges) {
		return false
	}
	for i := range m.ranges {
		if !m.ranges[i].equal(ranges[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether other holds the same ranges in the same order. The zero Multirange, which has no
// MultirangeType, equals only empty multiranges.
func (m Multirange[T]) Equal(other any) bool {
	if m.typ == nil {
		switch other := other.(type) {
		case string:
			elements, err := parseUntypedTextMultirange(other)
			return err == nil && len(elements) == 0
		case MultirangeObject[T]:
			return len(other.Ranges) == 0
		}
	}

	switch other := other.(type) {
	case Multirange[T]:
		return m.equalRanges(other.ranges)
	case *Multirange[T]:
		return other != nil && m.equalRanges(other.ranges)
	case []Range[T]:
		return m.equalRanges(other)
	case string:
		o, err := m.typ.Parse(other)
		return err == nil && m.equalRanges(o.ranges)
	case MultirangeObject[T]:
		o, err := m.typ.FromObject(other)
		return err == nil && m.equalRanges(o.ranges)
	}
	return false
}

func (m Multirange[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Object())
}

// UnmarshalJSON decodes the text or object form of a multirange. m must already carry its MultirangeType.
func (m *Multirange[T]) UnmarshalJSON(data []byte) error {
	if m.typ == nil {
		return fmt.Errorf("cannot unmarshal into %T without a multirange type", m)
	}

	v, err := unmarshalValue(data, m.typ.Parse, m.typ.FromObject)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Scan implements the database/sql Scanner interface. m must already carry its MultirangeType.
func (m *Multirange[T]) Scan(src any) error {
	if m.typ == nil {
		return fmt.Errorf("cannot scan into %T without a multirange type", m)
	}

	v, err := scanText(src, m.typ.Parse)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (m Multirange[T]) Value() (driver.Value, error) {
	return m.String(), nil
}

// parseUntypedTextMultirange splits {r1,r2,...} into the text of each range. Each range holds one comma of its own,
// so a comma only ends a range once that range's bound separator and closing marker have been read.
func parseUntypedTextMultirange(src string) ([]string, error) {
	elements := make([]string, 0)

	buf := bytes.NewBufferString(src)

	skipWhitespace(buf)

	r, _, err := buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid multirange: %w", err)
	}
	if r != '{' {
		return nil, fmt.Errorf("invalid multirange, expected '{' got %v", string(r))
	}

	// expectRange is set after a ',' and cleared once the next range is read.
	expectRange := false

parseValueLoop:
	for {
		r, _, err = buf.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("invalid multirange: %w", err)
		}

		switch r {
		case ',':
			if len(elements) == 0 || expectRange {
				return nil, fmt.Errorf("invalid multirange, unexpected ','")
			}
			expectRange = true
		case '}':
			if expectRange {
				return nil, fmt.Errorf("invalid multirange, unexpected '}' after ','")
			}
			break parseValueLoop
		case ' ', '\t', '\n', '\r':
		default:
			if len(elements) > 0 && !expectRange {
				return nil, fmt.Errorf("invalid multirange, expected ',' got %v", string(r))
			}
			buf.UnreadRune()
			value, err := multirangeParseRange(buf)
			if err != nil {
				return nil, fmt.Errorf("invalid multirange value: %w", err)
			}
			elements = append(elements, value)
			expectRange = false
		}
	}

	skipWhitespace(buf)

	if buf.Len() > 0 {
		return nil, fmt.Errorf("unexpected trailing data: %v", buf.String())
	}

	return elements, nil
}

// multirangeParseRange reads the text of one range, honouring double quotes and backslash escapes.
func multirangeParseRange(buf *bytes.Buffer) (string, error) {
	s := &bytes.Buffer{}
	bounded := false
	boundSepRead := false
	upperRead := false
	inQuote := false

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", err
		}

		if s.Len() == 0 && (r == '[' || r == '(') {
			bounded = true
			s.WriteRune(r)
			continue
		}

		switch {
		case r == '\\':
			s.WriteRune(r)
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", err
			}
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case (r == ',' || r == '}') && (!bounded || upperRead):
			buf.UnreadRune()
			return strings.TrimSpace(s.String()), nil
		case r == ',' && !boundSepRead:
			boundSepRead = true
		case (r == ')' || r == ']') && boundSepRead:
			upperRead = true
		}

		s.WriteRune(r)
	}
}
