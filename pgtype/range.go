package pgtype

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errUnboundedRange = errors.New("unbounded ranges are not supported")

type LowerBound byte

const (
	IncludeLower LowerBound = '['
	ExcludeLower LowerBound = '('
)

func (b LowerBound) String() string  { return string(rune(b)) }
func (b LowerBound) Inclusive() bool { return b == IncludeLower }
func (b LowerBound) valid() bool     { return b == IncludeLower || b == ExcludeLower }

func (b LowerBound) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(rune(b)))
}

func (b *LowerBound) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) != 1 || !LowerBound(s[0]).valid() {
		return fmt.Errorf("invalid lower bound %q", s)
	}
	*b = LowerBound(s[0])
	return nil
}

type UpperBound byte

const (
	IncludeUpper UpperBound = ']'
	ExcludeUpper UpperBound = ')'
)

func (b UpperBound) String() string  { return string(rune(b)) }
func (b UpperBound) Inclusive() bool { return b == IncludeUpper }
func (b UpperBound) valid() bool     { return b == IncludeUpper || b == ExcludeUpper }

func (b UpperBound) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(rune(b)))
}

func (b *UpperBound) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) != 1 || !UpperBound(s[0]).valid() {
		return fmt.Errorf("invalid upper bound %q", s)
	}
	*b = UpperBound(s[0])
	return nil
}

// ElementType is what a range needs to know about its element type.
type ElementType[T any] struct {
	Name    string
	Parse   func(string) (T, error)
	Format  func(T) string
	Equal   func(a, b T) bool
	Compare func(a, b T) int
}

// RangeType builds and parses ranges over one element type.
type RangeType[T any] struct {
	Name    string
	Element ElementType[T]
}

func NewRangeType[T any](name string, element ElementType[T]) *RangeType[T] {
	return &RangeType[T]{Name: name, Element: element}
}

// Range is a range of T. A range with a half-open pair of bounds and equal endpoints is empty.
type Range[T any] struct {
	typ   *RangeType[T]
	lower LowerBound
	upper UpperBound
	empty bool
	lo    T
	hi    T
}

// RangeObject is the plain-data form of a Range. A nil Value is the empty range.
type RangeObject[T any] struct {
	Lower LowerBound `json:"lower"`
	Upper UpperBound `json:"upper"`
	Value []T        `json:"value"`
}

func (rt *RangeType[T]) Empty() Range[T] {
	return Range[T]{typ: rt, lower: IncludeLower, upper: ExcludeUpper, empty: true}
}

func (rt *RangeType[T]) build(lower LowerBound, upper UpperBound, lo, hi T) (Range[T], error) {
	if !lower.valid() {
		return Range[T]{}, rangeError(rt.Name, fmt.Sprintf("invalid lower bound %q", byte(lower)))
	}
	if !upper.valid() {
		return Range[T]{}, rangeError(rt.Name, fmt.Sprintf("invalid upper bound %q", byte(upper)))
	}

	r := Range[T]{typ: rt, lower: lower, upper: upper, lo: lo, hi: hi}
	if lower.Inclusive() != upper.Inclusive() && rt.Element.Equal(lo, hi) {
		var zero T
		r.empty, r.lo, r.hi = true, zero, zero
	}
	return r, nil
}

func (rt *RangeType[T]) New(lower LowerBound, upper UpperBound, lo, hi T) (Range[T], error) {
	r, err := rt.build(lower, upper, lo, hi)
	if err != nil {
		return Range[T]{}, withKind(err, ErrInvalidArguments)
	}
	return r, nil
}

// FromValues returns [lo,hi).
func (rt *RangeType[T]) FromValues(lo, hi T) Range[T] {
	r, _ := rt.build(IncludeLower, ExcludeUpper, lo, hi)
	return r
}

func (rt *RangeType[T]) FromObject(o RangeObject[T]) (Range[T], error) {
	switch {
	case o.Value == nil:
		r := rt.Empty()
		if o.Lower.valid() {
			r.lower = o.Lower
		}
		if o.Upper.valid() {
			r.upper = o.Upper
		}
		return r, nil
	case len(o.Value) < 2:
		return Range[T]{}, objectError(rt.Name, "too few values")
	case len(o.Value) > 2:
		return Range[T]{}, objectError(rt.Name, "too many values")
	}

	r, err := rt.build(o.Lower, o.Upper, o.Value[0], o.Value[1])
	if err != nil {
		return Range[T]{}, withKind(err, ErrInvalidObject)
	}
	return r, nil
}

// Parse parses the text form of a range: empty, or a lower bound marker, two elements separated by a comma and an
// upper bound marker. Elements may be double quoted and may contain backslash escapes.
func (rt *RangeType[T]) Parse(s string) (Range[T], error) {
	utr, err := parseUntypedTextRange(s)
	if err != nil {
		return Range[T]{}, formatErrorf(rt.Name, err, "")
	}
	if utr.Empty {
		return rt.Empty(), nil
	}

	lo, err := rt.Element.Parse(utr.Lower)
	if err != nil {
		return Range[T]{}, formatErrorf(rt.Name, err, "invalid lower value")
	}
	hi, err := rt.Element.Parse(utr.Upper)
	if err != nil {
		return Range[T]{}, formatErrorf(rt.Name, err, "invalid upper value")
	}

	r, err := rt.build(utr.LowerType, utr.UpperType, lo, hi)
	if err != nil {
		return Range[T]{}, withKind(err, ErrInvalidFormat)
	}
	return r, nil
}

// Is reports whether v is a Range built by rt.
func (rt *RangeType[T]) Is(v any) bool {
	switch v := v.(type) {
	case Range[T]:
		return v.typ == rt
	case *Range[T]:
		return v != nil && v.typ == rt
	}
	return false
}

func (r Range[T]) Type() *RangeType[T]    { return r.typ }
func (r Range[T]) LowerBound() LowerBound { return r.lower }
func (r Range[T]) UpperBound() UpperBound { return r.upper }

// IsEmpty reports whether r is the empty range. The zero Range, which has no RangeType, is empty.
func (r Range[T]) IsEmpty() bool { return r.empty || r.typ == nil }

// LowerValue returns the lower endpoint. ok is false for the empty range.
func (r Range[T]) LowerValue() (v T, ok bool) {
	return r.lo, !r.IsEmpty()
}

// UpperValue returns the upper endpoint. ok is false for the empty range.
func (r Range[T]) UpperValue() (v T, ok bool) {
	return r.hi, !r.IsEmpty()
}

func (r Range[T]) untypedError() error {
	var zero T
	return argumentsError(fmt.Sprintf("Range[%T]", zero), "range has no type")
}

// WithBounds returns r with new bound markers. An empty range stays empty.
func (r Range[T]) WithBounds(lower LowerBound, upper UpperBound) (Range[T], error) {
	if r.typ == nil {
		return r, r.untypedError()
	}
	if r.empty {
		if !lower.valid() || !upper.valid() {
			return r, rangeError(r.typ.Name, "invalid bound")
		}
		r.lower, r.upper = lower, upper
		return r, nil
	}
	return r.typ.build(lower, upper, r.lo, r.hi)
}

func (r Range[T]) WithValue(lo, hi T) (Range[T], error) {
	if r.typ == nil {
		return r, r.untypedError()
	}
	return r.typ.build(r.lower, r.upper, lo, hi)
}

// WithEmpty returns the empty range with r's bound markers.
func (r Range[T]) WithEmpty() Range[T] {
	var zero T
	r.empty, r.lo, r.hi = true, zero, zero
	return r
}

// Contains reports whether v lies within r.
func (r Range[T]) Contains(v T) bool {
	if r.IsEmpty() {
		return false
	}

	compare := r.typ.Element.Compare
	lo := compare(v, r.lo)
	hi := compare(v, r.hi)

	switch {
	case r.lower.Inclusive() && r.upper.Inclusive():
		return lo >= 0 && hi <= 0
	case r.lower.Inclusive():
		return lo >= 0 && hi < 0
	case r.upper.Inclusive():
		return lo > 0 && hi <= 0
	default:
		return lo > 0 && hi < 0
	}
}

func (r Range[T]) String() string {
	if r.IsEmpty() {
		return "empty"
	}

	format := r.typ.Element.Format
	return r.lower.String() + quoteRangeElement(format(r.lo)) + "," + quoteRangeElement(format(r.hi)) + r.upper.String()
}

func (r Range[T]) Object() RangeObject[T] {
	o := RangeObject[T]{Lower: r.lower, Upper: r.upper}
	if r.typ == nil {
		o.Lower, o.Upper = IncludeLower, ExcludeUpper
	}
	if !r.IsEmpty() {
		o.Value = []T{r.lo, r.hi}
	}
	return o
}

func (r Range[T]) equal(other Range[T]) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return r.IsEmpty() == other.IsEmpty()
	}
	eq := r.typ.Element.Equal
	return r.lower == other.lower && r.upper == other.upper && eq(r.lo, other.lo) && eq(r.hi, other.hi)
}

// Equal reports whether other is the same range. other may be a Range, its text, a RangeObject, or a [2]T or []T
// pair taken as [lo,hi).
func (r Range[T]) Equal(other any) bool {
	if r.typ == nil {
		return r.equalUntyped(other)
	}

	switch other := other.(type) {
	case Range[T]:
		return r.equal(other)
	case *Range[T]:
		return other != nil && r.equal(*other)
	case string:
		o, err := r.typ.Parse(other)
		return err == nil && r.equal(o)
	case RangeObject[T]:
		o, err := r.typ.FromObject(other)
		return err == nil && r.equal(o)
	case [2]T:
		return r.equal(r.typ.FromValues(other[0], other[1]))
	case []T:
		return len(other) == 2 && r.equal(r.typ.FromValues(other[0], other[1]))
	}
	return false
}

// equalUntyped compares the zero Range, which is only equal to empty ranges.
func (r Range[T]) equalUntyped(other any) bool {
	switch other := other.(type) {
	case Range[T]:
		return other.IsEmpty()
	case *Range[T]:
		return other != nil && other.IsEmpty()
	case string:
		return strings.EqualFold(strings.TrimSpace(other), "empty")
	case RangeObject[T]:
		return other.Value == nil
	}
	return false
}

func (r Range[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Object())
}

// UnmarshalJSON decodes the text or object form of a range. r must already carry its RangeType, for example by
// starting from RangeType.Empty.
func (r *Range[T]) UnmarshalJSON(data []byte) error {
	if r.typ == nil {
		return fmt.Errorf("cannot unmarshal into %T without a range type", r)
	}

	v, err := unmarshalValue(data, r.typ.Parse, r.typ.FromObject)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Scan implements the database/sql Scanner interface. Like UnmarshalJSON it needs r to carry its RangeType.
func (r *Range[T]) Scan(src any) error {
	if r.typ == nil {
		return fmt.Errorf("cannot scan into %T without a range type", r)
	}

	v, err := scanText(src, r.typ.Parse)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (r Range[T]) Value() (driver.Value, error) {
	return r.String(), nil
}

// quoteRangeElement quotes s the way PostgreSQL's range_out does.
func quoteRangeElement(s string) string {
	if s != "" && !strings.ContainsAny(s, "\"\\,()[] \t\n\r\v\f") {
		return s
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte(s[i])
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

type untypedTextRange struct {
	Lower     string
	Upper     string
	LowerType LowerBound
	UpperType UpperBound
	Empty     bool
}

func parseUntypedTextRange(src string) (*untypedTextRange, error) {
	utr := &untypedTextRange{}
	if strings.EqualFold(strings.TrimSpace(src), "empty") {
		utr.Empty = true
		return utr, nil
	}

	buf := bytes.NewBufferString(src)

	skipWhitespace(buf)

	r, _, err := buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("missing bound markers: %w", err)
	}
	switch r {
	case '(':
		utr.LowerType = ExcludeLower
	case '[':
		utr.LowerType = IncludeLower
	default:
		return nil, fmt.Errorf("missing bound markers, instead got: %v", string(r))
	}

	r, _, err = buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid lower value: %w", err)
	}
	buf.UnreadRune()

	if r == ',' {
		return nil, errUnboundedRange
	}
	utr.Lower, err = rangeParseValue(buf)
	if err != nil {
		return nil, fmt.Errorf("invalid lower value: %w", err)
	}

	r, _, err = buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("expected 2 values: %w", err)
	}
	if r != ',' {
		return nil, fmt.Errorf("expected 2 values, instead got: %v", string(r))
	}

	r, _, err = buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid upper value: %w", err)
	}
	if r == ')' || r == ']' {
		return nil, errUnboundedRange
	}
	buf.UnreadRune()

	utr.Upper, err = rangeParseValue(buf)
	if err != nil {
		return nil, fmt.Errorf("invalid upper value: %w", err)
	}

	r, _, err = buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("missing bound markers: %w", err)
	}
	switch r {
	case ')':
		utr.UpperType = ExcludeUpper
	case ']':
		utr.UpperType = IncludeUpper
	case ',':
		return nil, errors.New("expected 2 values, got more")
	default:
		return nil, fmt.Errorf("missing bound markers, instead got: %v", string(r))
	}

	skipWhitespace(buf)

	if buf.Len() > 0 {
		return nil, fmt.Errorf("unexpected trailing data: %v", buf.String())
	}

	return utr, nil
}

func rangeParseValue(buf *bytes.Buffer) (string, error) {
	r, _, err := buf.ReadRune()
	if err != nil {
		return "", err
	}
	if r == '"' {
		return rangeParseQuotedValue(buf)
	}
	buf.UnreadRune()

	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case '\\':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", err
			}
		case ',', '[', ']', '(', ')':
			buf.UnreadRune()
			return s.String(), nil
		}

		s.WriteRune(r)
	}
}

func rangeParseQuotedValue(buf *bytes.Buffer) (string, error) {
	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case '\\':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", err
			}
		case '"':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", err
			}
			if r != '"' {
				buf.UnreadRune()
				return s.String(), nil
			}
		}
		s.WriteRune(r)
	}
}
