package pgtype

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Information on the text format of PostgreSQL arrays can be found in
// src/backend/utils/adt/arrayfuncs.c. Of particular interest are the
// array_in and array_out functions.

type ArrayDimension struct {
	Length     int32
	LowerBound int32
}

// UntypedTextArray is an array split into the raw text of its elements. Nested arrays are flattened in row-major
// order; Dimensions records their shape.
type UntypedTextArray struct {
	Elements   []string
	Quoted     []bool
	Dimensions []ArrayDimension
}

// IsNull reports whether element i was an unquoted NULL.
func (uta *UntypedTextArray) IsNull(i int) bool {
	return !uta.Quoted[i] && strings.EqualFold(uta.Elements[i], "NULL")
}

// ParseUntypedTextArray parses src with the element delimiter delim. delim is "," for every type except box.
func ParseUntypedTextArray(src, delim string) (*UntypedTextArray, error) {
	if utf8.RuneCountInString(delim) != 1 {
		return nil, fmt.Errorf("invalid array delimiter %q", delim)
	}
	d, _ := utf8.DecodeRuneInString(delim)

	uta := &UntypedTextArray{
		Elements: []string{},
		Quoted:   []bool{},
	}

	buf := bytes.NewBufferString(src)

	skipWhitespace(buf)

	r, _, err := buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid array: %w", err)
	}

	var explicitDimensions []ArrayDimension

	// Array has explicit dimensions
	if r == '[' {
		buf.UnreadRune()

		for {
			r, _, err = buf.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("invalid array: %w", err)
			}

			if r == '=' {
				break
			} else if r != '[' {
				return nil, fmt.Errorf("invalid array, expected '[' or '=' got %v", string(r))
			}

			lower, err := arrayParseInteger(buf)
			if err != nil {
				return nil, fmt.Errorf("invalid array: %w", err)
			}

			r, _, err = buf.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("invalid array: %w", err)
			}

			if r != ':' {
				return nil, fmt.Errorf("invalid array, expected ':' got %v", string(r))
			}

			upper, err := arrayParseInteger(buf)
			if err != nil {
				return nil, fmt.Errorf("invalid array: %w", err)
			}

			r, _, err = buf.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("invalid array: %w", err)
			}

			if r != ']' {
				return nil, fmt.Errorf("invalid array, expected ']' got %v", string(r))
			}

			explicitDimensions = append(explicitDimensions, ArrayDimension{LowerBound: lower, Length: upper - lower + 1})
		}

		r, _, err = buf.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("invalid array: %w", err)
		}
	}

	if r != '{' {
		return nil, fmt.Errorf("invalid array, expected '{' got %v", string(r))
	}

	implicitDimensions := []ArrayDimension{{LowerBound: 1, Length: 0}}

	// Consume all initial opening brackets. This provides number of dimensions.
	for {
		skipWhitespace(buf)
		r, _, err = buf.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("invalid array: %w", err)
		}

		if r == '{' {
			implicitDimensions[len(implicitDimensions)-1].Length = 1
			implicitDimensions = append(implicitDimensions, ArrayDimension{LowerBound: 1})
		} else {
			buf.UnreadRune()
			break
		}
	}
	currentDim := len(implicitDimensions) - 1
	counterDim := currentDim

	for {
		r, _, err = buf.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("invalid array: %w", err)
		}

		switch {
		case r == '{':
			if currentDim == counterDim {
				implicitDimensions[currentDim].Length++
			}
			currentDim++
		case r == d:
		case r == '}':
			currentDim--
			if currentDim < counterDim {
				counterDim = currentDim
			}
		case unicode.IsSpace(r):
		default:
			buf.UnreadRune()
			value, quoted, err := arrayParseValue(buf, d)
			if err != nil {
				return nil, fmt.Errorf("invalid array value: %w", err)
			}
			if currentDim == counterDim {
				implicitDimensions[currentDim].Length++
			}
			uta.Elements = append(uta.Elements, value)
			uta.Quoted = append(uta.Quoted, quoted)
		}

		if currentDim < 0 {
			break
		}
	}

	skipWhitespace(buf)

	if buf.Len() > 0 {
		return nil, fmt.Errorf("unexpected trailing data: %v", buf.String())
	}

	if len(explicitDimensions) > 0 {
		uta.Dimensions = explicitDimensions
	} else {
		uta.Dimensions = implicitDimensions
		if len(uta.Dimensions) == 1 && uta.Dimensions[0].Length == 0 {
			uta.Dimensions = []ArrayDimension{}
		}
	}

	return uta, nil
}

func skipWhitespace(buf *bytes.Buffer) {
	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			buf.UnreadRune()
			return
		}
	}
}

func arrayParseValue(buf *bytes.Buffer, delim rune) (string, bool, error) {
	r, _, err := buf.ReadRune()
	if err != nil {
		return "", false, err
	}
	if r == '"' {
		s, err := arrayParseQuotedValue(buf)
		return s, true, err
	}
	buf.UnreadRune()

	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", false, err
		}

		switch r {
		case '\\':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", false, err
			}
		case delim, '}':
			buf.UnreadRune()
			return strings.TrimSpace(s.String()), false, nil
		}

		s.WriteRune(r)
	}
}

func arrayParseQuotedValue(buf *bytes.Buffer) (string, error) {
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
			return s.String(), nil
		}
		s.WriteRune(r)
	}
}

func arrayParseInteger(buf *bytes.Buffer) (int32, error) {
	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		} else if err != nil {
			return 0, err
		}

		if ('0' <= r && r <= '9') || (r == '-' && s.Len() == 0) {
			s.WriteRune(r)
		} else {
			buf.UnreadRune()
			n, err := strconv.ParseInt(s.String(), 10, 32)
			if err != nil {
				return 0, err
			}
			return int32(n), nil
		}
	}
}

// isArrayText reports whether src is framed as array text: braces, optionally preceded by explicit dimensions.
func isArrayText(src string) bool {
	s := strings.TrimSpace(src)
	if !strings.HasSuffix(s, "}") {
		return false
	}
	if strings.HasPrefix(s, "[") {
		if i := strings.Index(s, "="); i >= 0 {
			s = strings.TrimSpace(s[i+1:])
		}
	}
	return strings.HasPrefix(s, "{")
}

// ParseArray parses the text form of an array, parsing each element with parse. Text that is not framed by braces
// is not an array and yields nil with no error. Nested arrays are flattened.
func ParseArray[T any](src, delim string, parse func(string) (T, error)) ([]T, error) {
	if !isArrayText(src) {
		return nil, nil
	}

	uta, err := ParseUntypedTextArray(src, delim)
	if err != nil {
		return nil, &ParseError{TypeName: "array", Kind: ErrInvalidFormat, Err: err}
	}

	elems := make([]T, len(uta.Elements))
	for i, s := range uta.Elements {
		if uta.IsNull(i) {
			return nil, formatError("array", fmt.Sprintf("NULL element at index %d", i))
		}
		elems[i], err = parse(s)
		if err != nil {
			return nil, err
		}
	}
	return elems, nil
}

// EncodeArray writes elems as a one-dimensional array in text form, quoting elements as array_out does.
func EncodeArray[T any](elems []T, delim string, format func(T) string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(quoteArrayElement(format(e), delim))
	}
	sb.WriteByte('}')
	return sb.String()
}

func quoteArrayElement(s, delim string) string {
	if s != "" && !strings.EqualFold(s, "NULL") && !strings.ContainsAny(s, "{}\"\\ \t\n\r\v\f") &&
		!strings.Contains(s, delim) {
		return s
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
