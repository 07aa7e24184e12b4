// Package pgtype parses and formats the text representation of PostgreSQL's extended types.
/*
Every type is an immutable value. A value can only be obtained through one of its constructors, so a value that
exists is valid. For a type X there are:

	ParseX(s)         the PostgreSQL text form
	NewX(...)         positional arguments
	XFromObject(o)    the plain-data XObject form, which is also the JSON form
	XFrom(v)          another X

Date and time types also have XFromTime. Setters named WithField return a re-validated copy.

String returns the text form PostgreSQL itself would output, and parsing it gives back an equal value. Equal accepts
a value, a pointer to one, its object form or its text form.

Errors

Every construction failure is a *ParseError. It unwraps to one of ErrInvalidFormat, ErrInvalidObject,
ErrInvalidArguments or ErrOutOfRange, so callers can test the kind with errors.Is.

Range and Multirange Support

Range[T] and Multirange[T] work over any element type described by an ElementType[T]. RangeType and MultirangeType
values for int4, int8, date, timestamp and timestamptz are predefined.

Array Support

ParseArray parses an array in text form with any element parser, and EncodeArray writes one. Box arrays are delimited
by ';', every other type by ','.

database/sql Support

Every type implements sql.Scanner for text and driver.Valuer.
*/
package pgtype
