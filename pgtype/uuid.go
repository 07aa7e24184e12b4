package pgtype

import (
	"database/sql/driver"
	"encoding/json"
	"regexp"

	"github.com/gofrs/uuid"
)

type UUID struct {
	u uuid.UUID
}

type UUIDObject struct {
	UUID string `json:"uuid"`
}

var uuidRegexp = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ParseUUID parses the hyphenated 8-4-4-4-12 form. Case is ignored; braces, URNs and unhyphenated input are not
// accepted.
func ParseUUID(s string) (UUID, error) {
	if !uuidRegexp.MatchString(s) {
		return UUID{}, formatError("UUID", "")
	}

	u, err := uuid.FromString(s)
	if err != nil {
		return UUID{}, formatErrorf("UUID", err, "")
	}
	return UUID{u: u}, nil
}

// NewUUID returns the UUID with the given bytes.
func NewUUID(b [16]byte) (UUID, error) {
	return UUID{u: uuid.UUID(b)}, nil
}

func UUIDFromObject(o UUIDObject) (UUID, error) {
	u, err := ParseUUID(o.UUID)
	if err != nil {
		return UUID{}, withKind(err, ErrInvalidObject)
	}
	return u, nil
}

func UUIDFrom(u UUID) (UUID, error) {
	return u, nil
}

// GenerateUUID returns a random version 4 UUID read from crypto/rand.
func GenerateUUID() (UUID, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return UUID{}, err
	}
	return UUID{u: u}, nil
}

func IsUUID(v any) bool {
	switch v.(type) {
	case UUID, *UUID:
		return true
	}
	return false
}

// UUID returns the lower case text of u.
func (u UUID) UUID() string {
	return u.String()
}

func (u UUID) WithUUID(s string) (UUID, error) {
	return ParseUUID(s)
}

func (u UUID) Bytes() [16]byte {
	return u.u
}

func (u UUID) Version() byte {
	return u.u.Version()
}

func (u UUID) String() string {
	return u.u.String()
}

func (u UUID) Object() UUIDObject {
	return UUIDObject{UUID: u.String()}
}

func (u UUID) Equal(other any) bool {
	switch other := other.(type) {
	case UUID:
		return u == other
	case *UUID:
		return other != nil && u == *other
	case UUIDObject:
		o, err := UUIDFromObject(other)
		return err == nil && u == o
	case string:
		o, err := ParseUUID(other)
		return err == nil && u == o
	}
	return false
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Object())
}

func (u *UUID) UnmarshalJSON(data []byte) error {
	v, err := unmarshalValue(data, ParseUUID, UUIDFromObject)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Scan implements the database/sql Scanner interface.
func (u *UUID) Scan(src any) error {
	if b, ok := src.([16]byte); ok {
		u.u = b
		return nil
	}

	v, err := scanText(src, ParseUUID)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Value implements the database/sql/driver Valuer interface.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}
