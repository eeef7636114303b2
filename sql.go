package ulid

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer, storing the canonical text form.
func (u ULID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts the text form as string or []byte
// and the 16-byte binary form. Use NullULID for nullable columns.
func (u *ULID) Scan(src any) error {
	var (
		parsed ULID
		err    error
	)

	switch v := src.(type) {
	case nil:
		return DecodeError(&Error{kind: KindNullInput, msg: "ulid: cannot scan NULL into ULID"})
	case string:
		parsed, err = Parse(v)
	case []byte:
		if len(v) == BinarySize {
			parsed, err = FromBytes(v)
		} else {
			parsed, err = Parse(string(v))
		}
	default:
		return &Error{kind: KindDecode, msg: fmt.Sprintf("ulid: cannot scan %T into ULID", src)}
	}
	if err != nil {
		return DecodeError(err)
	}

	*u = parsed
	return nil
}

// NullULID represents a ULID that may be NULL.
type NullULID struct {
	ULID  ULID
	Valid bool // Valid is true if ULID is not NULL
}

// Scan implements sql.Scanner.
func (n *NullULID) Scan(src any) error {
	if src == nil {
		n.ULID, n.Valid = ULID{}, false
		return nil
	}
	if err := n.ULID.Scan(src); err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (n NullULID) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.ULID.Value()
}
