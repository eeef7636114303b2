// Package compat converts ULIDs to and from the identifier types of other
// libraries.
//
// The 16-byte layout is shared with github.com/oklog/ulid/v2, so conversions
// preserve both the binary and the text form. The UUID form reuses the same
// 16 bytes, which keeps UUID-typed columns sortable by creation time.
package compat

import (
	"github.com/google/uuid"
	oklog "github.com/oklog/ulid/v2"

	"github.com/sudoitir/ulid"
)

// ToOklog converts u to an oklog ULID.
func ToOklog(u ulid.ULID) oklog.ULID {
	var o oklog.ULID
	copy(o[:], u.Bytes())
	return o
}

// FromOklog converts an oklog ULID.
func FromOklog(o oklog.ULID) ulid.ULID {
	u, _ := ulid.FromBytes(o[:]) // len is always 16
	return u
}

// ToUUID reinterprets the 16 bytes of u as a UUID. The result carries no
// RFC 4122 version or variant bits.
func ToUUID(u ulid.ULID) uuid.UUID {
	var id uuid.UUID
	copy(id[:], u.Bytes())
	return id
}

// FromUUID reinterprets the 16 bytes of a UUID as a ULID. A time-ordered
// UUIDv7 yields a ULID with the same millisecond timestamp.
func FromUUID(id uuid.UUID) ulid.ULID {
	u, _ := ulid.FromBytes(id[:]) // len is always 16
	return u
}

// ParseUUID parses the hyphenated UUID form produced by ToUUID.
func ParseUUID(s string) (ulid.ULID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ulid.ULID{}, ulid.DecodeError(err)
	}
	return FromUUID(id), nil
}
