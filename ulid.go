package ulid

import (
	"cmp"
	"encoding/binary"
	"time"
)

const (
	// EncodedSize is the length of the canonical text form.
	EncodedSize = 26
	// BinarySize is the length of the big-endian binary form.
	BinarySize = 16
	// MaxTimestamp is the largest millisecond timestamp a ULID can hold
	// (+10889-08-02T05:31:50.655Z).
	MaxTimestamp uint64 = 1<<48 - 1

	timestampShift               = 16
	randomHiMask          uint64 = 0xFFFF
	timestampMask         uint64 = 0xFFFF_FFFF_FFFF_0000
	timestampOverflowMask uint64 = 0xFFFF_0000_0000_0000
)

// ULID is an immutable 128-bit identifier. The zero value is the all-zero
// ULID "00000000000000000000000000".
type ULID struct {
	hi uint64
	lo uint64
}

// FromHalves builds a ULID from its two 64-bit halves without validation.
func FromHalves(hi, lo uint64) ULID {
	return ULID{hi: hi, lo: lo}
}

// FromBytes builds a ULID from exactly 16 big-endian bytes.
func FromBytes(b []byte) (ULID, error) {
	if b == nil {
		return ULID{}, &Error{kind: KindNullInput, msg: "ulid: data must not be nil"}
	}
	if len(b) != BinarySize {
		return ULID{}, errInvalidLength("data", BinarySize, len(b))
	}

	return ULID{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}, nil
}

// Bytes returns the 16-byte big-endian representation.
func (u ULID) Bytes() []byte {
	b := make([]byte, BinarySize)
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	return b
}

// Hi returns the most significant 64 bits.
func (u ULID) Hi() uint64 { return u.hi }

// Lo returns the least significant 64 bits.
func (u ULID) Lo() uint64 { return u.lo }

// Timestamp returns the 48-bit millisecond timestamp.
func (u ULID) Timestamp() uint64 {
	return u.hi >> timestampShift
}

// Time returns the timestamp as a time.Time in UTC.
func (u ULID) Time() time.Time {
	return time.UnixMilli(int64(u.Timestamp())).UTC()
}

// IsZero reports whether u is the all-zero ULID.
func (u ULID) IsZero() bool {
	return u.hi == 0 && u.lo == 0
}

// Compare returns -1, 0 or +1 comparing the halves as unsigned integers,
// high half first.
func (u ULID) Compare(other ULID) int {
	if c := cmp.Compare(u.hi, other.hi); c != 0 {
		return c
	}
	return cmp.Compare(u.lo, other.lo)
}

// Less reports whether u sorts before other.
func (u ULID) Less(other ULID) bool {
	return u.Compare(other) < 0
}

// Equal reports whether both halves are equal.
func (u ULID) Equal(other ULID) bool {
	return u == other
}

// Hash folds hi^lo into 32 bits.
func (u ULID) Hash() uint32 {
	x := u.hi ^ u.lo
	return uint32(x>>32) ^ uint32(x)
}

// MarshalText implements encoding.TextMarshaler.
func (u ULID) MarshalText() ([]byte, error) {
	return u.appendText(make([]byte, 0, EncodedSize)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *ULID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u ULID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *ULID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
