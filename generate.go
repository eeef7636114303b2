package ulid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

// Now returns the current wall-clock time in milliseconds since the Unix epoch.
func Now() uint64 {
	return Timestamp(time.Now())
}

// Timestamp converts t to milliseconds since the Unix epoch. Times before the
// epoch map to 0.
func Timestamp(t time.Time) uint64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// MaxTime returns the latest time representable in a ULID.
func MaxTime() time.Time {
	return time.UnixMilli(int64(MaxTimestamp)).UTC()
}

// New returns a random ULID stamped with the current time.
//
// It panics only if the system clock is past MaxTime.
func New() ULID {
	return MustNewAt(Now())
}

// NewAt returns a random ULID stamped with ms. The random bits come from
// crypto/rand, shared by the whole process.
func NewAt(ms uint64) (ULID, error) {
	return NewWithEntropy(ms, rand.Reader)
}

// MustNewAt is like NewAt but panics on error.
func MustNewAt(ms uint64) ULID {
	u, err := NewAt(ms)
	if err != nil {
		panic(err)
	}
	return u
}

// NewWithEntropy returns a ULID stamped with ms whose random bits are read
// from r. Sixteen bytes are consumed: the low 16 bits of the first eight fill
// the random part of the high half, the last eight become the low half.
func NewWithEntropy(ms uint64, r io.Reader) (ULID, error) {
	if ms&timestampOverflowMask != 0 {
		return ULID{}, errTimestampOverflow(ms)
	}

	var b [BinarySize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return ULID{}, fmt.Errorf("ulid: read entropy: %w", err)
	}

	return ULID{
		hi: ms<<timestampShift | binary.BigEndian.Uint64(b[:8])&randomHiMask,
		lo: binary.BigEndian.Uint64(b[8:]),
	}, nil
}

// Increment adds one to the 80-bit random field, leaving the timestamp alone.
//
// When the random field is already all ones the result has a zero random
// field and the same timestamp. No error is reported.
func (u ULID) Increment() ULID {
	if u.lo != math.MaxUint64 {
		return ULID{hi: u.hi, lo: u.lo + 1}
	}
	if u.hi&randomHiMask != randomHiMask {
		return ULID{hi: u.hi + 1, lo: 0}
	}
	return ULID{hi: u.hi & timestampMask, lo: 0}
}

// NextMonotonic returns the successor of prev for a clock reading of ms.
//
// When ms equals prev's timestamp the result is prev.Increment(); otherwise it
// is a fresh random ULID stamped with ms. Callers sharing prev across
// goroutines must serialize calls themselves.
func NextMonotonic(prev ULID, ms uint64) (ULID, error) {
	if prev.Timestamp() == ms {
		return prev.Increment(), nil
	}
	return NewAt(ms)
}
