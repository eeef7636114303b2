package ulid

import (
	"fmt"
	"unicode/utf8"
)

// Crockford's Base32 alphabet. I, L, O and U are left out to avoid visual
// ambiguity.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	mask     = 0x1F
	maskBits = 5

	// maxGroupLen bounds parseGroup so that 5-bit shifts stay inside 64 bits.
	maxGroupLen = 12

	invalid byte = 0xFF
)

//nolint:gochecknoglobals // read-only lookup table
var decoding = buildDecoding()

func buildDecoding() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			t[c+('a'-'A')] = byte(i)
		}
	}

	// Lenient aliases per Crockford.
	t['O'], t['o'] = 0, 0
	t['I'], t['i'] = 1, 1
	t['L'], t['l'] = 1, 1

	return t
}

// String returns the 26-character canonical form.
func (u ULID) String() string {
	return string(u.appendText(make([]byte, 0, EncodedSize)))
}

func (u ULID) appendText(dst []byte) []byte {
	var buf [EncodedSize]byte

	writeGroup(buf[0:10], u.Timestamp())
	writeGroup(buf[10:18], (u.hi&randomHiMask)<<24|u.lo>>40)
	writeGroup(buf[18:26], u.lo)

	return append(dst, buf[:]...)
}

// writeGroup fills dst with the len(dst) least significant 5-bit symbols of v,
// most significant first.
func writeGroup(dst []byte, v uint64) {
	n := len(dst)
	for i := range dst {
		dst[i] = alphabet[(v>>(uint(n-1-i)*maskBits))&mask]
	}
}

// Parse decodes a 26-character ULID. Decoding is case-insensitive and accepts
// O for 0 and I or L for 1.
func Parse(s string) (ULID, error) {
	if len(s) != EncodedSize {
		return ULID{}, errInvalidLength("text", EncodedSize, len(s))
	}

	ts, err := parseGroup(s[0:10], 0)
	if err != nil {
		return ULID{}, err
	}
	if ts&timestampOverflowMask != 0 {
		return ULID{}, &Error{
			kind: KindTimestampOverflow,
			msg:  fmt.Sprintf("ulid: %q exceeds 7ZZZZZZZZZZZZZZZZZZZZZZZZZ", s),
		}
	}

	g2, err := parseGroup(s[10:18], 10)
	if err != nil {
		return ULID{}, err
	}
	g3, err := parseGroup(s[18:26], 18)
	if err != nil {
		return ULID{}, err
	}

	return ULID{
		hi: ts<<timestampShift | g2>>24,
		lo: g3 | g2<<40,
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ULID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// parseGroup decodes s as a big-endian run of 5-bit symbols. offset is the
// position of s within the full text and is only used for error reporting.
func parseGroup(s string, offset int) (uint64, error) {
	n := len(s)
	if n > maxGroupLen {
		return 0, &Error{
			kind: KindInputTooLong,
			msg:  fmt.Sprintf("ulid: group length must not exceed %d, got %d", maxGroupLen, n),
		}
	}

	var v uint64
	for i := 0; i < n; i++ {
		d := decoding[s[i]]
		if d == invalid {
			c := rune(s[i])
			if c >= utf8.RuneSelf {
				c, _ = utf8.DecodeRuneInString(s[i:])
			}
			return 0, errInvalidCharacter(c, offset+i)
		}
		v |= uint64(d) << (uint(n-1-i) * maskBits)
	}

	return v, nil
}
