// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers.
//
// A ULID is a 128-bit value made of a 48-bit millisecond timestamp followed by
// 80 random bits. It is held as two unsigned 64-bit halves:
//   - hi: 48-bit timestamp | 16 most-significant random bits.
//   - lo: the remaining 64 random bits.
//
// The canonical text form is 26 Crockford Base32 characters. Ordering of the
// text form matches the unsigned numeric ordering of (hi, lo), so ULIDs sort
// chronologically both as strings and as 16 big-endian bytes.
//
// # Generation
//
// New and NewAt draw their random bits from crypto/rand, which is safe for
// concurrent use. NextMonotonic keeps identifiers ordered within a millisecond
// by incrementing the 80-bit random field of the previous value. It does not
// serialize callers: code that needs ordering across goroutines must hold a
// lock around the read-modify-write of the previous value, which is what
// Monotonic does.
//
// Usage
//
//	id := ulid.New()
//	s := id.String()          // 26 characters
//	back, err := ulid.Parse(s)
//	next := id.Increment()
package ulid
