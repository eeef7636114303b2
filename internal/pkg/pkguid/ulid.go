package pkguid

import "github.com/sudoitir/ulid"

// ULID generates canonical ULID strings from a shared monotonic sequence.
type ULID struct {
	seq *ulid.Monotonic
}

// NewULID returns a ULID generator reading the wall clock.
func NewULID() *ULID {
	return &ULID{seq: ulid.NewMonotonic(nil)}
}

// Generate returns a new ULID string. It panics if the clock is past year 10889.
func (u *ULID) Generate() string {
	id, err := u.seq.Next()
	if err != nil {
		panic(err)
	}
	return id.String()
}
