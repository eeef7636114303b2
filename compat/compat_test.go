package compat

import (
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	oklog "github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudoitir/ulid"
)

func TestOklogRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := ulid.New()
		o := ToOklog(u)

		assert.Equal(t, u.String(), o.String())
		assert.Equal(t, u.Timestamp(), o.Time())
		assert.Equal(t, u, FromOklog(o))
	}
}

func TestTextCompatibleWithOklog(t *testing.T) {
	for i := 0; i < 100; i++ {
		o := oklog.MustNew(oklog.Timestamp(time.Now()), rand.Reader)

		u, err := ulid.Parse(o.String())
		require.NoError(t, err)
		assert.Equal(t, o[:], u.Bytes())

		back, err := oklog.Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, o, back)
	}
}

func TestOrderingAgreesWithOklog(t *testing.T) {
	a, b := ulid.New(), ulid.New()
	assert.Equal(t, a.Compare(b), ToOklog(a).Compare(ToOklog(b)))

	inc := a.Increment()
	assert.Equal(t, -1, ToOklog(a).Compare(ToOklog(inc)))
}

func TestMaxValueAgreesWithOklog(t *testing.T) {
	u := ulid.FromHalves(^uint64(0), ^uint64(0))
	assert.Equal(t, "7ZZZZZZZZZZZZZZZZZZZZZZZZZ", ToOklog(u).String())
	assert.Equal(t, ulid.MaxTimestamp, oklog.MaxTime())
}

func TestUUIDRoundTrip(t *testing.T) {
	u := ulid.MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	id := ToUUID(u)
	assert.Equal(t, "01563e3a-b5d3-d676-4c61-efb99302bd5b", id.String())
	assert.Equal(t, u, FromUUID(id))

	parsed, err := ParseUUID(strings.ToUpper(id.String()))
	require.NoError(t, err)
	assert.Equal(t, u, parsed)
}

func TestFromUUIDv7KeepsTimestamp(t *testing.T) {
	before := ulid.Now()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	after := ulid.Now()

	ts := FromUUID(id).Timestamp()
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after+1)
}

func TestParseUUIDInvalid(t *testing.T) {
	_, err := ParseUUID("not-a-uuid")
	require.ErrorIs(t, err, ulid.ErrDecode)
}
