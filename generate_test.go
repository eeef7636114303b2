package ulid

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNewAtStampsTimestamp(t *testing.T) {
	ms := Timestamp(time.Now())
	for i := 0; i < 500; i++ {
		u, err := NewAt(ms)
		if err != nil {
			t.Fatalf("NewAt: %v", err)
		}
		if got := u.Timestamp(); got != ms {
			t.Fatalf("expected timestamp %d, got %d", ms, got)
		}
	}
}

func TestNewAtMaxTimestamp(t *testing.T) {
	u, err := NewAt(MaxTimestamp)
	if err != nil {
		t.Fatalf("NewAt(MaxTimestamp): %v", err)
	}
	if u.Timestamp() != MaxTimestamp {
		t.Fatalf("unexpected timestamp: %d", u.Timestamp())
	}
}

func TestNewAtTimestampOverflow(t *testing.T) {
	_, err := NewAt(MaxTimestamp + 1)
	if !errors.Is(err, ErrTimestampOverflow) {
		t.Fatalf("expected ErrTimestampOverflow, got %v", err)
	}
}

func TestNewWithEntropyLayout(t *testing.T) {
	r := bytes.NewReader([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	u, err := NewWithEntropy(1, r)
	if err != nil {
		t.Fatalf("NewWithEntropy: %v", err)
	}
	if u.Hi() != 1<<16|0x0607 {
		t.Fatalf("unexpected hi: %#x", u.Hi())
	}
	if u.Lo() != 0x08090a0b0c0d0e0f {
		t.Fatalf("unexpected lo: %#x", u.Lo())
	}
	if got := u.String(); got != "00000000010R3GG28A1C60T3GF" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}

func TestNewWithEntropyShortRead(t *testing.T) {
	_, err := NewWithEntropy(1, bytes.NewReader(make([]byte, 8)))
	if err == nil {
		t.Fatalf("expected error on short entropy read")
	}
}

func TestNewUnique(t *testing.T) {
	a, b := New(), New()
	if a == b {
		t.Fatalf("expected distinct values, got %s twice", a)
	}
}

func TestNewConcurrentNoDuplicates(t *testing.T) {
	const (
		workers   = 16
		perWorker = 625
	)

	var (
		mu   sync.Mutex
		seen = make(map[ULID]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]ULID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, New())
			}
			mu.Lock()
			for _, u := range local {
				seen[u] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique values, got %d", workers*perWorker, len(seen))
	}
}

func TestIncrement(t *testing.T) {
	got := FromHalves(0, 0).Increment()
	if got.Hi() != 0 || got.Lo() != 1 {
		t.Fatalf("expected (0, 1), got (%d, %d)", got.Hi(), got.Lo())
	}

	got = FromHalves(0, ^uint64(0)).Increment()
	if got.Hi() != 1 || got.Lo() != 0 {
		t.Fatalf("expected (1, 0), got (%d, %d)", got.Hi(), got.Lo())
	}
}

func TestIncrementKeepsTimestamp(t *testing.T) {
	u := FromHalves(42<<16|0x1234, ^uint64(0))
	got := u.Increment()
	if got.Timestamp() != 42 {
		t.Fatalf("expected timestamp 42, got %d", got.Timestamp())
	}
	if got.Hi() != 42<<16|0x1235 || got.Lo() != 0 {
		t.Fatalf("unexpected carry result: %#x %#x", got.Hi(), got.Lo())
	}
	if !u.Less(got) {
		t.Fatalf("expected increment to sort after the original")
	}
}

func TestIncrementSaturates(t *testing.T) {
	u := FromHalves(42<<16|0xFFFF, ^uint64(0))
	got := u.Increment()
	if got.Hi() != 42<<16 || got.Lo() != 0 {
		t.Fatalf("expected zero random field with timestamp 42, got %#x %#x", got.Hi(), got.Lo())
	}
	if got.Timestamp() != u.Timestamp() {
		t.Fatalf("saturation must not change the timestamp")
	}
}

func TestIncrementDoesNotMutate(t *testing.T) {
	u := FromHalves(7, 7)
	_ = u.Increment()
	if u.Hi() != 7 || u.Lo() != 7 {
		t.Fatalf("increment mutated its receiver")
	}
}

func TestNextMonotonicSameTimestamp(t *testing.T) {
	prev := MustNewAt(1000)
	next, err := NextMonotonic(prev, prev.Timestamp())
	if err != nil {
		t.Fatalf("NextMonotonic: %v", err)
	}
	if next != prev.Increment() {
		t.Fatalf("expected %s, got %s", prev.Increment(), next)
	}
}

func TestNextMonotonicDifferentTimestamp(t *testing.T) {
	prev := FromHalves(0, 0)
	next, err := NextMonotonic(prev, prev.Timestamp()+1)
	if err != nil {
		t.Fatalf("NextMonotonic: %v", err)
	}
	if next.Timestamp() != prev.Timestamp()+1 {
		t.Fatalf("expected timestamp %d, got %d", prev.Timestamp()+1, next.Timestamp())
	}
}

func TestNextMonotonicOverflow(t *testing.T) {
	_, err := NextMonotonic(FromHalves(0, 0), MaxTimestamp+1)
	if !errors.Is(err, ErrTimestampOverflow) {
		t.Fatalf("expected ErrTimestampOverflow, got %v", err)
	}
}

func TestNextMonotonicSequenceIsOrdered(t *testing.T) {
	prev := MustNewAt(5000)
	for i := 0; i < 1000; i++ {
		ms := uint64(5000 + i/100)
		next, err := NextMonotonic(prev, ms)
		if err != nil {
			t.Fatalf("NextMonotonic: %v", err)
		}
		if !prev.Less(next) || prev.String() >= next.String() {
			t.Fatalf("sequence went backwards at %d: %s then %s", i, prev, next)
		}
		prev = next
	}
}

func TestTimestampBeforeEpoch(t *testing.T) {
	if got := Timestamp(time.UnixMilli(-5)); got != 0 {
		t.Fatalf("expected 0 for pre-epoch time, got %d", got)
	}
}
