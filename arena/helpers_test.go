package arena

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("backend down")

// requireInvariants checks the chain and cursor invariants of a.
func requireInvariants(t *testing.T, a *Arena) {
	t.Helper()
	require.Equal(t, a.begin == nil, a.end == nil, "begin and end must be empty together")
	if a.begin == nil {
		return
	}
	cursorSeen := false
	for r := a.begin; r != nil; r = r.next {
		require.GreaterOrEqual(t, r.count, 0)
		require.LessOrEqual(t, r.count, r.capacity, "count must never exceed capacity")
		require.GreaterOrEqual(t, len(r.block), r.capacity*WordSize, "block shorter than capacity")
		if r == a.end {
			cursorSeen = true
		}
	}
	require.True(t, cursorSeen, "end must be reachable from begin")
}

// regionShape returns the (count, capacity) pairs of the chain.
func regionShape(a *Arena) [][2]int {
	var out [][2]int
	for r := range a.Regions() {
		out = append(out, [2]int{r.Count(), r.Capacity()})
	}
	return out
}

func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// flakyBackend delegates to Heap until failAfter acquisitions succeeded.
type flakyBackend struct {
	failAfter  int
	acquired   int
	releaseErr error
}

func (f *flakyBackend) Acquire(n int) ([]byte, error) {
	if f.acquired >= f.failAfter {
		return nil, errBackendDown
	}
	f.acquired++
	return Heap.Acquire(n)
}

func (f *flakyBackend) Release(block []byte) error {
	return f.releaseErr
}

// shortBackend returns blocks one byte too short.
type shortBackend struct{ released int }

func (s *shortBackend) Acquire(n int) ([]byte, error) {
	return make([]byte, n-1), nil
}

func (s *shortBackend) Release([]byte) error {
	s.released++
	return nil
}
