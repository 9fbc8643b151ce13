package arena

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/arenakit/internal/buf"
)

// WordSize is the allocation granule in bytes: one pointer-sized word.
// Every allocation is rounded up to a whole number of words and starts on a
// word boundary.
const WordSize = int(unsafe.Sizeof(uintptr(0)))

// DefaultCapacity is the capacity, in words, of regions created by an arena
// that was not given WithRegionCapacity. Larger requests get a region sized to
// fit them exactly.
const DefaultCapacity = 8 * 1024

// Region is one fixed-capacity block in an arena's chain. Its header lives in
// this struct; block is pure storage acquired from the backend.
type Region struct {
	next     *Region
	count    int // words used
	capacity int // words available
	block    []byte
}

// Next returns the following region in the chain, or nil.
func (r *Region) Next() *Region { return r.next }

// Count returns the number of words in use.
func (r *Region) Count() int { return r.count }

// Capacity returns the number of words the region can hold.
func (r *Region) Capacity() int { return r.capacity }

// Available returns the number of unused words.
func (r *Region) Available() int { return r.capacity - r.count }

func (r *Region) fits(words int) bool {
	return r.capacity-r.count >= words
}

// newRegion acquires storage for capacity words from b.
func newRegion(b Backend, capacity int) (*Region, error) {
	size, ok := buf.MulOverflowSafe(capacity, WordSize)
	if !ok {
		return nil, &ExhaustedError{Words: capacity, Err: ErrSizeOverflow}
	}
	block, err := b.Acquire(size)
	if err != nil {
		return nil, &ExhaustedError{Words: capacity, Err: err}
	}
	if len(block) < size {
		_ = b.Release(block)
		return nil, &ExhaustedError{
			Words: capacity,
			Err:   fmt.Errorf("%w: got %d bytes, want %d", ErrShortBlock, len(block), size),
		}
	}
	return &Region{capacity: capacity, block: block}, nil
}

// freeRegion hands r's storage back to b. A nil region, or one already
// freed, is a no-op.
func freeRegion(b Backend, r *Region) error {
	if r == nil || r.block == nil {
		return nil
	}
	block := r.block
	r.block = nil
	r.next = nil
	r.count, r.capacity = 0, 0
	return b.Release(block)
}

func ceilWords(n int) int {
	return buf.CeilDiv(n, WordSize)
}
