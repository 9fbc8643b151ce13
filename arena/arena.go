package arena

import (
	"errors"
	"fmt"
	"log/slog"
)

// Arena is a bump allocator over a singly linked chain of regions.
//
// The zero value is an empty arena ready for use with DefaultCapacity and
// DefaultBackend. An Arena is not safe for concurrent use.
//
// Memory returned by an arena is a borrowed view: it stays valid until the
// next Reset or Free of that arena and must not be used afterwards.
type Arena struct {
	begin *Region // owns the chain
	end   *Region // region currently being filled

	backend  Backend
	capacity int // words per new region; 0 means DefaultCapacity
	log      *slog.Logger
}

// Option configures an Arena built by New.
type Option func(*Arena)

// WithBackend sets the backend regions are acquired from.
func WithBackend(b Backend) Option {
	return func(a *Arena) { a.backend = b }
}

// WithRegionCapacity sets the capacity, in words, of newly grown regions.
// Values below one word are ignored.
func WithRegionCapacity(words int) Option {
	return func(a *Arena) {
		if words > 0 {
			a.capacity = words
		}
	}
}

// WithLogger makes the arena log region acquisition and release at debug
// level. Allocations that fit in an existing region are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(a *Arena) { a.log = l }
}

// New returns an empty arena configured by opts.
func New(opts ...Option) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RegionCapacity returns the capacity, in words, used for new regions.
func (a *Arena) RegionCapacity() int {
	if a.capacity <= 0 {
		return DefaultCapacity
	}
	return a.capacity
}

// Backend returns the backend the arena acquires regions from.
func (a *Arena) Backend() Backend {
	if a.backend == nil {
		a.backend = DefaultBackend()
	}
	return a.backend
}

// Empty reports whether the arena holds no regions.
func (a *Arena) Empty() bool {
	return a.begin == nil
}

// Alloc returns size bytes of arena memory. The contents are unspecified.
// The slice is word aligned, its capacity equals size, and it never overlaps
// memory returned by any other Alloc call before the next Reset or Free.
// A size of zero yields a non-nil empty slice.
//
// Alloc panics with an error wrapping ErrExhausted when the backend cannot
// supply a new region; use TryAlloc to get the error instead. A negative size
// panics.
func (a *Arena) Alloc(size int) []byte {
	b, err := a.TryAlloc(size)
	if err != nil {
		panic(err)
	}
	return b
}

// TryAlloc is Alloc for callers that can recover from exhaustion. On error
// the arena is left exactly as it was.
func (a *Arena) TryAlloc(size int) ([]byte, error) {
	if size < 0 {
		panic(fmt.Sprintf("arena: negative allocation size %d", size))
	}
	words := ceilWords(size)

	if a.end == nil {
		r, err := a.grow(words)
		if err != nil {
			return nil, err
		}
		a.begin, a.end = r, r
	}

	// Regions past the cursor are left over from before a Reset.
	r := a.end
	for !r.fits(words) && r.next != nil {
		r = r.next
	}
	if !r.fits(words) {
		nr, err := a.grow(words)
		if err != nil {
			return nil, err
		}
		r.next = nr
		r = nr
	}
	a.end = r

	off := r.count * WordSize
	r.count += words
	return r.block[off : off+size : off+size], nil
}

// Realloc resizes an allocation. Shrinking (newSize <= len(old)) returns old
// unchanged and reclaims nothing. Growing allocates newSize bytes, copies
// len(old) bytes into them and returns the new slice; the old storage stays
// allocated until the next Reset or Free and must be treated as stale.
func (a *Arena) Realloc(old []byte, newSize int) []byte {
	b, err := a.TryRealloc(old, newSize)
	if err != nil {
		panic(err)
	}
	return b
}

// TryRealloc is Realloc for callers that can recover from exhaustion.
func (a *Arena) TryRealloc(old []byte, newSize int) ([]byte, error) {
	if newSize <= len(old) {
		return old, nil
	}
	b, err := a.TryAlloc(newSize)
	if err != nil {
		return nil, err
	}
	copy(b, old)
	return b, nil
}

// Reset marks every region empty and rewinds the cursor to the first one.
// Capacity is kept, so later allocations reuse it without touching the
// backend. Everything allocated before the reset becomes invalid.
func (a *Arena) Reset() {
	for r := a.begin; r != nil; r = r.next {
		r.count = 0
	}
	a.end = a.begin
}

// Free releases every region to the backend and returns the arena to its
// zero state, keeping only its options. Everything allocated before becomes
// invalid. Release errors are collected and returned; the arena is empty
// either way.
func (a *Arena) Free() error {
	var errs []error
	backend := a.Backend()
	released := 0
	for r := a.begin; r != nil; {
		next := r.next
		if err := freeRegion(backend, r); err != nil {
			errs = append(errs, err)
		}
		released++
		r = next
	}
	a.begin, a.end = nil, nil
	if a.log != nil && released > 0 {
		a.log.Debug("arena: regions released", "regions", released, "errors", len(errs))
	}
	return errors.Join(errs...)
}

// grow creates a region big enough for words, or for the configured
// capacity if that is larger. It does not link the region.
func (a *Arena) grow(words int) (*Region, error) {
	capacity := max(a.RegionCapacity(), words)
	r, err := newRegion(a.Backend(), capacity)
	if err != nil {
		if a.log != nil {
			a.log.Debug("arena: region acquisition failed", "words", capacity, "error", err)
		}
		return nil, err
	}
	if a.log != nil {
		a.log.Debug("arena: region acquired", "words", capacity, "bytes", capacity*WordSize, "requested_words", words)
	}
	return r, nil
}
