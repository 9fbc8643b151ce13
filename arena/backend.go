package arena

import (
	"fmt"
	"unsafe"
)

// Backend acquires and releases the raw blocks regions are carved from.
// An arena consults its backend only when it grows or is freed.
//
// Acquire returns a block of at least n bytes whose contents are unspecified.
// Release must accept nil and blocks that were already released.
type Backend interface {
	Acquire(n int) ([]byte, error)
	Release(block []byte) error
}

// Heap acquires word-aligned blocks from the Go runtime heap. The blocks are
// allocated as pointer-free memory, so the collector never scans them.
var Heap Backend = heapBackend{}

type heapBackend struct{}

func (heapBackend) Acquire(n int) (block []byte, err error) {
	if n < 0 {
		return nil, fmt.Errorf("arena: negative acquire size %d", n)
	}
	words := ceilWords(n)
	if words == 0 {
		return []byte{}, nil
	}
	defer func() {
		// make panics (recoverably) on lengths the runtime cannot satisfy.
		if r := recover(); r != nil {
			block, err = nil, fmt.Errorf("arena: heap acquire %d bytes: %v", n, r)
		}
	}()
	mem := make([]uintptr, words)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(mem))), words*WordSize), nil
}

// Release drops the block; the collector reclaims it once unreferenced.
func (heapBackend) Release([]byte) error { return nil }

func (heapBackend) String() string { return "heap" }

// Counting wraps a Backend and records how often it is used.
// A nil Backend field means DefaultBackend().
type Counting struct {
	Backend Backend

	Acquired      int   // successful Acquire calls
	Released      int   // Release calls with a non-empty block
	Failed        int   // failed Acquire calls
	BytesAcquired int64 // bytes requested by successful Acquire calls
	BytesReleased int64 // len of blocks passed to Release
}

func (c *Counting) inner() Backend {
	if c.Backend == nil {
		c.Backend = DefaultBackend()
	}
	return c.Backend
}

func (c *Counting) Acquire(n int) ([]byte, error) {
	block, err := c.inner().Acquire(n)
	if err != nil {
		c.Failed++
		return nil, err
	}
	c.Acquired++
	c.BytesAcquired += int64(n)
	return block, nil
}

func (c *Counting) Release(block []byte) error {
	if cap(block) > 0 {
		c.Released++
		c.BytesReleased += int64(len(block))
	}
	return c.inner().Release(block)
}

// Outstanding returns the number of blocks acquired and not yet released.
func (c *Counting) Outstanding() int {
	return c.Acquired - c.Released
}

func (c *Counting) String() string {
	return fmt.Sprintf("counting(%v)", c.inner())
}
