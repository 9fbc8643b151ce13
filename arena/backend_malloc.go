package arena

import (
	"sync"

	"modernc.org/memory"
)

// Malloc is a malloc-style backend whose memory lives outside the Go heap.
// It may be shared by many arenas; calls are serialized, which only costs
// anything when an arena grows or is freed.
type Malloc struct {
	mu    sync.Mutex
	alloc memory.Allocator
}

// NewMalloc returns an empty Malloc backend.
func NewMalloc() *Malloc {
	return &Malloc{}
}

func (m *Malloc) Acquire(n int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n == 0 {
		return []byte{}, nil
	}
	return m.alloc.Malloc(n)
}

func (m *Malloc) Release(block []byte) error {
	if cap(block) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc.Free(block)
}

// Close returns every page the backend still holds to the OS. Blocks handed
// out earlier become invalid.
func (m *Malloc) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc.Close()
}

func (m *Malloc) String() string { return "malloc" }
