package arena

import "github.com/joshuapare/arenakit/internal/vmem"

// Virtual reserves and commits whole pages straight from the operating system
// (mmap on unix, VirtualAlloc on windows). Large regions then never touch the
// Go heap or add to its GC pacing. Platforms without anonymous mappings fall
// back to heap memory.
var Virtual Backend = virtualBackend{}

type virtualBackend struct{}

func (virtualBackend) Acquire(n int) ([]byte, error) { return vmem.Map(n) }

func (virtualBackend) Release(block []byte) error { return vmem.Unmap(block) }

func (virtualBackend) String() string { return "virtual" }
