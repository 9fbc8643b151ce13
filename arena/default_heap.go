//go:build !arena_vmem && !arena_malloc

package arena

// DefaultBackend returns the backend arenas use when none is configured.
// Build with -tags arena_vmem or -tags arena_malloc to change it.
func DefaultBackend() Backend { return Heap }
