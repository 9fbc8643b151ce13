//go:build arena_vmem && !arena_malloc

package arena

// DefaultBackend returns the backend arenas use when none is configured.
func DefaultBackend() Backend { return Virtual }
