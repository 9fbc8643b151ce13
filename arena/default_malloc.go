//go:build arena_malloc

package arena

var sharedMalloc = NewMalloc()

// DefaultBackend returns the backend arenas use when none is configured.
func DefaultBackend() Backend { return sharedMalloc }
