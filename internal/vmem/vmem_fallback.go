//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

// Package vmem reserves and commits anonymous, zero-filled memory straight
// from the operating system, bypassing the Go heap.
package vmem

import "fmt"

// Map returns heap memory when the platform has no anonymous mapping call.
func Map(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("vmem: negative size %d", n)
	}
	return make([]byte, n), nil
}

// Unmap is a no-op; the garbage collector reclaims fallback memory.
func Unmap(data []byte) error {
	return nil
}

// PageSize reports the conventional 4 KiB page.
func PageSize() int {
	return 4096
}
