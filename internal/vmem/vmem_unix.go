//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

// Package vmem reserves and commits anonymous, zero-filled memory straight
// from the operating system, bypassing the Go heap.
package vmem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Map reserves and commits n bytes of private anonymous memory.
// The returned slice must be passed unmodified (same backing array and
// capacity) to Unmap.
func Map(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("vmem: negative size %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("vmem: mmap %d bytes: %w", n, err)
	}
	return data, nil
}

// Unmap releases a mapping returned by Map. Empty slices and mappings that
// were already released are no-ops.
func Unmap(data []byte) error {
	if cap(data) == 0 {
		return nil
	}
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Not (or no longer) a tracked mapping.
		return nil
	}
	if err != nil {
		return fmt.Errorf("vmem: munmap: %w", err)
	}
	return nil
}

// PageSize returns the granularity the OS maps memory in.
func PageSize() int {
	return unix.Getpagesize()
}
