//go:build windows

// Package vmem reserves and commits anonymous, zero-filled memory straight
// from the operating system, bypassing the Go heap.
package vmem

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Map reserves and commits n bytes of read/write memory with VirtualAlloc.
func Map(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("vmem: negative size %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(n), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("vmem: VirtualAlloc %d bytes: %w", n, err)
	}
	if addr == 0 {
		return nil, fmt.Errorf("vmem: VirtualAlloc %d bytes returned a null address", n)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

// Unmap releases a mapping returned by Map. Empty slices and mappings that
// were already released are no-ops.
func Unmap(data []byte) error {
	if cap(data) == 0 {
		return nil
	}
	// Use unsafe.Pointer in a single expression to avoid linter warnings
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	if errors.Is(err, windows.ERROR_INVALID_ADDRESS) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("vmem: VirtualFree: %w", err)
	}
	return nil
}

// PageSize returns the page size reported by the OS.
func PageSize() int {
	return os.Getpagesize()
}
