package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted indicates the backend could not supply a region.
	// Alloc and Realloc panic with an error wrapping it; TryAlloc and
	// TryRealloc return it.
	ErrExhausted = errors.New("arena: allocation exhausted")

	// ErrSizeOverflow indicates a request whose byte size does not fit in an int.
	ErrSizeOverflow = errors.New("arena: size overflows int")

	// ErrShortBlock indicates a backend returned fewer bytes than requested.
	ErrShortBlock = errors.New("arena: backend returned a short block")
)

// ExhaustedError reports a failed region acquisition. It matches ErrExhausted
// with errors.Is and unwraps to the backend's cause.
type ExhaustedError struct {
	Words int   // region capacity that was requested, in words
	Err   error // cause reported by the backend or the size check
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("arena: cannot acquire region of %d words: %v", e.Words, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

// Is reports whether target is ErrExhausted.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}
