package arena

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/joshuapare/arenakit/internal/buf"
)

// The typed helpers place values in arena memory. T must not contain Go
// pointers (pointers, slices, strings, maps, interfaces, channels, funcs):
// arena storage is either invisible to the garbage collector or recycled by
// Reset, so anything it references could be collected or overwritten.
// T must also need no more than word alignment. The helpers panic when
// either rule is broken.

// Allocate returns a pointer to a zeroed T in arena memory.
func Allocate[T any](a *Arena) *T {
	checkPointerFree[T]()
	var zero T
	size := int(unsafe.Sizeof(zero))
	checkAlign(unsafe.Alignof(zero), zero)
	if size == 0 {
		return new(T)
	}
	b := a.Alloc(size)
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// MakeSlice returns a zeroed slice of length n and capacity c backed by
// arena memory. It panics like make when n < 0 or n > c.
func MakeSlice[T any](a *Arena, n, c int) []T {
	if n < 0 || n > c {
		panic(fmt.Sprintf("arena: MakeSlice len %d out of range for cap %d", n, c))
	}
	checkPointerFree[T]()
	var zero T
	elem := int(unsafe.Sizeof(zero))
	checkAlign(unsafe.Alignof(zero), zero)
	if c == 0 || elem == 0 {
		return make([]T, n, c)
	}
	total, ok := buf.MulOverflowSafe(c, elem)
	if !ok {
		panic(&ExhaustedError{Err: ErrSizeOverflow})
	}
	b := a.Alloc(total)
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), c)[:n]
}

// Append appends vs to s, growing into arena memory through Realloc when s
// is full. s may live anywhere; the result lives in the arena whenever it had
// to grow.
func Append[T any](a *Arena, s []T, vs ...T) []T {
	need, ok := buf.AddOverflowSafe(len(s), len(vs))
	if !ok {
		panic(&ExhaustedError{Err: ErrSizeOverflow})
	}
	if need <= cap(s) {
		return append(s, vs...)
	}
	checkPointerFree[T]()
	var zero T
	elem := int(unsafe.Sizeof(zero))
	checkAlign(unsafe.Alignof(zero), zero)
	if elem == 0 {
		return append(s, vs...)
	}

	newCap := max(2*cap(s), need, 4)
	newBytes, ok := buf.MulOverflowSafe(newCap, elem)
	if !ok {
		panic(&ExhaustedError{Err: ErrSizeOverflow})
	}
	b := a.Realloc(bytesOf(s), newBytes)
	grown := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), newCap)[:len(s)]
	return append(grown, vs...)
}

// CloneBytes copies b into arena memory.
func CloneBytes(a *Arena, b []byte) []byte {
	out := a.Alloc(len(b))
	copy(out, b)
	return out
}

// CloneString copies s into arena memory and returns a string aliasing it.
// The string is valid until the next Reset or Free.
func CloneString(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	out := a.Alloc(len(s))
	copy(out, s)
	return unsafe.String(unsafe.SliceData(out), len(out))
}

// bytesOf views the used part of s as bytes.
func bytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

func checkAlign(align uintptr, v any) {
	if int(align) > WordSize {
		panic(fmt.Sprintf("arena: %T needs %d-byte alignment, arena guarantees %d", v, align, WordSize))
	}
}

// pointerFree caches hasPointers results, keyed by reflect.Type.
var pointerFree sync.Map

func checkPointerFree[T any]() {
	t := reflect.TypeFor[T]()
	free, ok := pointerFree.Load(t)
	if !ok {
		free, _ = pointerFree.LoadOrStore(t, !hasPointers(t))
	}
	if !free.(bool) {
		panic(fmt.Sprintf("arena: %v contains Go pointers", t))
	}
}

// hasPointers reports whether values of t hold anything the garbage
// collector must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.String,
		reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
