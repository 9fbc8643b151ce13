// Package arena provides a region-based bump allocator for phase-oriented
// work: one arena per parse pass, per compiled unit, per file in a batch.
//
// # Overview
//
// An Arena owns a singly linked chain of fixed-capacity regions and a cursor
// pointing at the region currently being filled. Allocation rounds the
// request up to whole pointer-sized words and bumps the cursor region's used
// count. Objects are never freed one by one; the whole arena is either Reset
// for reuse or Freed.
//
//	var a arena.Arena // zero value is ready
//	defer a.Free()
//
//	buf := a.Alloc(128)              // 128 bytes, contents unspecified
//	buf = a.Realloc(buf, 256)        // new block, first 128 bytes copied
//	p := arena.Allocate[header](&a)  // zeroed header in arena memory
//	xs := arena.MakeSlice[uint32](&a, 0, 64)
//
//	a.Reset() // every pointer above is now invalid; capacity is kept
//
// # Growth
//
// The first allocation creates a region of max(RegionCapacity, request)
// words. Later allocations walk forward from the cursor over regions left
// behind by an earlier Reset and take the first one with room. When none has
// room a new region of max(RegionCapacity, request) words is appended to the
// tail and becomes the cursor. Regions the cursor walked past are dead for
// the rest of the current era; Reset makes them usable again.
//
// Allocations never move. A slice returned by Alloc keeps pointing at the
// same bytes until the next Reset or Free of its arena.
//
// # Lifecycle
//
//	Empty  --Alloc--> Active
//	Active --Alloc--> Active  (chain may grow)
//	Active --Reset--> Active  (usage zeroed, capacity kept, no backend calls)
//	Active --Free-->  Empty   (every region released to the backend)
//
// # Backends
//
// Regions are acquired through a Backend with two operations, Acquire and
// Release. It is consulted only when the chain grows or is freed, never on
// the bump path.
//
//   - Heap: Go runtime heap, pointer-free memory (default)
//   - Virtual: anonymous OS pages via mmap or VirtualAlloc
//   - Malloc: a malloc-style allocator outside the Go heap
//
// DefaultBackend is fixed at build time: -tags arena_vmem selects Virtual,
// -tags arena_malloc selects a shared Malloc. WithBackend overrides it for a
// single arena at construction.
//
// # Exhaustion
//
// When the backend cannot supply a region, Alloc and Realloc panic with an
// *ExhaustedError (errors.Is(err, ErrExhausted) holds). This mirrors the
// abort-on-exhaustion contract of short-lived tool processes. Long-running
// callers use TryAlloc and TryRealloc, which return the error and leave the
// arena untouched.
//
// # Concurrency
//
// Arenas are not synchronized. Use one arena per goroutine, or guard a
// shared one with a mutex. Backends may be shared between arenas.
package arena
