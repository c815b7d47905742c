// Package alloc provides raw page allocation for the vec container.
//
// # Overview
//
// A paged vector stores its elements in fixed-size pages. By default pages
// come from the Go heap, but embedders can substitute any Allocator to place
// pages elsewhere (anonymous mappings, pools, instrumented test allocators).
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Alloc(sizeBytes): hand out one raw page buffer
//   - Free(buf): return a buffer obtained from Alloc
//   - Close(): release everything the allocator still owns
//
// # Implementations
//
// Heap: make-backed buffers with double-free detection
//
//   - Tracks live buffers so Free can reject foreign or already-freed slices
//   - Useful as a drop-in seam exerciser in tests
//
// Mmap: anonymous memory mappings via golang.org/x/sys/unix
//
//   - Page-aligned (4KiB), so any Go element alignment is satisfied
//   - Memory is invisible to the garbage collector; the vec package therefore
//     refuses Mmap-backed pages for pointer-bearing element types
//   - On non-Unix platforms Alloc reports ErrUnsupported
//
// # Alignment
//
// Buffers from both implementations are at least 8-byte aligned, which covers
// every Go type (Go's maximum alignment is 8). Mmap buffers are page-aligned.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally, same as the containers they back.
package alloc
