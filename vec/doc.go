// Package vec implements a generic paged dynamic array.
//
// # Overview
//
// Vector[T] stores elements in fixed-size pages referenced from a separately
// growable page table. Compared to a plain slice it never relocates element
// payload on growth: only the small table of page headers is reallocated, so
// appends at scale avoid copy storms and oversized contiguous allocations,
// and element addresses stay stable for the lifetime of their page.
//
// Random access is O(1) through an index translation that uses shift/mask
// for power-of-two page sizes and div/mod otherwise. Appends are amortized
// O(1): the page table grows geometrically (3/2) while pages themselves are
// allocated lazily, one at a time.
//
// # Usage Example
//
//	v := vec.New[int64](vec.WithPageSize(4096))
//	for i := int64(0); i < 1_000_000; i++ {
//		v.PushBack(i)
//	}
//	total := int64(0)
//	for _, x := range v.All() {
//		total += x
//	}
//	v.EraseUnsorted(10) // O(1), order not preserved
//
// The zero value of Vector is an empty container with the default page size.
//
// # Invariants
//
//   - 0 <= Len() <= Cap(), and Cap() is always pageCount * PageSize()
//   - every backed page holds exactly PageSize() slots; only a prefix of the
//     last page holds live elements
//   - pages are never moved or copied by content; growth copies page headers
//     into a bigger table and element addresses remain page-stable
//
// # Element Lifecycle
//
// Go has no destructors, so "destroying" an element means releasing what it
// references. Vacated slots of pointer-bearing element types are zeroed so
// the garbage collector can reclaim referents; for pointer-free types the
// scrubbing branch is skipped entirely. Slots beyond Len() are never
// default-constructed speculatively.
//
// # Allocator Seam
//
// Pages come from the Go heap unless WithAllocator supplies an alloc
// implementation (for example alloc.NewMmap for anonymous mappings).
// Allocator-backed memory is invisible to the garbage collector, so that
// option is restricted to pointer-free element types. Allocation failure
// from a custom allocator is fatal by default: the operation panics with an
// error wrapping the allocator's, leaving the container in its prior state.
//
// # Precondition Checks
//
// Unchecked accessors (Get, Set, Ptr, Front, Back, PopBack, iterator use)
// report misuse through the internal invariant seam, which panics by
// default; tests substitute a recording handler. At is the checked accessor
// and returns ErrOutOfRange instead.
//
// # Iterator Debugging
//
// Building with -tags vecdebug enables iterator liveness tracking: every
// live iterator links into a container-owned list, and mutations orphan the
// iterators they invalidate, either wholesale (Clear, Assign, MoveFrom,
// Close) or from a position threshold up (PopBack, Resize, Erase). Using an
// orphaned iterator trips the invariant seam at the point of misuse. Without
// the tag the tracking types are empty and the hooks compile to nothing.
//
// # Thread Safety
//
// Vector is not synchronized. Concurrent mutation, or mutation concurrent
// with iteration, is a data race, same as a plain slice.
//
// # Related Packages
//
//   - github.com/joshuapare/pagevec/vec/alloc: page allocator seam
//   - github.com/joshuapare/pagevec/internal/invariant: precondition seam
package vec
