package vec

import (
	"math"
	"math/bits"
	"reflect"
	"unsafe"

	"github.com/joshuapare/pagevec/internal/invariant"
	"github.com/joshuapare/pagevec/vec/alloc"
)

// DefaultPageSize is the number of element slots per page when WithPageSize
// is not given.
const DefaultPageSize = 1024

// Vector is a paged dynamic array of T. See the package documentation for
// the layout and guarantees. The zero value is an empty vector with the
// default page size.
type Vector[T any] struct {
	pages     [][]T // page table; len(pages) is the reserved slot capacity
	pageCount int   // slots actually backed by a page; slots beyond are nil
	size      int   // live elements

	pageSize  int  // element slots per page; 0 until first use (lazy default)
	pageShift uint // locate() shift, valid when pow2
	pageMask  int  // locate() mask, valid when pow2
	pow2      bool
	scrub     bool // vacated slots must be zeroed
	elemSize  int
	alloc     alloc.Allocator // nil means pages come from the Go heap

	iters itstate[T]
}

// New returns an empty vector configured by opts.
func New[T any](opts ...Option) *Vector[T] {
	var cfg config
	cfg.pageSize = DefaultPageSize
	for _, opt := range opts {
		opt(&cfg)
	}
	v := &Vector[T]{}
	v.setup(cfg.pageSize, cfg.alloc)
	if cfg.capacity > 0 {
		v.Reserve(cfg.capacity)
	}
	return v
}

// NewLen returns a vector holding n zero-valued elements.
func NewLen[T any](n int, opts ...Option) *Vector[T] {
	invariant.Assert(n >= 0, "vec.NewLen", "length must be non-negative")
	v := New[T](opts...)
	v.Resize(n)
	return v
}

// NewFill returns a vector holding n copies of value.
func NewFill[T any](n int, value T, opts ...Option) *Vector[T] {
	invariant.Assert(n >= 0, "vec.NewFill", "length must be non-negative")
	v := New[T](opts...)
	v.ResizeFill(n, value)
	return v
}

// Of returns a vector holding xs in order.
func Of[T any](xs ...T) *Vector[T] {
	v := New[T]()
	v.AssignSlice(xs)
	return v
}

// FromSlice returns a vector holding a copy of xs.
func FromSlice[T any](xs []T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.AssignSlice(xs)
	return v
}

// setup fixes the page geometry and lifecycle policy for the element type.
func (v *Vector[T]) setup(pageSize int, a alloc.Allocator) {
	invariant.Assert(pageSize > 0, "vec.New", "page size must be greater than zero")
	var zero T
	v.elemSize = int(unsafe.Sizeof(zero))
	hasPtrs := typeHasPointers(reflect.TypeFor[T]())
	if a != nil {
		invariant.Assert(!hasPtrs, "vec.New",
			"allocator-backed pages cannot hold pointer-bearing elements")
	}
	v.pageSize = pageSize
	if pageSize&(pageSize-1) == 0 {
		v.pow2 = true
		v.pageShift = uint(bits.TrailingZeros(uint(pageSize)))
		v.pageMask = pageSize - 1
	}
	// Allocator-backed pages are scrubbed regardless of the element type so
	// freed slots never leak stale bytes into a recycled buffer.
	v.scrub = hasPtrs || a != nil
	v.alloc = a
}

// lazyInit makes the zero value of Vector usable with default configuration.
func (v *Vector[T]) lazyInit() {
	if v.pageSize == 0 {
		v.setup(DefaultPageSize, nil)
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Cap returns the number of elements the backed pages can hold.
func (v *Vector[T]) Cap() int { return v.pageCount * v.pageSize }

// PageSize returns the element capacity of one page.
func (v *Vector[T]) PageSize() int {
	v.lazyInit()
	return v.pageSize
}

// MaxLen returns the largest element count the page table can address.
func (v *Vector[T]) MaxLen() int {
	v.lazyInit()
	maxPages := v.maxPageCapacity()
	if maxPages > math.MaxInt/v.pageSize {
		return math.MaxInt
	}
	return maxPages * v.pageSize
}

// Get returns the element at index i. Out-of-range access is a precondition
// violation; use At for a checked lookup.
func (v *Vector[T]) Get(i int) T {
	invariant.Assert(i >= 0 && i < v.size, "vec.Get", "index out of range")
	pageIdx, off := v.locate(i)
	return v.pages[pageIdx][off]
}

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, x T) {
	invariant.Assert(i >= 0 && i < v.size, "vec.Set", "index out of range")
	pageIdx, off := v.locate(i)
	v.pages[pageIdx][off] = x
}

// Ptr returns the address of the element at index i. The address stays valid
// until the element's page is freed or the element is erased; page-table
// growth does not move it.
func (v *Vector[T]) Ptr(i int) *T {
	invariant.Assert(i >= 0 && i < v.size, "vec.Ptr", "index out of range")
	pageIdx, off := v.locate(i)
	return &v.pages[pageIdx][off]
}

// At returns the element at index i, or ErrOutOfRange when i is not a live
// position.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, ErrOutOfRange
	}
	pageIdx, off := v.locate(i)
	return v.pages[pageIdx][off], nil
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	invariant.Assert(v.size > 0, "vec.Front", "container is empty")
	return v.pages[0][0]
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	invariant.Assert(v.size > 0, "vec.Back", "container is empty")
	pageIdx, off := v.locate(v.size - 1)
	return v.pages[pageIdx][off]
}

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) {
	v.lazyInit()
	v.ensureSpaceForOneMore()
	pageIdx, off := v.locate(v.size)
	v.pages[pageIdx][off] = x
	v.size++
}

// EmplaceBack appends a zero-valued element and returns its address for
// in-place construction. The address is page-stable.
func (v *Vector[T]) EmplaceBack() *T {
	v.lazyInit()
	v.ensureSpaceForOneMore()
	pageIdx, off := v.locate(v.size)
	slot := &v.pages[pageIdx][off]
	var zero T
	*slot = zero // the slot may hold a previously popped value
	v.size++
	return slot
}

// Append appends xs in order, reserving all needed pages up front.
func (v *Vector[T]) Append(xs ...T) {
	if len(xs) == 0 {
		return
	}
	v.lazyInit()
	v.Reserve(v.size + len(xs))
	v.copyInAt(v.size, xs)
	v.size += len(xs)
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	invariant.Assert(v.size > 0, "vec.PopBack", "container is empty")
	v.size--
	if v.scrub {
		v.zeroRange(v.size, v.size+1)
	}
	v.orphanAtOrAfter(v.size)
}

// Clear removes all elements without releasing page memory. ShrinkToFit
// frees the pages.
func (v *Vector[T]) Clear() {
	if v.scrub {
		v.zeroRange(0, v.size)
	}
	v.size = 0
	v.orphanAll()
}

// Reserve backs enough pages to hold n elements, growing the page table if
// needed. It never shrinks; Reserve(0) never allocates. Unlike PushBack's
// lazy one-page-at-a-time allocation, all newly needed pages are allocated
// eagerly.
func (v *Vector[T]) Reserve(n int) {
	invariant.Assert(n >= 0, "vec.Reserve", "capacity must be non-negative")
	if n <= v.Cap() {
		return
	}
	v.lazyInit()
	pagesNeeded := v.pagesFor(n)
	v.ensurePageCapacity(pagesNeeded)
	for i := v.pageCount; i < pagesNeeded; i++ {
		v.allocPage(i)
	}
}

// ShrinkToFit frees every page beyond those needed for the current length.
// Live elements are never moved.
func (v *Vector[T]) ShrinkToFit() {
	if v.pageCount == 0 {
		return
	}
	pagesNeeded := v.pagesFor(v.size)
	for i := pagesNeeded; i < v.pageCount; i++ {
		v.freePage(i)
	}
	v.pageCount = pagesNeeded
}

// Resize sets the length to n, zero-filling growth and scrubbing shrinkage.
func (v *Vector[T]) Resize(n int) {
	invariant.Assert(n >= 0, "vec.Resize", "length must be non-negative")
	v.lazyInit()
	old := v.size
	switch {
	case n < old:
		if v.scrub {
			v.zeroRange(n, old)
		}
	case n > old:
		v.Reserve(n)
		if !v.scrub {
			// Scrubbed vectors keep vacated slots zero, so only the
			// non-scrubbed path must clear stale bytes left by pops.
			v.zeroRange(old, n)
		}
	}
	v.size = n
	v.orphanAtOrAfter(min(old, n))
}

// ResizeFill sets the length to n, filling growth with value.
func (v *Vector[T]) ResizeFill(n int, value T) {
	invariant.Assert(n >= 0, "vec.ResizeFill", "length must be non-negative")
	v.lazyInit()
	old := v.size
	switch {
	case n < old:
		if v.scrub {
			v.zeroRange(n, old)
		}
	case n > old:
		v.Reserve(n)
		v.fillRange(old, n, value)
	}
	v.size = n
	v.orphanAtOrAfter(min(old, n))
}

// Close releases every page and resets the vector to empty. It does not
// close a custom allocator, which may back other vectors. The vector remains
// usable afterwards.
func (v *Vector[T]) Close() error {
	v.orphanAll()
	err := v.freeAllPages()
	v.pages = nil
	v.size = 0
	return err
}
