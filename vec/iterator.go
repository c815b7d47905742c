package vec

import (
	"iter"

	"github.com/joshuapare/pagevec/internal/invariant"
)

// Iterator is a random-access cursor over a Vector. It carries its linear
// index plus a cached page slice and in-page offset; the cache refreshes
// when an increment crosses a page boundary, and unconditionally on
// arbitrary jumps, where boundary crossings cannot be detected cheaply.
//
// Under the vecdebug build tag every live iterator is tracked by its
// container; mutations orphan the iterators they invalidate and any use of
// an orphaned iterator trips the invariant seam.
type Iterator[T any] struct {
	vec  *Vector[T]
	idx  int
	page []T
	off  int
	iterLink[T]
}

// Begin returns an iterator at the first element (equal to End when empty).
func (v *Vector[T]) Begin() *Iterator[T] { return v.IterAt(0) }

// End returns the past-the-end iterator.
func (v *Vector[T]) End() *Iterator[T] { return v.IterAt(v.size) }

// IterAt returns an iterator at linear index i; i == Len() yields the end
// position.
func (v *Vector[T]) IterAt(i int) *Iterator[T] {
	invariant.Assert(i >= 0 && i <= v.size, "vec.IterAt", "index out of range")
	it := &Iterator[T]{vec: v, idx: i}
	it.refresh()
	v.adopt(it)
	return it
}

// refresh rebuilds the cached page pointer for the current index.
func (it *Iterator[T]) refresh() {
	if it.vec == nil || it.idx >= it.vec.size {
		it.page = nil
		it.off = 0
		return
	}
	pageIdx, off := it.vec.locate(it.idx)
	it.page = it.vec.pages[pageIdx]
	it.off = off
}

// Valid reports whether the iterator addresses a live element.
func (it *Iterator[T]) Valid() bool {
	return it.vec != nil && it.idx < it.vec.size
}

// Index returns the iterator's linear position.
func (it *Iterator[T]) Index() int { return it.idx }

// Value returns the element under the iterator.
func (it *Iterator[T]) Value() T {
	it.verify("vec.Iterator.Value")
	invariant.Assert(it.Valid(), "vec.Iterator.Value", "iterator is not dereferenceable")
	return it.page[it.off]
}

// Ptr returns the address of the element under the iterator.
func (it *Iterator[T]) Ptr() *T {
	it.verify("vec.Iterator.Ptr")
	invariant.Assert(it.Valid(), "vec.Iterator.Ptr", "iterator is not dereferenceable")
	return &it.page[it.off]
}

// Set overwrites the element under the iterator.
func (it *Iterator[T]) Set(x T) {
	it.verify("vec.Iterator.Set")
	invariant.Assert(it.Valid(), "vec.Iterator.Set", "iterator is not dereferenceable")
	it.page[it.off] = x
}

// Next advances past the current element. The page cache is refreshed only
// when the step crosses a page boundary or reaches the end.
func (it *Iterator[T]) Next() {
	it.verify("vec.Iterator.Next")
	invariant.Assert(it.Valid(), "vec.Iterator.Next", "cannot advance past end")
	it.idx++
	it.off++
	if it.off >= it.vec.pageSize || it.idx >= it.vec.size {
		it.refresh()
	}
}

// Prev steps back one element.
func (it *Iterator[T]) Prev() {
	it.verify("vec.Iterator.Prev")
	invariant.Assert(it.vec != nil && it.idx > 0, "vec.Iterator.Prev", "cannot step before begin")
	it.idx--
	if it.page == nil || it.off == 0 {
		it.refresh()
	} else {
		it.off--
	}
}

// Advance moves the iterator by delta positions, which may be negative. The
// resulting position must lie in [0, Len()].
func (it *Iterator[T]) Advance(delta int) {
	it.verify("vec.Iterator.Advance")
	invariant.Assert(it.vec != nil, "vec.Iterator.Advance", "iterator is unassociated")
	target := it.idx + delta
	invariant.Assert(target >= 0 && target <= it.vec.size,
		"vec.Iterator.Advance", "position out of range")
	it.idx = target
	it.refresh()
}

// Distance returns it's position minus other's, in elements.
func (it *Iterator[T]) Distance(other *Iterator[T]) int {
	it.verify("vec.Iterator.Distance")
	other.verify("vec.Iterator.Distance")
	invariant.Assert(it.vec == other.vec,
		"vec.Iterator.Distance", "iterators from different containers")
	return it.idx - other.idx
}

// Compare orders two iterators over the same container: -1, 0 or +1.
func (it *Iterator[T]) Compare(other *Iterator[T]) int {
	it.verify("vec.Iterator.Compare")
	other.verify("vec.Iterator.Compare")
	invariant.Assert(it.vec == other.vec,
		"vec.Iterator.Compare", "iterators from different containers")
	switch {
	case it.idx < other.idx:
		return -1
	case it.idx > other.idx:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both iterators address the same position of the same
// container.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.vec == other.vec && it.idx == other.idx
}

// Clone returns an independent iterator at the same position.
func (it *Iterator[T]) Clone() *Iterator[T] {
	c := &Iterator[T]{vec: it.vec, idx: it.idx, page: it.page, off: it.off}
	if it.vec != nil {
		it.vec.adopt(c)
	}
	return c
}

// All returns an index/value sequence over the live elements. The walk is
// page-batched and allocates nothing.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for pageIdx := 0; idx < v.size; pageIdx++ {
			page := v.pages[pageIdx]
			n := min(v.size-idx, v.pageSize)
			for off := 0; off < n; off++ {
				if !yield(idx, page[off]) {
					return
				}
				idx++
			}
		}
	}
}

// Values returns a value-only sequence over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		idx := 0
		for pageIdx := 0; idx < v.size; pageIdx++ {
			page := v.pages[pageIdx]
			n := min(v.size-idx, v.pageSize)
			for off := 0; off < n; off++ {
				if !yield(page[off]) {
					return
				}
				idx++
			}
		}
	}
}
