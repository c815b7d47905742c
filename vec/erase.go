package vec

import "github.com/joshuapare/pagevec/internal/invariant"

// Erase removes the element at index i and shifts every later element one
// slot down, preserving order.
func (v *Vector[T]) Erase(i int) {
	invariant.Assert(i >= 0 && i < v.size, "vec.Erase", "index out of range")
	v.moveRange(i, i+1, v.size-1-i)
	v.size--
	if v.scrub {
		v.zeroRange(v.size, v.size+1)
	}
	v.orphanAtOrAfter(i)
}

// EraseRange removes the elements in [first, last), shifting the tail down.
// An empty range is a no-op.
func (v *Vector[T]) EraseRange(first, last int) {
	invariant.Assert(first >= 0 && first <= last && last <= v.size,
		"vec.EraseRange", "invalid range")
	if first == last {
		return
	}
	n := last - first
	v.moveRange(first, last, v.size-last)
	v.size -= n
	if v.scrub {
		v.zeroRange(v.size, v.size+n)
	}
	v.orphanAtOrAfter(first)
}

// EraseUnsorted removes the element at index i in O(1) by relocating the
// last element into its slot. The relative order of survivors is not
// preserved; that is the documented trade-off for constant-time removal.
func (v *Vector[T]) EraseUnsorted(i int) {
	invariant.Assert(i >= 0 && i < v.size, "vec.EraseUnsorted", "index out of range")
	last := v.size - 1
	if i != last {
		lastPage, lastOff := v.locate(last)
		pageIdx, off := v.locate(i)
		v.pages[pageIdx][off] = v.pages[lastPage][lastOff]
	}
	v.size = last
	if v.scrub {
		v.zeroRange(last, last+1)
	}
	v.orphanAtOrAfter(i)
}

// EraseAt removes the element under pos and returns an iterator to its
// successor, or End when the erased element was last.
func (v *Vector[T]) EraseAt(pos *Iterator[T]) *Iterator[T] {
	pos.verify("vec.EraseAt")
	invariant.Assert(pos.vec == v, "vec.EraseAt", "iterator from a different container")
	invariant.Assert(pos.idx < v.size, "vec.EraseAt", "iterator out of range")
	i := pos.idx
	v.Erase(i)
	return v.IterAt(i)
}

// EraseBetween removes the elements in [first, last) and returns an iterator
// at the first surviving position. An empty range returns an iterator at
// first's position unchanged.
func (v *Vector[T]) EraseBetween(first, last *Iterator[T]) *Iterator[T] {
	first.verify("vec.EraseBetween")
	last.verify("vec.EraseBetween")
	invariant.Assert(first.vec == v && last.vec == v,
		"vec.EraseBetween", "iterator from a different container")
	invariant.Assert(first.idx <= last.idx, "vec.EraseBetween", "invalid iterator range")
	i := first.idx
	v.EraseRange(i, last.idx)
	return v.IterAt(i)
}

// EraseUnsortedAt removes the element under pos in O(1). It returns End when
// pos referred to the last element, otherwise an iterator at the same index,
// which now holds the relocated former last element.
func (v *Vector[T]) EraseUnsortedAt(pos *Iterator[T]) *Iterator[T] {
	pos.verify("vec.EraseUnsortedAt")
	invariant.Assert(pos.vec == v, "vec.EraseUnsortedAt", "iterator from a different container")
	invariant.Assert(pos.idx < v.size, "vec.EraseUnsortedAt", "iterator out of range")
	i := pos.idx
	if i == v.size-1 {
		v.PopBack()
		return v.End()
	}
	v.EraseUnsorted(i)
	return v.IterAt(i)
}
