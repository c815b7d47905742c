//go:build vecdebug

package vec

import "github.com/joshuapare/pagevec/internal/invariant"

// itstate heads the container's intrusive singly-linked list of live
// iterators. Only built under the vecdebug tag; the release build swaps in
// an empty struct and no-op hooks.
type itstate[T any] struct {
	head *Iterator[T]
}

// iterLink threads an iterator into its container's liveness list.
type iterLink[T any] struct {
	next *Iterator[T]
}

// adopt registers a newly created iterator for invalidation tracking.
func (v *Vector[T]) adopt(it *Iterator[T]) {
	it.next = v.iters.head
	v.iters.head = it
}

// orphanAll unlinks and orphans every tracked iterator. Whole-container
// invalidation events: Clear, Assign, MoveFrom (both sides), Close.
func (v *Vector[T]) orphanAll() {
	node := v.iters.head
	v.iters.head = nil
	for node != nil {
		next := node.next
		node.vec = nil
		node.page = nil
		node.next = nil
		node = next
	}
}

// orphanAtOrAfter unlinks and orphans tracked iterators positioned at or
// beyond pos. Tail invalidation events (PopBack, Resize, Erase*) keep
// iterators before the threshold live.
func (v *Vector[T]) orphanAtOrAfter(pos int) {
	pprev := &v.iters.head
	for curr := *pprev; curr != nil; curr = *pprev {
		if curr.idx >= pos {
			*pprev = curr.next
			curr.vec = nil
			curr.page = nil
			curr.next = nil
		} else {
			pprev = &curr.next
		}
	}
}

// verify trips the invariant seam when an orphaned or out-of-range iterator
// is used.
func (it *Iterator[T]) verify(op string) {
	invariant.Assert(it.vec != nil, op, "iterator is orphaned or unassociated")
	if it.vec != nil {
		invariant.Assert(it.idx <= it.vec.size, op, "iterator out of range")
	}
}
