package vec

import "fmt"

// Assign replaces v's contents with a copy of src's. The destination is
// reset before copying, so an allocation failure during the reserve leaves v
// valid but empty rather than holding a partial mix of old and new elements.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	v.lazyInit()
	v.Clear()
	v.Reserve(src.size)
	v.copyPagesFrom(src)
	v.size = src.size
}

// AssignSlice replaces v's contents with a copy of xs.
func (v *Vector[T]) AssignSlice(xs []T) {
	v.lazyInit()
	v.Clear()
	v.Reserve(len(xs))
	v.copyInAt(0, xs)
	v.size = len(xs)
}

// Clone returns a new vector with the same page geometry and contents. A
// custom allocator is shared with the clone, not duplicated.
func (v *Vector[T]) Clone() *Vector[T] {
	v.lazyInit()
	c := &Vector[T]{}
	c.setup(v.pageSize, v.alloc)
	c.Assign(v)
	return c
}

// MoveFrom steals src's page table, configuration and length, leaving src
// empty. No element is copied; v's own pages are released first. Both
// vectors' outstanding iterators are invalidated.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.orphanAll()
	src.orphanAll()
	if err := v.freeAllPages(); err != nil {
		panic(fmt.Errorf("vec: releasing pages during move: %w", err))
	}
	v.pages = src.pages
	v.pageCount = src.pageCount
	v.size = src.size
	v.pageSize = src.pageSize
	v.pageShift = src.pageShift
	v.pageMask = src.pageMask
	v.pow2 = src.pow2
	v.scrub = src.scrub
	v.elemSize = src.elemSize
	v.alloc = src.alloc

	src.pages = nil
	src.pageCount = 0
	src.size = 0
}
