package vec

import "reflect"

// typeHasPointers reports whether t contains anything the garbage collector
// must be able to see. Pointer-free element types skip slot scrubbing as a
// dead branch and are eligible for allocator-backed pages.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, String, Slice, Map, Chan, Func, Interface.
		return true
	}
}

// forEachRun invokes fn once per maximal in-page run covering [first, last).
// Bulk walks batch to page granularity so the index translation runs once
// per page instead of once per element.
func (v *Vector[T]) forEachRun(first, last int, fn func(page []T, off, n int)) {
	for first < last {
		pageIdx, off := v.locate(first)
		n := min(last-first, v.pageSize-off)
		fn(v.pages[pageIdx], off, n)
		first += n
	}
}

// zeroRange scrubs the slots in [first, last) so they hold no references.
func (v *Vector[T]) zeroRange(first, last int) {
	v.forEachRun(first, last, func(page []T, off, n int) {
		clear(page[off : off+n])
	})
}

// fillRange assigns value to every slot in [first, last).
func (v *Vector[T]) fillRange(first, last int, value T) {
	v.forEachRun(first, last, func(page []T, off, n int) {
		run := page[off : off+n]
		for i := range run {
			run[i] = value
		}
	})
}

// copyInAt copies xs into the slots starting at dst.
func (v *Vector[T]) copyInAt(dst int, xs []T) {
	v.forEachRun(dst, dst+len(xs), func(page []T, off, n int) {
		copy(page[off:off+n], xs[:n])
		xs = xs[n:]
	})
}

// moveRange shifts n elements from src down to dst (dst < src). Runs are
// bounded by the remaining count and the room left in the source and
// destination pages, so each batch is a single contiguous copy.
func (v *Vector[T]) moveRange(dst, src, n int) {
	for n > 0 {
		srcPage, srcOff := v.locate(src)
		dstPage, dstOff := v.locate(dst)
		run := min(n, v.pageSize-srcOff, v.pageSize-dstOff)
		copy(v.pages[dstPage][dstOff:dstOff+run], v.pages[srcPage][srcOff:srcOff+run])
		src += run
		dst += run
		n -= run
	}
}

// copyPagesFrom copies src's live elements into v's already-reserved pages.
// Identical page geometry copies whole pages sized to the live count per
// page; differing geometries re-batch runs across both boundary sets.
func (v *Vector[T]) copyPagesFrom(src *Vector[T]) {
	if v.pageSize == src.pageSize {
		remaining := src.size
		for pageIdx := 0; remaining > 0; pageIdx++ {
			n := min(remaining, src.pageSize)
			copy(v.pages[pageIdx][:n], src.pages[pageIdx][:n])
			remaining -= n
		}
		return
	}
	idx := 0
	for idx < src.size {
		srcPage, srcOff := src.locate(idx)
		dstPage, dstOff := v.locate(idx)
		run := min(src.size-idx, src.pageSize-srcOff, v.pageSize-dstOff)
		copy(v.pages[dstPage][dstOff:dstOff+run], src.pages[srcPage][srcOff:srcOff+run])
		idx += run
	}
}
