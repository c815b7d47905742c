package vec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/pagevec/internal/invariant"
)

const (
	// Page-table capacity grows by 3/2, like slice growth but at page
	// granularity.
	growthDenominator = 2

	// safetyMargin keeps the slot-array ceiling clear of allocation headers
	// and alignment slack.
	safetyMargin = 16
)

// pagesFor returns the number of pages needed to hold n elements.
func (v *Vector[T]) pagesFor(n int) int {
	return (n + v.pageSize - 1) / v.pageSize
}

// locate maps a linear index to its page index and in-page offset.
// Power-of-two page sizes take the shift/mask path; both paths produce
// identical results for all inputs.
func (v *Vector[T]) locate(pos int) (pageIdx, off int) {
	if v.pow2 {
		return pos >> v.pageShift, pos & v.pageMask
	}
	return pos / v.pageSize, pos % v.pageSize
}

// maxPageCapacity bounds the slot array so its byte size cannot overflow.
func (v *Vector[T]) maxPageCapacity() int {
	slotSize := int(unsafe.Sizeof([]T(nil)))
	maxSlots := math.MaxInt / slotSize
	if maxSlots > safetyMargin {
		return maxSlots - safetyMargin
	}
	return maxSlots
}

// pageGrowth computes the next slot capacity: 3/2 geometric growth, clamped
// to maxPageCapacity, never less than pagesNeeded.
func (v *Vector[T]) pageGrowth(pagesNeeded int) int {
	oldCap := len(v.pages)
	maxCap := v.maxPageCapacity()
	if oldCap > maxCap-oldCap/growthDenominator {
		return maxCap // geometric growth would overflow the ceiling
	}
	geometric := oldCap + oldCap/growthDenominator
	if geometric < pagesNeeded {
		return pagesNeeded
	}
	return geometric
}

// ensurePageCapacity grows the slot array to hold at least pagesNeeded page
// headers. Existing page headers are copied; page contents never move.
func (v *Vector[T]) ensurePageCapacity(pagesNeeded int) {
	if pagesNeeded <= len(v.pages) {
		return
	}
	invariant.Assert(pagesNeeded <= v.maxPageCapacity(), "vec", "page table overflow")
	var newCap int
	if len(v.pages) == 0 {
		newCap = pagesNeeded // exact fit on the first growth
	} else {
		newCap = v.pageGrowth(pagesNeeded)
	}
	grown := make([][]T, newCap)
	copy(grown, v.pages)
	v.pages = grown
}

// ensureSpaceForOneMore backs the slot the next PushBack will write. The
// page table grows geometrically but page allocation stays lazy, exactly one
// page at a time, keeping per-append cost amortized O(1).
func (v *Vector[T]) ensureSpaceForOneMore() {
	pageIdx, _ := v.locate(v.size)
	if pageIdx >= v.pageCount {
		v.ensurePageCapacity(pageIdx + 1)
		v.allocPage(pageIdx)
	}
}

// allocPage backs the slot at pageIdx with a fresh page.
func (v *Vector[T]) allocPage(pageIdx int) {
	invariant.Assert(pageIdx < len(v.pages), "vec", "page index beyond table capacity")
	invariant.Assert(v.pages[pageIdx] == nil, "vec", "page already allocated")
	v.pages[pageIdx] = v.newPage()
	if pageIdx >= v.pageCount {
		v.pageCount = pageIdx + 1
	}
}

// newPage obtains one page of pageSize element slots. Failure from a custom
// allocator is fatal by design: newPage panics with the wrapped error before
// any counter changes, leaving the container in its prior valid state.
func (v *Vector[T]) newPage() []T {
	if v.alloc == nil || v.elemSize == 0 {
		return make([]T, v.pageSize)
	}
	buf, err := v.alloc.Alloc(v.pageSize * v.elemSize)
	if err != nil {
		panic(fmt.Errorf("vec: page allocation failed: %w", err))
	}
	page := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), v.pageSize)
	clear(page) // recycled allocator buffers may carry stale bytes
	return page
}

// freePage releases the page at pageIdx and nils its slot.
func (v *Vector[T]) freePage(pageIdx int) {
	invariant.Assert(pageIdx < v.pageCount, "vec", "page index out of range")
	page := v.pages[pageIdx]
	if page == nil {
		return
	}
	v.pages[pageIdx] = nil
	if v.alloc != nil && v.elemSize != 0 {
		if err := v.alloc.Free(v.pageBytes(page)); err != nil {
			panic(fmt.Errorf("vec: page free failed: %w", err))
		}
	}
}

// pageBytes reconstructs the raw buffer view originally handed out by the
// allocator for page.
func (v *Vector[T]) pageBytes(page []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(page))), v.pageSize*v.elemSize)
}

// freeAllPages hands every page back. With a custom allocator the first Free
// error is reported after all pages have been released.
func (v *Vector[T]) freeAllPages() error {
	var firstErr error
	for i := 0; i < v.pageCount; i++ {
		page := v.pages[i]
		if page == nil {
			continue
		}
		v.pages[i] = nil
		if v.alloc != nil && v.elemSize != 0 {
			if err := v.alloc.Free(v.pageBytes(page)); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	v.pageCount = 0
	return firstErr
}
