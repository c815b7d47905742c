package vec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pagevec/vec/alloc"
)

func Test_AllocatorBacked_Lifecycle(t *testing.T) {
	h := alloc.NewHeap()
	v := New[int64](WithPageSize(16), WithAllocator(h))
	require.True(t, v.scrub) // forced on for allocator-backed pages

	for i := 0; i < 100; i++ {
		v.PushBack(int64(i))
	}
	require.Equal(t, 7, h.Live()) // pages for 100 elements of 16 each
	for i := 0; i < 100; i++ {
		require.Equal(t, int64(i), v.Get(i))
	}

	v.Resize(10)
	v.ShrinkToFit()
	require.Equal(t, 1, h.Live())
	requireInvariants(t, v)

	require.NoError(t, v.Close())
	require.Equal(t, 0, h.Live())
	require.Equal(t, 0, v.Len())
}

func Test_AllocatorBacked_CloneSharesAllocator(t *testing.T) {
	h := alloc.NewHeap()
	v := New[int64](WithPageSize(8), WithAllocator(h))
	for i := 0; i < 20; i++ {
		v.PushBack(int64(i))
	}
	before := h.Live()

	c := v.Clone()
	require.Greater(t, h.Live(), before) // the clone's pages come from the same allocator
	for i := 0; i < 20; i++ {
		require.Equal(t, int64(i), c.Get(i))
	}

	require.NoError(t, c.Close())
	require.NoError(t, v.Close())
	require.Equal(t, 0, h.Live())
}

func Test_AllocatorBacked_MoveFromReleasesOwnPages(t *testing.T) {
	h := alloc.NewHeap()
	src := New[int64](WithPageSize(8), WithAllocator(h))
	dst := New[int64](WithPageSize(8), WithAllocator(h))
	for i := 0; i < 20; i++ {
		src.PushBack(int64(i))
		dst.PushBack(int64(-i))
	}

	dst.MoveFrom(src)
	require.Equal(t, 3, h.Live()) // only the stolen pages remain outstanding
	require.Equal(t, 20, dst.Len())
	require.Equal(t, 0, src.Len())

	require.NoError(t, dst.Close())
	require.Equal(t, 0, h.Live())
}

func Test_AllocatorBacked_PointerElements_Violate(t *testing.T) {
	h := alloc.NewHeap()
	requireViolation(t, "vec.New", func() { New[*int](WithAllocator(h)) })
	requireViolation(t, "vec.New", func() { New[string](WithAllocator(h)) })
}

func Test_AllocatorBacked_ZeroSizeElements(t *testing.T) {
	// Zero-size types bypass the allocator entirely; Alloc(0) is an error.
	h := alloc.NewHeap()
	v := New[struct{}](WithPageSize(4), WithAllocator(h))
	for i := 0; i < 10; i++ {
		v.PushBack(struct{}{})
	}
	require.Equal(t, 10, v.Len())
	require.Equal(t, 0, h.Live())
	require.NoError(t, v.Close())
}
