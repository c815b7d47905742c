//go:build vecdebug

package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Debug_ClearOrphansAllIterators(t *testing.T) {
	v := New[int](WithPageSize(4))
	fill(v, 10)

	a := v.Begin()
	b := v.IterAt(5)
	v.Clear()

	require.False(t, a.Valid())
	require.False(t, b.Valid())
	requireViolation(t, "vec.Iterator.Value", func() { a.Value() })
	requireViolation(t, "vec.Iterator.Next", func() { b.Next() })
}

func Test_Debug_EraseOrphansTailOnly(t *testing.T) {
	v := New[int](WithPageSize(4))
	fill(v, 10)

	before := v.IterAt(1)
	at := v.IterAt(5)
	after := v.IterAt(8)

	v.Erase(5)

	// Iterators below the erase point survive.
	require.Equal(t, 1, before.Value())

	// The erase point and everything beyond are orphaned.
	require.False(t, at.Valid())
	require.False(t, after.Valid())
	requireViolation(t, "vec.Iterator.Value", func() { at.Value() })
}

func Test_Debug_PopBackOrphansLastAndEnd(t *testing.T) {
	v := New[int](WithPageSize(4))
	fill(v, 5)

	last := v.IterAt(4)
	end := v.End()
	keep := v.IterAt(3)

	v.PopBack()

	require.Equal(t, 3, keep.Value())
	requireViolation(t, "vec.Iterator.Value", func() { last.Value() })
	requireViolation(t, "vec.Iterator.Prev", func() { end.Prev() })
}

func Test_Debug_ResizeThreshold(t *testing.T) {
	v := New[int](WithPageSize(4))
	fill(v, 10)

	low := v.IterAt(2)
	high := v.IterAt(7)

	v.Resize(5) // shrink orphans positions >= 5
	require.Equal(t, 2, low.Value())
	require.False(t, high.Valid())

	v.Resize(20) // growth orphans positions >= old length
	require.Equal(t, 2, low.Value())
}

func Test_Debug_MoveFromOrphansBothSides(t *testing.T) {
	src := New[int](WithPageSize(4))
	dst := New[int](WithPageSize(4))
	fill(src, 5)
	fill(dst, 5)

	si := src.Begin()
	di := dst.Begin()

	dst.MoveFrom(src)

	requireViolation(t, "vec.Iterator.Value", func() { si.Value() })
	requireViolation(t, "vec.Iterator.Value", func() { di.Value() })
}

func Test_Debug_ShrinkToFitKeepsIterators(t *testing.T) {
	v := New[int](WithPageSize(4))
	fill(v, 20)
	v.Resize(5)

	it := v.IterAt(3)
	v.ShrinkToFit()
	require.Equal(t, 3, it.Value())
}

func Test_Debug_CloneIsTrackedIndependently(t *testing.T) {
	v := New[int](WithPageSize(4))
	fill(v, 6)

	a := v.IterAt(1)
	b := v.IterAt(5)
	c := b.Clone()

	v.PopBack() // orphans b and c, keeps a

	require.Equal(t, 1, a.Value())
	require.False(t, b.Valid())
	require.False(t, c.Valid())

	// The surviving iterator is still tracked: a later Clear orphans it too.
	v.Clear()
	requireViolation(t, "vec.Iterator.Value", func() { a.Value() })
}
