package vec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pagevec/internal/invariant"
)

// requireViolation runs fn and requires that it trips the invariant seam
// with the given op. The default handler panics, so the violation is caught
// by recovering.
func requireViolation(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a precondition violation")
		v, ok := r.(*invariant.Violation)
		require.True(t, ok, "panic value should be *invariant.Violation, got %T", r)
		if op != "" {
			require.Equal(t, op, v.Op)
		}
	}()
	fn()
}

// requireContents checks the vector's live elements against want, through
// both random access and the page-batched sequence.
func requireContents[T comparable](t *testing.T, v *Vector[T], want []T) {
	t.Helper()
	require.Equal(t, len(want), v.Len())
	for i, w := range want {
		require.Equal(t, w, v.Get(i), "index %d via Get", i)
	}
	i := 0
	for idx, x := range v.All() {
		require.Equal(t, i, idx)
		require.Equal(t, want[i], x, "index %d via All", i)
		i++
	}
	require.Equal(t, len(want), i)
}

// requireInvariants checks the size/capacity bookkeeping after a mutation.
func requireInvariants[T any](t *testing.T, v *Vector[T]) {
	t.Helper()
	require.LessOrEqual(t, v.Len(), v.Cap())
	require.Equal(t, v.pageCount*v.pageSize, v.Cap())
	for i := 0; i < v.pageCount; i++ {
		require.NotNil(t, v.pages[i], "page %d should be backed", i)
		require.Len(t, v.pages[i], v.pageSize)
	}
	for i := v.pageCount; i < len(v.pages); i++ {
		require.Nil(t, v.pages[i], "slot %d beyond pageCount should be nil", i)
	}
}

// fill pushes [0, n) into v.
func fill(v *Vector[int], n int) {
	for i := 0; i < n; i++ {
		v.PushBack(i)
	}
}

// seq returns the slice [0, n).
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
