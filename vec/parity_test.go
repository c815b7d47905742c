package vec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// node is a pointer-bearing element type, exercising the scrubbed lifecycle
// path.
type node struct {
	id   int
	data *int
}

// refOps applies the same randomized mutation sequence to a vector and a
// plain slice and requires them to agree after every step. The slice is the
// semantic reference for everything except erase_unsorted, which is modelled
// with the swap-with-last idiom.
func refOps[T comparable](t *testing.T, v *Vector[T], mk func(i int) T) {
	t.Helper()
	var ref []T
	rng := rand.New(rand.NewSource(42))

	check := func() {
		t.Helper()
		require.Equal(t, len(ref), v.Len())
		for i := range ref {
			require.Equal(t, ref[i], v.Get(i), "index %d", i)
		}
	}

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(10); {
		case op < 4: // push, weighted so the container grows
			x := mk(step)
			v.PushBack(x)
			ref = append(ref, x)
		case op == 4 && len(ref) > 0:
			v.PopBack()
			ref = ref[:len(ref)-1]
		case op == 5 && len(ref) > 0:
			i := rng.Intn(len(ref))
			v.Erase(i)
			ref = append(ref[:i], ref[i+1:]...)
		case op == 6 && len(ref) > 1:
			first := rng.Intn(len(ref))
			last := first + rng.Intn(len(ref)-first)
			v.EraseRange(first, last)
			ref = append(ref[:first], ref[last:]...)
		case op == 7 && len(ref) > 0:
			i := rng.Intn(len(ref))
			v.EraseUnsorted(i)
			ref[i] = ref[len(ref)-1]
			ref = ref[:len(ref)-1]
		case op == 8:
			n := rng.Intn(len(ref) + 20)
			v.Resize(n)
			for len(ref) < n {
				var zero T
				ref = append(ref, zero)
			}
			ref = ref[:n]
		case op == 9 && len(ref) > 0:
			i := rng.Intn(len(ref))
			x := mk(-step)
			v.Set(i, x)
			ref[i] = x
		}
		check()
	}
}

func Test_SliceParity_Int64(t *testing.T) {
	v := New[int64](WithPageSize(4))
	refOps(t, v, func(i int) int64 { return int64(i) })
}

func Test_SliceParity_PointerBearing(t *testing.T) {
	v := New[node](WithPageSize(4))
	refOps(t, v, func(i int) node { return node{id: i} })
}

func Test_SliceParity_NonPowerOfTwoPage(t *testing.T) {
	v := New[int64](WithPageSize(5))
	refOps(t, v, func(i int) int64 { return int64(i) })
}

func Test_Scrub_VacatedSlotsAreZeroed(t *testing.T) {
	// White box: for pointer-bearing types every slot in [size, cap) must be
	// zero so popped elements do not pin their referents.
	requireVacatedZero := func(t *testing.T, v *Vector[*int]) {
		t.Helper()
		for i := v.size; i < v.Cap(); i++ {
			pageIdx, off := v.locate(i)
			require.Nil(t, v.pages[pageIdx][off], "slot %d should be scrubbed", i)
		}
	}

	x := 1
	v := New[*int](WithPageSize(4))
	require.True(t, v.scrub)
	for i := 0; i < 10; i++ {
		v.PushBack(&x)
	}

	v.PopBack()
	requireVacatedZero(t, v)

	v.EraseUnsorted(2)
	requireVacatedZero(t, v)

	v.EraseRange(1, 4)
	requireVacatedZero(t, v)

	v.Resize(2)
	requireVacatedZero(t, v)

	v.Clear()
	requireVacatedZero(t, v)
}

func Test_Scrub_DisabledForPointerFreeTypes(t *testing.T) {
	require.False(t, New[int64]().scrub)
	require.False(t, New[[4]byte]().scrub)
	require.False(t, New[struct{ A, B int32 }]().scrub)

	require.True(t, New[string]().scrub)
	require.True(t, New[[]byte]().scrub)
	require.True(t, New[map[string]int]().scrub)
	require.True(t, New[node]().scrub)
	require.True(t, New[struct{ M [2]*int }]().scrub)
	require.True(t, New[any]().scrub)
}
