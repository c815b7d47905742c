//go:build !vecdebug

package vec

// Release builds carry no iterator tracking state; the registry is an empty
// struct and every hook is an empty function the compiler erases.

type itstate[T any] struct{}

type iterLink[T any] struct{}

func (v *Vector[T]) adopt(it *Iterator[T]) {}

func (v *Vector[T]) orphanAll() {}

func (v *Vector[T]) orphanAtOrAfter(pos int) {}

func (it *Iterator[T]) verify(op string) {}
