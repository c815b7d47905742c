// Package invariant is the precondition seam for the vec container.
//
// Contract checks (index in range, non-empty before pop, iterator belongs to
// this container, ...) report through a process-wide Handler. The default
// handler panics with a *Violation, making misuse loud and immediate. Test
// suites install a recording handler to make violations observable without
// unwinding the stack under test.
package invariant

import "fmt"

// Violation describes a failed precondition check.
type Violation struct {
	Op  string // operation that detected the violation, e.g. "vec.Get"
	Msg string // what was violated
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Op, v.Msg)
}

// Handler receives every failed check. A handler that returns normally
// resumes the caller, so non-panicking handlers must only be used by tests
// that stop exercising the container after the first violation.
type Handler func(*Violation)

func defaultHandler(v *Violation) {
	panic(v)
}

var handler Handler = defaultHandler

// SetHandler installs h as the process-wide violation handler and returns the
// previous one. Passing nil restores the default panicking handler.
func SetHandler(h Handler) Handler {
	prev := handler
	if h == nil {
		h = defaultHandler
	}
	handler = h
	return prev
}

// Assert reports a violation of op when cond is false.
func Assert(cond bool, op, msg string) {
	if !cond {
		handler(&Violation{Op: op, Msg: msg})
	}
}

// Fail reports an unconditional violation of op.
func Fail(op, msg string) {
	handler(&Violation{Op: op, Msg: msg})
}
