package vec

import "errors"

// ErrOutOfRange is returned by At for positions outside [0, Len()).
var ErrOutOfRange = errors.New("vec: index out of range")
