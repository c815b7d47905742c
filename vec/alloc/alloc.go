package alloc

import "errors"

var (
	// ErrBadSize is returned when a requested allocation size is not positive.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrForeignBuffer is returned when Free receives a buffer this allocator
	// did not hand out, or one that was already freed.
	ErrForeignBuffer = errors.New("alloc: buffer was not allocated here")

	// ErrClosed is returned for operations on a closed allocator.
	ErrClosed = errors.New("alloc: allocator is closed")

	// ErrUnsupported is returned by Mmap on platforms without mmap support.
	ErrUnsupported = errors.New("alloc: anonymous mappings are not supported on this platform")
)

// Allocator hands out raw page buffers for a paged container.
type Allocator interface {
	// Alloc returns a zeroed buffer of exactly sizeBytes bytes.
	Alloc(sizeBytes int) ([]byte, error)

	// Free returns a buffer previously obtained from Alloc. The buffer must
	// be passed back with its original base pointer.
	Free(buf []byte) error

	// Close releases all buffers still owned by the allocator.
	Close() error
}
