package vec

import "github.com/joshuapare/pagevec/vec/alloc"

type config struct {
	pageSize int
	capacity int
	alloc    alloc.Allocator
}

// Option configures a vector at construction time.
type Option func(*config)

// WithPageSize sets the number of element slots per page. Power-of-two sizes
// take the shift/mask index translation; any size greater than zero is valid.
func WithPageSize(n int) Option {
	return func(c *config) { c.pageSize = n }
}

// WithCapacity pre-reserves room for n elements, allocating pages eagerly.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithAllocator places pages in buffers obtained from a. Allocator-backed
// pages live outside the garbage collector's view, so the element type must
// be pointer-free; construction asserts this.
func WithAllocator(a alloc.Allocator) Option {
	return func(c *config) { c.alloc = a }
}
