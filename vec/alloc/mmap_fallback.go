//go:build !unix

package alloc

// Mmap is unavailable on this platform; Alloc always reports ErrUnsupported.
type Mmap struct{}

// NewMmap returns a stub allocator whose Alloc fails with ErrUnsupported.
func NewMmap() *Mmap {
	return &Mmap{}
}

func (m *Mmap) Alloc(sizeBytes int) ([]byte, error) {
	return nil, ErrUnsupported
}

func (m *Mmap) Free(buf []byte) error {
	return ErrForeignBuffer
}

// Live reports the number of mappings currently outstanding (always zero).
func (m *Mmap) Live() int {
	return 0
}

func (m *Mmap) Close() error {
	return nil
}

var _ Allocator = (*Mmap)(nil)
