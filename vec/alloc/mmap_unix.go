//go:build unix

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap allocates page buffers from anonymous private mappings. Mapped memory
// is page-aligned and zero-filled by the kernel, and is never scanned by the
// Go garbage collector, so it must only hold pointer-free element types.
type Mmap struct {
	live   map[*byte][]byte // base pointer -> full mapping
	closed bool
}

// NewMmap returns an allocator backed by anonymous mappings.
func NewMmap() *Mmap {
	return &Mmap{live: make(map[*byte][]byte)}
}

// Alloc maps sizeBytes bytes of zeroed anonymous memory.
func (m *Mmap) Alloc(sizeBytes int) ([]byte, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if sizeBytes <= 0 {
		return nil, ErrBadSize
	}
	buf, err := unix.Mmap(-1, 0, sizeBytes,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("alloc: mmap %d bytes: %w", sizeBytes, err)
	}
	m.live[&buf[0]] = buf
	return buf, nil
}

// Free unmaps a buffer obtained from Alloc.
func (m *Mmap) Free(buf []byte) error {
	if m.closed {
		return ErrClosed
	}
	if len(buf) == 0 {
		return ErrForeignBuffer
	}
	key := &buf[0]
	full, ok := m.live[key]
	if !ok {
		return ErrForeignBuffer
	}
	delete(m.live, key)
	if err := unix.Munmap(full); err != nil {
		return fmt.Errorf("alloc: munmap: %w", err)
	}
	return nil
}

// Live reports the number of mappings currently outstanding.
func (m *Mmap) Live() int {
	return len(m.live)
}

// Close unmaps every outstanding buffer and marks the allocator closed.
// The first unmap error is returned; remaining buffers are still released.
func (m *Mmap) Close() error {
	var firstErr error
	for key, full := range m.live {
		if err := unix.Munmap(full); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("alloc: munmap: %w", err)
		}
		delete(m.live, key)
	}
	m.closed = true
	return firstErr
}

var _ Allocator = (*Mmap)(nil)
