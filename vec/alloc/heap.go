package alloc

// Heap is a make-backed Allocator with live-buffer tracking. Free rejects
// buffers it never handed out, which makes it useful for exercising the
// allocator seam in tests without leaving the Go heap.
type Heap struct {
	live   map[*byte][]byte
	closed bool
}

// NewHeap returns an empty heap allocator.
func NewHeap() *Heap {
	return &Heap{live: make(map[*byte][]byte)}
}

// Alloc returns a zeroed heap buffer of sizeBytes bytes.
func (h *Heap) Alloc(sizeBytes int) ([]byte, error) {
	if h.closed {
		return nil, ErrClosed
	}
	if sizeBytes <= 0 {
		return nil, ErrBadSize
	}
	buf := make([]byte, sizeBytes)
	h.live[&buf[0]] = buf
	return buf, nil
}

// Free releases a buffer obtained from Alloc.
func (h *Heap) Free(buf []byte) error {
	if h.closed {
		return ErrClosed
	}
	if len(buf) == 0 {
		return ErrForeignBuffer
	}
	key := &buf[0]
	if _, ok := h.live[key]; !ok {
		return ErrForeignBuffer
	}
	delete(h.live, key)
	return nil
}

// Live reports the number of buffers currently outstanding.
func (h *Heap) Live() int {
	return len(h.live)
}

// Close drops all outstanding buffers and marks the allocator closed.
func (h *Heap) Close() error {
	h.live = nil
	h.closed = true
	return nil
}

var _ Allocator = (*Heap)(nil)
