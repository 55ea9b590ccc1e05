package native

import "sync"

// Handle identifies a Go value handed to the library as opaque userdata.
// Zero is never a valid handle, so a NULL userdata never resolves.
type Handle uint32

// Handles is a table of Go values addressed by small integer handles.
// Freed slots are reused.
type Handles struct {
	entries  []handleEntry
	freeList []Handle
	mu       sync.RWMutex
}

type handleEntry struct {
	value any
	valid bool
}

// NewHandles creates an empty table.
func NewHandles() *Handles {
	return &Handles{
		entries:  make([]handleEntry, 0, 8),
		freeList: make([]Handle, 0, 4),
	}
}

// Create stores a value and returns its handle.
func (h *Handles) Create(value any) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := handleEntry{value: value, valid: true}

	if len(h.freeList) > 0 {
		handle := h.freeList[len(h.freeList)-1]
		h.freeList = h.freeList[:len(h.freeList)-1]
		h.entries[handle-1] = e
		return handle
	}

	h.entries = append(h.entries, e)
	return Handle(len(h.entries))
}

// Get retrieves a value by handle.
func (h *Handles) Get(handle Handle) (any, bool) {
	if handle == 0 {
		return nil, false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(h.entries) {
		return nil, false
	}

	e := h.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.value, true
}

// Drop frees a handle. It reports whether the handle was live.
func (h *Handles) Drop(handle Handle) bool {
	if handle == 0 {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	idx := handle - 1
	if int(idx) >= len(h.entries) {
		return false
	}

	e := &h.entries[idx]
	if !e.valid {
		return false
	}

	e.valid = false
	e.value = nil
	h.freeList = append(h.freeList, handle)
	return true
}

// Len returns the number of live handles.
func (h *Handles) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, e := range h.entries {
		if e.valid {
			count++
		}
	}
	return count
}
