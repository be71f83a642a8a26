package ecs

// Handle identifies an object stored in a Pool.
// Index selects the slot, Gen must match the slot's generation.
// The zero Handle is "nil" (generation 0 is never issued).
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsNil reports whether h is the zero handle
func (h Handle) IsNil() bool { return h.Gen == 0 }

type slot[T any] struct {
	value T
	gen   uint32
	alive bool
}

// Pool is a typed arena keyed by generational handles.
// Iteration follows creation order so scans are deterministic.
type Pool[T any] struct {
	slots []slot[T]
	free  []uint32
	order []Handle // live handles in creation order
}

// NewPool creates an empty pool with room for capacity objects
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		slots: make([]slot[T], 0, capacity),
		order: make([]Handle, 0, capacity),
	}
}

// Insert stores v and returns its handle
func (p *Pool[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, slot[T]{})
	}

	s := &p.slots[idx]
	s.gen++
	if s.gen == 0 { // wrapped; skip the nil generation
		s.gen = 1
	}
	s.value = v
	s.alive = true

	h := Handle{Index: idx, Gen: s.gen}
	p.order = append(p.order, h)
	return h
}

// Get returns a pointer to the stored value.
// The pointer is valid until the next Insert or Remove.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	if !p.Contains(h) {
		return nil, false
	}
	return &p.slots[h.Index].value, true
}

// Contains reports whether h refers to a live object
func (p *Pool[T]) Contains(h Handle) bool {
	if h.IsNil() || int(h.Index) >= len(p.slots) {
		return false
	}
	s := &p.slots[h.Index]
	return s.alive && s.gen == h.Gen
}

// Remove deletes the object behind h.
// Removing a stale or already-removed handle is a no-op and returns false.
func (p *Pool[T]) Remove(h Handle) bool {
	if !p.Contains(h) {
		return false
	}
	s := &p.slots[h.Index]
	var zero T
	s.value = zero
	s.alive = false
	p.free = append(p.free, h.Index)

	for i, oh := range p.order {
		if oh == h {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of live objects
func (p *Pool[T]) Len() int { return len(p.order) }

// Each calls fn for every live object in creation order until fn returns false.
// fn must not insert or remove; collect handles and mutate afterwards.
func (p *Pool[T]) Each(fn func(Handle, *T) bool) {
	for _, h := range p.order {
		if !fn(h, &p.slots[h.Index].value) {
			return
		}
	}
}

// Handles returns a snapshot of live handles in creation order
func (p *Pool[T]) Handles() []Handle {
	out := make([]Handle, len(p.order))
	copy(out, p.order)
	return out
}

// Clear removes every object. Outstanding handles become stale.
func (p *Pool[T]) Clear() {
	for _, h := range p.order {
		s := &p.slots[h.Index]
		var zero T
		s.value = zero
		s.alive = false
		p.free = append(p.free, h.Index)
	}
	p.order = p.order[:0]
}
