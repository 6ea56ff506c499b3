package swallow

// Pool is an unordered collection with O(1) removal. Removing an element
// moves the last one into its slot, so loops that remove while iterating
// must not advance past the removed index.
type Pool[T any] struct {
	items []*T
}

// Add appends v.
func (p *Pool[T]) Add(v *T) {
	p.items = append(p.items, v)
}

// Len returns the number of elements.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// At returns the element at index i.
func (p *Pool[T]) At(i int) *T {
	return p.items[i]
}

// Remove deletes the element at index i by swapping in the last element.
func (p *Pool[T]) Remove(i int) {
	last := len(p.items) - 1
	p.items[i] = p.items[last]
	p.items[last] = nil
	p.items = p.items[:last]
}

// Find returns the index of the first element matching fn, or -1.
func (p *Pool[T]) Find(fn func(*T) bool) int {
	for i, v := range p.items {
		if fn(v) {
			return i
		}
	}
	return -1
}

// Reset empties the pool.
func (p *Pool[T]) Reset() {
	clear(p.items)
	p.items = p.items[:0]
}
