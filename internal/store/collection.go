package store

// Identifiable constrains collection members to entities with a
// backend-assigned id.
type Identifiable interface {
	EntityID() string
}

// Collection is an observable list of entities kept de-duplicated by
// id. Ordering is most-recent-first: Add prepends, Update replaces in
// place, Initialize preserves the order the backend returned.
type Collection[T Identifiable] struct {
	*Store[[]T]
}

// NewCollection builds an empty collection.
func NewCollection[T Identifiable]() *Collection[T] {
	return &Collection[T]{Store: New([]T(nil))}
}

// Initialize replaces the entire collection. Used once after a
// successful page-load fetch.
func (c *Collection[T]) Initialize(items []T) {
	copied := make([]T, len(items))
	copy(copied, items)
	c.Set(copied)
}

// Add prepends a new entity.
func (c *Collection[T]) Add(item T) {
	c.Update(func(items []T) []T {
		next := make([]T, 0, len(items)+1)
		next = append(next, item)
		return append(next, items...)
	})
}

// Replace swaps the member whose id matches item's id. No-op when the
// id is absent; applying the same replacement twice is equivalent to
// applying it once.
func (c *Collection[T]) Replace(item T) {
	c.Update(func(items []T) []T {
		next := make([]T, len(items))
		copy(next, items)
		for i, candidate := range next {
			if candidate.EntityID() == item.EntityID() {
				next[i] = item
			}
		}
		return next
	})
}

// Delete removes the member with the given id. No-op when absent.
func (c *Collection[T]) Delete(id string) {
	c.Update(func(items []T) []T {
		next := make([]T, 0, len(items))
		for _, candidate := range items {
			if candidate.EntityID() != id {
				next = append(next, candidate)
			}
		}
		return next
	})
}

// GetByID is a synchronous point lookup; ok is false when absent.
func (c *Collection[T]) GetByID(id string) (T, bool) {
	for _, candidate := range c.Get() {
		if candidate.EntityID() == id {
			return candidate, true
		}
	}
	var zero T
	return zero, false
}

// Items returns a copy of the current collection.
func (c *Collection[T]) Items() []T {
	items := c.Get()
	copied := make([]T, len(items))
	copy(copied, items)
	return copied
}

// Len reports the current member count.
func (c *Collection[T]) Len() int {
	return len(c.Get())
}

// Filtered derives a view holding only the members that pass keep. The
// view recomputes on every mutation of the base collection.
func (c *Collection[T]) Filtered(keep func(T) bool) *Store[[]T] {
	return Derived(c.Store, func(items []T) []T {
		kept := make([]T, 0, len(items))
		for _, candidate := range items {
			if keep(candidate) {
				kept = append(kept, candidate)
			}
		}
		return kept
	})
}
