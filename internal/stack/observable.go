// Package stack provides a LIFO container that reports its mutations to
// registered listeners.
package stack

// Listener receives notifications from an Observable. Any callback may be nil.
// Operation-specific callbacks fire before OnChange, both after the mutation
// is visible to readers.
type Listener[T any] struct {
	OnPush   func(item T)
	OnPop    func(item T)
	OnClear  func()
	OnChange func()
}

// Observable is a last-in-first-out stack with synchronous change notifications.
// It is not safe for concurrent use.
type Observable[T any] struct {
	items     []T
	listeners map[int]Listener[T]
	order     []int // subscription order, so delivery is deterministic
	nextID    int
}

// New creates an empty stack.
func New[T any]() *Observable[T] {
	return &Observable[T]{
		listeners: make(map[int]Listener[T]),
	}
}

// Subscribe registers l and returns a function that removes it again.
func (s *Observable[T]) Subscribe(l Listener[T]) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	return func() {
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Push places item on top of the stack.
func (s *Observable[T]) Push(item T) {
	s.items = append(s.items, item)
	s.notify(func(l Listener[T]) {
		if l.OnPush != nil {
			l.OnPush(item)
		}
	})
}

// Pop removes and returns the top item. On an empty stack it returns the
// zero value and false, and no listener is notified.
func (s *Observable[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero // drop the reference
	s.items = s.items[:last]

	s.notify(func(l Listener[T]) {
		if l.OnPop != nil {
			l.OnPop(item)
		}
	})
	return item, true
}

// Peek returns the top item without removing it.
func (s *Observable[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Clear removes every item. Listeners are notified even if the stack was empty.
func (s *Observable[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
	s.notify(func(l Listener[T]) {
		if l.OnClear != nil {
			l.OnClear()
		}
	})
}

// Len returns the number of items on the stack.
func (s *Observable[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the stack contents, bottom first.
func (s *Observable[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// notify calls specific for every listener, then every OnChange.
func (s *Observable[T]) notify(specific func(Listener[T])) {
	// Copy so listeners may unsubscribe while being notified.
	ids := make([]int, len(s.order))
	copy(ids, s.order)

	for _, id := range ids {
		if l, ok := s.listeners[id]; ok {
			specific(l)
		}
	}
	for _, id := range ids {
		if l, ok := s.listeners[id]; ok && l.OnChange != nil {
			l.OnChange()
		}
	}
}
