package memory

import "errors"

// ErrDuplicateID is returned when creating a record whose ID is already stored
var ErrDuplicateID = errors.New("duplicate id")

// orderedStore keeps records by ID while remembering insertion (display) order
type orderedStore[T any] struct {
	order []string
	items map[string]T
}

func newOrderedStore[T any]() orderedStore[T] {
	return orderedStore[T]{items: make(map[string]T)}
}

func (s *orderedStore[T]) get(id string) (T, bool) {
	item, ok := s.items[id]
	return item, ok
}

func (s *orderedStore[T]) add(id string, item T) error {
	if _, exists := s.items[id]; exists {
		return ErrDuplicateID
	}
	s.items[id] = item
	s.order = append(s.order, id)
	return nil
}

// values returns records in insertion order, up to limit when limit is positive
func (s *orderedStore[T]) values(limit int) []T {
	n := len(s.order)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, 0, n)
	for _, id := range s.order[:n] {
		out = append(out, s.items[id])
	}
	return out
}
