package container

// BoundedStack is a fixed-capacity LIFO over caller-owned values. A push
// against a full stack is silently dropped; a pop from an empty stack
// reports absence. Capacity is set once at construction and never changes.
type BoundedStack[T any] struct {
	slots []T
	top   int
}

func NewBoundedStack[T any](capacity int) *BoundedStack[T] {
	s := &BoundedStack[T]{}
	s.Init(capacity)
	return s
}

// Init allocates exactly capacity slots and sets the stack to empty. The
// capacity value is taken as-is, no validation.
func (s *BoundedStack[T]) Init(capacity int) {
	s.slots = make([]T, capacity)
	s.top = -1
}

// Push stores v above the current top. When the stack is full the value is
// discarded without any signal.
func (s *BoundedStack[T]) Push(v T) {
	if s.top >= len(s.slots)-1 {
		return
	}
	s.top++
	s.slots[s.top] = v
}

// Pop returns the most recently pushed resident value, or the zero value
// and false when the stack is empty. The vacated slot is not cleared.
func (s *BoundedStack[T]) Pop() (v T, ok bool) {
	if s.top < 0 {
		return
	}
	v = s.slots[s.top]
	s.top--
	return v, true
}

func (s *BoundedStack[T]) Len() int {
	return s.top + 1
}

func (s *BoundedStack[T]) Cap() int {
	return len(s.slots)
}
