package container

// DynamicList holds caller-owned values in reverse insertion order: Append
// places the newest value at position zero. The list allocates its own
// nodes and never inspects or releases the values themselves.
type DynamicList[T any] struct {
	head *node[T]
}

type node[T any] struct {
	value T
	next  *node[T]
}

func NewDynamicList[T any]() *DynamicList[T] {
	l := &DynamicList[T]{}
	l.Init()
	return l
}

// Init resets the list to empty. Unlinked nodes are left to the garbage
// collector.
func (l *DynamicList[T]) Init() {
	l.head = nil
}

// Append inserts v at position zero in O(1). v may be the zero value.
func (l *DynamicList[T]) Append(v T) {
	l.head = &node[T]{value: v, next: l.head}
}

// Get walks i links from the head. A negative index, or one past the last
// node, yields the zero value and false.
func (l *DynamicList[T]) Get(i int) (v T, ok bool) {
	if i < 0 {
		return
	}
	n := l.head
	for ; i > 0 && n != nil; i-- {
		n = n.next
	}
	if n == nil {
		return
	}
	return n.value, true
}
