package container

import "sync"

// SyncStack guards a BoundedStack with a mutex so pipeline goroutines can
// share it. The raw containers stay lock-free for single-owner use.
type SyncStack[T any] struct {
	mux sync.Mutex
	s   BoundedStack[T]
}

func NewSyncStack[T any](capacity int) *SyncStack[T] {
	w := &SyncStack[T]{}
	w.s.Init(capacity)
	return w
}

func (w *SyncStack[T]) Push(v T) {
	w.mux.Lock()
	defer w.mux.Unlock()
	w.s.Push(v)
}

func (w *SyncStack[T]) Pop() (T, bool) {
	w.mux.Lock()
	defer w.mux.Unlock()
	return w.s.Pop()
}

func (w *SyncStack[T]) Len() int {
	w.mux.Lock()
	defer w.mux.Unlock()
	return w.s.Len()
}

func (w *SyncStack[T]) Cap() int {
	w.mux.Lock()
	defer w.mux.Unlock()
	return w.s.Cap()
}

// SyncList is the mutex-guarded counterpart for DynamicList.
type SyncList[T any] struct {
	mux sync.Mutex
	l   DynamicList[T]
}

func NewSyncList[T any]() *SyncList[T] {
	return &SyncList[T]{}
}

func (w *SyncList[T]) Init() {
	w.mux.Lock()
	defer w.mux.Unlock()
	w.l.Init()
}

func (w *SyncList[T]) Append(v T) {
	w.mux.Lock()
	defer w.mux.Unlock()
	w.l.Append(v)
}

func (w *SyncList[T]) Get(i int) (T, bool) {
	w.mux.Lock()
	defer w.mux.Unlock()
	return w.l.Get(i)
}
