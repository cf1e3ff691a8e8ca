// Package queue provides a stable ordered queue: items pop in ascending
// priority order, and items with equal priority pop in insertion order.
// The simulation relies on that FIFO tie-break twice — the global event
// queue (equal timestamps apply in schedule order) and the dispatcher's
// rider wait-list (equal request times match in arrival order).
package queue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by Pop and Peek on an empty queue. The
// engine checks emptiness before popping, so seeing this error means a
// caller bug.
var ErrEmptyQueue = errors.New("pop from empty queue")

type entry[T any] struct {
	value T
	key   int
	seq   uint64
}

type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) {
	*h = append(*h, x.(entry[T]))
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// OrderedQueue is a min-queue over a caller-supplied integer key.
// It is not safe for concurrent use; the simulation is single-threaded.
type OrderedQueue[T any] struct {
	entries  entryHeap[T]
	priority func(T) int
	seq      uint64
}

// New creates an OrderedQueue ordered by the given priority function.
func New[T any](priority func(T) int) *OrderedQueue[T] {
	return &OrderedQueue[T]{priority: priority}
}

// Push inserts an item. The sequence number assigned here is what keeps
// equal-priority pops in insertion order.
func (q *OrderedQueue[T]) Push(item T) {
	q.seq++
	heap.Push(&q.entries, entry[T]{value: item, key: q.priority(item), seq: q.seq})
}

// Pop removes and returns the item with the lowest key.
func (q *OrderedQueue[T]) Pop() (T, error) {
	if len(q.entries) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&q.entries).(entry[T])
	return e.value, nil
}

// Peek returns the item with the lowest key without removing it.
func (q *OrderedQueue[T]) Peek() (T, error) {
	if len(q.entries) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.entries[0].value, nil
}

// Remove deletes the first inserted item matching the predicate and
// reports whether one was found.
func (q *OrderedQueue[T]) Remove(match func(T) bool) bool {
	found := -1
	for i, e := range q.entries {
		if !match(e.value) {
			continue
		}
		if found == -1 || e.seq < q.entries[found].seq {
			found = i
		}
	}
	if found == -1 {
		return false
	}
	heap.Remove(&q.entries, found)
	return true
}

// Len returns the number of queued items.
func (q *OrderedQueue[T]) Len() int { return len(q.entries) }

// IsEmpty reports whether the queue has no items.
func (q *OrderedQueue[T]) IsEmpty() bool { return len(q.entries) == 0 }
