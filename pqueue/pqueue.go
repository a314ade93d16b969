// Package pqueue is a min-priority queue over float64 priorities.
//
// Items with equal priority leave the queue in insertion order, so a search
// that pushes tied candidates explores them in the order it discovered them.
// There is no decrease-key: callers push a fresh entry when a priority improves
// and skip the stale one when it surfaces ("lazy decrease-key").
//
// Complexity:
//
//   - Insert:     O(log n)
//   - ExtractMin: O(log n)
//   - Peek, Len:  O(1)
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmpty is the panic value of ExtractMin on an empty queue.
var ErrEmpty = errors.New("pqueue: extract from empty queue")

// entry is one queued item. seq records insertion order for the tie-break.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entries implements heap.Interface ordered by (priority, seq).
type entries[T any] []entry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}

	return e[i].seq < e[j].seq
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x interface{}) { *e = append(*e, x.(entry[T])) }

func (e *entries[T]) Pop() interface{} {
	old := *e
	n := len(old)
	it := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the reference held by the backing array
	*e = old[:n-1]

	return it
}

// Queue is a binary min-heap. The zero value is ready to use.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	heap entries[T]
	next uint64
}

// New returns an empty queue with room for capacity items.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{heap: make(entries[T], 0, capacity)}
}

// Insert adds item with the given priority.
func (q *Queue[T]) Insert(item T, priority float64) {
	heap.Push(&q.heap, entry[T]{item: item, priority: priority, seq: q.next})
	q.next++
}

// ExtractMin removes and returns the item with the smallest priority, the
// earliest inserted one among ties. It panics with ErrEmpty if the queue is empty.
func (q *Queue[T]) ExtractMin() T {
	if len(q.heap) == 0 {
		panic(ErrEmpty)
	}

	return heap.Pop(&q.heap).(entry[T]).item
}

// Peek reports the item ExtractMin would return, without removing it.
func (q *Queue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.heap) == 0 {
		return item, 0, false
	}
	top := q.heap[0]

	return top.item, top.priority, true
}

// Len returns the number of queued items, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.heap) }

// Reset empties the queue and keeps its capacity.
func (q *Queue[T]) Reset() {
	var zero entry[T]
	for i := range q.heap {
		q.heap[i] = zero
	}
	q.heap = q.heap[:0]
	q.next = 0
}
