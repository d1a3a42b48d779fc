// Package queue implements a FIFO adapter over a doubly-linked list.
// It adds no structural logic of its own: pushes forward to the back
// of the underlying list and pops to the front.
package queue

import (
	"fmt"

	"github.com/alice39/own-stl/list"
)

// Queue is a first-in-first-out sequence holding exactly one list. The
// zero value is an empty queue ready to use. Not thread-safe.
type Queue[T comparable] struct {
	container list.List[T]
}

// New returns an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Of returns a queue with vals pushed in order, so the first argument
// is at the front.
func Of[T comparable](vals ...T) *Queue[T] {
	q := New[T]()
	for _, v := range vals {
		q.Push(v)
	}
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.container.Len()
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.container.Empty()
}

// Front returns the value that has waited longest. It panics when the
// queue is empty.
func (q *Queue[T]) Front() T {
	return q.container.Front()
}

// Back returns the most recently pushed value. It panics when the
// queue is empty.
func (q *Queue[T]) Back() T {
	return q.container.Back()
}

// Push places v at the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.container.PushBack(v)
}

// Pop removes and returns the front value. It panics when the queue is
// empty.
func (q *Queue[T]) Pop() T {
	return q.container.PopFront()
}

// Append splices every element of other onto the back of q in constant
// time. other is left empty.
func (q *Queue[T]) Append(other *Queue[T]) {
	q.container.Append(&other.container)
}

// Reverse flips the order of the queue in place.
func (q *Queue[T]) Reverse() {
	q.container.Reverse()
}

// Clear removes every element.
func (q *Queue[T]) Clear() {
	q.container.Clear()
}

// Swap exchanges the contents of two queues in constant time.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.container.Swap(&other.container)
}

// Equal reports whether both queues hold equal elements in the same
// order.
func (q *Queue[T]) Equal(other *Queue[T]) bool {
	return q.container.Equal(&other.container)
}

// Clone returns a deep copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	out := New[T]()
	out.container.Extend(&q.container)
	return out
}

// Concat returns a new queue holding q's elements followed by other's.
// Neither operand is mutated.
func (q *Queue[T]) Concat(other *Queue[T]) *Queue[T] {
	out := q.Clone()
	out.Extend(other)
	return out
}

// Extend copies every value of other onto the back of q. other is not
// mutated.
func (q *Queue[T]) Extend(other *Queue[T]) {
	q.container.Extend(&other.container)
}

// IntoList returns a copy of the underlying list, front element first.
func (q *Queue[T]) IntoList() *list.List[T] {
	return q.container.Clone()
}

// String renders the queue front-to-back in the list's bracketed form.
func (q *Queue[T]) String() string {
	return q.container.String()
}

// Scan implements fmt.Scanner by reading a bracketed list literal into
// the queue, front element first.
func (q *Queue[T]) Scan(state fmt.ScanState, verb rune) error {
	return q.container.Scan(state, verb)
}
