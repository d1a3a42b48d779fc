// Package stack implements a LIFO adapter over a doubly-linked list.
// It adds no structural logic of its own: every operation forwards to
// the back of the underlying list.
package stack

import (
	"fmt"

	"github.com/alice39/own-stl/list"
)

// Stack is a last-in-first-out sequence holding exactly one list. The
// zero value is an empty stack ready to use. Not thread-safe.
type Stack[T comparable] struct {
	container list.List[T]
}

// New returns an empty stack.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Of returns a stack with vals pushed in order, so the last argument
// is on top.
func Of[T comparable](vals ...T) *Stack[T] {
	s := New[T]()
	for _, v := range vals {
		s.Push(v)
	}
	return s
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.container.Len()
}

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return s.container.Empty()
}

// Top returns the most recently pushed value. It panics when the stack
// is empty.
func (s *Stack[T]) Top() T {
	return s.container.Back()
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.container.PushBack(v)
}

// Pop removes and returns the top value. It panics when the stack is
// empty.
func (s *Stack[T]) Pop() T {
	return s.container.PopBack()
}

// Append moves every element of other onto s, reversing other first so
// that the splice keeps stack order rather than list order. other is
// left empty.
func (s *Stack[T]) Append(other *Stack[T]) {
	other.Reverse()
	s.container.Append(&other.container)
}

// Reverse flips the order of the stack in place.
func (s *Stack[T]) Reverse() {
	s.container.Reverse()
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	s.container.Clear()
}

// Swap exchanges the contents of two stacks in constant time.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.container.Swap(&other.container)
}

// Equal reports whether both stacks hold equal elements in the same
// order.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	return s.container.Equal(&other.container)
}

// Clone returns a deep copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	out := New[T]()
	out.container.Extend(&s.container)
	return out
}

// Concat returns a new stack holding s's elements with other's stacked
// on top. Neither operand is mutated.
func (s *Stack[T]) Concat(other *Stack[T]) *Stack[T] {
	out := s.Clone()
	out.Extend(other)
	return out
}

// Extend copies every value of other onto s, bottom of other first.
// other is not mutated.
func (s *Stack[T]) Extend(other *Stack[T]) {
	s.container.Extend(&other.container)
}

// IntoList returns a copy of the underlying list, bottom element
// first.
func (s *Stack[T]) IntoList() *list.List[T] {
	return s.container.Clone()
}

// String renders the stack bottom-to-top in the list's bracketed form.
func (s *Stack[T]) String() string {
	return s.container.String()
}

// Scan implements fmt.Scanner by reading a bracketed list literal onto
// the stack, bottom element first.
func (s *Stack[T]) Scan(state fmt.ScanState, verb rune) error {
	return s.container.Scan(state, verb)
}
