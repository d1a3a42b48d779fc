// Package list implements a generic doubly-linked list, plus the node
// type and relinking primitives it is built from. Head, tail, and size
// are tracked internally, so operations at either end are constant
// time; indexed operations resolve through whichever end is closer.
// Splices (Append, SliceOff) transfer whole sub-chains in constant
// time without copying values. The list is not thread-safe.
package list

import (
	"github.com/pkg/errors"
)

// NotFound is the position returned by Find and RFind when no element
// matches. It is distinct from every valid index.
const NotFound = -1

// ErrOutOfRange is returned by At when the index is past either end of
// the list.
var ErrOutOfRange = errors.New("list: index out of range")

// List is a sequence backed by a chain of doubly-linked nodes. The
// zero value is an empty list ready to use. Every node reachable from
// the head belongs to exactly one list; Append and SliceOff move nodes
// between lists, while Clone, Concat, and Extend copy values into
// fresh nodes.
type List[T comparable] struct {
	head, tail *Node[T]
	size       int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Of returns a list containing vals in order.
func Of[T comparable](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

// FromSlice returns a list containing the elements of vals in order.
func FromSlice[T comparable](vals []T) *List[T] {
	return Of(vals...)
}

// Len returns the number of elements in the list. Constant time.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first value. It panics when the list is empty.
func (l *List[T]) Front() T {
	return l.head.value
}

// Back returns the last value. It panics when the list is empty.
func (l *List[T]) Back() T {
	return l.tail.value
}

// FrontNode returns the first node for manual iteration, or nil when
// the list is empty.
func (l *List[T]) FrontNode() *Node[T] {
	return l.head
}

// BackNode returns the last node for manual iteration, or nil when the
// list is empty.
func (l *List[T]) BackNode() *Node[T] {
	return l.tail
}

// Values copies the elements into a new slice, front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for it := l.head; it != nil; it = it.next {
		out = append(out, it.value)
	}
	return out
}

// At returns the value at position i, or ErrOutOfRange (annotated with
// the attempted index) when i is not a valid position. Constant time
// at the ends, linear in the worst case.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "at %d with length %d", i, l.size)
	}
	return l.nodeAt(i).value, nil
}

// Get returns the value at position i without bounds checking. It
// panics when i is out of range; callers must guarantee the index is
// valid. Resolution walks from whichever end is closer.
func (l *List[T]) Get(i int) T {
	return l.nodeAt(i).value
}

// PushFront inserts v at the front of the list. Constant time.
func (l *List[T]) PushFront(v T) {
	node := &Node[T]{value: v, next: l.head}

	if l.head != nil {
		l.head.back = node
	} else {
		l.tail = node
	}

	l.head = node
	l.size++
}

// PushBack appends v at the back of the list. Constant time.
func (l *List[T]) PushBack(v T) {
	node := &Node[T]{value: v, back: l.tail}

	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}

	l.tail = node
	l.size++
}

// PopFront removes and returns the first value. It panics when the
// list is empty. Constant time.
func (l *List[T]) PopFront() T {
	node := l.head
	v := node.value

	l.size--
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	}

	node.Unlink()
	return v
}

// PopBack removes and returns the last value. It panics when the list
// is empty. Constant time.
func (l *List[T]) PopBack() T {
	node := l.tail
	v := node.value

	l.size--
	l.tail = node.back
	if l.tail == nil {
		l.head = nil
	}

	node.Unlink()
	return v
}

// InsertForward inserts v after the node currently at position at. An
// at past the end degenerates to PushBack.
func (l *List[T]) InsertForward(v T, at int) {
	l.insert(v, at, false)
}

// InsertBackward inserts v before the node currently at position at.
// An at of zero degenerates to PushFront, an at past the end to
// PushBack.
func (l *List[T]) InsertBackward(v T, at int) {
	l.insert(v, at, true)
}

func (l *List[T]) insert(v T, at int, backward bool) {
	if at == 0 && backward {
		l.PushFront(v)
		return
	}
	if at >= l.size {
		l.PushBack(v)
		return
	}
	if at == l.size-1 && !backward {
		l.PushBack(v)
		return
	}

	// Interior insert: the node at this position is neither head nor
	// tail, so no end bookkeeping is needed.
	node := l.nodeAt(at)
	if backward {
		node.LinkBack(NewNode(v))
	} else {
		node.LinkNext(NewNode(v))
	}
	l.size++
}

// Remove removes and returns the value at position at. Positions at or
// past the last element remove the last element. It panics when the
// list is empty.
func (l *List[T]) Remove(at int) T {
	if at <= 0 {
		return l.PopFront()
	}
	if at >= l.size-1 {
		return l.PopBack()
	}

	node := l.nodeAt(at)
	l.size--
	node.Unlink()
	return node.value
}

// Find returns the position of the first element equal to v, ignoring
// the first skip elements, or NotFound. Linear time.
func (l *List[T]) Find(v T, skip int) int {
	if skip < 0 {
		skip = 0
	}
	if skip >= l.size {
		return NotFound
	}

	at := skip
	for it := l.head.Advance(skip); it != nil; it = it.next {
		if it.value == v {
			return at
		}
		at++
	}
	return NotFound
}

// RFind returns the position of the last element equal to v, ignoring
// the last skip elements, or NotFound. Linear time.
func (l *List[T]) RFind(v T, skip int) int {
	if skip < 0 {
		skip = 0
	}
	if skip >= l.size {
		return NotFound
	}

	at := l.size - skip - 1
	for it := l.tail.Advance(-skip); it != nil; it = it.back {
		if it.value == v {
			return at
		}
		at--
	}
	return NotFound
}

// FindAll returns the position of every element equal to v, front to
// back.
func (l *List[T]) FindAll(v T) *List[int] {
	indices := New[int]()

	at := 0
	for it := l.head; it != nil; it = it.next {
		if it.value == v {
			indices.PushBack(at)
		}
		at++
	}
	return indices
}

// Contains reports whether v occurs in the list.
func (l *List[T]) Contains(v T) bool {
	return l.Find(v, 0) != NotFound
}

// ContainsAll reports whether every value in other occurs in l. An
// empty other is trivially contained. O(n*m).
func (l *List[T]) ContainsAll(other *List[T]) bool {
	for it := other.head; it != nil; it = it.next {
		if !l.Contains(it.value) {
			return false
		}
	}
	return true
}

// RetainIf keeps the elements for which keep returns true and removes
// the rest in a single pass, returning the number removed.
func (l *List[T]) RetainIf(keep func(T) bool) int {
	old := l.size

	it := l.head
	for it != nil {
		next := it.next
		if !keep(it.value) {
			l.size--
			if it == l.head {
				l.head = next
			}
			if it == l.tail {
				l.tail = it.back
			}
			it.Unlink()
		}
		it = next
	}

	return old - l.size
}

// RemoveIf removes the elements for which drop returns true, returning
// the number removed. It is the complement of RetainIf.
func (l *List[T]) RemoveIf(drop func(T) bool) int {
	return l.RetainIf(func(v T) bool { return !drop(v) })
}

// Append splices other's entire chain onto the back of l in constant
// time. other is left empty; the nodes now belong to l. Appending an
// empty list is a no-op, and appending onto an empty list is a full
// swap.
func (l *List[T]) Append(other *List[T]) {
	if other == nil || other.Empty() {
		return
	}
	if l.size == 0 {
		l.Swap(other)
		return
	}

	l.size += other.size

	l.tail.next = other.head
	other.head.back = l.tail
	l.tail = other.tail

	other.size = 0
	other.head = nil
	other.tail = nil
}

// SliceOff extracts the half-open range [start, end) as a new,
// independently owned list by relinking the boundary nodes; no values
// are copied. Bounds past the end clamp to the length, and
// start >= end yields an empty list. The extracted nodes no longer
// belong to l.
func (l *List[T]) SliceOff(start, end int) *List[T] {
	if start > l.size {
		start = l.size
	}
	if end > l.size {
		end = l.size
	}

	out := New[T]()
	if start < 0 || start >= end {
		return out
	}

	first := l.nodeAt(start)
	last := l.nodeAt(end - 1)

	backNode := first.back
	nextNode := last.next

	if backNode != nil {
		backNode.next = nextNode
	} else {
		l.head = nextNode
	}
	if nextNode != nil {
		nextNode.back = backNode
	} else {
		l.tail = backNode
	}

	first.back = nil
	last.next = nil

	out.head = first
	out.tail = last
	out.size = end - start
	l.size -= out.size

	return out
}

// Reverse reverses the list in place in one pass.
func (l *List[T]) Reverse() {
	if l.Empty() {
		return
	}

	// once a node is reversed, back acts as next
	for it := l.head; it != nil; it = it.back {
		it.Reverse()
	}

	l.head, l.tail = l.tail, l.head
}

// Clear removes every element, severing each node's links so the chain
// holds nothing alive, and resets the list to empty.
func (l *List[T]) Clear() {
	it := l.head
	for it != nil {
		next := it.next
		it.back = nil
		it.next = nil
		it = next
	}

	l.size = 0
	l.head = nil
	l.tail = nil
}

// Swap exchanges the contents of two lists in constant time.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}

	l.size, other.size = other.size, l.size
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
}

// ForEach calls fn on every element, front to back.
func (l *List[T]) ForEach(fn func(T)) {
	for it := l.head; it != nil; it = it.next {
		fn(it.value)
	}
}

// Transform replaces every element with fn applied to it, front to
// back.
func (l *List[T]) Transform(fn func(T) T) {
	for it := l.head; it != nil; it = it.next {
		it.value = fn(it.value)
	}
}

// Equal reports whether both lists hold equal elements in the same
// order. It short-circuits on a length mismatch.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == other {
		return true
	}
	if l.size != other.size {
		return false
	}

	otherIt := other.head
	for it := l.head; it != nil; it = it.next {
		if it.value != otherIt.value {
			return false
		}
		otherIt = otherIt.next
	}
	return true
}

// Clone returns a deep copy: every value is duplicated into a fresh
// node, sharing nothing with l.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	out.Extend(l)
	return out
}

// Concat returns a new list holding l's elements followed by other's.
// Neither operand is mutated.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	out := l.Clone()
	out.Extend(other)
	return out
}

// Extend appends a copy of every value in other onto l. other keeps
// its nodes; extending a list with itself doubles it.
func (l *List[T]) Extend(other *List[T]) {
	it := other.head
	for n := other.size; n > 0; n-- {
		l.PushBack(it.value)
		it = it.next
	}
}

// Fold accumulates every element of l left to right, starting from
// init. It lives outside the List method set because the accumulator
// has its own type parameter.
func Fold[T comparable, B any](l *List[T], init B, fn func(B, T) B) B {
	acc := init
	for it := l.head; it != nil; it = it.next {
		acc = fn(acc, it.value)
	}
	return acc
}

// Window slides a buffer of the last n values across l, calling fn
// once per full window and collecting the results in order, so a list
// of length m produces m-n+1 results (none when m < n or n <= 0). The
// buffer is reused between calls; fn must not retain it.
func Window[T, R comparable](l *List[T], n int, fn func([]T) R) *List[R] {
	out := New[R]()
	if n <= 0 || l.size < n {
		return out
	}

	buf := make([]T, n)
	i := 0
	for it := l.head; it != nil; it = it.next {
		if n > 1 {
			copy(buf, buf[1:])
		}
		buf[n-1] = it.value

		if i+1 >= n {
			out.PushBack(fn(buf))
		}
		i++
	}
	return out
}

// nodeAt resolves position at through whichever end is closer. The
// index must be valid; there is no bounds check.
func (l *List[T]) nodeAt(at int) *Node[T] {
	if at == 0 {
		return l.head
	}
	if at == l.size-1 {
		return l.tail
	}

	// choose the shortest walk
	if at <= l.size/2 {
		return l.head.Advance(at)
	}
	return l.tail.Advance(-(l.size - at - 1))
}
