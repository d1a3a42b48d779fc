package list

// Node is a single cell of a doubly-linked chain: one value plus links
// to its two neighbors. A node with both links nil is a singleton. The
// link primitives below are the only code that mutates raw links; the
// List operations are written entirely in terms of them plus direct
// head/tail bookkeeping.
type Node[T comparable] struct {
	value      T
	back, next *Node[T]
}

// NewNode returns a detached node holding v.
func NewNode[T comparable](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the value stored at this node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the value stored at this node.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Back returns the previous node in the chain, or nil at the front.
func (n *Node[T]) Back() *Node[T] {
	return n.back
}

// Next returns the next node in the chain, or nil at the end.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// LinkNext inserts other immediately after n. other is unlinked from
// whatever chain it currently sits in first, so the severed ends of
// that chain stay consistent. Linking nil or n itself is a no-op.
//
// After the call n.next == other, other.back == n, and the node that
// was previously n.next (if any) follows other.
func (n *Node[T]) LinkNext(other *Node[T]) {
	if other == nil || other == n {
		return
	}

	other.Unlink()

	if n.next != nil {
		other.next = n.next
		n.next.back = other
	}

	other.back = n
	n.next = other
}

// LinkBack inserts other immediately before n. It is the mirror image
// of LinkNext.
func (n *Node[T]) LinkBack(other *Node[T]) {
	if other == nil || other == n {
		return
	}

	other.Unlink()

	if n.back != nil {
		other.back = n.back
		n.back.next = other
	}

	other.next = n
	n.back = other
}

// Unlink detaches n from its neighbors, patching them to point at each
// other, then clears n's own links. Unlinking an already-detached node
// is a no-op.
func (n *Node[T]) Unlink() {
	if n.back != nil {
		n.back.next = n.next
	}
	if n.next != nil {
		n.next.back = n.back
	}

	n.back = nil
	n.next = nil
}

// Reverse swaps the roles of the two links on this node only. The
// neighbors are untouched; a whole-chain reversal applies this to
// every node and then swaps its notion of head and tail.
func (n *Node[T]) Reverse() {
	n.back, n.next = n.next, n.back
}

// Advance walks k links from n, forward for positive k and backward
// for negative k, and returns the node it lands on. Walking past
// either end of the chain dereferences a nil node and panics; callers
// must keep k within the remaining chain.
func (n *Node[T]) Advance(k int) *Node[T] {
	it := n
	for ; k > 0; k-- {
		it = it.next
	}
	for ; k < 0; k++ {
		it = it.back
	}
	return it
}
