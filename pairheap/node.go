package pairheap

// Node is the linked structural unit of the heap and doubles as the opaque
// handle returned by Add. A node belongs to exactly one heap for its whole
// linked lifetime; callers hold the same reference purely as an observer,
// valid for Delete and DecreaseKey until the node is removed.
//
// Linkage is a multiway tree in left-child/right-sibling form. The classic
// pairing-heap trick of overloading one back-pointer as
// "previous-sibling-or-parent" is split here into two explicit fields so
// that no use site has to probe link identity to tell the roles apart:
// for any linked non-root node, exactly one of parent and prev is non-nil.
type Node[T any] struct {
	item   T
	child  *Node[T] // first child, or nil
	next   *Node[T] // next sibling, or nil for the last sibling
	prev   *Node[T] // previous sibling; nil while this node is a first child or a root
	parent *Node[T] // set only while this node is its parent's first child
	live   bool     // true while the node is linked into a heap
}

// Item returns the payload currently stored in the node.
func (n *Node[T]) Item() T { return n.item }

// SetItem overwrites the node's payload in place. Lowering the item's rank
// this way and then calling Heap.DecreaseKey is the decrease-key protocol;
// any other in-place mutation that changes the item's rank violates the
// heap-order invariant.
func (n *Node[T]) SetItem(v T) { n.item = v }

// clear detaches the node from everything and zeroes its payload, returning
// it to the state of a never-inserted node.
func (n *Node[T]) clear() {
	var zero T
	n.item = zero
	n.child = nil
	n.next = nil
	n.prev = nil
	n.parent = nil
	n.live = false
}

// meld combines two independent trees into one and returns the root of the
// result. O(1). Either argument may be nil, and both may be the same
// reference, in which case that reference is returned unchanged — the
// guard against accidentally melding a tree with itself.
//
// Tie-break rule: the first argument stays the parent unless the second
// compares strictly less.
func (h *Heap[T]) meld(a, b *Node[T]) *Node[T] {
	if a == b {
		return a
	}
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.less(b.item, a.item) {
		a, b = b, a
	}
	// a wins: b becomes a's new first child, a's former first child slides
	// to second position and stops being "the" first child.
	if a.child != nil {
		a.child.parent = nil
		a.child.prev = b
	}
	b.next = a.child
	b.prev = nil
	b.parent = a
	a.child = b
	// a is now a detached root.
	a.next = nil
	a.prev = nil
	a.parent = nil

	return a
}

// collapse reduces a sibling list (reached via next from head) to a single
// tree using the standard two-pass pairing strategy, implemented
// iteratively: the sibling list grows with heap operation count, so the
// textbook recursive formulation would risk unbounded call depth.
//
// Pass 1 walks left-to-right, melding adjacent pairs immediately and
// threading each result onto a temporary list through the prev field
// (free scratch space here — every prev is about to be rewritten anyway);
// an odd trailing node joins the temporary list unmerged. Pass 2 walks the
// temporary list from its last-pushed end back to the first, folding it
// into a single accumulator with repeated melds.
//
// Returns nil for a nil head. The returned root is fully detached: its
// next, prev, and parent links are all nil.
func (h *Heap[T]) collapse(head *Node[T]) *Node[T] {
	if head == nil {
		return nil
	}

	// Pass 1: pair up and push results onto the scratch list. tail is the
	// most recently pushed result; each result's prev points at the one
	// pushed before it.
	var tail *Node[T]
	cur := head
	for cur != nil {
		a := cur
		b := a.next
		if b == nil {
			// Odd trailing node: push it unmerged.
			cur = nil
			a.next = nil
			a.parent = nil
		} else {
			cur = b.next
			a.next = nil
			b.next = nil
			a = h.meld(a, b)
		}
		a.prev = tail
		tail = a
	}

	// Pass 2: right-to-left reduction over the scratch list.
	acc := tail
	rest := acc.prev
	acc.prev = nil
	for rest != nil {
		next := rest.prev
		rest.prev = nil
		acc = h.meld(acc, rest)
		rest = next
	}

	return acc
}
