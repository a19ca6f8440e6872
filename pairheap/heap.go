package pairheap

import "cmp"

// Heap is a pairing heap over items of type T, ordered by a strict
// less-than comparator supplied at construction. The zero value is not
// usable; construct heaps with New or NewOrdered.
//
// Heap is not safe for concurrent use.
type Heap[T any] struct {
	root            *Node[T]    // the single top-level tree; nil when empty
	size            int         // count of live nodes reachable from root
	less            func(a, b T) bool
	pool            NodePool[T] // nil means fresh allocation only
	checkInvariants bool
}

// New constructs a Heap ordered by less, which must implement a strict
// weak ordering over T — the heap does not validate this. A nil comparator
// is an invalid configuration and panics.
//
// Options customization:
//
//   - WithPool(p): recycle nodes through p.
//   - WithInvariantChecks(): verify the DecreaseKey caller contract.
func New[T any](less func(a, b T) bool, opts ...Option[T]) *Heap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}

	// Build and apply Options.
	cfg := DefaultOptions[T]()
	var opt Option[T]
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Heap[T]{
		less:            less,
		pool:            cfg.Pool,
		checkInvariants: cfg.CheckInvariants,
	}
}

// NewOrdered constructs a Heap over an ordered type using the natural
// ascending order (cmp.Less). Equivalent to New(cmp.Less[T], opts...).
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *Heap[T] {
	return New(cmp.Less[T], opts...)
}

// Add inserts item and returns its node handle, valid for Delete and
// DecreaseKey until the node is removed. O(1); never fails. When a pool is
// configured, the node comes from the pool on a hit and is allocated fresh
// on a miss.
func (h *Heap[T]) Add(item T) *Node[T] {
	n := h.obtain()
	n.item = item
	n.live = true
	h.size++
	h.root = h.meld(h.root, n)

	return n
}

// Min returns the minimum item without removing it. The second result is
// false when the heap is empty. O(1).
func (h *Heap[T]) Min() (T, bool) {
	if h.root == nil {
		var zero T

		return zero, false
	}

	return h.root.item, true
}

// MinNode returns the handle of the node holding the minimum item, or nil
// when the heap is empty. O(1).
func (h *Heap[T]) MinNode() *Node[T] {
	return h.root
}

// DeleteMin removes and returns the minimum item. The second result is
// false when the heap is empty. O(log n) amortized.
func (h *Heap[T]) DeleteMin() (T, bool) {
	if h.root == nil {
		var zero T

		return zero, false
	}
	item := h.root.item
	// Delete on the live root cannot fail.
	_ = h.Delete(h.root)

	return item, true
}

// Delete removes the node behind handle n from the heap, clears it, and —
// when a pool is configured — hands it to the pool for reuse. O(log n)
// amortized.
//
// Misuse handling: a nil handle returns ErrNilNode. Deleting a handle
// whose node was already removed returns ErrStaleHandle when a pool is
// configured (the node may already be serving another item) and is a
// silent no-op otherwise.
func (h *Heap[T]) Delete(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if !n.live {
		if h.pool != nil {
			return ErrStaleHandle
		}

		return nil
	}

	if n == h.root {
		// The root has no siblings: the new tree is its collapsed children.
		h.root = h.collapse(n.child)
	} else {
		h.unlink(n)
		h.root = h.meld(h.root, h.collapse(n.child))
	}

	n.clear()
	if h.pool != nil {
		h.pool.Release(n)
	}
	h.size--

	return nil
}

// DecreaseKey restores heap order after the caller lowered n's item in
// place (via Node.SetItem or by mutating through a pointer payload). The
// caller contract is that the item now compares no greater than its prior
// value; DecreaseKey performs no validation of that contract unless
// WithInvariantChecks is enabled, and a violated contract silently
// corrupts heap order. A call on the root node is a no-op: the root is
// already the global minimum and lowering it further changes nothing
// structurally. o(log n) amortized.
//
// Misuse handling matches Delete: ErrNilNode for a nil handle,
// ErrStaleHandle for a pooled-away node, silent no-op for a removed node
// without a pool.
func (h *Heap[T]) DecreaseKey(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if !n.live {
		if h.pool != nil {
			return ErrStaleHandle
		}

		return nil
	}
	if h.checkInvariants {
		// A key that actually went up ranks after some child now.
		for c := n.child; c != nil; c = c.next {
			if h.less(c.item, n.item) {
				return ErrKeyNotDecreased
			}
		}
	}
	if n == h.root {
		return nil
	}

	// Unlink n from its sibling position — children stay attached — and
	// meld it back in at the top, where a lowered key belongs.
	h.unlink(n)
	h.root = h.meld(h.root, n)

	return nil
}

// Meld drains other into h in O(1), leaving other empty. Both heaps must
// have been built with equivalent comparators; melding across orderings is
// a caller defect the heap cannot detect. The receiver keeps its own pool;
// nodes that arrived from other are released to h's pool when deleted.
// Melding a heap with itself or with nil is a no-op.
func (h *Heap[T]) Meld(other *Heap[T]) {
	if other == nil || other == h || other.root == nil {
		return
	}
	h.root = h.meld(h.root, other.root)
	h.size += other.size
	other.root = nil
	other.size = 0
}

// Clear empties the heap, detaching and clearing every node so that
// outstanding handles become stale: Delete and DecreaseKey on them report
// ErrStaleHandle when a pool is configured and no-op otherwise, exactly as
// for an individually deleted node. Nodes are NOT released to a configured
// pool — pool capacity is not reclaimed by Clear; use repeated DeleteMin
// when recycling matters. O(n).
func (h *Heap[T]) Clear() {
	// Iterative walk: the tree's depth grows with operation count, so
	// recursion is avoided here for the same reason as in collapse.
	var stack []*Node[T]
	if h.root != nil {
		stack = append(stack, h.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.child != nil {
			stack = append(stack, n.child)
		}
		if n.next != nil {
			stack = append(stack, n.next)
		}
		n.clear()
	}
	h.root = nil
	h.size = 0
}

// Len reports the number of items currently in the heap. O(1).
func (h *Heap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no items. O(1).
func (h *Heap[T]) IsEmpty() bool { return h.root == nil }

// obtain produces a cleared node: from the pool when one is configured and
// it has a node to give, freshly allocated otherwise.
func (h *Heap[T]) obtain() *Node[T] {
	if h.pool != nil {
		if n := h.pool.Get(); n != nil {
			// Pools are trusted to hand back cleared nodes, but clearing
			// again costs nothing compared to a corrupted tree.
			n.child = nil
			n.next = nil
			n.prev = nil
			n.parent = nil

			return n
		}
	}

	return &Node[T]{}
}

// unlink removes a linked non-root node from its sibling list, leaving its
// children attached and its own lateral links cleared. The node's role is
// read directly off which back-link is set: a first child hangs off
// parent, any later sibling hangs off prev.
func (h *Heap[T]) unlink(n *Node[T]) {
	if n.parent != nil {
		// n is its parent's first child; the next sibling, if any, is
		// promoted to first child.
		n.parent.child = n.next
		if n.next != nil {
			n.next.parent = n.parent
			n.next.prev = nil
		}
	} else {
		n.prev.next = n.next
		if n.next != nil {
			n.next.prev = n.prev
		}
	}
	n.next = nil
	n.prev = nil
	n.parent = nil
}
