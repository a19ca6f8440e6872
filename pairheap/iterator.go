package pairheap

import "iter"

// Iterator walks a heap in ascending comparator order without removing
// anything: a lazy, single-pass, non-restartable cursor. Obtain one with
// Heap.Iter, or range over Heap.All / Heap.Nodes.
//
// Each step descends one level: the current node is yielded, its child
// list is collapsed in place to a single tree, and the cursor moves to
// that tree's root. The collapse is the same two-pass pairing reduction
// DeleteMin uses, so the next cursor position is always the minimum of
// everything not yet yielded — that is what makes the sequence ascending.
// Heap-order guarantees the current node never ranks after anything below
// it, so yield-then-descend is globally sorted, not merely per-subtree.
//
// The in-place collapses restructure the tree but never change its
// membership or violate heap order, so the heap remains fully usable;
// abandoning an iterator mid-pass requires no cleanup. Mutating the heap
// (Add, Delete, DecreaseKey, Meld, Clear) while an iterator is in progress
// leaves that iterator's remaining results unspecified.
type Iterator[T any] struct {
	h   *Heap[T]
	cur *Node[T]
}

// Iter returns an ascending iterator positioned before the minimum.
func (h *Heap[T]) Iter() *Iterator[T] {
	return &Iterator[T]{h: h, cur: h.root}
}

// Next yields the next node in ascending order. The second result is false
// once the pass is exhausted; further calls keep returning false.
func (it *Iterator[T]) Next() (*Node[T], bool) {
	n := it.cur
	if n == nil {
		return nil, false
	}

	// Collapse n's child list to a single subtree and splice it back in as
	// n's only child, keeping the tree well-formed for later operations.
	c := it.h.collapse(n.child)
	n.child = c
	if c != nil {
		c.parent = n
	}
	it.cur = c

	return n, true
}

// All returns an ascending range-over-func view of the heap's items. Each
// range statement starts a fresh single pass; the caveats of Iterator
// apply.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := h.Iter()
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			if !yield(n.item) {
				return
			}
		}
	}
}

// Nodes returns an ascending range-over-func view of the heap's node
// handles, for callers that want to Delete or DecreaseKey what they find —
// after the pass finishes, not during it.
func (h *Heap[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		it := h.Iter()
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			if !yield(n) {
				return
			}
		}
	}
}
