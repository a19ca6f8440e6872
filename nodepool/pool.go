package nodepool

import (
	"errors"

	"github.com/katalvlaran/pairq/pairheap"
)

// ErrBadCapacity indicates that New was called with a non-positive capacity.
var ErrBadCapacity = errors.New("nodepool: capacity must be positive")

// FreeList is a bounded LIFO free list of pairheap nodes. It satisfies
// pairheap.NodePool: the heap calls Get on Add and Release on Delete, and
// treats both as advisory — misses and drops are normal operation here,
// not failures.
type FreeList[T any] struct {
	free []*pairheap.Node[T]
	cap  int
}

// New constructs a FreeList holding at most capacity nodes. A non-positive
// capacity is an invalid configuration and panics with ErrBadCapacity.
func New[T any](capacity int) *FreeList[T] {
	if capacity <= 0 {
		panic(ErrBadCapacity.Error())
	}

	return &FreeList[T]{
		free: make([]*pairheap.Node[T], 0, capacity),
		cap:  capacity,
	}
}

// Get pops the most recently released node, or returns nil when the pool
// is empty.
func (p *FreeList[T]) Get() *pairheap.Node[T] {
	if len(p.free) == 0 {
		return nil
	}
	n := p.free[len(p.free)-1]
	p.free[len(p.free)-1] = nil
	p.free = p.free[:len(p.free)-1]

	return n
}

// Release stores n for future reuse. Nil nodes and releases beyond the
// declared capacity are dropped; capacity enforcement lives here, never in
// the heap.
func (p *FreeList[T]) Release(n *pairheap.Node[T]) {
	if n == nil || len(p.free) == p.cap {
		return
	}
	p.free = append(p.free, n)
}

// Len reports how many nodes the pool currently holds.
func (p *FreeList[T]) Len() int { return len(p.free) }

// Cap reports the pool's declared capacity.
func (p *FreeList[T]) Cap() int { return p.cap }
