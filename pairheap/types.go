// Package pairheap defines core types, configuration options, and sentinel
// errors for the pairheap subpackage of github.com/katalvlaran/pairq.
package pairheap

import "errors"

// Sentinel errors returned by heap operations.
var (
	// ErrNilLess indicates that New was called with a nil comparator.
	ErrNilLess = errors.New("pairheap: comparator must be non-nil")

	// ErrNilPool indicates that WithPool was called with a nil pool.
	ErrNilPool = errors.New("pairheap: pool must be non-nil")

	// ErrNilNode indicates that a nil handle was passed to Delete or DecreaseKey.
	ErrNilNode = errors.New("pairheap: node handle is nil")

	// ErrStaleHandle indicates that Delete or DecreaseKey received a handle
	// whose node a configured pool has already reclaimed. Once pooled, the
	// node may be serving a different item, so the call is a caller defect
	// and must be surfaced rather than ignored.
	ErrStaleHandle = errors.New("pairheap: node already removed from heap")

	// ErrKeyNotDecreased indicates that WithInvariantChecks detected a
	// DecreaseKey call on a node whose item now ranks after one of its
	// children, i.e. the key was raised, not lowered.
	ErrKeyNotDecreased = errors.New("pairheap: decreased key ranks after a child key")
)

// NodePool recycles nodes between Delete and Add. The heap treats the pool
// as advisory: a Get miss (nil) falls back to fresh allocation, every
// removed node is offered via Release regardless of the pool's declared
// capacity, and Len/Cap are informational only — the heap never consults
// or enforces them. Capacity policy belongs entirely to the pool.
type NodePool[T any] interface {
	// Get returns a recycled node, or nil on a miss.
	Get() *Node[T]
	// Release accepts a cleared node for future reuse. No acknowledgment
	// is expected; the pool may drop the node.
	Release(n *Node[T])
	// Len reports how many nodes the pool currently holds.
	Len() int
	// Cap reports the pool's declared capacity.
	Cap() int
}

// Options configures a Heap.
//
// Pool            – optional node recycler satisfying the NodePool contract.
// CheckInvariants – enable the DecreaseKey caller-contract check.
type Options[T any] struct {
	Pool            NodePool[T] // nil means allocate fresh nodes only
	CheckInvariants bool        // verify DecreaseKey really decreased the key
}

// Option represents a functional option for configuring a Heap.
type Option[T any] func(*Options[T])

// WithPool routes node allocation through p: Add asks p.Get first and
// Delete hands removed nodes to p.Release. Passing a nil pool is an
// invalid configuration and panics, matching the constructor-panic policy
// for misconfigured options.
func WithPool[T any](p NodePool[T]) Option[T] {
	return func(o *Options[T]) {
		if p == nil {
			panic(ErrNilPool.Error())
		}
		o.Pool = p
	}
}

// WithInvariantChecks enables a best-effort verification of the DecreaseKey
// caller contract: before relocating a node, the heap confirms that none
// of the node's children now ranks strictly before it, and reports
// ErrKeyNotDecreased otherwise. The check observes only the node's
// immediate children, so a raised key that still ranks before every child
// remains undetectable; it is a debugging aid, not a guarantee.
func WithInvariantChecks[T any]() Option[T] {
	return func(o *Options[T]) {
		o.CheckInvariants = true
	}
}

// DefaultOptions returns an Options struct initialized with the defaults
// used by New: no pool, no invariant checks.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Pool:            nil,
		CheckInvariants: false,
	}
}
