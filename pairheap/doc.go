// Package pairheap implements a mergeable min-priority queue as a pairing
// heap: a self-adjusting multiway tree that maintains only the heap-order
// property and restructures itself through pairwise melds.
//
// What:
//
//   - Heap[T] owns a single tree of Node[T] values ordered by a caller
//     comparator (strict less-than).
//   - Add returns an opaque *Node[T] handle, valid for targeted Delete and
//     DecreaseKey until the node is removed.
//   - Meld combines two heaps in O(1); DeleteMin restores the tree with the
//     iterative two-pass pairing collapse.
//   - Iterator walks the live heap in ascending order without draining it,
//     collapsing child lists lazily as it descends.
//   - An optional NodePool recycles node allocations across Add/Delete
//     cycles; a pool miss always falls back to a fresh allocation.
//
// Why:
//
//   - Schedulers and simulations: cheap inserts, targeted cancellation.
//   - Graph algorithms: true decrease-key for Dijkstra/Prim instead of the
//     lazy-deletion duplicates a binary heap forces.
//   - Merge-heavy pipelines: combining per-shard queues costs O(1).
//
// Complexity:
//
//   - Add, Min, MinNode, Meld:  O(1)
//   - DeleteMin, Delete:        O(log n) amortized
//   - DecreaseKey:              o(log n) amortized
//   - Iteration:                O(n log n) total for a full pass
//
// Options:
//
//   - WithPool(p):          recycle nodes through p (NodePool contract).
//   - WithInvariantChecks(): verify the DecreaseKey caller contract and
//     report ErrKeyNotDecreased on violation.
//
// Errors (sentinel):
//
//   - ErrNilNode         if a nil handle is passed to Delete or DecreaseKey.
//   - ErrStaleHandle     if a handle already reclaimed by a configured pool
//     is passed to Delete or DecreaseKey.
//   - ErrKeyNotDecreased if WithInvariantChecks detects a DecreaseKey call
//     whose key did not actually decrease.
//
// The heap is not safe for concurrent use. Mutating a heap while one of
// its iterators is in progress leaves that iterator's results unspecified.
package pairheap
