// Package nodepool provides a bounded free-list recycler for pairheap
// nodes, implementing the pairheap.NodePool contract.
//
// What:
//
//   - FreeList[T] keeps up to a fixed number of released nodes and hands
//     them back LIFO on Get.
//   - Releases beyond capacity are silently dropped; Get on an empty pool
//     reports a miss (nil), which the heap answers with fresh allocation.
//
// Why:
//
//   - Allocation-heavy workloads: schedulers and simulations that churn
//     through Add/DeleteMin cycles can reuse nodes instead of pressuring
//     the garbage collector.
//
// Complexity:
//
//   - Get, Release: O(1). Memory: O(capacity).
//
// Errors:
//
//   - ErrBadCapacity: New called with a non-positive capacity (panics,
//     matching the constructor policy for invalid configuration).
//
// A FreeList is not safe for concurrent use; share it only among heaps
// owned by the same goroutine.
package nodepool
