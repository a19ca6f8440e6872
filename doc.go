// Package pairq is an in-memory mergeable priority-queue toolbox built
// around a pairing heap — from O(1) melds to handle-based decrease-key
// and lazy ascending iteration.
//
// 🚀 What is pairq?
//
//	A small, focused library that brings together:
//		• Pairing heap core: insert & meld in O(1), extract-min in amortized O(log n)
//		• Handles: every Add returns an opaque node handle for targeted Delete / DecreaseKey
//		• Lazy iteration: ascending traversal without draining the heap
//		• Node recycling: optional free-list pool for allocation-heavy workloads
//
// ✨ Why choose pairq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - True decrease-key – no lazy-deletion duplicates clogging the queue
//   - Pure Go – no cgo, no hidden deps
//   - Generic – bring your own payload type and comparator
//
// Under the hood, everything is organized under two subpackages:
//
//	pairheap/ — the heap itself: Node, Heap, Iterator
//	nodepool/ — a bounded free-list implementing the pairheap.NodePool contract
//
// Quick ASCII example:
//
//	      1
//	     /|
//	    3 5
//	    |
//	    8
//
//	a four-item heap after inserting 5, 3, 8, 1 — the root always holds
//	the minimum, children are unordered among themselves.
//
// Dive into README.md for full examples, and into examples/ for runnable
// scenarios (priority scheduling, Dijkstra with true decrease-key).
//
//	go get github.com/katalvlaran/pairq/pairheap
package pairq
