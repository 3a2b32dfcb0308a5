// Package golist implement a sorted-set over a singly linked chain
// of key ordered nodes bounded by two sentinels, offered under
// three interchangeable concurrency disciplines.
//
// api:
//
// Interface specification to access golist data structures, and
// the key derivation shared by all of them.
//
// coarse:
//
// Whole-list mutual exclusion. One mutex serializes every
// operation, operations are totally ordered by lock acquisition.
//
// fine:
//
// Per-node locks acquired hand-over-hand in ascending chain order.
// Disjoint operations proceed concurrently, deadlock is ruled out
// by the fixed acquisition order.
//
// optim:
//
// Lock-free traversal with locked validation at the bracketing
// pair, retrying from head until validation succeeds.
//
// dict:
//
// Unsynchronized reference list, for validating the concurrent
// implementations.
//
// lib:
//
// Convenience functions usable by other packages. Package shall
// not import packages other than golang's standard packages.
package golist
