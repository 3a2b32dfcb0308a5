// Package fine implement a sorted-set over a singly linked chain of
// key ordered nodes, with one mutex per node and hand-over-hand
// acquisition during traversal.
//
//   * A traversal holds at most two adjacent node locks at any
//     moment, advancing by acquire-next-then-release-previous.
//   * Locks are acquired only in ascending chain order, the same
//     total order for every goroutine, so no wait-for cycle can
//     form and the list is deadlock free.
//   * Operations on disjoint regions of the chain proceed
//     concurrently, the critical section spans only the two nodes
//     bracketing the point of interest.
package fine
