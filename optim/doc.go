// Package optim implement a sorted-set over a singly linked chain
// of key ordered nodes, with lock-free traversal and locked
// validation at the target position.
//
//   * Traversal reads next pointers with atomic loads and takes no
//     locks at all.
//   * Once the bracketing (pred, curr) pair is found both nodes are
//     locked, pred first then curr, and the pair is validated:
//     pred.next must still point to curr. On validation failure the
//     whole traversal restarts from head, without bound.
//   * Unlinked nodes are never mutated, so a stale traversal that
//     captured a reference before the unlink reads consistent, if
//     outdated, state until validation catches it.
//
// Traversal is lock free but the operation as a whole is not wait
// free: under adversarial mutation near the target key a goroutine
// can retry indefinitely. That surfaces as latency, never as an
// error.
package optim
