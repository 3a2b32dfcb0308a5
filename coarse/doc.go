// Package coarse implement a sorted-set over a singly linked chain
// of key ordered nodes, serialized by a single mutex.
//
//   * Every operation, including reads, holds the list mutex for
//     its full duration.
//   * Operations are totally ordered by lock acquisition, which
//     makes the list trivially linearizable.
//   * Throughput degrades with contention since disjoint operations
//     serialize all the same.
package coarse
