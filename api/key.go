package api

import "math"

import "github.com/cespare/xxhash/v2"

// Minkeylimit is the head sentinel's key, strictly less than the
// key derived for any item.
const Minkeylimit = int64(math.MinInt64)

// Maxkeylimit is the tail sentinel's key, strictly greater than the
// key derived for any item.
const Maxkeylimit = int64(math.MaxInt64)

// Keyof derive the ordering key for item, computed once when a node
// is constructed. The 64-bit hash is folded below Maxkeylimit so a
// derived key can never land on a sentinel. Two distinct items
// hashing to the same key are treated as the same member.
func Keyof(item []byte) int64 {
	return int64(xxhash.Sum64(item) % uint64(math.MaxInt64))
}
