package coarse

import "fmt"

import "github.com/bnclabs/golist/api"

// node links one item into the chain. key is derived once at
// construction and immutable there after, next is guarded by the
// list mutex.
type node struct {
	item []byte
	key  int64
	next *node
}

func newnode(item []byte) *node {
	return &node{item: item, key: api.Keyof(item)}
}

// sentinels carry no item and are never unlinked.
func newsentinel(key int64) *node {
	return &node{key: key}
}

func (nd *node) issentinel() bool {
	return nd.key == api.Minkeylimit || nd.key == api.Maxkeylimit
}

func (nd *node) String() string {
	if nd.issentinel() {
		return fmt.Sprintf("sentinel<%v>", nd.key)
	}
	return fmt.Sprintf("node<%v,%s>", nd.key, nd.item)
}
