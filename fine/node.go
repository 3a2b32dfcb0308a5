package fine

import "fmt"
import "sync"

import "github.com/bnclabs/golist/api"

// node links one item into the chain and owns its own mutex. key
// is derived once at construction and immutable there after, next
// shall be read or written only while holding the node's mutex.
type node struct {
	item []byte
	key  int64
	next *node
	mu   sync.Mutex
}

func newnode(item []byte) *node {
	return &node{item: item, key: api.Keyof(item)}
}

// sentinels carry no item and are never unlinked.
func newsentinel(key int64) *node {
	return &node{key: key}
}

func (nd *node) lock() {
	nd.mu.Lock()
}

func (nd *node) unlock() {
	nd.mu.Unlock()
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
