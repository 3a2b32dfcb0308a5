package optim

import "fmt"
import "sync"
import "sync/atomic"
import "unsafe"

import "github.com/bnclabs/golist/api"

// node links one item into the chain and owns its own mutex. key
// is derived once at construction and immutable there after. next
// is read by lock-free traversals, so it goes through atomic
// load/store.
type node struct {
	item []byte
	key  int64
	next unsafe.Pointer // *node
	mu   sync.Mutex
}

func newnode(item []byte) *node {
	return &node{item: item, key: api.Keyof(item)}
}

// sentinels carry no item and are never unlinked.
func newsentinel(key int64) *node {
	return &node{key: key}
}

func (nd *node) loadnext() *node {
	return (*node)(atomic.LoadPointer(&nd.next))
}

func (nd *node) storenext(next *node) {
	atomic.StorePointer(&nd.next, unsafe.Pointer(next))
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
