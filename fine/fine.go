package fine

import "fmt"
import "sync/atomic"

import "github.com/bnclabs/golist/api"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// List of sorted items with a mutex per node, acquired
// hand-over-hand in ascending chain order.
type List struct {
	// 64-bit aligned counters.
	n_count   int64
	n_inserts int64
	n_deletes int64
	n_lookups int64
	n_dupadds int64
	n_misses  int64

	name      string
	head      *node
	tail      *node
	dead      bool
	maxlimit  int64
	setts     s.Settings
	logprefix string
}

// NewList create an empty list with two sentinel nodes, ready for
// concurrent use.
func NewList(name string, setts s.Settings) *List {
	list := &List{name: name}
	list.logprefix = fmt.Sprintf("FINE [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	list.readsettings(setts)
	list.setts = setts

	list.tail = newsentinel(api.Maxkeylimit)
	list.head = newsentinel(api.Minkeylimit)
	list.head.next = list.tail

	infof("%v started ...\n", list.logprefix)
	return list
}

func (list *List) readsettings(setts s.Settings) *List {
	list.maxlimit = setts.Int64("maxlimit")
	return list
}

//---- api.List interface.

// ID implement api.List interface.
func (list *List) ID() string {
	return list.name
}

// Count implement api.List interface.
func (list *List) Count() int64 {
	return atomic.LoadInt64(&list.n_count)
}

// Add implement api.List interface. Splices the new node in while
// holding the locks on both bracketing nodes.
func (list *List) Add(item []byte) bool {
	key := api.Keyof(item)

	pred, curr := list.search(key)
	defer pred.unlock()
	defer curr.unlock()

	if curr.key == key {
		atomic.AddInt64(&list.n_dupadds, 1)
		return false
	}
	nd := newnode(item)
	nd.next = curr
	pred.next = nd
	atomic.AddInt64(&list.n_inserts, 1)
	atomic.AddInt64(&list.n_count, 1)
	return true
}

// Remove implement api.List interface. Unlinks the node while
// holding the locks on both it and its predecessor, so no
// traversal can step onto the node as it goes.
func (list *List) Remove(item []byte) bool {
	key := api.Keyof(item)

	pred, curr := list.search(key)
	defer pred.unlock()
	defer curr.unlock()

	if curr.key != key {
		atomic.AddInt64(&list.n_misses, 1)
		return false
	}
	pred.next = curr.next
	atomic.AddInt64(&list.n_deletes, 1)
	atomic.AddInt64(&list.n_count, -1)
	return true
}

// Contains implement api.List interface.
func (list *List) Contains(item []byte) bool {
	key := api.Keyof(item)

	pred, curr := list.search(key)
	defer pred.unlock()
	defer curr.unlock()

	atomic.AddInt64(&list.n_lookups, 1)
	return curr.key == key
}

// search acquire locks hand-over-hand from head until it stops at
// the first pair (pred, curr) such that pred.key < key <= curr.key.
// Both nodes are returned locked, in that order. Funneling every
// operation through this routine is what pins lock acquisition to
// ascending chain order.
func (list *List) search(key int64) (pred, curr *node) {
	pred = list.head
	pred.lock()
	curr = pred.next
	curr.lock()
	for curr.key < key {
		pred.unlock()
		pred = curr
		curr = curr.next
		curr.lock()
	}
	return pred, curr
}

// Stats implement api.List interface.
func (list *List) Stats() map[string]interface{} {
	stats := make(map[string]interface{})
	stats["n_count"] = atomic.LoadInt64(&list.n_count)
	stats["n_inserts"] = atomic.LoadInt64(&list.n_inserts)
	stats["n_deletes"] = atomic.LoadInt64(&list.n_deletes)
	stats["n_lookups"] = atomic.LoadInt64(&list.n_lookups)
	stats["n_dupadds"] = atomic.LoadInt64(&list.n_dupadds)
	stats["n_misses"] = atomic.LoadInt64(&list.n_misses)
	stats["maxlimit"] = list.maxlimit
	return stats
}

// Validate implement api.List interface. Walks the full chain to
// confirm the sort order and the counters. Shall not be called
// concurrent with mutations.
func (list *List) Validate() {
	count := validatechain(list.head, list.tail)
	if n := atomic.LoadInt64(&list.n_count); count != n {
		panic(fmt.Errorf("validate(): count %v != n_count %v", count, n))
	} else if count > list.maxlimit {
		panic(fmt.Errorf("validate(): count %v exceeds maxlimit %v", count, list.maxlimit))
	}
}

// validatechain walk head to tail confirming strictly increasing
// keys, return the number of items between the sentinels.
func validatechain(head, tail *node) (count int64) {
	prevkey := head.key
	for nd := head.next; nd != tail; nd = nd.next {
		if nd.issentinel() {
			panic(fmt.Errorf("validate(): sentinel %v inside chain", nd))
		} else if nd.key <= prevkey {
			fmsg := "validate(): sort order broken %v after %v"
			panic(fmt.Errorf(fmsg, nd.key, prevkey))
		}
		prevkey = nd.key
		count++
	}
	if tail.next != nil {
		panic(fmt.Errorf("validate(): tail sentinel is linked onward"))
	}
	return count
}

// Log implement api.List interface.
func (list *List) Log() {
	stats := list.Stats()
	infof("%v count: %v\n", list.logprefix,
		humanize.Comma(stats["n_count"].(int64)))
	fmsg := "%v inserts: %v, deletes: %v, lookups: %v\n"
	infof(fmsg, list.logprefix,
		humanize.Comma(stats["n_inserts"].(int64)),
		humanize.Comma(stats["n_deletes"].(int64)),
		humanize.Comma(stats["n_lookups"].(int64)))
	fmsg = "%v dupadds: %v, misses: %v\n"
	infof(fmsg, list.logprefix,
		humanize.Comma(stats["n_dupadds"].(int64)),
		humanize.Comma(stats["n_misses"].(int64)))
}

// Destroy implement api.List interface. Outstanding operations
// shall be drained before calling Destroy.
func (list *List) Destroy() error {
	if list.dead {
		panic("Destroy(): already dead list")
	}
	list.head, list.tail, list.setts = nil, nil, nil
	list.dead = true
	infof("%v destroyed\n", list.logprefix)
	return nil
}
