package optim

import "fmt"
import "sync/atomic"
import "time"

import "github.com/bnclabs/golist/api"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// maxbackoff cap on the exponential backoff interval, when backoff
// is enabled.
const maxbackoff = int64(time.Millisecond)

// List of sorted items with lock-free traversal and locked
// validation at the bracketing pair.
type List struct {
	// 64-bit aligned counters.
	n_count       int64
	n_inserts     int64
	n_deletes     int64
	n_lookups     int64
	n_dupadds     int64
	n_misses      int64
	n_validations int64
	n_retries     int64

	name      string
	head      *node
	tail      *node
	dead      bool
	maxlimit  int64
	backoff   bool
	interval  int64
	setts     s.Settings
	logprefix string
}

// NewList create an empty list with two sentinel nodes, ready for
// concurrent use.
func NewList(name string, setts s.Settings) *List {
	list := &List{name: name}
	list.logprefix = fmt.Sprintf("OPTIM [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	list.readsettings(setts)
	list.setts = setts

	list.tail = newsentinel(api.Maxkeylimit)
	list.head = newsentinel(api.Minkeylimit)
	list.head.storenext(list.tail)

	infof("%v started ...\n", list.logprefix)
	return list
}

func (list *List) readsettings(setts s.Settings) *List {
	list.maxlimit = setts.Int64("maxlimit")
	list.backoff = setts.Bool("backoff")
	list.interval = setts.Int64("backoff.interval")
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

// Add implement api.List interface. Retries until a traversal
// validates, then splices the new node in under both locks.
func (list *List) Add(item []byte) bool {
	key := api.Keyof(item)
	interval := list.interval
	for {
		pred, curr := list.search(key)
		pred.lock()
		curr.lock()
		if list.validate(pred, curr) {
			if curr.key == key {
				curr.unlock()
				pred.unlock()
				atomic.AddInt64(&list.n_dupadds, 1)
				return false
			}
			nd := newnode(item)
			nd.storenext(curr)
			pred.storenext(nd)
			curr.unlock()
			pred.unlock()
			atomic.AddInt64(&list.n_inserts, 1)
			atomic.AddInt64(&list.n_count, 1)
			return true
		}
		curr.unlock()
		pred.unlock()
		interval = list.dobackoff(interval)
	}
}

// Remove implement api.List interface. Retries until a traversal
// validates, then unlinks the node under both locks. The unlinked
// node is never mutated again.
func (list *List) Remove(item []byte) bool {
	key := api.Keyof(item)
	interval := list.interval
	for {
		pred, curr := list.search(key)
		pred.lock()
		curr.lock()
		if list.validate(pred, curr) {
			if curr.key != key {
				curr.unlock()
				pred.unlock()
				atomic.AddInt64(&list.n_misses, 1)
				return false
			}
			pred.storenext(curr.loadnext())
			curr.unlock()
			pred.unlock()
			atomic.AddInt64(&list.n_deletes, 1)
			atomic.AddInt64(&list.n_count, -1)
			return true
		}
		curr.unlock()
		pred.unlock()
		interval = list.dobackoff(interval)
	}
}

// Contains implement api.List interface. Membership is decided only
// after the bracketing pair validates.
func (list *List) Contains(item []byte) bool {
	key := api.Keyof(item)
	interval := list.interval
	for {
		pred, curr := list.search(key)
		pred.lock()
		curr.lock()
		if list.validate(pred, curr) {
			curr.unlock()
			pred.unlock()
			atomic.AddInt64(&list.n_lookups, 1)
			return curr.key == key
		}
		curr.unlock()
		pred.unlock()
		interval = list.dobackoff(interval)
	}
}

// search walk from head without locks, stop at the first pair
// (pred, curr) such that pred.key < key <= curr.key. The pair may
// be stale by the time it is returned, validate() decides that.
func (list *List) search(key int64) (pred, curr *node) {
	pred = list.head
	curr = pred.loadnext()
	for curr.key < key {
		pred = curr
		curr = curr.loadnext()
	}
	return pred, curr
}

// validate that pred still links to curr, under both locks. A
// concurrent unlink or splice between traversal and locking shows
// up here as a mismatch.
func (list *List) validate(pred, curr *node) bool {
	atomic.AddInt64(&list.n_validations, 1)
	return pred.loadnext() == curr
}

// dobackoff account a retry, and when backoff is enabled sleep for
// interval, doubling it up to maxbackoff. With backoff disabled the
// retry is immediate.
func (list *List) dobackoff(interval int64) int64 {
	atomic.AddInt64(&list.n_retries, 1)
	if list.backoff == false {
		return interval
	}
	time.Sleep(time.Duration(interval))
	if interval < maxbackoff {
		interval *= 2
	}
	return interval
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
	stats["n_validations"] = atomic.LoadInt64(&list.n_validations)
	stats["n_retries"] = atomic.LoadInt64(&list.n_retries)
	stats["maxlimit"] = list.maxlimit
	stats["backoff"] = list.backoff
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
	for nd := head.loadnext(); nd != tail; nd = nd.loadnext() {
		if nd.issentinel() {
			panic(fmt.Errorf("validate(): sentinel %v inside chain", nd))
		} else if nd.key <= prevkey {
			fmsg := "validate(): sort order broken %v after %v"
			panic(fmt.Errorf(fmsg, nd.key, prevkey))
		}
		prevkey = nd.key
		count++
	}
	if tail.loadnext() != nil {
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
	fmsg = "%v validations: %v, retries: %v\n"
	infof(fmsg, list.logprefix,
		humanize.Comma(stats["n_validations"].(int64)),
		humanize.Comma(stats["n_retries"].(int64)))
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
