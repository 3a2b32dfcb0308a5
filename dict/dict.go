// Package dict implement the sorted chain with no synchronization
// at all. Primarily meant as reference for validating the
// concurrent lists, not safe for concurrent use.
package dict

import "fmt"

import "github.com/bnclabs/golist/api"

// node links one item into the chain.
type node struct {
	item []byte
	key  int64
	next *node
}

// Dict is a reference list, for validation purpose.
type Dict struct {
	n_count   int64
	n_inserts int64
	n_deletes int64
	n_lookups int64
	n_dupadds int64
	n_misses  int64

	name string
	head *node
	tail *node
	dead bool
}

// NewDict create an empty reference list with two sentinel nodes.
func NewDict(name string) *Dict {
	d := &Dict{name: name}
	d.tail = &node{key: api.Maxkeylimit}
	d.head = &node{key: api.Minkeylimit, next: d.tail}
	return d
}

//---- api.List interface.

// ID implement api.List interface.
func (d *Dict) ID() string {
	return d.name
}

// Count implement api.List interface.
func (d *Dict) Count() int64 {
	return d.n_count
}

// Add implement api.List interface.
func (d *Dict) Add(item []byte) bool {
	key := api.Keyof(item)
	pred, curr := d.search(key)
	if curr.key == key {
		d.n_dupadds++
		return false
	}
	pred.next = &node{item: item, key: key, next: curr}
	d.n_inserts++
	d.n_count++
	return true
}

// Remove implement api.List interface.
func (d *Dict) Remove(item []byte) bool {
	key := api.Keyof(item)
	pred, curr := d.search(key)
	if curr.key != key {
		d.n_misses++
		return false
	}
	pred.next = curr.next
	d.n_deletes++
	d.n_count--
	return true
}

// Contains implement api.List interface.
func (d *Dict) Contains(item []byte) bool {
	key := api.Keyof(item)
	d.n_lookups++
	_, curr := d.search(key)
	return curr.key == key
}

func (d *Dict) search(key int64) (pred, curr *node) {
	pred = d.head
	curr = pred.next
	for curr.key < key {
		pred, curr = curr, curr.next
	}
	return pred, curr
}

// Stats implement api.List interface.
func (d *Dict) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":   d.n_count,
		"n_inserts": d.n_inserts,
		"n_deletes": d.n_deletes,
		"n_lookups": d.n_lookups,
		"n_dupadds": d.n_dupadds,
		"n_misses":  d.n_misses,
	}
}

// Validate implement api.List interface.
func (d *Dict) Validate() {
	count, prevkey := int64(0), d.head.key
	for nd := d.head.next; nd != d.tail; nd = nd.next {
		if nd.key <= prevkey {
			fmsg := "validate(): sort order broken %v after %v"
			panic(fmt.Errorf(fmsg, nd.key, prevkey))
		}
		prevkey = nd.key
		count++
	}
	if count != d.n_count {
		panic(fmt.Errorf("validate(): count %v != n_count %v", count, d.n_count))
	}
}

// Log implement api.List interface. Reference list has nothing
// worth logging.
func (d *Dict) Log() {
}

// Destroy implement api.List interface.
func (d *Dict) Destroy() error {
	if d.dead {
		panic("Destroy(): already dead dict")
	}
	d.head, d.tail = nil, nil
	d.dead = true
	return nil
}
