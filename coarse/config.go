package coarse

import "unsafe"

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// itemoverhead approximate heap cost of an item payload held by a
// node, over and above the node struct itself.
const itemoverhead = 32

// Defaultsettings for coarse list.
//
// "maxlimit" (int64, default: freeRAM / nodefootprint)
//      Advisory upper bound on the number of entries the list is
//      expected to hold. Validate() panics when the chain grows
//      beyond it.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	footprint := int64(unsafe.Sizeof(node{})) + itemoverhead
	return s.Settings{
		"maxlimit": int64(free) / footprint,
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
