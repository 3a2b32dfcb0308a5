package optim

import "unsafe"

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// itemoverhead approximate heap cost of an item payload held by a
// node, over and above the node struct itself.
const itemoverhead = 32

// Defaultsettings for optimistic list.
//
// "maxlimit" (int64, default: freeRAM / nodefootprint)
//      Advisory upper bound on the number of entries the list is
//      expected to hold. Validate() panics when the chain grows
//      beyond it.
//
// "backoff" (bool, default: false)
//      When true, failed validations back off with a capped
//      exponential sleep before retrying. Default is immediate
//      unbounded retry.
//
// "backoff.interval" (int64, default: 1000)
//      Initial backoff interval in nanoseconds, doubled on every
//      failed validation up to one millisecond. Ignored unless
//      "backoff" is true.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	footprint := int64(unsafe.Sizeof(node{})) + itemoverhead
	return s.Settings{
		"maxlimit":         int64(free) / footprint,
		"backoff":          false,
		"backoff.interval": int64(1000),
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
