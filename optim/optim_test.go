package optim

import "fmt"
import "math/rand"
import "sync/atomic"
import "testing"

import "github.com/bnclabs/golist/api"
import "github.com/bnclabs/golist/dict"
import "github.com/google/go-cmp/cmp"
import "golang.org/x/sync/errgroup"
import "pgregory.net/rapid"

var _ api.List = (*List)(nil)

func TestListEmpty(t *testing.T) {
	list := NewList("empty", Defaultsettings())
	defer list.Destroy()

	if list.ID() != "empty" {
		t.Errorf("unexpected %v", list.ID())
	}
	if list.Count() != 0 {
		t.Errorf("unexpected %v", list.Count())
	}
	if list.Contains([]byte("missing")) {
		t.Errorf("unexpected item in empty list")
	}

	list.Validate()
	stats := list.Stats()
	if x := stats["n_count"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_lookups"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_validations"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_retries"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	list.Log()
}

func TestListAddRemove(t *testing.T) {
	list := NewList("addrm", Defaultsettings())
	defer list.Destroy()

	for i := 0; i < 1000; i++ {
		item := []byte(fmt.Sprintf("key%v", i))
		if list.Add(item) == false {
			t.Errorf("unexpected duplicate for %s", item)
		} else if list.Add(item) == true {
			t.Errorf("expected duplicate for %s", item)
		} else if list.Contains(item) == false {
			t.Errorf("expected %s", item)
		}
	}
	if x := list.Count(); x != 1000 {
		t.Errorf("unexpected %v", x)
	}
	list.Validate()

	for i := 0; i < 1000; i++ {
		item := []byte(fmt.Sprintf("key%v", i))
		if list.Remove(item) == false {
			t.Errorf("expected to remove %s", item)
		} else if list.Remove(item) == true {
			t.Errorf("unexpected second remove of %s", item)
		} else if list.Contains(item) == true {
			t.Errorf("unexpected %s after remove", item)
		}
	}
	if x := list.Count(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	list.Validate()

	// single threaded run never fails validation.
	if x := list.Stats()["n_retries"].(int64); x != 0 {
		t.Errorf("unexpected retries %v", x)
	}
}

func TestListReference(t *testing.T) {
	list := NewList("reference", Defaultsettings())
	defer list.Destroy()
	d := dict.NewDict("reference")
	defer d.Destroy()

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		item := []byte(fmt.Sprintf("key%v", rnd.Intn(512)))
		switch rnd.Intn(3) {
		case 0:
			if x, y := list.Add(item), d.Add(item); x != y {
				t.Fatalf("add %s: %v != %v", item, x, y)
			}
		case 1:
			if x, y := list.Remove(item), d.Remove(item); x != y {
				t.Fatalf("remove %s: %v != %v", item, x, y)
			}
		case 2:
			if x, y := list.Contains(item), d.Contains(item); x != y {
				t.Fatalf("contains %s: %v != %v", item, x, y)
			}
		}
	}
	list.Validate()
	d.Validate()

	if x, y := list.Count(), d.Count(); x != y {
		t.Errorf("count: %v != %v", x, y)
	}
	final := func(l api.List) map[int]bool {
		members := make(map[int]bool)
		for i := 0; i < 512; i++ {
			item := []byte(fmt.Sprintf("key%v", i))
			if l.Contains(item) {
				members[i] = true
			}
		}
		return members
	}
	if diff := cmp.Diff(final(d), final(list)); diff != "" {
		t.Errorf("membership mismatch (-reference +list):\n%s", diff)
	}
}

func TestListRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		list := NewList("rapid", Defaultsettings())
		defer list.Destroy()
		members := map[string]bool{}

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				item := rapid.StringMatching(`key[0-9]{1,2}`).Draw(t, "item")
				if x := list.Add([]byte(item)); x != !members[item] {
					t.Errorf("add %s: unexpected %v", item, x)
				}
				members[item] = true
			},
			"remove": func(t *rapid.T) {
				item := rapid.StringMatching(`key[0-9]{1,2}`).Draw(t, "item")
				if x := list.Remove([]byte(item)); x != members[item] {
					t.Errorf("remove %s: unexpected %v", item, x)
				}
				delete(members, item)
			},
			"contains": func(t *rapid.T) {
				item := rapid.StringMatching(`key[0-9]{1,2}`).Draw(t, "item")
				if x := list.Contains([]byte(item)); x != members[item] {
					t.Errorf("contains %s: unexpected %v", item, x)
				}
			},
			"": func(t *rapid.T) {
				list.Validate()
				if x := list.Count(); x != int64(len(members)) {
					t.Errorf("count: unexpected %v, expected %v", x, len(members))
				}
			},
		})
	})
}

func TestListNoLostUpdates(t *testing.T) {
	list := NewList("nolost", Defaultsettings())
	defer list.Destroy()

	routines, span := 8, 1000
	var g errgroup.Group
	for r := 0; r < routines; r++ {
		r := r
		g.Go(func() error {
			for i := r * span; i < (r+1)*span; i++ {
				item := []byte(fmt.Sprintf("key%v", i))
				if list.Add(item) == false {
					return fmt.Errorf("lost add for %s", item)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if x := list.Count(); x != int64(routines*span) {
		t.Errorf("unexpected %v", x)
	}
	for i := 0; i < routines*span; i++ {
		item := []byte(fmt.Sprintf("key%v", i))
		if list.Contains(item) == false {
			t.Errorf("missing %s", item)
		}
	}
	list.Validate()
}

// livelock freedom in practice: many goroutines, tiny key range,
// mixed operations. Termination is the assertion, go test -timeout
// is the watchdog.
func TestListConcurrentFuzz(t *testing.T) {
	list := NewList("fuzz", Defaultsettings())
	defer list.Destroy()

	routines, ops, keyspan := 50, 2000, 10
	adds := make([]int64, keyspan)
	rems := make([]int64, keyspan)

	var g errgroup.Group
	for r := 0; r < routines; r++ {
		r := r
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(int64(r)))
			for i := 0; i < ops; i++ {
				k := rnd.Intn(keyspan)
				item := []byte(fmt.Sprintf("key%v", k))
				switch rnd.Intn(3) {
				case 0:
					if list.Add(item) {
						atomic.AddInt64(&adds[k], 1)
					}
				case 1:
					if list.Remove(item) {
						atomic.AddInt64(&rems[k], 1)
					}
				case 2:
					list.Contains(item)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	list.Validate()
	for k := 0; k < keyspan; k++ {
		net := adds[k] - rems[k]
		if net != 0 && net != 1 {
			t.Errorf("key%v: inconsistent effects, net %v", k, net)
		}
		item := []byte(fmt.Sprintf("key%v", k))
		if member := list.Contains(item); member != (net == 1) {
			t.Errorf("key%v: member %v, net %v", k, member, net)
		}
	}
}

func TestListBackoff(t *testing.T) {
	setts := Defaultsettings()
	setts["backoff"] = true
	setts["backoff.interval"] = int64(100)
	list := NewList("backoff", setts)
	defer list.Destroy()

	routines, ops, keyspan := 16, 500, 4
	var g errgroup.Group
	for r := 0; r < routines; r++ {
		r := r
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(int64(r)))
			for i := 0; i < ops; i++ {
				item := []byte(fmt.Sprintf("key%v", rnd.Intn(keyspan)))
				if rnd.Intn(2) == 0 {
					list.Add(item)
				} else {
					list.Remove(item)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	list.Validate()
}

func TestListDestroy(t *testing.T) {
	list := NewList("destroy", Defaultsettings())
	if err := list.Destroy(); err != nil {
		t.Errorf("unexpected %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on second destroy")
		}
	}()
	list.Destroy()
}

func BenchmarkListAdd(b *testing.B) {
	list := NewList("bench", Defaultsettings())
	defer list.Destroy()
	items := make([][]byte, b.N)
	for i := range items {
		items[i] = []byte(fmt.Sprintf("key%v", i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Add(items[i])
	}
}

func BenchmarkListContains(b *testing.B) {
	list := NewList("bench", Defaultsettings())
	defer list.Destroy()
	for i := 0; i < 1024; i++ {
		list.Add([]byte(fmt.Sprintf("key%v", i)))
	}
	item := []byte("key512")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Contains(item)
	}
}
