// Load driver for the three list implementations. Reproduces the
// usual scenarios, a read heavy mix, a contended mixed load and a
// write burst, against any one of coarse, fine or optim lists and
// reports throughput and latency.
package main

import "flag"
import "fmt"
import "math/rand"
import "os"
import "sync"
import "time"

import "github.com/bnclabs/golist/api"
import "github.com/bnclabs/golist/coarse"
import "github.com/bnclabs/golist/fine"
import "github.com/bnclabs/golist/lib"
import "github.com/bnclabs/golist/optim"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"
import "golang.org/x/sync/errgroup"

var options struct {
	list     string
	scenario string
	routines int
	ops      int
	keyspan  int
	seed     int64
	backoff  bool
	profile  string
	log      bool
}

func argparse() {
	f := flag.NewFlagSet("listload", flag.ExitOnError)

	f.StringVar(&options.list, "list", "coarse",
		"list implementation, coarse | fine | optim")
	f.StringVar(&options.scenario, "scenario", "low",
		"workload scenario, low | high | burst")
	f.IntVar(&options.routines, "routines", 8,
		"number of concurrent routines")
	f.IntVar(&options.ops, "ops", 1000000,
		"total number of operations across routines")
	f.IntVar(&options.keyspan, "keyspan", 1000,
		"operate on keys from [0, keyspan)")
	f.Int64Var(&options.seed, "seed", time.Now().UnixNano(),
		"random seed")
	f.BoolVar(&options.backoff, "backoff", false,
		"enable validation backoff for optim list")
	f.StringVar(&options.profile, "profile", "",
		"yaml file overriding the scenario operation mix")
	f.BoolVar(&options.log, "log", false,
		"enable list logging")
	f.Parse(os.Args[1:])
}

func main() {
	argparse()

	if options.log {
		coarse.LogComponents("all")
		fine.LogComponents("all")
		optim.LogComponents("all")
	}

	profile, err := loadprofile(options.scenario, options.profile)
	if err != nil {
		fmt.Printf("error loading profile: %v\n", err)
		os.Exit(1)
	}

	list := newlist(options.list)
	fmt.Printf("list: %v, scenario: %v, seed: %v\n",
		options.list, profile.Scenario, options.seed)
	fmt.Printf("routines: %v, ops: %v, keyspan: %v\n",
		options.routines, humanize.Comma(int64(options.ops)),
		humanize.Comma(int64(options.keyspan)))

	elapsed, latency := run(list, profile)
	report(list, elapsed, latency)
	list.Destroy()
}

func newlist(kind string) api.List {
	switch kind {
	case "coarse":
		return coarse.NewList("listload", coarse.Defaultsettings())
	case "fine":
		return fine.NewList("listload", fine.Defaultsettings())
	case "optim":
		setts := optim.Defaultsettings()
		setts = setts.Mixin(s.Settings{"backoff": options.backoff})
		return optim.NewList("listload", setts)
	}
	fmt.Printf("unknown list %q\n", kind)
	os.Exit(1)
	return nil
}

// latsample sample latency once every latsample operations, to keep
// the shared accumulator off the hot path.
const latsample = 16

func run(list api.List, profile *Profile) (time.Duration, *lib.AverageInt64) {
	var mu sync.Mutex
	latency := &lib.AverageInt64{}

	perroutine := options.ops / options.routines
	start := time.Now()

	var g errgroup.Group
	for r := 0; r < options.routines; r++ {
		r := r
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(options.seed + int64(r)))
			for i := 0; i < perroutine; i++ {
				item := []byte(fmt.Sprintf("key%v", rnd.Intn(options.keyspan)))
				opstart := time.Now()
				switch profile.pick(rnd) {
				case opadd:
					list.Add(item)
				case opremove:
					list.Remove(item)
				case opcontains:
					list.Contains(item)
				}
				if i%latsample == 0 {
					ns := int64(time.Since(opstart))
					mu.Lock()
					latency.Add(ns)
					mu.Unlock()
				}
			}
			return nil
		})
	}
	g.Wait()
	return time.Since(start), latency
}

func report(list api.List, elapsed time.Duration, latency *lib.AverageInt64) {
	ops := int64(options.ops)
	throughput := float64(ops) / elapsed.Seconds()

	fmt.Printf("elapsed: %v\n", elapsed)
	fmt.Printf("throughput: %v ops/sec\n",
		humanize.Comma(int64(throughput)))
	fmt.Printf("latency: mean %v, max %v (sampled 1/%v)\n",
		time.Duration(latency.Mean()), time.Duration(latency.Max()),
		latsample)
	fmt.Printf("count: %v\n", humanize.Comma(list.Count()))
	for k, v := range list.Stats() {
		fmt.Printf("  %v: %v\n", k, v)
	}
	list.Validate()
	list.Log()
}
