package main

import "fmt"
import "math/rand"
import "os"

import "gopkg.in/yaml.v3"

type listop int

const (
	opadd listop = iota
	opremove
	opcontains
)

// Profile fixes the operation mix for a run. Ratios are weights,
// they need not add up to 1.
type Profile struct {
	Scenario string  `yaml:"scenario"`
	Adds     float64 `yaml:"adds"`
	Removes  float64 `yaml:"removes"`
	Contains float64 `yaml:"contains"`
}

// builtin scenarios.
var scenarios = map[string]*Profile{
	"low":   {Scenario: "low", Adds: 0.05, Removes: 0.05, Contains: 0.9},
	"high":  {Scenario: "high", Adds: 0.4, Removes: 0.4, Contains: 0.2},
	"burst": {Scenario: "burst", Adds: 0.5, Removes: 0.5, Contains: 0},
}

// loadprofile resolve the scenario preset, then overlay the yaml
// profile file if one is given.
func loadprofile(scenario, file string) (*Profile, error) {
	preset, ok := scenarios[scenario]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", scenario)
	}
	profile := *preset
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, err
		}
	}
	if profile.Adds+profile.Removes+profile.Contains <= 0 {
		return nil, fmt.Errorf("profile %q has no operations", profile.Scenario)
	}
	return &profile, nil
}

func (profile *Profile) pick(rnd *rand.Rand) listop {
	total := profile.Adds + profile.Removes + profile.Contains
	x := rnd.Float64() * total
	if x < profile.Adds {
		return opadd
	} else if x < profile.Adds+profile.Removes {
		return opremove
	}
	return opcontains
}
