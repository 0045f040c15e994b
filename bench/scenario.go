// Package bench drives list workloads described by declarative scenarios,
// measuring time with the stopwatch and memory through allocator wrappers.
// Scenarios come from YAML files or the built-in defaults.
package bench

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/runtime-kit/errors"
)

const (
	opLoad     = errors.Op("bench.load")
	opScenario = errors.Op("bench.scenario")
	opRun      = errors.Op("bench.run")
)

// Scenario describes one workload: how many operations to run, the PRNG
// seed that makes the stream reproducible, and the operation mix.
type Scenario struct {
	Name string `yaml:"name"`
	Ops  int64  `yaml:"ops"`
	Seed uint64 `yaml:"seed"`

	// InitialCapacity presizes the list before the run.
	InitialCapacity int64 `yaml:"initial_capacity"`

	// Budget caps the bytes the workload may hold at once. Zero means
	// unlimited. Mutations refused by the budget are counted, not fatal.
	Budget int64 `yaml:"budget"`

	Mix Mix `yaml:"mix"`
}

// Mix holds the relative weights of the operations in a scenario. Only the
// ratios matter. Operations that need elements fall back to an append while
// the list is empty.
type Mix struct {
	Add         int64 `yaml:"add"`
	AddRange    int64 `yaml:"add_range"`
	InsertAt    int64 `yaml:"insert_at"`
	InsertRange int64 `yaml:"insert_range"`
	RemoveAt    int64 `yaml:"remove_at"`
	RemoveRange int64 `yaml:"remove_range"`
	Clear       int64 `yaml:"clear"`
	Get         int64 `yaml:"get"`
	Set         int64 `yaml:"set"`
}

type action int

const (
	actionAdd action = iota
	actionAddRange
	actionInsertAt
	actionInsertRange
	actionRemoveAt
	actionRemoveRange
	actionClear
	actionGet
	actionSet
)

type mixEntry struct {
	weight int64
	act    action
}

func (m Mix) entries() ([]mixEntry, int64) {
	all := []mixEntry{
		{m.Add, actionAdd},
		{m.AddRange, actionAddRange},
		{m.InsertAt, actionInsertAt},
		{m.InsertRange, actionInsertRange},
		{m.RemoveAt, actionRemoveAt},
		{m.RemoveRange, actionRemoveRange},
		{m.Clear, actionClear},
		{m.Get, actionGet},
		{m.Set, actionSet},
	}
	var live []mixEntry
	var total int64
	for _, e := range all {
		if e.weight > 0 {
			live = append(live, e)
			total += e.weight
		}
	}
	return live, total
}

// Validate checks the scenario for values the runner cannot work with.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return errors.InvalidArgument(opScenario, nil, "scenario name must not be empty")
	}
	if s.Ops <= 0 {
		return errors.InvalidArgument(opScenario, s.Ops, "ops must be positive")
	}
	if s.InitialCapacity < 0 {
		return errors.NegativeValue(opScenario, "initial capacity", s.InitialCapacity)
	}
	if s.Budget < 0 {
		return errors.NegativeValue(opScenario, "budget", s.Budget)
	}
	for _, w := range []int64{
		s.Mix.Add, s.Mix.AddRange, s.Mix.InsertAt, s.Mix.InsertRange,
		s.Mix.RemoveAt, s.Mix.RemoveRange, s.Mix.Clear, s.Mix.Get, s.Mix.Set,
	} {
		if w < 0 {
			return errors.NegativeValue(opScenario, "mix weight", w)
		}
	}
	if _, total := s.Mix.entries(); total == 0 {
		return errors.InvalidArgument(opScenario, s.Name, "mix must enable at least one operation")
	}
	return nil
}

// scenarioFile is the YAML document layout.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadFile reads and validates scenarios from a YAML file.
func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ReadFailed(opLoad, err)
	}
	return Parse(data)
}

// Parse decodes and validates scenarios from YAML text.
func Parse(data []byte) ([]Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(opLoad, errors.KindInvalidArgument, err, "parsing scenario file")
	}
	if len(f.Scenarios) == 0 {
		return nil, errors.InvalidArgument(opLoad, nil, "no scenarios defined")
	}
	for i := range f.Scenarios {
		if err := f.Scenarios[i].Validate(); err != nil {
			return nil, err
		}
	}
	return f.Scenarios, nil
}

// DefaultScenarios returns the built-in workloads: sequential appends,
// mixed churn at random positions, and an append-heavy run against a tight
// byte budget.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name: "append",
			Ops:  50000,
			Seed: 1,
			Mix:  Mix{Add: 8, AddRange: 2},
		},
		{
			Name:            "churn",
			Ops:             50000,
			Seed:            2,
			InitialCapacity: 256,
			Mix: Mix{
				Add:         3,
				InsertAt:    2,
				InsertRange: 1,
				RemoveAt:    2,
				RemoveRange: 1,
				Get:         2,
				Set:         1,
			},
		},
		{
			Name:   "bounded",
			Ops:    50000,
			Seed:   3,
			Budget: 64 * 1024,
			Mix:    Mix{Add: 6, AddRange: 2, RemoveAt: 1, Clear: 1},
		},
	}
}
