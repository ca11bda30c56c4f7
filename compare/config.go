// config.go — TOML benchmark scenarios: topology, request, and solver roster.
package compare

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/dijkstra"
	"github.com/katalvlaran/qospath/fitness"
	"github.com/katalvlaran/qospath/ga"
	"github.com/katalvlaran/qospath/pso"
	"github.com/katalvlaran/qospath/qlearn"
	"github.com/katalvlaran/qospath/route"
	"github.com/katalvlaran/qospath/sa"
	"github.com/katalvlaran/qospath/topology"
)

var (
	// ErrUnknownSolver means the config names a solver this package cannot build.
	ErrUnknownSolver = errors.New("compare: unknown solver name")

	// ErrUnknownConfigKey means a scenario file carries keys outside the
	// Config schema, typically a top-level key mis-sectioned under a table.
	ErrUnknownConfigKey = errors.New("compare: unknown or misplaced config key")
)

// AllSolverNames is the roster used when a config lists no solvers.
var AllSolverNames = []string{
	dijkstra.SolverName,
	qlearn.SolverName,
	pso.SolverName,
	ga.SolverName,
	sa.SolverName,
}

// Config is one benchmark scenario as loaded from TOML. Omitted solver
// parameters keep each package's defaults; a zero numeric field means
// "use the default", so explicit zeroes cannot be expressed (none of the
// tunables accept zero anyway).
type Config struct {
	Topology TopologyConfig `toml:"topology"`
	Request  RequestConfig  `toml:"request"`
	Weights  WeightsConfig  `toml:"weights"`
	Solvers  []string       `toml:"solvers"`
	QLearn   QLearnConfig   `toml:"qlearn"`
	PSO      PSOConfig      `toml:"pso"`
	GA       GAConfig       `toml:"ga"`
	SA       SAConfig       `toml:"sa"`
}

// TopologyConfig parameterizes topology.Generate.
type TopologyConfig struct {
	Nodes           int     `toml:"nodes"`
	EdgeProbability float64 `toml:"edge_probability"`
	Seed            int64   `toml:"seed"`
}

// RequestConfig parameterizes the routing demand.
type RequestConfig struct {
	Source      int     `toml:"source"`
	Destination int     `toml:"destination"`
	DemandMbps  float64 `toml:"demand_mbps"`
}

// WeightsConfig is the raw weight vector before normalization.
type WeightsConfig struct {
	Delay       float64 `toml:"delay"`
	Reliability float64 `toml:"reliability"`
	Resource    float64 `toml:"resource"`
}

// QLearnConfig overrides qlearn defaults where non-zero.
type QLearnConfig struct {
	Alpha        float64 `toml:"alpha"`
	Gamma        float64 `toml:"gamma"`
	EpsilonStart float64 `toml:"epsilon_start"`
	EpsilonEnd   float64 `toml:"epsilon_end"`
	Episodes     int     `toml:"episodes"`
	MaxSteps     int     `toml:"max_steps"`
	Seed         int64   `toml:"seed"`
}

// PSOConfig overrides pso defaults where non-zero.
type PSOConfig struct {
	SwarmSize  int     `toml:"swarm_size"`
	Iterations int     `toml:"iterations"`
	W          float64 `toml:"inertia"`
	C1         float64 `toml:"cognitive"`
	C2         float64 `toml:"social"`
	Seed       int64   `toml:"seed"`
}

// GAConfig overrides ga defaults where non-zero.
type GAConfig struct {
	Population    int     `toml:"population"`
	Generations   int     `toml:"generations"`
	CrossoverRate float64 `toml:"crossover_rate"`
	MutationRate  float64 `toml:"mutation_rate"`
	Elite         int     `toml:"elite"`
	TournamentK   int     `toml:"tournament_k"`
	Seed          int64   `toml:"seed"`
}

// SAConfig overrides sa defaults where non-zero.
type SAConfig struct {
	InitialTemp float64 `toml:"initial_temp"`
	CoolingRate float64 `toml:"cooling_rate"`
	Iterations  int     `toml:"iterations"`
	Seed        int64   `toml:"seed"`
}

// LoadConfig decodes one scenario from a TOML file. Decoding is strict:
// keys the Config schema does not know (typos, or top-level keys written
// below a table header and thereby swallowed into that table) reject the
// whole file instead of being half-applied.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("compare: load %s: %w", path, err)
	}
	if stray := md.Undecoded(); len(stray) > 0 {
		return Config{}, fmt.Errorf("compare: load %s: keys %v: %w", path, stray, ErrUnknownConfigKey)
	}

	return cfg, nil
}

// BuildGraph generates the scenario topology.
func (c Config) BuildGraph() (*core.Graph, topology.Layout, error) {
	return topology.Generate(c.Topology.Nodes, c.Topology.EdgeProbability,
		topology.WithSeed(c.Topology.Seed))
}

// BuildRequest assembles the routing demand. Weight validity is checked by
// the solvers through route.Request.Validate.
func (c Config) BuildRequest() route.Request {
	return route.Request{
		Source:      c.Request.Source,
		Destination: c.Request.Destination,
		DemandMbps:  c.Request.DemandMbps,
		Weights: fitness.Weights{
			Delay:       c.Weights.Delay,
			Reliability: c.Weights.Reliability,
			Resource:    c.Weights.Resource,
		},
	}
}

// BuildSolvers constructs the configured roster in config order. An empty
// solver list selects AllSolverNames.
func (c Config) BuildSolvers() ([]route.Solver, error) {
	names := c.Solvers
	if len(names) == 0 {
		names = AllSolverNames
	}

	out := make([]route.Solver, 0, len(names))
	for _, name := range names {
		s, err := c.buildSolver(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func (c Config) buildSolver(name string) (route.Solver, error) {
	switch name {
	case dijkstra.SolverName:
		return dijkstra.New(), nil
	case qlearn.SolverName:
		return qlearn.New(c.qlearnOptions())
	case pso.SolverName:
		return pso.New(c.psoOptions())
	case ga.SolverName:
		return ga.New(c.gaOptions())
	case sa.SolverName:
		return sa.New(c.saOptions())
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSolver)
	}
}

func (c Config) qlearnOptions() qlearn.Options {
	o := qlearn.DefaultOptions()
	overrideFloat(&o.Alpha, c.QLearn.Alpha)
	overrideFloat(&o.Gamma, c.QLearn.Gamma)
	overrideFloat(&o.EpsilonStart, c.QLearn.EpsilonStart)
	overrideFloat(&o.EpsilonEnd, c.QLearn.EpsilonEnd)
	overrideInt(&o.Episodes, c.QLearn.Episodes)
	overrideInt(&o.MaxSteps, c.QLearn.MaxSteps)
	overrideSeed(&o.Seed, c.QLearn.Seed)

	return o
}

func (c Config) psoOptions() pso.Options {
	o := pso.DefaultOptions()
	overrideInt(&o.SwarmSize, c.PSO.SwarmSize)
	overrideInt(&o.Iterations, c.PSO.Iterations)
	overrideFloat(&o.W, c.PSO.W)
	overrideFloat(&o.C1, c.PSO.C1)
	overrideFloat(&o.C2, c.PSO.C2)
	overrideSeed(&o.Seed, c.PSO.Seed)

	return o
}

func (c Config) gaOptions() ga.Options {
	o := ga.DefaultOptions()
	overrideInt(&o.Population, c.GA.Population)
	overrideInt(&o.Generations, c.GA.Generations)
	overrideFloat(&o.CrossoverRate, c.GA.CrossoverRate)
	overrideFloat(&o.MutationRate, c.GA.MutationRate)
	overrideInt(&o.Elite, c.GA.Elite)
	overrideInt(&o.TournamentK, c.GA.TournamentK)
	overrideSeed(&o.Seed, c.GA.Seed)

	return o
}

func (c Config) saOptions() sa.Options {
	o := sa.DefaultOptions()
	overrideFloat(&o.InitialTemp, c.SA.InitialTemp)
	overrideFloat(&o.CoolingRate, c.SA.CoolingRate)
	overrideInt(&o.Iterations, c.SA.Iterations)
	overrideSeed(&o.Seed, c.SA.Seed)

	return o
}

func overrideFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func overrideInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func overrideSeed(dst *int64, v int64) {
	if v != 0 {
		*dst = v
	}
}
