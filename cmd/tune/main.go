// Command tune searches a handful of simulation parameters for higher
// challenge-survival rate using CMA-ES, adapted from the teacher's own
// optimizer entrypoint.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"gonum.org/v1/gonum/optimize"

	"github.com/pelagic-labs/biotope/config"
	"github.com/pelagic-labs/biotope/gene"
	"github.com/pelagic-labs/biotope/generation"
	"github.com/pelagic-labs/biotope/peeps"
)

var (
	configPath = flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxEvals   = flag.Int("max-evals", 50, "Maximum number of CMA-ES evaluations")
	genCount   = flag.Int("generations", 5, "Generations simulated per evaluation")
	seeds      = flag.Int("seeds", 3, "Number of RNG seeds averaged per evaluation")
)

// paramSpec names one tunable config field and the domain CMA-ES
// searches over.
type paramSpec struct {
	name string
	min  float64
	max  float64
	get  func(*config.Params) float64
	set  func(*config.Params, float64)
}

var specs = []paramSpec{
	{
		name: "point_mutation_rate", min: 0, max: 0.01,
		get: func(p *config.Params) float64 { return p.PointMutationRate },
		set: func(p *config.Params, v float64) { p.PointMutationRate = v },
	},
	{
		name: "population_sensor_radius", min: 1, max: 10,
		get: func(p *config.Params) float64 { return p.PopulationSensorRadius },
		set: func(p *config.Params, v float64) { p.PopulationSensorRadius = v },
	},
	{
		name: "responsiveness_curve_k_factor", min: 0.5, max: 6,
		get: func(p *config.Params) float64 { return p.ResponsivenessCurveKFactor },
		set: func(p *config.Params, v float64) { p.ResponsivenessCurveKFactor = v },
	},
}

func main() {
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("tune: %v", err)
	}
	base := *config.Cfg()

	initX := make([]float64, len(specs))
	for i, s := range specs {
		initX[i] = s.get(&base)
	}

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 7)
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -evaluate(base, x, evalSeeds)
		},
	}

	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   4 + 3*len(specs),
	}
	settings := &optimize.Settings{FuncEvaluations: *maxEvals}

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Fatalf("tune: optimize: %v", err)
	}

	fmt.Printf("best survival rate: %.4f\n", -result.F)
	for i, s := range specs {
		fmt.Printf("  %s = %.6f\n", s.name, clamp(result.X[i], s.min, s.max))
	}
}

// evaluate runs genCount generations under the candidate parameters,
// averaged across evalSeeds, and returns the mean survival rate.
func evaluate(base config.Params, x []float64, evalSeeds []int64) float64 {
	cfg := base
	for i, s := range specs {
		s.set(&cfg, clamp(x[i], s.min, s.max))
	}

	var total float64
	for _, seed := range evalSeeds {
		total += runOnce(&cfg, seed)
	}
	return total / float64(len(evalSeeds))
}

// runOnce simulates genCount generations and returns the final
// generation's survival rate.
func runOnce(cfg *config.Params, seed int64) float64 {
	rng := rand.New(rand.NewSource(seed))
	p := peeps.New(cfg, rng)
	for i := 0; i < cfg.Population; i++ {
		length := 1 + rng.Intn(cfg.MaxGenomeLength)
		p.Spawn(gene.RandomGenome(rng, length))
	}

	var lastSurvivors int
	for gen := 0; gen < *genCount; gen++ {
		for step := 0; step < cfg.StepsPerGeneration; step++ {
			p.RunStep()
		}
		challenge := generation.ByName(cfg.Challenge, p.Pop)
		stats := generation.Advance(p, cfg, challenge, gen, rng)
		lastSurvivors = stats.SurvivorCount
	}
	return float64(lastSurvivors) / float64(cfg.Population)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
