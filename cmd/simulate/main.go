// Command simulate runs the evolutionary simulation core headless or
// with a live raylib viewer.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/pelagic-labs/biotope/config"
	"github.com/pelagic-labs/biotope/gene"
	"github.com/pelagic-labs/biotope/generation"
	"github.com/pelagic-labs/biotope/individual"
	"github.com/pelagic-labs/biotope/peeps"
	"github.com/pelagic-labs/biotope/telemetry"
	"github.com/pelagic-labs/biotope/view"
)

var (
	configPath  = flag.String("config", "", "Config YAML file (empty = use defaults)")
	generations = flag.Int("generations", 0, "Override max_generations (0 = use config value)")
	steps       = flag.Int("steps", 0, "Override steps_per_generation (0 = use config value)")
	outputDir   = flag.String("output", "", "Directory for generation.csv telemetry (empty = none)")
	useView     = flag.Bool("view", false, "Launch the raylib viewer instead of running headless")
	seed        = flag.Int64("seed", 1, "RNG seed")
)

func main() {
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("simulate: %v", err)
	}
	cfg := config.Cfg()
	if *generations > 0 {
		cfg.MaxGenerations = *generations
	}
	if *steps > 0 {
		cfg.StepsPerGeneration = *steps
	}

	rng := rand.New(rand.NewSource(*seed))
	p := peeps.New(cfg, rng)
	bootstrap(p, cfg, rng)

	collector, err := telemetry.NewCollector(*outputDir)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
	defer collector.Close()

	var v *view.View
	if *useView {
		v = view.New(cfg.SizeX, cfg.SizeY, 6)
		defer v.Close()
	}

	for gen := 0; cfg.MaxGenerations == 0 || gen < cfg.MaxGenerations; gen++ {
		if v != nil && v.ShouldClose() {
			break
		}
		runGeneration(p, cfg, v, gen)

		snapshot := append([]*individual.Individual(nil), p.Pop...)
		challenge := generation.ByName(cfg.Challenge, p.Pop)
		stats := generation.Advance(p, cfg, challenge, gen, rng)

		gs := telemetry.Collect(snapshot, stats)
		if err := collector.Record(gs); err != nil {
			log.Printf("simulate: telemetry: %v", err)
		}
	}
}

// bootstrap populates the initial generation with random genomes
// (there is no prior parent pool to breed from).
func bootstrap(p *peeps.Peeps, cfg *config.Params, rng *rand.Rand) {
	for i := 0; i < cfg.Population; i++ {
		length := 1 + rng.Intn(cfg.MaxGenomeLength)
		p.Spawn(gene.RandomGenome(rng, length))
	}
}

// runGeneration advances one generation's worth of steps, honoring
// the viewer's pause/step controls when present.
func runGeneration(p *peeps.Peeps, cfg *config.Params, v *view.View, gen int) {
	for step := 0; step < cfg.StepsPerGeneration; step++ {
		if v == nil {
			p.RunStep()
			continue
		}

		v.PollInput()
		for v.Paused && !v.Step && !v.ShouldClose() {
			v.Draw(p, gen)
			v.PollInput()
		}
		p.RunStep()
		v.Draw(p, gen)
	}
}
