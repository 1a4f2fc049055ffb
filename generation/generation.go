// Package generation drives the per-generation lifecycle: survival
// filtering, parent pool collection, grid reset, and repopulation by
// breeding or random fallback (§4.8).
package generation

import (
	"math/rand"

	"github.com/pelagic-labs/biotope/config"
	"github.com/pelagic-labs/biotope/gene"
	"github.com/pelagic-labs/biotope/mutation"
	"github.com/pelagic-labs/biotope/peeps"
)

// Stats summarises one completed generation for telemetry.
type Stats struct {
	Generation    int
	SurvivorCount int
	PoolEmpty     bool
}

// Advance runs the survival filter over the current population,
// collects the gene pool, resets the world, and repopulates it to
// cfg.Population, per §4.8. challenge selects the survival predicate.
func Advance(p *peeps.Peeps, cfg *config.Params, challenge Challenge, generationIndex int, rng *rand.Rand) Stats {
	pool := collectPool(p, cfg, challenge)

	p.Reset()

	for i := 0; i < cfg.Population; i++ {
		var genome gene.Genome
		switch {
		case len(pool) == 0:
			length := 1 + rng.Intn(cfg.MaxGenomeLength)
			genome = gene.RandomGenome(rng, length)
		case cfg.SexualReproduction:
			a := pool[rng.Intn(len(pool))]
			b := pool[rng.Intn(len(pool))]
			genome = mutation.Breed(a, b, mutationParams(cfg), rng)
		default:
			// Asexual reproduction: clone a single parent and apply the
			// same mutation operators breed() would, without crossover.
			parent := pool[rng.Intn(len(pool))].Clone()
			parent = mutation.InsertOrDelete(parent, mutationParams(cfg), rng)
			mutation.PointMutate(parent, mutationParams(cfg), rng)
			genome = parent
		}
		p.Spawn(genome)
	}

	return Stats{
		Generation:    generationIndex,
		SurvivorCount: len(pool),
		PoolEmpty:     len(pool) == 0,
	}
}

// collectPool applies the survival filter (§4.8 step 1) and returns
// the surviving agents' genomes (step 2). Agents failing the
// challenge are marked dead; they remain in p.Pop until p.Reset.
func collectPool(p *peeps.Peeps, cfg *config.Params, challenge Challenge) []gene.Genome {
	var pool []gene.Genome
	for i := 1; i < len(p.Pop); i++ {
		ind := p.Pop[i]
		if ind == nil || !ind.Alive {
			continue
		}
		if challenge.Survives(ind, cfg, cfg.SizeX, cfg.SizeY) {
			pool = append(pool, ind.Genome)
		} else {
			ind.Alive = false
		}
	}
	return pool
}

func mutationParams(cfg *config.Params) mutation.Params {
	return mutation.Params{
		PointMutationRate:         cfg.PointMutationRate,
		GeneInsertionDeletionRate: cfg.GeneInsertionDeletionRate,
		DeleteRatio:               cfg.DeleteRatio,
		MaxGenomeLength:           cfg.MaxGenomeLength,
	}
}
