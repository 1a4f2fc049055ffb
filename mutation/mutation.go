// Package mutation implements point mutation, insertion/deletion, and
// crossover breeding of genomes (§4.9).
package mutation

import (
	"math/rand"

	"github.com/pelagic-labs/biotope/gene"
)

// Params is the subset of simulation configuration mutation reads.
type Params struct {
	PointMutationRate         float64
	GeneInsertionDeletionRate float64
	DeleteRatio               float64
	MaxGenomeLength           int
}

// PointMutate flips one uniformly chosen bit of the 16-bit encoding
// field of each gene, independently with probability
// params.PointMutationRate.
func PointMutate(g gene.Genome, params Params, rng *rand.Rand) {
	for i := range g {
		if rng.Float64() < params.PointMutationRate {
			bit := rng.Intn(16)
			g[i].Encoding ^= 1 << uint(bit)
		}
	}
}

// InsertOrDelete applies the insertion/deletion operator: with
// probability params.GeneInsertionDeletionRate, either deletes one
// uniformly chosen gene (if |g|>1) with sub-probability
// params.DeleteRatio, or appends a random gene (if |g|<max_genome_length).
func InsertOrDelete(g gene.Genome, params Params, rng *rand.Rand) gene.Genome {
	if rng.Float64() >= params.GeneInsertionDeletionRate {
		return g
	}
	if rng.Float64() < params.DeleteRatio {
		if len(g) > 1 {
			i := rng.Intn(len(g))
			g = append(g[:i], g[i+1:]...)
		}
		return g
	}
	if len(g) < params.MaxGenomeLength {
		g = append(g, gene.Random(rng))
	}
	return g
}

// Breed produces a child genome from two parents via crossover then
// insertion/deletion then point mutation (§4.9). a and b may be given
// in either order; the longer is always treated as parent A.
func Breed(a, b gene.Genome, params Params, rng *rand.Rand) gene.Genome {
	long, short := a, b
	if len(short) > len(long) {
		long, short = short, long
	}

	var child gene.Genome
	if len(short) == 0 {
		child = long.Clone()
	} else {
		c := rng.Intn(len(short))
		child = make(gene.Genome, 0, len(long))
		child = append(child, short[:c]...)
		child = append(child, long[c:]...)
	}

	child = InsertOrDelete(child, params, rng)
	PointMutate(child, params, rng)
	return child
}
