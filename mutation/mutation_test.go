package mutation

import (
	"math/rand"
	"testing"

	"github.com/pelagic-labs/biotope/gene"
)

func TestPointMutateProbabilityZeroIsNoop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := gene.RandomGenome(rng, 5)
	before := g.Clone()

	PointMutate(g, Params{PointMutationRate: 0}, rng)

	for i := range g {
		if g[i] != before[i] {
			t.Fatalf("gene %d changed with rate 0: %+v -> %+v", i, before[i], g[i])
		}
	}
}

func TestPointMutateProbabilityOneFlipsEveryGene(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := gene.RandomGenome(rng, 5)
	before := g.Clone()

	PointMutate(g, Params{PointMutationRate: 1}, rng)

	for i := range g {
		if g[i].Encoding == before[i].Encoding {
			t.Fatalf("gene %d encoding unchanged with rate 1", i)
		}
	}
}

func TestInsertOrDeleteNeverShrinksBelowOne(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := gene.Genome{gene.Random(rng)}
	params := Params{GeneInsertionDeletionRate: 1, DeleteRatio: 1, MaxGenomeLength: 10}

	for i := 0; i < 50; i++ {
		g = InsertOrDelete(g, params, rng)
		if len(g) < 1 {
			t.Fatalf("genome shrank below 1 gene")
		}
	}
}

func TestInsertOrDeleteNeverExceedsMax(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g := gene.RandomGenome(rng, 10)
	params := Params{GeneInsertionDeletionRate: 1, DeleteRatio: 0, MaxGenomeLength: 10}

	g = InsertOrDelete(g, params, rng)
	if len(g) > 10 {
		t.Fatalf("genome length %d exceeds max_genome_length=10", len(g))
	}
}

func TestBreedSpliceLengthMatchesLongerParent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := gene.RandomGenome(rng, 10)
	b := gene.RandomGenome(rng, 4)
	// Isolate crossover: no insertion/deletion, no point mutation.
	params := Params{MaxGenomeLength: 20}

	for i := 0; i < 20; i++ {
		child := Breed(a, b, params, rng)
		if len(child) != len(a) {
			t.Fatalf("child length %d, want %d (length of the longer parent)", len(child), len(a))
		}
	}
}

func TestBreedArgumentOrderDoesNotMatter(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	a := gene.RandomGenome(rng, 8)
	b := gene.RandomGenome(rng, 3)
	params := Params{MaxGenomeLength: 20}

	// Whichever argument position the longer genome occupies, the
	// splice always keeps its length (a is longer than b here).
	child1 := Breed(a, b, params, rng)
	child2 := Breed(b, a, params, rng)
	if len(child1) != len(a) || len(child2) != len(a) {
		t.Fatalf("expected both children to have length %d regardless of argument order, got %d and %d", len(a), len(child1), len(child2))
	}
}
