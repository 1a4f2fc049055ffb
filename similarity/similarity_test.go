package similarity

import (
	"math/rand"
	"testing"

	"github.com/pelagic-labs/biotope/gene"
)

func TestJaroWinklerIdentical(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := gene.RandomGenome(rng, 6)
	if got := JaroWinkler(g, g.Clone()); got != 1 {
		t.Fatalf("JaroWinkler(identical) = %v, want 1", got)
	}
}

func TestJaroWinklerEmptyBoth(t *testing.T) {
	if got := JaroWinkler(nil, nil); got != 1 {
		t.Fatalf("JaroWinkler(nil,nil) = %v, want 1", got)
	}
}

func TestJaroWinklerOneEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := gene.RandomGenome(rng, 4)
	if got := JaroWinkler(g, nil); got != 0 {
		t.Fatalf("JaroWinkler(g,nil) = %v, want 0", got)
	}
}

func TestHammingByGeneIdentical(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := gene.RandomGenome(rng, 5)
	if got := HammingByGene(g, g.Clone()); got != 1 {
		t.Fatalf("HammingByGene(identical) = %v, want 1", got)
	}
}

func TestHammingByGenePanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	HammingByGene(gene.Genome{gene.New(false, 0, false, 0, 0)}, gene.Genome{})
}

func TestHammingByBitIdenticalIsOne(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g := gene.RandomGenome(rng, 5)
	if got := HammingByBit(g, g.Clone()); got != 1 {
		t.Fatalf("HammingByBit(identical) = %v, want 1", got)
	}
}

func TestHammingByBitFullyInvertedIsZero(t *testing.T) {
	a := gene.Genome{gene.New(false, 0, false, 0, 0)}
	b := gene.Genome{{Encoding: ^a[0].Encoding, Weight: ^a[0].Weight}}
	if got := HammingByBit(a, b); got != 0 {
		t.Fatalf("HammingByBit(fully inverted) = %v, want 0", got)
	}
}

func TestHammingByBitPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	HammingByBit(gene.Genome{gene.New(false, 0, false, 0, 0)}, gene.Genome{})
}
