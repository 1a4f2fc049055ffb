// Package similarity implements genome distance/similarity metrics
// used by the GeneticSimFwd sensor and the Altruism challenge: Jaro-Winkler over
// genes-as-tokens, and two Hamming variants.
package similarity

import (
	"math/bits"

	"github.com/pelagic-labs/biotope/gene"
)

// JaroWinkler computes the Jaro-Winkler similarity of two genomes,
// treating each genome as a sequence of tokens (whole 32-bit genes
// compared for equality), the same way a string similarity metric
// treats a sequence of characters. Returns a value in [0,1], 1 meaning
// identical.
func JaroWinkler(a, b gene.Genome) float64 {
	j := jaro(a, b)
	if j == 0 {
		return 0
	}

	// Common-prefix bonus, capped at 4 tokens, scaling factor 0.1
	// (the standard Winkler parameters).
	const maxPrefix = 4
	const scaling = 0.1
	prefix := 0
	for prefix < len(a) && prefix < len(b) && prefix < maxPrefix && a[prefix] == b[prefix] {
		prefix++
	}
	return j + float64(prefix)*scaling*(1-j)
}

func jaro(a, b gene.Genome) float64 {
	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	matchDist := maxInt(la, lb)/2 - 1
	if matchDist < 0 {
		matchDist = 0
	}

	aMatched := make([]bool, la)
	bMatched := make([]bool, lb)

	matches := 0
	for i := 0; i < la; i++ {
		start := maxInt(0, i-matchDist)
		end := minInt(lb-1, i+matchDist)
		for j := start; j <= end; j++ {
			if bMatched[j] || a[i] != b[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := 0; i < la; i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}
	t := float64(transpositions) / 2

	m := float64(matches)
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

// HammingByGene returns the fraction of equal positions between two
// equal-length genomes. Panics if lengths differ (an invariant
// violation per spec.md §7).
func HammingByGene(a, b gene.Genome) float64 {
	if len(a) != len(b) {
		panic("similarity: HammingByGene requires equal-length genomes")
	}
	if len(a) == 0 {
		return 1
	}
	equal := 0
	for i := range a {
		if a[i] == b[i] {
			equal++
		}
	}
	return float64(equal) / float64(len(a))
}

// HammingByBit returns 1 - min(1, 2*sum(popcount(a_i XOR b_i)) /
// total_bits) over equal-length genomes. Panics on length mismatch.
func HammingByBit(a, b gene.Genome) float64 {
	if len(a) != len(b) {
		panic("similarity: HammingByBit requires equal-length genomes")
	}
	if len(a) == 0 {
		return 1
	}
	var diffBits int
	for i := range a {
		diffBits += bits.OnesCount16(a[i].Encoding ^ b[i].Encoding)
		diffBits += bits.OnesCount16(uint16(a[i].Weight) ^ uint16(b[i].Weight))
	}
	totalBits := len(a) * 32
	ratio := 2 * float64(diffBits) / float64(totalBits)
	if ratio > 1 {
		ratio = 1
	}
	return 1 - ratio
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
