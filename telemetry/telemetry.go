// Package telemetry records per-generation summary statistics (not
// part of the simulation core itself — a thin collaborator, same as
// the spec's view/config layers) and writes them to CSV, in the
// teacher's collector+output-manager style.
package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/pelagic-labs/biotope/generation"
	"github.com/pelagic-labs/biotope/individual"
)

// GenerationStats holds aggregated statistics for one generation
// boundary, written as one CSV row.
type GenerationStats struct {
	Generation    int     `csv:"generation"`
	SurvivorCount int     `csv:"survivors"`
	PoolEmpty     bool    `csv:"pool_empty"`
	MeanAge       float64 `csv:"mean_age"`
	P50Age        float64 `csv:"p50_age"`
	P90Age        float64 `csv:"p90_age"`
	MeanGenomeLen float64 `csv:"mean_genome_len"`
}

// Collect gathers GenerationStats from a population snapshot taken
// immediately before generation.Advance resets it, combined with the
// generation.Stats Advance returns. pop's slot 0 (the sentinel) is
// skipped automatically.
func Collect(pop []*individual.Individual, gs generation.Stats) GenerationStats {
	var ages []float64
	var lengths []float64
	for i := 1; i < len(pop); i++ {
		ind := pop[i]
		if ind == nil || !ind.Alive {
			continue
		}
		ages = append(ages, float64(ind.Age))
		lengths = append(lengths, float64(len(ind.Genome)))
	}

	out := GenerationStats{
		Generation:    gs.Generation,
		SurvivorCount: gs.SurvivorCount,
		PoolEmpty:     gs.PoolEmpty,
	}
	if len(ages) > 0 {
		sort.Float64s(ages)
		out.MeanAge = stat.Mean(ages, nil)
		out.P50Age = stat.Quantile(0.5, stat.Empirical, ages, nil)
		out.P90Age = stat.Quantile(0.9, stat.Empirical, ages, nil)
	}
	if len(lengths) > 0 {
		out.MeanGenomeLen = stat.Mean(lengths, nil)
	}
	return out
}

// Collector owns structured logging and the generation.csv writer for
// a simulation run.
type Collector struct {
	log    *slog.Logger
	dir    string
	file   *os.File
	header bool
}

// NewCollector opens generation.csv under dir (if non-empty; a blank
// dir disables file output, matching the teacher's
// NewOutputManager(dir string) convention) and wires a structured
// logger to stderr.
func NewCollector(dir string) (*Collector, error) {
	c := &Collector{
		log: slog.New(slog.NewTextHandler(os.Stderr, nil)),
		dir: dir,
	}
	if dir == "" {
		return c, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "generation.csv"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating generation.csv: %w", err)
	}
	c.file = f
	return c, nil
}

// Close releases the underlying CSV file, if one was opened.
func (c *Collector) Close() error {
	if c.file == nil {
		return nil
	}
	return c.file.Close()
}

// Record logs the generation's stats and appends a CSV row.
func (c *Collector) Record(gs GenerationStats) error {
	c.log.Info("generation complete",
		"generation", gs.Generation,
		"survivors", gs.SurvivorCount,
		"pool_empty", gs.PoolEmpty,
		"mean_age", gs.MeanAge,
		"mean_genome_len", gs.MeanGenomeLen,
	)

	if c.file == nil {
		return nil
	}
	records := []GenerationStats{gs}
	if !c.header {
		if err := gocsv.Marshal(records, c.file); err != nil {
			return fmt.Errorf("telemetry: writing generation.csv: %w", err)
		}
		c.header = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, c.file); err != nil {
		return fmt.Errorf("telemetry: writing generation.csv: %w", err)
	}
	return nil
}
