// Package config loads and validates simulation parameters from YAML,
// following the teacher's embed-defaults-then-merge-user-file pattern.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Params holds every recognised configuration key from spec.md §6.
type Params struct {
	SizeX                      int     `yaml:"size_x"`
	SizeY                      int     `yaml:"size_y"`
	Population                 int     `yaml:"population"`
	StepsPerGeneration         int     `yaml:"steps_per_generation"`
	MaxGenerations             int     `yaml:"max_generations"` // 0 = unlimited
	NumThreads                 int     `yaml:"num_threads"`
	SignalLayers               int     `yaml:"signal_layers"`
	MaxGenomeLength            int     `yaml:"max_genome_length"`
	MaxNumberNeurons           int     `yaml:"max_number_neurons"`
	PointMutationRate          float64 `yaml:"point_mutation_rate"`
	GeneInsertionDeletionRate  float64 `yaml:"gene_insertion_deletion_rate"`
	DeleteRatio                float64 `yaml:"delete_ratio"`
	SexualReproduction         bool    `yaml:"sexual_reproduction"`
	KillEnabled                bool    `yaml:"kill_enabled"`
	ChooseParentsByFitness     bool    `yaml:"choose_parents_by_fitness"`
	PopulationSensorRadius     float64 `yaml:"population_sensor_radius"`
	Responsiveness             float64 `yaml:"responsiveness"`
	ResponsivenessCurveKFactor float64 `yaml:"responsiveness_curve_k_factor"`
	LongProbeDistance          int     `yaml:"long_probe_distance"`
	ValenceSaturationMagnitude float64 `yaml:"valence_saturation_magnitude"`
	Challenge                  string  `yaml:"challenge"`
	ChallengeRadius            int     `yaml:"challenge_radius"`
}

// ValidationError reports an out-of-range or unparseable configuration
// value, per spec.md §7's "Configuration error" class.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

var global *Params

// Init loads configuration from path (embedded defaults if empty),
// validates it, and stores it as the process-global configuration.
func Init(path string) error {
	p, err := Load(path)
	if err != nil {
		return err
	}
	global = p
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Params {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults, and validates the result.
func Load(path string) (*Params, error) {
	p := &Params{}
	if err := yaml.Unmarshal(defaultsYAML, p); err != nil {
		return nil, fmt.Errorf("config: parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("config: parsing config file: %w", err)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the parameters listed below for being in-range, per
// spec.md §7's configuration-error policy. max_generations,
// num_threads, signal_layers, responsiveness_curve_k_factor,
// valence_saturation_magnitude, challenge and challenge_radius are not
// checked.
func (p *Params) Validate() error {
	switch {
	case p.SizeX <= 0:
		return &ValidationError{"size_x", "must be positive"}
	case p.SizeY <= 0:
		return &ValidationError{"size_y", "must be positive"}
	case p.Population <= 0:
		return &ValidationError{"population", "must be positive"}
	case p.Population >= int(0.9*float64(p.SizeX*p.SizeY)):
		return &ValidationError{"population", "must be < 0.9 * size_x * size_y to guarantee placement liveness"}
	case p.StepsPerGeneration <= 0:
		return &ValidationError{"steps_per_generation", "must be positive"}
	case p.MaxGenomeLength <= 0:
		return &ValidationError{"max_genome_length", "must be positive"}
	case p.MaxNumberNeurons <= 0:
		return &ValidationError{"max_number_neurons", "must be positive"}
	case p.PointMutationRate < 0 || p.PointMutationRate > 1:
		return &ValidationError{"point_mutation_rate", "must be in [0,1]"}
	case p.GeneInsertionDeletionRate < 0 || p.GeneInsertionDeletionRate > 1:
		return &ValidationError{"gene_insertion_deletion_rate", "must be in [0,1]"}
	case p.DeleteRatio < 0 || p.DeleteRatio > 1:
		return &ValidationError{"delete_ratio", "must be in [0,1]"}
	case p.PopulationSensorRadius <= 0:
		return &ValidationError{"population_sensor_radius", "must be positive"}
	case p.Responsiveness < 0 || p.Responsiveness > 1:
		return &ValidationError{"responsiveness", "must be in [0,1]"}
	case p.LongProbeDistance <= 0:
		return &ValidationError{"long_probe_distance", "must be positive"}
	}
	return nil
}
