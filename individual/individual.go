// Package individual defines the per-agent state Peeps owns: identity,
// position, brain, and the counters actions mutate in place.
package individual

import (
	"github.com/pelagic-labs/biotope/actions"
	"github.com/pelagic-labs/biotope/gene"
	"github.com/pelagic-labs/biotope/geometry"
	"github.com/pelagic-labs/biotope/sensors"
	"github.com/pelagic-labs/biotope/wiring"
)

// Individual is one simulated organism. Its identity is its fixed
// 1-based index into the population array; slot 0 is the sentinel and
// is never a live Individual.
type Individual struct {
	Alive             bool
	IndexNum          int
	Loc               geometry.Coord
	BirthLocation     geometry.Coord
	Age               int
	Responsiveness    float64
	OscillationPeriod int
	LongProbeDistance int
	LastDir           geometry.Dir
	ChallengeBits     uint32

	Genome gene.Genome
	Brain  wiring.NeuralNet
}

// New creates a freshly born Individual at location loc, wiring a
// brain from genome. index is the agent's fixed 1-based slot.
// defaultLongProbeDistance seeds long_probe_distance before any
// SetLongProbeDistance action has run. responsiveness seeds the
// agent's initial responsiveness, per spec.md §6's `responsiveness`
// config key.
func New(index int, loc geometry.Coord, genome gene.Genome, maxNeurons, defaultLongProbeDistance int, responsiveness float64) *Individual {
	renumbered := gene.Renumber(genome, maxNeurons, sensors.Count, actions.Count)
	return &Individual{
		Alive:             true,
		IndexNum:          index,
		Loc:               loc,
		BirthLocation:     loc,
		Responsiveness:    responsiveness,
		OscillationPeriod: 34,
		LongProbeDistance: defaultLongProbeDistance,
		LastDir:           geometry.Center,
		Genome:            genome,
		Brain:             wiring.Wire(renumbered, maxNeurons),
	}
}

// Index returns the agent's fixed population slot, satisfying
// actions.Agent.
func (ind *Individual) Index() int { return ind.IndexNum }

// Location satisfies actions.Agent.
func (ind *Individual) Location() geometry.Coord { return ind.Loc }

// LastMoveDirection satisfies actions.Agent.
func (ind *Individual) LastMoveDirection() geometry.Dir { return ind.LastDir }

// SetOscillatorPeriod satisfies actions.Agent: installs a new
// oscillation period (§4.5).
func (ind *Individual) SetOscillatorPeriod(period int) {
	ind.OscillationPeriod = period
}

// AddLongProbeDistance satisfies actions.Agent: extends the long-probe
// range by delta cells (§4.5). The range never shrinks.
func (ind *Individual) AddLongProbeDistance(delta int) {
	ind.LongProbeDistance += delta
}

// AddResponsiveness satisfies actions.Agent: nudges responsiveness by
// n, clamped to [0,1] per spec.md's declared domain.
func (ind *Individual) AddResponsiveness(n float64) {
	r := ind.Responsiveness + n
	if r < 0 {
		r = 0
	} else if r > 1 {
		r = 1
	}
	ind.Responsiveness = r
}

// View builds the read-only sensors.AgentView snapshot for this agent.
func (ind *Individual) View() sensors.AgentView {
	return sensors.AgentView{
		Index:             ind.IndexNum,
		Location:          ind.Loc,
		Age:               ind.Age,
		Responsiveness:    ind.Responsiveness,
		OscillationPeriod: ind.OscillationPeriod,
		LongProbeDistance: ind.LongProbeDistance,
		LastMoveDirection: ind.LastDir,
	}
}
