// Package peeps owns the world: the grid, the population arena, and
// the two transient per-step queues that serialise all mutation of
// shared state during a step (§4.6, §4.7).
package peeps

import (
	"math"
	"math/rand"

	"github.com/pelagic-labs/biotope/actions"
	"github.com/pelagic-labs/biotope/brain"
	"github.com/pelagic-labs/biotope/config"
	"github.com/pelagic-labs/biotope/gene"
	"github.com/pelagic-labs/biotope/geometry"
	"github.com/pelagic-labs/biotope/grid"
	"github.com/pelagic-labs/biotope/individual"
	"github.com/pelagic-labs/biotope/sensors"
)

// urge is one queued movement request; a single agent may accumulate
// several within one step before the queue drains.
type urge struct {
	dx, dy float64
}

// Peeps owns the grid and the population array. Population slot 0 is
// the reserved sentinel and is always nil: grid tag 0 unambiguously
// means empty (arena+index ownership model).
type Peeps struct {
	Grid *grid.Grid
	Pop  []*individual.Individual

	cfg *config.Params
	rng *rand.Rand

	step int

	moveOrder []int
	moveQueue map[int][]urge

	deathQueue []int

	genomeSnapshot []gene.Genome
	locSnapshot    []geometry.Coord
}

// New creates an empty world of the configured size with no agents.
func New(cfg *config.Params, rng *rand.Rand) *Peeps {
	return &Peeps{
		Grid:      grid.New(cfg.SizeX, cfg.SizeY),
		Pop:       make([]*individual.Individual, 1), // slot 0: sentinel
		cfg:       cfg,
		rng:       rng,
		moveQueue: make(map[int][]urge),
	}
}

// Len returns the number of population slots, excluding the sentinel.
func (p *Peeps) Len() int { return len(p.Pop) - 1 }

// Step returns the current step counter within the generation.
func (p *Peeps) Step() int { return p.step }

// Spawn places a freshly wired agent on a uniformly random empty cell
// and appends it to the population, returning the new Individual.
func (p *Peeps) Spawn(genome gene.Genome) *individual.Individual {
	loc := p.RandomEmptyCell()
	idx := len(p.Pop)
	ind := individual.New(idx, loc, genome, p.cfg.MaxNumberNeurons, p.cfg.LongProbeDistance, p.cfg.Responsiveness)
	p.Pop = append(p.Pop, ind)
	p.Grid.Set(loc, grid.Tag(idx))
	return ind
}

// RandomEmptyCell draws a uniformly random empty cell. Callers must
// ensure the grid has headroom (config.Validate enforces population <
// 0.9 * size_x * size_y) so this terminates quickly in practice.
func (p *Peeps) RandomEmptyCell() geometry.Coord {
	for {
		c := geometry.Coord{
			X: int16(p.rng.Intn(p.cfg.SizeX)),
			Y: int16(p.rng.Intn(p.cfg.SizeY)),
		}
		if p.Grid.IsEmpty(c) {
			return c
		}
	}
}

// Reset zero-fills the grid and discards the population array down to
// the sentinel, per §4.8 step 3. Callers repopulate via Spawn.
func (p *Peeps) Reset() {
	p.Grid.ZeroFill()
	p.Pop = p.Pop[:1]
}

// Enqueue records a movement urge for agentIndex, implementing
// actions.MoveQueue. Multiple urges accumulate for the same agent
// within one step.
func (p *Peeps) Enqueue(agentIndex int, dx, dy float64) {
	if _, seen := p.moveQueue[agentIndex]; !seen {
		p.moveOrder = append(p.moveOrder, agentIndex)
	}
	p.moveQueue[agentIndex] = append(p.moveQueue[agentIndex], urge{dx, dy})
}

// EnqueueDeath records agentIndex for death at end of step, reserved
// for the kill-queue extension (§4.5's KillForward stub).
func (p *Peeps) EnqueueDeath(agentIndex int) {
	p.deathQueue = append(p.deathQueue, agentIndex)
}

// RunStep executes one simulation step: sensor snapshot, per-agent
// feed-forward and action dispatch, then queue drain (§4.7).
func (p *Peeps) RunStep() {
	p.snapshot()

	actionParams := actions.Params{
		LongProbeDistance: p.cfg.LongProbeDistance,
		KillEnabled:       p.cfg.KillEnabled,
	}
	sensorParams := sensors.Params{
		StepsPerGeneration: p.cfg.StepsPerGeneration,
		PopulationRadius:   p.cfg.PopulationSensorRadius,
		LongProbeDistance:  p.cfg.LongProbeDistance,
	}

	for i := 1; i < len(p.Pop); i++ {
		ind := p.Pop[i]
		if ind == nil || !ind.Alive {
			continue
		}
		ind.Age++

		ctx := sensors.Context{
			Grid:      p.Grid,
			Genomes:   p.genomeSnapshot,
			Locations: p.locSnapshot,
			Params:    sensorParams,
			Step:      p.step,
			Rng:       p.rng,
		}
		levels := brain.Evaluate(&ind.Brain, ind.View(), ctx)

		for k := 0; k < actions.Count; k++ {
			actions.Dispatch(actions.Enabled[k], ind, p, actionParams, levels[k], p.rng)
		}
	}

	p.drainMoveQueue()
	p.drainDeathQueue()
	p.step++
}

// snapshot gathers genomes and locations at step start so sensors that
// depend on neighbour state are immune to mid-step mutation (§4.7).
func (p *Peeps) snapshot() {
	p.genomeSnapshot = make([]gene.Genome, len(p.Pop))
	p.locSnapshot = make([]geometry.Coord, len(p.Pop))
	for i := 1; i < len(p.Pop); i++ {
		if p.Pop[i] == nil {
			continue
		}
		p.genomeSnapshot[i] = p.Pop[i].Genome
		p.locSnapshot[i] = p.Pop[i].Location()
	}
}

// drainMoveQueue resolves all queued urges in insertion order (§4.6).
// Earlier agents in drain order get their preferred cell; later agents
// whose target is taken simply stay put.
func (p *Peeps) drainMoveQueue() {
	k := p.cfg.ResponsivenessCurveKFactor
	for _, agentIndex := range p.moveOrder {
		ind := p.Pop[agentIndex]
		if ind == nil || !ind.Alive {
			continue
		}

		var sx, sy float64
		for _, u := range p.moveQueue[agentIndex] {
			sx += u.dx
			sy += u.dy
		}
		sx = math.Tanh(sx)
		sy = math.Tanh(sy)

		r := responseCurve(ind.Responsiveness, k)
		sx *= r
		sy *= r

		var dx, dy int16
		if probabilityToBool(p.rng, math.Abs(sx)) {
			dx = int16(sign(sx))
		}
		if probabilityToBool(p.rng, math.Abs(sy)) {
			dy = int16(sign(sy))
		}
		if dx == 0 && dy == 0 {
			continue
		}

		target := ind.Location().Add(geometry.Coord{X: dx, Y: dy})
		if p.Grid.InBounds(target) && p.Grid.IsEmpty(target) {
			old := ind.Location()
			p.Grid.Set(old, grid.EMPTY)
			p.Grid.Set(target, grid.Tag(agentIndex))
			ind.Loc = target
			ind.LastDir = (geometry.Coord{X: dx, Y: dy}).ToDir()
		}
	}
	p.moveOrder = nil
	p.moveQueue = make(map[int][]urge)
}

// drainDeathQueue marks queued agents dead. Their grid tag is left in
// place: the cell is cleared only at the next generation's zero-fill,
// matching the documented lifecycle for grid mutation (§3).
func (p *Peeps) drainDeathQueue() {
	for _, idx := range p.deathQueue {
		if p.Pop[idx] != nil {
			p.Pop[idx].Alive = false
		}
	}
	p.deathQueue = nil
}

// responseCurve maps responsiveness v in [0,1] to a multiplicative
// factor with tunable sharpness k (§4.6).
func responseCurve(v, k float64) float64 {
	return math.Pow(v-2, -2*k) - math.Pow(2, -2*k)*(1-v)
}

// probabilityToBool draws u from rng and returns true iff u < s.
func probabilityToBool(rng *rand.Rand, s float64) bool {
	return rng.Float64() < s
}

func sign(x float64) int {
	if x > 0 {
		return 1
	}
	return -1
}
