// Package sensors implements the 21 fixed pure functions that map
// agent/world/step state to a brain input in [0,1] (or [-1,1] where
// noted).
package sensors

import (
	"math"
	"math/rand"

	"github.com/pelagic-labs/biotope/gene"
	"github.com/pelagic-labs/biotope/geometry"
	"github.com/pelagic-labs/biotope/grid"
	"github.com/pelagic-labs/biotope/similarity"
)

// Kind identifies one of the 21 fixed sensors.
type Kind int

const (
	LocX Kind = iota
	LocY
	BoundaryDistX
	BoundaryDistY
	BoundaryDist
	LastMoveDirX
	LastMoveDirY
	Age
	Osc1
	Rnd
	GeneticSimFwd
	Population
	PopulationFwd
	PopulationLR
	LongProbePopFwd
	LongProbeBarFwd
	BarrierFwd
	BarrierLR
	Signal0
	Signal0Fwd
	Signal0LR

	numKinds
)

// Enabled is the fixed, ordered enumeration of sensors wired into the
// brain. Index into Enabled is the sensor's source index used by
// gene.Gene.SourceNum when SourceIsSensor is true.
var Enabled = [numKinds]Kind{
	LocX, LocY, BoundaryDistX, BoundaryDistY, BoundaryDist,
	LastMoveDirX, LastMoveDirY, Age, Osc1, Rnd, GeneticSimFwd,
	Population, PopulationFwd, PopulationLR,
	LongProbePopFwd, LongProbeBarFwd, BarrierFwd, BarrierLR,
	Signal0, Signal0Fwd, Signal0LR,
}

// Count is the number of enabled sensors (|ENABLED_SENSORS|).
const Count = int(numKinds)

// AgentView is the read-only slice of per-agent state a sensor needs.
// It deliberately omits the brain and genome (genomes are supplied
// separately via Context.Genomes) so this package has no dependency on
// the individual package.
type AgentView struct {
	Index              int
	Location           geometry.Coord
	Age                int
	Responsiveness      float64
	OscillationPeriod   int
	LongProbeDistance   int
	LastMoveDirection   geometry.Dir
}

// Params is the subset of simulation configuration sensors read.
type Params struct {
	StepsPerGeneration  int
	PopulationRadius    float64
	LongProbeDistance   int
}

// Context bundles the world snapshot a sensor call needs: the grid,
// a genome snapshot gathered at the start of the step (so mid-step
// mutation cannot influence similarity sensors), per-agent locations
// snapshotted at step start, and the step counter. Neighbourhood scans
// read the grid; no sensor reads Locations.
type Context struct {
	Grid      *grid.Grid
	Genomes   []gene.Genome      // indexed by agent index, 0 is sentinel
	Locations []geometry.Coord   // indexed by agent index, snapshot at step start
	Params    Params
	Step      int
	Rng       *rand.Rand
}

// Func computes one sensor's value for an agent.
type Func func(a AgentView, ctx Context) float64

// Dispatch returns the value of the given enabled-sensor index
// (source index into Enabled) for an agent.
func Dispatch(index int, a AgentView, ctx Context) float64 {
	return table[Enabled[index]](a, ctx)
}

var table = map[Kind]Func{
	LocX:              sensorLocX,
	LocY:              sensorLocY,
	BoundaryDistX:     sensorBoundaryDistX,
	BoundaryDistY:     sensorBoundaryDistY,
	BoundaryDist:      sensorBoundaryDist,
	LastMoveDirX:      sensorLastMoveDirX,
	LastMoveDirY:      sensorLastMoveDirY,
	Age:               sensorAge,
	Osc1:              sensorOsc1,
	Rnd:               sensorRnd,
	GeneticSimFwd:     sensorGeneticSimFwd,
	Population:        sensorPopulation,
	PopulationFwd:     sensorPopulationFwd,
	PopulationLR:      sensorPopulationLR,
	LongProbePopFwd:   sensorLongProbePopFwd,
	LongProbeBarFwd:   sensorLongProbeBarFwd,
	BarrierFwd:        sensorBarrierFwd,
	BarrierLR:         sensorBarrierLR,
	Signal0:           sensorSignal0,
	Signal0Fwd:        sensorSignal0Fwd,
	Signal0LR:         sensorSignal0LR,
}

func sensorLocX(a AgentView, ctx Context) float64 {
	if ctx.Grid.Width <= 1 {
		return 0
	}
	return float64(a.Location.X) / float64(ctx.Grid.Width-1)
}

func sensorLocY(a AgentView, ctx Context) float64 {
	if ctx.Grid.Height <= 1 {
		return 0
	}
	return float64(a.Location.Y) / float64(ctx.Grid.Height-1)
}

func sensorBoundaryDistX(a AgentView, ctx Context) float64 {
	half := float64(ctx.Grid.Width) / 2
	distLeft := float64(a.Location.X)
	distRight := float64(ctx.Grid.Width-1) - float64(a.Location.X)
	d := math.Min(distLeft, distRight)
	return clamp01(d / half)
}

func sensorBoundaryDistY(a AgentView, ctx Context) float64 {
	half := float64(ctx.Grid.Height) / 2
	distTop := float64(a.Location.Y)
	distBottom := float64(ctx.Grid.Height-1) - float64(a.Location.Y)
	d := math.Min(distTop, distBottom)
	return clamp01(d / half)
}

func sensorBoundaryDist(a AgentView, ctx Context) float64 {
	return math.Min(sensorBoundaryDistX(a, ctx), sensorBoundaryDistY(a, ctx))
}

func lastMoveComponent(v int16) float64 {
	switch {
	case v < 0:
		return 0
	case v > 0:
		return 1
	default:
		return 0.5
	}
}

func sensorLastMoveDirX(a AgentView, _ Context) float64 {
	dx, _ := a.LastMoveDirection.Vector()
	return lastMoveComponent(dx)
}

func sensorLastMoveDirY(a AgentView, _ Context) float64 {
	_, dy := a.LastMoveDirection.Vector()
	return lastMoveComponent(dy)
}

func sensorAge(a AgentView, ctx Context) float64 {
	if ctx.Params.StepsPerGeneration <= 0 {
		return 0
	}
	return clamp01(float64(a.Age) / float64(ctx.Params.StepsPerGeneration))
}

func sensorOsc1(a AgentView, ctx Context) float64 {
	period := a.OscillationPeriod
	if period < 1 {
		period = 1
	}
	phase := float64(ctx.Step%period) / float64(period)
	v := (1 - math.Cos(2*math.Pi*phase)) / 2
	return clamp01(v)
}

func sensorRnd(_ AgentView, ctx Context) float64 {
	return ctx.Rng.Float64()
}

func sensorGeneticSimFwd(a AgentView, ctx Context) float64 {
	fwd := a.Location.AddDir(a.LastMoveDirection)
	if !ctx.Grid.InBounds(fwd) {
		return 0
	}
	tag := ctx.Grid.At(fwd)
	if tag == grid.EMPTY || tag == grid.BARRIER {
		return 0
	}
	other := int(tag)
	if a.Index <= 0 || a.Index >= len(ctx.Genomes) || other >= len(ctx.Genomes) {
		return 0
	}
	return similarity.JaroWinkler(ctx.Genomes[a.Index], ctx.Genomes[other])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
