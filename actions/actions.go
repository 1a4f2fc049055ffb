// Package actions implements the 17 fixed effects a brain output can
// trigger: movement urges queued for conflict resolution, and direct
// in-place mutations of agent state.
package actions

import (
	"math"
	"math/rand"

	"github.com/pelagic-labs/biotope/geometry"
)

// Kind identifies one of the 17 fixed actions.
type Kind int

const (
	MoveX Kind = iota
	MoveEast
	MoveWest
	MoveY
	MoveNorth
	MoveSouth
	MoveForward
	MoveReverse
	MoveLeft
	MoveRight
	MoveRL
	MoveRandom
	SetOscillatorPeriod
	SetLongProbeDistance
	SetResponsiveness
	EmitSignal0
	KillForward

	numKinds
)

// Enabled is the fixed, ordered enumeration of actions wired into the
// brain. Index into Enabled is the action's sink index used by
// gene.Gene.SinkNum when SinkIsAction is true.
var Enabled = [numKinds]Kind{
	MoveX, MoveEast, MoveWest, MoveY, MoveNorth, MoveSouth,
	MoveForward, MoveReverse, MoveLeft, MoveRight, MoveRL, MoveRandom,
	SetOscillatorPeriod, SetLongProbeDistance, SetResponsiveness,
	EmitSignal0, KillForward,
}

// Count is the number of enabled actions (|ENABLED_ACTIONS|).
const Count = int(numKinds)

// Agent is the mutable per-agent state an action handler needs: it is
// implemented by individual.Individual.
type Agent interface {
	Index() int
	Location() geometry.Coord
	LastMoveDirection() geometry.Dir
	SetOscillatorPeriod(period int)
	AddLongProbeDistance(delta int)
	AddResponsiveness(n float64)
}

// MoveQueue receives movement urges to be resolved at end of step.
// Implemented by peeps.Peeps.
type MoveQueue interface {
	Enqueue(agentIndex int, dx, dy float64)
}

// Params is the subset of simulation configuration actions read.
type Params struct {
	LongProbeDistance int
	KillEnabled       bool
}

// Dispatch applies one action's effect for the given raw (unbounded)
// accumulator level.
func Dispatch(kind Kind, agent Agent, queue MoveQueue, params Params, level float64, rng *rand.Rand) {
	switch kind {
	case MoveX, MoveEast:
		queue.Enqueue(agent.Index(), level, 0)
	case MoveWest:
		queue.Enqueue(agent.Index(), -level, 0)
	case MoveY, MoveNorth:
		queue.Enqueue(agent.Index(), 0, level)
	case MoveSouth:
		// spec.md §9: the source dispatches MoveSouth to move_forward,
		// likely a bug; we implement the corrected (0, -level) mapping.
		queue.Enqueue(agent.Index(), 0, -level)
	case MoveForward:
		dx, dy := agent.LastMoveDirection().Vector()
		queue.Enqueue(agent.Index(), float64(dx)*level, float64(dy)*level)
	case MoveReverse:
		dx, dy := agent.LastMoveDirection().Vector()
		queue.Enqueue(agent.Index(), -float64(dx)*level, -float64(dy)*level)
	case MoveLeft:
		d := agent.LastMoveDirection().Rotate(-2)
		dx, dy := d.Vector()
		queue.Enqueue(agent.Index(), float64(dx)*level, float64(dy)*level)
	case MoveRight, MoveRL:
		d := agent.LastMoveDirection().Rotate(2)
		dx, dy := d.Vector()
		queue.Enqueue(agent.Index(), float64(dx)*level, float64(dy)*level)
	case MoveRandom:
		d := geometry.Dir(1 + rng.Intn(8)) // uniform over N..NW
		dx, dy := d.Vector()
		queue.Enqueue(agent.Index(), float64(dx)*level, float64(dy)*level)
	case SetOscillatorPeriod:
		n := normalize(level)
		period := 1 + int(math.Floor(1.5+math.Exp(7*n)))
		agent.SetOscillatorPeriod(period)
	case SetLongProbeDistance:
		n := normalize(level)
		maxRange := params.LongProbeDistance
		delta := 1 + int(n*float64(maxRange))
		agent.AddLongProbeDistance(delta)
	case SetResponsiveness:
		agent.AddResponsiveness(normalize(level))
	case EmitSignal0:
		// stub: the signal-diffusion layer is out of scope (spec.md §1).
	case KillForward:
		// stub: kill-queue semantics are unspecified in the source and
		// left as an extension point (spec.md §9). No-op regardless of
		// params.KillEnabled until that extension lands.
	}
}

// normalize maps a raw accumulator value through tanh into [0,1], the
// "n" term used by SetOscillatorPeriod/SetLongProbeDistance/
// SetResponsiveness (spec.md §4.5).
func normalize(level float64) float64 {
	return (math.Tanh(level) + 1) / 2
}
