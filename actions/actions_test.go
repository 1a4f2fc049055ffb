package actions

import (
	"math/rand"
	"testing"

	"github.com/pelagic-labs/biotope/geometry"
)

type fakeAgent struct {
	index     int
	loc       geometry.Coord
	lastDir   geometry.Dir
	period    int
	probeDist int
	resp      float64
}

func (a *fakeAgent) Index() int                        { return a.index }
func (a *fakeAgent) Location() geometry.Coord          { return a.loc }
func (a *fakeAgent) LastMoveDirection() geometry.Dir    { return a.lastDir }
func (a *fakeAgent) SetOscillatorPeriod(period int)     { a.period = period }
func (a *fakeAgent) AddLongProbeDistance(delta int)     { a.probeDist += delta }
func (a *fakeAgent) AddResponsiveness(n float64)        { a.resp += n }

type fakeQueue struct {
	index  int
	dx, dy float64
	called bool
}

func (q *fakeQueue) Enqueue(agentIndex int, dx, dy float64) {
	q.index, q.dx, q.dy, q.called = agentIndex, dx, dy, true
}

func TestMoveXEnqueuesLevelUnchanged(t *testing.T) {
	a := &fakeAgent{index: 7}
	q := &fakeQueue{}
	Dispatch(MoveX, a, q, Params{}, 3.5, rand.New(rand.NewSource(1)))
	if !q.called || q.index != 7 || q.dx != 3.5 || q.dy != 0 {
		t.Fatalf("MoveX: got %+v", q)
	}
}

func TestMoveSouthIsCorrectedToNegativeY(t *testing.T) {
	a := &fakeAgent{}
	q := &fakeQueue{}
	Dispatch(MoveSouth, a, q, Params{}, 2, rand.New(rand.NewSource(1)))
	if q.dx != 0 || q.dy != -2 {
		t.Fatalf("MoveSouth: got dx=%v dy=%v, want 0,-2", q.dx, q.dy)
	}
}

func TestMoveForwardUsesLastDirection(t *testing.T) {
	a := &fakeAgent{lastDir: geometry.E}
	q := &fakeQueue{}
	Dispatch(MoveForward, a, q, Params{}, 4, rand.New(rand.NewSource(1)))
	if q.dx != 4 || q.dy != 0 {
		t.Fatalf("MoveForward along E: got dx=%v dy=%v, want 4,0", q.dx, q.dy)
	}
}

func TestSetOscillatorPeriodIsAtLeastOne(t *testing.T) {
	a := &fakeAgent{}
	q := &fakeQueue{}
	Dispatch(SetOscillatorPeriod, a, q, Params{}, -1000, rand.New(rand.NewSource(1)))
	if a.period < 1 {
		t.Fatalf("period = %d, want >= 1", a.period)
	}
}

func TestSetResponsivenessAddsNormalizedValue(t *testing.T) {
	a := &fakeAgent{}
	q := &fakeQueue{}
	Dispatch(SetResponsiveness, a, q, Params{}, 0, rand.New(rand.NewSource(1)))
	// normalize(0) = (tanh(0)+1)/2 = 0.5
	if a.resp != 0.5 {
		t.Fatalf("resp = %v, want 0.5", a.resp)
	}
}

func TestSetLongProbeDistanceAddsAtLeastOne(t *testing.T) {
	a := &fakeAgent{}
	q := &fakeQueue{}
	Dispatch(SetLongProbeDistance, a, q, Params{LongProbeDistance: 16}, -1000, rand.New(rand.NewSource(1)))
	if a.probeDist < 1 {
		t.Fatalf("probeDist delta = %d, want >= 1", a.probeDist)
	}
}

func TestEmitSignal0AndKillForwardAreNoops(t *testing.T) {
	a := &fakeAgent{}
	q := &fakeQueue{}
	Dispatch(EmitSignal0, a, q, Params{}, 5, rand.New(rand.NewSource(1)))
	Dispatch(KillForward, a, q, Params{KillEnabled: true}, 5, rand.New(rand.NewSource(1)))
	if q.called {
		t.Fatal("EmitSignal0/KillForward must not enqueue a move")
	}
}

func TestDispatchCoversAllEnabledActions(t *testing.T) {
	a := &fakeAgent{}
	q := &fakeQueue{}
	rng := rand.New(rand.NewSource(1))
	for _, k := range Enabled {
		Dispatch(k, a, q, Params{LongProbeDistance: 8}, 1, rng)
	}
}
