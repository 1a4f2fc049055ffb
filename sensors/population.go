package sensors

import (
	"math"

	"github.com/pelagic-labs/biotope/geometry"
	"github.com/pelagic-labs/biotope/grid"
)

// neighboursInRadius calls visit for every occupied in-bounds cell
// within radius (exclusive of the agent's own cell).
func neighboursInRadius(a AgentView, ctx Context, radius float64, visit func(offset geometry.Coord, dist float64)) {
	r := int(math.Ceil(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offset := geometry.Coord{X: int16(dx), Y: int16(dy)}
			dist := offset.Length()
			if dist > radius {
				continue
			}
			c := a.Location.Add(offset)
			if !ctx.Grid.InBounds(c) {
				continue
			}
			if !ctx.Grid.IsOccupied(c) {
				continue
			}
			visit(offset, dist)
		}
	}
}

func sensorPopulation(a AgentView, ctx Context) float64 {
	radius := ctx.Params.PopulationRadius
	if radius <= 0 {
		radius = 1
	}
	count := 0
	neighboursInRadius(a, ctx, radius, func(_ geometry.Coord, _ float64) {
		count++
	})
	area := math.Pi * radius * radius
	if area <= 0 {
		return 0
	}
	return clamp01(float64(count) / area)
}

// populationProjection sums angle_cosine(offset, axis)/distance over
// occupied neighbours, normalises by the theoretical maximum 6*range,
// then affine-shifts into [0,1].
func populationProjection(a AgentView, ctx Context, axis geometry.Coord) float64 {
	radius := ctx.Params.PopulationRadius
	if radius <= 0 {
		radius = 1
	}
	sum := 0.0
	neighboursInRadius(a, ctx, radius, func(offset geometry.Coord, dist float64) {
		if dist == 0 {
			return
		}
		sum += geometry.AngleCosine(offset, axis) / dist
	})
	maxVal := 6 * radius
	if maxVal == 0 {
		return 0.5
	}
	return clamp01((sum/maxVal + 1) / 2)
}

func sensorPopulationFwd(a AgentView, ctx Context) float64 {
	axis := a.LastMoveDirection.Coord()
	if axis.IsZero() {
		axis = geometry.Coord{X: 1, Y: 0}
	}
	return populationProjection(a, ctx, axis)
}

func sensorPopulationLR(a AgentView, ctx Context) float64 {
	axis := a.LastMoveDirection.Rotate(2).Coord() // 90 degrees clockwise: "right"
	if axis.IsZero() {
		axis = geometry.Coord{X: 0, Y: 1}
	}
	return populationProjection(a, ctx, axis)
}

// longProbe scans forward from the agent up to a.LongProbeDistance
// cells, returning the saturated count of traversable cells (empty,
// non-barrier) before the first cell matching stop.
func longProbe(a AgentView, ctx Context, stop func(grid.Tag) bool) int {
	dir := a.LastMoveDirection
	if dir == geometry.Center {
		return 0
	}
	limit := a.LongProbeDistance
	if limit <= 0 {
		limit = ctx.Params.LongProbeDistance
	}
	count := 0
	cur := a.Location
	for i := 0; i < limit; i++ {
		cur = cur.AddDir(dir)
		if !ctx.Grid.InBounds(cur) {
			break
		}
		tag := ctx.Grid.At(cur)
		if stop(tag) {
			break
		}
		count++
	}
	if count > limit {
		count = limit
	}
	return count
}

func sensorLongProbePopFwd(a AgentView, ctx Context) float64 {
	limit := a.LongProbeDistance
	if limit <= 0 {
		limit = ctx.Params.LongProbeDistance
	}
	count := longProbe(a, ctx, func(t grid.Tag) bool {
		return t != grid.EMPTY
	})
	if limit == 0 {
		return 0
	}
	return clamp01(float64(count) / float64(limit))
}

func sensorLongProbeBarFwd(a AgentView, ctx Context) float64 {
	limit := a.LongProbeDistance
	if limit <= 0 {
		limit = ctx.Params.LongProbeDistance
	}
	count := longProbe(a, ctx, func(t grid.Tag) bool {
		return t == grid.BARRIER
	})
	if limit == 0 {
		return 0
	}
	return clamp01(float64(count) / float64(limit))
}

// barrierSignedProximity scans forward and backward along axis,
// returning (forwardDist-backwardDist) mapped into [0,1] via the
// probe range.
func barrierSignedProximity(a AgentView, ctx Context, axis geometry.Dir) float64 {
	rangeN := ctx.Params.LongProbeDistance
	if rangeN <= 0 {
		rangeN = 16
	}
	scan := func(dir geometry.Dir) int {
		cur := a.Location
		for i := 0; i < rangeN; i++ {
			cur = cur.AddDir(dir)
			if !ctx.Grid.InBounds(cur) || ctx.Grid.At(cur) == grid.BARRIER {
				return i
			}
		}
		return rangeN
	}
	fwd := scan(axis)
	back := scan(axis.Rotate(4)) // 180 degrees
	diff := float64(fwd-back) / float64(rangeN)
	return clamp01((diff + 1) / 2)
}

func sensorBarrierFwd(a AgentView, ctx Context) float64 {
	dir := a.LastMoveDirection
	if dir == geometry.Center {
		dir = geometry.N
	}
	return barrierSignedProximity(a, ctx, dir)
}

func sensorBarrierLR(a AgentView, ctx Context) float64 {
	dir := a.LastMoveDirection.Rotate(2)
	if a.LastMoveDirection == geometry.Center {
		dir = geometry.E
	}
	return barrierSignedProximity(a, ctx, dir)
}

// Signal0{,Fwd,LR} are reserved stubs: the signal-diffusion layer is a
// known stub in this core (spec.md §1), so these always read 0.0.
func sensorSignal0(_ AgentView, _ Context) float64    { return 0 }
func sensorSignal0Fwd(_ AgentView, _ Context) float64 { return 0 }
func sensorSignal0LR(_ AgentView, _ Context) float64  { return 0 }
