package generation

import (
	"github.com/pelagic-labs/biotope/config"
	"github.com/pelagic-labs/biotope/individual"
	"github.com/pelagic-labs/biotope/similarity"
)

// Challenge is a survival predicate applied to every agent at the end
// of a generation (§4.8 step 1).
type Challenge interface {
	Survives(ind *individual.Individual, cfg *config.Params, sizeX, sizeY int) bool
}

// Circle is the spec-mandated challenge: an agent survives iff the
// squared distance from its location to the world centre is less than
// challenge_radius (the radius itself is not squared).
type Circle struct{}

// Survives implements Challenge.
func (Circle) Survives(ind *individual.Individual, cfg *config.Params, sizeX, sizeY int) bool {
	cx, cy := float64(sizeX)/2, float64(sizeY)/2
	loc := ind.Location()
	dx := float64(loc.X) - cx
	dy := float64(loc.Y) - cy
	r := float64(cfg.ChallengeRadius)
	return dx*dx+dy*dy < r
}

// RightHalf survives iff the agent's location is past the world's
// horizontal midline. Supplements the spec's single mandated
// challenge with a second simple geometric predicate.
type RightHalf struct{}

// Survives implements Challenge.
func (RightHalf) Survives(ind *individual.Individual, cfg *config.Params, sizeX, sizeY int) bool {
	return int(ind.Location().X) > sizeX/2
}

// Altruism survives iff at least one other living agent within
// challenge_radius shares a sufficiently similar genome, rewarding
// clustering of close kin rather than a fixed region of the grid.
type Altruism struct {
	Population []*individual.Individual // full arena, index 0 sentinel
}

// Survives implements Challenge.
func (a Altruism) Survives(ind *individual.Individual, cfg *config.Params, sizeX, sizeY int) bool {
	r := float64(cfg.ChallengeRadius)
	for i := 1; i < len(a.Population); i++ {
		other := a.Population[i]
		if other == nil || !other.Alive || other.Index() == ind.Index() {
			continue
		}
		d := ind.Location().Sub(other.Location())
		dist2 := float64(d.X)*float64(d.X) + float64(d.Y)*float64(d.Y)
		if dist2 > r*r {
			continue
		}
		if similarity.JaroWinkler(ind.Genome, other.Genome) > 0.8 {
			return true
		}
	}
	return false
}

// ByName resolves the challenge configured in config.Params.Challenge.
// Unrecognised names fall back to Circle, the spec-mandated default.
func ByName(name string, pop []*individual.Individual) Challenge {
	switch name {
	case "right_half":
		return RightHalf{}
	case "altruism":
		return Altruism{Population: pop}
	default:
		return Circle{}
	}
}
