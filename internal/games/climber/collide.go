package climber

import (
	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// surfaceTolerance is how close (world units) the actor's feet must stay to
// a conveyor's top surface to keep continuous contact between ticks.
const surfaceTolerance = 2.0

// Landing reports a successful landing for the embedding game loop
// (scoring, milestone side effects).
type Landing struct {
	Platform *Platform
	Kind     Kind
}

// ResolveCollision checks the actor against the active platforms and applies
// at most one landing effect. Iteration follows the slice's stable order and
// the first matching platform wins, so which of two overlapping platforms is
// authoritative is deterministic.
//
// The conveyor flag is cleared up front and only re-established by landing
// on (or keeping contact with) a conveyor this tick.
func ResolveCollision(a *Actor, platforms []*Platform, phys *config.ClimberPhysics) (Landing, bool) {
	a.OnConveyor = nil

	for _, p := range platforms {
		if !isLandingCandidate(a, p) {
			continue
		}
		applyLanding(a, p, phys)
		return Landing{Platform: p, Kind: p.Kind}, true
	}
	return Landing{}, false
}

// isLandingCandidate implements the contact conditions: AABB overlap plus
// either a falling/resting approach from above, or sustained conveyor
// contact for an already-grounded actor.
func isLandingCandidate(a *Actor, p *Platform) bool {
	if !p.Active {
		return false
	}
	if !p.Rect().Intersects(a.Rect()) {
		return false
	}

	// Falling or resting, entering from above. The top-edge check prevents
	// landing while jumping up through a platform.
	if a.VY >= 0 && a.Top() <= p.Y+p.Height {
		return true
	}

	// Conveyors keep contact while the actor stays grounded on the surface,
	// without re-triggering the generic landing branch every tick.
	if p.Kind == KindConveyor && a.Grounded && a.VY >= 0 &&
		core.AbsF(a.Feet()-p.Y) <= surfaceTolerance {
		return true
	}

	return false
}

// applyLanding snaps the actor onto the platform and applies the kind's
// landing effect.
func applyLanding(a *Actor, p *Platform, phys *config.ClimberPhysics) {
	// Rest slightly inside the surface so the overlap persists next tick.
	a.Y = p.Y - a.HalfH + 1

	if p.Kind == KindBouncy {
		// Launch instead of settling; the actor is airborne immediately.
		a.VY = phys.JumpImpulse * p.bouncePower()
		a.Grounded = false
	} else {
		a.VY = 0
		a.Grounded = true
	}

	switch p.Kind {
	case KindConveyor:
		if push, ok := p.ConveyorPush(); ok {
			a.VX += push
		}
		a.OnConveyor = p

	case KindBreakable:
		p.markStepped()

	case KindMoving, KindVertical:
		// Ride along with the platform's own movement.
		dx, dy := p.displacement()
		a.X += dx
		a.Y += dy

	case KindHazard:
		// Sticky flag; ending the run is the game loop's call.
		a.HazardTouched = true
	}
}
