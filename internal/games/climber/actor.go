package climber

import (
	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Actor is the player-controlled character: a physical body with velocity,
// gravity integration, and the discrete contact flags the resolver writes.
type Actor struct {
	X, Y   float64 // Center position in world units
	VX, VY float64

	HalfW, HalfH float64

	// Grounded is recomputed every tick: reset in Update, set only by a
	// successful landing. It is the sole gate on jumping.
	Grounded bool

	// OnConveyor references the conveyor currently carrying the actor,
	// or nil. Cleared by the resolver at the start of each pass.
	OnConveyor *Platform

	// HazardTouched is sticky until the game loop acts on it.
	HazardTouched bool
}

// NewActor creates an actor centered at (x, y).
func NewActor(x, y float64, cfg config.ClimberActor) *Actor {
	return &Actor{
		X:     x,
		Y:     y,
		HalfW: cfg.Width / 2,
		HalfH: cfg.Height / 2,
	}
}

// Update integrates one physics tick: gravity, position, horizontal bounds,
// and the continuous conveyor push. Grounded is reset here; only a landing
// later in the same tick may set it again.
func (a *Actor) Update(phys *config.ClimberPhysics, worldW float64) {
	a.VY += phys.Gravity
	a.X += a.VX
	a.Y += a.VY

	// Hard stop at the playfield edges; velocity is kept so the actor
	// resumes moving the moment input points back inside.
	if a.X < a.HalfW {
		a.X = a.HalfW
	} else if a.X > worldW-a.HalfW {
		a.X = worldW - a.HalfW
	}

	// Riding a conveyor re-applies a damped push each tick, capped so
	// chained conveyors cannot build unbounded speed.
	if a.OnConveyor != nil {
		if push, ok := a.OnConveyor.ConveyorPush(); ok {
			a.VX += push * phys.ConveyorDamping
			a.VX = core.ClampF(a.VX, -phys.MaxConveyorSpeed, phys.MaxConveyorSpeed)
		}
	}

	a.Grounded = false
}

// Jump launches the actor upward. Only grounded actors can jump; this is
// the sole gate preventing mid-air jumps.
func (a *Actor) Jump(phys *config.ClimberPhysics) {
	if !a.Grounded {
		return
	}
	a.VY = phys.JumpImpulse
	a.Grounded = false
}

// MoveHorizontal applies directional input: -1 left, +1 right, 0 none.
// With no input the actor stops, unless a conveyor is carrying it. In that
// case the existing velocity is left for the conveyor push to manage.
func (a *Actor) MoveHorizontal(dir int, phys *config.ClimberPhysics) {
	if dir != 0 {
		a.VX = float64(dir) * phys.HorizontalSpeed
		return
	}
	if a.OnConveyor == nil {
		a.VX = 0
	}
}

// Rect returns the actor's world-space collision rectangle.
func (a *Actor) Rect() core.RectF {
	return core.NewRectF(a.X-a.HalfW, a.Y-a.HalfH, a.HalfW*2, a.HalfH*2)
}

// Top returns the world y of the actor's top edge.
func (a *Actor) Top() float64 {
	return a.Y - a.HalfH
}

// Feet returns the world y of the actor's bottom edge.
func (a *Actor) Feet() float64 {
	return a.Y + a.HalfH
}
