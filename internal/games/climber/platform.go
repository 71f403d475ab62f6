package climber

import (
	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Kind identifies a platform's behavior class.
type Kind int

const (
	KindPlain Kind = iota
	KindConveyor
	KindBreakable
	KindMoving   // Oscillates horizontally
	KindVertical // Oscillates vertically
	KindBouncy
	KindHazard
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindConveyor:
		return "conveyor"
	case KindBreakable:
		return "breakable"
	case KindMoving:
		return "moving"
	case KindVertical:
		return "vertical"
	case KindBouncy:
		return "bouncy"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// kindState is the tagged-union payload for kind-specific behavior state.
// Reinit replaces the whole variant, so no field of a previous kind can
// leak into a recycled platform.
type kindState interface {
	kindTag() Kind
}

type plainState struct{}

type conveyorState struct {
	Speed     float64
	Direction float64 // +1 pushes right, -1 pushes left
}

type breakableState struct {
	SteppedOn bool
	Timer     float64 // Seconds since first contact
	Delay     float64 // Seconds until collapse
}

type movingState struct {
	OriginX   float64
	Speed     float64
	Direction float64
	Range     float64
}

type verticalState struct {
	OriginY   float64
	Speed     float64
	Direction float64
	Range     float64
}

type bouncyState struct {
	Power float64 // Multiplier on the jump impulse, > 1
}

type hazardState struct{}

func (plainState) kindTag() Kind     { return KindPlain }
func (conveyorState) kindTag() Kind  { return KindConveyor }
func (breakableState) kindTag() Kind { return KindBreakable }
func (movingState) kindTag() Kind    { return KindMoving }
func (verticalState) kindTag() Kind  { return KindVertical }
func (bouncyState) kindTag() Kind    { return KindBouncy }
func (hazardState) kindTag() Kind    { return KindHazard }

// Platform is a typed, stateful support the actor can land on.
// X is the horizontal center, Y the top edge; world y grows downward.
type Platform struct {
	X, Y   float64
	Width  float64
	Height float64
	Kind   Kind
	Active bool

	state kindState
}

// NewPlatform creates a platform of the given kind at (x, y).
func NewPlatform(x, y, width, height float64, kind Kind, cfg *config.ClimberPlatforms) *Platform {
	p := &Platform{Width: width, Height: height}
	p.Reinit(x, y, kind, cfg)
	return p
}

// Reinit repositions the platform and rebuilds its kind state from scratch.
// Used both at creation and when reusing a pooled instance; assigning a
// fresh variant guarantees no stale fields survive recycling.
func (p *Platform) Reinit(x, y float64, kind Kind, cfg *config.ClimberPlatforms) {
	p.X = x
	p.Y = y
	p.Kind = kind
	p.Active = true

	switch kind {
	case KindConveyor:
		p.state = &conveyorState{
			Speed:     cfg.ConveyorSpeed,
			Direction: conveyorDirection(x),
		}
	case KindBreakable:
		p.state = &breakableState{Delay: cfg.BreakDelay}
	case KindMoving:
		p.state = &movingState{
			OriginX:   x,
			Speed:     cfg.MoveSpeed,
			Direction: 1,
			Range:     cfg.MoveRange,
		}
	case KindVertical:
		p.state = &verticalState{
			OriginY:   y,
			Speed:     cfg.VerticalSpeed,
			Direction: 1,
			Range:     cfg.VerticalRange,
		}
	case KindBouncy:
		p.state = &bouncyState{Power: cfg.BouncePower}
	case KindHazard:
		p.state = hazardState{}
	default:
		p.state = plainState{}
	}
}

// conveyorDirection alternates push direction by horizontal parity so a
// field of conveyors splits evenly left/right. Derived once at reinit so
// the direction is stable over the platform's life.
func conveyorDirection(x float64) float64 {
	if int(x)%2 == 0 {
		return 1
	}
	return -1
}

// Rect returns the platform's world-space collision rectangle.
func (p *Platform) Rect() core.RectF {
	return core.NewRectF(p.X-p.Width/2, p.Y, p.Width, p.Height)
}

// Update advances kind-specific timers and oscillation once per tick.
// dt is the tick duration in seconds; worldW bounds horizontal movement.
func (p *Platform) Update(dt, worldW float64) {
	switch s := p.state.(type) {
	case *breakableState:
		if !s.SteppedOn {
			return
		}
		s.Timer += dt
		if s.Timer >= s.Delay {
			p.Active = false
		}

	case *movingState:
		p.X += s.Speed * s.Direction
		if p.X >= s.OriginX+s.Range {
			s.Direction = -1
		} else if p.X <= s.OriginX-s.Range {
			s.Direction = 1
		}

		// Hard clamp to the playfield, reversing on contact.
		margin := p.Width/2 + 10
		if p.X < margin {
			p.X = margin
			s.Direction = 1
		} else if p.X > worldW-margin {
			p.X = worldW - margin
			s.Direction = -1
		}

	case *verticalState:
		p.Y += s.Speed * s.Direction
		if p.Y >= s.OriginY+s.Range {
			s.Direction = -1
		} else if p.Y <= s.OriginY-s.Range {
			s.Direction = 1
		}
	}
}

// markStepped starts the breakable countdown on first contact.
func (p *Platform) markStepped() {
	if s, ok := p.state.(*breakableState); ok && !s.SteppedOn {
		s.SteppedOn = true
		s.Timer = 0
	}
}

// SteppedOn reports whether a breakable platform has been stood on.
func (p *Platform) SteppedOn() bool {
	s, ok := p.state.(*breakableState)
	return ok && s.SteppedOn
}

// BreakProgress returns the elapsed fraction of a breakable's delay in [0, 1].
// Returns 0 for other kinds.
func (p *Platform) BreakProgress() float64 {
	s, ok := p.state.(*breakableState)
	if !ok || !s.SteppedOn || s.Delay <= 0 {
		return 0
	}
	return core.ClampF(s.Timer/s.Delay, 0, 1)
}

// ConveyorPush returns the signed horizontal push speed for conveyor
// platforms and false for every other kind.
func (p *Platform) ConveyorPush() (float64, bool) {
	s, ok := p.state.(*conveyorState)
	if !ok {
		return 0, false
	}
	return s.Speed * s.Direction, true
}

// displacement returns the platform's own per-tick movement, used to carry
// a riding actor along.
func (p *Platform) displacement() (dx, dy float64) {
	switch s := p.state.(type) {
	case *movingState:
		return s.Speed * s.Direction, 0
	case *verticalState:
		return 0, s.Speed * s.Direction
	}
	return 0, 0
}

// bouncePower returns the launch multiplier for bouncy platforms, 0 otherwise.
func (p *Platform) bouncePower() float64 {
	if s, ok := p.state.(*bouncyState); ok {
		return s.Power
	}
	return 0
}
