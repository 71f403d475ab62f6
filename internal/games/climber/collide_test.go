package climber

import (
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// fallingActorAt returns an actor falling onto a platform top at the given y.
func fallingActorAt(x, platformY float64) *Actor {
	cfg := config.DefaultClimberConfig()
	a := NewActor(x, platformY-10, cfg.Actor)
	a.VY = 5
	return a
}

func TestLandingSnapsAndGrounds(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindPlain, &cfg.Platforms)
	a := fallingActorAt(400, 350)

	landing, ok := ResolveCollision(a, []*Platform{p}, &cfg.Physics)
	if !ok {
		t.Fatal("Expected a landing")
	}
	if landing.Kind != KindPlain {
		t.Errorf("Landing kind = %v, want plain", landing.Kind)
	}

	wantY := 350 - a.HalfH + 1
	if a.Y != wantY {
		t.Errorf("Snapped Y = %v, want %v", a.Y, wantY)
	}
	if a.VY != 0 {
		t.Errorf("VY after landing = %v, want 0", a.VY)
	}
	if !a.Grounded {
		t.Error("Actor should be grounded after landing")
	}
}

func TestNoLandingWhileRising(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindPlain, &cfg.Platforms)

	// Overlapping from below on the way up must pass through.
	a := NewActor(400, 360, cfg.Actor)
	a.VY = -8

	if _, ok := ResolveCollision(a, []*Platform{p}, &cfg.Physics); ok {
		t.Error("Rising actor landed; platforms must be passable from below")
	}
}

func TestNoLandingOnInactivePlatform(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindPlain, &cfg.Platforms)
	p.Active = false
	a := fallingActorAt(400, 350)

	if _, ok := ResolveCollision(a, []*Platform{p}, &cfg.Physics); ok {
		t.Error("Landed on an inactive platform")
	}
}

func TestFirstMatchWins(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	first := NewPlatform(400, 350, 100, 20, KindPlain, &cfg.Platforms)
	second := NewPlatform(410, 350, 100, 20, KindBouncy, &cfg.Platforms)
	a := fallingActorAt(405, 350)

	landing, ok := ResolveCollision(a, []*Platform{first, second}, &cfg.Physics)
	if !ok {
		t.Fatal("Expected a landing")
	}
	if landing.Platform != first {
		t.Error("Resolver must apply the first matching platform in slice order")
	}
	if !a.Grounded {
		t.Error("Plain landing should ground the actor, bouncy must not have applied")
	}
}

func TestBouncyLaunch(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindBouncy, &cfg.Platforms)
	a := fallingActorAt(400, 350)

	_, ok := ResolveCollision(a, []*Platform{p}, &cfg.Physics)
	if !ok {
		t.Fatal("Expected a landing")
	}

	want := cfg.Physics.JumpImpulse * cfg.Platforms.BouncePower
	if a.VY != want {
		t.Errorf("Bounce VY = %v, want %v", a.VY, want)
	}
	if a.Grounded {
		t.Error("Bounced actor must be airborne, never grounded")
	}
	if a.Y != 350-a.HalfH+1 {
		t.Errorf("Bounce should still snap Y, got %v", a.Y)
	}
}

func TestConveyorLandingPushesAndTracks(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	// Even x: pushes right
	p := NewPlatform(400, 350, 100, 20, KindConveyor, &cfg.Platforms)
	a := fallingActorAt(400, 350)

	_, ok := ResolveCollision(a, []*Platform{p}, &cfg.Physics)
	if !ok {
		t.Fatal("Expected a landing")
	}
	if a.OnConveyor != p {
		t.Error("Actor should track the conveyor it landed on")
	}
	if a.VX != cfg.Platforms.ConveyorSpeed {
		t.Errorf("Conveyor landing VX = %v, want %v", a.VX, cfg.Platforms.ConveyorSpeed)
	}
}

func TestConveyorContactPersistsWhileGrounded(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindConveyor, &cfg.Platforms)
	a := fallingActorAt(400, 350)

	ResolveCollision(a, []*Platform{p}, &cfg.Physics)

	// Next tick: still resting on the surface, no vertical motion.
	a.Grounded = true
	a.VY = 0
	_, ok := ResolveCollision(a, []*Platform{p}, &cfg.Physics)
	if !ok || a.OnConveyor != p {
		t.Error("Grounded actor on a conveyor surface must keep contact")
	}
}

func TestResolveClearsStaleConveyor(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindConveyor, &cfg.Platforms)
	a := NewActor(100, 100, cfg.Actor)
	a.OnConveyor = p

	// Far from any platform: the stale reference must clear.
	if _, ok := ResolveCollision(a, []*Platform{p}, &cfg.Physics); ok {
		t.Fatal("Unexpected landing")
	}
	if a.OnConveyor != nil {
		t.Error("OnConveyor not cleared after leaving the conveyor")
	}
}

func TestBreakableLandingStartsCountdown(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindBreakable, &cfg.Platforms)
	a := fallingActorAt(400, 350)

	ResolveCollision(a, []*Platform{p}, &cfg.Physics)
	if !p.SteppedOn() {
		t.Error("Breakable not marked after a landing")
	}
}

func TestHazardLandingSetsFlag(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindHazard, &cfg.Platforms)
	a := fallingActorAt(400, 350)

	ResolveCollision(a, []*Platform{p}, &cfg.Physics)
	if !a.HazardTouched {
		t.Error("Hazard contact did not set the flag")
	}
}

func TestMovingPlatformCarriesActor(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	p := NewPlatform(400, 350, 100, 20, KindMoving, &cfg.Platforms)
	a := fallingActorAt(400, 350)

	xBefore := a.X
	ResolveCollision(a, []*Platform{p}, &cfg.Physics)

	dx, _ := p.displacement()
	if a.X != xBefore+dx {
		t.Errorf("Actor X = %v, want carried to %v", a.X, xBefore+dx)
	}
}
