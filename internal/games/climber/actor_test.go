package climber

import (
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
)

func testPhysics() *config.ClimberPhysics {
	cfg := config.DefaultClimberConfig()
	return &cfg.Physics
}

func testActor() *Actor {
	cfg := config.DefaultClimberConfig()
	return NewActor(400, 300, cfg.Actor)
}

func TestActorGravity(t *testing.T) {
	a := testActor()
	phys := testPhysics()

	a.Update(phys, 800)
	if a.VY != phys.Gravity {
		t.Errorf("After one tick VY = %v, want %v", a.VY, phys.Gravity)
	}

	a.Update(phys, 800)
	if a.VY != 2*phys.Gravity {
		t.Errorf("After two ticks VY = %v, want %v", a.VY, 2*phys.Gravity)
	}

	if a.Y <= 300 {
		t.Errorf("Actor should have fallen below start, Y = %v", a.Y)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	a := testActor()
	phys := testPhysics()

	// Airborne: jump must be ignored
	a.Grounded = false
	a.Jump(phys)
	if a.VY != 0 {
		t.Errorf("Airborne jump changed VY to %v", a.VY)
	}

	// Grounded: jump launches
	a.Grounded = true
	a.Jump(phys)
	if a.VY != phys.JumpImpulse {
		t.Errorf("Grounded jump VY = %v, want %v", a.VY, phys.JumpImpulse)
	}
	if a.Grounded {
		t.Error("Actor should be airborne immediately after jumping")
	}
}

func TestGroundedResetEachTick(t *testing.T) {
	a := testActor()
	phys := testPhysics()

	a.Grounded = true
	a.Update(phys, 800)
	if a.Grounded {
		t.Error("Grounded must be cleared by Update; only a landing may set it")
	}
}

func TestHorizontalBoundsKeepVelocity(t *testing.T) {
	a := testActor()
	phys := testPhysics()

	a.X = 20
	a.VX = -10
	a.Update(phys, 800)

	if a.X != a.HalfW {
		t.Errorf("Actor clamped to X = %v, want %v", a.X, a.HalfW)
	}
	if a.VX != -10 {
		t.Errorf("Clamping changed VX to %v, want -10", a.VX)
	}

	a.X = 790
	a.VX = 10
	a.Update(phys, 800)
	if a.X != 800-a.HalfW {
		t.Errorf("Actor clamped to X = %v, want %v", a.X, 800-a.HalfW)
	}
}

func TestMoveHorizontal(t *testing.T) {
	a := testActor()
	phys := testPhysics()

	a.MoveHorizontal(1, phys)
	if a.VX != phys.HorizontalSpeed {
		t.Errorf("Right input VX = %v, want %v", a.VX, phys.HorizontalSpeed)
	}

	a.MoveHorizontal(-1, phys)
	if a.VX != -phys.HorizontalSpeed {
		t.Errorf("Left input VX = %v, want %v", a.VX, -phys.HorizontalSpeed)
	}

	a.MoveHorizontal(0, phys)
	if a.VX != 0 {
		t.Errorf("No input VX = %v, want 0", a.VX)
	}
}

func TestNoInputOnConveyorKeepsVelocity(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	a := testActor()

	// Even x: conveyor pushes right
	conveyor := NewPlatform(100, 400, 100, 20, KindConveyor, &cfg.Platforms)
	a.OnConveyor = conveyor
	a.VX = 2.5

	a.MoveHorizontal(0, &cfg.Physics)
	if a.VX != 2.5 {
		t.Errorf("Conveyor-carried actor VX = %v, want 2.5 preserved", a.VX)
	}
}

func TestConveyorSpeedCap(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	a := testActor()
	conveyor := NewPlatform(100, 400, 100, 20, KindConveyor, &cfg.Platforms)
	a.OnConveyor = conveyor

	for i := 0; i < 100; i++ {
		a.Update(&cfg.Physics, 800)
	}

	if a.VX > cfg.Physics.MaxConveyorSpeed {
		t.Errorf("VX = %v exceeds conveyor cap %v", a.VX, cfg.Physics.MaxConveyorSpeed)
	}
	if a.VX <= 0 {
		t.Errorf("Rightward conveyor should build positive VX, got %v", a.VX)
	}
}
