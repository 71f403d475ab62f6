package climber

import (
	"math"
	"sort"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// newTestGenerator builds a generator over the default config with the
// progress tracker pinned at the given climb height.
func newTestGenerator(seed int64, height float64) (*Generator, config.ClimberConfig) {
	cfg := config.DefaultClimberConfig()
	tracker := NewProgressTracker(cfg.Unlocks)
	tracker.MaxHeight = height
	diff := config.NewDifficultyManager(cfg.Difficulty)

	gen := NewGenerator(seed, cfg, tracker, diff)
	ground := NewPlatform(400, 550, 200, cfg.Platforms.Height, KindPlain, &cfg.Platforms)
	gen.Reset(seed, ground)
	return gen, cfg
}

func TestExtendReachesTarget(t *testing.T) {
	gen, _ := newTestGenerator(1, 0)

	gen.Extend(-1000, 0)

	if gen.HighestY() > -1000 {
		t.Errorf("HighestY = %v, want <= -1000", gen.HighestY())
	}

	n := len(gen.Active())
	if n < 10 || n > 100 {
		t.Errorf("Platform count = %d, want a plausible layout (10..100)", n)
	}
}

func TestGapConfigPreventsPlatformSkipping(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	safeV := cfg.Generator.JumpHeight * cfg.Generator.SafetyMargin

	if 2*cfg.Generator.MinVerticalGap <= safeV {
		t.Errorf("Twice the minimum gap (%v) must exceed the safe vertical reach (%v), or one jump could clear two platforms",
			2*cfg.Generator.MinVerticalGap, safeV)
	}
	if cfg.Generator.MaxVerticalGap > safeV {
		t.Errorf("Maximum gap %v exceeds the safe vertical reach %v", cfg.Generator.MaxVerticalGap, safeV)
	}
}

func TestExtendNoOpAtOrAboveHighest(t *testing.T) {
	gen, _ := newTestGenerator(1, 0)
	gen.Extend(-500, 0)

	before := len(gen.Active())
	gen.Extend(gen.HighestY(), 0)
	gen.Extend(gen.HighestY()+300, 0)

	if len(gen.Active()) != before {
		t.Errorf("Extend to an already-covered target changed the layout: %d -> %d",
			before, len(gen.Active()))
	}
}

func TestGeneratedPlatformsStayInField(t *testing.T) {
	gen, cfg := newTestGenerator(7, 0)
	gen.Extend(-2000, 0)

	margin := cfg.Platforms.Width/2 + cfg.Generator.EdgeMargin
	for _, p := range gen.Active() {
		if p.X < margin || p.X > cfg.World.Width-margin {
			t.Errorf("Platform at X = %v outside field margins [%v, %v]",
				p.X, margin, cfg.World.Width-margin)
		}
	}
}

func TestVerticalGapsWithinSafeReach(t *testing.T) {
	gen, cfg := newTestGenerator(3, 0)
	gen.Extend(-1500, 0)

	ys := make([]float64, 0, len(gen.Active()))
	for _, p := range gen.Active() {
		ys = append(ys, p.Y)
	}
	sort.Float64s(ys)

	safeV := cfg.Generator.JumpHeight * cfg.Generator.SafetyMargin
	for i := 1; i < len(ys); i++ {
		if gap := ys[i] - ys[i-1]; gap > safeV {
			t.Errorf("Adjacent vertical gap %v exceeds safe reach %v", gap, safeV)
		}
	}
}

func TestReachablePredicate(t *testing.T) {
	gen, cfg := newTestGenerator(1, 0)
	from := NewPlatform(400, 500, 100, 20, KindPlain, &cfg.Platforms)

	safeH := cfg.Generator.HorizontalReach * cfg.Generator.SafetyMargin
	safeV := cfg.Generator.JumpHeight * cfg.Generator.SafetyMargin

	if !gen.Reachable(from, 400+safeH, 500-safeV) {
		t.Error("Corner of the safe envelope should be reachable")
	}
	if gen.Reachable(from, 400+safeH+1, 500) {
		t.Error("Beyond horizontal reach should be unreachable")
	}
	if gen.Reachable(from, 400, 500-safeV-1) {
		t.Error("Beyond vertical reach should be unreachable")
	}
	// Falling is unconstrained vertically
	if !gen.Reachable(from, 400+safeH, 500+10000) {
		t.Error("Any drop within horizontal reach should be reachable")
	}
}

func TestOnlyPlainBeforeFirstUnlock(t *testing.T) {
	gen, _ := newTestGenerator(5, 0)
	gen.Extend(-3000, 0)

	for _, p := range gen.Active() {
		if p.Kind != KindPlain {
			t.Errorf("Kind %v generated with no unlocks reached", p.Kind)
		}
	}
}

func TestUnlockedKindsAppear(t *testing.T) {
	gen, _ := newTestGenerator(5, 10000)
	gen.Extend(-6000, 0)

	special := 0
	for _, p := range gen.Active() {
		if p.Kind != KindPlain {
			special++
		}
	}
	if special == 0 {
		t.Error("No special platforms generated with every kind unlocked")
	}
}

func TestDeterministicLayout(t *testing.T) {
	g1, _ := newTestGenerator(99, 0)
	g2, _ := newTestGenerator(99, 0)

	g1.Extend(-1200, 0)
	g2.Extend(-1200, 0)

	a, b := g1.Active(), g2.Active()
	if len(a) != len(b) {
		t.Fatalf("Layout sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].Kind != b[i].Kind {
			t.Fatalf("Layouts diverge at %d: (%v,%v,%v) vs (%v,%v,%v)",
				i, a[i].X, a[i].Y, a[i].Kind, b[i].X, b[i].Y, b[i].Kind)
		}
	}
}

func TestSafetyPlatformBesideHazard(t *testing.T) {
	gen, cfg := newTestGenerator(1, 0)

	before := len(gen.Active())
	gen.addSafetyPlatform(400, 300)

	if len(gen.Active()) != before+1 {
		t.Fatal("Safety platform not added")
	}

	safety := gen.Active()[len(gen.Active())-1]
	if safety.Kind != KindPlain {
		t.Errorf("Safety platform kind = %v, want plain", safety.Kind)
	}
	if math.Abs(safety.X-400) != cfg.Generator.SafetyDistance {
		t.Errorf("Safety platform at dx = %v, want %v", math.Abs(safety.X-400), cfg.Generator.SafetyDistance)
	}
	if safety.Y != 300 {
		t.Errorf("Safety platform at Y = %v, want the hazard's level first", safety.Y)
	}
}

func TestSafetyPlatformFallsBackToOtherSide(t *testing.T) {
	gen, cfg := newTestGenerator(1, 0)

	// Block the preferred right-side spot.
	blocker := NewPlatform(400+cfg.Generator.SafetyDistance, 300, 100, 20, KindPlain, &cfg.Platforms)
	gen.active = append(gen.active, blocker)

	gen.addSafetyPlatform(400, 300)

	safety := gen.Active()[len(gen.Active())-1]
	if safety.X != 400-cfg.Generator.SafetyDistance {
		t.Errorf("Safety platform X = %v, want the left side %v",
			safety.X, 400-cfg.Generator.SafetyDistance)
	}
}

func TestGeneratedHazardsHavePlainNeighbor(t *testing.T) {
	hazards := 0
	for seed := int64(1); seed <= 5; seed++ {
		gen, cfg := newTestGenerator(seed, 10000)
		gen.Extend(-5000, 0)

		for _, p := range gen.Active() {
			if p.Kind != KindHazard {
				continue
			}
			hazards++
			if !hasPlainNeighbor(gen, p, cfg.Generator.SafetyDistance) {
				t.Errorf("Seed %d: hazard at (%.0f, %.0f) has no plain platform beside it",
					seed, p.X, p.Y)
			}
		}
	}
	if hazards == 0 {
		t.Fatal("No hazards generated; the scenario exercised nothing")
	}
}

// hasPlainNeighbor reports whether a plain platform sits within the safety
// distance of the hazard, allowing the small vertical offsets the generator
// falls back to.
func hasPlainNeighbor(gen *Generator, hazard *Platform, dist float64) bool {
	for _, other := range gen.Active() {
		if other == hazard || other.Kind != KindPlain {
			continue
		}
		if math.Abs(other.X-hazard.X) <= dist+0.5 && math.Abs(other.Y-hazard.Y) <= 40.5 {
			return true
		}
	}
	return false
}

func TestValidationRepairLeavesLayoutReachable(t *testing.T) {
	gen, _ := newTestGenerator(21, 10000)
	gen.Extend(-3000, 0)

	// Repair can insert platforms that themselves need support, so iterate
	// until the layout settles.
	for i := 0; i < 10; i++ {
		issues := gen.ValidateLayout()
		if len(issues.Unreachable) == 0 {
			break
		}
		gen.RepairLayout(issues)
	}

	if issues := gen.ValidateLayout(); len(issues.Unreachable) != 0 {
		t.Errorf("%d platforms still lack a lower supporter after validation and repair",
			len(issues.Unreachable))
	}
}

func TestSyntheticStartUsesWorldHeight(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	cfg.World.Height = 1200
	tracker := NewProgressTracker(cfg.Unlocks)
	diff := config.NewDifficultyManager(cfg.Difficulty)

	gen := NewGenerator(3, cfg, tracker, diff)
	gen.Reset(3, nil)
	gen.Extend(800, 0)

	// The synthetic start sits 200 above the bottom of the taller world, so
	// the whole layout lands between the target and y=1000.
	if len(gen.Active()) == 0 {
		t.Fatal("Nothing generated")
	}
	for _, p := range gen.Active() {
		if p.Y >= 1000 || p.Y < 600 {
			t.Errorf("Platform at Y = %v outside the expected band [600, 1000)", p.Y)
		}
	}
}

func TestValidateFlagsUnreachable(t *testing.T) {
	gen, cfg := newTestGenerator(1, 0)

	// 170 above the ground platform: beyond the 115.2 safe reach.
	stranded := NewPlatform(400, 380, 100, 20, KindPlain, &cfg.Platforms)
	gen.active = append(gen.active, stranded)

	issues := gen.ValidateLayout()
	if len(issues.Unreachable) != 1 || issues.Unreachable[0] != stranded {
		t.Fatalf("Unreachable = %v, want exactly the stranded platform", issues.Unreachable)
	}
}

func TestRepairRestoresReachability(t *testing.T) {
	gen, cfg := newTestGenerator(1, 0)

	stranded := NewPlatform(400, 380, 100, 20, KindPlain, &cfg.Platforms)
	gen.active = append(gen.active, stranded)

	gen.RepairLayout(gen.ValidateLayout())

	issues := gen.ValidateLayout()
	if len(issues.Unreachable) != 0 {
		t.Errorf("Still %d unreachable platforms after repair", len(issues.Unreachable))
	}
}

func TestCleanupRecyclesAndIsIdempotent(t *testing.T) {
	gen, cfg := newTestGenerator(11, 0)
	gen.Extend(-1000, 0)

	total := len(gen.Active())
	threshold := 0.0 // Everything below y=0 is out of play

	gen.Cleanup(threshold)
	remaining := len(gen.Active())
	if remaining >= total {
		t.Fatal("Cleanup removed nothing")
	}
	for _, p := range gen.Active() {
		if p.Y > threshold {
			t.Errorf("Platform at Y = %v survived cleanup below %v", p.Y, threshold)
		}
	}
	if gen.PoolSize() > cfg.Generator.MaxInactive {
		t.Errorf("Pool size %d exceeds cap %d", gen.PoolSize(), cfg.Generator.MaxInactive)
	}

	// Second pass with the same threshold must be a no-op.
	gen.Cleanup(threshold)
	if len(gen.Active()) != remaining {
		t.Error("Cleanup is not idempotent")
	}
}

func TestPoolReuse(t *testing.T) {
	gen, _ := newTestGenerator(13, 0)
	gen.Extend(-600, 0)

	// Recycle everything, then generate again from the pool.
	gen.Cleanup(-100000)
	if gen.PoolSize() == 0 {
		t.Fatal("Expected a populated pool after cleanup")
	}

	gen.Extend(-600, 0)
	if gen.Stats().Reused == 0 {
		t.Error("Generation after cleanup allocated instead of reusing the pool")
	}
}

func TestForceCleanupShrinksPool(t *testing.T) {
	gen, _ := newTestGenerator(13, 0)
	gen.Extend(-600, 0)
	gen.Cleanup(-100000)

	gen.ForceCleanup(2)
	if gen.PoolSize() > 2 {
		t.Errorf("PoolSize = %d after ForceCleanup(2)", gen.PoolSize())
	}

	gen.ForceCleanup(0)
	if gen.PoolSize() != 0 {
		t.Errorf("PoolSize = %d after ForceCleanup(0)", gen.PoolSize())
	}
}

func TestCollapsedPlatformsAreRecycled(t *testing.T) {
	gen, cfg := newTestGenerator(1, 0)

	broken := NewPlatform(200, 400, 100, 20, KindBreakable, &cfg.Platforms)
	broken.markStepped()
	broken.Active = false
	gen.active = append(gen.active, broken)

	gen.Cleanup(10000)

	for _, p := range gen.Active() {
		if p == broken {
			t.Fatal("Collapsed platform still in the active list")
		}
	}
	if gen.PoolSize() == 0 {
		t.Error("Collapsed platform was not pooled")
	}
}
