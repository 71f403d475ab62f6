package climber

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// fallbackOffset is the conservative horizontal step used when the bounded
// candidate search fails; availability beats strictness here.
const fallbackOffset = 60.0

// ProgressSource is the generator's read-only view of run progress. The
// progress tracker implements it; the generator never mutates it.
type ProgressSource interface {
	HeightProgress() float64
	UnlockedKinds() []Kind
}

// Stats tracks pool and generation counters for diagnostics.
type Stats struct {
	Created   int
	Reused    int
	Cleaned   int
	MaxActive int
}

// DensityIssue pairs a platform with its measured in-reach neighbor count.
type DensityIssue struct {
	Platform *Platform
	Count    int
}

// LayoutIssues is the result of a validation pass.
type LayoutIssues struct {
	Unreachable []*Platform
	LowDensity  []DensityIssue
}

// Generator is the procedural layout engine: it extends the platform field
// ahead of the camera, recycles platforms that fall behind, and keeps the
// layout climbable.
//
// Placement is constrained by a safe reach envelope derived from the actor's
// jump physics scaled by a safety margin, so every accepted position is
// reachable from its anchor with room for timing error.
type Generator struct {
	cfg        config.GeneratorConfig
	platforms  config.ClimberPlatforms
	unlocks    config.UnlockConfig
	difficulty *config.DifficultyManager
	progress   ProgressSource
	worldW     float64
	worldH     float64

	rng *rand.Rand

	active   []*Platform
	inactive []*Platform

	highestY        float64 // Smallest world y generated so far
	sinceValidation int
	stats           Stats
}

// NewGenerator creates a generator seeded for deterministic layouts.
func NewGenerator(seed int64, cfg config.ClimberConfig, progress ProgressSource, diff *config.DifficultyManager) *Generator {
	g := &Generator{
		cfg:        cfg.Generator,
		platforms:  cfg.Platforms,
		unlocks:    cfg.Unlocks,
		difficulty: diff,
		progress:   progress,
		worldW:     cfg.World.Width,
		worldH:     cfg.World.Height,
		rng:        rand.New(rand.NewSource(seed)),
		active:     make([]*Platform, 0, 64),
	}
	return g
}

// UpdateConfig swaps in a freshly loaded configuration and progress source
// between runs. The inactive pool survives so recycled capacity carries over.
func (g *Generator) UpdateConfig(cfg config.ClimberConfig, progress ProgressSource, diff *config.DifficultyManager) {
	g.cfg = cfg.Generator
	g.platforms = cfg.Platforms
	g.unlocks = cfg.Unlocks
	g.worldW = cfg.World.Width
	g.worldH = cfg.World.Height
	g.progress = progress
	g.difficulty = diff
}

// Reset clears all platforms, reseeds the RNG, and installs the starting
// platform the rest of the layout grows from.
func (g *Generator) Reset(seed int64, start *Platform) {
	g.active = g.active[:0]
	g.inactive = g.inactive[:0]
	g.rng = rand.New(rand.NewSource(seed))
	g.sinceValidation = 0
	g.stats = Stats{}
	g.highestY = 0

	if start != nil {
		g.active = append(g.active, start)
		g.highestY = start.Y
	}
}

// Active returns the live platform list. Callers must treat it as read-only;
// its order is the resolver's tie-break order.
func (g *Generator) Active() []*Platform {
	return g.active
}

// HighestY returns the world y of the highest platform generated so far.
func (g *Generator) HighestY() float64 {
	return g.highestY
}

// Stats returns pool and generation counters.
func (g *Generator) Stats() Stats {
	s := g.stats
	if len(g.active) > s.MaxActive {
		s.MaxActive = len(g.active)
	}
	return s
}

// PoolSize returns the number of platforms held for reuse.
func (g *Generator) PoolSize() int {
	return len(g.inactive)
}

// Update runs one generation step: extend the layout past the frontier,
// validate and repair at the configured cadence, then recycle platforms
// below the cleanup threshold. Both thresholds come from the camera.
func (g *Generator) Update(frontier, cleanupThreshold float64, ticks int) {
	if g.highestY > frontier {
		g.Extend(frontier, ticks)

		if g.cfg.ValidationInterval > 0 && g.sinceValidation >= g.cfg.ValidationInterval {
			g.sinceValidation = 0
			issues := g.ValidateLayout()
			if len(issues.Unreachable) > 0 || len(issues.LowDensity) > 2 {
				g.RepairLayout(issues)
			}
		}
	}

	g.Cleanup(cleanupThreshold)
}

// Tick advances every active platform's own behavior (break timers,
// oscillation). dt is the tick duration in seconds.
func (g *Generator) Tick(dt float64) {
	for _, p := range g.active {
		if p.Active {
			p.Update(dt, g.worldW)
		}
	}
}

// Extend generates platforms upward until the layout passes targetY.
// A target at or above the current highest platform is a no-op.
func (g *Generator) Extend(targetY float64, ticks int) {
	var anchor *Platform
	currentX := g.worldW / 2
	currentY := g.worldH - 200 // Synthetic start near the bottom of the view

	if len(g.active) > 0 {
		anchor = g.highestPlatform()
		currentX = anchor.X
		currentY = anchor.Y
	}

	height := int(g.progress.HeightProgress())

	for currentY > targetY {
		safeV := g.cfg.JumpHeight * g.cfg.SafetyMargin
		maxGap := g.difficulty.MaxVerticalGap(g.cfg.MaxVerticalGap, safeV, height, ticks)
		gap := g.cfg.MinVerticalGap + g.rng.Float64()*(maxGap-g.cfg.MinVerticalGap)
		nextY := currentY - gap

		var nextX float64
		if anchor != nil {
			if pos, ok := g.findReachablePosition(anchor, nextY); ok {
				nextX, nextY = pos.X, pos.Y
			} else {
				// Conservative fallback: short hop straight up-ish.
				nextY = currentY - g.cfg.MinVerticalGap
				nextX = currentX + (g.rng.Float64()*2-1)*fallbackOffset
			}
		} else {
			nextX = currentX + (g.rng.Float64()*2-1)*math.Min(g.cfg.HorizontalReach, 100)
		}

		nextX = g.clampToField(nextX)

		// Nudge sideways if the spot is already taken.
		if g.overlapsExisting(nextX, nextY) {
			for _, offset := range []float64{40, -40, 80, -80} {
				testX := nextX + offset
				if !g.overlapsExisting(testX, nextY) && g.inField(testX) {
					nextX = testX
					break
				}
			}
		}

		kind := g.selectKind(height, ticks)
		p := g.createPlatform(nextX, nextY, kind)
		g.active = append(g.active, p)
		g.sinceValidation++

		// A hazard must never be the only reachable target. When no spot
		// for an escape route exists, the hazard itself gives way.
		if kind == KindHazard && !g.addSafetyPlatform(nextX, nextY) {
			p.Reinit(nextX, nextY, KindPlain, &g.platforms)
			kind = KindPlain
		}

		// Density is only enforced around plain platforms so special kinds
		// keep their intentional rarity.
		if kind == KindPlain {
			g.ensureMinimumDensity(nextX, nextY)
		}

		anchor = p
		currentX = nextX
		currentY = nextY
		if nextY < g.highestY {
			g.highestY = nextY
		}
	}
}

// Reachable reports whether a jump from the given platform can land at
// (toX, toY) inside the safe reach envelope. Falling is unconstrained;
// climbing is limited by the safe vertical reach.
func (g *Generator) Reachable(from *Platform, toX, toY float64) bool {
	dx := core.AbsF(toX - from.X)
	dy := from.Y - toY // Positive = target is higher

	safeH := g.cfg.HorizontalReach * g.cfg.SafetyMargin
	safeV := g.cfg.JumpHeight * g.cfg.SafetyMargin

	if dx > safeH {
		return false
	}
	if dy <= 0 {
		return true
	}
	return dy <= safeV
}

// findReachablePosition tries a bounded number of random candidate offsets
// from the anchor and returns the first that is reachable, inside the
// field, and clear of existing platforms. The offset magnitude is bounded
// below so the layout never degenerates into a straight vertical ladder.
// The boolean result is false when every attempt failed.
func (g *Generator) findReachablePosition(from *Platform, targetY float64) (core.Vec, bool) {
	safeV := g.cfg.JumpHeight * g.cfg.SafetyMargin
	safeH := g.cfg.HorizontalReach * g.cfg.SafetyMargin

	// Pull the target down into jump range if the gap overshot it.
	if maxUp := from.Y - safeV; targetY < maxUp {
		targetY = maxUp
	}

	maxOffset := safeH * 0.7 // Conservative: leave air-control headroom
	minOffset := math.Min(g.cfg.MinHorizontalOffset, maxOffset)

	for i := 0; i < g.cfg.PlacementAttempts; i++ {
		mag := minOffset + g.rng.Float64()*(maxOffset-minOffset)
		if g.rng.Intn(2) == 0 {
			mag = -mag
		}

		// Clamping shrinks the offset for anchors pinned against an edge
		// rather than letting the candidate leave the field.
		candidateX := g.clampToField(from.X + mag)

		if g.Reachable(from, candidateX, targetY) && !g.overlapsExisting(candidateX, targetY) {
			return core.Vec{X: candidateX, Y: targetY}, true
		}
	}

	return core.Vec{}, false
}

// selectKind picks a platform kind: plain with high base probability, else
// a uniform choice among the kinds unlocked at the current progress.
func (g *Generator) selectKind(height, ticks int) Kind {
	unlocked := g.progress.UnlockedKinds()
	if len(unlocked) == 0 {
		return KindPlain
	}

	chance := g.difficulty.SpecialChance(g.unlocks.SpecialChance, height, ticks)
	if g.rng.Float64() >= chance {
		return KindPlain
	}
	return unlocked[g.rng.Intn(len(unlocked))]
}

// addSafetyPlatform places a plain platform a fixed distance beside a new
// hazard so the hazard is never the sole reachable target. Both sides are
// tried at the hazard's level, then again slightly above and below. Returns
// false when every spot is taken or out of field; the caller must then back
// out the hazard.
func (g *Generator) addSafetyPlatform(hazardX, hazardY float64) bool {
	for _, dy := range []float64{0, -40, 40} {
		y := hazardY + dy
		for _, dir := range []float64{1, -1} {
			x := hazardX + dir*g.cfg.SafetyDistance
			if !g.inField(x) {
				continue
			}
			if g.overlapsExisting(x, y) {
				continue
			}
			g.active = append(g.active, g.createPlatform(x, y, KindPlain))
			return true
		}
	}
	return false
}

// densityAt counts active platforms near (x, y) that are also within safe
// jump distance.
func (g *Generator) densityAt(x, y float64) int {
	safeH := g.cfg.HorizontalReach * g.cfg.SafetyMargin
	safeV := g.cfg.JumpHeight * g.cfg.SafetyMargin

	count := 0
	for _, p := range g.active {
		if !p.Active {
			continue
		}
		dx := core.AbsF(p.X - x)
		dy := core.AbsF(p.Y - y)
		if dx <= g.cfg.DensityRadius && dy <= g.cfg.DensityRadius &&
			dx <= safeH && dy <= safeV {
			count++
		}
	}
	return count
}

// ensureMinimumDensity synthesizes filler platforms around (x, y) until the
// in-reach neighbor count meets the configured minimum.
func (g *Generator) ensureMinimumDensity(x, y float64) {
	needed := g.cfg.MinPlatformsInRange - g.densityAt(x, y)
	for i := 0; i < needed; i++ {
		pos, ok := g.findFillPosition(x, y)
		if !ok {
			return
		}
		g.active = append(g.active, g.createPlatform(pos.X, pos.Y, KindPlain))
	}
}

// findFillPosition searches for a clear spot near (x, y) for a filler
// platform, mostly above the reference point.
func (g *Generator) findFillPosition(nearX, nearY float64) (core.Vec, bool) {
	for i := 0; i < 20; i++ {
		offsetX := (g.rng.Float64()*2 - 1) * g.cfg.MinSeparation
		offsetY := -g.cfg.MinSeparation + g.rng.Float64()*(g.cfg.MinSeparation+20)

		x := g.clampToField(nearX + offsetX)
		y := nearY + offsetY

		if !g.overlapsExisting(x, y) {
			return core.Vec{X: x, Y: y}, true
		}
	}
	return core.Vec{}, false
}

// overlapsExisting reports whether (x, y) lies within the minimum
// separation of any active platform.
func (g *Generator) overlapsExisting(x, y float64) bool {
	for _, p := range g.active {
		if !p.Active {
			continue
		}
		if core.AbsF(p.X-x) < g.cfg.MinSeparation && core.AbsF(p.Y-y) < g.cfg.MinSeparation {
			return true
		}
	}
	return false
}

// ValidateLayout scans the active layout bottom-to-top and flags platforms
// no lower platform can reach, plus under-dense neighborhoods. It is the
// safety net for edge cases the incremental generator's bounded-retry
// fallback may have introduced.
func (g *Generator) ValidateLayout() LayoutIssues {
	var issues LayoutIssues

	sorted := make([]*Platform, 0, len(g.active))
	for _, p := range g.active {
		if p.Active {
			sorted = append(sorted, p)
		}
	}
	// Bottom first: larger world y is lower.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	for i, p := range sorted {
		if i > 0 { // The lowest platform needs no supporter
			supported := false
			for _, other := range sorted {
				if other.Y > p.Y && g.Reachable(other, p.X, p.Y) {
					supported = true
					break
				}
			}
			if !supported {
				issues.Unreachable = append(issues.Unreachable, p)
			}
		}

		if d := g.densityAt(p.X, p.Y); d < g.cfg.MinPlatformsInRange {
			issues.LowDensity = append(issues.LowDensity, DensityIssue{Platform: p, Count: d})
		}
	}

	return issues
}

// RepairLayout inserts corrective platforms for the issues a validation
// pass found: a midpoint stepping stone for each unreachable platform, and
// density fillers for each sparse neighborhood.
func (g *Generator) RepairLayout(issues LayoutIssues) {
	for _, p := range issues.Unreachable {
		nearest := g.nearestLower(p)
		if nearest == nil {
			continue
		}
		midX := (nearest.X + p.X) / 2
		midY := (nearest.Y + p.Y) / 2
		// Nudge sideways when the midpoint itself is taken.
		for _, offset := range []float64{0, 40, -40, 80, -80} {
			x := g.clampToField(midX + offset)
			if g.overlapsExisting(x, midY) {
				continue
			}
			g.active = append(g.active, g.createPlatform(x, midY, KindPlain))
			break
		}
	}

	for _, issue := range issues.LowDensity {
		needed := g.cfg.MinPlatformsInRange - issue.Count
		for i := 0; i < needed; i++ {
			pos, ok := g.findFillPosition(issue.Platform.X, issue.Platform.Y)
			if !ok {
				break
			}
			g.active = append(g.active, g.createPlatform(pos.X, pos.Y, KindPlain))
		}
	}
}

// nearestLower returns the closest active platform below p by Euclidean
// distance, or nil if none exists.
func (g *Generator) nearestLower(p *Platform) *Platform {
	var nearest *Platform
	best := math.Inf(1)
	for _, other := range g.active {
		if !other.Active || other.Y <= p.Y {
			continue
		}
		d := math.Hypot(other.X-p.X, other.Y-p.Y)
		if d < best {
			best = d
			nearest = other
		}
	}
	return nearest
}

// Cleanup recycles platforms below the threshold (and any that deactivated
// themselves, like collapsed breakables). Recycled platforms go to the
// inactive pool up to its cap; the rest are dropped to bound memory.
// Calling it again with the same threshold removes nothing further.
func (g *Generator) Cleanup(threshold float64) {
	kept := g.active[:0]
	for _, p := range g.active {
		if p.Active && p.Y <= threshold {
			kept = append(kept, p)
			continue
		}
		p.Active = false
		if len(g.inactive) < g.cfg.MaxInactive {
			g.inactive = append(g.inactive, p)
		}
		g.stats.Cleaned++
	}
	g.active = kept

	if len(g.active) > g.stats.MaxActive {
		g.stats.MaxActive = len(g.active)
	}
}

// ForceCleanup shrinks the inactive pool to at most keep entries, for use
// under external memory pressure.
func (g *Generator) ForceCleanup(keep int) {
	if keep < 0 {
		keep = 0
	}
	if len(g.inactive) > keep {
		g.stats.Cleaned += len(g.inactive) - keep
		g.inactive = g.inactive[:keep]
	}
}

// createPlatform pops a pooled platform if one is available, otherwise
// allocates. Either way the instance is fully reinitialized for its kind.
func (g *Generator) createPlatform(x, y float64, kind Kind) *Platform {
	if n := len(g.inactive); n > 0 {
		p := g.inactive[n-1]
		g.inactive = g.inactive[:n-1]
		p.Width = g.platforms.Width
		p.Height = g.platforms.Height
		p.Reinit(x, y, kind, &g.platforms)
		g.stats.Reused++
		return p
	}

	g.stats.Created++
	return NewPlatform(x, y, g.platforms.Width, g.platforms.Height, kind, &g.platforms)
}

// clampToField keeps a platform center inside the playfield margins.
func (g *Generator) clampToField(x float64) float64 {
	margin := g.fieldMargin()
	return core.ClampF(x, margin, g.worldW-margin)
}

// inField reports whether a platform centered at x fits inside the margins.
func (g *Generator) inField(x float64) bool {
	margin := g.fieldMargin()
	return x >= margin && x <= g.worldW-margin
}

func (g *Generator) fieldMargin() float64 {
	return g.platforms.Width/2 + g.cfg.EdgeMargin
}

// highestPlatform returns the active platform with the smallest world y.
func (g *Generator) highestPlatform() *Platform {
	var highest *Platform
	for _, p := range g.active {
		if highest == nil || p.Y < highest.Y {
			highest = p
		}
	}
	return highest
}
