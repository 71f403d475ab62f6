package config

import "math"

// DifficultyManager calculates dynamic generation parameters based on
// climb height or elapsed time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on height/ticks.
func (d *DifficultyManager) Level(height int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "height":
		progress = float64(height) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpecialChance returns the current probability of generating a non-plain
// platform kind.
func (d *DifficultyManager) SpecialChance(base float64, height int, ticks int) float64 {
	level := d.Level(height, ticks)
	return clampF(base+level*d.cfg.Scaling.SpecialChanceBoost, 0.0, 0.9)
}

// MaxVerticalGap returns the current upper bound of the vertical gap range.
// The safe vertical reach caps the result so widening the gap can never
// produce an unreachable step.
func (d *DifficultyManager) MaxVerticalGap(base, safeReach float64, height int, ticks int) float64 {
	level := d.Level(height, ticks)
	gap := base + level*d.cfg.Scaling.GapBoost
	return math.Min(gap, safeReach)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
