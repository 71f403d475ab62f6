// Package config provides YAML-based game configuration loading and
// difficulty management for the climber.
package config

// ClimberConfig contains all configuration for the climbing game.
type ClimberConfig struct {
	Physics    ClimberPhysics   `yaml:"physics"`
	Actor      ClimberActor     `yaml:"actor"`
	World      ClimberWorld     `yaml:"world"`
	Platforms  ClimberPlatforms `yaml:"platforms"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Unlocks    UnlockConfig     `yaml:"unlocks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ClimberPhysics defines the actor's physics parameters.
type ClimberPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"` // Negative = up
	HorizontalSpeed  float64 `yaml:"horizontal_speed"`
	ConveyorDamping  float64 `yaml:"conveyor_damping"`   // Fraction of conveyor push re-applied per tick
	MaxConveyorSpeed float64 `yaml:"max_conveyor_speed"` // Cap on |vx| while riding a conveyor
}

// ClimberActor defines the actor's collision box.
type ClimberActor struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ClimberWorld defines the fixed virtual playfield the simulation runs in.
// The playfield is scaled to the terminal at render time so physics are
// independent of terminal geometry.
type ClimberWorld struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallMargin float64 `yaml:"fall_margin"` // Distance below the view before the run ends
}

// ClimberPlatforms defines per-kind platform behavior parameters.
type ClimberPlatforms struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ConveyorSpeed float64 `yaml:"conveyor_speed"`
	BreakDelay    float64 `yaml:"break_delay"` // Seconds from first contact to collapse
	MoveSpeed     float64 `yaml:"move_speed"`
	MoveRange     float64 `yaml:"move_range"`
	VerticalSpeed float64 `yaml:"vertical_speed"`
	VerticalRange float64 `yaml:"vertical_range"`
	BouncePower   float64 `yaml:"bounce_power"` // Multiplier on jump impulse, > 1
}

// GeneratorConfig defines the procedural layout engine's tuning parameters.
type GeneratorConfig struct {
	MinVerticalGap      float64 `yaml:"min_vertical_gap"`
	MaxVerticalGap      float64 `yaml:"max_vertical_gap"`
	MinHorizontalOffset float64 `yaml:"min_horizontal_offset"`
	JumpHeight          float64 `yaml:"jump_height"`      // Max vertical reach of a single jump
	HorizontalReach     float64 `yaml:"horizontal_reach"` // Max horizontal reach of a single jump
	SafetyMargin        float64 `yaml:"safety_margin"`    // Fraction < 1 applied to both reaches
	MinPlatformsInRange int     `yaml:"min_platforms_in_range"`
	DensityRadius       float64 `yaml:"density_radius"`
	MinSeparation       float64 `yaml:"min_separation"`
	PlacementAttempts   int     `yaml:"placement_attempts"`
	GenerationBuffer    float64 `yaml:"generation_buffer"` // Generate this far above the camera
	CleanupMargin       float64 `yaml:"cleanup_margin"`    // Margin below the view before recycling
	MaxInactive         int     `yaml:"max_inactive"`      // Pool cap; recycled beyond this are dropped
	ValidationInterval  int     `yaml:"validation_interval"`
	SafetyDistance      float64 `yaml:"safety_distance"` // Plain-platform offset beside hazards
	EdgeMargin          float64 `yaml:"edge_margin"`     // Extra margin beyond half a platform width
}

// UnlockConfig gates platform kinds by climb height.
type UnlockConfig struct {
	Conveyor      float64 `yaml:"conveyor"`
	Breakable     float64 `yaml:"breakable"`
	Moving        float64 `yaml:"moving"`
	Vertical      float64 `yaml:"vertical"`
	Bouncy        float64 `yaml:"bouncy"`
	Hazard        float64 `yaml:"hazard"`
	SpecialChance float64 `yaml:"special_chance"` // Base chance of a non-plain kind
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "height", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Height/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpecialChanceBoost float64 `yaml:"special_chance_boost"` // Added to special chance at max difficulty
	GapBoost           float64 `yaml:"gap_boost"`            // Added to max vertical gap at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
