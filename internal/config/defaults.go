package config

import (
	_ "embed"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

// DefaultClimberConfig returns the default climber configuration.
// The vertical gap range and reach constants satisfy the no-skip rule:
// twice the minimum gap (120) exceeds the safe vertical reach (144 * 0.8).
func DefaultClimberConfig() ClimberConfig {
	return ClimberConfig{
		Physics: ClimberPhysics{
			Gravity:          0.5,
			JumpImpulse:      -12,
			HorizontalSpeed:  3,
			ConveyorDamping:  0.5,
			MaxConveyorSpeed: 8.0,
		},
		Actor: ClimberActor{
			Width:  32,
			Height: 32,
		},
		World: ClimberWorld{
			Width:      800,
			Height:     600,
			FallMargin: 50,
		},
		Platforms: ClimberPlatforms{
			Width:         100,
			Height:        20,
			ConveyorSpeed: 3.5,
			BreakDelay:    1.0,
			MoveSpeed:     1.0,
			MoveRange:     100,
			VerticalSpeed: 0.8,
			VerticalRange: 80,
			BouncePower:   2.0,
		},
		Generator: GeneratorConfig{
			MinVerticalGap:      60,
			MaxVerticalGap:      100,
			MinHorizontalOffset: 40,
			JumpHeight:          144,
			HorizontalReach:     144,
			SafetyMargin:        0.8,
			MinPlatformsInRange: 2,
			DensityRadius:       200,
			MinSeparation:       80,
			PlacementAttempts:   10,
			GenerationBuffer:    800,
			CleanupMargin:       200,
			MaxInactive:         50,
			ValidationInterval:  10,
			SafetyDistance:      150,
			EdgeMargin:          20,
		},
		Unlocks: UnlockConfig{
			Conveyor:      1000,
			Breakable:     2000,
			Moving:        3000,
			Vertical:      3500,
			Bouncy:        3750,
			Hazard:        4000,
			SpecialChance: 0.3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "height",
				MaxAt: 8000,
			},
			Scaling: ScalingConfig{
				SpecialChanceBoost: 0.15,
				GapBoost:           15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for the game.
func GetDefaultYAML() []byte {
	return defaultClimberYAML
}
