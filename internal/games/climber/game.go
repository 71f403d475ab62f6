// Package climber implements an endless vertical climbing game.
// The player jumps between procedurally generated platforms, climbing as
// high as possible while the camera scrolls one way only.
package climber

import (
	"fmt"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
)

// Visual characters for rendering
const (
	PlainChar     = '▀'
	ConveyorLeft  = '«'
	ConveyorRight = '»'
	BreakChar     = '▒'
	MovingChar    = '─'
	VerticalChar  = '╌'
	BouncyChar    = '▄'
	HazardChar    = '▲'
	ActorBody     = '█'
	ActorEye      = '●'
)

// milestoneFlashTicks is how long a milestone banner stays on screen.
const milestoneFlashTicks = 120

// Game implements the climbing game logic on a fixed virtual playfield.
// Physics run in world units; the playfield is scaled to the terminal at
// render time so simulation is independent of screen size.
type Game struct {
	actor     *Actor
	camera    *Camera
	generator *Generator
	tracker   *ProgressTracker

	cfg        config.ClimberConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	tickCount int
	gameOver  bool
	paused    bool

	milestone      string // Last milestone label, shown briefly
	milestoneUntil int    // Tick at which the banner disappears
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new climber game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "climber"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frog Climber"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadClimber(configPath)
	if err != nil {
		cfg = config.DefaultClimberConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyClimberPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	w := cfg.World.Width
	h := cfg.World.Height

	g.actor = NewActor(w/2, h-100, cfg.Actor)
	g.camera = NewCamera(cfg.World)

	g.tracker = NewProgressTracker(cfg.Unlocks)

	// The starting platform is wide enough that the spawn cannot miss it.
	ground := NewPlatform(w/2, h-50, 200, cfg.Platforms.Height, KindPlain, &cfg.Platforms)

	if g.generator == nil {
		g.generator = NewGenerator(runtime.Seed, cfg, g.tracker, g.difficulty)
	} else {
		g.generator.UpdateConfig(cfg, g.tracker, g.difficulty)
	}
	g.generator.Reset(runtime.Seed, ground)

	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.milestone = ""
	g.milestoneUntil = 0

	// Fill the initial view plus the lookahead buffer before the first tick.
	g.generator.Update(
		g.camera.Frontier(cfg.Generator.GenerationBuffer),
		g.camera.CleanupThreshold(cfg.Generator.CleanupMargin),
		0,
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionJump) {
		g.actor.Jump(&g.cfg.Physics)
	}
	g.actor.MoveHorizontal(g.inputDir(in), &g.cfg.Physics)

	// Platforms move before the actor so landings snap onto current
	// positions, then the actor integrates and collisions resolve.
	g.generator.Tick(g.dt())
	g.actor.Update(&g.cfg.Physics, g.cfg.World.Width)

	if landing, ok := ResolveCollision(g.actor, g.generator.Active(), &g.cfg.Physics); ok {
		g.tracker.RecordLanding(landing.Kind)
	}

	g.camera.Update(g.actor)
	for _, label := range g.tracker.Update(g.camera) {
		g.milestone = label
		g.milestoneUntil = g.tickCount + milestoneFlashTicks
	}

	if g.actor.HazardTouched {
		g.gameOver = true
	}
	if g.camera.IsBelowView(g.actor, g.cfg.World.FallMargin) {
		g.gameOver = true
	}

	g.generator.Update(
		g.camera.Frontier(g.cfg.Generator.GenerationBuffer),
		g.camera.CleanupThreshold(g.cfg.Generator.CleanupMargin),
		g.tickCount,
	)

	return core.StepResult{State: g.State()}
}

// inputDir collapses the left/right actions into a single direction.
func (g *Game) inputDir(in core.InputFrame) int {
	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	return dir
}

// dt returns the tick duration in seconds.
func (g *Game) dt() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, p := range g.generator.Active() {
		if p.Active && g.camera.IsVisible(p.Y, p.Height) {
			g.drawPlatform(dst, p)
		}
	}

	g.drawActor(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Height: %d  Score: %d  |  Press R to restart",
				int(g.tracker.MaxHeight), g.tracker.Score))
	}
}

// toCellX converts a world x to a column on the destination screen.
// Projection uses the screen's own dimensions so a terminal resize only
// rescales the view without touching the simulation.
func (g *Game) toCellX(dst *core.Screen, worldX float64) int {
	return int(worldX * float64(dst.Width()) / g.cfg.World.Width)
}

// toCellY converts a view-relative y to a row on the destination screen.
func (g *Game) toCellY(dst *core.Screen, viewY float64) int {
	return int(viewY * float64(dst.Height()) / g.cfg.World.Height)
}

// drawPlatform renders one platform as a horizontal run of cells.
func (g *Game) drawPlatform(dst *core.Screen, p *Platform) {
	y := g.toCellY(dst, g.camera.WorldToViewY(p.Y))
	left := g.toCellX(dst, p.X-p.Width/2)
	width := core.Max(1, g.toCellX(dst, p.X+p.Width/2)-left)

	r, c := g.platformLook(p)
	dst.DrawRectColored(core.NewRect(left, y, width, 1), r, c)
}

// platformLook picks the rune and color for a platform kind.
func (g *Game) platformLook(p *Platform) (rune, core.Color) {
	switch p.Kind {
	case KindConveyor:
		if push, _ := p.ConveyorPush(); push < 0 {
			return ConveyorLeft, core.ColorGray
		}
		return ConveyorRight, core.ColorGray

	case KindBreakable:
		// Flash red as the collapse approaches.
		if p.BreakProgress() > 0.6 {
			return BreakChar, core.ColorBrightRed
		}
		return BreakChar, core.ColorOrange

	case KindMoving:
		return MovingChar, core.ColorMagenta

	case KindVertical:
		return VerticalChar, core.ColorCyan

	case KindBouncy:
		return BouncyChar, core.ColorBrightMagenta

	case KindHazard:
		return HazardChar, core.ColorRed

	default:
		return PlainChar, core.ColorYellow
	}
}

// drawActor renders the frog.
func (g *Game) drawActor(dst *core.Screen) {
	x := g.toCellX(dst, g.actor.X)
	y := g.toCellY(dst, g.camera.WorldToViewY(g.actor.Y))

	// Simple frog sprite (3x2)
	//  ● ●
	//  ███
	dst.SetCell(x-1, y-1, ActorEye, core.ColorBrightGreen)
	dst.SetCell(x+1, y-1, ActorEye, core.ColorBrightGreen)
	dst.SetCell(x-1, y, ActorBody, core.ColorGreen)
	dst.SetCell(x, y, ActorBody, core.ColorGreen)
	dst.SetCell(x+1, y, ActorBody, core.ColorGreen)
}

// drawHUD renders score, height, and milestone info.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Height: %d  Score: %d ", int(g.tracker.CurrentHeight), g.tracker.Score)
	dst.DrawText(2, 0, hud)

	if next, ok := g.tracker.NextMilestone(); ok {
		text := fmt.Sprintf(" Next: %s (%d) ", next.Label, int(next.Height))
		dst.DrawText(dst.Width()-len(text)-2, 0, text)
	}

	if g.milestone != "" && g.tickCount < g.milestoneUntil {
		dst.DrawTextCentered(1, fmt.Sprintf("★ %s ★", g.milestone))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.tracker.Score,
		Height:   int(g.tracker.MaxHeight),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Stats exposes run statistics for score persistence.
func (g *Game) Stats() (platformsLanded, bounces int) {
	return g.tracker.PlatformsLanded, g.tracker.Bounces
}

// Register the game with the registry
func init() {
	registry.Register("climber", func() registry.Game {
		return New()
	})
}
