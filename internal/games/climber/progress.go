package climber

import "github.com/vovakirdan/tui-climber/internal/config"

// Milestone is a named height the player can reach for a score bonus.
type Milestone struct {
	Height float64
	Label  string
}

// milestoneBonus is the score awarded for each milestone reached.
const milestoneBonus = 100

// defaultMilestones follow the kind-unlock ladder plus a few vanity heights.
var defaultMilestones = []Milestone{
	{1000, "Conveyors Ahead"},
	{2000, "Crumbling Ground"},
	{3000, "Moving Platforms"},
	{3500, "Vertical Drift"},
	{3750, "Bounce Zone"},
	{4000, "Danger Zone"},
	{5000, "Master Climber"},
	{7500, "Platform Expert"},
	{10000, "Sky Walker"},
}

// ProgressTracker records climb height, score, and milestones, and derives
// the set of platform kinds unlocked at the current height. The generator
// only ever reads from it.
type ProgressTracker struct {
	CurrentHeight float64
	MaxHeight     float64
	Score         int

	PlatformsLanded int
	Bounces         int

	unlocks    config.UnlockConfig
	milestones []Milestone
	reached    map[float64]bool
}

// NewProgressTracker creates a tracker with the given unlock thresholds.
func NewProgressTracker(unlocks config.UnlockConfig) *ProgressTracker {
	return &ProgressTracker{
		unlocks:    unlocks,
		milestones: defaultMilestones,
		reached:    make(map[float64]bool),
	}
}

// Update recomputes height and score from the camera's climb distance.
// Returns the labels of any milestones newly reached this tick.
func (t *ProgressTracker) Update(cam *Camera) []string {
	t.CurrentHeight = cam.ScrollDistance()
	if t.CurrentHeight > t.MaxHeight {
		t.MaxHeight = t.CurrentHeight
	}

	bonus := len(t.reached) * milestoneBonus
	t.Score = int(t.CurrentHeight) + bonus

	var hit []string
	for _, m := range t.milestones {
		if t.CurrentHeight >= m.Height && !t.reached[m.Height] {
			t.reached[m.Height] = true
			t.Score += milestoneBonus
			hit = append(hit, m.Label)
		}
	}
	return hit
}

// RecordLanding counts a landing for run statistics.
func (t *ProgressTracker) RecordLanding(kind Kind) {
	t.PlatformsLanded++
	if kind == KindBouncy {
		t.Bounces++
	}
}

// HeightProgress returns the monotonically non-decreasing progress scalar
// the generator keys unlocks and difficulty off.
func (t *ProgressTracker) HeightProgress() float64 {
	return t.MaxHeight
}

// UnlockedKinds returns the non-plain kinds available at the current
// progress. Plain is always available and not listed.
func (t *ProgressTracker) UnlockedKinds() []Kind {
	h := t.MaxHeight
	var kinds []Kind
	if h >= t.unlocks.Conveyor {
		kinds = append(kinds, KindConveyor)
	}
	if h >= t.unlocks.Breakable {
		kinds = append(kinds, KindBreakable)
	}
	if h >= t.unlocks.Moving {
		kinds = append(kinds, KindMoving)
	}
	if h >= t.unlocks.Vertical {
		kinds = append(kinds, KindVertical)
	}
	if h >= t.unlocks.Bouncy {
		kinds = append(kinds, KindBouncy)
	}
	if h >= t.unlocks.Hazard {
		kinds = append(kinds, KindHazard)
	}
	return kinds
}

// NextMilestone returns the lowest milestone not yet reached.
func (t *ProgressTracker) NextMilestone() (Milestone, bool) {
	for _, m := range t.milestones {
		if !t.reached[m.Height] {
			return m, true
		}
	}
	return Milestone{}, false
}

// MilestonesReached returns how many milestones the run has hit.
func (t *ProgressTracker) MilestonesReached() int {
	return len(t.reached)
}

// Reset clears all progress for a new run.
func (t *ProgressTracker) Reset() {
	t.CurrentHeight = 0
	t.MaxHeight = 0
	t.Score = 0
	t.PlatformsLanded = 0
	t.Bounces = 0
	t.reached = make(map[float64]bool)
}
