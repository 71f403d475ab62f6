package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardSwitchesViews(t *testing.T) {
	m := NewScoreboardModel(nil, "climber", 80, 24)
	if m.view != viewScores {
		t.Fatalf("Initial view = %v, expected scores", m.view)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sm := updated.(ScoreboardModel)
	if sm.view != viewRuns {
		t.Errorf("View after tab = %v, expected runs", sm.view)
	}

	updated, _ = sm.Update(tea.KeyMsg{Type: tea.KeyTab})
	sm = updated.(ScoreboardModel)
	if sm.view != viewScores {
		t.Errorf("View after second tab = %v, expected scores", sm.view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "climber", 80, 24)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sm := updated.(ScoreboardModel); !sm.IsGoingBack() {
		t.Error("Escape should mark the scoreboard as going back")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if sm := updated.(ScoreboardModel); !sm.IsQuitting() {
		t.Error("q should mark the scoreboard as quitting")
	}
}
