package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-arcade/internal/storage"
)

func TestScoreboardShowsOutcomes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	newTestSession(t) // registers the fake game
	for _, s := range []struct {
		score   int
		outcome string
	}{
		{450, storage.OutcomeWin},
		{120, storage.OutcomeLoss},
	} {
		if _, err := store.SaveScore("fake", s.score, s.outcome); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if got := m.summary(); got != "2 played  1 won  1 lost  best 450  avg 285" {
		t.Errorf("summary() = %q", got)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "450", "Won", "Lost"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.summary() != "" {
		t.Error("no store should mean no summary")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	next, _ := m.Update(runeKey("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Seal Shooter", 20, "Seal Shooter"},
		{"Brick Breaker", 10, "Brick Bre."},
		{"abc", 0, "abc"},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit the scoreboard")
	}
}
