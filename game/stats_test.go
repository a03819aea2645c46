package game

import (
	"strings"
	"testing"
)

func TestRecordOutcomeScenarios(t *testing.T) {
	store := NewMemoryStore()
	tracker := NewStatsTracker(store)

	// Day one: win on guess 3
	stats := tracker.RecordOutcome(true, 3, "2026-01-01")
	if stats.GamesPlayed != 1 || stats.GamesWon != 1 {
		t.Fatalf("day one: played=%d won=%d", stats.GamesPlayed, stats.GamesWon)
	}
	if stats.WinPercentage != 100 {
		t.Errorf("day one: win%% = %d, want 100", stats.WinPercentage)
	}
	if stats.CurrentStreak != 1 || stats.MaxStreak != 1 {
		t.Errorf("day one: streak=%d max=%d, want 1/1", stats.CurrentStreak, stats.MaxStreak)
	}
	if stats.GuessDistribution[3] != 1 {
		t.Errorf("day one: bucket 3 = %d, want 1", stats.GuessDistribution[3])
	}

	// Day two, consecutive: win on guess 1, streak grows
	stats = tracker.RecordOutcome(true, 1, "2026-01-02")
	if stats.CurrentStreak != 2 || stats.MaxStreak != 2 {
		t.Errorf("day two: streak=%d max=%d, want 2/2", stats.CurrentStreak, stats.MaxStreak)
	}
	if stats.GuessDistribution[1] != 1 || stats.GuessDistribution[3] != 1 {
		t.Errorf("day two: distribution = %v", stats.GuessDistribution)
	}

	// Three days later: a loss ends the streak but keeps the max
	stats = tracker.RecordOutcome(false, 6, "2026-01-05")
	if stats.GamesPlayed != 3 {
		t.Errorf("day five: played = %d, want 3", stats.GamesPlayed)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("day five: streak = %d, want 0", stats.CurrentStreak)
	}
	if stats.MaxStreak != 2 {
		t.Errorf("day five: max streak = %d, want 2", stats.MaxStreak)
	}
	if stats.WinPercentage != 67 {
		t.Errorf("day five: win%% = %d, want 67", stats.WinPercentage)
	}
	if stats.LastGameStatus != StatusLost {
		t.Errorf("day five: last status = %s", stats.LastGameStatus)
	}
}

func TestRecordOutcomeReloadGuard(t *testing.T) {
	tracker := NewStatsTracker(NewMemoryStore())

	tracker.RecordOutcome(true, 2, "2026-01-01")
	stats := tracker.RecordOutcome(true, 2, "2026-01-01")

	if stats.GamesPlayed != 1 {
		t.Errorf("replaying the same date counted twice: played = %d", stats.GamesPlayed)
	}
	if stats.GuessDistribution[2] != 1 {
		t.Errorf("bucket 2 = %d, want 1", stats.GuessDistribution[2])
	}
}

func TestNonConsecutiveWinResetsStreak(t *testing.T) {
	tracker := NewStatsTracker(NewMemoryStore())

	tracker.RecordOutcome(true, 1, "2026-01-01")
	tracker.RecordOutcome(true, 1, "2026-01-02")
	stats := tracker.RecordOutcome(true, 1, "2026-01-04") // skipped a day

	if stats.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after a gap", stats.CurrentStreak)
	}
	if stats.MaxStreak != 2 {
		t.Errorf("max streak = %d, want 2", stats.MaxStreak)
	}
}

func TestMarkInProgressDoesNotTouchAggregates(t *testing.T) {
	tracker := NewStatsTracker(NewMemoryStore())

	tracker.RecordOutcome(true, 4, "2026-01-01")
	tracker.MarkInProgress("2026-01-02")

	stats := tracker.Stats()
	if stats.GamesPlayed != 1 {
		t.Errorf("starting a game changed games played to %d", stats.GamesPlayed)
	}
	if stats.LastPlayedDate != "2026-01-01" {
		t.Errorf("starting a game moved the completed date to %s", stats.LastPlayedDate)
	}

	// The completed date chain must still yield a consecutive win
	result := tracker.RecordOutcome(true, 2, "2026-01-02")
	if result.CurrentStreak != 2 {
		t.Errorf("streak = %d, want 2", result.CurrentStreak)
	}
}

func TestIsConsecutiveDay(t *testing.T) {
	tests := []struct {
		name    string
		last    string
		current string
		want    bool
	}{
		{"next day", "2026-01-01", "2026-01-02", true},
		{"same day", "2026-01-01", "2026-01-01", false},
		{"two days apart", "2026-01-01", "2026-01-03", false},
		{"backwards", "2026-01-02", "2026-01-01", false},
		{"month boundary", "2026-01-31", "2026-02-01", true},
		{"year boundary", "2025-12-31", "2026-01-01", true},
		{"no previous date", "", "2026-01-01", false},
		{"garbage last date", "yesterday", "2026-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConsecutiveDay(tt.last, tt.current); got != tt.want {
				t.Errorf("isConsecutiveDay(%q, %q) = %v, want %v", tt.last, tt.current, got, tt.want)
			}
		})
	}
}

func TestShareText(t *testing.T) {
	won := ShareText("2026-01-01", true, 3)
	if !strings.Contains(won, "3/6") {
		t.Errorf("winning share text missing score: %q", won)
	}
	if strings.Count(won, "🟩🟩🟩🟩🟩") != 1 || strings.Count(won, "🟥🟥🟥🟥🟥") != 2 {
		t.Errorf("winning grid wrong: %q", won)
	}

	lost := ShareText("2026-01-01", false, 6)
	if !strings.Contains(lost, "X/6") {
		t.Errorf("losing share text missing score: %q", lost)
	}
	if strings.Contains(lost, "🟩") {
		t.Errorf("losing grid contains a green row: %q", lost)
	}
}
