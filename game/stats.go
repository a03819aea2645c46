package game

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

// LocalStats is the cumulative per-device record. A puzzle date contributes
// to the aggregates at most once.
type LocalStats struct {
	GamesPlayed       int         `json:"games_played"`
	GamesWon          int         `json:"games_won"`
	WinPercentage     int         `json:"win_percentage"`
	CurrentStreak     int         `json:"current_streak"`
	MaxStreak         int         `json:"max_streak"`
	GuessDistribution map[int]int `json:"guess_distribution"` // buckets 1..6
	LastPlayedDate    string      `json:"last_played_date"` // last COMPLETED date
	LastGameStatus    Status      `json:"last_game_status"`
}

func defaultStats() LocalStats {
	return LocalStats{
		GuessDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0},
	}
}

// StatsTracker derives and persists LocalStats from completed games
type StatsTracker struct {
	store Store
}

func NewStatsTracker(store Store) *StatsTracker {
	return &StatsTracker{store: store}
}

// Stats loads the persisted record, falling back to a zero record when the
// store is empty or unreadable.
func (t *StatsTracker) Stats() LocalStats {
	raw, err := t.store.Get(StatsKey)
	if err != nil || raw == "" {
		return defaultStats()
	}

	stats := defaultStats()
	if err := sonic.Unmarshal([]byte(raw), &stats); err != nil {
		return defaultStats()
	}
	if stats.GuessDistribution == nil {
		stats.GuessDistribution = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0}
	}
	return stats
}

func (t *StatsTracker) save(stats LocalStats) {
	raw, err := sonic.Marshal(stats)
	if err != nil {
		log.Printf("Failed to encode stats: %v", err)
		return
	}
	if err := t.store.Set(StatsKey, string(raw)); err != nil {
		log.Printf("Failed to save stats: %v", err)
	}
}

// MarkInProgress flags that a new game has started. LastPlayedDate is left
// alone; it only ever names a completed date, which is what the streak math
// and the reload guard both key on.
func (t *StatsTracker) MarkInProgress(puzzleDate string) {
	stats := t.Stats()

	if stats.LastPlayedDate != puzzleDate && stats.LastGameStatus != StatusInProgress {
		stats.LastGameStatus = StatusInProgress
		t.save(stats)
	}
}

// RecordOutcome folds one completed game into the aggregates. Recording the
// same date twice after it already finished is a no-op, so page reloads
// cannot double count.
func (t *StatsTracker) RecordOutcome(won bool, guessCount int, puzzleDate string) LocalStats {
	stats := t.Stats()

	lastPlayed := stats.LastPlayedDate
	if lastPlayed == puzzleDate {
		return stats
	}

	stats.GamesPlayed++
	stats.LastPlayedDate = puzzleDate

	if won {
		stats.GamesWon++
		stats.LastGameStatus = StatusWon

		if guessCount >= 1 && guessCount <= MaxGuesses {
			stats.GuessDistribution[guessCount]++
		}

		if isConsecutiveDay(lastPlayed, puzzleDate) {
			stats.CurrentStreak++
		} else {
			stats.CurrentStreak = 1
		}
		if stats.CurrentStreak > stats.MaxStreak {
			stats.MaxStreak = stats.CurrentStreak
		}
	} else {
		stats.LastGameStatus = StatusLost
		stats.CurrentStreak = 0
	}

	stats.WinPercentage = int(math.Round(float64(stats.GamesWon) / float64(stats.GamesPlayed) * 100))

	t.save(stats)
	return stats
}

// isConsecutiveDay reports whether currentDate is exactly the calendar day
// after lastDate
func isConsecutiveDay(lastDate, currentDate string) bool {
	if lastDate == "" {
		return false
	}

	last, err := time.Parse("2006-01-02", lastDate)
	if err != nil {
		return false
	}
	current, err := time.Parse("2006-01-02", currentDate)
	if err != nil {
		return false
	}

	return current.Sub(last) == 24*time.Hour
}

// ShareText renders the spoiler-free result block for a finished game
func ShareText(puzzleDate string, won bool, guessCount int) string {
	result := fmt.Sprintf("%d/%d", guessCount, MaxGuesses)
	if !won {
		result = fmt.Sprintf("X/%d", MaxGuesses)
	}

	return fmt.Sprintf("🍔 Burger of the Daydle %s\n%s\n\n%s\n\nPlay at: burgeroftheday.dle",
		puzzleDate, result, emojiGrid(guessCount, won))
}

func emojiGrid(guessCount int, won bool) string {
	rows := MaxGuesses
	if won {
		rows = guessCount
	}

	var b strings.Builder
	for i := 1; i <= rows; i++ {
		if i > 1 {
			b.WriteByte('\n')
		}
		if won && i == guessCount {
			b.WriteString("🟩🟩🟩🟩🟩")
		} else {
			b.WriteString("🟥🟥🟥🟥🟥")
		}
	}
	return b.String()
}
