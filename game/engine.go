package game

import (
	"time"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/burger-daydle/daydle_api/dto"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusWon        Status = "WON"
	StatusLost       Status = "LOST"
)

const (
	MaxGuesses    = 6
	MaxRevealStep = 6
)

// GuessAttempt is one submitted candidate, append-only within a game
type GuessAttempt struct {
	Episode   dto.EpisodeSearchResult `json:"episode"`
	IsCorrect bool                    `json:"is_correct"`
	Timestamp int64                   `json:"timestamp"`
}

// State is the persisted per-puzzle game record. The answer hash is kept so
// late guesses validate without refetching the puzzle.
type State struct {
	PuzzleID   string         `json:"puzzle_id"`
	Guesses    []GuessAttempt `json:"guesses"`
	Status     Status         `json:"status"`
	RevealStep int            `json:"reveal_step"`
	AnswerHash string         `json:"answer_hash"`
}

// OutcomeReporter forwards an anonymized finished game to the global
// aggregator: the puzzle date plus the winning guess index 1..6, or 0 for a
// loss. Implementations are best effort and never return an error; local
// stats stay authoritative for the player. The engine invokes the reporter
// on its own goroutine, so implementations may block.
type OutcomeReporter interface {
	ReportOutcome(date string, guessNumber int)
}

// Engine drives one player's game against one daily puzzle
type Engine struct {
	store    Store
	stats    *StatsTracker
	reporter OutcomeReporter
	puzzle   *dto.DailyPuzzleResponse
	state    *State
}

// NewEngine restores the persisted state for the puzzle's date if one exists,
// otherwise starts a fresh game at step 0. A stored record for a different
// date is stale and gets discarded, never migrated.
func NewEngine(puzzle *dto.DailyPuzzleResponse, store Store, reporter OutcomeReporter) (*Engine, error) {
	e := &Engine{
		store:    store,
		stats:    NewStatsTracker(store),
		reporter: reporter,
		puzzle:   puzzle,
	}

	raw, err := store.Get(GameStateKey)
	if err != nil {
		return nil, err
	}

	if raw != "" {
		var saved State
		if err := sonic.Unmarshal([]byte(raw), &saved); err == nil && saved.PuzzleID == puzzle.PuzzleID {
			e.state = &saved
			return e, nil
		}
	}

	e.state = &State{
		PuzzleID:   puzzle.PuzzleID,
		Guesses:    []GuessAttempt{},
		Status:     StatusInProgress,
		RevealStep: 0,
		AnswerHash: puzzle.AnswerHash,
	}
	e.stats.MarkInProgress(puzzle.PuzzleID)
	e.persist()

	return e, nil
}

func (e *Engine) State() *State {
	return e.state
}

func (e *Engine) Puzzle() *dto.DailyPuzzleResponse {
	return e.puzzle
}

// Reveal returns the flag bundle for the current reveal step
func (e *Engine) Reveal() RevealState {
	return RevealForStep(e.state.RevealStep)
}

// GameOver reports whether the state is terminal
func (e *Engine) GameOver() bool {
	return e.state.Status != StatusInProgress
}

// SubmitGuess advances the state machine by one candidate episode.
// Guessing after a terminal state, or re-guessing an episode already
// submitted this game, is silently ignored. Exactly one of three outcomes
// holds afterwards: the step is unchanged (win), the step is 6 (loss), or
// the step advanced by one (game continues).
func (e *Engine) SubmitGuess(episode dto.EpisodeSearchResult) *State {
	if e.state.Status != StatusInProgress {
		return e.state
	}

	for _, g := range e.state.Guesses {
		if g.Episode.ID == episode.ID {
			return e.state
		}
	}

	isCorrect := ValidateGuess(episode.ID, e.state.AnswerHash)

	e.state.Guesses = append(e.state.Guesses, GuessAttempt{
		Episode:   episode,
		IsCorrect: isCorrect,
		Timestamp: time.Now().UnixMilli(),
	})
	guessCount := len(e.state.Guesses)

	switch {
	case isCorrect:
		// Reveal step stays put; the win screen shows everything anyway
		e.state.Status = StatusWon
		e.finish(true, guessCount)
	case guessCount >= MaxGuesses:
		e.state.Status = StatusLost
		e.state.RevealStep = MaxRevealStep
		e.finish(false, guessCount)
	default:
		// Step 6 is reserved for end of game
		if e.state.RevealStep < MaxRevealStep-1 {
			e.state.RevealStep++
		}
	}

	e.persist()
	return e.state
}

func (e *Engine) finish(won bool, guessCount int) {
	e.stats.RecordOutcome(won, guessCount, e.state.PuzzleID)

	if e.reporter != nil {
		guessNumber := 0
		if won {
			guessNumber = guessCount
		}
		// Fire and forget; a slow aggregator must not stall the final guess
		date := e.state.PuzzleID
		go e.reporter.ReportOutcome(date, guessNumber)
	}
}

// Stats exposes the local tracker sharing this engine's store
func (e *Engine) Stats() *StatsTracker {
	return e.stats
}

func (e *Engine) persist() {
	raw, err := sonic.Marshal(e.state)
	if err != nil {
		log.Printf("Failed to encode game state: %v", err)
		return
	}
	if err := e.store.Set(GameStateKey, string(raw)); err != nil {
		log.Printf("Failed to save game state: %v", err)
	}
}
