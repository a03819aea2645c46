package game

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/burger-daydle/daydle_api/dto"
)

// recordingReporter captures outcome reports. Reports arrive on the engine's
// reporting goroutine, so tests must wait() before reading.
type recordingReporter struct {
	mu      sync.Mutex
	dates   []string
	numbers []int
	done    chan struct{}
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{done: make(chan struct{}, 1)}
}

func (r *recordingReporter) ReportOutcome(date string, guessNumber int) {
	r.mu.Lock()
	r.dates = append(r.dates, date)
	r.numbers = append(r.numbers, guessNumber)
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *recordingReporter) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("outcome was never reported")
	}
}

func (r *recordingReporter) reported() ([]string, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.dates...), append([]int(nil), r.numbers...)
}

func testPuzzle(date string) *dto.DailyPuzzleResponse {
	return &dto.DailyPuzzleResponse{
		PuzzleID:   date,
		AnswerHash: HashID("ep-answer"),
	}
}

func guess(id string) dto.EpisodeSearchResult {
	return dto.EpisodeSearchResult{
		ID:    id,
		Title: "Episode " + id,
		Hash:  HashID(id),
	}
}

func TestNewEngineStartsFresh(t *testing.T) {
	e, err := NewEngine(testPuzzle("2026-01-01"), NewMemoryStore(), nil)
	if err != nil {
		t.Fatal(err)
	}

	s := e.State()
	if s.Status != StatusInProgress {
		t.Errorf("status = %s, want %s", s.Status, StatusInProgress)
	}
	if s.RevealStep != 0 {
		t.Errorf("reveal step = %d, want 0", s.RevealStep)
	}
	if len(s.Guesses) != 0 {
		t.Errorf("fresh game has %d guesses", len(s.Guesses))
	}
	if e.GameOver() {
		t.Error("fresh game reports game over")
	}
}

func TestWinKeepsRevealStep(t *testing.T) {
	reporter := newRecordingReporter()
	e, err := NewEngine(testPuzzle("2026-01-01"), NewMemoryStore(), reporter)
	if err != nil {
		t.Fatal(err)
	}

	e.SubmitGuess(guess("wrong-1"))
	e.SubmitGuess(guess("wrong-2"))
	s := e.SubmitGuess(guess("ep-answer"))

	if s.Status != StatusWon {
		t.Fatalf("status = %s, want %s", s.Status, StatusWon)
	}
	if s.RevealStep != 2 {
		t.Errorf("reveal step = %d, want 2 (a win must not reveal more)", s.RevealStep)
	}
	if !e.GameOver() {
		t.Error("won game is not over")
	}

	reporter.wait(t)
	dates, numbers := reporter.reported()
	if len(numbers) != 1 || numbers[0] != 3 {
		t.Errorf("reported guess numbers = %v, want [3]", numbers)
	}
	if dates[0] != "2026-01-01" {
		t.Errorf("reported date = %s", dates[0])
	}
}

func TestSixWrongGuessesLose(t *testing.T) {
	reporter := newRecordingReporter()
	e, err := NewEngine(testPuzzle("2026-01-01"), NewMemoryStore(), reporter)
	if err != nil {
		t.Fatal(err)
	}

	var s *State
	for i := 0; i < MaxGuesses; i++ {
		s = e.SubmitGuess(guess(fmt.Sprintf("wrong-%d", i)))
	}

	if s.Status != StatusLost {
		t.Fatalf("status = %s, want %s", s.Status, StatusLost)
	}
	if s.RevealStep != MaxRevealStep {
		t.Errorf("reveal step = %d, want %d", s.RevealStep, MaxRevealStep)
	}

	reporter.wait(t)
	if _, numbers := reporter.reported(); len(numbers) != 1 || numbers[0] != 0 {
		t.Errorf("loss must report guess number 0, got %v", numbers)
	}
}

func TestRevealStepCapsBeforeLoss(t *testing.T) {
	e, err := NewEngine(testPuzzle("2026-01-01"), NewMemoryStore(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Five wrong guesses leave one attempt; the step must sit at 5, not 6
	for i := 0; i < MaxGuesses-1; i++ {
		e.SubmitGuess(guess(fmt.Sprintf("wrong-%d", i)))
	}

	if got := e.State().RevealStep; got != MaxRevealStep-1 {
		t.Errorf("reveal step after %d wrong guesses = %d, want %d", MaxGuesses-1, got, MaxRevealStep-1)
	}
	if e.GameOver() {
		t.Error("game ended with one attempt remaining")
	}
}

func TestDuplicateGuessIgnored(t *testing.T) {
	e, err := NewEngine(testPuzzle("2026-01-01"), NewMemoryStore(), nil)
	if err != nil {
		t.Fatal(err)
	}

	e.SubmitGuess(guess("wrong-1"))
	s := e.SubmitGuess(guess("wrong-1"))

	if len(s.Guesses) != 1 {
		t.Errorf("duplicate guess was recorded, %d guesses", len(s.Guesses))
	}
	if s.RevealStep != 1 {
		t.Errorf("duplicate guess advanced the step to %d", s.RevealStep)
	}
}

func TestGuessAfterGameOverIgnored(t *testing.T) {
	reporter := newRecordingReporter()
	e, err := NewEngine(testPuzzle("2026-01-01"), NewMemoryStore(), reporter)
	if err != nil {
		t.Fatal(err)
	}

	e.SubmitGuess(guess("ep-answer"))
	reporter.wait(t)
	s := e.SubmitGuess(guess("wrong-after"))

	if len(s.Guesses) != 1 {
		t.Errorf("post-game guess was recorded, %d guesses", len(s.Guesses))
	}
	if _, numbers := reporter.reported(); len(numbers) != 1 {
		t.Errorf("outcome reported %d times", len(numbers))
	}
}

func TestRestoredStateSurvivesRestart(t *testing.T) {
	store := NewMemoryStore()
	puzzle := testPuzzle("2026-01-01")

	e1, err := NewEngine(puzzle, store, nil)
	if err != nil {
		t.Fatal(err)
	}
	e1.SubmitGuess(guess("wrong-1"))
	e1.SubmitGuess(guess("wrong-2"))

	e2, err := NewEngine(puzzle, store, nil)
	if err != nil {
		t.Fatal(err)
	}

	s := e2.State()
	if len(s.Guesses) != 2 {
		t.Errorf("restored %d guesses, want 2", len(s.Guesses))
	}
	if s.RevealStep != 2 {
		t.Errorf("restored reveal step = %d, want 2", s.RevealStep)
	}

	// The restored game must still reject episodes guessed before the restart
	s = e2.SubmitGuess(guess("wrong-1"))
	if len(s.Guesses) != 2 {
		t.Error("restored game accepted a duplicate guess")
	}
}

func TestStaleStateDiscarded(t *testing.T) {
	store := NewMemoryStore()

	e1, err := NewEngine(testPuzzle("2026-01-01"), store, nil)
	if err != nil {
		t.Fatal(err)
	}
	e1.SubmitGuess(guess("wrong-1"))

	e2, err := NewEngine(testPuzzle("2026-01-02"), store, nil)
	if err != nil {
		t.Fatal(err)
	}

	s := e2.State()
	if len(s.Guesses) != 0 || s.RevealStep != 0 || s.Status != StatusInProgress {
		t.Errorf("yesterday's state leaked into today's game: %+v", s)
	}
}

func TestCorruptSavedStateStartsFresh(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set(GameStateKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	e, err := NewEngine(testPuzzle("2026-01-01"), store, nil)
	if err != nil {
		t.Fatal(err)
	}
	if e.State().Status != StatusInProgress || len(e.State().Guesses) != 0 {
		t.Errorf("corrupt state did not reset: %+v", e.State())
	}
}

type slowReporter struct {
	delay time.Duration
	done  chan struct{}
}

func (r *slowReporter) ReportOutcome(date string, guessNumber int) {
	time.Sleep(r.delay)
	close(r.done)
}

func TestFinalGuessDoesNotWaitForReporter(t *testing.T) {
	reporter := &slowReporter{delay: 500 * time.Millisecond, done: make(chan struct{})}
	e, err := NewEngine(testPuzzle("2026-01-01"), NewMemoryStore(), reporter)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	s := e.SubmitGuess(guess("ep-answer"))
	elapsed := time.Since(start)

	if s.Status != StatusWon {
		t.Fatalf("status = %s, want %s", s.Status, StatusWon)
	}
	if elapsed >= reporter.delay {
		t.Errorf("SubmitGuess blocked %v on the outcome reporter", elapsed)
	}

	select {
	case <-reporter.done:
	case <-time.After(2 * time.Second):
		t.Fatal("outcome was never reported")
	}
}
