package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/burger-daydle/daydle_api/dto"
)

// PuzzleProvider supplies the day's puzzle. ErrNoPuzzle means nothing is
// scheduled for today, which the caller surfaces as its own user-visible
// state rather than a failure.
type PuzzleProvider interface {
	FetchDaily(ctx context.Context) (*dto.DailyPuzzleResponse, error)
}

var ErrNoPuzzle = fmt.Errorf("no puzzle available for today")

// APIClient talks to the backend's public routes. It is the production
// PuzzleProvider and OutcomeReporter.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *APIClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNoPuzzle
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}

	var wrapped struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := sonic.Unmarshal(body, &wrapped); err != nil {
		return err
	}
	return sonic.Unmarshal(wrapped.Data, out)
}

// FetchDaily loads the puzzle for the current UTC date
func (c *APIClient) FetchDaily(ctx context.Context) (*dto.DailyPuzzleResponse, error) {
	var puzzle dto.DailyPuzzleResponse
	if err := c.get(ctx, "/api/v1/daily", &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

// SearchEpisodes queries the autocomplete index
func (c *APIClient) SearchEpisodes(ctx context.Context, query string) ([]dto.EpisodeSearchResult, error) {
	var result dto.EpisodeSearchResponse
	path := "/api/v1/episodes?q=" + url.QueryEscape(query)
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result.Episodes, nil
}

// FetchGlobalStats loads the anonymized outcome counters for a date
func (c *APIClient) FetchGlobalStats(ctx context.Context, date string) (*dto.GlobalStatsResponse, error) {
	var stats dto.GlobalStatsResponse
	if err := c.get(ctx, "/api/v1/stats?date="+url.QueryEscape(date), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ReportOutcome submits a finished game to the global aggregator. Best
// effort: failures are logged and swallowed, local state is never blocked or
// reverted on their account.
func (c *APIClient) ReportOutcome(date string, guessNumber int) {
	payload, err := sonic.Marshal(dto.SubmitOutcomeRequest{
		Date:        date,
		GuessNumber: &guessNumber,
	})
	if err != nil {
		log.Printf("Failed to encode outcome: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/stats", bytes.NewReader(payload))
	if err != nil {
		log.Printf("Failed to build outcome request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("Failed to submit global stats: %v", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Global stats submission rejected: status %d", resp.StatusCode)
	}
}

var _ PuzzleProvider = (*APIClient)(nil)
var _ OutcomeReporter = (*APIClient)(nil)
