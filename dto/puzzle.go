package dto

// EpisodeSearchResult is the minimal episode payload for the guess
// autocomplete. The hash lets the client check a guess without ever holding
// the answer in plaintext.
type EpisodeSearchResult struct {
	ID            string `json:"id"`
	Season        int    `json:"season"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	Synopsis      string `json:"synopsis,omitempty"`
	Hash          string `json:"hash"` // SHA-256 of ID
}

type EpisodeSearchResponse struct {
	Episodes []EpisodeSearchResult `json:"episodes"`
}

// EpisodeQuote ships with the puzzle; the speaker stays concealed until the
// client's reveal policy unlocks attribution.
type EpisodeQuote struct {
	Text     string `json:"text"`
	Speaker  string `json:"speaker,omitempty"`
	Location string `json:"location,omitempty"`
}

type PuzzleHints struct {
	BurgerName        string  `json:"burger_name"`
	BurgerDescription *string `json:"burger_description"`
	StoreNextDoor     *string `json:"store_next_door"`
	PestControlTruck  *string `json:"pest_control_truck"`
	OriginalAirDate   *string `json:"original_air_date"`
	GuestStars        *string `json:"guest_stars"`
}

type PuzzleEpisode struct {
	Season        int    `json:"season"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
}

// DailyPuzzleResponse is the full puzzle payload for one UTC date
type DailyPuzzleResponse struct {
	PuzzleID   string        `json:"puzzle_id"` // YYYY-MM-DD
	AnswerHash string        `json:"answer_hash"`
	Hints      PuzzleHints   `json:"hints"`
	Quote      *EpisodeQuote `json:"quote,omitempty"`
	StillURL   *string       `json:"still_url,omitempty"`
	Episode    PuzzleEpisode `json:"episode"`
	DemoMode   bool          `json:"demo_mode,omitempty"`
}
