package dto

import "github.com/burger-daydle/daydle_api/model"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

type TokenPair struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type LoginResponse struct {
	Email string    `json:"email"`
	Token TokenPair `json:"token"`
}

// BurgerUpdate inserts (no ID) or updates (ID set) one burger row
type BurgerUpdate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required,min=3"`
	Description *string `json:"description"`
}

type EpisodeUpdate struct {
	QuoteText        *string `json:"quote_text"`
	QuoteSpeaker     *string `json:"quote_speaker"`
	QuoteLocation    *string `json:"quote_location"`
	StillURL         *string `json:"still_url"`
	StoreNextDoor    *string `json:"store_next_door"`
	PestControlTruck *string `json:"pest_control_truck"`
	OriginalAirDate  *string `json:"original_air_date"`
	GuestStars       *string `json:"guest_stars"`
}

type UpdateEpisodeRequest struct {
	EpisodeID string         `json:"episode_id" validate:"required"`
	Episode   EpisodeUpdate  `json:"episode"`
	Burgers   []BurgerUpdate `json:"burgers" validate:"dive"`
}

func (u UpdateEpisodeRequest) Validate() error {
	return GetValidator().Struct(u)
}

type AdminEpisodeListResponse struct {
	Episodes []model.Episode `json:"episodes"`
	Burgers  []model.Burger  `json:"burgers"`
}

type SchedulePuzzleRequest struct {
	Date     string `json:"date" validate:"required,puzzle_date"`
	BurgerID string `json:"burger_id" validate:"required"`
}

func (s SchedulePuzzleRequest) Validate() error {
	return GetValidator().Struct(s)
}

type DeletePuzzleRequest struct {
	Date string `json:"date" validate:"required,puzzle_date"`
}

func (d DeletePuzzleRequest) Validate() error {
	return GetValidator().Struct(d)
}

// ScheduledPuzzle is one row of the admin schedule view, flattened
type ScheduledPuzzle struct {
	Date          string `json:"date"`
	BurgerID      string `json:"burger_id"`
	BurgerName    string `json:"burger_name"`
	EpisodeTitle  string `json:"episode_title"`
	Season        int    `json:"season"`
	EpisodeNumber int    `json:"episode_number"`
}

type ScheduledPuzzleListResponse struct {
	Puzzles []ScheduledPuzzle `json:"puzzles"`
}

type MediaUploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}
