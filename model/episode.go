package model

import (
	"time"
)

// Episode represents a single source episode scraped from the wiki
type Episode struct {
	ID            string `json:"id" gorm:"primaryKey"`
	Season        int    `json:"season" gorm:"not null;uniqueIndex:idx_episodes_code"`
	EpisodeNumber int    `json:"episode_number" gorm:"not null;uniqueIndex:idx_episodes_code"`
	Title         string `json:"title" gorm:"not null"`
	WikiURL       string `json:"wiki_url"`

	PlotSummary *string `json:"plot_summary" gorm:"type:text"`
	ImageURL    *string `json:"image_url"`

	// Hand-curated hint fields, edited through the admin dashboard
	QuoteText        *string `json:"quote_text" gorm:"type:text"`
	QuoteSpeaker     *string `json:"quote_speaker"`
	QuoteLocation    *string `json:"quote_location"`
	StillURL         *string `json:"still_url"`
	StoreNextDoor    *string `json:"store_next_door"`
	PestControlTruck *string `json:"pest_control_truck"`
	OriginalAirDate  *string `json:"original_air_date"`
	GuestStars       *string `json:"guest_stars"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationship
	Burgers []Burger `json:"burgers,omitempty" gorm:"foreignKey:EpisodeID"`
}

// Burger is one burger-of-the-day entry belonging to an episode
type Burger struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	EpisodeID   string  `json:"episode_id" gorm:"not null;uniqueIndex:idx_burgers_episode_name"`
	Name        string  `json:"name" gorm:"not null;uniqueIndex:idx_burgers_episode_name"`
	Description *string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationship
	Episode Episode `json:"episode" gorm:"foreignKey:EpisodeID"`
}
