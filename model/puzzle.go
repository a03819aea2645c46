package model

import (
	"time"
)

// DailyPuzzle schedules one burger per UTC calendar date
type DailyPuzzle struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Date     string `json:"date" gorm:"not null;uniqueIndex"` // YYYY-MM-DD, UTC
	BurgerID string `json:"burger_id" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationship
	Burger Burger `json:"burger" gorm:"foreignKey:BurgerID"`
}

// GameStats holds the anonymized global outcome counters for one puzzle date.
// Buckets are incremented atomically, never read-modify-written.
type GameStats struct {
	Date string `json:"date" gorm:"primaryKey"` // YYYY-MM-DD, UTC

	WinOnGuess1 int `json:"win_on_guess_1" gorm:"default:0"`
	WinOnGuess2 int `json:"win_on_guess_2" gorm:"default:0"`
	WinOnGuess3 int `json:"win_on_guess_3" gorm:"default:0"`
	WinOnGuess4 int `json:"win_on_guess_4" gorm:"default:0"`
	WinOnGuess5 int `json:"win_on_guess_5" gorm:"default:0"`
	WinOnGuess6 int `json:"win_on_guess_6" gorm:"default:0"`
	Losses      int `json:"losses" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MediaAsset records an uploaded episode still
type MediaAsset struct {
	ID          string `json:"id" gorm:"primaryKey"`
	ObjectName  string `json:"object_name" gorm:"not null;uniqueIndex"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	UploadedBy  string `json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
}

// AdminUser is a content editor account for the dashboard
type AdminUser struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
