package shared

const (
	UserID = "user_id"

	DateLayout = "2006-01-02" // puzzle dates, UTC

	MaxGuesses = 6

	OutcomeLoss = 0 // sentinel guess number for a lost game
)
