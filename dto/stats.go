package dto

type GlobalStatsResponse struct {
	Date        string `json:"date"`
	WinOnGuess1 int    `json:"win_on_guess_1"`
	WinOnGuess2 int    `json:"win_on_guess_2"`
	WinOnGuess3 int    `json:"win_on_guess_3"`
	WinOnGuess4 int    `json:"win_on_guess_4"`
	WinOnGuess5 int    `json:"win_on_guess_5"`
	WinOnGuess6 int    `json:"win_on_guess_6"`
	Losses      int    `json:"losses"`
	TotalPlays  int    `json:"total_plays"`
}

// SubmitOutcomeRequest reports one finished game. GuessNumber is 1..6 for a
// win on that attempt, 0 for a loss. Nothing identifying the player or the
// guessed episodes is carried.
type SubmitOutcomeRequest struct {
	Date        string `json:"date" validate:"required,puzzle_date"`
	GuessNumber *int   `json:"guess_number" validate:"required,min=0,max=6"`
}

func (s SubmitOutcomeRequest) Validate() error {
	return GetValidator().Struct(s)
}
