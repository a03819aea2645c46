package services

import "testing"

func TestOutcomeColumn(t *testing.T) {
	tests := []struct {
		guessNumber int
		want        string
	}{
		{0, "losses"},
		{1, "win_on_guess1"},
		{3, "win_on_guess3"},
		{6, "win_on_guess6"},
		{7, "losses"},
		{-1, "losses"},
	}

	for _, tt := range tests {
		if got := outcomeColumn(tt.guessNumber); got != tt.want {
			t.Errorf("outcomeColumn(%d) = %s, want %s", tt.guessNumber, got, tt.want)
		}
	}
}
