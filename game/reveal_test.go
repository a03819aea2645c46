package game

import "testing"

func TestRevealForStep(t *testing.T) {
	tests := []struct {
		step int
		want RevealState
	}{
		{0, RevealState{StillBlurred: true}},
		{1, RevealState{QuoteAttributionVisible: true, StillBlurred: true}},
		{2, RevealState{QuoteAttributionVisible: true, StillVisible: true, StillBlurred: true}},
		{3, RevealState{QuoteAttributionVisible: true, StillVisible: true, StillBlurred: true, StoreVisible: true}},
		{4, RevealState{QuoteAttributionVisible: true, StillVisible: true, StillBlurred: true, StoreVisible: true, PestControlVisible: true}},
		{5, RevealState{QuoteAttributionVisible: true, StillVisible: true, StoreVisible: true, PestControlVisible: true, SeasonVisible: true}},
		{6, RevealState{QuoteAttributionVisible: true, StillVisible: true, StoreVisible: true, PestControlVisible: true, SeasonVisible: true}},
	}

	for _, tt := range tests {
		if got := RevealForStep(tt.step); got != tt.want {
			t.Errorf("RevealForStep(%d) = %+v, want %+v", tt.step, got, tt.want)
		}
	}
}

func TestRevealForStepClamps(t *testing.T) {
	if got := RevealForStep(-3); got != RevealForStep(0) {
		t.Errorf("negative step should clamp to 0, got %+v", got)
	}
	if got := RevealForStep(99); got != RevealForStep(MaxRevealStep) {
		t.Errorf("oversized step should clamp to %d, got %+v", MaxRevealStep, got)
	}
}

// Once a hint is visible it must stay visible at every later step, and the
// still may only sharpen, never re-blur.
func TestRevealMonotonic(t *testing.T) {
	for step := 1; step <= MaxRevealStep; step++ {
		prev := RevealForStep(step - 1)
		cur := RevealForStep(step)

		if prev.QuoteAttributionVisible && !cur.QuoteAttributionVisible {
			t.Errorf("step %d hides quote attribution again", step)
		}
		if prev.StillVisible && !cur.StillVisible {
			t.Errorf("step %d hides the still again", step)
		}
		if prev.StoreVisible && !cur.StoreVisible {
			t.Errorf("step %d hides the store again", step)
		}
		if prev.PestControlVisible && !cur.PestControlVisible {
			t.Errorf("step %d hides the pest control truck again", step)
		}
		if prev.SeasonVisible && !cur.SeasonVisible {
			t.Errorf("step %d hides the season again", step)
		}

		if prev.StillVisible && !prev.StillBlurred && cur.StillBlurred {
			t.Errorf("step %d re-blurs a sharp still", step)
		}
	}
}

func TestTerminalStepAddsNothing(t *testing.T) {
	if RevealForStep(MaxRevealStep) != RevealForStep(MaxRevealStep-1) {
		t.Error("the terminal step must match the last earned step")
	}
}
