package game

// RevealState is the bundle of visibility flags for one reveal step. The
// episode number is never unlocked by a step; it only shows once the game is
// over.
type RevealState struct {
	QuoteAttributionVisible bool `json:"quote_attribution_visible"`
	StillVisible            bool `json:"still_visible"`
	StillBlurred            bool `json:"still_blurred"`
	StoreVisible            bool `json:"store_visible"`
	PestControlVisible      bool `json:"pest_control_visible"`
	SeasonVisible           bool `json:"season_visible"`
}

// Hints unlock in a fixed curated order so difficulty is identical for every
// player: quote attribution, then the still (blurred), then the store next
// door, then the pest control truck, and last the season together with the
// unblurred still. Step 6 is the terminal fully-revealed state forced on a
// loss; it adds nothing over step 5.
var revealTable = [MaxRevealStep + 1]RevealState{
	0: {StillBlurred: true},
	1: {QuoteAttributionVisible: true, StillBlurred: true},
	2: {QuoteAttributionVisible: true, StillVisible: true, StillBlurred: true},
	3: {QuoteAttributionVisible: true, StillVisible: true, StillBlurred: true, StoreVisible: true},
	4: {QuoteAttributionVisible: true, StillVisible: true, StillBlurred: true, StoreVisible: true, PestControlVisible: true},
	5: {QuoteAttributionVisible: true, StillVisible: true, StoreVisible: true, PestControlVisible: true, SeasonVisible: true},
	6: {QuoteAttributionVisible: true, StillVisible: true, StoreVisible: true, PestControlVisible: true, SeasonVisible: true},
}

// RevealForStep is total over all ints: out-of-range steps clamp to the
// nearest valid entry.
func RevealForStep(step int) RevealState {
	if step < 0 {
		step = 0
	}
	if step > MaxRevealStep {
		step = MaxRevealStep
	}
	return revealTable[step]
}
