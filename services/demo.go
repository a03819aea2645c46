package services

import (
	"hash/fnv"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/game"
)

// demoEpisode is one entry of the built-in dataset served when the game runs
// without a populated database
type demoEpisode struct {
	ID               string
	Season           int
	EpisodeNumber    int
	Title            string
	BurgerName       string
	BurgerDesc       string
	QuoteText        string
	QuoteSpeaker     string
	QuoteLocation    string
	StoreNextDoor    string
	PestControlTruck string
	OriginalAirDate  string
}

var demoEpisodes = []demoEpisode{
	{
		ID: "demo-s1e2", Season: 1, EpisodeNumber: 2, Title: "Crawl Space",
		BurgerName: "New Bacon-ings", BurgerDesc: "(comes with bacon)",
		QuoteText: "I'm not stuck. I live here now.", QuoteSpeaker: "Bob", QuoteLocation: "the crawl space",
		StoreNextDoor: "Betsy's Heads: Mannequin Restoration", PestControlTruck: "Rodent Sleep Riders",
		OriginalAirDate: "2011-01-16",
	},
	{
		ID: "demo-s1e5", Season: 1, EpisodeNumber: 5, Title: "Hamburger Dinner Theater",
		BurgerName: "Don't You Four Cheddar 'Bout Me Burger", BurgerDesc: "(comes with four cheddars)",
		QuoteText: "Dinner theater. The two worst things, together at last.", QuoteSpeaker: "Bob", QuoteLocation: "the restaurant",
		StoreNextDoor: "Cur Appeal Dog Grooming", PestControlTruck: "Critter Don't Kid Yourself",
		OriginalAirDate: "2011-02-13",
	},
	{
		ID: "demo-s2e2", Season: 2, EpisodeNumber: 2, Title: "Bob Day Afternoon",
		BurgerName: "Cauliflower's Cumin From Inside the House Burger", BurgerDesc: "(comes with cauliflower and cumin)",
		QuoteText: "I'm just a burger delivery guy. A hostage burger delivery guy.", QuoteSpeaker: "Bob", QuoteLocation: "the bank",
		StoreNextDoor: "A Fridge Too Far Appliances", PestControlTruck: "Mice Capades Removal",
		OriginalAirDate: "2012-03-18",
	},
	{
		ID: "demo-s3e9", Season: 3, EpisodeNumber: 9, Title: "God Rest Ye Merry Gentle-Mannequins",
		BurgerName: "Num Num Num Num Num Num Num Burger", BurgerDesc: "(comes with nutmeg)",
		QuoteText: "He's not a mannequin, he's a manne-friend.", QuoteSpeaker: "Tina", QuoteLocation: "the restaurant",
		StoreNextDoor: "Lady Parts Auto Supply", PestControlTruck: "Pest In Show Exterminators",
		OriginalAirDate: "2012-12-09",
	},
	{
		ID: "demo-s3e21", Season: 3, EpisodeNumber: 21, Title: "Boyz 4 Now",
		BurgerName: "I Know Why the Cajun Burger Sings", BurgerDesc: "(comes with cajun spices)",
		QuoteText: "I just want to slap his hideous, beautiful face.", QuoteSpeaker: "Louise", QuoteLocation: "the tour bus",
		StoreNextDoor: "Extra Moist Yoga", PestControlTruck: "The Hills Have Mice",
		OriginalAirDate: "2013-04-28",
	},
	{
		ID: "demo-s4e7", Season: 4, EpisodeNumber: 7, Title: "Bob and Deliver",
		BurgerName: "The Sound and the Curry Burger", BurgerDesc: "(comes with curry)",
		QuoteText: "Home economics is the study of the economy. Of your home.", QuoteSpeaker: "Bob", QuoteLocation: "the classroom",
		StoreNextDoor: "Meth I Can Quilting Supplies", PestControlTruck: "Last Rats Removal",
		OriginalAirDate: "2013-12-08",
	},
	{
		ID: "demo-s5e4", Season: 5, EpisodeNumber: 4, Title: "Dawn of the Peck",
		BurgerName: "Human Polenta-pede Burger", BurgerDesc: "(comes with polenta)",
		QuoteText: "Run! The birds are organized!", QuoteSpeaker: "Linda", QuoteLocation: "the wharf",
		StoreNextDoor: "Cease and De-cyst Dermatology", PestControlTruck: "Raccoon With a View",
		OriginalAirDate: "2014-11-23",
	},
	{
		ID: "demo-s6e4", Season: 6, EpisodeNumber: 4, Title: "Gayle Makin' Bob Sled",
		BurgerName: "Hit Me With Your Best Shallot Burger", BurgerDesc: "(comes with shallots)",
		QuoteText: "I'm dragging my own sister through a blizzard. Happy Thanksgiving.", QuoteSpeaker: "Bob", QuoteLocation: "the snowstorm",
		StoreNextDoor: "It's Your Fuzzy Day Pet Salon", PestControlTruck: "Gopher Broke Burrow Removal",
		OriginalAirDate: "2015-11-22",
	},
}

// demoPuzzleForDate picks a stable episode for a date so everyone sees the
// same demo puzzle on the same day
func demoPuzzleForDate(date string) *dto.DailyPuzzleResponse {
	h := fnv.New32a()
	h.Write([]byte(date))
	ep := demoEpisodes[int(h.Sum32())%len(demoEpisodes)]

	return &dto.DailyPuzzleResponse{
		PuzzleID:   date,
		AnswerHash: game.HashID(ep.ID),
		Hints: dto.PuzzleHints{
			BurgerName:        ep.BurgerName,
			BurgerDescription: &ep.BurgerDesc,
			StoreNextDoor:     &ep.StoreNextDoor,
			PestControlTruck:  &ep.PestControlTruck,
			OriginalAirDate:   &ep.OriginalAirDate,
		},
		Quote: &dto.EpisodeQuote{
			Text:     ep.QuoteText,
			Speaker:  ep.QuoteSpeaker,
			Location: ep.QuoteLocation,
		},
		Episode: dto.PuzzleEpisode{
			Season:        ep.Season,
			EpisodeNumber: ep.EpisodeNumber,
			Title:         ep.Title,
		},
		DemoMode: true,
	}
}

func demoSearch(matcher func(demoEpisode) bool) []dto.EpisodeSearchResult {
	results := make([]dto.EpisodeSearchResult, 0, len(demoEpisodes))
	for _, ep := range demoEpisodes {
		if !matcher(ep) {
			continue
		}
		results = append(results, dto.EpisodeSearchResult{
			ID:            ep.ID,
			Season:        ep.Season,
			EpisodeNumber: ep.EpisodeNumber,
			Title:         ep.Title,
			Hash:          game.HashID(ep.ID),
		})
	}
	return results
}
