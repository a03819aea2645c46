package services

import (
	goContext "context"
	"errors"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/game"
	"github.com/burger-daydle/daydle_api/model"
	"github.com/burger-daydle/daydle_api/shared"
)

// PuzzleService assembles the daily puzzle payload. In demo mode the puzzle
// comes from the built-in dataset instead of the schedule table.
type PuzzleService struct {
	context.DefaultService

	sqlSvc   *SqliteService
	redisSvc *RedisService

	demoMode bool
}

const PUZZLE_SVC = "puzzle_svc"

func (svc PuzzleService) Id() string {
	return PUZZLE_SVC
}

func (svc *PuzzleService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.demoMode = os.Getenv("DEMO_MODE") == "true"
	return svc.DefaultService.Configure(ctx)
}

func (svc *PuzzleService) Start() error {
	if svc.demoMode {
		log.Println("Running in demo mode, puzzles come from the built-in dataset")
	}
	return nil
}

// Today returns the current puzzle date in UTC
func (svc *PuzzleService) Today() string {
	return time.Now().UTC().Format(shared.DateLayout)
}

func (svc *PuzzleService) DemoMode() bool {
	return svc.demoMode
}

// GetDailyPuzzle returns the puzzle for a UTC date. Cached entries expire at
// the next UTC midnight, when the date rolls over anyway.
func (svc *PuzzleService) GetDailyPuzzle(date string) (*dto.DailyPuzzleResponse, error) {
	if _, err := time.Parse(shared.DateLayout, date); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid date, expected YYYY-MM-DD")
	}

	if svc.demoMode {
		RecordPuzzleServed()
		return demoPuzzleForDate(date), nil
	}

	ctx := goContext.Background()
	cacheKey := "daily_puzzle:" + date

	var cached dto.DailyPuzzleResponse
	if found, err := svc.redisSvc.GetJSON(ctx, cacheKey, &cached); err != nil {
		log.Printf("Puzzle cache read failed: %v", err)
	} else if found {
		RecordPuzzleServed()
		return &cached, nil
	}

	puzzle, err := svc.sqlSvc.GetPuzzleByDate(date)
	if err != nil {
		if appErr, ok := shared.GetAppError(err); ok && appErr.StatusCode == 404 {
			return nil, shared.NewNotFoundError(errors.New("no puzzle"), "No puzzle scheduled for this date")
		}
		return nil, err
	}

	resp := svc.buildResponse(date, puzzle)

	if err := svc.redisSvc.SetJSON(ctx, cacheKey, resp, untilMidnightUTC()); err != nil {
		log.Printf("Puzzle cache write failed: %v", err)
	}

	RecordPuzzleServed()
	return resp, nil
}

// InvalidateDate drops the cached payload after an admin edit
func (svc *PuzzleService) InvalidateDate(date string) {
	if err := svc.redisSvc.Delete(goContext.Background(), "daily_puzzle:"+date); err != nil {
		log.Printf("Puzzle cache invalidation failed: %v", err)
	}
}

func (svc *PuzzleService) buildResponse(date string, puzzle *model.DailyPuzzle) *dto.DailyPuzzleResponse {
	burger := puzzle.Burger
	episode := burger.Episode

	resp := &dto.DailyPuzzleResponse{
		PuzzleID:   date,
		AnswerHash: game.HashID(episode.ID),
		Hints: dto.PuzzleHints{
			BurgerName:        burger.Name,
			BurgerDescription: burger.Description,
			StoreNextDoor:     episode.StoreNextDoor,
			PestControlTruck:  episode.PestControlTruck,
			OriginalAirDate:   episode.OriginalAirDate,
			GuestStars:        episode.GuestStars,
		},
		StillURL: episode.StillURL,
		Episode: dto.PuzzleEpisode{
			Season:        episode.Season,
			EpisodeNumber: episode.EpisodeNumber,
			Title:         episode.Title,
		},
	}
	if resp.StillURL == nil {
		resp.StillURL = episode.ImageURL
	}

	if episode.QuoteText != nil && *episode.QuoteText != "" {
		quote := &dto.EpisodeQuote{Text: *episode.QuoteText}
		if episode.QuoteSpeaker != nil {
			quote.Speaker = *episode.QuoteSpeaker
		}
		if episode.QuoteLocation != nil {
			quote.Location = *episode.QuoteLocation
		}
		resp.Quote = quote
	}

	return resp
}

func untilMidnightUTC() time.Duration {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return midnight.Sub(now)
}
