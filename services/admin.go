package services

import (
	"fmt"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/model"
	"github.com/burger-daydle/daydle_api/shared"
)

// AdminService carries the dashboard content operations: curating episode
// hints, fixing scraped burgers and managing the puzzle schedule.
type AdminService struct {
	context.DefaultService

	sqlSvc    *SqliteService
	puzzleSvc *PuzzleService
}

const ADMIN_SVC = "admin_svc"

func (svc AdminService) Id() string {
	return ADMIN_SVC
}

func (svc *AdminService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.puzzleSvc = ctx.Service(PUZZLE_SVC).(*PuzzleService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AdminService) Start() error {
	return nil
}

// ListEpisodes returns the dashboard table, optionally narrowed by a title
// query or a season
func (svc *AdminService) ListEpisodes(query string, season int) (*dto.AdminEpisodeListResponse, error) {
	var episodes []model.Episode
	var err error

	switch {
	case query != "":
		episodes, err = svc.sqlSvc.SearchEpisodesByTitle(query, 100)
	case season != 0:
		episodes, err = svc.sqlSvc.GetEpisodesBySeason(season, 100)
	default:
		episodes, err = svc.sqlSvc.ListEpisodes()
	}
	if err != nil {
		return nil, err
	}

	burgers, err := svc.sqlSvc.ListBurgers()
	if err != nil {
		return nil, err
	}

	return &dto.AdminEpisodeListResponse{
		Episodes: episodes,
		Burgers:  burgers,
	}, nil
}

// UpdateEpisode writes curated hint fields and burger fixes in one request.
// Only non-nil hint fields are touched, so partial edits never clear columns.
func (svc *AdminService) UpdateEpisode(req dto.UpdateEpisodeRequest) (*model.Episode, error) {
	columns := episodeColumns(req.Episode)
	if len(columns) > 0 {
		if err := svc.sqlSvc.UpdateEpisodeColumns(req.EpisodeID, columns); err != nil {
			return nil, err
		}
	}

	for _, update := range req.Burgers {
		if update.ID == "" {
			err := svc.sqlSvc.UpsertBurger(&model.Burger{
				EpisodeID:   req.EpisodeID,
				Name:        update.Name,
				Description: update.Description,
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		burger, err := svc.sqlSvc.GetBurger(update.ID)
		if err != nil {
			return nil, err
		}
		if burger.EpisodeID != req.EpisodeID {
			return nil, shared.NewBadRequestError(fmt.Errorf("burger %s belongs to another episode", update.ID), "Burger does not belong to this episode")
		}

		burger.Name = update.Name
		burger.Description = update.Description
		if err := svc.sqlSvc.UpdateBurger(burger); err != nil {
			return nil, err
		}
	}

	return svc.sqlSvc.GetEpisode(req.EpisodeID)
}

func episodeColumns(update dto.EpisodeUpdate) map[string]interface{} {
	columns := map[string]interface{}{}
	set := func(name string, value *string) {
		if value != nil {
			columns[name] = *value
		}
	}

	set("quote_text", update.QuoteText)
	set("quote_speaker", update.QuoteSpeaker)
	set("quote_location", update.QuoteLocation)
	set("still_url", update.StillURL)
	set("store_next_door", update.StoreNextDoor)
	set("pest_control_truck", update.PestControlTruck)
	set("original_air_date", update.OriginalAirDate)
	set("guest_stars", update.GuestStars)
	return columns
}

func (svc *AdminService) SchedulePuzzle(req dto.SchedulePuzzleRequest) error {
	if _, err := svc.sqlSvc.GetBurger(req.BurgerID); err != nil {
		return err
	}

	if err := svc.sqlSvc.UpsertPuzzle(req.Date, req.BurgerID); err != nil {
		return err
	}

	svc.puzzleSvc.InvalidateDate(req.Date)
	log.Printf("Scheduled burger %s for %s", req.BurgerID, req.Date)
	return nil
}

func (svc *AdminService) DeletePuzzle(req dto.DeletePuzzleRequest) error {
	if err := svc.sqlSvc.DeletePuzzleByDate(req.Date); err != nil {
		return err
	}

	svc.puzzleSvc.InvalidateDate(req.Date)
	return nil
}

// ListSchedule returns the schedule from a date onward, flattened for the
// dashboard table
func (svc *AdminService) ListSchedule(from string) (*dto.ScheduledPuzzleListResponse, error) {
	puzzles, err := svc.sqlSvc.ListPuzzlesFrom(from)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ScheduledPuzzle, 0, len(puzzles))
	for _, p := range puzzles {
		rows = append(rows, dto.ScheduledPuzzle{
			Date:          p.Date,
			BurgerID:      p.BurgerID,
			BurgerName:    p.Burger.Name,
			EpisodeTitle:  p.Burger.Episode.Title,
			Season:        p.Burger.Episode.Season,
			EpisodeNumber: p.Burger.Episode.EpisodeNumber,
		})
	}

	return &dto.ScheduledPuzzleListResponse{Puzzles: rows}, nil
}
