package services

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/alphabatem/common/context"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/game"
	"github.com/burger-daydle/daydle_api/model"
	"github.com/burger-daydle/daydle_api/shared"
)

// EpisodeService backs the guess autocomplete
type EpisodeService struct {
	context.DefaultService

	sqlSvc *SqliteService

	demoMode bool
}

const EPISODE_SVC = "episode_svc"

const searchLimit = 20
const synopsisLimit = 140

var (
	codeRe    = regexp.MustCompile(`(?i)^s(\d{1,2})\s*e(\d{1,2})$`)
	altCodeRe = regexp.MustCompile(`^(\d{1,2})x(\d{1,2})$`)
	seasonRe  = regexp.MustCompile(`(?i)^s(\d{1,2})$`)
)

func (svc EpisodeService) Id() string {
	return EPISODE_SVC
}

func (svc *EpisodeService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.demoMode = os.Getenv("DEMO_MODE") == "true"
	return svc.DefaultService.Configure(ctx)
}

func (svc *EpisodeService) Start() error {
	return nil
}

// Search matches episodes by code ("s3e21", "3x21", "s3") or by title
// substring. Results carry the guess digest, never the raw answer comparison.
func (svc *EpisodeService) Search(query string) (*dto.EpisodeSearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, shared.NewBadRequestError(fmt.Errorf("empty query"), "Query must not be empty")
	}

	if svc.demoMode {
		return &dto.EpisodeSearchResponse{Episodes: svc.searchDemo(query)}, nil
	}

	episodes, err := svc.searchDB(query)
	if err != nil {
		return nil, err
	}

	results := make([]dto.EpisodeSearchResult, 0, len(episodes))
	for _, ep := range episodes {
		results = append(results, toSearchResult(ep))
	}
	return &dto.EpisodeSearchResponse{Episodes: results}, nil
}

func (svc *EpisodeService) searchDB(query string) ([]model.Episode, error) {
	if m := codeRe.FindStringSubmatch(query); m != nil {
		return svc.byCode(m[1], m[2])
	}
	if m := altCodeRe.FindStringSubmatch(query); m != nil {
		return svc.byCode(m[1], m[2])
	}
	if m := seasonRe.FindStringSubmatch(query); m != nil {
		season, _ := strconv.Atoi(m[1])
		return svc.sqlSvc.GetEpisodesBySeason(season, searchLimit)
	}

	return svc.sqlSvc.SearchEpisodesByTitle(query, searchLimit)
}

func (svc *EpisodeService) byCode(seasonStr, numberStr string) ([]model.Episode, error) {
	season, _ := strconv.Atoi(seasonStr)
	number, _ := strconv.Atoi(numberStr)

	ep, err := svc.sqlSvc.GetEpisodeByCode(season, number)
	if err != nil {
		if appErr, ok := shared.GetAppError(err); ok && appErr.StatusCode == 404 {
			return nil, nil
		}
		return nil, err
	}
	return []model.Episode{*ep}, nil
}

func (svc *EpisodeService) searchDemo(query string) []dto.EpisodeSearchResult {
	if m := codeRe.FindStringSubmatch(query); m != nil {
		season, _ := strconv.Atoi(m[1])
		number, _ := strconv.Atoi(m[2])
		return demoSearch(func(ep demoEpisode) bool {
			return ep.Season == season && ep.EpisodeNumber == number
		})
	}

	lower := strings.ToLower(query)
	return demoSearch(func(ep demoEpisode) bool {
		return strings.Contains(strings.ToLower(ep.Title), lower)
	})
}

func toSearchResult(ep model.Episode) dto.EpisodeSearchResult {
	result := dto.EpisodeSearchResult{
		ID:            ep.ID,
		Season:        ep.Season,
		EpisodeNumber: ep.EpisodeNumber,
		Title:         ep.Title,
		Hash:          game.HashID(ep.ID),
	}
	if ep.PlotSummary != nil {
		synopsis := *ep.PlotSummary
		if len(synopsis) > synopsisLimit {
			synopsis = synopsis[:synopsisLimit]
		}
		result.Synopsis = synopsis
	}
	return result
}
