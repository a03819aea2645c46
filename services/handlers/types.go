package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/model"
)

type PuzzleServiceInterface interface {
	Today() string
	GetDailyPuzzle(date string) (*dto.DailyPuzzleResponse, error)
}

type EpisodeServiceInterface interface {
	Search(query string) (*dto.EpisodeSearchResponse, error)
}

type StatsServiceInterface interface {
	GetGlobalStats(date string) (*dto.GlobalStatsResponse, error)
	SubmitOutcome(req dto.SubmitOutcomeRequest, clientIP string) error
}

type AuthServiceInterface interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	RequiredAuth() fiber.Handler
}

type AdminServiceInterface interface {
	ListEpisodes(query string, season int) (*dto.AdminEpisodeListResponse, error)
	UpdateEpisode(req dto.UpdateEpisodeRequest) (*model.Episode, error)
	SchedulePuzzle(req dto.SchedulePuzzleRequest) error
	DeletePuzzle(req dto.DeletePuzzleRequest) error
	ListSchedule(from string) (*dto.ScheduledPuzzleListResponse, error)
}

type MediaServiceInterface interface {
	UploadEpisodeStill(episodeID string, file *multipart.FileHeader, uploadedBy string) (*dto.MediaUploadResponse, error)
}
