package services

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/burger-daydle/daydle_api/services/handlers"
	"github.com/burger-daydle/daydle_api/shared"
)

type HttpService struct {
	context.DefaultService

	puzzleSvc  *PuzzleService
	episodeSvc *EpisodeService
	statsSvc   *StatsService
	authSvc    *AuthService
	adminSvc   *AdminService
	mediaSvc   *MediaService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.puzzleSvc = svc.Service(PUZZLE_SVC).(*PuzzleService)
	svc.episodeSvc = svc.Service(EPISODE_SVC).(*EpisodeService)
	svc.statsSvc = svc.Service(STATS_SVC).(*StatsService)
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.adminSvc = svc.Service(ADMIN_SVC).(*AdminService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)

	app := fiber.New(fiber.Config{
		JSONEncoder:  shared.JSONMarshal,
		JSONDecoder:  shared.JSONUnmarshal,
		BodyLimit:    10 << 20,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(RequestMetrics())

	puzzleHandler := handlers.NewPuzzleHandler(svc.puzzleSvc)
	episodeHandler := handlers.NewEpisodeHandler(svc.episodeSvc)
	statsHandler := handlers.NewStatsHandler(svc.statsSvc, svc.puzzleSvc)
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	adminHandler := handlers.NewAdminHandler(svc.adminSvc, svc.puzzleSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	app.Get("/ping", svc.ping)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)
	v1.Get("/daily", puzzleHandler.GetDaily)
	v1.Get("/episodes", episodeHandler.Search)
	v1.Get("/stats", statsHandler.GetStats)
	v1.Post("/stats", statsHandler.SubmitOutcome)
	v1.Post("/login", authHandler.Login)

	admin := v1.Group("/admin", svc.authSvc.RequiredAuth())
	admin.Get("/episodes", adminHandler.ListEpisodes)
	admin.Put("/episodes", adminHandler.UpdateEpisode)
	admin.Post("/episodes/:episode_id/still", mediaHandler.UploadStill)
	admin.Get("/puzzles", adminHandler.ListSchedule)
	admin.Post("/puzzles", adminHandler.SchedulePuzzle)
	admin.Delete("/puzzles", adminHandler.DeletePuzzle)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app

	log.Printf("HTTP server listening on :%d", svc.port)
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
