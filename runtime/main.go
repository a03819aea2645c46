package main

import (
	"github.com/burger-daydle/daydle_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg("No .env file found, using system environment")
	}

	ctx, err := context.NewCtx(
		&services.SqliteService{},
		&services.RedisService{},
		&services.MinIOService{},
		&services.JWTService{},
		&services.AuthService{},
		&services.PuzzleService{},
		&services.EpisodeService{},
		&services.StatsService{},
		&services.AdminService{},
		&services.MediaService{},
		&services.MonitoringService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
