package services

import (
	goContext "context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/shared"
)

// StatsService aggregates the anonymous outcome counters. Reports carry only
// a date and a guess bucket, so there is nothing to deduplicate on; a per-IP
// rate limit is the backstop against replay spam.
type StatsService struct {
	context.DefaultService

	sqlSvc   *SqliteService
	redisSvc *RedisService

	demoMode    bool
	maxPerIPDay int64
}

const STATS_SVC = "stats_svc"

const defaultOutcomesPerIPDay = 10

func (svc StatsService) Id() string {
	return STATS_SVC
}

func (svc *StatsService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.demoMode = os.Getenv("DEMO_MODE") == "true"

	svc.maxPerIPDay = defaultOutcomesPerIPDay
	if limitStr := os.Getenv("OUTCOME_RATE_LIMIT"); limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && limit > 0 {
			svc.maxPerIPDay = limit
		}
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *StatsService) Start() error {
	return nil
}

func (svc *StatsService) GetGlobalStats(date string) (*dto.GlobalStatsResponse, error) {
	if _, err := time.Parse(shared.DateLayout, date); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid date, expected YYYY-MM-DD")
	}

	if svc.demoMode {
		return &dto.GlobalStatsResponse{Date: date}, nil
	}

	stats, err := svc.sqlSvc.GetStats(date)
	if err != nil {
		return nil, err
	}

	resp := &dto.GlobalStatsResponse{
		Date:        stats.Date,
		WinOnGuess1: stats.WinOnGuess1,
		WinOnGuess2: stats.WinOnGuess2,
		WinOnGuess3: stats.WinOnGuess3,
		WinOnGuess4: stats.WinOnGuess4,
		WinOnGuess5: stats.WinOnGuess5,
		WinOnGuess6: stats.WinOnGuess6,
		Losses:      stats.Losses,
	}
	resp.TotalPlays = resp.WinOnGuess1 + resp.WinOnGuess2 + resp.WinOnGuess3 +
		resp.WinOnGuess4 + resp.WinOnGuess5 + resp.WinOnGuess6 + resp.Losses

	return resp, nil
}

// SubmitOutcome accepts one finished-game report and bumps the matching
// bucket. Demo mode acknowledges without recording.
func (svc *StatsService) SubmitOutcome(req dto.SubmitOutcomeRequest, clientIP string) error {
	if svc.demoMode {
		return nil
	}

	if err := svc.checkRateLimit(req.Date, clientIP); err != nil {
		return err
	}

	guessNumber := *req.GuessNumber
	if err := svc.sqlSvc.IncrementOutcome(req.Date, guessNumber); err != nil {
		return err
	}

	RecordGameOutcome(guessNumber)
	return nil
}

func (svc *StatsService) checkRateLimit(date, clientIP string) error {
	if clientIP == "" || !svc.redisSvc.Enabled() {
		return nil
	}

	key := fmt.Sprintf("outcome_rl:%s:%s", date, clientIP)
	count, err := svc.redisSvc.IncrWindow(goContext.Background(), key, 24*time.Hour)
	if err != nil {
		// Rate limiting is best effort, never block reporting on redis trouble
		log.Printf("Outcome rate limit check failed: %v", err)
		return nil
	}

	if count > svc.maxPerIPDay {
		return shared.NewAppError(429, fmt.Errorf("rate limited"), "Too many outcome reports, try again later")
	}
	return nil
}
