package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/shared"
)

type StatsHandler struct {
	statsSvc  StatsServiceInterface
	puzzleSvc PuzzleServiceInterface
}

func NewStatsHandler(statsSvc StatsServiceInterface, puzzleSvc PuzzleServiceInterface) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc, puzzleSvc: puzzleSvc}
}

// @Summary Get global stats
// @Description Returns the anonymous outcome distribution for a puzzle date
// @Tags stats
// @Accept json
// @Produce json
// @Param date query string false "Puzzle date (YYYY-MM-DD, UTC)"
// @Success 200 {object} shared.Response{data=dto.GlobalStatsResponse}
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = h.puzzleSvc.Today()
	}

	resp, err := h.statsSvc.GetGlobalStats(date)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Report a game outcome
// @Description Records one finished game into the global distribution. guess_number is 1-6 for a win, 0 for a loss.
// @Tags stats
// @Accept json
// @Produce json
// @Param outcome body dto.SubmitOutcomeRequest true "Outcome report"
// @Success 201 {object} shared.Response
// @Router /api/v1/stats [post]
func (h *StatsHandler) SubmitOutcome(c *fiber.Ctx) error {
	var req dto.SubmitOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.statsSvc.SubmitOutcome(req, c.IP()); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Created", nil)
}
