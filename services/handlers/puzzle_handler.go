package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/burger-daydle/daydle_api/shared"
)

type PuzzleHandler struct {
	puzzleSvc PuzzleServiceInterface
}

func NewPuzzleHandler(puzzleSvc PuzzleServiceInterface) *PuzzleHandler {
	return &PuzzleHandler{puzzleSvc: puzzleSvc}
}

// @Summary Get the daily puzzle
// @Description Returns the puzzle for a UTC date, today's when no date is given. The answer ships only as a digest.
// @Tags puzzle
// @Accept json
// @Produce json
// @Param date query string false "Puzzle date (YYYY-MM-DD, UTC)"
// @Success 200 {object} shared.Response{data=dto.DailyPuzzleResponse}
// @Router /api/v1/daily [get]
func (h *PuzzleHandler) GetDaily(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = h.puzzleSvc.Today()
	}

	resp, err := h.puzzleSvc.GetDailyPuzzle(date)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderCacheControl, "max-age=60")
	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
