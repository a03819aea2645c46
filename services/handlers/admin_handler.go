package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/shared"
)

type AdminHandler struct {
	adminSvc  AdminServiceInterface
	puzzleSvc PuzzleServiceInterface
}

func NewAdminHandler(adminSvc AdminServiceInterface, puzzleSvc PuzzleServiceInterface) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, puzzleSvc: puzzleSvc}
}

// @Summary List episodes for editing
// @Description Returns episodes and burgers for the dashboard table, optionally filtered by title or season
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param q query string false "Title filter"
// @Param season query int false "Season filter"
// @Success 200 {object} shared.Response{data=dto.AdminEpisodeListResponse}
// @Router /api/v1/admin/episodes [get]
func (h *AdminHandler) ListEpisodes(c *fiber.Ctx) error {
	resp, err := h.adminSvc.ListEpisodes(c.Query("q"), c.QueryInt("season"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Update episode hints
// @Description Writes curated hint fields and burger fixes for one episode
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateRequest body dto.UpdateEpisodeRequest true "Episode update"
// @Success 200 {object} shared.Response{data=model.Episode}
// @Router /api/v1/admin/episodes [put]
func (h *AdminHandler) UpdateEpisode(c *fiber.Ctx) error {
	var req dto.UpdateEpisodeRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	episode, err := h.adminSvc.UpdateEpisode(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Episode updated", episode)
}

// @Summary List the puzzle schedule
// @Description Returns scheduled puzzles from a date onward, today's when no date is given
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD, UTC)"
// @Success 200 {object} shared.Response{data=dto.ScheduledPuzzleListResponse}
// @Router /api/v1/admin/puzzles [get]
func (h *AdminHandler) ListSchedule(c *fiber.Ctx) error {
	from := c.Query("from")
	if from == "" {
		from = h.puzzleSvc.Today()
	}

	resp, err := h.adminSvc.ListSchedule(from)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Schedule a puzzle
// @Description Assigns a burger to a date, replacing any existing assignment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scheduleRequest body dto.SchedulePuzzleRequest true "Puzzle assignment"
// @Success 201 {object} shared.Response
// @Router /api/v1/admin/puzzles [post]
func (h *AdminHandler) SchedulePuzzle(c *fiber.Ctx) error {
	var req dto.SchedulePuzzleRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.adminSvc.SchedulePuzzle(req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Puzzle scheduled", nil)
}

// @Summary Delete a scheduled puzzle
// @Description Removes the puzzle assignment for a date
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deleteRequest body dto.DeletePuzzleRequest true "Date to clear"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/puzzles [delete]
func (h *AdminHandler) DeletePuzzle(c *fiber.Ctx) error {
	var req dto.DeletePuzzleRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.adminSvc.DeletePuzzle(req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Puzzle deleted", nil)
}
