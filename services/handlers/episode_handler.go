package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/burger-daydle/daydle_api/shared"
)

type EpisodeHandler struct {
	episodeSvc EpisodeServiceInterface
}

func NewEpisodeHandler(episodeSvc EpisodeServiceInterface) *EpisodeHandler {
	return &EpisodeHandler{episodeSvc: episodeSvc}
}

// @Summary Search episodes
// @Description Matches episodes by code (s3e21, 3x21, s3) or by title substring for the guess autocomplete
// @Tags episodes
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} shared.Response{data=dto.EpisodeSearchResponse}
// @Router /api/v1/episodes [get]
func (h *EpisodeHandler) Search(c *fiber.Ctx) error {
	resp, err := h.episodeSvc.Search(c.Query("q"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
