package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/burger-daydle/daydle_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// @Summary Upload an episode still
// @Description Stores an image and sets it as the episode's still hint
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param episode_id path string true "Episode ID"
// @Param file formData file true "Image file (JPEG, PNG, WebP or GIF, max 5MB)"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/episodes/{episode_id}/still [post]
func (h *MediaHandler) UploadStill(c *fiber.Ctx) error {
	episodeID := c.Params("episode_id")
	if episodeID == "" {
		return shared.NewBadRequestError(errors.New("missing episode id"), "Episode ID is required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "Image file is required")
	}

	uploadedBy, _ := c.Locals(shared.UserID).(string)

	resp, err := h.mediaSvc.UploadEpisodeStill(episodeID, file, uploadedBy)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Still uploaded", resp)
}
