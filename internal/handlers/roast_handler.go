package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"roastpanda/proposal-roaster/internal/models"
	"roastpanda/proposal-roaster/internal/services"
)

type RoastHandler struct {
	roaster services.RoasterService
}

func NewRoastHandler(roaster services.RoasterService) *RoastHandler {
	return &RoastHandler{
		roaster: roaster,
	}
}

// HandleRoast handles POST /api/roast. Every failure is converted to the
// {success:false, error} envelope; nothing escapes the handler.
func (h *RoastHandler) HandleRoast(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("No file provided"))
	}

	result, err := h.roaster.RoastProposal(c.UserContext(), file)
	if err != nil {
		var pipelineErr *services.PipelineError
		if errors.As(err, &pipelineErr) {
			if pipelineErr.StatusCode() >= 500 {
				log.Printf("❌ Roast failed (%s): %v\n", pipelineErr.Kind, err)
			}
			return c.Status(pipelineErr.StatusCode()).JSON(
				models.ErrorResponse(pipelineErr.UserMessage()))
		}

		log.Printf("❌ Roast failed unexpectedly: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			models.ErrorResponse(fmt.Sprintf("API Error: %v", err)))
	}

	return c.JSON(models.SuccessResponse(result))
}
