package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lostfound-app/backend/internal/dto"
)

// internalError logs the fault and hides its detail from the caller.
func internalError(c *fiber.Ctx, err error) error {
	slog.Error("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Message: "Internal server error",
	})
}
