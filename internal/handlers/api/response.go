package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"symptomcheck/internal/observability"
)

// jsonOK returns a 200 response with data as the body.
func jsonOK(c fiber.Ctx, data any) error {
	return c.JSON(data)
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// internalError logs and reports err, then returns a 500 with message.
func internalError(c fiber.Ctx, logger zerolog.Logger, err error, message string) error {
	logger.Error().Err(err).Str("path", c.Path()).Msg(message)
	observability.CaptureError(c.Context(), err)
	return jsonError(c, fiber.StatusInternalServerError, message)
}
