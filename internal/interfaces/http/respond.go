package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/asmendustri/asm-endustri-api/internal/application/dto"
)

// internalError logs the real failure and returns a generic 500 body.
// Driver and query detail never reach the client.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Server error"})
}
