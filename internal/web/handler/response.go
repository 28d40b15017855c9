package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mohozompur-madrasa/madrasa-site/internal/schema"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error  string        `json:"error"`
	Fields schema.Errors `json:"fields,omitempty"`
}

// Error responds with status and {"error": msg}.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorBody{Error: msg})
}

// Invalid responds 400 with the field errors of err when it is a schema.Errors.
func Invalid(c *fiber.Ctx, err error) error {
	var fields schema.Errors
	if errors.As(err, &fields) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: "Validation failed", Fields: fields})
	}

	return Error(c, fiber.StatusBadRequest, "Validation failed")
}

// Internal logs err and responds 500 with msg. err never reaches the client.
func Internal(c *fiber.Ctx, err error, msg string) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).
		Interface("request_id", c.Locals("requestid")).Msg(msg)

	return Error(c, fiber.StatusInternalServerError, msg)
}

// ParseID returns the numeric :id route parameter. It responds 400 with
// "Invalid <entity> ID" and reports false when the parameter is not a positive number
// that fits a signed 64 bit column.
func ParseID(c *fiber.Ctx, entity string) (uint64, bool, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false, Error(c, fiber.StatusBadRequest, "Invalid "+entity+" ID")
	}

	return id, true, nil
}
