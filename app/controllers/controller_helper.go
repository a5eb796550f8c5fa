package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// errorName maps an HTTP status code to the error identifier used in JSON
// error bodies.
func errorName(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusConflict:
		return "conflict"
	case fiber.StatusUnprocessableEntity:
		return "validation_failed"
	default:
		return "internal_server_error"
	}
}
