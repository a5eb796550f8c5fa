package controllers

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimePtr(t *testing.T) {
	assert.Nil(t, formatTimePtr(nil))

	now := time.Date(2024, 5, 1, 12, 34, 56, 0, time.Local)
	formatted := formatTimePtr(&now)
	assert.IsType(t, "", formatted)

	expected := now.UTC().Format(time.RFC3339)
	assert.Equal(t, expected, formatted)
}

func TestErrorName(t *testing.T) {
	cases := []struct {
		status int
		name   string
	}{
		{fiber.StatusBadRequest, "bad_request"},
		{fiber.StatusUnauthorized, "unauthorized"},
		{fiber.StatusForbidden, "forbidden"},
		{fiber.StatusNotFound, "not_found"},
		{fiber.StatusConflict, "conflict"},
		{fiber.StatusUnprocessableEntity, "validation_failed"},
		{fiber.StatusInternalServerError, "internal_server_error"},
		{fiber.StatusTeapot, "internal_server_error"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.name, errorName(tc.status))
	}
}
