package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ManuelWeiss/MeetFox/app/models"
	"github.com/ManuelWeiss/MeetFox/app/repository"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/usercontext"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/utils"
)

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
}

// HandleGetUserProfile returns account information for the authenticated user.
func HandleGetUserProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Missing or invalid authentication"})
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	account, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load user"})
	}

	stats, err := repo.GetStatsByUserID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load statistics"})
	}

	response := fiber.Map{
		"id":            account.ID,
		"username":      account.Name,
		"email":         account.Email,
		"status":        account.Status,
		"timezone":      account.Timezone,
		"avatar_url":    utils.GetGravatarURL(account.Email, 200),
		"is_admin":      account.Role == models.ROLE_ADMIN,
		"created_at":    account.CreatedAt.UTC().Format(time.RFC3339),
		"last_login_at": formatTimePtr(account.LastLoginAt),
		"stats": fiber.Map{
			"meetings": fiber.Map{
				"owned_count":    stats.MeetingCount,
				"attended_count": stats.AttendedCount,
				"total_minutes":  stats.TotalMinutes,
			},
		},
	}

	return c.JSON(response)
}

// HandleUpdateUserProfile updates name, email or timezone of the
// authenticated user.
func HandleUpdateUserProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Missing or invalid authentication"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	account, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load user"})
	}

	if req.Name != "" {
		account.Name = req.Name
	}
	if req.Email != "" && req.Email != account.Email {
		if existing, err := repo.GetByEmail(req.Email); err == nil && existing != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": "Email already registered"})
		}
		account.Email = req.Email
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": "Unknown timezone"})
		}
		account.Timezone = req.Timezone
	}

	if err := account.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	if err := repo.Update(account); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to update user"})
	}

	return c.JSON(fiber.Map{
		"id":       account.ID,
		"username": account.Name,
		"email":    account.Email,
		"timezone": account.Timezone,
	})
}
