package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ManuelWeiss/MeetFox/app/models"
	"github.com/ManuelWeiss/MeetFox/app/repository"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/database"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/mail"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/session"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/statistics"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/token"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/usercontext"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new user account.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	if existing, err := repo.GetByEmail(req.Email); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": "Email already registered"})
	}

	if err := user.GenerateActivationToken(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Registration failed"})
	}

	if err := repo.Create(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Registration failed"})
	}

	// Willkommensmail ist best-effort, blockiert die Registrierung nicht
	go func(email, name string) {
		body := fmt.Sprintf("<p>Hallo %s,</p><p>willkommen bei MeetFox!</p>", name)
		if err := mail.SendMail(email, "Willkommen bei MeetFox", body); err != nil {
			log.Printf("welcome mail to %s failed: %v", email, err)
		}
	}(user.Email, user.Name)

	// Update statistics after registration
	go statistics.UpdateStatisticsCache()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"created_at": user.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// HandleActivate confirms a user's email address via the activation token
// from the welcome mail. Idempotent for already active accounts.
func HandleActivate(c *fiber.Ctx) error {
	raw := c.Params("token")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Activation token missing"})
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByActivationToken(raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Unknown activation token"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Activation failed"})
	}

	user.ActivationToken = ""
	if user.Status == models.STATUS_INACTIVE {
		user.Status = models.STATUS_ACTIVE
	}
	if err := repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Activation failed"})
	}

	return c.JSON(fiber.Map{"message": "account activated"})
}

// HandleLogin authenticates a user and issues both a web session and an API
// token. Unknown email and wrong password return the same response shape.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	// notice: in production you should not inform the user
	// with detailed messages about login failures
	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid email or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Login failed"})
	}

	if !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid email or password"})
	}

	if !user.IsActive() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden", "message": "User inactive"})
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Session error"})
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.Role == models.ROLE_ADMIN)

	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Session error"})
	}

	database.GetDB().Model(user).Update("last_login_at", time.Now())

	signed, expiresAt, err := token.Generate(user.ID, user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Token issuance failed"})
	}

	return c.JSON(fiber.Map{
		"token":      signed,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
		"user": fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"is_admin": user.Role == models.ROLE_ADMIN,
		},
	})
}

// HandleLogout destroys the current web session.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Session error"})
	}

	if err := sess.Destroy(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Session error"})
	}

	c.Locals(usercontext.KeyFromProtected, false)

	return c.JSON(fiber.Map{"message": "logged out"})
}
