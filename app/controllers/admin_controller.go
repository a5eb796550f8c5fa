package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelWeiss/MeetFox/app/repository"
)

// HandleAdminListUsers returns a paginated user list with per-user meeting
// statistics; an optional ?q= searches name and email.
func HandleAdminListUsers(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetUserRepository()

	var (
		users []repository.UserWithStats
		err   error
	)
	if q := c.Query("q"); q != "" {
		users, err = repo.SearchWithStats(q)
	} else {
		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}
		limit := c.QueryInt("limit", 50)
		if limit < 1 || limit > 200 {
			limit = 50
		}
		users, err = repo.GetWithStats((page-1)*limit, limit)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load users"})
	}

	items := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		items = append(items, fiber.Map{
			"id":             u.User.ID,
			"name":           u.User.Name,
			"email":          u.User.Email,
			"role":           u.User.Role,
			"status":         u.User.Status,
			"created_at":     u.User.CreatedAt.UTC().Format(time.RFC3339),
			"last_login_at":  formatTimePtr(u.User.LastLoginAt),
			"meeting_count":  u.MeetingCount,
			"attended_count": u.AttendedCount,
			"total_minutes":  u.TotalMinutes,
		})
	}

	return c.JSON(fiber.Map{"users": items})
}

// HandleAdminDailyStats returns daily registration and meeting creation
// counts for a date range (default: last 30 days).
func HandleAdminDailyStats(c *fiber.Ctx) error {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "from must be YYYY-MM-DD"})
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "to must be YYYY-MM-DD"})
		}
		// include the full end day
		to = parsed.Add(24*time.Hour - time.Second)
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	registrations, err := userRepo.GetDailyStats(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load registration stats"})
	}

	meetingRepo := repository.GetGlobalFactory().GetMeetingRepository()
	meetings, err := meetingRepo.GetDailyStats(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load meeting stats"})
	}

	return c.JSON(fiber.Map{
		"from":          from.Format("2006-01-02"),
		"to":            to.Format("2006-01-02"),
		"registrations": registrations,
		"meetings":      meetings,
	})
}
