package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelWeiss/MeetFox/app/models"
	"github.com/ManuelWeiss/MeetFox/app/repository"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/statistics"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/usercontext"
)

// HandleWeeklyStats computes the trailing-week daily meeting minutes for the
// authenticated user: all meetings where the user is owner or participant,
// bucketed into the 7 calendar days before the reference day.
func HandleWeeklyStats(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	account, err := userRepo.GetByID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load user"})
	}

	ref := time.Now().In(account.Location())
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, account.Location())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "date must be YYYY-MM-DD"})
		}
		// treat the given day as "today", mid-day to stay clear of DST edges
		ref = parsed.Add(12 * time.Hour)
	}

	from, to := statistics.WindowBounds(ref)

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	meetings, err := repo.GetInRange(userCtx.UserID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load meetings"})
	}

	report := statistics.BuildWeeklyReport(ref, meetingIntervals(meetings))

	return c.JSON(report)
}

// HandleStatsOverview returns the cached site-wide statistics.
func HandleStatsOverview(c *fiber.Ctx) error {
	data := statistics.GetStatisticsData()

	return c.JSON(fiber.Map{
		"total_users":    data.TotalUsers,
		"total_meetings": data.TotalMeetings,
		"today_meetings": data.TodayMeetings,
	})
}

// meetingIntervals strips meetings down to the start/end pairs the
// statistics core consumes.
func meetingIntervals(meetings []models.Meeting) []statistics.Interval {
	intervals := make([]statistics.Interval, len(meetings))
	for i, m := range meetings {
		intervals[i] = statistics.Interval{Start: m.StartTime, End: m.EndTime}
	}
	return intervals
}
