package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelWeiss/MeetFox/app/controllers"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/middleware"
)

// RegisterHandlers wires all v1 routes onto the given router group.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)
	router.Get("/stats/overview", s.GetStatsOverview)

	auth := router.Group("/auth")
	auth.Post("/register", s.PostRegister)
	auth.Get("/activate/:token", s.GetActivate)
	auth.Post("/login", s.PostLogin)
	auth.Post("/logout", s.PostLogout)

	// Session or bearer token; TokenAuthMiddleware only acts when an
	// Authorization header is present.
	protected := router.Group("", middleware.TokenAuthMiddleware(), middleware.RequireAPIAuth)

	user := protected.Group("/user")
	user.Get("/profile", s.GetUserProfile)
	user.Put("/profile", s.PutUserProfile)

	meetings := protected.Group("/meetings")
	meetings.Get("/", s.GetMeetings)
	meetings.Post("/", s.PostMeeting)
	meetings.Get("/upcoming", s.GetUpcomingMeetings)
	meetings.Get("/:uuid", s.GetMeeting)
	meetings.Put("/:uuid", s.PutMeeting)
	meetings.Delete("/:uuid", s.DeleteMeeting)
	meetings.Post("/:uuid/participants", s.PostMeetingParticipant)
	meetings.Delete("/:uuid/participants/:userID", s.DeleteMeetingParticipant)

	protected.Get("/stats/weekly", s.GetWeeklyStats)

	admin := protected.Group("/admin", middleware.RequireAdmin)
	admin.Get("/users", controllers.HandleAdminListUsers)
	admin.Get("/stats/daily", controllers.HandleAdminDailyStats)
}
