package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to the controllers to keep behavior consistent
	"github.com/ManuelWeiss/MeetFox/app/controllers"
)

// APIServer implements the ServerInterface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// PostRegister creates a new user account.
func (s *APIServer) PostRegister(c *fiber.Ctx) error {
	return controllers.HandleRegister(c)
}

// GetActivate confirms an account via its activation token.
func (s *APIServer) GetActivate(c *fiber.Ctx) error {
	return controllers.HandleActivate(c)
}

// PostLogin authenticates a user and issues a session plus API token.
func (s *APIServer) PostLogin(c *fiber.Ctx) error {
	return controllers.HandleLogin(c)
}

// PostLogout destroys the current session.
func (s *APIServer) PostLogout(c *fiber.Ctx) error {
	return controllers.HandleLogout(c)
}

// GetUserProfile returns account information for the authenticated user.
// Security is enforced via auth middleware attached in the router.
func (s *APIServer) GetUserProfile(c *fiber.Ctx) error {
	return controllers.HandleGetUserProfile(c)
}

// PutUserProfile updates the authenticated user's profile.
func (s *APIServer) PutUserProfile(c *fiber.Ctx) error {
	return controllers.HandleUpdateUserProfile(c)
}

// GetMeetings lists the authenticated user's meetings.
func (s *APIServer) GetMeetings(c *fiber.Ctx) error {
	return controllers.HandleListMeetings(c)
}

// GetUpcomingMeetings lists the user's next meetings.
func (s *APIServer) GetUpcomingMeetings(c *fiber.Ctx) error {
	return controllers.HandleUpcomingMeetings(c)
}

// PostMeeting creates a meeting owned by the authenticated user.
func (s *APIServer) PostMeeting(c *fiber.Ctx) error {
	return controllers.HandleCreateMeeting(c)
}

// GetMeeting returns a single meeting by UUID.
func (s *APIServer) GetMeeting(c *fiber.Ctx) error {
	return controllers.HandleGetMeeting(c)
}

// PutMeeting updates a meeting by UUID (owner only).
func (s *APIServer) PutMeeting(c *fiber.Ctx) error {
	return controllers.HandleUpdateMeeting(c)
}

// DeleteMeeting deletes a meeting by UUID (owner only).
func (s *APIServer) DeleteMeeting(c *fiber.Ctx) error {
	return controllers.HandleDeleteMeeting(c)
}

// PostMeetingParticipant adds a participant to a meeting (owner only).
func (s *APIServer) PostMeetingParticipant(c *fiber.Ctx) error {
	return controllers.HandleAddParticipant(c)
}

// DeleteMeetingParticipant removes a participant from a meeting (owner only).
func (s *APIServer) DeleteMeetingParticipant(c *fiber.Ctx) error {
	return controllers.HandleRemoveParticipant(c)
}

// GetWeeklyStats returns the trailing-week daily meeting minutes report.
func (s *APIServer) GetWeeklyStats(c *fiber.Ctx) error {
	return controllers.HandleWeeklyStats(c)
}

// GetStatsOverview returns cached site-wide statistics.
func (s *APIServer) GetStatsOverview(c *fiber.Ctx) error {
	return controllers.HandleStatsOverview(c)
}
