package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ManuelWeiss/MeetFox/app/models"
	"github.com/ManuelWeiss/MeetFox/app/repository"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/statistics"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/usercontext"
)

type meetingRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type addParticipantRequest struct {
	Email string `json:"email"`
}

// HandleListMeetings returns a paginated list of meetings where the
// requester is owner or participant.
func HandleListMeetings(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	meetings, err := repo.GetByUserID(userCtx.UserID, offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load meetings"})
	}

	total, err := repo.CountByUserID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to count meetings"})
	}

	items := make([]fiber.Map, 0, len(meetings))
	for i := range meetings {
		items = append(items, meetingResponse(&meetings[i]))
	}

	return c.JSON(fiber.Map{
		"meetings": items,
		"page":     page,
		"limit":    limit,
		"total":    total,
	})
}

// HandleUpcomingMeetings returns the next meetings for the requester,
// starting after now, soonest first.
func HandleUpcomingMeetings(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	meetings, err := repo.GetUpcoming(userCtx.UserID, time.Now(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load meetings"})
	}

	items := make([]fiber.Map, 0, len(meetings))
	for i := range meetings {
		items = append(items, meetingResponse(&meetings[i]))
	}

	return c.JSON(fiber.Map{"meetings": items})
}

// HandleCreateMeeting creates a new meeting owned by the requester.
func HandleCreateMeeting(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req meetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	meeting := &models.Meeting{
		UserID:      userCtx.UserID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := meeting.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	if err := repo.Create(meeting); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to create meeting"})
	}

	// Update statistics after creation
	go statistics.UpdateStatisticsCache()

	return c.Status(fiber.StatusCreated).JSON(meetingResponse(meeting))
}

// HandleGetMeeting returns a single meeting; only the owner and
// participants may see it.
func HandleGetMeeting(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	meeting, status, err := loadMeetingForUser(c.Params("uuid"), userCtx.UserID, false)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": errorName(status), "message": err.Error()})
	}

	return c.JSON(meetingResponse(meeting))
}

// HandleUpdateMeeting updates a meeting; owner only.
func HandleUpdateMeeting(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	meeting, status, err := loadMeetingForUser(c.Params("uuid"), userCtx.UserID, true)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": errorName(status), "message": err.Error()})
	}

	var req meetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	if req.Title != "" {
		meeting.Title = req.Title
	}
	meeting.Description = req.Description
	meeting.Location = req.Location
	if !req.StartTime.IsZero() {
		meeting.StartTime = req.StartTime
	}
	if !req.EndTime.IsZero() {
		meeting.EndTime = req.EndTime
	}

	if err := meeting.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	if err := repo.Update(meeting); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to update meeting"})
	}

	return c.JSON(meetingResponse(meeting))
}

// HandleDeleteMeeting soft deletes a meeting; owner only.
func HandleDeleteMeeting(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	meeting, status, err := loadMeetingForUser(c.Params("uuid"), userCtx.UserID, true)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": errorName(status), "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	if err := repo.Delete(meeting.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to delete meeting"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddParticipant adds a user (by email) to a meeting; owner only.
func HandleAddParticipant(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	meeting, status, err := loadMeetingForUser(c.Params("uuid"), userCtx.UserID, true)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": errorName(status), "message": err.Error()})
	}

	var req addParticipantRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Participant email missing"})
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	participant, err := userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "No user with this email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to look up user"})
	}

	if participant.ID == meeting.UserID || meeting.HasParticipant(participant.ID) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": "User already attends this meeting"})
	}

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	if err := repo.AddParticipant(meeting.ID, participant.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to add participant"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"meeting_uuid": meeting.UUID,
		"participant": fiber.Map{
			"id":    participant.ID,
			"name":  participant.Name,
			"email": participant.Email,
		},
	})
}

// HandleRemoveParticipant removes a participant from a meeting; owner only.
func HandleRemoveParticipant(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	meeting, status, err := loadMeetingForUser(c.Params("uuid"), userCtx.UserID, true)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": errorName(status), "message": err.Error()})
	}

	participantID, err := strconv.ParseUint(c.Params("userID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid participant id"})
	}

	if !meeting.HasParticipant(uint(participantID)) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Not a participant of this meeting"})
	}

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	if err := repo.RemoveParticipant(meeting.ID, uint(participantID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to remove participant"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// loadMeetingForUser fetches a meeting by UUID and enforces access: owners
// always pass, participants pass unless ownerOnly is set.
func loadMeetingForUser(uuid string, userID uint, ownerOnly bool) (*models.Meeting, int, error) {
	if uuid == "" {
		return nil, fiber.StatusBadRequest, errors.New("meeting uuid missing")
	}

	repo := repository.GetGlobalFactory().GetMeetingRepository()
	meeting, err := repo.GetByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.StatusNotFound, errors.New("meeting not found")
		}
		return nil, fiber.StatusInternalServerError, errors.New("failed to load meeting")
	}

	if meeting.IsOwner(userID) {
		return meeting, fiber.StatusOK, nil
	}
	if !ownerOnly && meeting.HasParticipant(userID) {
		return meeting, fiber.StatusOK, nil
	}
	if ownerOnly && meeting.HasParticipant(userID) {
		return nil, fiber.StatusForbidden, errors.New("only the owner may modify this meeting")
	}

	// Nicht-Beteiligte erfahren nicht, ob das Meeting existiert
	return nil, fiber.StatusNotFound, errors.New("meeting not found")
}

// meetingResponse maps a meeting to its JSON response shape.
func meetingResponse(m *models.Meeting) fiber.Map {
	participants := make([]fiber.Map, 0, len(m.Participants))
	for _, p := range m.Participants {
		participants = append(participants, fiber.Map{
			"id":    p.ID,
			"name":  p.Name,
			"email": p.Email,
		})
	}

	return fiber.Map{
		"uuid":             m.UUID,
		"title":            m.Title,
		"description":      m.Description,
		"location":         m.Location,
		"start_time":       m.StartTime.UTC().Format(time.RFC3339),
		"end_time":         m.EndTime.UTC().Format(time.RFC3339),
		"duration_minutes": m.DurationMinutes(),
		"owner_id":         m.UserID,
		"participants":     participants,
		"created_at":       m.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":       m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
