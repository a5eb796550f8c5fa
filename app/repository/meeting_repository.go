package repository

import (
	"fmt"
	"time"

	"github.com/ManuelWeiss/MeetFox/app/models"
	"gorm.io/gorm"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository instance
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting in the database
func (r *meetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// GetByUUID retrieves a meeting by its public UUID including participants
func (r *meetingRepository) GetByUUID(uuid string) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.Preload("Participants").Where("uuid = ?", uuid).First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetByUserID retrieves a paginated list of meetings where the user is owner
// or participant, ordered by start time descending
func (r *meetingRepository) GetByUserID(userID uint, offset, limit int) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.Preload("Participants").
		Where("user_id = ? OR id IN (?)", userID, r.participantMeetingIDs(userID)).
		Order("start_time DESC").
		Offset(offset).Limit(limit).
		Find(&meetings).Error
	return meetings, err
}

// Update updates an existing meeting in the database
func (r *meetingRepository) Update(meeting *models.Meeting) error {
	return r.db.Save(meeting).Error
}

// Delete soft deletes a meeting by its ID
func (r *meetingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Meeting{}, id).Error
}

// CountByUserID returns the number of meetings where the user is owner or participant
func (r *meetingRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Meeting{}).
		Where("user_id = ? OR id IN (?)", userID, r.participantMeetingIDs(userID)).
		Count(&count).Error
	return count, err
}

// AddParticipant adds a user to a meeting's participant list
func (r *meetingRepository) AddParticipant(meetingID, userID uint) error {
	participant := models.MeetingParticipant{MeetingID: meetingID, UserID: userID}
	return r.db.Create(&participant).Error
}

// RemoveParticipant removes a user from a meeting's participant list
func (r *meetingRepository) RemoveParticipant(meetingID, userID uint) error {
	return r.db.Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Delete(&models.MeetingParticipant{}).Error
}

// GetInRange returns all meetings where the user is owner or participant
// with a start time inside [from, to]. The bounds are inclusive; callers
// that need stricter day windows re-apply their own interval logic.
func (r *meetingRepository) GetInRange(userID uint, from, to time.Time) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.
		Where("(user_id = ? OR id IN (?)) AND start_time BETWEEN ? AND ?",
			userID, r.participantMeetingIDs(userID), from, to).
		Order("start_time ASC").
		Find(&meetings).Error
	return meetings, err
}

// GetUpcoming returns the next meetings for a user starting after the given instant
func (r *meetingRepository) GetUpcoming(userID uint, after time.Time, limit int) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.Preload("Participants").
		Where("(user_id = ? OR id IN (?)) AND start_time > ?",
			userID, r.participantMeetingIDs(userID), after).
		Order("start_time ASC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}

// participantMeetingIDs builds the subquery selecting meeting IDs where the
// user appears as participant
func (r *meetingRepository) participantMeetingIDs(userID uint) *gorm.DB {
	return r.db.Model(&models.MeetingParticipant{}).
		Select("meeting_id").
		Where("user_id = ?", userID)
}

// GetDailyStats returns daily meeting creation statistics for a date range
func (r *meetingRepository) GetDailyStats(startDate, endDate time.Time) ([]models.DailyStats, error) {
	var results []struct {
		Date  string `json:"date"`
		Count int64  `json:"count"`
	}

	err := r.db.Model(&models.Meeting{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') as date, COUNT(*) as count").
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date").
		Find(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get daily meeting stats: %w", err)
	}

	dailyStats := make([]models.DailyStats, len(results))
	for i, result := range results {
		dailyStats[i] = models.DailyStats{
			Date:  result.Date,
			Count: int(result.Count),
		}
	}

	return dailyStats, nil
}
