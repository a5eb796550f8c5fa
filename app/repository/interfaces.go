package repository

import (
	"time"

	"github.com/ManuelWeiss/MeetFox/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByActivationToken(token string) (*models.User, error)
	GetStatsByUserID(userID uint) (*UserStats, error)
	Update(user *models.User) error
	Delete(id uint) error
	GetWithStats(offset, limit int) ([]UserWithStats, error)
	SearchWithStats(query string) ([]UserWithStats, error)
	GetDailyStats(startDate, endDate time.Time) ([]models.DailyStats, error)
}

// MeetingRepository defines the interface for meeting-related database operations
type MeetingRepository interface {
	Create(meeting *models.Meeting) error
	GetByUUID(uuid string) (*models.Meeting, error)
	GetByUserID(userID uint, offset, limit int) ([]models.Meeting, error)
	Update(meeting *models.Meeting) error
	Delete(id uint) error
	CountByUserID(userID uint) (int64, error)
	AddParticipant(meetingID, userID uint) error
	RemoveParticipant(meetingID, userID uint) error
	GetInRange(userID uint, from, to time.Time) ([]models.Meeting, error)
	GetUpcoming(userID uint, after time.Time, limit int) ([]models.Meeting, error)
	GetDailyStats(startDate, endDate time.Time) ([]models.DailyStats, error)
}

// UserWithStats represents a user with additional statistics
type UserWithStats struct {
	User          models.User
	MeetingCount  int64
	AttendedCount int64
	TotalMinutes  int64
}

// UserStats provides aggregated counts for a single user (owned meetings,
// meetings attended as participant, total owned meeting minutes).
type UserStats struct {
	MeetingCount  int64
	AttendedCount int64
	TotalMinutes  int64
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	Meeting MeetingRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Meeting: NewMeetingRepository(db),
	}
}
