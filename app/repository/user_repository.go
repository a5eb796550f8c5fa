package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/ManuelWeiss/MeetFox/app/models"
	"gorm.io/gorm"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByActivationToken retrieves a user by their activation token
func (r *userRepository) GetByActivationToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.Where("activation_token = ?", token).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetStatsByUserID returns aggregate statistics for the given user.
func (r *userRepository) GetStatsByUserID(userID uint) (*UserStats, error) {
	stats, err := r.getUserStats(userID)
	if err != nil {
		return nil, err
	}
	return &UserStats{
		MeetingCount:  stats.MeetingCount,
		AttendedCount: stats.AttendedCount,
		TotalMinutes:  stats.TotalMinutes,
	}, nil
}

// Update updates an existing user in the database
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete soft deletes a user by their ID
func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// search finds users by name or email
func (r *userRepository) search(query string) ([]models.User, error) {
	var users []models.User
	searchPattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("name LIKE ? OR email LIKE ?", searchPattern, searchPattern).Find(&users).Error
	return users, err
}

// GetWithStats retrieves users with their statistics (meeting count, attended count, total minutes)
func (r *userRepository) GetWithStats(offset, limit int) ([]UserWithStats, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, err
	}

	var usersWithStats []UserWithStats
	for _, user := range users {
		stats, err := r.getUserStats(user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get stats for user %d: %w", user.ID, err)
		}

		usersWithStats = append(usersWithStats, UserWithStats{
			User:          user,
			MeetingCount:  stats.MeetingCount,
			AttendedCount: stats.AttendedCount,
			TotalMinutes:  stats.TotalMinutes,
		})
	}

	return usersWithStats, nil
}

// SearchWithStats searches for users with their statistics
func (r *userRepository) SearchWithStats(query string) ([]UserWithStats, error) {
	users, err := r.search(query)
	if err != nil {
		return nil, err
	}

	var usersWithStats []UserWithStats
	for _, user := range users {
		stats, err := r.getUserStats(user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get stats for user %d: %w", user.ID, err)
		}

		usersWithStats = append(usersWithStats, UserWithStats{
			User:          user,
			MeetingCount:  stats.MeetingCount,
			AttendedCount: stats.AttendedCount,
			TotalMinutes:  stats.TotalMinutes,
		})
	}

	return usersWithStats, nil
}

// userStats represents internal user statistics
type userStats struct {
	MeetingCount  int64
	AttendedCount int64
	TotalMinutes  int64
}

// getUserStats retrieves statistics for a specific user
func (r *userRepository) getUserStats(userID uint) (*userStats, error) {
	var stats userStats

	// Owned meetings
	err := r.db.Model(&models.Meeting{}).Where("user_id = ?", userID).Count(&stats.MeetingCount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings: %w", err)
	}

	// Meetings attended as participant
	err = r.db.Model(&models.MeetingParticipant{}).Where("user_id = ?", userID).Count(&stats.AttendedCount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count attended meetings: %w", err)
	}

	// Total minutes across owned meetings
	err = r.db.Model(&models.Meeting{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(TIMESTAMPDIFF(MINUTE, start_time, end_time)), 0)").Row().Scan(&stats.TotalMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate total minutes: %w", err)
	}

	return &stats, nil
}

// GetDailyStats returns daily user registration statistics for a date range
func (r *userRepository) GetDailyStats(startDate, endDate time.Time) ([]models.DailyStats, error) {
	var results []struct {
		Date  string `json:"date"`
		Count int64  `json:"count"`
	}

	// Use DATE_FORMAT for MySQL compatibility and proper date formatting
	err := r.db.Model(&models.User{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') as date, COUNT(*) as count").
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date").
		Find(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get daily user stats: %w", err)
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
