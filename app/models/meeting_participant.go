package models

import "time"

type MeetingParticipant struct {
	MeetingID uint      `gorm:"primaryKey;autoIncrement:false" json:"meeting_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
