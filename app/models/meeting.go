package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Meeting struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UUID         string         `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	UserID       uint           `gorm:"index" json:"user_id"`
	User         User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=3,max=255"`
	Description  string         `gorm:"type:text" json:"description" validate:"max=2000"`
	Location     string         `gorm:"type:varchar(255)" json:"location" validate:"max=255"`
	StartTime    time.Time      `gorm:"index;not null" json:"start_time" validate:"required"`
	EndTime      time.Time      `gorm:"not null" json:"end_time" validate:"required"`
	Participants []User         `gorm:"many2many:meeting_participants;" json:"participants,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *Meeting) Validate() error {
	v := validator.New()

	return v.Struct(m)
}

// DurationMinutes liefert die Dauer des Meetings in Minuten.
// Bei fehlerhaften Daten (EndTime vor StartTime) kann der Wert negativ sein;
// die Validierung solcher Daten ist Sache der Eingabeschicht.
func (m *Meeting) DurationMinutes() float64 {
	return m.EndTime.Sub(m.StartTime).Minutes()
}

// IsOwner reports whether the given user owns this meeting.
func (m *Meeting) IsOwner(userID uint) bool {
	return m.UserID == userID
}

// HasParticipant reports whether the given user is in the loaded participant list.
func (m *Meeting) HasParticipant(userID uint) bool {
	for _, p := range m.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// BeforeCreate wird vor dem Erstellen eines neuen Datensatzes aufgerufen
func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.New().String()
	}
	return nil
}
