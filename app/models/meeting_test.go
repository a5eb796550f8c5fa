package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMeeting() *Meeting {
	start := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	return &Meeting{
		UserID:    1,
		Title:     "Weekly Sync",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
	}
}

func TestMeetingValidate(t *testing.T) {
	m := validMeeting()
	require.NoError(t, m.Validate())

	m.Title = "ab"
	assert.Error(t, m.Validate(), "title below minimum length")

	m = validMeeting()
	m.StartTime = time.Time{}
	assert.Error(t, m.Validate(), "start time is required")
}

func TestMeetingDurationMinutes(t *testing.T) {
	m := validMeeting()
	assert.Equal(t, 30.0, m.DurationMinutes())

	m.EndTime = m.StartTime.Add(90*time.Minute + 30*time.Second)
	assert.Equal(t, 90.5, m.DurationMinutes())

	// EndTime vor StartTime wird nicht korrigiert
	m.EndTime = m.StartTime.Add(-15 * time.Minute)
	assert.Equal(t, -15.0, m.DurationMinutes())
}

func TestMeetingIsOwner(t *testing.T) {
	m := validMeeting()
	assert.True(t, m.IsOwner(1))
	assert.False(t, m.IsOwner(2))
}

func TestMeetingHasParticipant(t *testing.T) {
	m := validMeeting()
	assert.False(t, m.HasParticipant(5))

	m.Participants = []User{{ID: 5}, {ID: 7}}
	assert.True(t, m.HasParticipant(5))
	assert.True(t, m.HasParticipant(7))
	assert.False(t, m.HasParticipant(9))
}

func TestMeetingBeforeCreate(t *testing.T) {
	m := validMeeting()
	require.NoError(t, m.BeforeCreate(nil))
	assert.Len(t, m.UUID, 36)

	m2 := validMeeting()
	m2.UUID = "11111111-2222-3333-4444-555555555555"
	require.NoError(t, m2.BeforeCreate(nil))
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", m2.UUID)
}
