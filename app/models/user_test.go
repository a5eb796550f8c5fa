package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	user, err := CreateUser("testuser", "test@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "testuser", user.Name)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, ROLE_USER, user.Role)
	assert.Equal(t, STATUS_ACTIVE, user.Status)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserValidation(t *testing.T) {
	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short name", "ab", "test@example.com", "secret123"},
		{"invalid email", "testuser", "not-an-email", "secret123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateUser(tc.username, tc.email, tc.password)
			assert.Error(t, err)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}

func TestSetPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("newpassword"))
	assert.True(t, u.CheckPassword("newpassword"))
}

func TestGenerateActivationToken(t *testing.T) {
	u := &User{}
	require.NoError(t, u.GenerateActivationToken())

	assert.Len(t, u.ActivationToken, 32)
	assert.NotNil(t, u.ActivationSentAt)
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&User{Status: STATUS_ACTIVE}).IsActive())
	assert.False(t, (&User{Status: STATUS_INACTIVE}).IsActive())
	assert.False(t, (&User{Status: STATUS_DISABLED}).IsActive())
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Local", (&User{}).Location().String())
	assert.Equal(t, "Europe/Berlin", (&User{Timezone: "Europe/Berlin"}).Location().String())
	assert.Equal(t, "Local", (&User{Timezone: "Not/AZone"}).Location().String())
}
