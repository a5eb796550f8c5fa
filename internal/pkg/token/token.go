package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/ManuelWeiss/MeetFox/internal/pkg/env"
)

const DefaultExpiryHours = 72

func secretKey() []byte {
	return []byte(env.GetEnv("TOKEN_SECRET", "meetfox-dev-secret"))
}

// Expiry returns the configured token lifetime.
func Expiry() time.Duration {
	hours, err := strconv.Atoi(env.GetEnv("TOKEN_EXPIRY_HOURS", ""))
	if err != nil || hours <= 0 {
		hours = DefaultExpiryHours
	}
	return time.Duration(hours) * time.Hour
}

// Generate creates a signed HS256 JWT for the given user. The subject claim
// carries the user ID; expiry is computed from TOKEN_EXPIRY_HOURS.
func Generate(userID uint, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(Expiry())
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(userID), 10),
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secretKey())
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate parses and validates a token string and returns the token if valid.
func Validate(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractUserID extracts the user ID (subject) from a valid JWT token string.
func ExtractUserID(tokenString string) (uint, error) {
	t, err := Validate(tokenString)
	if err != nil {
		return 0, err
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return 0, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, errors.New("token does not contain a valid 'sub' claim")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.New("token subject is not a user id")
	}

	return uint(id), nil
}
