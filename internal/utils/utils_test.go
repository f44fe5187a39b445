package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"professor-booking-server/internal/config"
	"professor-booking-server/internal/dto"
	"professor-booking-server/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", JWTExpirationHours: 1}

	token, err := GenerateToken("prof-1", models.RoleProfessor, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "prof-1", claims.UserID)
	assert.Equal(t, models.RoleProfessor, claims.Role)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", JWTExpirationHours: -1}

	token, err := GenerateToken("user-1", models.RoleUser, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret")
	assert.Error(t, err)
}

func TestFormatValidationError(t *testing.T) {
	err := Validate(dto.LoginRequest{Email: "not-an-email"})
	require.Error(t, err)

	msg := FormatValidationError(err)
	assert.Contains(t, msg, "Email must be a valid email")
	assert.Contains(t, msg, "Password is required")
}
