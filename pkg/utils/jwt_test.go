package utils_test

import (
	"testing"
	"time"

	"github.com/TemiKayode/wumikay-ventures/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	m := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(7, "ade@example.com", "admin")
	assert.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ade@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTManager_RefreshTokenRoundTrip(t *testing.T) {
	m := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateRefreshToken("ade@example.com")
	assert.NoError(t, err)

	email, err := m.ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "ade@example.com", email)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	m := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	other := utils.NewJWTManager("other-secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(7, "ade@example.com", "admin")
	assert.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	m := utils.NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(7, "ade@example.com", "admin")
	assert.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, utils.CheckPasswordHash("secret123", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}
