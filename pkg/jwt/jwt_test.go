package jwt

import (
	"testing"
	"time"

	"hospital-agenda/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(Subject{
		UserID:      userID,
		Email:       "recepcion@hospital.test",
		RoleID:      3,
		Permissions: []string{"citas"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.Equal(t, []string{"citas"}, claims.Permissions)
	assert.Equal(t, 3, claims.RoleID)
}

func TestRefreshTokenCarriesNoPermissions(t *testing.T) {
	svc := newTestService("test-secret")

	token, _, err := svc.GenerateRefreshToken(Subject{UserID: uuid.New(), Permissions: []string{"citas"}})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Empty(t, claims.Permissions)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService("one").GenerateAccessToken(Subject{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = newTestService("two").ValidateToken(token)
	assert.Error(t, err)
}
