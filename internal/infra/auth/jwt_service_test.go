package auth

import (
	"testing"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	"shop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Admin:    true,
	}
}

func TestJWTService_GenerateAndParseTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	user := newTestUser()

	accessToken, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	accessClaims, err := svc.ParseToken(accessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, "alice", accessClaims.Username)
	assert.Equal(t, "alice@example.com", accessClaims.Email)
	assert.Equal(t, []string{"user", "admin"}, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ParseToken(refreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Username)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ParseToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecretForType(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	// An access token is signed with the access secret, so the refresh secret rejects it.
	accessToken, err := svc.GenerateAccessToken(newTestUser())
	require.NoError(t, err)

	_, err = svc.ParseToken(accessToken, service.TokenTypeRefresh)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_WrongType(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	refreshToken, err := svc.GenerateRefreshToken(newTestUser())
	require.NoError(t, err)

	_, err = svc.ParseToken(refreshToken, service.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenWrongType)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateRefreshToken(newTestUser())
	require.NoError(t, err)
	impl.now = time.Now

	_, err = svc.ParseToken(token, service.TokenTypeRefresh)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims := &service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseToken(token, service.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}
