package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shop/config"
	"shop/internal/domain/entity"
	"shop/internal/domain/service"
	"shop/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateAccessToken signs a token carrying the user's identity and roles.
func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	claims := &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles().ToStrings(),
		Type:     service.TokenTypeAccess,
	}

	return s.sign(claims, s.accessTTL, s.accessSecret)
}

// GenerateRefreshToken signs a token that can only be exchanged for a new access token.
func (s *jwtService) GenerateRefreshToken(user *entity.User) (string, error) {
	claims := &service.Claims{
		UserID: user.ID,
		Type:   service.TokenTypeRefresh,
	}

	return s.sign(claims, s.refreshTTL, s.refreshSecret)
}

// ParseToken validates signature and expiry with the secret of the expected type,
// then compares the type claim.
func (s *jwtService) ParseToken(tokenString string, expected service.TokenType) (*service.Claims, error) {
	secret := s.accessSecret
	if expected == service.TokenTypeRefresh {
		secret = s.refreshSecret
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if claims.Type != expected {
		return nil, service.ErrTokenWrongType
	}

	return claims, nil
}

func (s *jwtService) sign(claims *service.Claims, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
