package middleware

import (
	"log/slog"
	"strings"

	"shop/internal/delivery/api/response"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer tokens to users and gates routes on user flags.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

func NewAuthMiddleware(userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC}
}

// Authenticate requires a valid access token and stores its user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, bearerPrefix)
		token = strings.TrimSpace(token)
		if !found || token == "" {
			return response.AppError(c, domainerrors.ErrMissingToken)
		}

		ctx := c.Request().Context()
		user, err := m.userUC.Authenticate(ctx, token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUser(c, user)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireVerified must run after Authenticate.
func (m *AuthMiddleware) RequireVerified(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return response.AppError(c, domainerrors.ErrMissingToken)
		}
		if !user.VerifiedEmail {
			return response.AppError(c, domainerrors.ErrEmailNotVerified)
		}

		return next(c)
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return response.AppError(c, domainerrors.ErrMissingToken)
		}
		if !user.Roles().Contains(entity.RoleAdmin) {
			return response.AppError(c, domainerrors.ErrAdminRequired)
		}

		return next(c)
	}
}

// GetUser returns the user stored by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	return deliverycontext.GetUser(c)
}
