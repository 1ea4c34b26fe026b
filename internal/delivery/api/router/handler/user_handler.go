package handler

import (
	"log/slog"

	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the /auth routes.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest and LoginRequest bind from JSON or from a urlencoded form.
type RegisterRequest struct {
	Username  string `json:"username" form:"username" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required"`
	Password2 string `json:"password2" form:"password2" validate:"required"`
	AdminKey  string `json:"admin_key" form:"admin_key"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email" validate:"omitempty,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Register creates an account; the verification email is sent in the background.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		AdminKey:  req.AdminKey,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, user)
}

func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tokens, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, tokens)
}

// Refresh takes the refresh token from ?refresh_token=.
func (h *UserHandler) Refresh(c echo.Context) error {
	refreshToken := c.QueryParam("refresh_token")
	if refreshToken == "" {
		return response.AppError(c, domainerrors.ErrUnprocessable.WithDetails("refresh_token is required"))
	}

	token, err := h.userUC.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, token)
}

func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrMissingToken)
	}

	return response.OK(c, user)
}

// FindUser looks a user up by ?user_id= or ?username=.
func (h *UserHandler) FindUser(c echo.Context) error {
	id, err := optionalUUID("user_id", c.QueryParam("user_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), &usecase.GetUserInput{
		ID:       id,
		Username: c.QueryParam("username"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}

func (h *UserHandler) Ban(c echo.Context) error {
	return h.withUserID(c, h.userUC.Ban)
}

func (h *UserHandler) Unban(c echo.Context) error {
	return h.withUserID(c, h.userUC.Unban)
}

func (h *UserHandler) Delete(c echo.Context) error {
	return h.withUserID(c, h.userUC.Delete)
}

// withUserID runs an admin action against ?user_id=.
func (h *UserHandler) withUserID(c echo.Context, action userAction) error {
	id, err := requiredUUID("user_id", c.QueryParam("user_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := action(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}
