// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"
	"shop/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	tokenTypeBearer   = "Bearer"
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 8
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verification usecase.VerificationUsecase
	adminKey     string
	pageSize     int
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verification usecase.VerificationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	adminKey := ""
	if params.Config.Auth != nil {
		adminKey = params.Config.Auth.AdminKey
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verification: params.Verification,
		adminKey:     adminKey,
		pageSize:     params.Config.Pagination.PageSize,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and queues its first verification email.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if err := validateCredentials(input); err != nil {
		return nil, err
	}

	admin := false
	if input.AdminKey != "" {
		if srv.adminKey == "" || input.AdminKey != srv.adminKey {
			srv.log(ctx).Warn("Registration with invalid admin key", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidAdminKey
		}
		admin = true
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Active:       true,
		Admin:        admin,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			switch {
			case errors.Is(err, repository.ErrUsernameExists):
				return domainerrors.ErrUsernameTaken
			case errors.Is(err, repository.ErrEmailExists):
				return domainerrors.ErrEmailTaken
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, passThrough(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.Bool("admin", user.Admin))

	if err := srv.verification.Issue(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to issue verification code", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return user, nil
}

// Login checks the password of the user named by username or email and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPair, error) {
	if input.Username == "" && input.Email == "" {
		return nil, domainerrors.ErrIdentifierRequired
	}

	user, err := srv.userRepo.FindOne(ctx, repository.UserLookup{Username: input.Username, Email: input.Email})
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with incorrect password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrIncorrectPassword
	}
	if !user.Active {
		return nil, domainerrors.ErrUserBanned
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	refreshToken, err := srv.tokenService.GenerateRefreshToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
	}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AccessToken, error) {
	claims, err := srv.tokenService.ParseToken(refreshToken, service.TokenTypeRefresh)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired
		case errors.Is(err, service.ErrTokenWrongType):
			return nil, domainerrors.ErrWrongTokenType
		default:
			return nil, domainerrors.ErrRefreshTokenInvalid
		}
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}
	if !user.Active {
		return nil, domainerrors.ErrUserBanned
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AccessToken{AccessToken: accessToken, TokenType: tokenTypeBearer}, nil
}

// Authenticate resolves an access token to a live user row.
func (srv *userService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ParseToken(accessToken, service.TokenTypeAccess)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired
		case errors.Is(err, service.ErrTokenWrongType):
			return nil, domainerrors.ErrWrongTokenType
		default:
			return nil, domainerrors.ErrInvalidToken
		}
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}
	if !user.Active {
		return nil, domainerrors.ErrUserBanned
	}

	return user, nil
}

func (srv *userService) GetUser(ctx context.Context, input *usecase.GetUserInput) (*entity.User, error) {
	if input.ID == uuid.Nil && input.Username == "" {
		return nil, domainerrors.ErrIdentifierRequired
	}

	user, err := srv.userRepo.FindOne(ctx, repository.UserLookup{ID: input.ID, Username: input.Username})
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, page int) ([]*entity.User, error) {
	offset, limit := util.Paginate(page, srv.pageSize)

	users, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Ban deactivates the user.
func (srv *userService) Ban(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.setActive(ctx, userID, false)
}

// Unban reactivates the user.
func (srv *userService) Unban(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.setActive(ctx, userID, true)
}

// setActive flips the flag and re-reads the row inside one transaction.
func (srv *userService) setActive(ctx context.Context, userID uuid.UUID, active bool) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}
		if user.Active == active {
			if active {
				return domainerrors.ErrUserNotBanned
			}

			return domainerrors.ErrUserAlreadyBanned
		}

		if err := userRepo.SetActive(ctx, userID, active); err != nil {
			return mapUserLookupError(err)
		}

		updated, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		return nil
	})
	if err != nil {
		return nil, passThrough(err, "failed to update user status")
	}

	srv.log(ctx).Info("User status changed", slog.Any("userID", userID), slog.Bool("active", active))

	return updated, nil
}

func (srv *userService) Delete(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.Delete(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", userID))

	return user, nil
}

func validateCredentials(input *usecase.RegisterInput) error {
	length := utf8.RuneCountInString(input.Username)
	if length < minUsernameLength || length > maxUsernameLength {
		return domainerrors.ErrUnprocessable.WithDetails("username must be 3 to 30 characters")
	}

	if utf8.RuneCountInString(input.Password) < minPasswordLength || !hasUpper(input.Password) {
		return domainerrors.ErrPasswordStrength
	}

	if input.Password != input.Password2 {
		return domainerrors.ErrPasswordMismatch
	}

	return nil
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

// mapUserLookupError converts repository misses to the HTTP-facing error.
func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to load user")
}
