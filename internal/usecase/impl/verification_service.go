package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultVerifyCodeTTL = 7 * 24 * time.Hour

type verificationService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	codeTTL   time.Duration
	now       func() time.Time
	newCode   func() (int, error)
	logger    *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	codeTTL := defaultVerifyCodeTTL
	if params.Config.Auth != nil && params.Config.Auth.VerifyCodeTTL > 0 {
		codeTTL = params.Config.Auth.VerifyCodeTTL
	}

	return &verificationService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		codeTTL:   codeTTL,
		now:       time.Now,
		newCode:   randomCode,
		logger:    params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue replaces the user's code and hands the email to the publisher.
// Publishing failures are logged; only storage failures are returned.
func (srv *verificationService) Issue(ctx context.Context, user *entity.User) error {
	code, err := srv.newCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	record := &entity.VerificationCode{
		ID:        uuid.New(),
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: srv.now().Add(srv.codeTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VerificationCodeRepo().Replace(ctx, record)
	})
	if err != nil {
		return passThrough(err, "failed to store verification code")
	}

	event := &service.EmailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Kind:      service.EmailKindVerification,
		To:        user.Email,
		Username:  user.Username,
		Code:      code,
	}
	if err := srv.publisher.PublishEmailEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to queue verification email", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return nil
}

// Verify consumes the code and marks the email verified in one transaction.
func (srv *verificationService) Verify(ctx context.Context, user *entity.User, code int) (*entity.User, error) {
	if user.VerifiedEmail {
		return nil, domainerrors.ErrAlreadyVerified
	}

	var verified *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.VerificationCodeRepo()
		userRepo := repoFactory.UserRepo()

		stored, err := codeRepo.FindByUser(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrVerificationCodeNotFound) {
				return domainerrors.ErrVerificationCodeMissing
			}

			return errors.Wrap(err, "failed to load verification code")
		}
		if stored.IsExpired(srv.now()) {
			return domainerrors.ErrVerificationCodeMissing.WithDetails("code expired")
		}
		if stored.Code != code {
			return domainerrors.ErrVerificationCodeIncorrect
		}

		if err := userRepo.SetVerified(ctx, user.ID); err != nil {
			return mapUserLookupError(err)
		}
		if err := codeRepo.DeleteByUser(ctx, user.ID); err != nil {
			return err
		}

		verified, err = userRepo.FindByID(ctx, user.ID)
		if err != nil {
			return mapUserLookupError(err)
		}

		return nil
	})
	if err != nil {
		return nil, passThrough(err, "failed to verify email")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

	return verified, nil
}

// Resend issues a new code for an unverified user.
func (srv *verificationService) Resend(ctx context.Context, user *entity.User) (*usecase.ResendOutput, error) {
	if user.VerifiedEmail {
		return nil, domainerrors.ErrResendAlreadyVerified
	}

	if err := srv.Issue(ctx, user); err != nil {
		return nil, err
	}

	return &usecase.ResendOutput{
		Message: fmt.Sprintf("New code successfully sending to your email: %s", user.Email),
	}, nil
}

// randomCode draws uniformly from [VerificationCodeMin, VerificationCodeMax].
func randomCode() (int, error) {
	span := big.NewInt(entity.VerificationCodeMax - entity.VerificationCodeMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}

	return int(n.Int64()) + entity.VerificationCodeMin, nil
}
