package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// verificationCodeRepository implements repository.VerificationCodeRepository.
type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository is the constructor for verificationCodeRepository.
func NewVerificationCodeRepository(db *gorm.DB) repository.VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

// Replace swaps the user's code. It is meant to run on a transaction-bound repository.
func (repo *verificationCodeRepository) Replace(ctx context.Context, code *entity.VerificationCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}

	if err := repo.DeleteByUser(ctx, code.UserID); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(fromVerificationCodeDomain(code)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store verification code")
	}

	return nil
}

func (repo *verificationCodeRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.VerificationCode, error) {
	var codeM model.VerificationCodeModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification code")
	}

	return toVerificationCodeDomain(&codeM), nil
}

// DeleteByUser removes the user's code if there is one.
func (repo *verificationCodeRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.VerificationCodeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete verification code")
	}

	return nil
}

func toVerificationCodeDomain(data *model.VerificationCodeModel) *entity.VerificationCode {
	return &entity.VerificationCode{
		ID:        data.ID,
		UserID:    data.UserID,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
	}
}

func fromVerificationCodeDomain(data *entity.VerificationCode) *model.VerificationCodeModel {
	return &model.VerificationCodeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
	}
}
