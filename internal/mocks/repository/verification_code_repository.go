package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVerificationCodeRepository is a mock of repository.VerificationCodeRepository.
type MockVerificationCodeRepository struct {
	mock.Mock
}

// NewMockVerificationCodeRepository creates a mock whose expectations are asserted on cleanup.
func NewMockVerificationCodeRepository(t mocks.TestingT) *MockVerificationCodeRepository {
	m := &MockVerificationCodeRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVerificationCodeRepository) Replace(ctx context.Context, code *entity.VerificationCode) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockVerificationCodeRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.VerificationCode, error) {
	args := m.Called(ctx, userID)

	return mocks.Result[*entity.VerificationCode](args, 0), args.Error(1)
}

func (m *MockVerificationCodeRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
