package service

import (
	"context"
	"io"
	"time"

	"shop/internal/domain/entity"
	"shop/internal/domain/service"
	"shop/internal/mocks"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted on cleanup.
func NewMockPasswordHasher(t mocks.TestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted on cleanup.
func NewMockTokenService(t mocks.TestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateAccessToken(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateRefreshToken(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ParseToken(tokenString string, expected service.TokenType) (*service.Claims, error) {
	args := m.Called(tokenString, expected)

	return mocks.Result[*service.Claims](args, 0), args.Error(1)
}

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock whose expectations are asserted on cleanup.
func NewMockEventPublisher(t mocks.TestingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockMailer is a mock of service.Mailer.
type MockMailer struct {
	mock.Mock
}

// NewMockMailer creates a mock whose expectations are asserted on cleanup.
func NewMockMailer(t mocks.TestingT) *MockMailer {
	m := &MockMailer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailer) Send(ctx context.Context, event *service.EmailEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockImageStorage is a mock of service.ImageStorage.
type MockImageStorage struct {
	mock.Mock
}

// NewMockImageStorage creates a mock whose expectations are asserted on cleanup.
func NewMockImageStorage(t mocks.TestingT) *MockImageStorage {
	m := &MockImageStorage{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockImageStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, r)

	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// MockCatalogCache is a mock of service.CatalogCache.
type MockCatalogCache struct {
	mock.Mock
}

// NewMockCatalogCache creates a mock whose expectations are asserted on cleanup.
func NewMockCatalogCache(t mocks.TestingT) *MockCatalogCache {
	m := &MockCatalogCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)

	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCatalogCache) DeletePrefix(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}
