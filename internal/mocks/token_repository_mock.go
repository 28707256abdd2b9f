package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// MockTokenRepository is a mock type for the TokenRepository type
type MockTokenRepository struct {
	mock.Mock
}

func (_m *MockTokenRepository) SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error {
	ret := _m.Called(ctx, userID, td)
	return ret.Error(0)
}

func (_m *MockTokenRepository) GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error) {
	ret := _m.Called(ctx, accessUUID)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}
	return r0, ret.Error(1)
}

func (_m *MockTokenRepository) GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error) {
	ret := _m.Called(ctx, refreshUUID)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}
	return r0, ret.Error(1)
}

func (_m *MockTokenRepository) DeleteTokens(ctx context.Context, accessUUID string, refreshUUID string) (int64, error) {
	ret := _m.Called(ctx, accessUUID, refreshUUID)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewMockTokenRepository creates a new instance of MockTokenRepository.
// The first argument is typically a *testing.T value.
func NewMockTokenRepository(t interface {
	mock.TestingT
	Helper()
}) *MockTokenRepository {
	m := &MockTokenRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ interfaces.TokenRepository = (*MockTokenRepository)(nil)
