package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// MockSubscriptionRepository is a mock type for the SubscriptionRepository type
type MockSubscriptionRepository struct {
	mock.Mock
}

func (_m *MockSubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	ret := _m.Called(ctx, sub)
	return ret.Error(0)
}

func (_m *MockSubscriptionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.Subscription
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.Subscription); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Subscription)
		}
	}
	return r0, ret.Error(1)
}

func (_m *MockSubscriptionRepository) UpdatePlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error {
	ret := _m.Called(ctx, userID, plan)
	return ret.Error(0)
}

func (_m *MockSubscriptionRepository) IncrementUsage(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

func (_m *MockSubscriptionRepository) ResetPeriod(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

// NewMockSubscriptionRepository creates a new instance of MockSubscriptionRepository.
// The first argument is typically a *testing.T value.
func NewMockSubscriptionRepository(t interface {
	mock.TestingT
	Helper()
}) *MockSubscriptionRepository {
	m := &MockSubscriptionRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ interfaces.SubscriptionRepository = (*MockSubscriptionRepository)(nil)
