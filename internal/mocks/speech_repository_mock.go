package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// MockSpeechRepository is a mock type for the SpeechRepository type
type MockSpeechRepository struct {
	mock.Mock
}

func (_m *MockSpeechRepository) Create(ctx context.Context, speech *models.Speech) error {
	ret := _m.Called(ctx, speech)
	return ret.Error(0)
}

func (_m *MockSpeechRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Speech, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Speech
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.Speech); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Speech)
		}
	}
	return r0, ret.Error(1)
}

func (_m *MockSpeechRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]models.Speech, error) {
	ret := _m.Called(ctx, userID, limit, offset)

	var r0 []models.Speech
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Speech)
	}
	return r0, ret.Error(1)
}

func (_m *MockSpeechRepository) Update(ctx context.Context, speech *models.Speech) error {
	ret := _m.Called(ctx, speech)
	return ret.Error(0)
}

func (_m *MockSpeechRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewMockSpeechRepository creates a new instance of MockSpeechRepository.
// The first argument is typically a *testing.T value.
func NewMockSpeechRepository(t interface {
	mock.TestingT
	Helper()
}) *MockSpeechRepository {
	m := &MockSpeechRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ interfaces.SpeechRepository = (*MockSpeechRepository)(nil)
