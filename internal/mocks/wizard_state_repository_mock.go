package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"speechcraft-server/internal/interfaces"
	"speechcraft-server/internal/models"
)

// MockWizardStateRepository is a mock type for the WizardStateRepository type
type MockWizardStateRepository struct {
	mock.Mock
}

func (_m *MockWizardStateRepository) SaveState(ctx context.Context, userID uuid.UUID, state *models.WizardState) error {
	ret := _m.Called(ctx, userID, state)
	return ret.Error(0)
}

func (_m *MockWizardStateRepository) LoadState(ctx context.Context, userID uuid.UUID) (*models.WizardState, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.WizardState
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.WizardState); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.WizardState)
		}
	}
	return r0, ret.Error(1)
}

func (_m *MockWizardStateRepository) DeleteState(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

func (_m *MockWizardStateRepository) SaveDraftBackups(ctx context.Context, userID uuid.UUID, draft string) error {
	ret := _m.Called(ctx, userID, draft)
	return ret.Error(0)
}

func (_m *MockWizardStateRepository) LoadDraftBackup(ctx context.Context, userID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, userID)
	return ret.String(0), ret.Error(1)
}

func (_m *MockWizardStateRepository) SaveLastRequest(ctx context.Context, userID uuid.UUID, req *models.GenerationRequest) error {
	ret := _m.Called(ctx, userID, req)
	return ret.Error(0)
}

func (_m *MockWizardStateRepository) ClearRecovery(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

// NewMockWizardStateRepository creates a new instance of MockWizardStateRepository.
// The first argument is typically a *testing.T value.
func NewMockWizardStateRepository(t interface {
	mock.TestingT
	Helper()
}) *MockWizardStateRepository {
	m := &MockWizardStateRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ interfaces.WizardStateRepository = (*MockWizardStateRepository)(nil)
