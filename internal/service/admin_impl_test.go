package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speechcraft-server/internal/mocks"
	"speechcraft-server/internal/models"
)

type adminFixture struct {
	userRepo *mocks.MockUserRepository
	subRepo  *mocks.MockSubscriptionRepository
	svc      AdminService
}

func newAdminFixture(t *testing.T) *adminFixture {
	userRepo := mocks.NewMockUserRepository(t)
	subRepo := mocks.NewMockSubscriptionRepository(t)
	log := zap.NewNop()

	return &adminFixture{
		userRepo: userRepo,
		subRepo:  subRepo,
		svc:      NewAdminService(userRepo, NewSubscriptionService(subRepo, log), log),
	}
}

func TestAdminListUsers(t *testing.T) {
	f := newAdminFixture(t)

	page := []models.User{{ID: uuid.New(), Username: "a"}, {ID: uuid.New(), Username: "b"}}
	f.userRepo.On("ListUsers", mock.Anything, 20, 0).Return(page, nil).Once()
	f.userRepo.On("CountUsers", mock.Anything).Return(int64(42), nil).Once()

	users, total, err := f.svc.ListUsers(context.Background(), 0, -1)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(42), total)
	f.userRepo.AssertExpectations(t)
}

func TestAdminSetUserBan_AdminCannotBeBanned(t *testing.T) {
	f := newAdminFixture(t)
	adminID := uuid.New()

	f.userRepo.On("GetUserByID", mock.Anything, adminID).
		Return(&models.User{ID: adminID, Roles: []string{models.RoleUser, models.RoleAdmin}}, nil).Once()

	err := f.svc.SetUserBan(context.Background(), adminID, true)
	assert.ErrorIs(t, err, models.ErrForbidden)
	f.userRepo.AssertNotCalled(t, "SetBanned")
}

func TestAdminSetUserBan_RegularUser(t *testing.T) {
	f := newAdminFixture(t)
	userID := uuid.New()

	f.userRepo.On("GetUserByID", mock.Anything, userID).
		Return(&models.User{ID: userID, Roles: []string{models.RoleUser}}, nil).Once()
	f.userRepo.On("SetBanned", mock.Anything, userID, true).Return(nil).Once()

	require.NoError(t, f.svc.SetUserBan(context.Background(), userID, true))

	// Разбан не требует проверки ролей.
	f.userRepo.On("SetBanned", mock.Anything, userID, false).Return(nil).Once()
	require.NoError(t, f.svc.SetUserBan(context.Background(), userID, false))

	f.userRepo.AssertExpectations(t)
}

func TestAdminUserSubscription_UnknownUser(t *testing.T) {
	f := newAdminFixture(t)
	userID := uuid.New()

	f.userRepo.On("GetUserByID", mock.Anything, userID).Return(nil, models.ErrUserNotFound).Once()

	_, err := f.svc.UserSubscription(context.Background(), userID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	// Подписка-сирота не создается.
	f.subRepo.AssertNotCalled(t, "Create")
}

func TestAdminChangeUserPlan(t *testing.T) {
	f := newAdminFixture(t)
	userID := uuid.New()

	f.userRepo.On("GetUserByID", mock.Anything, userID).
		Return(&models.User{ID: userID}, nil).Once()
	f.subRepo.On("GetByUserID", mock.Anything, userID).
		Return(freshSub(userID, models.PlanFree, 0), nil).Once()
	f.subRepo.On("UpdatePlan", mock.Anything, userID, models.PlanPro).Return(nil).Once()

	require.NoError(t, f.svc.ChangeUserPlan(context.Background(), userID, models.PlanPro))
	f.subRepo.AssertExpectations(t)
}
