package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speechcraft-server/internal/mocks"
	"speechcraft-server/internal/models"
)

func freshSub(userID uuid.UUID, plan models.Plan, used int) *models.Subscription {
	return &models.Subscription{
		ID:              uuid.New(),
		UserID:          userID,
		Plan:            plan,
		GenerationsUsed: used,
		PeriodStart:     time.Now().Add(-time.Hour),
	}
}

func TestGetForUser_LazyCreatesFreePlan(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepository(t)
	userID := uuid.New()

	subRepo.On("GetByUserID", mock.Anything, userID).Return(nil, models.ErrSubscriptionNotFound).Once()
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Subscription")).Return(nil).Once()

	svc := NewSubscriptionService(subRepo, zap.NewNop())

	sub, err := svc.GetForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.PlanFree, sub.Plan)
	assert.Equal(t, userID, sub.UserID)
	assert.Zero(t, sub.GenerationsUsed)
	subRepo.AssertExpectations(t)
}

func TestGetForUser_ResetsExpiredPeriod(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepository(t)
	userID := uuid.New()

	stale := freshSub(userID, models.PlanFree, 3)
	stale.PeriodStart = time.Now().Add(-31 * 24 * time.Hour)

	subRepo.On("GetByUserID", mock.Anything, userID).Return(stale, nil).Once()
	subRepo.On("ResetPeriod", mock.Anything, userID).Return(nil).Once()

	svc := NewSubscriptionService(subRepo, zap.NewNop())

	sub, err := svc.GetForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, sub.GenerationsUsed)
	assert.WithinDuration(t, time.Now(), sub.PeriodStart, time.Minute)
	subRepo.AssertExpectations(t)
}

func TestCheckQuota_FreePlanLimit(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepository(t)
	userID := uuid.New()
	svc := NewSubscriptionService(subRepo, zap.NewNop())

	subRepo.On("GetByUserID", mock.Anything, userID).Return(freshSub(userID, models.PlanFree, 2), nil).Once()
	assert.NoError(t, svc.CheckQuota(context.Background(), userID))

	subRepo.On("GetByUserID", mock.Anything, userID).Return(freshSub(userID, models.PlanFree, 3), nil).Once()
	assert.ErrorIs(t, svc.CheckQuota(context.Background(), userID), models.ErrQuotaExceeded)
}

func TestCheckQuota_PremiumPlanLimit(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepository(t)
	userID := uuid.New()
	svc := NewSubscriptionService(subRepo, zap.NewNop())

	subRepo.On("GetByUserID", mock.Anything, userID).Return(freshSub(userID, models.PlanPremium, 29), nil).Once()
	assert.NoError(t, svc.CheckQuota(context.Background(), userID))

	subRepo.On("GetByUserID", mock.Anything, userID).Return(freshSub(userID, models.PlanPremium, 30), nil).Once()
	assert.ErrorIs(t, svc.CheckQuota(context.Background(), userID), models.ErrQuotaExceeded)
}

func TestCheckQuota_ProPlanUnlimited(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepository(t)
	userID := uuid.New()
	svc := NewSubscriptionService(subRepo, zap.NewNop())

	subRepo.On("GetByUserID", mock.Anything, userID).Return(freshSub(userID, models.PlanPro, 100500), nil).Once()
	assert.NoError(t, svc.CheckQuota(context.Background(), userID))
}

func TestChangePlan_UnknownPlanRejected(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepository(t)
	svc := NewSubscriptionService(subRepo, zap.NewNop())

	err := svc.ChangePlan(context.Background(), uuid.New(), models.Plan("platinum"))
	assert.ErrorIs(t, err, models.ErrUnknownPlan)
	subRepo.AssertNotCalled(t, "UpdatePlan")
}

func TestChangePlan_Success(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepository(t)
	userID := uuid.New()

	subRepo.On("GetByUserID", mock.Anything, userID).Return(freshSub(userID, models.PlanFree, 0), nil).Once()
	subRepo.On("UpdatePlan", mock.Anything, userID, models.PlanPremium).Return(nil).Once()

	svc := NewSubscriptionService(subRepo, zap.NewNop())
	require.NoError(t, svc.ChangePlan(context.Background(), userID, models.PlanPremium))
	subRepo.AssertExpectations(t)
}

func TestConsumeGeneration_PropagatesError(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepository(t)
	userID := uuid.New()
	repoErr := errors.New("db down")

	subRepo.On("IncrementUsage", mock.Anything, userID).Return(repoErr).Once()

	svc := NewSubscriptionService(subRepo, zap.NewNop())
	assert.ErrorIs(t, svc.ConsumeGeneration(context.Background(), userID), repoErr)
}

func TestPlanQuotas(t *testing.T) {
	assert.Equal(t, 3, models.PlanFree.GenerationQuota())
	assert.Equal(t, 30, models.PlanPremium.GenerationQuota())
	assert.Equal(t, models.UnlimitedGenerations, models.PlanPro.GenerationQuota())

	assert.True(t, models.PlanPro.AtLeast(models.PlanPremium))
	assert.False(t, models.PlanFree.AtLeast(models.PlanPremium))
	assert.False(t, models.Plan("platinum").IsValid())
}
