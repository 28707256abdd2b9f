package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"speechcraft-server/internal/interfaces"
)

// MockEventPublisher is a mock type for the EventPublisher type
type MockEventPublisher struct {
	mock.Mock
}

func (_m *MockEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	ret := _m.Called(ctx, routingKey, payload)
	return ret.Error(0)
}

func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}

// NewMockEventPublisher creates a new instance of MockEventPublisher.
// The first argument is typically a *testing.T value.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Helper()
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ interfaces.EventPublisher = (*MockEventPublisher)(nil)
