package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWizardState_IsRecoverable(t *testing.T) {
	now := time.Now()

	recent := &WizardState{Step: 3, SavedAt: now.Add(-time.Hour)}
	assert.True(t, recent.IsRecoverable(now))

	// Первый шаг восстанавливать нечего - пользователь ничего не ввел.
	firstStep := &WizardState{Step: 1, SavedAt: now.Add(-time.Hour)}
	assert.False(t, firstStep.IsRecoverable(now))

	zeroStep := &WizardState{Step: 0, SavedAt: now.Add(-time.Hour)}
	assert.False(t, zeroStep.IsRecoverable(now))

	// Снимок старше суток истек, даже если ключ еще существует.
	expired := &WizardState{Step: 3, SavedAt: now.Add(-WizardStateTTL - time.Minute)}
	assert.False(t, expired.IsRecoverable(now))

	onTheEdge := &WizardState{Step: 2, SavedAt: now.Add(-WizardStateTTL)}
	assert.True(t, onTheEdge.IsRecoverable(now))

	var nilState *WizardState
	assert.False(t, nilState.IsRecoverable(now))
}
