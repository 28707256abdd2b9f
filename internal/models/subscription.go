package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan — тарифный план подписки.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
	PlanPro     Plan = "pro"
)

// planRanks задает иерархию планов: больший ранг включает возможности меньшего.
var planRanks = map[Plan]int{
	PlanFree:    0,
	PlanPremium: 1,
	PlanPro:     2,
}

// UnlimitedGenerations — маркер безлимитной квоты.
const UnlimitedGenerations = -1

// generationQuotas — количество генераций в месяц по плану.
var generationQuotas = map[Plan]int{
	PlanFree:    3,
	PlanPremium: 30,
	PlanPro:     UnlimitedGenerations,
}

// IsValid сообщает, известен ли план.
func (p Plan) IsValid() bool {
	_, ok := planRanks[p]
	return ok
}

// AtLeast проверяет, что план p не ниже required в иерархии планов.
func (p Plan) AtLeast(required Plan) bool {
	pr, ok1 := planRanks[p]
	rr, ok2 := planRanks[required]
	if !ok1 || !ok2 {
		return false
	}
	return pr >= rr
}

// GenerationQuota возвращает месячную квоту генераций для плана.
// UnlimitedGenerations означает отсутствие лимита.
func (p Plan) GenerationQuota() int {
	quota, ok := generationQuotas[p]
	if !ok {
		return 0
	}
	return quota
}

// Subscription представляет подписку пользователя.
// Платежная сторона (методы оплаты, процессинг) живет во внешней системе,
// здесь хранится только состояние, которое она записывает.
type Subscription struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"userId"`
	Plan            Plan      `db:"plan" json:"plan"`
	GenerationsUsed int       `db:"generations_used" json:"generationsUsed"`
	PeriodStart     time.Time `db:"period_start" json:"periodStart"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
