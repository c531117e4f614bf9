package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pixigpt-bot/internal/features/user/models"
)

const (
	today     = "2025-06-10"
	yesterday = "2025-06-09"
)

func TestEvaluateAllowsUnderLimit(t *testing.T) {
	limits := Limits{FreeDaily: 15}
	rec := &models.UserRecord{
		PlanTier:          models.PlanFree,
		DailyMessageCount: 14,
		LastMessageDate:   today,
	}

	d := limits.Evaluate(rec, today)

	assert.True(t, d.Allowed)
	assert.False(t, d.NeedsReset)
	assert.Equal(t, int64(15), d.Used)
	assert.Equal(t, int64(15), d.Limit)
}

func TestEvaluateDeniesAtLimit(t *testing.T) {
	limits := Limits{FreeDaily: 15}
	rec := &models.UserRecord{
		PlanTier:          models.PlanFree,
		DailyMessageCount: 15,
		LastMessageDate:   today,
	}

	d := limits.Evaluate(rec, today)

	assert.False(t, d.Allowed)
	assert.Equal(t, int64(15), d.Used)
	assert.Equal(t, int64(15), d.Limit)
}

func TestEvaluateLazyResetOnDateRollover(t *testing.T) {
	limits := Limits{FreeDaily: 15}
	rec := &models.UserRecord{
		PlanTier:          models.PlanFree,
		DailyMessageCount: 15,
		LastMessageDate:   yesterday,
	}

	d := limits.Evaluate(rec, today)

	assert.True(t, d.Allowed, "stale count must be treated as zero")
	assert.True(t, d.NeedsReset)
	assert.Equal(t, int64(1), d.Used)
}

func TestEvaluateResetNeededEvenWhenDenied(t *testing.T) {
	// A zero free limit denies everything, but the rollover must still be
	// flagged for persistence.
	limits := Limits{FreeDaily: 0}
	rec := &models.UserRecord{
		PlanTier:        models.PlanFree,
		LastMessageDate: yesterday,
	}

	d := limits.Evaluate(rec, today)

	assert.False(t, d.Allowed)
	assert.True(t, d.NeedsReset)
}

func TestEvaluatePremiumHasNoCap(t *testing.T) {
	limits := Limits{FreeDaily: 15}
	rec := &models.UserRecord{
		PlanTier:          models.PlanPremium,
		DailyMessageCount: 1_000_000,
		LastMessageDate:   today,
	}

	d := limits.Evaluate(rec, today)

	assert.True(t, d.Allowed)
	assert.True(t, d.Unlimited)
}

func TestEvaluateZeroValueRecord(t *testing.T) {
	// First message ever: no count, no date. Must not be denied.
	limits := Limits{FreeDaily: 15}
	rec := &models.UserRecord{PlanTier: models.PlanFree}

	d := limits.Evaluate(rec, today)

	assert.True(t, d.Allowed)
	assert.True(t, d.NeedsReset)
	assert.Equal(t, int64(1), d.Used)
}
