package quota

import (
	"time"

	"pixigpt-bot/internal/features/user/models"
)

// DateLayout is the calendar-date format stored in last_message_date.
const DateLayout = "2006-01-02"

// Today formats now as a calendar date for quota bookkeeping.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Limits holds the per-tier message limits. Premium has no cap, deliberately not
// modeled as a large sentinel integer.
type Limits struct {
	FreeDaily int64
}

// Decision is the outcome of one quota evaluation.
//
// Used reports the count after the evaluation: on an allowed send it already
// includes the message being sent; on a denial it is the effective count that
// hit the limit. Limit is meaningless when Unlimited is set.
type Decision struct {
	Allowed    bool
	Used       int64
	Limit      int64
	Unlimited  bool
	NeedsReset bool
}

// Evaluate applies the quota rules to a record at the given date without
// touching storage.
//
// A stored date other than today means the stored count is stale and the
// effective count is zero (lazy reset); NeedsReset marks that the rollover
// correction must be persisted regardless of the allow outcome. The limit is
// picked from the record's plan tier at the instant of evaluation, so a tier
// change applies on the very next message.
func (l Limits) Evaluate(rec *models.UserRecord, today string) Decision {
	d := Decision{}

	effective := rec.DailyMessageCount
	if rec.LastMessageDate != today {
		effective = 0
		d.NeedsReset = true
	}

	if rec.PlanTier == models.PlanPremium {
		d.Unlimited = true
		d.Allowed = true
		d.Used = effective + 1
		return d
	}

	d.Limit = l.FreeDaily
	if effective < l.FreeDaily {
		d.Allowed = true
		d.Used = effective + 1
	} else {
		d.Used = effective
	}
	return d
}
