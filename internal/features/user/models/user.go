package models

import "fmt"

// PlanTier is the subscription level governing the daily message limit.
type PlanTier string

const (
	PlanFree    PlanTier = "free"
	PlanPremium PlanTier = "premium"
)

// Record field names as stored in the users collection.
const (
	FieldDisplayName       = "display_name"
	FieldLanguage          = "language"
	FieldPlanTier          = "plan_tier"
	FieldDailyMessageCount = "daily_message_count"
	FieldLastMessageDate   = "last_message_date"
	FieldReferralCode      = "referral_code"
	FieldReferredByID      = "referred_by_id"
	FieldReferralPoints    = "referral_points"
)

// UserRecord is the durable per-user document, keyed by Telegram user ID.
// DailyMessageCount is meaningful only together with LastMessageDate: a stored
// date other than today means the count is logically zero (lazy reset).
type UserRecord struct {
	ID                int64    `json:"id" firestore:"-"`
	DisplayName       string   `json:"display_name" firestore:"display_name"`
	Language          string   `json:"language" firestore:"language"`
	PlanTier          PlanTier `json:"plan_tier" firestore:"plan_tier"`
	DailyMessageCount int64    `json:"daily_message_count" firestore:"daily_message_count"`
	LastMessageDate   string   `json:"last_message_date" firestore:"last_message_date"`
	ReferralCode      string   `json:"referral_code" firestore:"referral_code"`
	ReferredByID      *int64   `json:"referred_by_id" firestore:"referred_by_id"`
	ReferralPoints    int64    `json:"referral_points" firestore:"referral_points"`
}

// ReferralCodeFor derives the user's referral code from their ID.
func ReferralCodeFor(userID int64) string {
	return fmt.Sprintf("REF%d", userID)
}

// NewUserRecord builds the initial record written at first contact.
func NewUserRecord(userID int64, displayName, today string) *UserRecord {
	return &UserRecord{
		ID:                userID,
		DisplayName:       displayName,
		Language:          "en",
		PlanTier:          PlanFree,
		DailyMessageCount: 0,
		LastMessageDate:   today,
		ReferralCode:      ReferralCodeFor(userID),
		ReferredByID:      nil,
		ReferralPoints:    0,
	}
}
