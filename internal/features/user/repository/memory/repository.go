package memory

import (
	"context"
	"sync"

	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository"
)

// UserRepository is an in-memory record store with the same atomicity contract
// as the Firestore implementation. Used in tests.
type UserRepository struct {
	mu      sync.Mutex
	records map[int64]*models.UserRecord
}

func NewUserRepository() *UserRepository {
	return &UserRepository{records: make(map[int64]*models.UserRecord)}
}

func clone(rec *models.UserRecord) *models.UserRecord {
	cp := *rec
	if rec.ReferredByID != nil {
		id := *rec.ReferredByID
		cp.ReferredByID = &id
	}
	return &cp
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return clone(rec), nil
}

func (r *UserRepository) CreateIfAbsent(ctx context.Context, rec *models.UserRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.ID]; ok {
		return false, nil
	}
	r.records[rec.ID] = clone(rec)
	return true, nil
}

func (r *UserRepository) Merge(ctx context.Context, id int64, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		rec = &models.UserRecord{ID: id}
		r.records[id] = rec
	}

	for field, value := range fields {
		switch field {
		case models.FieldDisplayName:
			rec.DisplayName = value.(string)
		case models.FieldLanguage:
			rec.Language = value.(string)
		case models.FieldPlanTier:
			rec.PlanTier = models.PlanTier(value.(string))
		case models.FieldDailyMessageCount:
			rec.DailyMessageCount = toInt64(value)
		case models.FieldLastMessageDate:
			rec.LastMessageDate = value.(string)
		case models.FieldReferralCode:
			rec.ReferralCode = value.(string)
		case models.FieldReferralPoints:
			rec.ReferralPoints = toInt64(value)
		}
	}
	return nil
}

func (r *UserRepository) Increment(ctx context.Context, id int64, field string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	switch field {
	case models.FieldDailyMessageCount:
		rec.DailyMessageCount += delta
	case models.FieldReferralPoints:
		rec.ReferralPoints += delta
	}
	return nil
}

func (r *UserRepository) SetReferrerIfAbsent(ctx context.Context, id, referrerID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return false, repository.ErrUserNotFound
	}
	if rec.ReferredByID != nil {
		return false, nil
	}
	rec.ReferredByID = &referrerID
	return true, nil
}

func (r *UserRepository) FindByReferralCode(ctx context.Context, code string) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ReferralCode == code {
			return clone(rec), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}
