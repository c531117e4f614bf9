package firestore

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository"
)

const usersCollection = "users"

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a Firestore-backed user record store.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) doc(id int64) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(strconv.FormatInt(id, 10))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.UserRecord, error) {
	snap, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("firestore GetByID: %w", err)
	}

	var rec models.UserRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("firestore GetByID decode: %w", err)
	}
	rec.ID = id

	return &rec, nil
}

func (r *userRepository) CreateIfAbsent(ctx context.Context, rec *models.UserRecord) (bool, error) {
	_, err := r.doc(rec.ID).Create(ctx, rec)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, fmt.Errorf("firestore CreateIfAbsent: %w", err)
	}
	return true, nil
}

func (r *userRepository) Merge(ctx context.Context, id int64, fields map[string]interface{}) error {
	if _, err := r.doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("firestore Merge: %w", err)
	}
	return nil
}

// Increment uses the server-side field transform, so concurrent handlers never
// lose an update to a read-then-write interleaving.
func (r *userRepository) Increment(ctx context.Context, id int64, field string, delta int64) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.Increment(delta)},
	})
	if err != nil {
		return fmt.Errorf("firestore Increment %s: %w", field, err)
	}
	return nil
}

func (r *userRepository) SetReferrerIfAbsent(ctx context.Context, id, referrerID int64) (bool, error) {
	applied := false
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(r.doc(id))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrUserNotFound
			}
			return err
		}

		var rec models.UserRecord
		if err := snap.DataTo(&rec); err != nil {
			return err
		}
		if rec.ReferredByID != nil {
			return nil
		}

		applied = true
		return tx.Update(r.doc(id), []firestore.Update{
			{Path: models.FieldReferredByID, Value: referrerID},
		})
	})
	if err != nil {
		if err == repository.ErrUserNotFound {
			return false, err
		}
		return false, fmt.Errorf("firestore SetReferrerIfAbsent: %w", err)
	}
	return applied, nil
}

func (r *userRepository) FindByReferralCode(ctx context.Context, code string) (*models.UserRecord, error) {
	iter := r.client.Collection(usersCollection).
		Where(models.FieldReferralCode, "==", code).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("firestore FindByReferralCode: %w", err)
	}

	var rec models.UserRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("firestore FindByReferralCode decode: %w", err)
	}
	rec.ID, err = strconv.ParseInt(snap.Ref.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("firestore FindByReferralCode: bad document id %q: %w", snap.Ref.ID, err)
	}

	return &rec, nil
}
