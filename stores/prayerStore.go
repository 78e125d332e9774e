package stores

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/GraceParish/models"
)

// DefaultApprovedLimit caps the public approved listing when the caller
// does not ask for fewer.
const DefaultApprovedLimit = 10

type PrayerStore struct {
	db *goqu.Database
}

func NewPrayerStore(db *goqu.Database) *PrayerStore {
	return &PrayerStore{db: db}
}

// Create inserts a new prayer request and returns the stored record.
// submitted_at, updated_at and prayer_count come back from the table
// defaults.
func (s *PrayerStore) Create(ctx context.Context, name, message string, approved bool) (models.PrayerRequest, error) {
	var prayer models.PrayerRequest

	newRecord := goqu.Record{
		"name":     name,
		"message":  message,
		"approved": approved,
	}

	found, err := s.db.Insert("prayer_request").
		Rows(newRecord).
		Returning("prayer_request_id", "name", "message", "approved", "prayer_count", "submitted_at", "updated_at").
		Executor().
		ScanStructContext(ctx, &prayer)
	if err != nil {
		return models.PrayerRequest{}, err
	}
	if !found {
		return models.PrayerRequest{}, ErrNotFound
	}
	return prayer, nil
}

func (s *PrayerStore) Get(ctx context.Context, id int) (models.PrayerRequest, error) {
	var prayer models.PrayerRequest

	found, err := s.db.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(id)).
		ScanStructContext(ctx, &prayer)
	if err != nil {
		return models.PrayerRequest{}, err
	}
	if !found {
		return models.PrayerRequest{}, ErrNotFound
	}
	return prayer, nil
}

// Delete removes the record permanently. There is no soft delete; a
// second call for the same id reports ErrNotFound.
func (s *PrayerStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.Delete("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(id)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetApproved moves the record between Pending and Approved. Re-applying
// the current state is allowed and still refreshes updated_at.
func (s *PrayerStore) SetApproved(ctx context.Context, id int, approved bool) error {
	result, err := s.db.Update("prayer_request").
		Set(goqu.Record{
			"approved":   approved,
			"updated_at": goqu.L("NOW()"),
		}).
		Where(goqu.C("prayer_request_id").Eq(id)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Increment bumps prayer_count by one and returns the new value. The
// increment happens inside the UPDATE itself so concurrent calls cannot
// lose updates.
func (s *PrayerStore) Increment(ctx context.Context, id int) (int, error) {
	var count int

	found, err := s.db.Update("prayer_request").
		Set(goqu.Record{
			"prayer_count": goqu.L("prayer_count + 1"),
			"updated_at":   goqu.L("NOW()"),
		}).
		Where(goqu.C("prayer_request_id").Eq(id)).
		Returning("prayer_count").
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNotFound
	}
	return count, nil
}

// ListApproved returns approved requests, newest first. limit values
// outside 1..DefaultApprovedLimit fall back to the default.
func (s *PrayerStore) ListApproved(ctx context.Context, limit int) ([]models.PrayerRequest, error) {
	if limit < 1 || limit > DefaultApprovedLimit {
		limit = DefaultApprovedLimit
	}

	var prayers []models.PrayerRequest
	err := s.db.From("prayer_request").
		Where(goqu.C("approved").IsTrue()).
		Order(goqu.C("submitted_at").Desc(), goqu.C("prayer_request_id").Desc()).
		Limit(uint(limit)).
		ScanStructsContext(ctx, &prayers)
	return prayers, err
}

// ListPending returns every request awaiting approval, newest first.
func (s *PrayerStore) ListPending(ctx context.Context) ([]models.PrayerRequest, error) {
	var prayers []models.PrayerRequest
	err := s.db.From("prayer_request").
		Where(goqu.C("approved").IsFalse()).
		Order(goqu.C("submitted_at").Desc(), goqu.C("prayer_request_id").Desc()).
		ScanStructsContext(ctx, &prayers)
	return prayers, err
}

// ListAll returns every request for the moderation view, newest first.
func (s *PrayerStore) ListAll(ctx context.Context) ([]models.PrayerRequest, error) {
	var prayers []models.PrayerRequest
	err := s.db.From("prayer_request").
		Order(goqu.C("submitted_at").Desc(), goqu.C("prayer_request_id").Desc()).
		ScanStructsContext(ctx, &prayers)
	return prayers, err
}
