package stores

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/GraceParish/models"
)

type ContactStore struct {
	db *goqu.Database
}

func NewContactStore(db *goqu.Database) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) Create(ctx context.Context, name, email, subject, message string) (models.ContactMessage, error) {
	var msg models.ContactMessage

	newRecord := goqu.Record{
		"name":    name,
		"email":   email,
		"subject": subject,
		"message": message,
	}

	found, err := s.db.Insert("contact_message").
		Rows(newRecord).
		Returning("contact_message_id", "name", "email", "subject", "message", "is_read", "submitted_at").
		Executor().
		ScanStructContext(ctx, &msg)
	if err != nil {
		return models.ContactMessage{}, err
	}
	if !found {
		return models.ContactMessage{}, ErrNotFound
	}
	return msg, nil
}

// SetRead flips the read flag on an inbox message.
func (s *ContactStore) SetRead(ctx context.Context, id int, read bool) error {
	result, err := s.db.Update("contact_message").
		Set(goqu.Record{"is_read": read}).
		Where(goqu.C("contact_message_id").Eq(id)).
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

func (s *ContactStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.Delete("contact_message").
		Where(goqu.C("contact_message_id").Eq(id)).
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

// List returns the inbox with unread messages first, newest first within
// each group.
func (s *ContactStore) List(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.db.From("contact_message").
		Order(goqu.C("is_read").Asc(), goqu.C("submitted_at").Desc(), goqu.C("contact_message_id").Desc()).
		ScanStructsContext(ctx, &messages)
	return messages, err
}
