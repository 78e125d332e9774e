package stores

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/GraceParish/models"
)

type MediaStore struct {
	db *goqu.Database
}

func NewMediaStore(db *goqu.Database) *MediaStore {
	return &MediaStore{db: db}
}

func (s *MediaStore) Create(ctx context.Context, fileName, originalName string) (models.MediaFile, error) {
	var media models.MediaFile

	newRecord := goqu.Record{
		"file_name":     fileName,
		"original_name": originalName,
	}

	found, err := s.db.Insert("media_file").
		Rows(newRecord).
		Returning("media_file_id", "file_name", "original_name", "uploaded_at").
		Executor().
		ScanStructContext(ctx, &media)
	if err != nil {
		return models.MediaFile{}, err
	}
	if !found {
		return models.MediaFile{}, ErrNotFound
	}
	return media, nil
}

func (s *MediaStore) Get(ctx context.Context, id int) (models.MediaFile, error) {
	var media models.MediaFile

	found, err := s.db.From("media_file").
		Where(goqu.C("media_file_id").Eq(id)).
		ScanStructContext(ctx, &media)
	if err != nil {
		return models.MediaFile{}, err
	}
	if !found {
		return models.MediaFile{}, ErrNotFound
	}
	return media, nil
}

func (s *MediaStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.Delete("media_file").
		Where(goqu.C("media_file_id").Eq(id)).
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

// List returns all media records, newest upload first.
func (s *MediaStore) List(ctx context.Context) ([]models.MediaFile, error) {
	var media []models.MediaFile
	err := s.db.From("media_file").
		Order(goqu.C("uploaded_at").Desc(), goqu.C("media_file_id").Desc()).
		ScanStructsContext(ctx, &media)
	return media, err
}
