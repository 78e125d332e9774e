package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraceParish/stores"
)

func newGalleryController(t *testing.T) (*GalleryController, sqlmock.Sqlmock, string, func()) {
	db, mock, cleanup := SetupTestDB(t)
	uploadDir := t.TempDir()
	gc := NewGalleryController(stores.NewMediaStore(db), uploadDir, testLogger())
	return gc, mock, uploadDir, cleanup
}

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadMedia(t *testing.T) {
	t.Run("stores file and record", func(t *testing.T) {
		gc, mock, uploadDir, cleanup := newGalleryController(t)
		defer cleanup()

		mock.ExpectQuery("INSERT").WillReturnRows(
			sqlmock.NewRows(mediaFileColumns).
				AddRow(1, "generated.jpg", "picnic.JPG", time.Now()))

		body, contentType := multipartUpload(t, "file", "picnic.JPG", []byte("fake image bytes"))

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("POST", "/gallery", body)
		c.Request.Header.Set("Content-Type", contentType)

		gc.UploadMedia(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		// the file landed on disk with its extension preserved
		entries, err := os.ReadDir(uploadDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, ".jpg", filepath.Ext(entries[0].Name()))

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		media := response["media"].(map[string]interface{})
		assert.Equal(t, "picnic.JPG", media["originalName"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing file part", func(t *testing.T) {
		gc, mock, uploadDir, cleanup := newGalleryController(t)
		defer cleanup()

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("POST", "/gallery", nil)

		gc.UploadMedia(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		entries, err := os.ReadDir(uploadDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("record insert failure removes the file", func(t *testing.T) {
		gc, mock, uploadDir, cleanup := newGalleryController(t)
		defer cleanup()

		mock.ExpectQuery("INSERT").WillReturnError(sqlmock.ErrCancelled)

		body, contentType := multipartUpload(t, "file", "picnic.jpg", []byte("fake image bytes"))

		c, w := SetupTestContext()
		c.Request = httptest.NewRequest("POST", "/gallery", body)
		c.Request.Header.Set("Content-Type", contentType)

		gc.UploadMedia(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		entries, err := os.ReadDir(uploadDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestGetMediaFiles(t *testing.T) {
	gc, mock, _, cleanup := newGalleryController(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(mediaFileColumns).
			AddRow(2, "b.mp4", "easter.mp4", now).
			AddRow(1, "a.jpg", "picnic.jpg", now.Add(-time.Hour)))

	c, w := SetupTestContext()

	gc.GetMediaFiles(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Media []struct {
			FileName string `json:"fileName"`
			URL      string `json:"url"`
			IsImage  bool   `json:"isImage"`
			IsVideo  bool   `json:"isVideo"`
		} `json:"media"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Media, 2)
	assert.Equal(t, "/media/b.mp4", response.Media[0].URL)
	assert.True(t, response.Media[0].IsVideo)
	assert.True(t, response.Media[1].IsImage)
}

func TestDeleteMedia(t *testing.T) {
	t.Run("removes file and record", func(t *testing.T) {
		gc, mock, uploadDir, cleanup := newGalleryController(t)
		defer cleanup()

		storedName := "stored.jpg"
		require.NoError(t, os.WriteFile(filepath.Join(uploadDir, storedName), []byte("img"), 0o644))

		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(mediaFileColumns).
				AddRow(1, storedName, "picnic.jpg", time.Now()))
		mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 1))

		c, w := SetupTestContext()
		c.Params = []gin.Param{{Key: "media_file_id", Value: "1"}}

		gc.DeleteMedia(c)

		assert.Equal(t, http.StatusOK, w.Code)
		_, err := os.Stat(filepath.Join(uploadDir, storedName))
		assert.True(t, os.IsNotExist(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("file already gone from disk still deletes record", func(t *testing.T) {
		gc, mock, _, cleanup := newGalleryController(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(mediaFileColumns).
				AddRow(1, "missing.jpg", "picnic.jpg", time.Now()))
		mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 1))

		c, w := SetupTestContext()
		c.Params = []gin.Param{{Key: "media_file_id", Value: "1"}}

		gc.DeleteMedia(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("media not found", func(t *testing.T) {
		gc, mock, _, cleanup := newGalleryController(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(mediaFileColumns))

		c, w := SetupTestContext()
		c.Params = []gin.Param{{Key: "media_file_id", Value: "999"}}

		gc.DeleteMedia(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid media ID", func(t *testing.T) {
		gc, _, _, cleanup := newGalleryController(t)
		defer cleanup()

		c, w := SetupTestContext()
		c.Params = []gin.Param{{Key: "media_file_id", Value: "invalid"}}

		gc.DeleteMedia(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
