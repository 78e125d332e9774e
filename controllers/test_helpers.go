package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupTestDB creates a sqlmock-backed goqu database for handler tests.
func SetupTestDB(t *testing.T) (*goqu.Database, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	goquDB := goqu.New("postgres", db)

	cleanup := func() {
		db.Close()
	}

	return goquDB, mock, cleanup
}

// SetupTestContext creates a test Gin context with a response recorder.
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

// testLogger discards log output during tests.
func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// prayerRequestColumns is the column set returned by prayer_request
// queries, in table order.
var prayerRequestColumns = []string{
	"prayer_request_id", "name", "message", "approved", "prayer_count", "submitted_at", "updated_at",
}

var mediaFileColumns = []string{
	"media_file_id", "file_name", "original_name", "uploaded_at",
}

var contactMessageColumns = []string{
	"contact_message_id", "name", "email", "subject", "message", "is_read", "submitted_at",
}
