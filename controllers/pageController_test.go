package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageController(t *testing.T) (*PageController, string) {
	contentDir := t.TempDir()
	return NewPageController(contentDir, testLogger()), contentDir
}

func TestRenderPage(t *testing.T) {
	t.Run("renders markdown content", func(t *testing.T) {
		pg, contentDir := newPageController(t)
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, "history.md"),
			[]byte("# Our History\n\nFounded long ago."), 0o644))

		c, w := SetupTestContext()
		c.Params = []gin.Param{{Key: "slug", Value: "history"}}

		pg.RenderPage(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "<h1>Our History</h1>")
		assert.Contains(t, w.Body.String(), "<title>Our History</title>")
	})

	t.Run("raw HTML in content is escaped", func(t *testing.T) {
		pg, contentDir := newPageController(t)
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, "events.md"),
			[]byte("<script>alert(1)</script>"), 0o644))

		c, w := SetupTestContext()
		c.Params = []gin.Param{{Key: "slug", Value: "events"}}

		pg.RenderPage(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	})

	t.Run("unknown slug", func(t *testing.T) {
		pg, _ := newPageController(t)

		c, w := SetupTestContext()
		c.Params = []gin.Param{{Key: "slug", Value: "secrets"}}

		pg.RenderPage(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("whitelisted slug with no content file", func(t *testing.T) {
		pg, _ := newPageController(t)

		c, w := SetupTestContext()
		c.Params = []gin.Param{{Key: "slug", Value: "home"}}

		pg.RenderPage(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPing(t *testing.T) {
	pg, _ := newPageController(t)

	c, w := SetupTestContext()

	pg.Ping(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}
