package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer drops raw HTML in the markdown input (WithUnsafe is NOT
// set), so page content can't inject script.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// pageSlugs whitelists the site's informational pages.
var pageSlugs = map[string]string{
	"home":           "Home",
	"services":       "Services",
	"history":        "Our History",
	"events":         "Events",
	"administration": "Administration",
	"contact":        "Contact Us",
}

type PageController struct {
	contentDir string
	log        zerolog.Logger
}

func NewPageController(contentDir string, log zerolog.Logger) *PageController {
	return &PageController{contentDir: contentDir, log: log}
}

// RenderPage serves one of the informational pages from its markdown
// source.
// GET /pages/:slug
func (pg *PageController) RenderPage(c *gin.Context) {
	slug := c.Param("slug")
	title, ok := pageSlugs[slug]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	source, err := os.ReadFile(filepath.Join(pg.contentDir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		pg.log.Error().Err(err).Str("slug", slug).Msg("Failed to read page content")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render page"})
		return
	}

	var rendered bytes.Buffer
	if err := mdRenderer.Convert(source, &rendered); err != nil {
		pg.log.Error().Err(err).Str("slug", slug).Msg("Failed to render page content")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render page"})
		return
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>%s</title>
    <link rel="stylesheet" href="/static/site.css">
</head>
<body>
<main>
%s</main>
</body>
</html>
`, title, rendered.String())

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Ping is the health check endpoint.
// GET /ping
func (pg *PageController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
