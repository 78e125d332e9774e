package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/GraceParish/models"
	"github.com/GraceParish/stores"
)

type GalleryController struct {
	store     *stores.MediaStore
	uploadDir string
	log       zerolog.Logger
}

func NewGalleryController(store *stores.MediaStore, uploadDir string, log zerolog.Logger) *GalleryController {
	return &GalleryController{store: store, uploadDir: uploadDir, log: log}
}

// UploadMedia stores an uploaded file under the upload directory and
// records it. Files keep their extension but get a generated name so
// uploads can never collide or traverse paths.
// POST /gallery
func (gc *GalleryController) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided", "details": err.Error()})
		return
	}

	originalName := filepath.Base(fileHeader.Filename)
	ext := strings.ToLower(filepath.Ext(originalName))
	storedName := uuid.New().String() + ext

	if err := os.MkdirAll(gc.uploadDir, 0o755); err != nil {
		gc.log.Error().Err(err).Str("dir", gc.uploadDir).Msg("Failed to create upload directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
		return
	}

	storedPath := filepath.Join(gc.uploadDir, storedName)
	if err := c.SaveUploadedFile(fileHeader, storedPath); err != nil {
		gc.log.Error().Err(err).Str("path", storedPath).Msg("Failed to save uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
		return
	}

	media, err := gc.store.Create(c, storedName, originalName)
	if err != nil {
		// keep disk and table consistent if the insert fails
		os.Remove(storedPath)
		gc.log.Error().Err(err).Msg("Failed to create media record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Media uploaded successfully!",
		"media":   mediaResponse(media),
	})
}

// GetMediaFiles lists the gallery, newest upload first.
// GET /gallery
func (gc *GalleryController) GetMediaFiles(c *gin.Context) {
	mediaFiles, err := gc.store.List(c)
	if err != nil {
		gc.log.Error().Err(err).Msg("Failed to fetch media files")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media files"})
		return
	}

	items := make([]gin.H, 0, len(mediaFiles))
	for _, m := range mediaFiles {
		items = append(items, mediaResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Media files retrieved successfully.",
		"media":   items,
	})
}

// DeleteMedia removes the stored file and its record. A file already
// missing from disk is not an error; the record still goes away.
// DELETE /gallery/:media_file_id
func (gc *GalleryController) DeleteMedia(c *gin.Context) {
	mediaID, err := strconv.Atoi(c.Param("media_file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media ID", "details": err.Error()})
		return
	}

	media, err := gc.store.Get(c, mediaID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		gc.log.Error().Err(err).Int("media_file_id", mediaID).Msg("Failed to fetch media record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	storedPath := filepath.Join(gc.uploadDir, media.File_Name)
	if err := os.Remove(storedPath); err != nil && !os.IsNotExist(err) {
		gc.log.Warn().Err(err).Str("path", storedPath).Msg("Failed to remove media file from disk")
	}

	if err := gc.store.Delete(c, mediaID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		gc.log.Error().Err(err).Int("media_file_id", mediaID).Msg("Failed to delete media record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Media deleted successfully",
	})
}

func mediaResponse(m models.MediaFile) gin.H {
	return gin.H{
		"mediaFileId":  m.Media_File_ID,
		"fileName":     m.File_Name,
		"originalName": m.Original_Name,
		"url":          "/media/" + m.File_Name,
		"isImage":      m.IsImage(),
		"isVideo":      m.IsVideo(),
		"uploadedAt":   m.Uploaded_At,
	}
}
