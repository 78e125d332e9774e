package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GraceParish/models"
	"github.com/GraceParish/stores"
	"github.com/GraceParish/validation"
)

// shortMessageLength caps the display excerpt in listing responses.
const shortMessageLength = 100

type PrayerController struct {
	store *stores.PrayerStore
	// autoApprove decides whether public submissions skip moderation.
	autoApprove bool
	log         zerolog.Logger
}

func NewPrayerController(store *stores.PrayerStore, autoApprove bool, log zerolog.Logger) *PrayerController {
	return &PrayerController{store: store, autoApprove: autoApprove, log: log}
}

// SubmitPrayer handles the public prayer request form.
// POST /prayers
func (pc *PrayerController) SubmitPrayer(c *gin.Context) {
	var body models.PrayerRequestCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	name, message, fieldErrs := validation.PrayerSubmission(body.Name, body.Message)
	if len(fieldErrs) > 0 {
		// echo the raw values back so the form can re-display them
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Please correct the errors below.",
			"fields": fieldErrs,
			"values": gin.H{"name": body.Name, "message": body.Message},
		})
		return
	}

	prayer, err := pc.store.Create(c, name, message, pc.autoApprove)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to create prayer request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit prayer request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your prayer request has been submitted successfully!",
		"prayer": gin.H{
			"id":          prayer.Prayer_Request_ID,
			"name":        prayer.Name,
			"message":     prayer.Message,
			"approved":    prayer.Approved,
			"status":      models.StatusOf(prayer.Approved).Label(),
			"submittedAt": prayer.Submitted_At.Format("Jan 02, 2006"),
		},
	})
}

// prayerResponse serializes one request for listings, carrying both the
// full message and a display excerpt.
func prayerResponse(p models.PrayerRequest) gin.H {
	return gin.H{
		"prayerRequestId": p.Prayer_Request_ID,
		"name":            p.Name,
		"message":         p.Message,
		"shortMessage":    p.ShortMessage(shortMessageLength),
		"approved":        p.Approved,
		"status":          models.StatusOf(p.Approved).Label(),
		"prayerCount":     p.Prayer_Count,
		"submittedAt":     p.Submitted_At,
		"updatedAt":       p.Updated_At,
	}
}

func prayerListResponse(prayers []models.PrayerRequest) []gin.H {
	out := make([]gin.H, 0, len(prayers))
	for _, p := range prayers {
		out = append(out, prayerResponse(p))
	}
	return out
}

// GetApprovedPrayers returns the public listing, newest first.
// GET /prayers?limit=
func (pc *PrayerController) GetApprovedPrayers(c *gin.Context) {
	limit := stores.DefaultApprovedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit", "details": err.Error()})
			return
		}
		limit = parsed
	}

	prayers, err := pc.store.ListApproved(c, limit)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to fetch approved prayers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests"})
		return
	}

	if len(prayers) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No prayer requests found.", "prayers": []gin.H{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prayer requests retrieved successfully.",
		"prayers": prayerListResponse(prayers),
	})
}

// RecordPrayer increments the engagement counter for one request.
// POST /prayers/:prayer_id/pray
func (pc *PrayerController) RecordPrayer(c *gin.Context) {
	prayerID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID", "details": err.Error()})
		return
	}

	count, err := pc.store.Increment(c, prayerID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
			return
		}
		pc.log.Error().Err(err).Int("prayer_request_id", prayerID).Msg("Failed to record prayer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record prayer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Prayer recorded",
		"prayerCount": count,
	})
}

// DeletePrayer permanently removes a request. A repeat call reports 404.
// DELETE /prayers/:prayer_id
func (pc *PrayerController) DeletePrayer(c *gin.Context) {
	prayerID, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID", "details": err.Error()})
		return
	}

	prayer, err := pc.store.Get(c, prayerID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
			return
		}
		pc.log.Error().Err(err).Int("prayer_request_id", prayerID).Msg("Failed to fetch prayer request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prayer request"})
		return
	}

	if err := pc.store.Delete(c, prayerID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
			return
		}
		pc.log.Error().Err(err).Int("prayer_request_id", prayerID).Msg("Failed to delete prayer request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prayer request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Prayer request from " + prayer.Name + " has been deleted successfully",
	})
}

// GetAllPrayers returns every request for the moderation view.
// GET /admin/prayers
func (pc *PrayerController) GetAllPrayers(c *gin.Context) {
	prayers, err := pc.store.ListAll(c)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to fetch prayer requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prayer requests retrieved successfully.",
		"prayers": prayerListResponse(prayers),
	})
}

// GetPendingPrayers returns requests awaiting approval.
// GET /admin/prayers/pending
func (pc *PrayerController) GetPendingPrayers(c *gin.Context) {
	prayers, err := pc.store.ListPending(c)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to fetch pending prayers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pending prayer requests retrieved successfully.",
		"prayers": prayerListResponse(prayers),
	})
}

type moderationAction struct {
	Prayer_ID int    `json:"prayerId" form:"prayer_id"`
	Action    string `json:"action" form:"action"`
}

// ModeratePrayer applies approve/unapprove/delete to one request and
// returns the refreshed moderation listing. Unknown actions change
// nothing.
// POST /admin/prayers/moderate
func (pc *PrayerController) ModeratePrayer(c *gin.Context) {
	var body moderationAction
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var actionMsg string
	var err error

	switch body.Action {
	case "approve":
		err = pc.store.SetApproved(c, body.Prayer_ID, true)
		actionMsg = "Prayer request has been approved."
	case "unapprove":
		err = pc.store.SetApproved(c, body.Prayer_ID, false)
		actionMsg = "Prayer request has been unapproved."
	case "delete":
		err = pc.store.Delete(c, body.Prayer_ID)
		actionMsg = "Prayer request has been deleted."
	default:
		actionMsg = "No action taken."
	}

	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
			return
		}
		pc.log.Error().Err(err).Int("prayer_request_id", body.Prayer_ID).Str("action", body.Action).
			Msg("Moderation action failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply moderation action"})
		return
	}

	prayers, err := pc.store.ListAll(c)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to fetch prayer requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": actionMsg,
		"prayers": prayerListResponse(prayers),
	})
}
