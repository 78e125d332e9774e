package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GraceParish/models"
	"github.com/GraceParish/services"
	"github.com/GraceParish/stores"
	"github.com/GraceParish/validation"
)

type ContactController struct {
	store *stores.ContactStore
	email *services.EmailService
	log   zerolog.Logger
}

func NewContactController(store *stores.ContactStore, email *services.EmailService, log zerolog.Logger) *ContactController {
	return &ContactController{store: store, email: email, log: log}
}

// SubmitContactMessage handles the public contact form. The office
// notification email is fire-and-forget; a mail failure never fails the
// submission.
// POST /contact
func (cc *ContactController) SubmitContactMessage(c *gin.Context) {
	var body models.ContactMessageCreate
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	name, email, subject, message, fieldErrs := validation.ContactSubmission(body.Name, body.Email, body.Subject, body.Message)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Please correct the errors below.",
			"fields": fieldErrs,
			"values": gin.H{"name": body.Name, "email": body.Email, "subject": body.Subject, "message": body.Message},
		})
		return
	}

	msg, err := cc.store.Create(c, name, email, subject, message)
	if err != nil {
		cc.log.Error().Err(err).Msg("Failed to create contact message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	if cc.email != nil {
		go cc.email.SendContactNotification(msg)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Your message has been sent. Thank you!",
		"contactMessageId": msg.Contact_Message_ID,
	})
}

// GetContactMessages returns the inbox, unread first.
// GET /admin/messages
func (cc *ContactController) GetContactMessages(c *gin.Context) {
	messages, err := cc.store.List(c)
	if err != nil {
		cc.log.Error().Err(err).Msg("Failed to fetch contact messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact messages"})
		return
	}

	if len(messages) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No contact messages found.", "contactMessages": []models.ContactMessage{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Contact messages retrieved successfully.",
		"contactMessages": messages,
	})
}

type readUpdate struct {
	Read *bool `json:"read"`
}

// SetContactMessageRead marks an inbox message read (or unread when the
// body says {"read": false}).
// PATCH /admin/messages/:message_id/read
func (cc *ContactController) SetContactMessageRead(c *gin.Context) {
	messageID, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID", "details": err.Error()})
		return
	}

	read := true
	var body readUpdate
	if err := c.ShouldBindJSON(&body); err == nil && body.Read != nil {
		read = *body.Read
	}

	if err := cc.store.SetRead(c, messageID, read); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
			return
		}
		cc.log.Error().Err(err).Int("contact_message_id", messageID).Msg("Failed to update contact message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact message updated."})
}

// DeleteContactMessage removes an inbox message permanently.
// DELETE /admin/messages/:message_id
func (cc *ContactController) DeleteContactMessage(c *gin.Context) {
	messageID, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID", "details": err.Error()})
		return
	}

	if err := cc.store.Delete(c, messageID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
			return
		}
		cc.log.Error().Err(err).Int("contact_message_id", messageID).Msg("Failed to delete contact message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact message deleted successfully",
	})
}
