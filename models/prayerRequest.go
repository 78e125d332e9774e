package models

import "time"

type PrayerRequest struct {
	Prayer_Request_ID int       `json:"prayerRequestId" goqu:"skipinsert"`
	Name              string    `json:"name"`
	Message           string    `json:"message"`
	Approved          bool      `json:"approved"`
	Prayer_Count      int       `json:"prayerCount" goqu:"skipinsert"`
	Submitted_At      time.Time `json:"submittedAt" goqu:"skipinsert"`
	Updated_At        time.Time `json:"updatedAt" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	Name    string `json:"name" form:"name"`
	Message string `json:"message" form:"message"`
}

// PrayerStatus is the moderation state of a prayer request.
type PrayerStatus int

const (
	StatusPending PrayerStatus = iota
	StatusApproved
)

// StatusOf maps the stored approved flag onto the status enumeration.
func StatusOf(approved bool) PrayerStatus {
	if approved {
		return StatusApproved
	}
	return StatusPending
}

// Label returns the display name used by the moderation view.
func (s PrayerStatus) Label() string {
	if s == StatusApproved {
		return "Approved"
	}
	return "Pending Approval"
}

// ShortMessage returns the message truncated to length characters for
// list display. Truncation counts runes so a multibyte message is never
// cut mid-character.
func (p PrayerRequest) ShortMessage(length int) string {
	runes := []rune(p.Message)
	if len(runes) <= length {
		return p.Message
	}
	return string(runes[:length]) + "..."
}
