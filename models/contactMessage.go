package models

import "time"

type ContactMessage struct {
	Contact_Message_ID int       `json:"contactMessageId" goqu:"skipinsert"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Subject            string    `json:"subject"`
	Message            string    `json:"message"`
	Is_Read            bool      `json:"isRead" goqu:"skipinsert"`
	Submitted_At       time.Time `json:"submittedAt" goqu:"skipinsert"`
}

type ContactMessageCreate struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}
