package models

import "time"

type LegalComplaint struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	TicketType          string    `gorm:"type:text;not null" json:"ticket_type"`
	TicketNo            int64     `gorm:"not null" json:"ticket_no"`
	FullName            string    `gorm:"type:varchar(225);not null" json:"full_name"`
	Violation           string    `gorm:"type:text" json:"violation"`
	Officer             string    `gorm:"type:varchar(225)" json:"officer"`
	Location            string    `gorm:"type:text" json:"location"`
	DateComplaint       string    `gorm:"type:text" json:"date_complaint"`
	Remarks             string    `gorm:"type:text" json:"remarks"`
	ExplanationComplain string    `gorm:"type:text" json:"explanation_complain"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
