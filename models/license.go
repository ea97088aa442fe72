package models

import "time"

// Ticket type labels. Earlier data used lowercase codes (towing/ticket/
// impounded); everything now uses the labels the citation form submits.
const (
	TicketTypeTraffic    = "Traffic Ticket"
	TicketTypeImpounding = "Impounding Ticket"
	TicketTypeTowing     = "Towing Ticket"
	TicketTypeLTO        = "LTO Ticket"
)

// Payment/resolution states of a citation.
const (
	TransactionPending   = "Pending"
	TransactionPaid      = "Paid"
	TransactionSurrender = "Surrender"
)

// License is a traffic citation/ticket record.
type License struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	TicketNo              int64      `gorm:"not null" json:"ticket_no"`
	TicketTypes           string     `gorm:"type:varchar(30);not null" json:"ticket_types"`
	DriverLicenseNo       *string    `gorm:"type:text" json:"driver_license_no"`
	PlateNo               *string    `gorm:"type:text" json:"plate_no"`
	VehicleModel          *string    `gorm:"type:text" json:"vehicle_model"`
	VehicleColor          *string    `gorm:"type:text" json:"vehicle_color"`
	FullName              string     `gorm:"type:text;not null" json:"full_name"`
	Violation             string     `gorm:"type:text;not null" json:"violation"`
	Location              *string    `gorm:"type:text" json:"location"`
	DateApprehend         *time.Time `gorm:"type:date" json:"date_apprehend"`
	TypeVehicle           *string    `gorm:"type:varchar(10)" json:"type_vehicle"`
	Office                string     `gorm:"type:varchar(10)" json:"office"`
	AmountPayment         int64      `json:"amount_payment"`
	DiscountAmountPayment int64      `json:"discount_amount_payment"`
	DateTransaction       *time.Time `gorm:"type:date" json:"date_transaction"`
	OfficialReceiptNo     int64      `json:"official_receipt_no"`
	DiscountTicketNo      *string    `gorm:"type:text" json:"discount_ticket_no"`
	ResponsibleName       *string    `gorm:"type:text" json:"responsible_name"`
	Transaction           string     `gorm:"type:varchar(20)" json:"transaction"`
	OfficerName           string     `gorm:"type:varchar(255)" json:"officer_name"`
	Remarks               *string    `gorm:"type:text" json:"remarks"`
	City                  *string    `gorm:"type:text" json:"city"`
	PublicTransportState  *string    `gorm:"type:text" json:"public_transport_state"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
