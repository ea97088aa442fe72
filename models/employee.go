package models

import "time"

// Designation values accepted for an employee record.
const (
	DesignationAdministration = "Administration"
	DesignationEnforcement    = "Enforcement"
	DesignationEngineering    = "Engineering"
)

// Employment status values.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Employee struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       *uint      `json:"user_id"`
	User         *User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Designation  string     `gorm:"type:varchar(50);not null" json:"designation"`
	Email        string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	ContactNo    string     `gorm:"type:char(22)" json:"contact_no"`
	DateHired    *time.Time `gorm:"type:date" json:"date_hired"`
	Status       string     `gorm:"type:varchar(20);not null" json:"status"`
	SssNo        *string    `gorm:"type:char(22)" json:"sss_no"`
	GsisNo       *string    `gorm:"type:char(22)" json:"gsis_no"`
	PhilHealthNo *string    `gorm:"type:char(22)" json:"phil_health_no"`
	TinNo        *string    `gorm:"type:char(22)" json:"tin_no"`
	PagIbigNo    *string    `gorm:"type:char(22)" json:"pag_ibig_no"`
	SalaryRate   int64      `gorm:"not null" json:"salary_rate"`
	ImgStatus    int        `json:"img_status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
