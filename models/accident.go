package models

import "time"

type Accident struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Code     string    `gorm:"type:varchar(100);not null" json:"code"`
	DateTime time.Time `gorm:"column:date_time;not null" json:"date_time"`
	Location string    `gorm:"type:text" json:"location"`
	Damage   int64     `json:"damage"`
	Fatality int       `json:"fatality"`
	Injured  int       `json:"injured"`
	Cctv     string    `gorm:"type:varchar(225)" json:"cctv"`
	Involved string    `gorm:"type:text" json:"involved"`

	// Operator is the employee linked to the accident record.
	OperatorID *uint     `json:"operator_id"`
	Operator   *Employee `gorm:"foreignKey:OperatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	// Vehicle counts by type.
	Single   int `json:"single"`
	Sedan    int `json:"sedan"`
	Truck    int `json:"truck"`
	Puj      int `json:"puj"`
	Tricycle int `json:"tricycle"`
	Bus      int `json:"bus"`
	Suv      int `json:"suv"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
