package models

import "gorm.io/gorm"

type Role struct {
	gorm.Model

	ProjectID    uint   `gorm:"not null;index"`
	RoleName     string `gorm:"not null"`
	PersonCount  int    `gorm:"not null"`
	HourlyRate   float64
	HoursPerWeek float64
	Weeks        float64
	Cost         float64 `gorm:"not null"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
