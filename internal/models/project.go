package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	gorm.Model

	UserID      uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	Duration    int            `gorm:"not null"` // Duration in months
	Complexity  string         `gorm:"not null"` // "low", "medium", "high"
	TechStack   datatypes.JSON `gorm:"type:jsonb"`

	BaseCost             float64 `gorm:"not null"`
	AdditionalCosts      float64 `gorm:"not null;default:0"`
	RiskBufferPercentage float64 `gorm:"not null"`
	RiskBufferAmount     float64 `gorm:"not null"`
	TotalCost            float64 `gorm:"not null"`

	// Relationships
	Owner         User           `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Roles         []Role         `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	AISuggestions []AISuggestion `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
