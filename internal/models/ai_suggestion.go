package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AISuggestion struct {
	gorm.Model

	ProjectID       uint           `gorm:"not null;index"`
	Suggestions     string         `gorm:"type:text"`
	TechRecs        datatypes.JSON `gorm:"type:jsonb"`
	CostReduction   float64        `gorm:"not null"`
	TeamStructure   string         `gorm:"type:text"` // Serialized recommendation structure
	ConfidenceScore float64        `gorm:"not null"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
