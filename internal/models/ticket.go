package models

import (
	"time"

	"gorm.io/gorm"
)

type Ticket struct {
	gorm.Model

	ProjectID   uint   `gorm:"not null;index"`
	Summary     string `gorm:"not null"`
	Description string
	Status      string `gorm:"not null"` // "To Do", "In Progress", "Done"
	Priority    string `gorm:"not null"` // "High", "Medium", "Low"
	ReporterID  uint   `gorm:"not null;index"`
	AssigneeID  uint   `gorm:"not null;index"`
	DueDate     time.Time

	// Relationships
	Project  Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reporter User    `gorm:"foreignKey:ReporterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignee User    `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
