package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	CreatorID   uint `gorm:"not null;index"`

	// Creator names are denormalized at creation time so project
	// listings never need a join against users.
	CreatorFirstName string `gorm:"not null"`
	CreatorLastName  string `gorm:"not null"`

	// Relationships
	Creator            User                `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ProjectMemberships []ProjectMembership `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tickets            []Ticket            `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
