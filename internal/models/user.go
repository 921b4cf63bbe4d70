package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Phone        string
	PasswordHash string `gorm:"not null"`

	// Relationships
	CreatedProjects    []Project           `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	ProjectMemberships []ProjectMembership `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ReportedTickets    []Ticket            `gorm:"foreignKey:ReporterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	AssignedTickets    []Ticket            `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
