package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is a solar installation for a client. Projects soft-delete; the
// FKs to clients and installation_types cascade at the storage layer, so a
// hard delete of either parent removes dependent project rows outright.
type Project struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ClientID      uint           `gorm:"not null" json:"client_id"`
	InstallTypeID uint           `gorm:"not null" json:"install_type_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Region        string         `gorm:"size:2;not null" json:"region"` // state code, e.g. SP
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Client      *Client           `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"client,omitempty"`
	InstallType *InstallationType `gorm:"foreignKey:InstallTypeID;constraint:OnDelete:CASCADE" json:"install_type,omitempty"`
}

func (Project) TableName() string { return "projects" }

// ProjectEquipment links a project to a catalog item with a quantity. Rows
// are owned by the project and only ever written through it; they are left
// in place when the project soft-deletes.
type ProjectEquipment struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	ProjectID   uint `gorm:"not null;uniqueIndex:idx_project_equipment_pair" json:"project_id"`
	EquipmentID uint `gorm:"not null;uniqueIndex:idx_project_equipment_pair" json:"equipment_id"`
	Amount      int  `gorm:"not null;default:1" json:"amount"`
}

func (ProjectEquipment) TableName() string { return "project_equipment" }
