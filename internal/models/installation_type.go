package models

import "time"

// InstallationType is the roof/ground mounting category of a project.
type InstallationType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Item      string    `gorm:"size:255;not null" json:"item"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InstallationType) TableName() string { return "installation_types" }
