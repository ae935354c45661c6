package models

import "time"

// Equipment is a catalog item that projects reference through the
// project_equipment join table.
type Equipment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Item      string    `gorm:"size:255;not null" json:"item"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }
