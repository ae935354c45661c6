package models

import "time"

// Client is a customer owning solar installation projects. Clients are
// hard-deleted; their projects are soft-deleted first by the service layer.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:15;not null" json:"phone"`
	Document  string    `gorm:"size:14;not null;uniqueIndex" json:"document"` // CPF or CNPJ
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
