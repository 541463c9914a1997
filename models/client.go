package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is the root CRM entity; every pipeline record points at one.
type Client struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	Phone         string    `gorm:"type:text;not null" json:"phone"`
	Email         *string   `gorm:"type:text" json:"email"`
	Company       *string   `gorm:"type:text" json:"company"`
	ServiceNeeded string    `gorm:"type:text;not null" json:"serviceNeeded"`
	Source        string    `gorm:"type:text;not null" json:"source"` // Call / WhatsApp / Website / Email / Referral / Inquiry
	DateAdded     time.Time `gorm:"autoCreateTime;index" json:"dateAdded"`
}

// SourceInquiry marks clients created from a website service inquiry.
const SourceInquiry = "Inquiry"

func (Client) TableName() string {
	return "clients"
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
