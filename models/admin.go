package models

import (
	"time"

	"unovation-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Admin struct {
	ID        string    `gorm:"type:text;primaryKey"`
	Username  string    `gorm:"type:text;uniqueIndex;not null"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	LastLogin *time.Time
	CreatedAt time.Time
}

func (Admin) TableName() string {
	return "admins"
}

// Initialize UUID and hash the password before creating
func (a *Admin) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	hashed, err := utils.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.Password = hashed
	return
}

// AdminSession backs one issued token; deleting the row revokes it.
type AdminSession struct {
	ID        string    `gorm:"type:text;primaryKey"`
	AdminID   string    `gorm:"type:text;index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}

func (s *AdminSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return
}
