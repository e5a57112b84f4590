package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleSeller  Role = "SELLER"
	RoleShopper Role = "SHOPPER"
)

// ValidRole reports whether s is one of the three known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleSeller, RoleShopper:
		return true
	}
	return false
}

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role      Role      `gorm:"type:VARCHAR(10);default:'SHOPPER'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
