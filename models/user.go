package models

import (
	"gorm.io/gorm"
)

// User is a credential record. Passwords are stored bcrypt-hashed only.
type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
