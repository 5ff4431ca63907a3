package models

import "gorm.io/gorm"

// User is an account holder. The password column stores a bcrypt hash and is
// never serialized; handlers additionally blank it before responding.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=5"`
	Email      string `json:"email" gorm:"type:varchar(255)" validate:"required,contains=@,endswith=.com"`
	Phone      string `json:"phone" gorm:"type:varchar(32)" validate:"required,min=9"`
	Password   string `json:"-" gorm:"type:varchar(255)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
