package models

import "time"

// User is a registered account. Contact fields on a listing are independent of these.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:80;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:120;not null" json:"-"`
	Phone        string    `gorm:"size:15;not null" json:"phone"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
