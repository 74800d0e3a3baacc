package model

import "time"

// User types. The label is stored and echoed back on login; no route
// enforces it.
const (
	UserTypeGovernment = "government"
	UserTypePublic     = "public"
)

// User represents a registered citizen or government account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	UserType     string    `json:"user_type" gorm:"size:20;not null;default:'public'"`
	CreatedAt    time.Time `json:"created_at"`
}
