package model

import "time"

// Authority is a government contact point associated with a jurisdiction.
type Authority struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Department   string    `json:"department" gorm:"size:100;not null"`
	ContactEmail string    `json:"contact_email" gorm:"size:120;not null"`
	ContactPhone string    `json:"contact_phone" gorm:"size:20;not null"`
	Jurisdiction string    `json:"jurisdiction" gorm:"size:200;not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
}
