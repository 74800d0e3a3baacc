package model

import "time"

// Complaint statuses. Status moves past "pending" through an administrative
// process outside this API; no route mutates it.
const (
	StatusPending  = "pending"
	StatusInReview = "in_review"
	StatusResolved = "resolved"
)

// Complaint is a citizen-submitted civic issue report. ComplaintID is the
// public-facing identifier ("OE" + 6 random uppercase alphanumerics).
type Complaint struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ComplaintID string    `json:"complaint_id" gorm:"uniqueIndex;size:20;not null"`
	Domain      string    `json:"domain" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      *uint     `json:"user_id,omitempty" gorm:"index"` // optional owner, no referential action
}
