package model

import "time"

// Review is append-only; it never participates in lifecycle transitions.
type Review struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	GigID     string    `gorm:"size:36;not null;index" json:"gig_id"`
	RaterID   string    `gorm:"size:36;not null" json:"rater_id"`
	RateeID   string    `gorm:"size:36;not null" json:"ratee_id"`
	Stars     int       `gorm:"not null" json:"stars"`
	Comment   string    `gorm:"size:1000" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
