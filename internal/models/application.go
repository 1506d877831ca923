package model

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

const MaxApplicationMessageLen = 500

type Application struct {
	ID        string            `gorm:"primaryKey;size:36" json:"id"`
	GigID     string            `gorm:"size:36;not null;uniqueIndex:idx_gig_worker" json:"gig_id"`
	WorkerID  string            `gorm:"size:36;not null;uniqueIndex:idx_gig_worker" json:"worker_id"`
	Message   string            `gorm:"size:500" json:"message,omitempty"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}
