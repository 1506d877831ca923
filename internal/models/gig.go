package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type GigStatus string

const (
	GigStatusOpen       GigStatus = "open"
	GigStatusAssigned   GigStatus = "assigned"
	GigStatusInProgress GigStatus = "in-progress"
	GigStatusCompleted  GigStatus = "completed"
	GigStatusCancelled  GigStatus = "cancelled"
)

type GigCategory string

const (
	CategoryRetail          GigCategory = "retail"
	CategoryDelivery        GigCategory = "delivery"
	CategoryWarehouse       GigCategory = "warehouse"
	CategoryCustomerService GigCategory = "customer-service"
	CategoryOther           GigCategory = "other"
)

func (c GigCategory) Valid() bool {
	switch c {
	case CategoryRetail, CategoryDelivery, CategoryWarehouse, CategoryCustomerService, CategoryOther:
		return true
	}
	return false
}

const (
	RoleStore  = "store"
	RoleWorker = "worker"
)

const DefaultMaxApplications = 10

type Location struct {
	Address string   `gorm:"not null" json:"address"`
	City    string   `gorm:"not null;index" json:"city"`
	State   string   `json:"state,omitempty"`
	Pincode string   `json:"pincode,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type Gig struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	StoreID         string          `gorm:"size:36;not null;index" json:"store_id"`
	WorkerID        *string         `gorm:"size:36;index" json:"worker_id,omitempty"`
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `gorm:"not null" json:"description"`
	Category        GigCategory     `gorm:"type:varchar(20);not null;index" json:"category"`
	Location        Location        `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	StartTime       time.Time       `gorm:"not null" json:"start_time"`
	EndTime         time.Time       `gorm:"not null" json:"end_time"`
	DurationHours   decimal.Decimal `gorm:"type:numeric;not null" json:"duration_hours"`
	HourlyRate      decimal.Decimal `gorm:"type:numeric;not null" json:"hourly_rate"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric;not null" json:"total_amount"`
	Status          GigStatus       `gorm:"type:varchar(20);not null;index" json:"status"`
	MaxApplications int             `gorm:"not null;default:10" json:"max_applications"`
	Views           int64           `gorm:"not null;default:0" json:"views"`
	Version         uint            `gorm:"not null;default:1" json:"version"`
	AssignedAt      *time.Time      `json:"assigned_at,omitempty"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CancelReason    string          `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Applications    []Application   `gorm:"foreignKey:GigID" json:"applications,omitempty"`
	Reviews         []Review        `gorm:"foreignKey:GigID" json:"reviews,omitempty"`
}

func (g *Gig) ApplicationByID(id string) *Application {
	for i := range g.Applications {
		if g.Applications[i].ID == id {
			return &g.Applications[i]
		}
	}
	return nil
}

func (g *Gig) HasApplied(workerID string) bool {
	for i := range g.Applications {
		if g.Applications[i].WorkerID == workerID {
			return true
		}
	}
	return false
}

func (g *Gig) AssignedTo(workerID string) bool {
	return g.WorkerID != nil && *g.WorkerID == workerID
}
