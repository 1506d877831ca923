package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Payment is the bookkeeping record derived from a completed gig. It is
// created once by the lifecycle engine; settlement happens elsewhere.
type Payment struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	GigID         string          `gorm:"size:36;not null;uniqueIndex" json:"gig_id"`
	StoreID       string          `gorm:"size:36;not null;index" json:"store_id"`
	WorkerID      string          `gorm:"size:36;not null;index" json:"worker_id"`
	Amount        decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	PlatformFee   decimal.Decimal `gorm:"type:numeric;not null" json:"platform_fee"`
	WorkerAmount  decimal.Decimal `gorm:"type:numeric;not null" json:"worker_amount"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	PaymentMethod string          `gorm:"type:varchar(30)" json:"payment_method,omitempty"`
	TransactionID *string         `gorm:"uniqueIndex" json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
