package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type LocationPayload struct {
	Address string   `json:"address"`
	City    string   `json:"city"`
	State   string   `json:"state,omitempty"`
	Pincode string   `json:"pincode,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type CreateGigRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Location        LocationPayload `json:"location"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	MaxApplications int             `json:"max_applications,omitempty"`
}

type UpdateGigRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Location    *LocationPayload `json:"location,omitempty"`
	StartTime   *time.Time       `json:"start_time,omitempty"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
}

type ApplyRequest struct {
	Message string `json:"message,omitempty"`
}

type ResolveApplicationRequest struct {
	Action string `json:"action"`
}

type CancelGigRequest struct {
	Reason string `json:"reason,omitempty"`
}

type AddReviewRequest struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment,omitempty"`
}

type InitiatePaymentRequest struct {
	Method string `json:"method"`
}
