package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "gigworks.com/gigworks/internal/models"
	repository "gigworks.com/gigworks/internal/repositories"
)

// platformFeeRate is the fixed cut taken from every completed gig.
var platformFeeRate = decimal.RequireFromString("0.10")

type PaymentRecorder struct {
	payments *repository.PaymentRepository
}

func NewPaymentRecorder(payments *repository.PaymentRepository) *PaymentRecorder {
	return &PaymentRecorder{payments: payments}
}

// PaymentFor derives the payment record for a completed gig. The fee is
// rounded half-up to two places and the worker amount is the exact remainder,
// so fee + payout always reconstruct the total.
func (r *PaymentRecorder) PaymentFor(gig *model.Gig) *model.Payment {
	fee := gig.TotalAmount.Mul(platformFeeRate).Round(2)
	return &model.Payment{
		ID:           uuid.NewString(),
		GigID:        gig.ID,
		StoreID:      gig.StoreID,
		WorkerID:     *gig.WorkerID,
		Amount:       gig.TotalAmount,
		PlatformFee:  fee,
		WorkerAmount: gig.TotalAmount.Sub(fee),
		Status:       model.PaymentStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}

func (r *PaymentRecorder) GetPayment(ctx context.Context, id string) (*model.Payment, error) {
	return r.payments.FindByID(ctx, id)
}

func (r *PaymentRecorder) PaymentForGig(ctx context.Context, gigID string) (*model.Payment, error) {
	return r.payments.FindByGig(ctx, gigID)
}

// Initiate moves a pending payment into processing under a freshly generated
// transaction id.
func (r *PaymentRecorder) Initiate(ctx context.Context, paymentID, method string) (*model.Payment, error) {
	if _, err := r.payments.FindByID(ctx, paymentID); err != nil {
		return nil, err
	}

	if err := r.payments.MarkProcessing(ctx, paymentID, NewTransactionID(), method); err != nil {
		return nil, err
	}

	return r.payments.FindByID(ctx, paymentID)
}

// NewTransactionID builds a collision-resistant token from the clock and a
// random suffix.
func NewTransactionID() string {
	return fmt.Sprintf("txn_%d_%s", time.Now().UnixNano(), uuid.NewString()[:8])
}
