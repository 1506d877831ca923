package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "gigworks.com/gigworks/internal/errors"
	model "gigworks.com/gigworks/internal/models"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.ErrStorageUnavailable
	}
	return &payment, nil
}

func (r *PaymentRepository) FindByGig(ctx context.Context, gigID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).First(&payment, "gig_id = ?", gigID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.ErrStorageUnavailable
	}
	return &payment, nil
}

// MarkProcessing moves a pending payment to processing and attaches the
// transaction id. The status guard makes re-initiation a conflict instead of
// a silent overwrite.
func (r *PaymentRepository) MarkProcessing(ctx context.Context, id, transactionID, method string) error {
	res := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, model.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":         model.PaymentStatusProcessing,
			"transaction_id": transactionID,
			"payment_method": method,
		})
	if res.Error != nil {
		return apperrors.ErrStorageUnavailable
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPaymentNotPending
	}
	return nil
}
