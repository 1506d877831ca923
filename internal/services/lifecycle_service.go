package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "gigworks.com/gigworks/internal/errors"
	model "gigworks.com/gigworks/internal/models"
	"gigworks.com/gigworks/internal/notify"
	repository "gigworks.com/gigworks/internal/repositories"
)

type ResolveAction string

const (
	ResolveAccept ResolveAction = "accept"
	ResolveReject ResolveAction = "reject"
)

// LifecycleService drives the gig state machine:
//
//	open -> assigned -> in-progress -> completed
//	open/assigned -> cancelled
//
// Every transition is a version-guarded read-modify-write, so of two racing
// writers exactly one commits and the other observes a conflict.
type LifecycleService struct {
	gigs     *repository.GigRepository
	recorder *PaymentRecorder
	sink     notify.Sink
}

func NewLifecycleService(gigs *repository.GigRepository, recorder *PaymentRecorder, sink notify.Sink) *LifecycleService {
	return &LifecycleService{
		gigs:     gigs,
		recorder: recorder,
		sink:     sink,
	}
}

func (s *LifecycleService) Apply(ctx context.Context, gigID, workerID, message string) (*model.Application, error) {
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}

	if gig.Status != model.GigStatusOpen {
		return nil, apperrors.ErrInvalidTransition
	}
	if gig.StoreID == workerID {
		return nil, apperrors.ErrForbidden
	}
	if gig.HasApplied(workerID) {
		return nil, apperrors.ErrDuplicateApplication
	}
	// Raw length on purpose: rejected applications still count against the cap.
	if len(gig.Applications) >= gig.MaxApplications {
		return nil, apperrors.ErrApplicationLimitReached
	}
	if len(message) > model.MaxApplicationMessageLen {
		return nil, apperrors.Validation("message must be at most 500 characters")
	}

	application := &model.Application{
		ID:        uuid.NewString(),
		GigID:     gig.ID,
		WorkerID:  workerID,
		Message:   message,
		Status:    model.ApplicationStatusPending,
		AppliedAt: time.Now().UTC(),
	}

	err = s.gigs.UpdateGuarded(ctx, gig, func(tx *gorm.DB) error {
		return tx.Create(application).Error
	})
	if err != nil {
		return nil, err
	}

	s.sink.Notify(notify.Notification{
		RecipientID: gig.StoreID,
		Type:        notify.TypeApplicationReceived,
		Title:       "New application",
		Message:     fmt.Sprintf("A worker applied to %q.", gig.Title),
		Context:     map[string]string{"gig_id": gig.ID, "application_id": application.ID},
	})

	return application, nil
}

// Resolve accepts or rejects a pending application. Accepting assigns the
// worker and rejects every other application in the same transaction; no
// pending sibling survives an accept.
func (s *LifecycleService) Resolve(ctx context.Context, gigID, applicationID, storeID string, action ResolveAction) (*model.Gig, error) {
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.StoreID != storeID {
		return nil, apperrors.ErrForbidden
	}

	application := gig.ApplicationByID(applicationID)
	if application == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	if application.Status != model.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationResolved
	}

	switch action {
	case ResolveReject:
		err = s.gigs.UpdateGuarded(ctx, gig, func(tx *gorm.DB) error {
			return tx.Model(&model.Application{}).
				Where("id = ?", application.ID).
				Update("status", model.ApplicationStatusRejected).Error
		})
		if err != nil {
			return nil, err
		}
		application.Status = model.ApplicationStatusRejected
		return gig, nil

	case ResolveAccept:
		if gig.Status != model.GigStatusOpen {
			return nil, apperrors.ErrInvalidTransition
		}

		now := time.Now().UTC()
		gig.WorkerID = &application.WorkerID
		gig.Status = model.GigStatusAssigned
		gig.AssignedAt = &now

		err = s.gigs.UpdateGuarded(ctx, gig, func(tx *gorm.DB) error {
			if err := tx.Model(&model.Application{}).
				Where("id = ?", application.ID).
				Update("status", model.ApplicationStatusAccepted).Error; err != nil {
				return err
			}
			return tx.Model(&model.Application{}).
				Where("gig_id = ? AND id <> ?", gig.ID, application.ID).
				Update("status", model.ApplicationStatusRejected).Error
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrOptimisticLock) {
				// Another accept committed first.
				return nil, apperrors.ErrInvalidTransition
			}
			return nil, err
		}

		for i := range gig.Applications {
			if gig.Applications[i].ID == application.ID {
				gig.Applications[i].Status = model.ApplicationStatusAccepted
			} else {
				gig.Applications[i].Status = model.ApplicationStatusRejected
			}
		}

		s.sink.Notify(notify.Notification{
			RecipientID: application.WorkerID,
			Type:        notify.TypeApplicationAccepted,
			Title:       "Application accepted",
			Message:     fmt.Sprintf("You have been assigned to %q.", gig.Title),
			Context:     map[string]string{"gig_id": gig.ID},
		})

		return gig, nil

	default:
		return nil, apperrors.Validation("action must be accept or reject")
	}
}

func (s *LifecycleService) Start(ctx context.Context, gigID, workerID string) (*model.Gig, error) {
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if !gig.AssignedTo(workerID) {
		return nil, apperrors.ErrForbidden
	}
	if gig.Status != model.GigStatusAssigned {
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	gig.Status = model.GigStatusInProgress
	gig.StartedAt = &now

	if err := s.gigs.UpdateGuarded(ctx, gig, nil); err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, err
	}

	return gig, nil
}

// Complete finishes the gig and writes the payment record in the same
// transaction as the status change.
func (s *LifecycleService) Complete(ctx context.Context, gigID, workerID string) (*model.Gig, *model.Payment, error) {
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, nil, err
	}
	if !gig.AssignedTo(workerID) {
		return nil, nil, apperrors.ErrForbidden
	}
	if gig.Status != model.GigStatusInProgress {
		return nil, nil, apperrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	gig.Status = model.GigStatusCompleted
	gig.CompletedAt = &now

	payment := s.recorder.PaymentFor(gig)

	err = s.gigs.UpdateGuarded(ctx, gig, func(tx *gorm.DB) error {
		return tx.Create(payment).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, nil, apperrors.ErrInvalidTransition
		}
		return nil, nil, err
	}

	s.sink.Notify(notify.Notification{
		RecipientID: gig.StoreID,
		Type:        notify.TypeGigCompleted,
		Title:       "Gig completed",
		Message:     fmt.Sprintf("%q was completed by the assigned worker.", gig.Title),
		Context:     map[string]string{"gig_id": gig.ID, "payment_id": payment.ID},
	})

	return gig, payment, nil
}

// Cancel is terminal and only reachable from open or assigned.
func (s *LifecycleService) Cancel(ctx context.Context, gigID, storeID, reason string) (*model.Gig, error) {
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.StoreID != storeID {
		return nil, apperrors.ErrForbidden
	}
	if gig.Status != model.GigStatusOpen && gig.Status != model.GigStatusAssigned {
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	gig.Status = model.GigStatusCancelled
	gig.CancelledAt = &now
	gig.CancelReason = reason

	if err := s.gigs.UpdateGuarded(ctx, gig, nil); err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, err
	}

	if gig.WorkerID != nil {
		s.sink.Notify(notify.Notification{
			RecipientID: *gig.WorkerID,
			Type:        notify.TypeGigCancelled,
			Title:       "Gig cancelled",
			Message:     fmt.Sprintf("%q was cancelled by the store.", gig.Title),
			Context:     map[string]string{"gig_id": gig.ID, "reason": reason},
		})
	}

	return gig, nil
}
