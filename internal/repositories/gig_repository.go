package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "gigworks.com/gigworks/internal/errors"
	model "gigworks.com/gigworks/internal/models"
)

type GigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{db: db}
}

type GigFilter struct {
	Status   model.GigStatus
	Category model.GigCategory
	City     string
	StoreID  string
	WorkerID string
}

type Sort struct {
	Field     string
	Direction string
}

// sortFields whitelists the columns a caller may sort by.
var sortFields = map[string]string{
	"created_at":   "created_at",
	"start_time":   "start_time",
	"hourly_rate":  "hourly_rate",
	"total_amount": "total_amount",
	"views":        "views",
}

func (s Sort) clause() string {
	col, ok := sortFields[s.Field]
	if !ok {
		col = "created_at"
	}
	dir := "desc"
	if s.Direction == "asc" {
		dir = "asc"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

func (r *GigRepository) Create(ctx context.Context, gig *model.Gig) error {
	if err := r.db.WithContext(ctx).Create(gig).Error; err != nil {
		return apperrors.ErrStorageUnavailable
	}
	return nil
}

func (r *GigRepository) FindByID(ctx context.Context, id string) (*model.Gig, error) {
	var gig model.Gig
	err := r.db.WithContext(ctx).
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("applied_at asc")
		}).
		Preload("Reviews").
		First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.ErrStorageUnavailable
	}
	return &gig, nil
}

func (r *GigRepository) List(ctx context.Context, filter GigFilter, sort Sort, page, limit int) ([]model.Gig, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Gig{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.City != "" {
		query = query.Where("location_city = ?", filter.City)
	}
	if filter.StoreID != "" {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.WorkerID != "" {
		query = query.Where("worker_id = ?", filter.WorkerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.ErrStorageUnavailable
	}

	var gigs []model.Gig
	err := query.
		Order(sort.clause()).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&gigs).Error
	if err != nil {
		return nil, 0, apperrors.ErrStorageUnavailable
	}

	return gigs, total, nil
}

// UpdateGuarded persists the gig's mutable fields behind a version check and
// runs extra statements inside the same transaction. A concurrent writer that
// committed first leaves zero rows for the guard, which surfaces as
// ErrOptimisticLock; callers decide how to present the lost race.
func (r *GigRepository) UpdateGuarded(ctx context.Context, gig *model.Gig, apply func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Gig{}).
			Where("id = ? AND version = ?", gig.ID, gig.Version).
			Updates(map[string]interface{}{
				"worker_id":        gig.WorkerID,
				"title":            gig.Title,
				"description":      gig.Description,
				"category":         gig.Category,
				"location_address": gig.Location.Address,
				"location_city":    gig.Location.City,
				"location_state":   gig.Location.State,
				"location_pincode": gig.Location.Pincode,
				"start_time":       gig.StartTime,
				"end_time":         gig.EndTime,
				"duration_hours":   gig.DurationHours,
				"hourly_rate":      gig.HourlyRate,
				"total_amount":     gig.TotalAmount,
				"status":           gig.Status,
				"max_applications": gig.MaxApplications,
				"assigned_at":      gig.AssignedAt,
				"started_at":       gig.StartedAt,
				"completed_at":     gig.CompletedAt,
				"cancelled_at":     gig.CancelledAt,
				"cancel_reason":    gig.CancelReason,
				"version":          gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrOptimisticLock
		}

		if apply != nil {
			return apply(tx)
		}
		return nil
	})
	if err != nil {
		return err
	}

	gig.Version++
	return nil
}

// IncrementViews bumps the view counter outside any lifecycle transaction.
// It deliberately skips the version guard; lost increments are acceptable.
func (r *GigRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Gig{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *GigRepository) AppendReview(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return apperrors.ErrStorageUnavailable
	}
	return nil
}
