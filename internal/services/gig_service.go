package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "gigworks.com/gigworks/internal/errors"
	model "gigworks.com/gigworks/internal/models"
	repository "gigworks.com/gigworks/internal/repositories"
)

var minHourlyRate = decimal.NewFromInt(50)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type GigService struct {
	repo *repository.GigRepository
}

func NewGigService(repo *repository.GigRepository) *GigService {
	return &GigService{repo: repo}
}

type CreateGigInput struct {
	Title           string
	Description     string
	Category        model.GigCategory
	Location        model.Location
	StartTime       time.Time
	EndTime         time.Time
	HourlyRate      decimal.Decimal
	MaxApplications int
}

func (s *GigService) CreateGig(ctx context.Context, storeID string, in CreateGigInput) (*model.Gig, error) {
	if storeID == "" {
		return nil, apperrors.ErrForbidden
	}
	if in.Title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if in.Description == "" {
		return nil, apperrors.Validation("description is required")
	}
	if !in.Category.Valid() {
		return nil, apperrors.Validation("unknown category")
	}
	if in.Location.Address == "" || in.Location.City == "" {
		return nil, apperrors.Validation("location address and city are required")
	}
	if in.HourlyRate.LessThan(minHourlyRate) {
		return nil, apperrors.Validation("hourly rate must be at least 50")
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, apperrors.Validation("start and end time are required")
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, apperrors.Validation("end time must be after start time")
	}

	maxApplications := in.MaxApplications
	if maxApplications <= 0 {
		maxApplications = model.DefaultMaxApplications
	}

	duration := durationHours(in.StartTime, in.EndTime)

	gig := &model.Gig{
		ID:              uuid.NewString(),
		StoreID:         storeID,
		Title:           in.Title,
		Description:     in.Description,
		Category:        in.Category,
		Location:        in.Location,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		DurationHours:   duration,
		HourlyRate:      in.HourlyRate,
		TotalAmount:     totalAmount(in.HourlyRate, duration),
		Status:          model.GigStatusOpen,
		MaxApplications: maxApplications,
		Version:         1,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, gig); err != nil {
		return nil, err
	}

	return gig, nil
}

// GetGig fetches a gig and bumps its view counter. The counter write is
// best-effort and never fails the read.
func (s *GigService) GetGig(ctx context.Context, id string) (*model.Gig, error) {
	if id == "" {
		return nil, apperrors.ErrGigIDRequired
	}

	gig, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		log.Printf("gigs: failed to bump views for %s: %v", id, err)
	} else {
		gig.Views++
	}

	return gig, nil
}

type ListGigsInput struct {
	Status        model.GigStatus
	Category      model.GigCategory
	City          string
	SortField     string
	SortDirection string
	Page          int
	Limit         int
}

func (s *GigService) ListGigs(ctx context.Context, in ListGigsInput) ([]model.Gig, int64, error) {
	page, limit, err := normalizePage(in.Page, in.Limit)
	if err != nil {
		return nil, 0, err
	}

	status := in.Status
	if status == "" {
		status = model.GigStatusOpen
	}

	filter := repository.GigFilter{
		Status:   status,
		Category: in.Category,
		City:     in.City,
	}
	sort := repository.Sort{Field: in.SortField, Direction: in.SortDirection}

	return s.repo.List(ctx, filter, sort, page, limit)
}

func (s *GigService) ListMyGigs(ctx context.Context, userID, role string, status model.GigStatus, page, limit int) ([]model.Gig, int64, error) {
	page, limit, err := normalizePage(page, limit)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.GigFilter{Status: status}
	switch role {
	case model.RoleStore:
		filter.StoreID = userID
	case model.RoleWorker:
		filter.WorkerID = userID
	default:
		return nil, 0, apperrors.ErrForbidden
	}

	return s.repo.List(ctx, filter, repository.Sort{}, page, limit)
}

type UpdateGigInput struct {
	Title       *string
	Description *string
	Category    *model.GigCategory
	Location    *model.Location
	StartTime   *time.Time
	EndTime     *time.Time
	HourlyRate  *decimal.Decimal
}

// UpdateGig edits descriptive and payment fields while the gig is still open.
// Total amount is recomputed whenever the rate or the schedule changes.
func (s *GigService) UpdateGig(ctx context.Context, storeID, gigID string, in UpdateGigInput) (*model.Gig, error) {
	gig, err := s.repo.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.StoreID != storeID {
		return nil, apperrors.ErrForbidden
	}
	if gig.Status != model.GigStatusOpen {
		return nil, apperrors.ErrInvalidTransition
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, apperrors.Validation("title must not be empty")
		}
		gig.Title = *in.Title
	}
	if in.Description != nil {
		gig.Description = *in.Description
	}
	if in.Category != nil {
		if !in.Category.Valid() {
			return nil, apperrors.Validation("unknown category")
		}
		gig.Category = *in.Category
	}
	if in.Location != nil {
		if in.Location.Address == "" || in.Location.City == "" {
			return nil, apperrors.Validation("location address and city are required")
		}
		gig.Location = *in.Location
	}
	if in.StartTime != nil {
		gig.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		gig.EndTime = *in.EndTime
	}
	if !gig.EndTime.After(gig.StartTime) {
		return nil, apperrors.Validation("end time must be after start time")
	}
	if in.HourlyRate != nil {
		if in.HourlyRate.LessThan(minHourlyRate) {
			return nil, apperrors.Validation("hourly rate must be at least 50")
		}
		gig.HourlyRate = *in.HourlyRate
	}

	gig.DurationHours = durationHours(gig.StartTime, gig.EndTime)
	gig.TotalAmount = totalAmount(gig.HourlyRate, gig.DurationHours)

	if err := s.repo.UpdateGuarded(ctx, gig, nil); err != nil {
		return nil, err
	}

	return gig, nil
}

type ReviewInput struct {
	Stars   int
	Comment string
}

// AddReview appends a rating between the gig's store and worker once the gig
// is completed. Reviews never affect lifecycle state.
func (s *GigService) AddReview(ctx context.Context, gigID, raterID string, in ReviewInput) (*model.Review, error) {
	if in.Stars < 1 || in.Stars > 5 {
		return nil, apperrors.Validation("stars must be between 1 and 5")
	}

	gig, err := s.repo.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.Status != model.GigStatusCompleted {
		return nil, apperrors.ErrInvalidTransition
	}

	var rateeID string
	switch {
	case raterID == gig.StoreID:
		rateeID = *gig.WorkerID
	case gig.AssignedTo(raterID):
		rateeID = gig.StoreID
	default:
		return nil, apperrors.ErrForbidden
	}

	review := &model.Review{
		ID:        uuid.NewString(),
		GigID:     gig.ID,
		RaterID:   raterID,
		RateeID:   rateeID,
		Stars:     in.Stars,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AppendReview(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func normalizePage(page, limit int) (int, int, error) {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit < 0 {
		return 0, 0, apperrors.ErrInvalidLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, nil
}

var sixty = decimal.NewFromInt(60)

func durationHours(start, end time.Time) decimal.Decimal {
	minutes := decimal.NewFromInt(int64(end.Sub(start) / time.Minute))
	return minutes.DivRound(sixty, 4)
}

func totalAmount(rate, hours decimal.Decimal) decimal.Decimal {
	return rate.Mul(hours).Round(2)
}
