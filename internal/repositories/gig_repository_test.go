package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "gigworks.com/gigworks/internal/errors"
	model "gigworks.com/gigworks/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Gig{}, &model.Application{}, &model.Review{}, &model.Payment{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func seedGig(t *testing.T, repo *GigRepository, city string, status model.GigStatus, rate int64, createdAt time.Time) *model.Gig {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	gig := &model.Gig{
		ID:          uuid.NewString(),
		StoreID:     "store-1",
		Title:       fmt.Sprintf("gig in %s", city),
		Description: "seeded",
		Category:    model.CategoryDelivery,
		Location: model.Location{
			Address: "1 Main St",
			City:    city,
		},
		StartTime:       start,
		EndTime:         start.Add(2 * time.Hour),
		DurationHours:   decimal.NewFromInt(2),
		HourlyRate:      decimal.NewFromInt(rate),
		TotalAmount:     decimal.NewFromInt(rate * 2),
		Status:          status,
		MaxApplications: model.DefaultMaxApplications,
		Version:         1,
		CreatedAt:       createdAt,
	}
	if err := repo.Create(context.Background(), gig); err != nil {
		t.Fatalf("failed to seed gig: %v", err)
	}
	return gig
}

func TestList_FiltersByStatusAndCity(t *testing.T) {
	repo := NewGigRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Now().UTC()

	seedGig(t, repo, "Pune", model.GigStatusOpen, 100, base)
	seedGig(t, repo, "Pune", model.GigStatusOpen, 80, base.Add(time.Minute))
	seedGig(t, repo, "Pune", model.GigStatusCompleted, 90, base.Add(2*time.Minute))
	seedGig(t, repo, "Mumbai", model.GigStatusOpen, 120, base.Add(3*time.Minute))

	gigs, total, err := repo.List(ctx, GigFilter{Status: model.GigStatusOpen, City: "Pune"}, Sort{}, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
	for _, g := range gigs {
		if g.Status != model.GigStatusOpen || g.Location.City != "Pune" {
			t.Errorf("unexpected gig in result: %s %s", g.Status, g.Location.City)
		}
	}
}

func TestList_PaginationAndSort(t *testing.T) {
	repo := NewGigRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Now().UTC()

	for i, rate := range []int64{100, 70, 90, 60, 80} {
		seedGig(t, repo, "Pune", model.GigStatusOpen, rate, base.Add(time.Duration(i)*time.Minute))
	}

	gigs, total, err := repo.List(ctx,
		GigFilter{Status: model.GigStatusOpen},
		Sort{Field: "hourly_rate", Direction: "asc"},
		2, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if len(gigs) != 2 {
		t.Fatalf("expected page of 2, got %d", len(gigs))
	}
	if !gigs[0].HourlyRate.Equal(decimal.NewFromInt(80)) || !gigs[1].HourlyRate.Equal(decimal.NewFromInt(90)) {
		t.Errorf("unexpected sort order: %s, %s", gigs[0].HourlyRate, gigs[1].HourlyRate)
	}

	// Unknown sort fields fall back to creation time descending.
	gigs, _, err = repo.List(ctx, GigFilter{Status: model.GigStatusOpen}, Sort{Field: "drop table"}, 1, 1)
	if err != nil {
		t.Fatalf("list with bad sort failed: %v", err)
	}
	if !gigs[0].HourlyRate.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected most recent gig first, got rate %s", gigs[0].HourlyRate)
	}
}

func TestList_FiltersByOwnerAndWorker(t *testing.T) {
	repo := NewGigRepository(setupTestDB(t))
	ctx := context.Background()

	gig := seedGig(t, repo, "Pune", model.GigStatusOpen, 100, time.Now().UTC())
	worker := "worker-1"
	gig.WorkerID = &worker
	gig.Status = model.GigStatusAssigned
	if err := repo.UpdateGuarded(ctx, gig, nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	_, total, err := repo.List(ctx, GigFilter{StoreID: "store-1"}, Sort{}, 1, 10)
	if err != nil || total != 1 {
		t.Errorf("expected one gig for store, got %d (%v)", total, err)
	}
	_, total, err = repo.List(ctx, GigFilter{WorkerID: "worker-1"}, Sort{}, 1, 10)
	if err != nil || total != 1 {
		t.Errorf("expected one gig for worker, got %d (%v)", total, err)
	}
	_, total, err = repo.List(ctx, GigFilter{WorkerID: "worker-2"}, Sort{}, 1, 10)
	if err != nil || total != 0 {
		t.Errorf("expected no gigs for other worker, got %d (%v)", total, err)
	}
}

func TestUpdateGuarded_StaleVersion(t *testing.T) {
	repo := NewGigRepository(setupTestDB(t))
	ctx := context.Background()

	gig := seedGig(t, repo, "Pune", model.GigStatusOpen, 100, time.Now().UTC())

	stale := *gig
	gig.Title = "first writer"
	if err := repo.UpdateGuarded(ctx, gig, nil); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if gig.Version != 2 {
		t.Errorf("expected version bump to 2, got %d", gig.Version)
	}

	stale.Title = "second writer"
	if err := repo.UpdateGuarded(ctx, &stale, nil); !errors.Is(err, apperrors.ErrOptimisticLock) {
		t.Errorf("expected optimistic lock conflict, got %v", err)
	}

	fresh, err := repo.FindByID(ctx, gig.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if fresh.Title != "first writer" {
		t.Errorf("stale writer overwrote the record: %q", fresh.Title)
	}
}

func TestUpdateGuarded_RollsBackOnApplyFailure(t *testing.T) {
	repo := NewGigRepository(setupTestDB(t))
	ctx := context.Background()

	gig := seedGig(t, repo, "Pune", model.GigStatusOpen, 100, time.Now().UTC())

	boom := errors.New("boom")
	err := repo.UpdateGuarded(ctx, gig, func(tx *gorm.DB) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected apply error, got %v", err)
	}

	fresh, _ := repo.FindByID(ctx, gig.ID)
	if fresh.Version != 1 {
		t.Errorf("expected version unchanged after rollback, got %d", fresh.Version)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo := NewGigRepository(setupTestDB(t))

	if _, err := repo.FindByID(context.Background(), "missing"); !errors.Is(err, apperrors.ErrGigNotFound) {
		t.Errorf("expected gig not found, got %v", err)
	}
}

func TestIncrementViews(t *testing.T) {
	repo := NewGigRepository(setupTestDB(t))
	ctx := context.Background()

	gig := seedGig(t, repo, "Pune", model.GigStatusOpen, 100, time.Now().UTC())

	for i := 0; i < 3; i++ {
		if err := repo.IncrementViews(ctx, gig.ID); err != nil {
			t.Fatalf("increment failed: %v", err)
		}
	}

	fresh, _ := repo.FindByID(ctx, gig.ID)
	if fresh.Views != 3 {
		t.Errorf("expected 3 views, got %d", fresh.Views)
	}
	if fresh.Version != 1 {
		t.Errorf("views increment must not bump the version, got %d", fresh.Version)
	}
}
