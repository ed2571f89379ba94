package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newReviewService(t *testing.T) (*ReviewService, repository.RestaurantRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Review{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	restaurantRepo := repository.NewRestaurantRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	return NewReviewService(db, reviewRepo, restaurantRepo, nil), restaurantRepo
}

func TestCreateReviewRecalculatesRating(t *testing.T) {
	svc, restaurantRepo := newReviewService(t)

	restaurant := &models.Restaurant{Slug: "lokanta", Name: "Lokanta", Cuisine: "Türk", City: "Bursa", IsActive: true}
	if err := restaurantRepo.Create(restaurant); err != nil {
		t.Fatalf("create restaurant failed: %v", err)
	}

	ratings := []int{5, 4, 4}
	for i, rating := range ratings {
		_, err := svc.Create(CreateReviewParams{
			RestaurantID: restaurant.ID,
			UserID:       uint(i + 1),
			Rating:       rating,
			Comment:      "lezzetli",
		})
		if err != nil {
			t.Fatalf("create review %d failed: %v", i, err)
		}
	}

	updated, err := restaurantRepo.GetByID(restaurant.ID)
	if err != nil {
		t.Fatalf("reload restaurant failed: %v", err)
	}
	// (5+4+4)/3 = 4.333... → 4.3
	if updated.Rating != 4.3 {
		t.Fatalf("expected rating 4.3, got %v", updated.Rating)
	}
	if updated.ReviewCount != 3 {
		t.Fatalf("expected review_count 3, got %d", updated.ReviewCount)
	}
}

func TestRequestRatingRecalcRepairsDrift(t *testing.T) {
	svc, restaurantRepo := newReviewService(t)

	restaurant := &models.Restaurant{Slug: "kebapci", Name: "Kebapçı", Cuisine: "Türk", City: "Adana", IsActive: true}
	if err := restaurantRepo.Create(restaurant); err != nil {
		t.Fatalf("create restaurant failed: %v", err)
	}

	for i, rating := range []int{5, 3} {
		if _, err := svc.Create(CreateReviewParams{RestaurantID: restaurant.ID, UserID: uint(i + 1), Rating: rating}); err != nil {
			t.Fatalf("create review %d failed: %v", i, err)
		}
	}

	// 人为制造漂移后触发补偿重算
	if err := restaurantRepo.UpdateRatingStats(restaurant.ID, 1.0, 0); err != nil {
		t.Fatalf("drift rating stats failed: %v", err)
	}

	if err := svc.RequestRatingRecalc(restaurant.ID); err != nil {
		t.Fatalf("request rating recalc failed: %v", err)
	}

	updated, err := restaurantRepo.GetByID(restaurant.ID)
	if err != nil {
		t.Fatalf("reload restaurant failed: %v", err)
	}
	if updated.Rating != 4.0 {
		t.Fatalf("expected rating 4.0, got %v", updated.Rating)
	}
	if updated.ReviewCount != 2 {
		t.Fatalf("expected review_count 2, got %d", updated.ReviewCount)
	}
}

func TestRequestRatingRecalcUnknownRestaurant(t *testing.T) {
	svc, _ := newReviewService(t)

	err := svc.RequestRatingRecalc(404)
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestCreateReviewRejectsInvalidRating(t *testing.T) {
	svc, restaurantRepo := newReviewService(t)

	restaurant := &models.Restaurant{Slug: "lokanta2", Name: "Lokanta", Cuisine: "Türk", City: "Bursa", IsActive: true}
	if err := restaurantRepo.Create(restaurant); err != nil {
		t.Fatalf("create restaurant failed: %v", err)
	}

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(CreateReviewParams{RestaurantID: restaurant.ID, UserID: 1, Rating: rating})
		if !errors.Is(err, ErrReviewRatingInvalid) {
			t.Fatalf("rating %d: expected ErrReviewRatingInvalid, got %v", rating, err)
		}
	}
}

func TestCreateReviewUnknownRestaurant(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.Create(CreateReviewParams{RestaurantID: 999, UserID: 1, Rating: 5})
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}
