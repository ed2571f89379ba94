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

func newRestaurantAdminService(t *testing.T) (*RestaurantAdminService, repository.MenuItemRepository, repository.ReviewRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Restaurant{}, &models.MenuItem{}, &models.Review{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	restaurantRepo := repository.NewRestaurantRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	return NewRestaurantAdminService(db, restaurantRepo, menuItemRepo, reviewRepo), menuItemRepo, reviewRepo
}

func TestDeleteRestaurantCascades(t *testing.T) {
	svc, menuItemRepo, reviewRepo := newRestaurantAdminService(t)

	restaurant, err := svc.Create(RestaurantParams{Name: "Meyhane", Cuisine: "Türk", City: "İzmir", IsActive: true})
	if err != nil {
		t.Fatalf("create restaurant failed: %v", err)
	}

	for _, name := range []string{"Çorba", "Kebap"} {
		item := &models.MenuItem{RestaurantID: restaurant.ID, Name: name, Category: "Ana Yemek", Price: moneyFromString(t, "120"), IsAvailable: true}
		if err := menuItemRepo.Create(item); err != nil {
			t.Fatalf("create menu item %q failed: %v", name, err)
		}
	}
	if err := reviewRepo.Create(&models.Review{RestaurantID: restaurant.ID, UserID: 1, Rating: 5}); err != nil {
		t.Fatalf("create review failed: %v", err)
	}

	if err := svc.Delete(restaurant.ID); err != nil {
		t.Fatalf("delete restaurant failed: %v", err)
	}

	if _, err := svc.Get(restaurant.ID); !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound after delete, got %v", err)
	}

	items, err := menuItemRepo.List(repository.MenuItemListFilter{RestaurantID: restaurant.ID})
	if err != nil {
		t.Fatalf("list menu items failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no menu items after delete, got %d", len(items))
	}

	_, total, err := reviewRepo.List(repository.ReviewListFilter{RestaurantID: restaurant.ID}, 1, 20)
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no reviews after delete, got %d", total)
	}
}

func TestDeleteRestaurantUnknown(t *testing.T) {
	svc, _, _ := newRestaurantAdminService(t)

	if err := svc.Delete(404); !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}
