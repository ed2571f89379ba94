package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newDiscoveryService(t *testing.T) (*DiscoveryService, repository.RestaurantRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Restaurant{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Delivery.DefaultRadiusKM = 5.0

	restaurantRepo := repository.NewRestaurantRepository(db)
	return NewDiscoveryService(cfg, restaurantRepo), restaurantRepo
}

func seedRestaurant(t *testing.T, repo repository.RestaurantRepository, r models.Restaurant) *models.Restaurant {
	t.Helper()

	r.IsActive = true
	if err := repo.Create(&r); err != nil {
		t.Fatalf("create restaurant %q failed: %v", r.Name, err)
	}
	return &r
}

func TestDiscoverCityFilterCaseInsensitive(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	seedRestaurant(t, repo, models.Restaurant{Slug: "kebapci-istanbul", Name: "Kebapçı", Cuisine: "Kebap", City: "Istanbul"})
	seedRestaurant(t, repo, models.Restaurant{Slug: "pideci-ankara", Name: "Pideci", Cuisine: "Pide", City: "Ankara"})

	views, total, err := svc.Discover(DiscoverParams{City: "istanbul"})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if total != 1 || len(views) != 1 {
		t.Fatalf("expected 1 result, got total=%d len=%d", total, len(views))
	}
	if views[0].City != "Istanbul" {
		t.Fatalf("expected Istanbul restaurant, got %q", views[0].City)
	}
}

func TestDiscoverSearchMatchesNameCuisineTags(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	seedRestaurant(t, repo, models.Restaurant{Slug: "r1", Name: "Deniz Balık Evi", Cuisine: "Deniz Ürünleri", City: "Izmir"})
	seedRestaurant(t, repo, models.Restaurant{Slug: "r2", Name: "Usta Kebap", Cuisine: "Kebap", City: "Izmir", Tags: models.StringArray{"balık", "ızgara"}})
	seedRestaurant(t, repo, models.Restaurant{Slug: "r3", Name: "Pide Salonu", Cuisine: "Pide", City: "Izmir"})

	_, total, err := svc.Discover(DiscoverParams{Search: "balık"})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	// 名称命中 r1，标签命中 r2
	if total != 2 {
		t.Fatalf("expected 2 results, got %d", total)
	}
}

func TestDiscoverFeaturesRequireAllMatches(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	seedRestaurant(t, repo, models.Restaurant{
		Slug: "r1", Name: "Teras", Cuisine: "Türk", City: "Istanbul",
		Amenities:  models.StringArray{"wifi", "otopark"},
		Atmosphere: models.StringArray{"romantik"},
	})
	seedRestaurant(t, repo, models.Restaurant{
		Slug: "r2", Name: "Köşe", Cuisine: "Türk", City: "Istanbul",
		Amenities: models.StringArray{"wifi"},
	})

	_, total, err := svc.Discover(DiscoverParams{Features: []string{"wifi", "romantik"}})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 result, got %d", total)
	}
}

func TestDiscoverMinRating(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	seedRestaurant(t, repo, models.Restaurant{Slug: "r1", Name: "A", Cuisine: "Türk", City: "Istanbul", Rating: 4.5})
	seedRestaurant(t, repo, models.Restaurant{Slug: "r2", Name: "B", Cuisine: "Türk", City: "Istanbul", Rating: 3.2})

	minRating := 4.0
	views, total, err := svc.Discover(DiscoverParams{MinRating: &minRating})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if total != 1 || views[0].Rating != 4.5 {
		t.Fatalf("expected only 4.5 rated restaurant, got total=%d", total)
	}
}

func TestDiscoverDistanceSortAndDelivery(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	far := seedRestaurant(t, repo, models.Restaurant{
		Slug: "far", Name: "Uzak", Cuisine: "Türk", City: "Istanbul",
		Lat: 41.0500, Lng: 28.9500, DeliveryRadius: 3.0,
	})
	near := seedRestaurant(t, repo, models.Restaurant{
		Slug: "near", Name: "Yakın", Cuisine: "Türk", City: "Istanbul",
		Lat: 41.0100, Lng: 28.9800, DeliveryRadius: 5.0,
	})
	seedRestaurant(t, repo, models.Restaurant{Slug: "nocoord", Name: "Adressiz", Cuisine: "Türk", City: "Istanbul"})

	lat, lng := 41.0082, 28.9784
	views, total, err := svc.Discover(DiscoverParams{Lat: &lat, Lng: &lng})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 results, got %d", total)
	}
	if views[0].ID != near.ID || views[1].ID != far.ID {
		t.Fatalf("expected distance ascending order, got %d,%d", views[0].ID, views[1].ID)
	}
	// 无坐标的候选排在最后且不带距离
	if views[2].DistanceKM != nil {
		t.Fatalf("expected nil distance for restaurant without coordinates")
	}
	if views[0].CanDeliver == nil || !*views[0].CanDeliver {
		t.Fatalf("expected near restaurant to deliver")
	}
	// 距离约 4.98km 超出 3km 半径
	if views[1].CanDeliver == nil || *views[1].CanDeliver {
		t.Fatalf("expected far restaurant outside delivery radius")
	}
}

func TestDiscoverMaxDistanceDropsNoCoordinates(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	seedRestaurant(t, repo, models.Restaurant{
		Slug: "near", Name: "Yakın", Cuisine: "Türk", City: "Istanbul",
		Lat: 41.0100, Lng: 28.9800,
	})
	seedRestaurant(t, repo, models.Restaurant{Slug: "nocoord", Name: "Adressiz", Cuisine: "Türk", City: "Istanbul"})

	lat, lng := 41.0082, 28.9784
	maxDistance := 10.0
	_, total, err := svc.Discover(DiscoverParams{Lat: &lat, Lng: &lng, MaxDistanceKM: &maxDistance})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected candidates without coordinates to be dropped, got %d", total)
	}
}

func TestDiscoverRatingSortWithoutPoint(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	seedRestaurant(t, repo, models.Restaurant{Slug: "r1", Name: "A", Cuisine: "Türk", City: "Istanbul", Rating: 3.9})
	best := seedRestaurant(t, repo, models.Restaurant{Slug: "r2", Name: "B", Cuisine: "Türk", City: "Istanbul", Rating: 4.8})

	views, _, err := svc.Discover(DiscoverParams{})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if views[0].ID != best.ID {
		t.Fatalf("expected rating descending order, got id=%d first", views[0].ID)
	}
}

func TestDiscoverPagination(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	for i := 0; i < 25; i++ {
		seedRestaurant(t, repo, models.Restaurant{
			Slug: fmt.Sprintf("r%d", i), Name: fmt.Sprintf("Restoran %d", i),
			Cuisine: "Türk", City: "Istanbul", Rating: 4.0,
		})
	}

	views, total, err := svc.Discover(DiscoverParams{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("expected total 25, got %d", total)
	}
	if len(views) != 10 {
		t.Fatalf("expected page of 10, got %d", len(views))
	}

	views, _, err = svc.Discover(DiscoverParams{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(views) != 5 {
		t.Fatalf("expected last page of 5, got %d", len(views))
	}
}

func TestDiscoverInvalidCoordinates(t *testing.T) {
	svc, _ := newDiscoveryService(t)

	lat, lng := 95.0, 29.0
	_, _, err := svc.Discover(DiscoverParams{Lat: &lat, Lng: &lng})
	if !errors.Is(err, ErrCoordinatesInvalid) {
		t.Fatalf("expected ErrCoordinatesInvalid, got %v", err)
	}
}

func TestGetBySlugHidesInactive(t *testing.T) {
	svc, repo := newDiscoveryService(t)
	restaurant := seedRestaurant(t, repo, models.Restaurant{Slug: "gizli", Name: "Gizli", Cuisine: "Türk", City: "Istanbul"})
	restaurant.IsActive = false
	if err := repo.Update(restaurant); err != nil {
		t.Fatalf("update restaurant failed: %v", err)
	}

	_, err := svc.GetBySlug("gizli")
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}
