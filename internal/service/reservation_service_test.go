package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/queue"
	"github.com/yemeknerede/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newReservationService(t *testing.T) (*ReservationService, repository.RestaurantRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Reservation{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Reservation.SlotCapacity = 2
	cfg.Reservation.OpenTime = "11:00"
	cfg.Reservation.CloseTime = "22:30"
	cfg.Reservation.SlotMinutes = 30

	restaurantRepo := repository.NewRestaurantRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	queueClient := queue.NewClient(config.QueueConfig{Enabled: false})
	return NewReservationService(cfg, reservationRepo, restaurantRepo, queueClient), restaurantRepo
}

func seedReservationRestaurant(t *testing.T, repo repository.RestaurantRepository) *models.Restaurant {
	t.Helper()

	restaurant := &models.Restaurant{Slug: "rezervasyon", Name: "Rezervasyon Evi", Cuisine: "Türk", City: "Istanbul", IsActive: true}
	if err := repo.Create(restaurant); err != nil {
		t.Fatalf("create restaurant failed: %v", err)
	}
	return restaurant
}

func TestCreateReservationGeneratesCode(t *testing.T) {
	svc, repo := newReservationService(t)
	restaurant := seedReservationRestaurant(t, repo)

	reservation, err := svc.Create(CreateReservationParams{
		RestaurantID: restaurant.ID,
		UserID:       1,
		Date:         "2026-09-15",
		TimeSlot:     "19:00",
		PartySize:    4,
	})
	if err != nil {
		t.Fatalf("create reservation failed: %v", err)
	}
	if !strings.HasPrefix(reservation.Code, constants.ReservationCodePrefix) {
		t.Fatalf("expected code with %q prefix, got %q", constants.ReservationCodePrefix, reservation.Code)
	}
	if len(reservation.Code) != len(constants.ReservationCodePrefix)+6 {
		t.Fatalf("expected 6 char suffix, got %q", reservation.Code)
	}
	if reservation.Status != constants.ReservationStatusPending {
		t.Fatalf("expected pending status, got %q", reservation.Status)
	}
}

func TestCreateReservationInvalidSlot(t *testing.T) {
	svc, repo := newReservationService(t)
	restaurant := seedReservationRestaurant(t, repo)

	cases := []struct {
		date string
		slot string
	}{
		{"2026-09-15", "10:30"}, // 开门前
		{"2026-09-15", "23:00"}, // 打烊后
		{"2026-09-15", "19:15"}, // 不在整点间隔上
		{"15.09.2026", "19:00"}, // 日期格式错误
	}
	for _, tc := range cases {
		_, err := svc.Create(CreateReservationParams{
			RestaurantID: restaurant.ID,
			UserID:       1,
			Date:         tc.date,
			TimeSlot:     tc.slot,
			PartySize:    2,
		})
		if !errors.Is(err, ErrReservationSlotInvalid) {
			t.Fatalf("date=%s slot=%s: expected ErrReservationSlotInvalid, got %v", tc.date, tc.slot, err)
		}
	}
}

func TestCreateReservationSlotFull(t *testing.T) {
	svc, repo := newReservationService(t)
	restaurant := seedReservationRestaurant(t, repo)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(CreateReservationParams{
			RestaurantID: restaurant.ID,
			UserID:       uint(i + 1),
			Date:         "2026-09-20",
			TimeSlot:     "20:00",
			PartySize:    2,
		})
		if err != nil {
			t.Fatalf("create reservation %d failed: %v", i, err)
		}
	}

	_, err := svc.Create(CreateReservationParams{
		RestaurantID: restaurant.ID,
		UserID:       9,
		Date:         "2026-09-20",
		TimeSlot:     "20:00",
		PartySize:    2,
	})
	if !errors.Is(err, ErrReservationSlotFull) {
		t.Fatalf("expected ErrReservationSlotFull, got %v", err)
	}
}

func TestCancelledReservationFreesSlot(t *testing.T) {
	svc, repo := newReservationService(t)
	restaurant := seedReservationRestaurant(t, repo)

	first, err := svc.Create(CreateReservationParams{
		RestaurantID: restaurant.ID, UserID: 1, Date: "2026-09-21", TimeSlot: "18:30", PartySize: 2,
	})
	if err != nil {
		t.Fatalf("create reservation failed: %v", err)
	}
	if _, err := svc.Create(CreateReservationParams{
		RestaurantID: restaurant.ID, UserID: 2, Date: "2026-09-21", TimeSlot: "18:30", PartySize: 2,
	}); err != nil {
		t.Fatalf("create second reservation failed: %v", err)
	}

	if _, err := svc.CancelForUser(first.ID, 1); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := svc.Create(CreateReservationParams{
		RestaurantID: restaurant.ID, UserID: 3, Date: "2026-09-21", TimeSlot: "18:30", PartySize: 2,
	}); err != nil {
		t.Fatalf("expected freed slot after cancel, got %v", err)
	}
}

func TestCancelReservationGuards(t *testing.T) {
	svc, repo := newReservationService(t)
	restaurant := seedReservationRestaurant(t, repo)

	reservation, err := svc.Create(CreateReservationParams{
		RestaurantID: restaurant.ID, UserID: 1, Date: "2026-09-22", TimeSlot: "12:00", PartySize: 2,
	})
	if err != nil {
		t.Fatalf("create reservation failed: %v", err)
	}

	// 他人不可取消
	if _, err := svc.CancelForUser(reservation.ID, 2); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound for foreign user, got %v", err)
	}

	if _, err := svc.CancelForUser(reservation.ID, 1); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	// 已取消的不可再取消
	if _, err := svc.CancelForUser(reservation.ID, 1); !errors.Is(err, ErrReservationStatusInvalid) {
		t.Fatalf("expected ErrReservationStatusInvalid, got %v", err)
	}
}

func TestAvailabilityCountsOccupancy(t *testing.T) {
	svc, repo := newReservationService(t)
	restaurant := seedReservationRestaurant(t, repo)

	if _, err := svc.Create(CreateReservationParams{
		RestaurantID: restaurant.ID, UserID: 1, Date: "2026-09-23", TimeSlot: "19:30", PartySize: 2,
	}); err != nil {
		t.Fatalf("create reservation failed: %v", err)
	}

	slots, err := svc.Availability(restaurant.ID, "2026-09-23")
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	// 11:00 到 22:30 每 30 分钟共 24 个时段
	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(slots))
	}
	for _, slot := range slots {
		switch slot.TimeSlot {
		case "19:30":
			if slot.Remaining != 1 || !slot.Available {
				t.Fatalf("expected 19:30 remaining 1, got %+v", slot)
			}
		case "11:00":
			if slot.Remaining != 2 {
				t.Fatalf("expected 11:00 remaining 2, got %+v", slot)
			}
		}
	}
}

func TestPartySizeValidation(t *testing.T) {
	svc, repo := newReservationService(t)
	restaurant := seedReservationRestaurant(t, repo)

	for _, size := range []int{0, -1, 21} {
		_, err := svc.Create(CreateReservationParams{
			RestaurantID: restaurant.ID, UserID: 1, Date: "2026-09-24", TimeSlot: "13:00", PartySize: size,
		})
		if !errors.Is(err, ErrReservationPartyInvalid) {
			t.Fatalf("size %d: expected ErrReservationPartyInvalid, got %v", size, err)
		}
	}
}
