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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderTestEnv struct {
	svc            *OrderService
	restaurantRepo repository.RestaurantRepository
	menuItemRepo   repository.MenuItemRepository
	couponRepo     repository.CouponRepository
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Restaurant{}, &models.MenuItem{},
		&models.Order{}, &models.OrderItem{},
		&models.Coupon{}, &models.CouponUsage{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Order.ServiceFee = 2.5

	restaurantRepo := repository.NewRestaurantRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	usageRepo := repository.NewCouponUsageRepository(db)
	couponService := NewCouponService(db, couponRepo, usageRepo)
	queueClient := queue.NewClient(config.QueueConfig{Enabled: false})

	return &orderTestEnv{
		svc:            NewOrderService(cfg, db, orderRepo, menuItemRepo, restaurantRepo, couponService, queueClient),
		restaurantRepo: restaurantRepo,
		menuItemRepo:   menuItemRepo,
		couponRepo:     couponRepo,
	}
}

func (env *orderTestEnv) seedRestaurantWithMenu(t *testing.T) (*models.Restaurant, []models.MenuItem) {
	t.Helper()

	restaurant := &models.Restaurant{
		Slug: "siparis-evi", Name: "Sipariş Evi", Cuisine: "Türk", City: "Istanbul",
		DeliveryFee: models.NewMoneyFromDecimal(decimal.RequireFromString("7.5")),
		IsActive:    true,
	}
	if err := env.restaurantRepo.Create(restaurant); err != nil {
		t.Fatalf("create restaurant failed: %v", err)
	}

	items := []models.MenuItem{
		{RestaurantID: restaurant.ID, Name: "Adana Kebap", Price: models.NewMoneyFromDecimal(decimal.RequireFromString("120")), IsAvailable: true},
		{RestaurantID: restaurant.ID, Name: "Ayran", Price: models.NewMoneyFromDecimal(decimal.RequireFromString("15")), IsAvailable: true},
		{RestaurantID: restaurant.ID, Name: "Künefe", Price: models.NewMoneyFromDecimal(decimal.RequireFromString("60")), IsAvailable: false},
	}
	for i := range items {
		if err := env.menuItemRepo.Create(&items[i]); err != nil {
			t.Fatalf("create menu item failed: %v", err)
		}
	}
	return restaurant, items
}

func TestCreateOrderTotals(t *testing.T) {
	env := newOrderTestEnv(t)
	restaurant, items := env.seedRestaurantWithMenu(t)

	order, err := env.svc.Create(CreateOrderParams{
		UserID:       1,
		RestaurantID: restaurant.ID,
		Items: []OrderItemParams{
			{MenuItemID: items[0].ID, Quantity: 2}, // 240
			{MenuItemID: items[1].ID, Quantity: 3}, // 45
		},
		DeliveryAddress: "Kadıköy, Istanbul",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if !order.Subtotal.Equal(decimal.RequireFromString("285")) {
		t.Fatalf("expected subtotal 285.00, got %s", order.Subtotal.String())
	}
	// 285 + 7.5 teslimat + 2.5 hizmet
	if !order.Total.Equal(decimal.RequireFromString("295")) {
		t.Fatalf("expected total 295.00, got %s", order.Total.String())
	}
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed status, got %q", order.Status)
	}
	if !strings.HasPrefix(order.OrderNo, "ORD-") {
		t.Fatalf("expected ORD- prefix, got %q", order.OrderNo)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
}

func TestCreateOrderWithCoupon(t *testing.T) {
	env := newOrderTestEnv(t)
	restaurant, items := env.seedRestaurantWithMenu(t)

	coupon := &models.Coupon{
		Code:              "SAVE10",
		Type:              constants.CouponTypePercentage,
		Value:             models.NewMoneyFromDecimal(decimal.RequireFromString("10")),
		MinOrderAmount:    models.NewMoneyFromDecimal(decimal.RequireFromString("50")),
		MaxDiscountAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("20")),
		PerUserLimit:      1,
		IsActive:          true,
	}
	if err := env.couponRepo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	order, err := env.svc.Create(CreateOrderParams{
		UserID:       1,
		RestaurantID: restaurant.ID,
		Items: []OrderItemParams{
			{MenuItemID: items[0].ID, Quantity: 2}, // 240
		},
		DeliveryAddress: "Kadıköy, Istanbul",
		CouponCode:      "save10",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// %10 of 240 is 24, capped at 20
	if !order.Discount.Equal(decimal.RequireFromString("20")) {
		t.Fatalf("expected discount 20.00, got %s", order.Discount.String())
	}
	// 240 + 7.5 + 2.5 - 20
	if !order.Total.Equal(decimal.RequireFromString("230")) {
		t.Fatalf("expected total 230.00, got %s", order.Total.String())
	}
	if order.CouponCode != "SAVE10" {
		t.Fatalf("expected normalized coupon code, got %q", order.CouponCode)
	}

	updated, err := env.couponRepo.GetByCode("SAVE10")
	if err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if updated.UsedCount != 1 {
		t.Fatalf("expected used_count 1, got %d", updated.UsedCount)
	}
}

func TestCreateOrderCouponFailureRollsBack(t *testing.T) {
	env := newOrderTestEnv(t)
	restaurant, items := env.seedRestaurantWithMenu(t)

	_, err := env.svc.Create(CreateOrderParams{
		UserID:       1,
		RestaurantID: restaurant.ID,
		Items: []OrderItemParams{
			{MenuItemID: items[0].ID, Quantity: 1},
		},
		DeliveryAddress: "Kadıköy, Istanbul",
		CouponCode:      "YOK",
	})
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected ErrCouponNotFound, got %v", err)
	}

	_, total, err := env.svc.List(repository.OrderListFilter{UserID: 1}, 1, 10)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no orders after rollback, got %d", total)
	}
}

func TestCreateOrderRejectsInvalidItems(t *testing.T) {
	env := newOrderTestEnv(t)
	restaurant, items := env.seedRestaurantWithMenu(t)

	cases := []struct {
		name  string
		items []OrderItemParams
	}{
		{"empty", nil},
		{"zero quantity", []OrderItemParams{{MenuItemID: items[0].ID, Quantity: 0}}},
		{"unknown item", []OrderItemParams{{MenuItemID: 9999, Quantity: 1}}},
		{"unavailable item", []OrderItemParams{{MenuItemID: items[2].ID, Quantity: 1}}},
	}
	for _, tc := range cases {
		_, err := env.svc.Create(CreateOrderParams{
			UserID:       1,
			RestaurantID: restaurant.ID,
			Items:        tc.items,
		})
		if !errors.Is(err, ErrOrderItemInvalid) {
			t.Fatalf("%s: expected ErrOrderItemInvalid, got %v", tc.name, err)
		}
	}
}

func TestOrderStatusFlow(t *testing.T) {
	env := newOrderTestEnv(t)
	restaurant, items := env.seedRestaurantWithMenu(t)

	order, err := env.svc.Create(CreateOrderParams{
		UserID:       1,
		RestaurantID: restaurant.ID,
		Items:        []OrderItemParams{{MenuItemID: items[0].ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// confirmed → preparing → on_the_way → delivered
	for _, status := range []string{constants.OrderStatusPreparing, constants.OrderStatusOnTheWay, constants.OrderStatusDelivered} {
		if _, err := env.svc.UpdateStatus(order.ID, status); err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
	}

	// 终态后不可再流转
	if _, err := env.svc.UpdateStatus(order.ID, constants.OrderStatusCancelled); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid, got %v", err)
	}
}

func TestOrderSkipTransitionRejected(t *testing.T) {
	env := newOrderTestEnv(t)
	restaurant, items := env.seedRestaurantWithMenu(t)

	order, err := env.svc.Create(CreateOrderParams{
		UserID:       1,
		RestaurantID: restaurant.ID,
		Items:        []OrderItemParams{{MenuItemID: items[0].ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := env.svc.UpdateStatus(order.ID, constants.OrderStatusDelivered); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid for skipped transition, got %v", err)
	}
}

func TestGetForUserHidesForeignOrders(t *testing.T) {
	env := newOrderTestEnv(t)
	restaurant, items := env.seedRestaurantWithMenu(t)

	order, err := env.svc.Create(CreateOrderParams{
		UserID:       1,
		RestaurantID: restaurant.ID,
		Items:        []OrderItemParams{{MenuItemID: items[1].ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := env.svc.GetForUser(order.ID, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign user, got %v", err)
	}
}
