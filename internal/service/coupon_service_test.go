package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCouponTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}, &models.CouponUsage{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newCouponService(t *testing.T) (*CouponService, repository.CouponRepository) {
	t.Helper()

	db := newCouponTestDB(t)
	couponRepo := repository.NewCouponRepository(db)
	usageRepo := repository.NewCouponUsageRepository(db)
	return NewCouponService(db, couponRepo, usageRepo), couponRepo
}

func moneyFromString(t *testing.T, raw string) models.Money {
	t.Helper()
	return models.NewMoneyFromDecimal(decimal.RequireFromString(raw))
}

func createSave10(t *testing.T, repo repository.CouponRepository) *models.Coupon {
	t.Helper()

	from := time.Now().Add(-time.Hour)
	until := time.Now().Add(24 * time.Hour)
	coupon := &models.Coupon{
		Code:              "SAVE10",
		Title:             "%10 indirim",
		Type:              constants.CouponTypePercentage,
		Value:             moneyFromString(t, "10"),
		MinOrderAmount:    moneyFromString(t, "50"),
		MaxDiscountAmount: moneyFromString(t, "20"),
		PerUserLimit:      1,
		ValidFrom:         &from,
		ValidUntil:        &until,
		IsActive:          true,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return coupon
}

func TestValidatePercentageCappedDiscount(t *testing.T) {
	svc, repo := newCouponService(t)
	createSave10(t, repo)

	amount := moneyFromString(t, "300")
	result, err := svc.Validate(ValidateParams{Code: "save10", UserID: 1, OrderAmount: &amount})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	// %10 of 300 is 30, capped at 20
	if !result.Discount.Equal(decimal.RequireFromString("20")) {
		t.Fatalf("expected discount 20.00, got %s", result.Discount.String())
	}
}

func TestValidateBelowMinAmount(t *testing.T) {
	svc, repo := newCouponService(t)
	createSave10(t, repo)

	amount := moneyFromString(t, "40")
	_, err := svc.Validate(ValidateParams{Code: "SAVE10", UserID: 1, OrderAmount: &amount})
	if !errors.Is(err, ErrCouponBelowMinAmount) {
		t.Fatalf("expected ErrCouponBelowMinAmount, got %v", err)
	}

	var minErr *CouponMinAmountError
	if !errors.As(err, &minErr) {
		t.Fatalf("expected CouponMinAmountError, got %T", err)
	}
	if !minErr.Minimum.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("expected minimum 50, got %s", minErr.Minimum.String())
	}
}

func TestValidateNotFound(t *testing.T) {
	svc, _ := newCouponService(t)

	_, err := svc.Validate(ValidateParams{Code: "NOPE", UserID: 1})
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected ErrCouponNotFound, got %v", err)
	}
}

func TestValidateInactiveBeforeExpired(t *testing.T) {
	svc, repo := newCouponService(t)

	from := time.Now().Add(-48 * time.Hour)
	until := time.Now().Add(-24 * time.Hour)
	coupon := &models.Coupon{
		Code:         "OLD",
		Type:         constants.CouponTypeFixed,
		Value:        moneyFromString(t, "5"),
		PerUserLimit: 1,
		ValidFrom:    &from,
		ValidUntil:   &until,
		IsActive:     false,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	// 停用优先于过期
	_, err := svc.Validate(ValidateParams{Code: "OLD", UserID: 1})
	if !errors.Is(err, ErrCouponInactive) {
		t.Fatalf("expected ErrCouponInactive, got %v", err)
	}
}

func TestValidateNotStarted(t *testing.T) {
	svc, repo := newCouponService(t)

	from := time.Now().Add(24 * time.Hour)
	coupon := &models.Coupon{
		Code:         "SOON",
		Type:         constants.CouponTypeFixed,
		Value:        moneyFromString(t, "5"),
		PerUserLimit: 1,
		ValidFrom:    &from,
		IsActive:     true,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	_, err := svc.Validate(ValidateParams{Code: "SOON", UserID: 1})
	if !errors.Is(err, ErrCouponNotStarted) {
		t.Fatalf("expected ErrCouponNotStarted, got %v", err)
	}
}

func TestValidateRestaurantEligibility(t *testing.T) {
	svc, repo := newCouponService(t)

	coupon := &models.Coupon{
		Code:                  "LOCAL",
		Type:                  constants.CouponTypeFixed,
		Value:                 moneyFromString(t, "15"),
		PerUserLimit:          1,
		ApplicableRestaurants: "[3,7]",
		IsActive:              true,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	if _, err := svc.Validate(ValidateParams{Code: "LOCAL", UserID: 1, RestaurantID: 7}); err != nil {
		t.Fatalf("expected eligible restaurant, got %v", err)
	}
	_, err := svc.Validate(ValidateParams{Code: "LOCAL", UserID: 1, RestaurantID: 9})
	if !errors.Is(err, ErrCouponRestaurantNotEligible) {
		t.Fatalf("expected ErrCouponRestaurantNotEligible, got %v", err)
	}
}

func TestRedeemUsageLimitBoundary(t *testing.T) {
	svc, repo := newCouponService(t)

	coupon := &models.Coupon{
		Code:         "LAST1",
		Type:         constants.CouponTypeFixed,
		Value:        moneyFromString(t, "10"),
		UsageLimit:   1,
		PerUserLimit: 1,
		IsActive:     true,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	amount := moneyFromString(t, "100")
	if _, err := svc.Redeem(RedeemParams{Code: "LAST1", UserID: 1, OrderID: 11, OrderAmount: amount}); err != nil {
		t.Fatalf("first redeem failed: %v", err)
	}

	_, err := svc.Redeem(RedeemParams{Code: "LAST1", UserID: 2, OrderID: 12, OrderAmount: amount})
	if !errors.Is(err, ErrCouponUsageLimitReached) {
		t.Fatalf("expected ErrCouponUsageLimitReached, got %v", err)
	}

	updated, err := repo.GetByCode("LAST1")
	if err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if updated.UsedCount != 1 {
		t.Fatalf("expected used_count 1, got %d", updated.UsedCount)
	}
}

func TestRedeemConcurrentLastSlot(t *testing.T) {
	svc, repo := newCouponService(t)

	coupon := &models.Coupon{
		Code:         "FINAL1",
		Type:         constants.CouponTypeFixed,
		Value:        moneyFromString(t, "10"),
		UsageLimit:   1,
		PerUserLimit: 1,
		IsActive:     true,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	amount := moneyFromString(t, "100")
	const workers = 8

	var wg sync.WaitGroup
	var successes int32
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := svc.Redeem(RedeemParams{
				Code:        "FINAL1",
				UserID:      userID,
				OrderID:     100 + userID,
				OrderAmount: amount,
			})
			if err == nil {
				atomic.AddInt32(&successes, 1)
			}
		}(uint(i + 1))
	}
	wg.Wait()

	// 最后一个名额只允许一次核销成功
	if successes != 1 {
		t.Fatalf("expected exactly one successful redeem, got %d", successes)
	}

	updated, err := repo.GetByCode("FINAL1")
	if err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if updated.UsedCount != 1 {
		t.Fatalf("expected used_count 1, got %d", updated.UsedCount)
	}
}

func TestRedeemPerUserLimit(t *testing.T) {
	svc, repo := newCouponService(t)

	coupon := &models.Coupon{
		Code:         "ONCE",
		Type:         constants.CouponTypeFixed,
		Value:        moneyFromString(t, "10"),
		PerUserLimit: 1,
		IsActive:     true,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	amount := moneyFromString(t, "100")
	if _, err := svc.Redeem(RedeemParams{Code: "ONCE", UserID: 5, OrderID: 21, OrderAmount: amount}); err != nil {
		t.Fatalf("first redeem failed: %v", err)
	}

	_, err := svc.Redeem(RedeemParams{Code: "ONCE", UserID: 5, OrderID: 22, OrderAmount: amount})
	if !errors.Is(err, ErrCouponPerUserLimitReached) {
		t.Fatalf("expected ErrCouponPerUserLimitReached, got %v", err)
	}

	// 失败的核销不应占用总量
	updated, err := repo.GetByCode("ONCE")
	if err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if updated.UsedCount != 1 {
		t.Fatalf("expected used_count 1, got %d", updated.UsedCount)
	}
}

func TestRedeemDiscountRecorded(t *testing.T) {
	svc, repo := newCouponService(t)
	createSave10(t, repo)

	amount := moneyFromString(t, "80")
	usage, err := svc.Redeem(RedeemParams{Code: "SAVE10", UserID: 3, OrderID: 31, OrderAmount: amount})
	if err != nil {
		t.Fatalf("redeem failed: %v", err)
	}
	// %10 of 80 is 8, below the 20 cap
	if !usage.DiscountAmount.Equal(decimal.RequireFromString("8")) {
		t.Fatalf("expected discount 8.00, got %s", usage.DiscountAmount.String())
	}
}
