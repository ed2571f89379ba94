package service

import (
	"errors"

	"github.com/yemeknerede/internal/models"
)

// 业务错误定义，处理层据此映射响应码与文案
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user disabled")
	ErrCaptchaRequired    = errors.New("captcha required")
	ErrCaptchaInvalid     = errors.New("captcha invalid")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrSlugTaken          = errors.New("slug already in use")

	ErrMenuItemNotFound = errors.New("menu item not found")

	ErrCouponNotFound              = errors.New("coupon not found")
	ErrCouponInactive              = errors.New("coupon inactive")
	ErrCouponNotStarted            = errors.New("coupon not started")
	ErrCouponExpired               = errors.New("coupon expired")
	ErrCouponUsageLimitReached     = errors.New("coupon usage limit reached")
	ErrCouponPerUserLimitReached   = errors.New("coupon per-user limit reached")
	ErrCouponBelowMinAmount        = errors.New("order amount below coupon minimum")
	ErrCouponRestaurantNotEligible = errors.New("coupon not eligible for restaurant")
	ErrCouponCodeTaken             = errors.New("coupon code already in use")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderItemInvalid   = errors.New("order item invalid")
	ErrOrderStatusInvalid = errors.New("order status transition invalid")

	ErrReviewRatingInvalid = errors.New("review rating out of range")

	ErrReservationNotFound      = errors.New("reservation not found")
	ErrReservationSlotInvalid   = errors.New("reservation slot invalid")
	ErrReservationSlotFull      = errors.New("reservation slot full")
	ErrReservationStatusInvalid = errors.New("reservation status transition invalid")
	ErrReservationPartyInvalid  = errors.New("reservation party size invalid")

	ErrCampaignNotFound = errors.New("campaign not found")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrCollectionNotFound  = errors.New("collection not found")
	ErrCollectionSlugTaken = errors.New("collection slug already in use")

	ErrCoordinatesInvalid  = errors.New("coordinates invalid")
	ErrOutsideDeliveryArea = errors.New("outside delivery area")

	ErrAddressNotFound = errors.New("address not found")
)

// CouponMinAmountError 携带最低消费金额的校验错误
type CouponMinAmountError struct {
	Minimum models.Money
}

func (e *CouponMinAmountError) Error() string {
	return ErrCouponBelowMinAmount.Error()
}

func (e *CouponMinAmountError) Unwrap() error {
	return ErrCouponBelowMinAmount
}
