package public

import (
	"errors"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/i18n"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	var minErr *service.CouponMinAmountError
	if errors.As(err, &minErr) {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.coupon_min_amount", minErr.Minimum.String())
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var couponCommonErrorRules = []mappedHandlerError{
	{target: service.ErrCouponNotFound, code: response.CodeBadRequest, key: "error.coupon_not_found"},
	{target: service.ErrCouponInactive, code: response.CodeBadRequest, key: "error.coupon_inactive"},
	{target: service.ErrCouponNotStarted, code: response.CodeBadRequest, key: "error.coupon_not_started"},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest, key: "error.coupon_expired"},
	{target: service.ErrCouponUsageLimitReached, code: response.CodeBadRequest, key: "error.coupon_usage_limit"},
	{target: service.ErrCouponPerUserLimitReached, code: response.CodeBadRequest, key: "error.coupon_per_user_limit"},
	{target: service.ErrCouponBelowMinAmount, code: response.CodeBadRequest, key: "error.coupon_min_amount"},
	{target: service.ErrCouponRestaurantNotEligible, code: response.CodeBadRequest, key: "error.coupon_restaurant_not_eligible"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrRestaurantNotFound, code: response.CodeNotFound, key: "error.restaurant_not_found"},
	{target: service.ErrOrderItemInvalid, code: response.CodeBadRequest, key: "error.order_item_invalid"},
	{target: service.ErrMenuItemNotFound, code: response.CodeBadRequest, key: "error.order_item_invalid"},
}

var reservationCreateErrorRules = []mappedHandlerError{
	{target: service.ErrRestaurantNotFound, code: response.CodeNotFound, key: "error.restaurant_not_found"},
	{target: service.ErrReservationSlotInvalid, code: response.CodeBadRequest, key: "error.reservation_slot_invalid"},
	{target: service.ErrReservationSlotFull, code: response.CodeBadRequest, key: "error.reservation_slot_full"},
	{target: service.ErrReservationPartyInvalid, code: response.CodeBadRequest, key: "error.reservation_party_invalid"},
}

func respondCouponError(c *gin.Context, err error) {
	respondWithMappedError(c, err, couponCommonErrorRules, response.CodeInternal, "error.coupon_invalid")
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(orderCreateErrorRules, couponCommonErrorRules), response.CodeInternal, "error.order_create_failed")
}

func respondReservationCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, reservationCreateErrorRules, response.CodeInternal, "error.reservation_create_failed")
}
