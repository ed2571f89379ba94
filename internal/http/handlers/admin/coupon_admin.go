package admin

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponRequest 优惠券创建/更新请求
type CouponRequest struct {
	Code                  string       `json:"code"`
	Title                 string       `json:"title" binding:"required"`
	Description           string       `json:"description"`
	Type                  string       `json:"type" binding:"required"`
	Value                 models.Money `json:"value"`
	MinOrderAmount        models.Money `json:"min_order_amount"`
	MaxDiscountAmount     models.Money `json:"max_discount_amount"`
	UsageLimit            int          `json:"usage_limit"`
	PerUserLimit          int          `json:"per_user_limit"`
	ApplicableRestaurants []uint       `json:"applicable_restaurants"`
	ApplicableCuisines    []string     `json:"applicable_cuisines"`
	ValidFrom             *time.Time   `json:"valid_from"`
	ValidUntil            *time.Time   `json:"valid_until"`
	IsActive              bool         `json:"is_active"`
}

func (r CouponRequest) toParams() (service.CouponParams, error) {
	applicable := ""
	if len(r.ApplicableRestaurants) > 0 {
		raw, err := json.Marshal(r.ApplicableRestaurants)
		if err != nil {
			return service.CouponParams{}, err
		}
		applicable = string(raw)
	}
	return service.CouponParams{
		Code:                  r.Code,
		Title:                 r.Title,
		Description:           r.Description,
		Type:                  r.Type,
		Value:                 r.Value,
		MinOrderAmount:        r.MinOrderAmount,
		MaxDiscountAmount:     r.MaxDiscountAmount,
		UsageLimit:            r.UsageLimit,
		PerUserLimit:          r.PerUserLimit,
		ApplicableRestaurants: applicable,
		ApplicableCuisines:    r.ApplicableCuisines,
		ValidFrom:             r.ValidFrom,
		ValidUntil:            r.ValidUntil,
		IsActive:              r.IsActive,
	}, nil
}

// CreateCoupon 创建优惠券
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	params, err := req.toParams()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon, err := h.CouponAdminService.Create(params)
	if err != nil {
		if errors.Is(err, service.ErrCouponCodeTaken) {
			respondError(c, response.CodeBadRequest, "error.coupon_code_taken", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.coupon_create_failed", err)
		return
	}

	response.Success(c, coupon)
}

// GetAdminCoupons 获取优惠券列表 (Admin)
func (h *Handler) GetAdminCoupons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CouponListFilter{
		Search: strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		if isActive, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &isActive
		}
	}

	coupons, total, err := h.CouponAdminService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.coupon_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, coupons, pagination)
}

// GetAdminCoupon 获取优惠券详情 (Admin)
func (h *Handler) GetAdminCoupon(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	coupon, err := h.CouponAdminService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.coupon_fetch_failed", err)
		return
	}

	response.Success(c, coupon)
}

// UpdateCoupon 更新优惠券
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	params, err := req.toParams()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon, err := h.CouponAdminService.Update(id, params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
		case errors.Is(err, service.ErrCouponCodeTaken):
			respondError(c, response.CodeBadRequest, "error.coupon_code_taken", nil)
		default:
			respondError(c, response.CodeInternal, "error.coupon_update_failed", err)
		}
		return
	}

	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.CouponAdminService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.coupon_delete_failed", err)
		return
	}

	response.Success(c, nil)
}

// GetCouponUsages 获取优惠券核销记录 (Admin)
func (h *Handler) GetCouponUsages(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	usages, total, err := h.CouponAdminService.Usages(id, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.coupon_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, usages, pagination)
}
