package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// RestaurantRequest 餐厅创建/更新请求
type RestaurantRequest struct {
	Slug            string       `json:"slug"`
	Name            string       `json:"name" binding:"required"`
	Description     string       `json:"description"`
	Cuisine         string       `json:"cuisine" binding:"required"`
	PriceRange      string       `json:"price_range"`
	Address         string       `json:"address"`
	City            string       `json:"city" binding:"required"`
	District        string       `json:"district"`
	Lat             float64      `json:"lat"`
	Lng             float64      `json:"lng"`
	Phone           string       `json:"phone"`
	Image           string       `json:"image"`
	DeliveryTime    string       `json:"delivery_time"`
	DeliveryFee     models.Money `json:"delivery_fee"`
	MinOrder        models.Money `json:"min_order"`
	DeliveryRadius  float64      `json:"delivery_radius"`
	Tags            []string     `json:"tags"`
	Amenities       []string     `json:"amenities"`
	SpecialFeatures []string     `json:"special_features"`
	Atmosphere      []string     `json:"atmosphere"`
	DietaryOptions  []string     `json:"dietary_options"`
	Discount        string       `json:"discount"`
	IsOpen          bool         `json:"is_open"`
	IsActive        bool         `json:"is_active"`
	Featured        bool         `json:"featured"`
}

func (r RestaurantRequest) toParams() service.RestaurantParams {
	return service.RestaurantParams{
		Slug:            r.Slug,
		Name:            r.Name,
		Description:     r.Description,
		Cuisine:         r.Cuisine,
		PriceRange:      r.PriceRange,
		Address:         r.Address,
		City:            r.City,
		District:        r.District,
		Lat:             r.Lat,
		Lng:             r.Lng,
		Phone:           r.Phone,
		Image:           r.Image,
		DeliveryTime:    r.DeliveryTime,
		DeliveryFee:     r.DeliveryFee,
		MinOrder:        r.MinOrder,
		DeliveryRadius:  r.DeliveryRadius,
		Tags:            r.Tags,
		Amenities:       r.Amenities,
		SpecialFeatures: r.SpecialFeatures,
		Atmosphere:      r.Atmosphere,
		DietaryOptions:  r.DietaryOptions,
		Discount:        r.Discount,
		IsOpen:          r.IsOpen,
		IsActive:        r.IsActive,
		Featured:        r.Featured,
	}
}

// GetAdminRestaurants 获取餐厅列表 (Admin)
func (h *Handler) GetAdminRestaurants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.RestaurantListFilter{
		City:    strings.TrimSpace(c.Query("city")),
		Cuisine: strings.TrimSpace(c.Query("cuisine")),
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		if isActive, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &isActive
		}
	}
	if raw := strings.TrimSpace(c.Query("featured")); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	restaurants, total, err := h.RestaurantAdminService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.restaurant_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, restaurants, pagination)
}

// GetAdminRestaurant 获取餐厅详情 (Admin)
func (h *Handler) GetAdminRestaurant(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	restaurant, err := h.RestaurantAdminService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.restaurant_fetch_failed", err)
		return
	}

	response.Success(c, restaurant)
}

// CreateRestaurant 创建餐厅
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	restaurant, err := h.RestaurantAdminService.Create(req.toParams())
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			respondError(c, response.CodeBadRequest, "error.restaurant_slug_taken", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.restaurant_create_failed", err)
		return
	}

	response.Success(c, restaurant)
}

// UpdateRestaurant 更新餐厅
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	restaurant, err := h.RestaurantAdminService.Update(id, req.toParams())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, response.CodeBadRequest, "error.restaurant_slug_taken", nil)
		default:
			respondError(c, response.CodeInternal, "error.restaurant_update_failed", err)
		}
		return
	}

	response.Success(c, restaurant)
}

// DeleteRestaurant 删除餐厅
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.RestaurantAdminService.Delete(id); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.restaurant_delete_failed", err)
		return
	}

	response.Success(c, nil)
}

// RecalcRestaurantRating 触发餐厅评分重算
func (h *Handler) RecalcRestaurantRating(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.ReviewService.RequestRatingRecalc(id); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.rating_recalc_failed", err)
		return
	}

	response.Success(c, gin.H{"restaurant_id": id})
}
