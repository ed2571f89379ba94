package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// DiscoverRestaurants 餐厅发现（筛选、搜索、距离排序）
func (h *Handler) DiscoverRestaurants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var features []string
	for _, raw := range strings.Split(c.Query("features"), ",") {
		if feature := strings.TrimSpace(raw); feature != "" {
			features = append(features, feature)
		}
	}

	minRating, ok := queryFloatPtr(c, "min_rating")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	lat, latOK := queryFloatPtr(c, "lat")
	lng, lngOK := queryFloatPtr(c, "lng")
	maxDistance, distOK := queryFloatPtr(c, "max_distance_km")
	if !latOK || !lngOK || !distOK {
		respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
		return
	}

	views, total, err := h.DiscoveryService.Discover(service.DiscoverParams{
		City:          strings.TrimSpace(c.Query("city")),
		Cuisine:       strings.TrimSpace(c.Query("cuisine")),
		Search:        strings.TrimSpace(c.Query("search")),
		Features:      features,
		MinRating:     minRating,
		Lat:           lat,
		Lng:           lng,
		MaxDistanceKM: maxDistance,
		Featured:      queryBoolPtr(c, "featured"),
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		if errors.Is(err, service.ErrCoordinatesInvalid) {
			respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.restaurant_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, views, pagination)
}

// GetFeaturedRestaurants 获取精选餐厅
func (h *Handler) GetFeaturedRestaurants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	restaurants, err := h.DiscoveryService.Featured(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.restaurant_fetch_failed", err)
		return
	}

	response.Success(c, restaurants)
}

// GetRestaurantBySlug 按 slug 获取餐厅详情
func (h *Handler) GetRestaurantBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	restaurant, err := h.DiscoveryService.GetBySlug(slug)
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

// GetRestaurant 获取餐厅详情
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	restaurant, err := h.DiscoveryService.GetByID(id)
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
