package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yemeknerede/internal/geocode"
	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// GetNearbyRestaurants 获取附近餐厅
func (h *Handler) GetNearbyRestaurants(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
		return
	}
	radiusKM, _ := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	restaurants, err := h.GeoService.Nearby(lat, lng, radiusKM, limit)
	if err != nil {
		if errors.Is(err, service.ErrCoordinatesInvalid) {
			respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.restaurant_fetch_failed", err)
		return
	}

	response.Success(c, restaurants)
}

// GetCities 获取有活跃餐厅的城市列表
func (h *Handler) GetCities(c *gin.Context) {
	cities, err := h.GeoService.Cities()
	if err != nil {
		respondError(c, response.CodeInternal, "error.restaurant_fetch_failed", err)
		return
	}

	response.Success(c, cities)
}

// CheckDelivery 配送范围检查
func (h *Handler) CheckDelivery(c *gin.Context) {
	restaurantID, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
		return
	}

	result, err := h.GeoService.DeliveryCheck(restaurantID, lat, lng)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
		case errors.Is(err, service.ErrCoordinatesInvalid):
			respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
		case errors.Is(err, service.ErrOutsideDeliveryArea):
			respondError(c, response.CodeBadRequest, "error.outside_delivery_area", nil)
		default:
			respondError(c, response.CodeInternal, "error.restaurant_fetch_failed", err)
		}
		return
	}

	response.Success(c, result)
}

// GeocodeAddress 地址正向地理编码
func (h *Handler) GeocodeAddress(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	place, err := h.GeoService.Geocode(c.Request.Context(), query)
	if err != nil {
		respondGeocodeError(c, err)
		return
	}

	response.Success(c, place)
}

// ReverseGeocode 坐标反向地理编码
func (h *Handler) ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
		return
	}

	place, err := h.GeoService.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		respondGeocodeError(c, err)
		return
	}

	response.Success(c, place)
}

// GetRoute 查询两点间驾车路线摘要
func (h *Handler) GetRoute(c *gin.Context) {
	fromLat, fromLatErr := strconv.ParseFloat(c.Query("from_lat"), 64)
	fromLng, fromLngErr := strconv.ParseFloat(c.Query("from_lng"), 64)
	toLat, toLatErr := strconv.ParseFloat(c.Query("to_lat"), 64)
	toLng, toLngErr := strconv.ParseFloat(c.Query("to_lng"), 64)
	if fromLatErr != nil || fromLngErr != nil || toLatErr != nil || toLngErr != nil {
		respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
		return
	}

	route, err := h.GeoService.Route(c.Request.Context(), fromLat, fromLng, toLat, toLng)
	if err != nil {
		respondGeocodeError(c, err)
		return
	}

	response.Success(c, route)
}

func respondGeocodeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geocode.ErrDisabled):
		respondError(c, response.CodeBadRequest, "error.geocode_unavailable", nil)
	case errors.Is(err, geocode.ErrNoResult):
		respondError(c, response.CodeNotFound, "error.geocode_no_result", nil)
	case errors.Is(err, service.ErrCoordinatesInvalid):
		respondError(c, response.CodeBadRequest, "error.geo_coordinates_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.geocode_failed", err)
	}
}
