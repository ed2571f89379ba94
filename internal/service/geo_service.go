package service

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/geo"
	"github.com/yemeknerede/internal/geocode"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// GeoService 地理位置服务
type GeoService struct {
	cfg            *config.Config
	restaurantRepo repository.RestaurantRepository
	geocodeClient  *geocode.Client
}

// NewGeoService 创建地理位置服务
func NewGeoService(cfg *config.Config, restaurantRepo repository.RestaurantRepository, geocodeClient *geocode.Client) *GeoService {
	return &GeoService{cfg: cfg, restaurantRepo: restaurantRepo, geocodeClient: geocodeClient}
}

// NearbyRestaurant 附近餐厅视图
type NearbyRestaurant struct {
	models.Restaurant
	DistanceKM float64 `json:"distance_km"`
}

// Nearby 按半径查询附近餐厅，距离升序
func (s *GeoService) Nearby(lat, lng, radiusKM float64, limit int) ([]NearbyRestaurant, error) {
	if !geo.ValidCoordinates(lat, lng) {
		return nil, ErrCoordinatesInvalid
	}

	maxRadius := s.cfg.Delivery.NearbyMaxRadiusKM
	if maxRadius <= 0 {
		maxRadius = 10.0
	}
	if radiusKM <= 0 || radiusKM > maxRadius {
		radiusKM = maxRadius
	}
	if limit < 1 {
		limit = s.cfg.Delivery.NearbyLimit
	}
	if limit < 1 {
		limit = 20
	}

	active := true
	restaurants, err := s.restaurantRepo.ListAll(repository.RestaurantListFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyRestaurant, 0, len(restaurants))
	for i := range restaurants {
		r := restaurants[i]
		if !r.HasCoordinates() {
			continue
		}
		distance := geo.DistanceKM(lat, lng, r.Lat, r.Lng)
		if distance > radiusKM {
			continue
		}
		nearby = append(nearby, NearbyRestaurant{Restaurant: r, DistanceKM: distance})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		if nearby[i].DistanceKM != nearby[j].DistanceKM {
			return nearby[i].DistanceKM < nearby[j].DistanceKM
		}
		return nearby[i].ID < nearby[j].ID
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

// Cities 城市及餐厅数统计
func (s *GeoService) Cities() ([]repository.CityCount, error) {
	return s.restaurantRepo.Cities()
}

// DeliveryCheckResult 配送可达性结果
type DeliveryCheckResult struct {
	RestaurantID     uint    `json:"restaurant_id"`
	DistanceKM       float64 `json:"distance_km"`
	CanDeliver       bool    `json:"can_deliver"`
	EstimatedMinutes int     `json:"estimated_minutes"`
}

// DeliveryCheck 判断坐标是否在餐厅配送范围内并估算送达时间
func (s *GeoService) DeliveryCheck(restaurantID uint, lat, lng float64) (*DeliveryCheckResult, error) {
	if !geo.ValidCoordinates(lat, lng) {
		return nil, ErrCoordinatesInvalid
	}

	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if !restaurant.HasCoordinates() {
		return nil, ErrOutsideDeliveryArea
	}

	distance := geo.DistanceKM(lat, lng, restaurant.Lat, restaurant.Lng)
	radius := restaurant.DeliveryRadius
	if radius <= 0 {
		radius = s.cfg.Delivery.DefaultRadiusKM
	}
	if radius <= 0 {
		radius = 5.0
	}
	maxRadius := s.cfg.Delivery.MaxRadiusKM
	if maxRadius > 0 && radius > maxRadius {
		radius = maxRadius
	}

	baseMinutes := s.cfg.Delivery.BaseMinutes
	if baseMinutes < 1 {
		baseMinutes = 20
	}
	minutesPerKM := s.cfg.Delivery.MinutesPerKM
	if minutesPerKM < 1 {
		minutesPerKM = 3
	}

	return &DeliveryCheckResult{
		RestaurantID:     restaurant.ID,
		DistanceKM:       distance,
		CanDeliver:       distance <= radius,
		EstimatedMinutes: baseMinutes + int(math.Round(float64(minutesPerKM)*distance)),
	}, nil
}

// Geocode 正向地理编码
func (s *GeoService) Geocode(ctx context.Context, query string) (*geocode.Place, error) {
	if !s.geocodeClient.Enabled() {
		return nil, geocode.ErrDisabled
	}
	return s.geocodeClient.Search(ctx, query)
}

// ReverseGeocode 反向地理编码
func (s *GeoService) ReverseGeocode(ctx context.Context, lat, lng float64) (*geocode.Place, error) {
	if !geo.ValidCoordinates(lat, lng) {
		return nil, ErrCoordinatesInvalid
	}
	if !s.geocodeClient.Enabled() {
		return nil, geocode.ErrDisabled
	}
	return s.geocodeClient.Reverse(ctx, lat, lng)
}

// Route 查询两点间驾车路线摘要
func (s *GeoService) Route(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (*geocode.RouteSummary, error) {
	if !geo.ValidCoordinates(fromLat, fromLng) || !geo.ValidCoordinates(toLat, toLng) {
		return nil, ErrCoordinatesInvalid
	}
	if !s.geocodeClient.Enabled() {
		return nil, geocode.ErrDisabled
	}
	return s.geocodeClient.Route(ctx, fromLat, fromLng, toLat, toLng)
}
