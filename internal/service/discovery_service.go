package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/geo"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// DiscoveryService 餐厅发现服务
type DiscoveryService struct {
	cfg            *config.Config
	restaurantRepo repository.RestaurantRepository
}

// NewDiscoveryService 创建餐厅发现服务
func NewDiscoveryService(cfg *config.Config, restaurantRepo repository.RestaurantRepository) *DiscoveryService {
	return &DiscoveryService{cfg: cfg, restaurantRepo: restaurantRepo}
}

// DiscoverParams 发现查询参数
type DiscoverParams struct {
	City          string
	Cuisine       string
	Search        string
	Features      []string
	MinRating     *float64
	Lat           *float64
	Lng           *float64
	MaxDistanceKM *float64
	Featured      *bool
	Page          int
	PageSize      int
}

// RestaurantView 餐厅视图，附带按需计算的距离信息
type RestaurantView struct {
	models.Restaurant
	DistanceKM *float64 `json:"distance_km,omitempty"`
	CanDeliver *bool    `json:"can_deliver,omitempty"`
}

// Discover 组合条件筛选餐厅，条件之间取交集
func (s *DiscoveryService) Discover(params DiscoverParams) ([]RestaurantView, int64, error) {
	active := true
	filter := repository.RestaurantListFilter{
		City:      params.City,
		Cuisine:   params.Cuisine,
		MinRating: params.MinRating,
		Featured:  params.Featured,
		IsActive:  &active,
	}

	restaurants, err := s.restaurantRepo.ListAll(filter)
	if err != nil {
		return nil, 0, err
	}

	hasPoint := params.Lat != nil && params.Lng != nil
	if hasPoint && !geo.ValidCoordinates(*params.Lat, *params.Lng) {
		return nil, 0, ErrCoordinatesInvalid
	}

	views := make([]RestaurantView, 0, len(restaurants))
	for i := range restaurants {
		r := restaurants[i]
		if params.Search != "" && !matchesSearch(&r, params.Search) {
			continue
		}
		if len(params.Features) > 0 && !matchesFeatures(&r, params.Features) {
			continue
		}

		view := RestaurantView{Restaurant: r}
		if hasPoint && r.HasCoordinates() {
			distance := geo.DistanceKM(*params.Lat, *params.Lng, r.Lat, r.Lng)
			canDeliver := distance <= deliveryRadius(&r, s.cfg.Delivery.DefaultRadiusKM)
			view.DistanceKM = &distance
			view.CanDeliver = &canDeliver
		}

		if params.MaxDistanceKM != nil {
			// 限定距离时丢弃无坐标的候选
			if view.DistanceKM == nil || *view.DistanceKM > *params.MaxDistanceKM {
				continue
			}
		}
		views = append(views, view)
	}

	sortViews(views, hasPoint)

	total := int64(len(views))
	return paginateViews(views, params.Page, params.PageSize), total, nil
}

// GetBySlug 按唯一标识获取餐厅详情
func (s *DiscoveryService) GetBySlug(slug string) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, ErrRestaurantNotFound
	}
	return restaurant, nil
}

// GetByID 按ID获取餐厅详情
func (s *DiscoveryService) GetByID(id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// Featured 返回推荐餐厅
func (s *DiscoveryService) Featured(limit int) ([]models.Restaurant, error) {
	active := true
	featured := true
	restaurants, err := s.restaurantRepo.ListAll(repository.RestaurantListFilter{
		IsActive: &active,
		Featured: &featured,
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(restaurants, func(i, j int) bool {
		if restaurants[i].Rating != restaurants[j].Rating {
			return restaurants[i].Rating > restaurants[j].Rating
		}
		return restaurants[i].ID < restaurants[j].ID
	})
	if limit > 0 && len(restaurants) > limit {
		restaurants = restaurants[:limit]
	}
	return restaurants, nil
}

func matchesSearch(r *models.Restaurant, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Cuisine), needle) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// matchesFeatures 要求每个特征都能在任一属性数组中命中
func matchesFeatures(r *models.Restaurant, features []string) bool {
	for _, feature := range features {
		needle := strings.ToLower(strings.TrimSpace(feature))
		if needle == "" {
			continue
		}
		if !containsFold(r.Tags, needle) &&
			!containsFold(r.Amenities, needle) &&
			!containsFold(r.SpecialFeatures, needle) &&
			!containsFold(r.Atmosphere, needle) &&
			!containsFold(r.DietaryOptions, needle) {
			return false
		}
	}
	return true
}

func containsFold(values models.StringArray, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func deliveryRadius(r *models.Restaurant, fallback float64) float64 {
	if r.DeliveryRadius > 0 {
		return r.DeliveryRadius
	}
	if fallback > 0 {
		return fallback
	}
	return 5.0
}

// sortViews 有定位时按距离升序，否则按评分降序
func sortViews(views []RestaurantView, hasPoint bool) {
	if hasPoint {
		sort.SliceStable(views, func(i, j int) bool {
			di, dj := views[i].DistanceKM, views[j].DistanceKM
			if di != nil && dj != nil {
				if *di != *dj {
					return *di < *dj
				}
				return views[i].ID < views[j].ID
			}
			if di != nil {
				return true
			}
			if dj != nil {
				return false
			}
			return views[i].ID < views[j].ID
		})
		return
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Rating != views[j].Rating {
			return views[i].Rating > views[j].Rating
		}
		return views[i].ID < views[j].ID
	})
}

func paginateViews(views []RestaurantView, page, pageSize int) []RestaurantView {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	start := (page - 1) * pageSize
	if start >= len(views) {
		return []RestaurantView{}
	}
	end := start + pageSize
	if end > len(views) {
		end = len(views)
	}
	return views[start:end]
}
