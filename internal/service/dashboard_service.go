package service

import (
	"context"
	"time"

	"github.com/yemeknerede/internal/cache"
	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"
)

// DashboardService 后台看板服务
type DashboardService struct {
	userRepo        repository.UserRepository
	restaurantRepo  repository.RestaurantRepository
	orderRepo       repository.OrderRepository
	reservationRepo repository.ReservationRepository
}

// NewDashboardService 创建看板服务
func NewDashboardService(
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	orderRepo repository.OrderRepository,
	reservationRepo repository.ReservationRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:        userRepo,
		restaurantRepo:  restaurantRepo,
		orderRepo:       orderRepo,
		reservationRepo: reservationRepo,
	}
}

// 看板缓存有效期
const dashboardCacheTTL = 45 * time.Second

const dashboardCacheKey = "dashboard:summary"

// DashboardSummary 看板汇总
type DashboardSummary struct {
	TotalUsers        int64                    `json:"total_users"`
	TotalRestaurants  int64                    `json:"total_restaurants"`
	TotalOrders       int64                    `json:"total_orders"`
	TotalReservations int64                    `json:"total_reservations"`
	Revenue           models.Money             `json:"revenue"`
	OrdersByStatus    []repository.StatusCount `json:"orders_by_status"`
	RecentOrders      []models.Order           `json:"recent_orders"`
	GeneratedAt       time.Time                `json:"generated_at"`
}

// Summary 生成看板汇总，短期缓存降低后台刷新压力
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	cacheKey := cache.Prefix() + ":" + dashboardCacheKey
	var cached DashboardSummary
	if ok, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
		return &cached, nil
	}

	summary := &DashboardSummary{GeneratedAt: time.Now()}

	var err error
	if summary.TotalUsers, err = s.userRepo.CountAll(); err != nil {
		return nil, err
	}
	if summary.TotalRestaurants, err = s.restaurantRepo.CountAll(); err != nil {
		return nil, err
	}
	if summary.TotalOrders, err = s.orderRepo.CountAll(); err != nil {
		return nil, err
	}
	if summary.TotalReservations, err = s.reservationRepo.CountAll(); err != nil {
		return nil, err
	}
	if summary.Revenue, err = s.orderRepo.SumTotalByStatus(constants.OrderStatusDelivered); err != nil {
		return nil, err
	}
	if summary.OrdersByStatus, err = s.orderRepo.CountByStatus(); err != nil {
		return nil, err
	}
	if summary.RecentOrders, err = s.orderRepo.Recent(5); err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, cacheKey, summary, dashboardCacheTTL)
	return summary, nil
}
