// Package provider 组装仓储与服务依赖
package provider

import (
	"time"

	"github.com/yemeknerede/internal/cache"
	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/geocode"
	"github.com/yemeknerede/internal/queue"
	"github.com/yemeknerede/internal/repository"
	"github.com/yemeknerede/internal/service"

	"gorm.io/gorm"
)

// Container 依赖容器
type Container struct {
	Cfg *config.Config
	DB  *gorm.DB

	AdminRepo        repository.AdminRepository
	UserRepo         repository.UserRepository
	RestaurantRepo   repository.RestaurantRepository
	MenuItemRepo     repository.MenuItemRepository
	ReviewRepo       repository.ReviewRepository
	OrderRepo        repository.OrderRepository
	ReservationRepo  repository.ReservationRepository
	CouponRepo       repository.CouponRepository
	CouponUsageRepo  repository.CouponUsageRepository
	CampaignRepo     repository.CampaignRepository
	NotificationRepo repository.NotificationRepository
	CollectionRepo   repository.CollectionRepository
	SettingRepo      repository.SettingRepository

	QueueClient   *queue.Client
	GeocodeClient *geocode.Client

	AuthService            *service.AuthService
	UserAuthService        *service.UserAuthService
	DiscoveryService       *service.DiscoveryService
	MenuService            *service.MenuService
	ReviewService          *service.ReviewService
	OrderService           *service.OrderService
	ReservationService     *service.ReservationService
	CouponService          *service.CouponService
	CouponAdminService     *service.CouponAdminService
	RestaurantAdminService *service.RestaurantAdminService
	CampaignService        *service.CampaignService
	NotificationService    *service.NotificationService
	CollectionService      *service.CollectionService
	GeoService             *service.GeoService
	DashboardService       *service.DashboardService
	SettingService         *service.SettingService
	CaptchaService         *service.CaptchaService
}

// NewContainer 初始化缓存、队列客户端与全部服务
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	cache.InitRedis(cfg.Redis)

	c := &Container{Cfg: cfg, DB: db}

	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.RestaurantRepo = repository.NewRestaurantRepository(db)
	c.MenuItemRepo = repository.NewMenuItemRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReservationRepo = repository.NewReservationRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CouponUsageRepo = repository.NewCouponUsageRepository(db)
	c.CampaignRepo = repository.NewCampaignRepository(db)
	c.NotificationRepo = repository.NewNotificationRepository(db)
	c.CollectionRepo = repository.NewCollectionRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)

	c.QueueClient = queue.NewClient(cfg.Queue)
	c.GeocodeClient = geocode.New(geocode.Config{
		Enabled:      cfg.Geocode.Enabled,
		NominatimURL: cfg.Geocode.NominatimURL,
		OSRMURL:      cfg.Geocode.OSRMURL,
		UserAgent:    cfg.Geocode.UserAgent,
		Timeout:      time.Duration(cfg.Geocode.TimeoutMS) * time.Millisecond,
	})

	c.AuthService = service.NewAuthService(cfg, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(cfg, c.UserRepo)
	c.DiscoveryService = service.NewDiscoveryService(cfg, c.RestaurantRepo)
	c.MenuService = service.NewMenuService(c.MenuItemRepo, c.RestaurantRepo)
	c.ReviewService = service.NewReviewService(db, c.ReviewRepo, c.RestaurantRepo, c.QueueClient)
	c.CouponService = service.NewCouponService(db, c.CouponRepo, c.CouponUsageRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo, c.CouponUsageRepo)
	c.RestaurantAdminService = service.NewRestaurantAdminService(db, c.RestaurantRepo, c.MenuItemRepo, c.ReviewRepo)
	c.OrderService = service.NewOrderService(cfg, db, c.OrderRepo, c.MenuItemRepo, c.RestaurantRepo, c.CouponService, c.QueueClient)
	c.ReservationService = service.NewReservationService(cfg, c.ReservationRepo, c.RestaurantRepo, c.QueueClient)
	c.CampaignService = service.NewCampaignService(c.CampaignRepo, c.QueueClient)
	c.NotificationService = service.NewNotificationService(c.NotificationRepo)
	c.CollectionService = service.NewCollectionService(c.CollectionRepo, c.RestaurantRepo)
	c.GeoService = service.NewGeoService(cfg, c.RestaurantRepo, c.GeocodeClient)
	c.DashboardService = service.NewDashboardService(c.UserRepo, c.RestaurantRepo, c.OrderRepo, c.ReservationRepo)
	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.CaptchaService = service.NewCaptchaService(cfg.Captcha)

	return c
}
