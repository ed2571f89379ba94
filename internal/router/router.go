package router

import (
	"fmt"
	"strings"

	"github.com/yemeknerede/internal/cache"
	"github.com/yemeknerede/internal/config"
	adminhandlers "github.com/yemeknerede/internal/http/handlers/admin"
	publichandlers "github.com/yemeknerede/internal/http/handlers/public"
	"github.com/yemeknerede/internal/logger"
	"github.com/yemeknerede/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "yn"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/discover", publicHandler.DiscoverRestaurants)
			public.GET("/restaurants/featured", publicHandler.GetFeaturedRestaurants)
			public.GET("/restaurants/by-slug/:slug", publicHandler.GetRestaurantBySlug)
			public.GET("/restaurants/:id", publicHandler.GetRestaurant)
			public.GET("/restaurants/:id/menu", publicHandler.GetRestaurantMenu)
			public.GET("/restaurants/:id/reviews", publicHandler.GetRestaurantReviews)
			public.GET("/restaurants/:id/availability", publicHandler.GetReservationAvailability)
			public.GET("/restaurants/:id/delivery-check", publicHandler.CheckDelivery)
			public.GET("/campaigns", publicHandler.GetActiveCampaigns)
			public.GET("/campaigns/homepage", publicHandler.GetHomepageCampaigns)
			public.GET("/campaigns/:id", publicHandler.GetCampaign)
			public.POST("/campaigns/:id/click", publicHandler.ClickCampaign)
			public.GET("/collections", publicHandler.GetCollections)
			public.GET("/collections/:slug", publicHandler.GetCollectionBySlug)
			public.GET("/geo/nearby", publicHandler.GetNearbyRestaurants)
			public.GET("/geo/cities", publicHandler.GetCities)
			public.GET("/geo/geocode", publicHandler.GeocodeAddress)
			public.GET("/geo/reverse", publicHandler.ReverseGeocode)
			public.GET("/geo/route", publicHandler.GetRoute)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.PUT("/me/profile", publicHandler.UpdateUserProfile)
			user.PUT("/me/password", publicHandler.ChangeUserPassword)
			user.GET("/me/addresses", publicHandler.ListAddresses)
			user.POST("/me/addresses", publicHandler.CreateAddress)
			user.DELETE("/me/addresses/:id", publicHandler.DeleteAddress)
			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.POST("/orders/:id/cancel", publicHandler.CancelOrder)
			user.POST("/reservations", publicHandler.CreateReservation)
			user.GET("/reservations", publicHandler.ListReservations)
			user.GET("/reservations/:id", publicHandler.GetReservation)
			user.POST("/reservations/:id/cancel", publicHandler.CancelReservation)
			user.POST("/reviews", publicHandler.CreateReview)
			user.GET("/me/reviews", publicHandler.ListMyReviews)
			user.POST("/coupons/validate", publicHandler.ValidateCoupon)
			user.GET("/notifications", publicHandler.ListNotifications)
			user.GET("/notifications/unread-count", publicHandler.GetUnreadNotificationCount)
			user.POST("/notifications/read-all", publicHandler.MarkAllNotificationsRead)
			user.POST("/notifications/:id/read", publicHandler.MarkNotificationRead)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.GET("/me", adminHandler.GetAdminProfile)
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)

				// 仪表盘
				authorized.GET("/dashboard/summary", adminHandler.GetDashboardSummary)

				// 餐厅管理
				authorized.GET("/restaurants", adminHandler.GetAdminRestaurants)
				authorized.GET("/restaurants/:id", adminHandler.GetAdminRestaurant)
				authorized.POST("/restaurants", adminHandler.CreateRestaurant)
				authorized.PUT("/restaurants/:id", adminHandler.UpdateRestaurant)
				authorized.DELETE("/restaurants/:id", adminHandler.DeleteRestaurant)
				authorized.POST("/restaurants/:id/recalc-rating", adminHandler.RecalcRestaurantRating)

				// 菜单管理
				authorized.GET("/menu-items", adminHandler.GetAdminMenuItems)
				authorized.GET("/menu-items/:id", adminHandler.GetAdminMenuItem)
				authorized.POST("/menu-items", adminHandler.CreateMenuItem)
				authorized.PUT("/menu-items/:id", adminHandler.UpdateMenuItem)
				authorized.DELETE("/menu-items/:id", adminHandler.DeleteMenuItem)

				// 订单管理
				authorized.GET("/orders", adminHandler.AdminListOrders)
				authorized.GET("/orders/:id", adminHandler.AdminGetOrder)
				authorized.PATCH("/orders/:id", adminHandler.AdminUpdateOrderStatus)

				// 预订管理
				authorized.GET("/reservations", adminHandler.AdminListReservations)
				authorized.PATCH("/reservations/:id", adminHandler.AdminUpdateReservationStatus)

				// 优惠券管理
				authorized.POST("/coupons", adminHandler.CreateCoupon)
				authorized.GET("/coupons", adminHandler.GetAdminCoupons)
				authorized.GET("/coupons/:id", adminHandler.GetAdminCoupon)
				authorized.PUT("/coupons/:id", adminHandler.UpdateCoupon)
				authorized.DELETE("/coupons/:id", adminHandler.DeleteCoupon)
				authorized.GET("/coupons/:id/usages", adminHandler.GetCouponUsages)

				// 活动管理
				authorized.GET("/campaigns", adminHandler.GetAdminCampaigns)
				authorized.POST("/campaigns", adminHandler.CreateCampaign)
				authorized.PUT("/campaigns/:id", adminHandler.UpdateCampaign)
				authorized.DELETE("/campaigns/:id", adminHandler.DeleteCampaign)

				// 精选合集管理
				authorized.GET("/collections", adminHandler.GetAdminCollections)
				authorized.GET("/collections/:id", adminHandler.GetAdminCollection)
				authorized.POST("/collections", adminHandler.CreateCollection)
				authorized.PUT("/collections/:id", adminHandler.UpdateCollection)
				authorized.DELETE("/collections/:id", adminHandler.DeleteCollection)

				// 用户管理
				authorized.GET("/users", adminHandler.GetAdminUsers)

				// 设置管理
				authorized.GET("/settings/:key", adminHandler.GetSetting)
				authorized.PUT("/settings/:key", adminHandler.UpdateSetting)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
