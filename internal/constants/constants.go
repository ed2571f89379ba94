package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusOnTheWay  = "on_the_way"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// 预订状态常量
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// 优惠券类型常量
const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// 优惠码与预订码前缀常量
const (
	CouponCodePrefix      = "YNY-"
	ReservationCodePrefix = "RES-"
)

// 营销活动类型常量
const (
	CampaignTypeBanner       = "banner"
	CampaignTypePopup        = "popup"
	CampaignTypeNotification = "notification"
)

// 通知类型常量
const (
	NotificationTypeOrder       = "order"
	NotificationTypeReservation = "reservation"
	NotificationTypeCampaign    = "campaign"
	NotificationTypeSystem      = "system"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 价格区间常量
const (
	PriceRangeBudget   = "$"
	PriceRangeModerate = "$$"
	PriceRangePremium  = "$$$"
)

// 队列常量
const (
	QueueDefault               = "default"
	TaskNotificationDispatch   = "notification:dispatch"
	TaskRestaurantRatingRecalc = "restaurant:rating_recalc"
	TaskCampaignMetricFlush    = "campaign:metric_flush"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "yn"
)

// 验证码校验场景常量
const (
	CaptchaSceneAdminLogin = "admin_login"
)

// 站点语言常量
const (
	LocaleTrTR = "tr-TR"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleTrTR, LocaleEnUS}
