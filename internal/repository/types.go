package repository

// RestaurantListFilter 餐厅列表查询条件
type RestaurantListFilter struct {
	City      string   // 城市（模糊匹配，不区分大小写）
	Cuisine   string   // 菜系（模糊匹配，不区分大小写）
	MinRating *float64 // 最低评分
	Featured  *bool    // 是否推荐
	IsActive  *bool    // 是否上架
	IsOpen    *bool    // 是否营业
}

// MenuItemListFilter 菜单项列表查询条件
type MenuItemListFilter struct {
	RestaurantID uint   // 餐厅ID
	Category     string // 分类
	IsAvailable  *bool  // 是否可点
}

// ReviewListFilter 评价列表查询条件
type ReviewListFilter struct {
	RestaurantID uint // 餐厅ID
	UserID       uint // 用户ID
}

// OrderListFilter 订单列表查询条件
type OrderListFilter struct {
	UserID       uint   // 用户ID
	RestaurantID uint   // 餐厅ID
	Status       string // 订单状态
}

// ReservationListFilter 预订列表查询条件
type ReservationListFilter struct {
	UserID       uint   // 用户ID
	RestaurantID uint   // 餐厅ID
	Date         string // 预订日期
	Status       string // 预订状态
}

// CouponListFilter 优惠券列表查询条件
type CouponListFilter struct {
	IsActive *bool  // 是否启用
	Search   string // 按优惠码或标题搜索
}

// CampaignListFilter 活动列表查询条件
type CampaignListFilter struct {
	IsActive       *bool  // 是否启用
	CampaignType   string // 活动类型
	ShowOnHomepage *bool  // 是否首页展示
}

// CollectionListFilter 合集列表查询条件
type CollectionListFilter struct {
	IsActive *bool // 是否启用
}

// UserListFilter 用户列表查询条件
type UserListFilter struct {
	Search string // 按邮箱或姓名搜索
	Status string // 用户状态
}

// CityCount 城市餐厅数统计
type CityCount struct {
	City  string `json:"city"`  // 城市
	Count int64  `json:"count"` // 餐厅数量
}

// SlotCount 预订时段人数统计
type SlotCount struct {
	TimeSlot string `json:"time_slot"` // 时段
	Count    int64  `json:"count"`     // 预订数量
}

// StatusCount 按状态统计数量
type StatusCount struct {
	Status string `json:"status"` // 状态
	Count  int64  `json:"count"`  // 数量
}
