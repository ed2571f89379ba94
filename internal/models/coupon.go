package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券表
type Coupon struct {
	ID                    uint           `gorm:"primarykey" json:"id"`                                              // 主键
	Code                  string         `gorm:"uniqueIndex;not null" json:"code"`                                  // 优惠码（统一大写）
	Title                 string         `gorm:"default:''" json:"title"`                                           // 标题
	Description           string         `gorm:"type:text" json:"description"`                                      // 说明
	Type                  string         `gorm:"not null" json:"type"`                                              // 类型（percentage/fixed）
	Value                 Money          `gorm:"type:decimal(20,2);not null" json:"value"`                          // 数值（百分比或固定金额）
	MinOrderAmount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_order_amount"`     // 最低订单金额
	MaxDiscountAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount_amount"`  // 最大优惠金额（0 表示不封顶）
	UsageLimit            int            `gorm:"not null;default:0" json:"usage_limit"`                             // 总使用上限（0 表示不限制）
	UsedCount             int            `gorm:"not null;default:0" json:"used_count"`                              // 已使用次数
	PerUserLimit          int            `gorm:"not null;default:1" json:"per_user_limit"`                          // 每人使用上限
	ApplicableRestaurants string         `gorm:"type:text" json:"applicable_restaurants"`                           // 适用餐厅ID集合（JSON数组，空表示全部）
	ApplicableCuisines    StringArray    `gorm:"type:json" json:"applicable_cuisines"`                              // 适用菜系（仅展示用）
	ValidFrom             *time.Time     `gorm:"index" json:"valid_from"`                                           // 生效时间
	ValidUntil            *time.Time     `gorm:"index" json:"valid_until"`                                          // 失效时间
	IsActive              bool           `gorm:"not null;default:true" json:"is_active"`                            // 是否启用
	CreatedAt             time.Time      `gorm:"index" json:"created_at"`                                           // 创建时间
	UpdatedAt             time.Time      `gorm:"index" json:"updated_at"`                                           // 更新时间
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`                                                    // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}

// ApplicableRestaurantIDs 解析适用餐厅ID集合，空或解析失败视为不限
func (c *Coupon) ApplicableRestaurantIDs() []uint {
	if c == nil || c.ApplicableRestaurants == "" {
		return nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(c.ApplicableRestaurants), &ids); err != nil {
		return nil
	}
	return ids
}
