package models

import (
	"time"

	"gorm.io/gorm"
)

// Campaign 营销活动表
type Campaign struct {
	ID              uint           `gorm:"primarykey" json:"id"`                            // 主键
	Title           string         `gorm:"not null" json:"title"`                           // 标题
	Description     string         `gorm:"type:text" json:"description"`                    // 描述
	Image           string         `gorm:"type:varchar(500)" json:"image"`                  // 图片
	CampaignType    string         `gorm:"index;default:'banner'" json:"campaign_type"`     // 活动类型（banner/popup/notification）
	CouponCode      string         `gorm:"default:''" json:"coupon_code"`                   // 关联优惠码
	TargetURL       string         `gorm:"default:''" json:"target_url"`                    // 跳转地址
	Priority        int            `gorm:"index;default:0" json:"priority"`                 // 优先级（越大越靠前）
	ShowOnHomepage  bool           `gorm:"index;default:false" json:"show_on_homepage"`     // 是否首页展示
	ApplicableCities StringArray   `gorm:"type:json" json:"applicable_cities"`              // 投放城市（空表示全部）
	StartsAt        *time.Time     `gorm:"index" json:"starts_at"`                          // 开始时间
	EndsAt          *time.Time     `gorm:"index" json:"ends_at"`                            // 结束时间
	IsActive        bool           `gorm:"index;default:true" json:"is_active"`             // 是否启用
	ImpressionCount int64          `gorm:"default:0" json:"impression_count"`               // 曝光次数
	ClickCount      int64          `gorm:"default:0" json:"click_count"`                    // 点击次数
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                         // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (Campaign) TableName() string {
	return "campaigns"
}
