package models

import (
	"time"

	"gorm.io/gorm"
)

// Review 餐厅评价表
type Review struct {
	ID           uint           `gorm:"primarykey" json:"id"`                // 主键
	RestaurantID uint           `gorm:"index;not null" json:"restaurant_id"` // 餐厅ID
	UserID       uint           `gorm:"index;not null" json:"user_id"`       // 用户ID
	OrderID      uint           `gorm:"index;default:0" json:"order_id"`     // 关联订单（可为空）
	Rating       int            `gorm:"not null" json:"rating"`              // 评分（1-5）
	Comment      string         `gorm:"type:text" json:"comment"`            // 评价内容
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`             // 创建时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
