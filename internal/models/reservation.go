package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation 餐厅预订表
type Reservation struct {
	ID           uint           `gorm:"primarykey" json:"id"`                   // 主键
	Code         string         `gorm:"uniqueIndex;not null" json:"code"`       // 预订码（RES-XXXXXX）
	RestaurantID uint           `gorm:"index;not null" json:"restaurant_id"`    // 餐厅ID
	UserID       uint           `gorm:"index;not null" json:"user_id"`          // 用户ID
	Date         string         `gorm:"index;not null" json:"date"`             // 预订日期（YYYY-MM-DD）
	TimeSlot     string         `gorm:"index;not null" json:"time_slot"`        // 预订时段（HH:MM）
	PartySize    int            `gorm:"not null" json:"party_size"`             // 用餐人数
	Status       string         `gorm:"index;default:'pending'" json:"status"`  // 预订状态
	Note         string         `gorm:"type:text" json:"note"`                  // 备注
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间
}

// TableName 指定表名
func (Reservation) TableName() string {
	return "reservations"
}
