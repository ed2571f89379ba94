package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification 用户通知表
type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`                  // 主键
	UserID    uint           `gorm:"index;not null" json:"user_id"`         // 用户ID
	Type      string         `gorm:"index;default:'system'" json:"type"`    // 通知类型（order/reservation/campaign/system）
	Title     string         `gorm:"not null" json:"title"`                 // 标题
	Body      string         `gorm:"type:text" json:"body"`                 // 内容
	RefID     uint           `gorm:"index;default:0" json:"ref_id"`         // 关联业务ID
	IsRead    bool           `gorm:"index;default:false" json:"is_read"`    // 是否已读
	ReadAt    *time.Time     `json:"read_at"`                               // 已读时间
	CreatedAt time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}
