package models

import (
	"time"
)

// Setting 系统设置表（键值存储）
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	Key       string    `gorm:"uniqueIndex;not null" json:"key"` // 设置键
	Value     JSON      `gorm:"type:json" json:"value"`          // 设置值
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`         // 更新时间
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}
