package models

import (
	"time"

	"gorm.io/gorm"
)

// Collection 精选餐厅合集表
type Collection struct {
	ID          uint           `gorm:"primarykey" json:"id"`               // 主键
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`   // 唯一标识
	Title       string         `gorm:"not null" json:"title"`              // 标题
	Description string         `gorm:"type:text" json:"description"`       // 描述
	Image       string         `gorm:"type:varchar(500)" json:"image"`     // 封面图
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`  // 排序权重
	IsActive    bool           `gorm:"index;default:true" json:"is_active"` // 是否启用
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`            // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`            // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                     // 软删除时间

	Items []CollectionItem `gorm:"foreignKey:CollectionID" json:"items,omitempty"` // 合集条目
}

// TableName 指定表名
func (Collection) TableName() string {
	return "collections"
}

// CollectionItem 合集条目表
type CollectionItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                  // 主键
	CollectionID uint           `gorm:"index;not null" json:"collection_id"`   // 合集ID
	RestaurantID uint           `gorm:"index;not null" json:"restaurant_id"`   // 餐厅ID
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`     // 排序权重
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (CollectionItem) TableName() string {
	return "collection_items"
}
