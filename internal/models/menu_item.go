package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem 菜单项表
type MenuItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                      // 主键
	RestaurantID uint           `gorm:"index;not null" json:"restaurant_id"`       // 餐厅ID
	Name         string         `gorm:"not null" json:"name"`                      // 菜品名称
	Description  string         `gorm:"type:text" json:"description"`              // 描述
	Category     string         `gorm:"index;default:''" json:"category"`          // 分类（başlangıçlar/ana yemekler 等）
	Price        Money          `gorm:"type:decimal(20,2);not null" json:"price"`  // 价格
	Image        string         `gorm:"type:varchar(500)" json:"image"`            // 图片
	IsAvailable  bool           `gorm:"default:true" json:"is_available"`          // 是否可点
	IsPopular    bool           `gorm:"default:false" json:"is_popular"`           // 是否热门
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`         // 排序权重
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                   // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除时间
}

// TableName 指定表名
func (MenuItem) TableName() string {
	return "menu_items"
}
