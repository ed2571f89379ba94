package models

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant 餐厅表
type Restaurant struct {
	ID              uint           `gorm:"primarykey" json:"id"`                            // 主键
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`                // 唯一标识
	Name            string         `gorm:"index;not null" json:"name"`                      // 餐厅名称
	Description     string         `gorm:"type:text" json:"description"`                    // 简介
	Cuisine         string         `gorm:"index;not null" json:"cuisine"`                   // 菜系
	PriceRange      string         `gorm:"default:'$$'" json:"price_range"`                 // 价格区间（$/$$/$$$）
	Address         string         `gorm:"default:''" json:"address"`                       // 地址
	City            string         `gorm:"index;not null" json:"city"`                      // 城市
	District        string         `gorm:"default:''" json:"district"`                      // 区县
	Lat             float64        `gorm:"default:0" json:"lat"`                            // 纬度
	Lng             float64        `gorm:"default:0" json:"lng"`                            // 经度
	Phone           string         `gorm:"default:''" json:"phone"`                         // 电话
	Image           string         `gorm:"type:varchar(500)" json:"image"`                  // 封面图
	Rating          float64        `gorm:"index;default:0" json:"rating"`                   // 平均评分（1 位小数）
	ReviewCount     int            `gorm:"default:0" json:"review_count"`                   // 评价数量
	DeliveryTime    string         `gorm:"default:''" json:"delivery_time"`                 // 配送时长描述（如 25-40 dk）
	DeliveryFee     Money          `gorm:"type:decimal(20,2);default:0" json:"delivery_fee"` // 配送费
	MinOrder        Money          `gorm:"type:decimal(20,2);default:0" json:"min_order"`   // 起送金额
	DeliveryRadius  float64        `gorm:"default:5" json:"delivery_radius"`                // 配送半径（公里）
	Tags            StringArray    `gorm:"type:json" json:"tags"`                           // 标签
	Amenities       StringArray    `gorm:"type:json" json:"amenities"`                      // 设施
	SpecialFeatures StringArray    `gorm:"type:json" json:"special_features"`               // 特色
	Atmosphere      StringArray    `gorm:"type:json" json:"atmosphere"`                     // 氛围
	DietaryOptions  StringArray    `gorm:"type:json" json:"dietary_options"`                // 饮食选项
	Discount        string         `gorm:"default:''" json:"discount"`                      // 展示用优惠文案
	IsOpen          bool           `gorm:"default:true" json:"is_open"`                     // 是否营业
	IsActive        bool           `gorm:"index;default:true" json:"is_active"`             // 是否上架
	Featured        bool           `gorm:"index;default:false" json:"featured"`             // 是否推荐
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                         // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (Restaurant) TableName() string {
	return "restaurants"
}

// HasCoordinates 判断是否有有效坐标
func (r *Restaurant) HasCoordinates() bool {
	return r != nil && (r.Lat != 0 || r.Lng != 0)
}
