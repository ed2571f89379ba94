package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`              // 主键
	Email              string         `gorm:"uniqueIndex;not null" json:"email"` // 邮箱
	PasswordHash       string         `gorm:"not null" json:"-"`                 // 密码哈希（不返回给前端）
	FullName           string         `gorm:"default:''" json:"full_name"`       // 姓名
	Phone              string         `gorm:"default:''" json:"phone"`           // 电话
	City               string         `gorm:"index;default:''" json:"city"`      // 所在城市
	Locale             string         `gorm:"default:'tr-TR'" json:"locale"`     // 语言偏好
	Status             string         `gorm:"default:'active'" json:"status"`    // 账号状态
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`       // Token 版本（用于全量失效）
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                    // 该时间点前签发的 Token 失效
	LastLoginAt        *time.Time     `json:"last_login_at"`                     // 最后登录时间
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`           // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间

	Addresses []UserAddress `gorm:"foreignKey:UserID" json:"addresses,omitempty"` // 收货地址
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// UserAddress 用户收货地址表
type UserAddress struct {
	ID        uint           `gorm:"primarykey" json:"id"`           // 主键
	UserID    uint           `gorm:"index;not null" json:"user_id"`  // 用户ID
	Label     string         `gorm:"default:''" json:"label"`        // 地址标签（ev/iş 等）
	Address   string         `gorm:"not null" json:"address"`        // 详细地址
	City      string         `gorm:"index;default:''" json:"city"`   // 城市
	District  string         `gorm:"default:''" json:"district"`     // 区县
	Lat       float64        `gorm:"default:0" json:"lat"`           // 纬度
	Lng       float64        `gorm:"default:0" json:"lng"`           // 经度
	IsDefault bool           `gorm:"default:false" json:"is_default"` // 是否默认地址
	CreatedAt time.Time      `gorm:"index" json:"created_at"`        // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                 // 软删除时间
}

// TableName 指定表名
func (UserAddress) TableName() string {
	return "user_addresses"
}
