package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                              // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`              // 订单号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                     // 用户ID
	RestaurantID    uint           `gorm:"index;not null" json:"restaurant_id"`               // 餐厅ID
	Status          string         `gorm:"index;default:'confirmed'" json:"status"`           // 订单状态
	Subtotal        Money          `gorm:"type:decimal(20,2);not null" json:"subtotal"`       // 商品小计
	DeliveryFee     Money          `gorm:"type:decimal(20,2);default:0" json:"delivery_fee"`  // 配送费
	ServiceFee      Money          `gorm:"type:decimal(20,2);default:0" json:"service_fee"`   // 服务费
	Discount        Money          `gorm:"type:decimal(20,2);default:0" json:"discount"`      // 优惠金额
	Total           Money          `gorm:"type:decimal(20,2);not null" json:"total"`          // 应付总额
	CouponCode      string         `gorm:"index;default:''" json:"coupon_code"`               // 使用的优惠码
	DeliveryAddress string         `gorm:"type:text" json:"delivery_address"`                 // 配送地址
	PaymentMethod   string         `gorm:"default:'cash'" json:"payment_method"`              // 支付方式（cash/card/online）
	Note            string         `gorm:"type:text" json:"note"`                             // 订单备注
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                           // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单明细
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细表
type OrderItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                           // 主键
	OrderID    uint           `gorm:"index;not null" json:"order_id"`                 // 订单ID
	MenuItemID uint           `gorm:"index;not null" json:"menu_item_id"`             // 菜单项ID
	Name       string         `gorm:"not null" json:"name"`                           // 下单时菜品名快照
	UnitPrice  Money          `gorm:"type:decimal(20,2);not null" json:"unit_price"`  // 下单时单价快照
	Quantity   int            `gorm:"not null;default:1" json:"quantity"`             // 数量
	TotalPrice Money          `gorm:"type:decimal(20,2);not null" json:"total_price"` // 行小计
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                        // 创建时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
