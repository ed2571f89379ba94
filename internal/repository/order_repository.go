package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// OrderRepository 订单仓储接口
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByIDWithItems(id uint) (*models.Order, error)
	Update(order *models.Order) error
	List(filter OrderListFilter, page, pageSize int) ([]models.Order, int64, error)
	CountAll() (int64, error)
	CountByStatus() ([]StatusCount, error)
	SumTotalByStatus(status string) (models.Money, error)
	Recent(limit int) ([]models.Order, error)
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository 订单仓储实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) GetByIDWithItems(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *GormOrderRepository) List(filter OrderListFilter, page, pageSize int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.RestaurantID > 0 {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	if err := applyPagination(query, page, pageSize).Order("id desc").Preload("Items").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *GormOrderRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

// CountByStatus 按状态聚合订单数量
func (r *GormOrderRepository) CountByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SumTotalByStatus 统计指定状态订单的总金额
func (r *GormOrderRepository) SumTotalByStatus(status string) (models.Money, error) {
	var row struct {
		Sum float64
	}
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) as sum").
		Where("status = ?", status).
		Scan(&row).Error
	if err != nil {
		return models.Money{}, err
	}
	return models.NewMoneyFromFloat(row.Sum), nil
}

func (r *GormOrderRepository) Recent(limit int) ([]models.Order, error) {
	if limit < 1 {
		limit = 5
	}
	var orders []models.Order
	if err := r.db.Order("id desc").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
