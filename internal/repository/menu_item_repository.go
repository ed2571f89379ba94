package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// MenuItemRepository 菜单项仓储接口
type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uint) error
	DeleteByRestaurant(restaurantID uint) error
	List(filter MenuItemListFilter) ([]models.MenuItem, error)
	ListByIDs(ids []uint) ([]models.MenuItem, error)
	WithTx(tx *gorm.DB) MenuItemRepository
}

// GormMenuItemRepository 菜单项仓储实现
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository 创建菜单项仓储
func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormMenuItemRepository) WithTx(tx *gorm.DB) MenuItemRepository {
	return &GormMenuItemRepository{db: tx}
}

func (r *GormMenuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *GormMenuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormMenuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *GormMenuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}

func (r *GormMenuItemRepository) DeleteByRestaurant(restaurantID uint) error {
	return r.db.Where("restaurant_id = ?", restaurantID).Delete(&models.MenuItem{}).Error
}

func (r *GormMenuItemRepository) List(filter MenuItemListFilter) ([]models.MenuItem, error) {
	query := r.db.Model(&models.MenuItem{})
	if filter.RestaurantID > 0 {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}

	var items []models.MenuItem
	if err := query.Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormMenuItemRepository) ListByIDs(ids []uint) ([]models.MenuItem, error) {
	if len(ids) == 0 {
		return []models.MenuItem{}, nil
	}
	var items []models.MenuItem
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
