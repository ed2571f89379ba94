package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// RestaurantRepository 餐厅仓储接口
type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	GetByID(id uint) (*models.Restaurant, error)
	GetBySlug(slug string) (*models.Restaurant, error)
	Update(restaurant *models.Restaurant) error
	Delete(id uint) error
	List(filter RestaurantListFilter, page, pageSize int) ([]models.Restaurant, int64, error)
	ListAll(filter RestaurantListFilter) ([]models.Restaurant, error)
	ListByIDs(ids []uint) ([]models.Restaurant, error)
	ExistsBySlug(slug string, excludeID uint) (bool, error)
	UpdateRatingStats(id uint, rating float64, reviewCount int64) error
	CountAll() (int64, error)
	Cities() ([]CityCount, error)
	WithTx(tx *gorm.DB) RestaurantRepository
}

// GormRestaurantRepository 餐厅仓储实现
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository 创建餐厅仓储
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormRestaurantRepository) WithTx(tx *gorm.DB) RestaurantRepository {
	return &GormRestaurantRepository{db: tx}
}

func (r *GormRestaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *GormRestaurantRepository) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *GormRestaurantRepository) GetBySlug(slug string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.Where("slug = ?", slug).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *GormRestaurantRepository) Update(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}

func (r *GormRestaurantRepository) Delete(id uint) error {
	return r.db.Delete(&models.Restaurant{}, id).Error
}

func (r *GormRestaurantRepository) applyFilter(filter RestaurantListFilter) *gorm.DB {
	query := r.db.Model(&models.Restaurant{})
	if filter.City != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+lowerLike(filter.City)+"%")
	}
	if filter.Cuisine != "" {
		query = query.Where("LOWER(cuisine) LIKE ?", "%"+lowerLike(filter.Cuisine)+"%")
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsOpen != nil {
		query = query.Where("is_open = ?", *filter.IsOpen)
	}
	return query
}

func (r *GormRestaurantRepository) List(filter RestaurantListFilter, page, pageSize int) ([]models.Restaurant, int64, error) {
	query := r.applyFilter(filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []models.Restaurant
	if err := applyPagination(query, page, pageSize).Order("id desc").Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

// ListAll 返回满足条件的全部餐厅（发现流程在内存中继续过滤）
func (r *GormRestaurantRepository) ListAll(filter RestaurantListFilter) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.applyFilter(filter).Order("id asc").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *GormRestaurantRepository) ListByIDs(ids []uint) ([]models.Restaurant, error) {
	if len(ids) == 0 {
		return []models.Restaurant{}, nil
	}
	var restaurants []models.Restaurant
	if err := r.db.Where("id IN ?", ids).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *GormRestaurantRepository) ExistsBySlug(slug string, excludeID uint) (bool, error) {
	query := r.db.Model(&models.Restaurant{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateRatingStats 回写评分聚合结果
func (r *GormRestaurantRepository) UpdateRatingStats(id uint, rating float64, reviewCount int64) error {
	return r.db.Model(&models.Restaurant{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": reviewCount}).Error
}

func (r *GormRestaurantRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Restaurant{}).Count(&count).Error
	return count, err
}

// Cities 按城市聚合餐厅数量
func (r *GormRestaurantRepository) Cities() ([]CityCount, error) {
	var rows []CityCount
	err := r.db.Model(&models.Restaurant{}).
		Select("city, COUNT(*) as count").
		Where("is_active = ?", true).
		Group("city").
		Order("count desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
