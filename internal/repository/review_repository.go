package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// ReviewRepository 评价仓储接口
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	List(filter ReviewListFilter, page, pageSize int) ([]models.Review, int64, error)
	DeleteByRestaurant(restaurantID uint) error
	AggregateByRestaurant(restaurantID uint) (avg float64, count int64, err error)
	WithTx(tx *gorm.DB) ReviewRepository
}

// GormReviewRepository 评价仓储实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓储
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormReviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: tx}
}

func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *GormReviewRepository) List(filter ReviewListFilter, page, pageSize int) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{})
	if filter.RestaurantID > 0 {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	if err := applyPagination(query, page, pageSize).Order("id desc").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *GormReviewRepository) DeleteByRestaurant(restaurantID uint) error {
	return r.db.Where("restaurant_id = ?", restaurantID).Delete(&models.Review{}).Error
}

// AggregateByRestaurant 计算餐厅评分均值与评价总数
func (r *GormReviewRepository) AggregateByRestaurant(restaurantID uint) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}
