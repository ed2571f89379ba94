package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// CouponRepository 优惠券仓储接口
type CouponRepository interface {
	Create(coupon *models.Coupon) error
	GetByID(id uint) (*models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	Update(coupon *models.Coupon) error
	Delete(id uint) error
	List(filter CouponListFilter, page, pageSize int) ([]models.Coupon, int64, error)
	ExistsByCode(code string, excludeID uint) (bool, error)
	IncrementUsedCount(id uint) (bool, error)
	WithTx(tx *gorm.DB) CouponRepository
}

// GormCouponRepository 优惠券仓储实现
type GormCouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository 创建优惠券仓储
func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &GormCouponRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormCouponRepository) WithTx(tx *gorm.DB) CouponRepository {
	return &GormCouponRepository{db: tx}
}

func (r *GormCouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

func (r *GormCouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *GormCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.Where("code = ?", code).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *GormCouponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

func (r *GormCouponRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coupon{}, id).Error
}

func (r *GormCouponRepository) List(filter CouponListFilter, page, pageSize int) ([]models.Coupon, int64, error) {
	query := r.db.Model(&models.Coupon{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + lowerLike(filter.Search) + "%"
		query = query.Where("LOWER(code) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var coupons []models.Coupon
	if err := applyPagination(query, page, pageSize).Order("id desc").Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

func (r *GormCouponRepository) ExistsByCode(code string, excludeID uint) (bool, error) {
	query := r.db.Model(&models.Coupon{}).Where("code = ?", code)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementUsedCount 条件自增使用次数，总量超限时不生效
func (r *GormCouponRepository) IncrementUsedCount(id uint) (bool, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
