package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// CouponUsageRepository 优惠券使用记录仓储接口
type CouponUsageRepository interface {
	Create(usage *models.CouponUsage) error
	CountByCouponAndUser(couponID, userID uint) (int64, error)
	ListByCoupon(couponID uint, page, pageSize int) ([]models.CouponUsage, int64, error)
	WithTx(tx *gorm.DB) CouponUsageRepository
}

// GormCouponUsageRepository 优惠券使用记录仓储实现
type GormCouponUsageRepository struct {
	db *gorm.DB
}

// NewCouponUsageRepository 创建优惠券使用记录仓储
func NewCouponUsageRepository(db *gorm.DB) CouponUsageRepository {
	return &GormCouponUsageRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormCouponUsageRepository) WithTx(tx *gorm.DB) CouponUsageRepository {
	return &GormCouponUsageRepository{db: tx}
}

func (r *GormCouponUsageRepository) Create(usage *models.CouponUsage) error {
	return r.db.Create(usage).Error
}

func (r *GormCouponUsageRepository) CountByCouponAndUser(couponID, userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CouponUsage{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error
	return count, err
}

func (r *GormCouponUsageRepository) ListByCoupon(couponID uint, page, pageSize int) ([]models.CouponUsage, int64, error) {
	query := r.db.Model(&models.CouponUsage{}).Where("coupon_id = ?", couponID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var usages []models.CouponUsage
	if err := applyPagination(query, page, pageSize).Order("id desc").Find(&usages).Error; err != nil {
		return nil, 0, err
	}
	return usages, total, nil
}
