package service

import (
	"errors"
	"strings"
	"time"

	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// CouponAdminService 优惠券后台管理服务
type CouponAdminService struct {
	couponRepo repository.CouponRepository
	usageRepo  repository.CouponUsageRepository
}

// NewCouponAdminService 创建优惠券管理服务
func NewCouponAdminService(couponRepo repository.CouponRepository, usageRepo repository.CouponUsageRepository) *CouponAdminService {
	return &CouponAdminService{couponRepo: couponRepo, usageRepo: usageRepo}
}

// CouponParams 优惠券创建/更新参数
type CouponParams struct {
	Code                  string
	Title                 string
	Description           string
	Type                  string
	Value                 models.Money
	MinOrderAmount        models.Money
	MaxDiscountAmount     models.Money
	UsageLimit            int
	PerUserLimit          int
	ApplicableRestaurants string
	ApplicableCuisines    []string
	ValidFrom             *time.Time
	ValidUntil            *time.Time
	IsActive              bool
}

// Create 创建优惠券，未提供优惠码时自动生成
func (s *CouponAdminService) Create(params CouponParams) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(params.Code))
	if code == "" {
		generated, err := s.generateCode()
		if err != nil {
			return nil, err
		}
		code = generated
	} else {
		taken, err := s.couponRepo.ExistsByCode(code, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCouponCodeTaken
		}
	}

	perUserLimit := params.PerUserLimit
	if perUserLimit < 1 {
		perUserLimit = 1
	}

	coupon := &models.Coupon{
		Code:                  code,
		Title:                 params.Title,
		Description:           params.Description,
		Type:                  params.Type,
		Value:                 params.Value,
		MinOrderAmount:        params.MinOrderAmount,
		MaxDiscountAmount:     params.MaxDiscountAmount,
		UsageLimit:            params.UsageLimit,
		PerUserLimit:          perUserLimit,
		ApplicableRestaurants: params.ApplicableRestaurants,
		ApplicableCuisines:    params.ApplicableCuisines,
		ValidFrom:             params.ValidFrom,
		ValidUntil:            params.ValidUntil,
		IsActive:              params.IsActive,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券
func (s *CouponAdminService) Update(id uint, params CouponParams) (*models.Coupon, error) {
	coupon, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(params.Code))
	if code != "" && code != coupon.Code {
		taken, err := s.couponRepo.ExistsByCode(code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCouponCodeTaken
		}
		coupon.Code = code
	}

	coupon.Title = params.Title
	coupon.Description = params.Description
	coupon.Type = params.Type
	coupon.Value = params.Value
	coupon.MinOrderAmount = params.MinOrderAmount
	coupon.MaxDiscountAmount = params.MaxDiscountAmount
	coupon.UsageLimit = params.UsageLimit
	if params.PerUserLimit >= 1 {
		coupon.PerUserLimit = params.PerUserLimit
	}
	coupon.ApplicableRestaurants = params.ApplicableRestaurants
	coupon.ApplicableCuisines = params.ApplicableCuisines
	coupon.ValidFrom = params.ValidFrom
	coupon.ValidUntil = params.ValidUntil
	coupon.IsActive = params.IsActive

	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Get 获取优惠券
func (s *CouponAdminService) Get(id uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return coupon, nil
}

// Delete 删除优惠券
func (s *CouponAdminService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.couponRepo.Delete(id)
}

// List 分页查询优惠券
func (s *CouponAdminService) List(filter repository.CouponListFilter, page, pageSize int) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter, page, pageSize)
}

// Usages 查询优惠券使用记录
func (s *CouponAdminService) Usages(couponID uint, page, pageSize int) ([]models.CouponUsage, int64, error) {
	if _, err := s.Get(couponID); err != nil {
		return nil, 0, err
	}
	return s.usageRepo.ListByCoupon(couponID, page, pageSize)
}

// generateCode 生成未占用的优惠码
func (s *CouponAdminService) generateCode() (string, error) {
	for i := 0; i < 10; i++ {
		code := constants.CouponCodePrefix + randomCode(6)
		taken, err := s.couponRepo.ExistsByCode(code, 0)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCouponCodeTaken
}
