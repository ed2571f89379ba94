package service

import (
	"errors"
	"strings"
	"time"

	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CouponService 优惠券校验与核销服务
type CouponService struct {
	db         *gorm.DB
	couponRepo repository.CouponRepository
	usageRepo  repository.CouponUsageRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(db *gorm.DB, couponRepo repository.CouponRepository, usageRepo repository.CouponUsageRepository) *CouponService {
	return &CouponService{db: db, couponRepo: couponRepo, usageRepo: usageRepo}
}

// ValidateParams 优惠券校验参数
type ValidateParams struct {
	Code         string
	UserID       uint
	RestaurantID uint
	OrderAmount  *models.Money
}

// Validation 校验结果
type Validation struct {
	Coupon   *models.Coupon `json:"coupon"`
	Discount models.Money   `json:"discount"`
}

// Validate 按固定顺序校验优惠券并计算折扣
func (s *CouponService) Validate(params ValidateParams) (*Validation, error) {
	coupon, err := s.findByCode(params.Code)
	if err != nil {
		return nil, err
	}
	if err := s.checkCoupon(s.usageRepo, coupon, params); err != nil {
		return nil, err
	}
	return &Validation{
		Coupon:   coupon,
		Discount: calculateDiscount(coupon, params.OrderAmount),
	}, nil
}

// RedeemParams 核销参数
type RedeemParams struct {
	Code         string
	UserID       uint
	OrderID      uint
	RestaurantID uint
	OrderAmount  models.Money
}

// Redeem 独立事务中核销优惠券
func (s *CouponService) Redeem(params RedeemParams) (*models.CouponUsage, error) {
	var usage *models.CouponUsage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		usage, txErr = s.RedeemWithTx(tx, params)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return usage, nil
}

// RedeemWithTx 在外部事务中核销优惠券
//
// 总量限制通过条件更新保证：usage_limit 达到上限时更新不生效，
// 并发请求中只有先行者成功。
func (s *CouponService) RedeemWithTx(tx *gorm.DB, params RedeemParams) (*models.CouponUsage, error) {
	couponRepo := s.couponRepo.WithTx(tx)
	usageRepo := s.usageRepo.WithTx(tx)

	coupon, err := s.findByCodeWith(couponRepo, params.Code)
	if err != nil {
		return nil, err
	}

	checkParams := ValidateParams{
		Code:         params.Code,
		UserID:       params.UserID,
		RestaurantID: params.RestaurantID,
		OrderAmount:  &params.OrderAmount,
	}
	if err := s.checkCoupon(usageRepo, coupon, checkParams); err != nil {
		return nil, err
	}

	updated, err := couponRepo.IncrementUsedCount(coupon.ID)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrCouponUsageLimitReached
	}

	// 事务内复核个人次数，拦截同一用户的并发核销
	perUserLimit := coupon.PerUserLimit
	if perUserLimit < 1 {
		perUserLimit = 1
	}
	used, err := usageRepo.CountByCouponAndUser(coupon.ID, params.UserID)
	if err != nil {
		return nil, err
	}
	if used >= int64(perUserLimit) {
		return nil, ErrCouponPerUserLimitReached
	}

	usage := &models.CouponUsage{
		CouponID:       coupon.ID,
		UserID:         params.UserID,
		OrderID:        params.OrderID,
		DiscountAmount: calculateDiscount(coupon, &params.OrderAmount),
	}
	if err := usageRepo.Create(usage); err != nil {
		return nil, err
	}
	return usage, nil
}

func (s *CouponService) findByCode(code string) (*models.Coupon, error) {
	return s.findByCodeWith(s.couponRepo, code)
}

func (s *CouponService) findByCodeWith(repo repository.CouponRepository, code string) (*models.Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrCouponNotFound
	}
	coupon, err := repo.GetByCode(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return coupon, nil
}

// checkCoupon 校验链，顺序固定：启用、时间窗、总量、个人次数、最低消费、餐厅范围
func (s *CouponService) checkCoupon(usageRepo repository.CouponUsageRepository, coupon *models.Coupon, params ValidateParams) error {
	now := time.Now()
	if !coupon.IsActive {
		return ErrCouponInactive
	}
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return ErrCouponNotStarted
	}
	if coupon.ValidUntil != nil && now.After(*coupon.ValidUntil) {
		return ErrCouponExpired
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return ErrCouponUsageLimitReached
	}

	if params.UserID > 0 {
		perUserLimit := coupon.PerUserLimit
		if perUserLimit < 1 {
			perUserLimit = 1
		}
		used, err := usageRepo.CountByCouponAndUser(coupon.ID, params.UserID)
		if err != nil {
			return err
		}
		if used >= int64(perUserLimit) {
			return ErrCouponPerUserLimitReached
		}
	}

	if params.OrderAmount != nil && coupon.MinOrderAmount.IsPositive() {
		if params.OrderAmount.LessThan(coupon.MinOrderAmount.Decimal) {
			return &CouponMinAmountError{Minimum: coupon.MinOrderAmount}
		}
	}

	if params.RestaurantID > 0 {
		if ids := coupon.ApplicableRestaurantIDs(); len(ids) > 0 {
			eligible := false
			for _, id := range ids {
				if id == params.RestaurantID {
					eligible = true
					break
				}
			}
			if !eligible {
				return ErrCouponRestaurantNotEligible
			}
		}
	}
	return nil
}

// calculateDiscount 计算折扣金额，无订单金额时返回零
func calculateDiscount(coupon *models.Coupon, orderAmount *models.Money) models.Money {
	if orderAmount == nil {
		return models.NewMoneyFromDecimal(decimal.Zero)
	}
	var discount decimal.Decimal
	switch coupon.Type {
	case constants.CouponTypePercentage:
		discount = orderAmount.Mul(coupon.Value.Decimal).Div(decimal.NewFromInt(100))
		if coupon.MaxDiscountAmount.IsPositive() && discount.GreaterThan(coupon.MaxDiscountAmount.Decimal) {
			discount = coupon.MaxDiscountAmount.Decimal
		}
	case constants.CouponTypeFixed:
		discount = coupon.Value.Decimal
	default:
		discount = decimal.Zero
	}
	if discount.GreaterThan(orderAmount.Decimal) {
		discount = orderAmount.Decimal
	}
	return models.NewMoneyFromDecimal(discount.Round(2))
}
