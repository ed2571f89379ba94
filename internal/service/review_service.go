package service

import (
	"errors"

	"github.com/yemeknerede/internal/geo"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/queue"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// ReviewService 评价服务
type ReviewService struct {
	db             *gorm.DB
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	queueClient    *queue.Client
}

// NewReviewService 创建评价服务
func NewReviewService(db *gorm.DB, reviewRepo repository.ReviewRepository, restaurantRepo repository.RestaurantRepository, queueClient *queue.Client) *ReviewService {
	return &ReviewService{db: db, reviewRepo: reviewRepo, restaurantRepo: restaurantRepo, queueClient: queueClient}
}

// CreateParams 评价创建参数
type CreateReviewParams struct {
	RestaurantID uint
	UserID       uint
	OrderID      uint
	Rating       int
	Comment      string
}

// Create 提交评价并同步重算餐厅评分
func (s *ReviewService) Create(params CreateReviewParams) (*models.Review, error) {
	if params.Rating < 1 || params.Rating > 5 {
		return nil, ErrReviewRatingInvalid
	}
	if _, err := s.restaurantRepo.GetByID(params.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	review := &models.Review{
		RestaurantID: params.RestaurantID,
		UserID:       params.UserID,
		OrderID:      params.OrderID,
		Rating:       params.Rating,
		Comment:      params.Comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		reviewRepo := s.reviewRepo.WithTx(tx)
		restaurantRepo := s.restaurantRepo.WithTx(tx)

		if err := reviewRepo.Create(review); err != nil {
			return err
		}
		return recalcRating(reviewRepo, restaurantRepo, params.RestaurantID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListForRestaurant 查询餐厅评价
func (s *ReviewService) ListForRestaurant(restaurantID uint, page, pageSize int) ([]models.Review, int64, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrRestaurantNotFound
		}
		return nil, 0, err
	}
	return s.reviewRepo.List(repository.ReviewListFilter{RestaurantID: restaurantID}, page, pageSize)
}

// ListForUser 查询用户评价
func (s *ReviewService) ListForUser(userID uint, page, pageSize int) ([]models.Review, int64, error) {
	return s.reviewRepo.List(repository.ReviewListFilter{UserID: userID}, page, pageSize)
}

// RecalcRating 重算餐厅评分，供补偿任务使用
func (s *ReviewService) RecalcRating(restaurantID uint) error {
	return recalcRating(s.reviewRepo, s.restaurantRepo, restaurantID)
}

// RequestRatingRecalc 触发餐厅评分重算，队列不可用时同步执行
func (s *ReviewService) RequestRatingRecalc(restaurantID uint) error {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantNotFound
		}
		return err
	}
	if s.queueClient.Enabled() {
		return s.queueClient.EnqueueRestaurantRatingRecalc(queue.RestaurantRatingRecalcPayload{RestaurantID: restaurantID})
	}
	return s.RecalcRating(restaurantID)
}

// recalcRating 评分取均值保留 1 位小数，无评价时归零
func recalcRating(reviewRepo repository.ReviewRepository, restaurantRepo repository.RestaurantRepository, restaurantID uint) error {
	avg, count, err := reviewRepo.AggregateByRestaurant(restaurantID)
	if err != nil {
		return err
	}
	rating := 0.0
	if count > 0 {
		rating = geo.Round1(avg)
	}
	return restaurantRepo.UpdateRatingStats(restaurantID, rating, count)
}
