package public

import (
	"errors"
	"strconv"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	OrderID      uint   `json:"order_id"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
}

// GetRestaurantReviews 获取餐厅评价列表
func (h *Handler) GetRestaurantReviews(c *gin.Context) {
	restaurantID, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	reviews, total, err := h.ReviewService.ListForRestaurant(restaurantID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.review_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, reviews, pagination)
}

// ListMyReviews 获取当前用户的评价列表
func (h *Handler) ListMyReviews(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	reviews, total, err := h.ReviewService.ListForUser(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.review_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, reviews, pagination)
}

// CreateReview 创建评价
func (h *Handler) CreateReview(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	review, err := h.ReviewService.Create(service.CreateReviewParams{
		RestaurantID: req.RestaurantID,
		UserID:       uid,
		OrderID:      req.OrderID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewRatingInvalid):
			respondError(c, response.CodeBadRequest, "error.review_rating_invalid", nil)
		case errors.Is(err, service.ErrRestaurantNotFound):
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.review_create_failed", err)
		}
		return
	}

	response.Success(c, review)
}
