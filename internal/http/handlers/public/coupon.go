package public

import (
	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// ValidateCouponRequest 优惠券校验请求
type ValidateCouponRequest struct {
	Code         string        `json:"code" binding:"required"`
	RestaurantID uint          `json:"restaurant_id"`
	OrderAmount  *models.Money `json:"order_amount"`
}

// ValidateCoupon 校验优惠券并预估折扣
func (h *Handler) ValidateCoupon(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	validation, err := h.CouponService.Validate(service.ValidateParams{
		Code:         req.Code,
		UserID:       uid,
		RestaurantID: req.RestaurantID,
		OrderAmount:  req.OrderAmount,
	})
	if err != nil {
		respondCouponError(c, err)
		return
	}

	response.Success(c, validation)
}
