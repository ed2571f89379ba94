package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/repository"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateReservationStatusRequest 更新预订状态请求
type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminListReservations 获取预订列表 (Admin)
func (h *Handler) AdminListReservations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ReservationListFilter{
		Date:   strings.TrimSpace(c.Query("date")),
		Status: strings.TrimSpace(c.Query("status")),
	}
	if raw := strings.TrimSpace(c.Query("restaurant_id")); raw != "" {
		if restaurantID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.RestaurantID = uint(restaurantID)
		}
	}

	reservations, total, err := h.ReservationService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.reservation_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, reservations, pagination)
}

// AdminUpdateReservationStatus 更新预订状态 (Admin)
func (h *Handler) AdminUpdateReservationStatus(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	reservation, err := h.ReservationService.UpdateStatus(id, strings.TrimSpace(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			respondError(c, response.CodeNotFound, "error.reservation_not_found", nil)
		case errors.Is(err, service.ErrReservationStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.reservation_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.reservation_update_failed", err)
		}
		return
	}

	response.Success(c, reservation)
}
