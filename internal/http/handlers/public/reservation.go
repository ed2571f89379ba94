package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReservationRequest 创建预订请求
type CreateReservationRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	TimeSlot     string `json:"time_slot" binding:"required"`
	PartySize    int    `json:"party_size" binding:"required"`
	Note         string `json:"note"`
}

// CreateReservation 创建预订
func (h *Handler) CreateReservation(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	reservation, err := h.ReservationService.Create(service.CreateReservationParams{
		RestaurantID: req.RestaurantID,
		UserID:       uid,
		Date:         strings.TrimSpace(req.Date),
		TimeSlot:     strings.TrimSpace(req.TimeSlot),
		PartySize:    req.PartySize,
		Note:         req.Note,
	})
	if err != nil {
		respondReservationCreateError(c, err)
		return
	}

	response.Success(c, reservation)
}

// GetReservationAvailability 查询餐厅某日可预订时段
func (h *Handler) GetReservationAvailability(c *gin.Context) {
	restaurantID, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	date := strings.TrimSpace(c.Query("date"))
	slots, err := h.ReservationService.Availability(restaurantID, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
		case errors.Is(err, service.ErrReservationSlotInvalid):
			respondError(c, response.CodeBadRequest, "error.reservation_slot_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.reservation_fetch_failed", err)
		}
		return
	}

	response.Success(c, slots)
}

// ListReservations 获取预订列表
func (h *Handler) ListReservations(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	reservations, total, err := h.ReservationService.ListForUser(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.reservation_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, reservations, pagination)
}

// GetReservation 获取预订详情
func (h *Handler) GetReservation(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	reservation, err := h.ReservationService.GetForUser(id, uid)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			respondError(c, response.CodeNotFound, "error.reservation_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.reservation_fetch_failed", err)
		return
	}

	response.Success(c, reservation)
}

// CancelReservation 用户取消预订
func (h *Handler) CancelReservation(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	reservation, err := h.ReservationService.CancelForUser(id, uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			respondError(c, response.CodeNotFound, "error.reservation_not_found", nil)
		case errors.Is(err, service.ErrReservationStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.reservation_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.reservation_cancel_failed", err)
		}
		return
	}

	response.Success(c, reservation)
}
