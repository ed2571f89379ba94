package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// MenuItemRequest 菜单项创建/更新请求
type MenuItemRequest struct {
	RestaurantID uint         `json:"restaurant_id" binding:"required"`
	Name         string       `json:"name" binding:"required"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Price        models.Money `json:"price"`
	Image        string       `json:"image"`
	IsAvailable  bool         `json:"is_available"`
	IsPopular    bool         `json:"is_popular"`
	SortOrder    int          `json:"sort_order"`
}

func (r MenuItemRequest) toParams() service.MenuItemParams {
	return service.MenuItemParams{
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		Price:        r.Price,
		Image:        r.Image,
		IsAvailable:  r.IsAvailable,
		IsPopular:    r.IsPopular,
		SortOrder:    r.SortOrder,
	}
}

// GetAdminMenuItems 获取菜单项列表 (Admin)
func (h *Handler) GetAdminMenuItems(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Query("restaurant_id"), 10, 64)
	if err != nil || restaurantID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	category := strings.TrimSpace(c.Query("category"))
	items, listErr := h.MenuService.ListForRestaurant(uint(restaurantID), category, false)
	if listErr != nil {
		if errors.Is(listErr, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", listErr)
		return
	}

	response.Success(c, items)
}

// GetAdminMenuItem 获取菜单项详情 (Admin)
func (h *Handler) GetAdminMenuItem(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	item, err := h.MenuService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			respondError(c, response.CodeNotFound, "error.menu_item_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}

	response.Success(c, item)
}

// CreateMenuItem 创建菜单项
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.MenuService.Create(req.toParams())
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.menu_item_create_failed", err)
		return
	}

	response.Success(c, item)
}

// UpdateMenuItem 更新菜单项
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.MenuService.Update(id, req.toParams())
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			respondError(c, response.CodeNotFound, "error.menu_item_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.menu_item_update_failed", err)
		return
	}

	response.Success(c, item)
}

// DeleteMenuItem 删除菜单项
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.MenuService.Delete(id); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			respondError(c, response.CodeNotFound, "error.menu_item_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.menu_item_delete_failed", err)
		return
	}

	response.Success(c, nil)
}
