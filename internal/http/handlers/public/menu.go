package public

import (
	"errors"
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// GetRestaurantMenu 获取餐厅菜单
func (h *Handler) GetRestaurantMenu(c *gin.Context) {
	restaurantID, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	category := strings.TrimSpace(c.Query("category"))
	items, err := h.MenuService.ListForRestaurant(restaurantID, category, true)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			respondError(c, response.CodeNotFound, "error.restaurant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}

	response.Success(c, items)
}
