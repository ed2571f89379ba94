package admin

import (
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/models"

	"github.com/gin-gonic/gin"
)

// GetSetting 获取站点设置
func (h *Handler) GetSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	value, err := h.SettingService.Get(key)
	if err != nil {
		respondError(c, response.CodeInternal, "error.setting_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"key": key, "value": value})
}

// UpdateSetting 更新站点设置
func (h *Handler) UpdateSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var value models.JSON
	if err := c.ShouldBindJSON(&value); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.SettingService.Set(key, value); err != nil {
		respondError(c, response.CodeInternal, "error.setting_update_failed", err)
		return
	}

	response.Success(c, gin.H{"key": key, "value": value})
}
