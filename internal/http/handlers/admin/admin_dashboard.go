package admin

import (
	"github.com/yemeknerede/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardSummary 获取运营概览
func (h *Handler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.DashboardService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.dashboard_fetch_failed", err)
		return
	}

	response.Success(c, summary)
}
