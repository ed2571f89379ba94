package public

import (
	"errors"
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// GetActiveCampaigns 获取进行中的活动
func (h *Handler) GetActiveCampaigns(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	campaigns, err := h.CampaignService.Active(city)
	if err != nil {
		respondError(c, response.CodeInternal, "error.campaign_fetch_failed", err)
		return
	}

	response.Success(c, campaigns)
}

// GetHomepageCampaigns 获取首页活动位
func (h *Handler) GetHomepageCampaigns(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	campaigns, err := h.CampaignService.Homepage(city)
	if err != nil {
		respondError(c, response.CodeInternal, "error.campaign_fetch_failed", err)
		return
	}

	response.Success(c, campaigns)
}

// GetCampaign 获取活动详情
func (h *Handler) GetCampaign(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	campaign, err := h.CampaignService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.campaign_fetch_failed", err)
		return
	}

	response.Success(c, campaign)
}

// ClickCampaign 上报活动点击
func (h *Handler) ClickCampaign(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.CampaignService.Click(id); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.campaign_click_failed", err)
		return
	}

	response.Success(c, nil)
}
