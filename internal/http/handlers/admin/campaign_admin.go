package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/repository"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// CampaignRequest 活动创建/更新请求
type CampaignRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	Image            string     `json:"image"`
	CampaignType     string     `json:"campaign_type"`
	CouponCode       string     `json:"coupon_code"`
	TargetURL        string     `json:"target_url"`
	Priority         int        `json:"priority"`
	ShowOnHomepage   bool       `json:"show_on_homepage"`
	ApplicableCities []string   `json:"applicable_cities"`
	StartsAt         *time.Time `json:"starts_at"`
	EndsAt           *time.Time `json:"ends_at"`
	IsActive         bool       `json:"is_active"`
}

func (r CampaignRequest) toParams() service.CampaignParams {
	return service.CampaignParams{
		Title:            r.Title,
		Description:      r.Description,
		Image:            r.Image,
		CampaignType:     r.CampaignType,
		CouponCode:       r.CouponCode,
		TargetURL:        r.TargetURL,
		Priority:         r.Priority,
		ShowOnHomepage:   r.ShowOnHomepage,
		ApplicableCities: r.ApplicableCities,
		StartsAt:         r.StartsAt,
		EndsAt:           r.EndsAt,
		IsActive:         r.IsActive,
	}
}

// GetAdminCampaigns 获取活动列表 (Admin)
func (h *Handler) GetAdminCampaigns(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CampaignListFilter{
		CampaignType: strings.TrimSpace(c.Query("campaign_type")),
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		if isActive, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &isActive
		}
	}
	if raw := strings.TrimSpace(c.Query("show_on_homepage")); raw != "" {
		if onHomepage, err := strconv.ParseBool(raw); err == nil {
			filter.ShowOnHomepage = &onHomepage
		}
	}

	campaigns, total, err := h.CampaignService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.campaign_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, campaigns, pagination)
}

// CreateCampaign 创建活动
func (h *Handler) CreateCampaign(c *gin.Context) {
	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	campaign, err := h.CampaignService.Create(req.toParams())
	if err != nil {
		respondError(c, response.CodeInternal, "error.campaign_create_failed", err)
		return
	}

	response.Success(c, campaign)
}

// UpdateCampaign 更新活动
func (h *Handler) UpdateCampaign(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	campaign, err := h.CampaignService.Update(id, req.toParams())
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.campaign_update_failed", err)
		return
	}

	response.Success(c, campaign)
}

// DeleteCampaign 删除活动
func (h *Handler) DeleteCampaign(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.CampaignService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.campaign_delete_failed", err)
		return
	}

	response.Success(c, nil)
}
