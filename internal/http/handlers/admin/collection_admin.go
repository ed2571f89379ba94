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

// CollectionRequest 合集创建/更新请求
type CollectionRequest struct {
	Slug          string `json:"slug"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	SortOrder     int    `json:"sort_order"`
	IsActive      bool   `json:"is_active"`
	RestaurantIDs []uint `json:"restaurant_ids"`
}

func (r CollectionRequest) toParams() service.CollectionParams {
	return service.CollectionParams{
		Slug:          r.Slug,
		Title:         r.Title,
		Description:   r.Description,
		Image:         r.Image,
		SortOrder:     r.SortOrder,
		IsActive:      r.IsActive,
		RestaurantIDs: r.RestaurantIDs,
	}
}

// GetAdminCollections 获取合集列表 (Admin)
func (h *Handler) GetAdminCollections(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CollectionListFilter{}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		if isActive, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &isActive
		}
	}

	collections, total, err := h.CollectionService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.collection_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, collections, pagination)
}

// GetAdminCollection 获取合集详情 (Admin)
func (h *Handler) GetAdminCollection(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	collection, err := h.CollectionService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			respondError(c, response.CodeNotFound, "error.collection_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.collection_fetch_failed", err)
		return
	}

	response.Success(c, collection)
}

// CreateCollection 创建合集
func (h *Handler) CreateCollection(c *gin.Context) {
	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	collection, err := h.CollectionService.Create(req.toParams())
	if err != nil {
		if errors.Is(err, service.ErrCollectionSlugTaken) {
			respondError(c, response.CodeBadRequest, "error.collection_slug_taken", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.collection_create_failed", err)
		return
	}

	response.Success(c, collection)
}

// UpdateCollection 更新合集
func (h *Handler) UpdateCollection(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	collection, err := h.CollectionService.Update(id, req.toParams())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCollectionNotFound):
			respondError(c, response.CodeNotFound, "error.collection_not_found", nil)
		case errors.Is(err, service.ErrCollectionSlugTaken):
			respondError(c, response.CodeBadRequest, "error.collection_slug_taken", nil)
		default:
			respondError(c, response.CodeInternal, "error.collection_update_failed", err)
		}
		return
	}

	response.Success(c, collection)
}

// DeleteCollection 删除合集
func (h *Handler) DeleteCollection(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.CollectionService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			respondError(c, response.CodeNotFound, "error.collection_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.collection_delete_failed", err)
		return
	}

	response.Success(c, nil)
}
