package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yemeknerede/internal/http/response"
	"github.com/yemeknerede/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCollections 获取精选合集列表
func (h *Handler) GetCollections(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	collections, total, err := h.CollectionService.ListPublic(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.collection_fetch_failed", err)
		return
	}

	pagination := response.NewPagination(page, pageSize, total)
	response.SuccessWithPage(c, collections, pagination)
}

// GetCollectionBySlug 按 slug 获取合集详情（含餐厅）
func (h *Handler) GetCollectionBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	view, err := h.CollectionService.GetPublic(slug)
	if err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			respondError(c, response.CodeNotFound, "error.collection_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.collection_fetch_failed", err)
		return
	}

	response.Success(c, view)
}
