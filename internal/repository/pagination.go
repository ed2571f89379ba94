package repository

import (
	"strings"

	"gorm.io/gorm"
)

// applyPagination 统一分页处理
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return query.Offset(offset).Limit(pageSize)
}

// lowerLike 小写化 LIKE 参数，与 LOWER(column) 搭配实现不区分大小写匹配
func lowerLike(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
