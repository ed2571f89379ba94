package i18n

import (
	"fmt"
	"strings"

	"github.com/yemeknerede/internal/constants"

	"github.com/gin-gonic/gin"
)

const localeQueryKey = "locale"
const localeHeaderKey = "Accept-Language"

// ResolveLocale 解析请求语言
// 优先级：query 参数 > Accept-Language 头 > 默认语言。
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocaleTrTR
	}
	if raw := strings.TrimSpace(c.Query(localeQueryKey)); raw != "" {
		if locale := matchLocale(raw); locale != "" {
			return locale
		}
	}
	header := c.GetHeader(localeHeaderKey)
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := matchLocale(tag); locale != "" {
			return locale
		}
	}
	return constants.LocaleTrTR
}

// T 获取指定语言的消息文案
func T(locale, key string) string {
	if messages, ok := catalogs[normalizeLocale(locale)]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[constants.LocaleTrTR][key]; ok {
		return msg
	}
	return key
}

// Sprintf 获取带格式化参数的消息文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(locale string) string {
	if matched := matchLocale(locale); matched != "" {
		return matched
	}
	return constants.LocaleTrTR
}

func matchLocale(tag string) string {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "" {
		return ""
	}
	for _, supported := range constants.SupportedLocales {
		if strings.EqualFold(supported, normalized) {
			return supported
		}
	}
	// 仅语言前缀匹配（tr -> tr-TR）
	prefix := strings.SplitN(normalized, "-", 2)[0]
	for _, supported := range constants.SupportedLocales {
		if strings.HasPrefix(strings.ToLower(supported), prefix) {
			return supported
		}
	}
	return ""
}
