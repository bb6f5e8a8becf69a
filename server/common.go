package server

import (
	"fmt"

	"smarttranslate/logger"
	"smarttranslate/utils"

	"github.com/gin-gonic/gin"
)

// respondError 统一错误响应
func respondError(c *gin.Context, statusCode int, format string, args ...interface{}) {
	c.JSON(statusCode, gin.H{"error": fmt.Sprintf(format, args...)})
}

// addReqFields 为日志附加请求ID和客户端地址
func addReqFields(c *gin.Context, fields ...logger.Field) []logger.Field {
	out := make([]logger.Field, 0, len(fields)+2)
	if id, ok := c.Get(requestIDKey); ok {
		out = append(out, logger.Any(requestIDKey, id))
	}
	out = append(out, logger.String("remote_addr", c.ClientIP()))
	return append(out, fields...)
}

// extractRelevantHeaders 提取调试用请求头，敏感值脱敏
func extractRelevantHeaders(c *gin.Context) map[string]string {
	relevant := map[string]string{}

	headerKeys := []string{
		"Content-Type",
		"Authorization",
		"X-API-Key",
		"X-Request-ID",
		"User-Agent",
	}

	for _, key := range headerKeys {
		if value := c.GetHeader(key); value != "" {
			if key == "Authorization" || key == "X-API-Key" {
				value = utils.MaskSecret(value)
			}
			relevant[key] = value
		}
	}

	return relevant
}
