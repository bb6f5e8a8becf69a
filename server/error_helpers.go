package server

import (
	"errors"
	"net/http"

	"smarttranslate/config"
	"smarttranslate/logger"
	"smarttranslate/translate"

	"github.com/gin-gonic/gin"
)

// handleParseError 处理请求体解析错误
func handleParseError(c *gin.Context, err error) {
	logger.Warn("解析请求体失败", addReqFields(c, logger.Err(err))...)
	respondError(c, http.StatusBadRequest, "解析请求体失败: %v", err)
}

// handleOptionsError 处理选项校验失败
func handleOptionsError(c *gin.Context, err error) {
	logger.Warn("选项校验失败", addReqFields(c, logger.Err(err))...)
	status := http.StatusBadRequest
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Code == config.ErrCodeMissingAPIKey {
		status = http.StatusServiceUnavailable
	}
	respondError(c, status, "%v", err)
}

// translateFailureStatus 空文本为400，其余上游或网络失败为502
func translateFailureStatus(err error) int {
	if errors.Is(err, translate.ErrEmptyInput) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
