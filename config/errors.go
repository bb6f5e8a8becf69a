package config

import "fmt"

// 错误码
const (
	ErrCodeConfigInvalid   = "CONFIG_INVALID"
	ErrCodeConfigNotFound  = "CONFIG_NOT_FOUND"
	ErrCodeMissingAPIKey   = "MISSING_API_KEY"
	ErrCodeUnknownModel    = "UNKNOWN_MODEL"
	ErrCodeUnknownLanguage = "UNKNOWN_LANGUAGE"
)

// ConfigError 配置错误类型
type ConfigError struct {
	Message string
	Code    string
}

// Error 实现error接口
func (e *ConfigError) Error() string {
	return fmt.Sprintf("配置错误 [%s]: %s", e.Code, e.Message)
}

// NewConfigError 创建指定错误码的配置错误
func NewConfigError(code, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Message: fmt.Sprintf(format, args...),
		Code:    code,
	}
}
