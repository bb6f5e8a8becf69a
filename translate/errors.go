package translate

import (
	"errors"
	"fmt"
	"net/http"

	"smarttranslate/config"
	"smarttranslate/provider"
)

// ErrEmptyInput 选中文本去除空白后为空
var ErrEmptyInput = errors.New("translate: selected text is empty")

// ErrorInfo 把失败转换为展示给用户的文本
//
// 上游响应错误格式化为 "Message from OpenAI (code <status>): <message>"，
// 响应体缺少 error.message 时依次回落到原始响应体和状态码描述；
// 其余错误直接使用 err.Error()。
func ErrorInfo(err error) string {
	if err == nil {
		return ""
	}

	perr, ok := provider.AsError(err)
	if !ok {
		return err.Error()
	}

	message := perr.Message
	if message == "" {
		message = perr.Body
	}
	if message == "" {
		message = http.StatusText(perr.StatusCode)
	}
	return fmt.Sprintf("Message from %s (code %d): %s", config.ProviderName, perr.StatusCode, message)
}
