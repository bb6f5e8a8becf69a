package provider

import (
	"errors"
	"fmt"
	"net/http"

	"smarttranslate/types"
)

// ErrNoChoices 2xx响应中没有任何choice
var ErrNoChoices = errors.New("provider: response contained no choices")

// ErrNoContent choices[0] 缺少 message 或 message.content
var ErrNoContent = errors.New("provider: response choice has no message content")

// Error 上游返回的非2xx响应
type Error struct {
	StatusCode int
	// Message 取自 error.message，响应体不符合预期时为空
	Message string
	Type    string
	Body    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider: status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ReplyText 取出 choices[0].message.content，形状不符时返回 ErrNoChoices 或 ErrNoContent
func ReplyText(resp *types.ChatResponse) (string, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	msg := resp.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return "", ErrNoContent
	}
	return *msg.Content, nil
}

// IsUnexpectedShape 2xx响应缺少需要的字段
func IsUnexpectedShape(err error) bool {
	return errors.Is(err, ErrNoChoices) || errors.Is(err, ErrNoContent)
}

// AsError 提取错误链中的 *Error
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
