// Package provider 封装对 OpenAI chat completions 端点的单次调用。
package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smarttranslate/config"
	"smarttranslate/logger"
	"smarttranslate/types"
	"smarttranslate/utils"

	"github.com/go-resty/resty/v2"
)

// ClientConfig 客户端配置
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client OpenAI兼容的chat补全客户端，可并发使用
type Client struct {
	baseURL string
	apiKey  string
	http    *resty.Client
}

// NewClient 创建客户端，空字段使用默认值
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	rc := resty.New().
		SetTransport(utils.NewTransport()).
		SetTimeout(timeout).
		SetBaseURL(baseURL).
		SetJSONMarshaler(utils.FastMarshal).
		SetJSONUnmarshaler(utils.SafeUnmarshal).
		SetHeader("Content-Type", "application/json")

	return &Client{baseURL: baseURL, apiKey: cfg.APIKey, http: rc}
}

// WithAPIKey 返回使用另一个API Key的浅拷贝，共享底层连接池
func (c *Client) WithAPIKey(apiKey string) *Client {
	clone := *c
	clone.apiKey = apiKey
	return &clone
}

// BaseURL 当前请求的API主机
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Complete 发送一次chat补全请求
// 非2xx返回 *Error，网络错误原样包装，响应缺少 choices[0].message.content 时返回 ErrNoChoices 或 ErrNoContent
func (c *Client) Complete(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(req).
		Post(config.ChatCompletionsPath)
	if err != nil {
		return nil, fmt.Errorf("provider: request: %w", err)
	}

	logger.Debug("收到上游响应",
		logger.Int("status_code", resp.StatusCode()),
		logger.String("model", req.Model),
		logger.Int("body_size", len(resp.Body())),
		logger.Duration("elapsed", time.Since(start)))

	if !resp.IsSuccess() {
		return nil, newError(resp.StatusCode(), resp.Body())
	}

	var chat types.ChatResponse
	if err := utils.SafeUnmarshal(resp.Body(), &chat); err != nil {
		return nil, fmt.Errorf("provider: decode response: %w", err)
	}
	if _, err := ReplyText(&chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func newError(status int, body []byte) *Error {
	perr := &Error{StatusCode: status, Body: strings.TrimSpace(string(body))}

	var errBody types.ProviderErrorBody
	if err := utils.SafeUnmarshal(body, &errBody); err == nil {
		perr.Message = errBody.Error.Message
		perr.Type = errBody.Error.Type
	}
	return perr
}
