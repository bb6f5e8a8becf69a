package config

import "time"

// 服务商常量
const (
	// ProviderName 错误提示中使用的服务商名称
	ProviderName = "OpenAI"

	// DefaultBaseURL OpenAI API 主机
	DefaultBaseURL = "https://api.openai.com"

	// ChatCompletionsPath chat补全端点路径
	ChatCompletionsPath = "/v1/chat/completions"
)

// 选项默认值
const (
	DefaultModel    = "gpt-4o"
	DefaultFromLang = "Chinese"
	DefaultToLang   = "English"
)

// SupportedModels 可选模型，顺序即展示顺序
var SupportedModels = []string{"gpt-3.5-turbo", "gpt-4", "gpt-4-turbo", "gpt-4o"}

// 超时配置
const (
	// DefaultRequestTimeout 单次翻译请求超时
	DefaultRequestTimeout = 2 * time.Minute

	// ServerReadTimeout 服务器读取超时
	ServerReadTimeout = 30 * time.Second

	// ServerWriteTimeout 服务器写入超时，需覆盖上游请求时间
	ServerWriteTimeout = DefaultRequestTimeout + 30*time.Second

	// ServerIdleTimeout 服务器空闲连接超时
	ServerIdleTimeout = 120 * time.Second

	// MaxHeaderBytes HTTP请求头最大字节数
	MaxHeaderBytes = 1 << 20
)

// DefaultPort 默认监听端口
const DefaultPort = "8080"

// LogPreviewMaxLength 日志中文本预览的最大长度
const LogPreviewMaxLength = 100
