package types

// 消息角色
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message OpenAI chat消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest /v1/chat/completions 请求体
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// ChoiceMessage 响应中的消息，字段缺失或为null时保持nil
type ChoiceMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type ChatChoice struct {
	Index        int            `json:"index"`
	Message      *ChoiceMessage `json:"message"`
	FinishReason string         `json:"finish_reason"`
}

type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse /v1/chat/completions 响应体，只消费 choices[0].message.content
type ChatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   ChatUsage    `json:"usage"`
}

// AssistantReply 构造只含一条回复的响应
func AssistantReply(content string) *ChatResponse {
	return &ChatResponse{Choices: []ChatChoice{{
		Message: &ChoiceMessage{Role: RoleAssistant, Content: &content},
	}}}
}

// ProviderErrorBody 非2xx响应的错误体
type ProviderErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}
