package translate

import (
	"fmt"
	"strings"

	"smarttranslate/config"
	"smarttranslate/types"
)

const promptTemplate = "You will be provided with statements, if it’s an %[2]s statement, your task is to convert them to standard %[2]s, if it’s a %[1]s statement, your task is to translate them into standard %[2]s."

// BuildPrompt 生成系统指令，语言名称原样嵌入
func BuildPrompt(fromLang, toLang string) string {
	return fmt.Sprintf(promptTemplate, fromLang, toLang)
}

// BuildRequest 构造请求体：系统消息为指令，用户消息为去除首尾空白的选中文本
func BuildRequest(input types.Input, opts config.Options) types.ChatRequest {
	return types.ChatRequest{
		Model: opts.ModelOrDefault(),
		Messages: []types.Message{
			{Role: types.RoleSystem, Content: BuildPrompt(opts.FromLang, opts.ToLang)},
			{Role: types.RoleUser, Content: strings.TrimSpace(input.Text)},
		},
	}
}
