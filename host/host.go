// Package host 定义翻译动作依赖的宿主能力及其实现。
package host

import "smarttranslate/types"

// Host 宿主运行时提供的输入输出原语
type Host interface {
	// Modifiers 在请求完成时采样修饰键
	Modifiers() types.Modifiers
	PasteText(text string)
	CopyText(text string)
	ShowSuccess()
	ShowText(text string)
}
