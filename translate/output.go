package translate

import "smarttranslate/types"

// OutputMode 结果的输出方式
type OutputMode int

const (
	// PasteAndNotify 粘贴并提示成功（无修饰键）
	PasteAndNotify OutputMode = iota
	// PasteOnly 只粘贴（shift+option）
	PasteOnly
	// CopyOnly 只复制到剪贴板（shift）
	CopyOnly
)

func (m OutputMode) String() string {
	switch m {
	case PasteAndNotify:
		return "paste_and_notify"
	case PasteOnly:
		return "paste_only"
	case CopyOnly:
		return "copy_only"
	default:
		return "unknown"
	}
}

// SelectOutput 根据修饰键选择输出方式，单独按 option 等同于无修饰键
func SelectOutput(mods types.Modifiers) OutputMode {
	switch {
	case mods.Shift && mods.Option:
		return PasteOnly
	case mods.Shift:
		return CopyOnly
	default:
		return PasteAndNotify
	}
}
