package host

import (
	"fmt"
	"io"
	"os"

	"smarttranslate/logger"
	"smarttranslate/types"

	"github.com/atotto/clipboard"
)

// Terminal 命令行宿主：粘贴写stdout，复制写系统剪贴板，提示写stderr
type Terminal struct {
	Out  io.Writer
	Err  io.Writer
	Mods types.Modifiers
	// Clipboard 写剪贴板，默认 clipboard.WriteAll
	Clipboard func(text string) error
}

// NewTerminal 使用进程标准输出创建命令行宿主
func NewTerminal(mods types.Modifiers) *Terminal {
	return &Terminal{
		Out:       os.Stdout,
		Err:       os.Stderr,
		Mods:      mods,
		Clipboard: clipboard.WriteAll,
	}
}

func (t *Terminal) Modifiers() types.Modifiers {
	return t.Mods
}

func (t *Terminal) PasteText(text string) {
	fmt.Fprintln(t.Out, text)
}

// CopyText 剪贴板不可用时（如无图形环境）把结果打印到stderr
func (t *Terminal) CopyText(text string) {
	write := t.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	if err := write(text); err != nil {
		logger.Warn("写入剪贴板失败", logger.Err(err))
		fmt.Fprintln(t.Err, text)
		return
	}
	fmt.Fprintln(t.Err, "已复制到剪贴板")
}

func (t *Terminal) ShowSuccess() {
	fmt.Fprintln(t.Err, "✓")
}

func (t *Terminal) ShowText(text string) {
	fmt.Fprintln(t.Err, text)
}
