package cmd

import (
	"fmt"
	"io"
	"strings"

	"smarttranslate/config"
	"smarttranslate/host"
	"smarttranslate/translate"
	"smarttranslate/types"

	"github.com/spf13/cobra"
)

type translateFlags struct {
	shift    bool
	option   bool
	model    string
	fromLang string
	toLang   string
}

func newTranslateCommand(a *app) *cobra.Command {
	flags := &translateFlags{}

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text from arguments or stdin",
		Long: `Send the text to the chat completion endpoint and write the answer.

Without modifiers the answer is written to stdout followed by a success mark.
--shift copies the answer to the clipboard instead.
--shift --option writes the answer to stdout without the success mark.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSelection(args, a.stdin)
			if err != nil {
				return err
			}

			opts := a.cfg.Options.Merge(config.Options{
				Model:    flags.model,
				FromLang: flags.fromLang,
				ToLang:   flags.toLang,
			})
			if err := opts.Validate(a.catalog); err != nil {
				return err
			}
			if err := opts.RequireAPIKey(); err != nil {
				return err
			}

			term := host.NewTerminal(types.Modifiers{Shift: flags.shift, Option: flags.option})
			term.Out = a.stdout
			term.Err = a.stderr
			if a.clipboard != nil {
				term.Clipboard = a.clipboard
			}

			action := translate.NewAction(a.client.WithAPIKey(opts.APIKey))
			if _, err := action.Execute(cmd.Context(), types.Input{Text: text}, opts, term); err != nil {
				// 错误已经通过宿主提示过，只返回退出状态
				return errAlreadyReported{err}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.shift, "shift", false, "copy the answer to the clipboard")
	cmd.Flags().BoolVar(&flags.option, "option", false, "with --shift, output the answer without the success mark")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", fmt.Sprintf("model (%s)", strings.Join(config.SupportedModels, ", ")))
	cmd.Flags().StringVar(&flags.fromLang, "from", "", "source language")
	cmd.Flags().StringVar(&flags.toLang, "to", "", "target language")

	return cmd
}

// readSelection 优先使用参数，否则读取stdin
func readSelection(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("读取stdin失败: %w", err)
	}
	return string(data), nil
}

// errAlreadyReported 已展示给用户的错误，main 不再重复打印
type errAlreadyReported struct {
	err error
}

func (e errAlreadyReported) Error() string { return e.err.Error() }
func (e errAlreadyReported) Unwrap() error { return e.err }

// IsReported 判断错误是否已经展示过
func IsReported(err error) bool {
	_, ok := err.(errAlreadyReported)
	return ok
}
