// Package cmd 定义 smarttranslate 命令行。
package cmd

import (
	"context"
	"io"

	"smarttranslate/config"
	"smarttranslate/languages"
	"smarttranslate/provider"

	"github.com/spf13/cobra"
)

// Version 构建时通过 -ldflags 注入
var Version = "dev"

type rootFlags struct {
	configPath string
}

// app 一次命令执行所需的共享依赖
type app struct {
	cfg     config.Config
	catalog *languages.Catalog
	client  *provider.Client
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer

	// clipboard 为空时使用系统剪贴板
	clipboard func(text string) error
}

// NewRootCommand 创建根命令
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "smarttranslate",
		Short:         "Translate or polish selected text with OpenAI chat models",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.catalog = languages.Default()
			a.client = provider.NewClient(provider.ClientConfig{
				BaseURL: cfg.BaseURL,
				APIKey:  cfg.Options.APIKey,
				Timeout: cfg.Timeout,
			})
			a.stdin = cmd.InOrStdin()
			a.stdout = cmd.OutOrStdout()
			a.stderr = cmd.ErrOrStderr()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to YAML config file (env SMARTTRANSLATE_CONFIG)")

	root.AddCommand(newTranslateCommand(a))
	root.AddCommand(newLanguagesCommand(a))
	root.AddCommand(newModelsCommand(a))
	root.AddCommand(newServeCommand(a))

	return root
}

// Execute 运行根命令
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
