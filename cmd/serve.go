package cmd

import (
	"smarttranslate/logger"
	"smarttranslate/server"
	"smarttranslate/translate"
	"smarttranslate/utils"

	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translate action over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.cfg.Port
			}
			if err := a.cfg.Options.Validate(a.catalog); err != nil {
				return err
			}
			if a.cfg.Options.APIKey == "" {
				logger.Warn("未配置API Key，/v1/translate 将返回503")
			} else {
				logger.Info("使用API Key", logger.String("api_key", utils.MaskSecret(a.cfg.Options.APIKey)))
			}

			return server.StartServer(cmd.Context(), port, server.Dependencies{
				Action:      translate.NewAction(a.client),
				Options:     a.cfg.Options,
				Catalog:     a.catalog,
				ClientToken: a.cfg.ClientToken,
			})
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (env PORT, default 8080)")
	return cmd
}
