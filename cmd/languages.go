package cmd

import (
	"fmt"

	"smarttranslate/config"

	"github.com/spf13/cobra"
)

func newLanguagesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List selectable language names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.catalog.Names() {
				fmt.Fprintln(a.stdout, name)
			}
			return nil
		},
	}
}

func newModelsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List selectable models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := a.cfg.Options.ModelOrDefault()
			for _, id := range config.SupportedModels {
				marker := " "
				if id == current {
					marker = "*"
				}
				fmt.Fprintf(a.stdout, "%s %s\n", marker, id)
			}
			return nil
		},
	}
}
