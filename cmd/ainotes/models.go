package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ainotes/internal/adapter/provider/gemini"
)

func newModelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List Gemini models that support text generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}

			models, err := gemini.NewClient(cfg.Gemini, logger).ListModels(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}
