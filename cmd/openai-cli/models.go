package main

import (
	"github.com/spf13/cobra"
)

func modelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List and describe available models",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.client.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), list)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <model-id>",
		Short: "Describe a single model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.client.GetModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), model)
		},
	})

	return cmd
}
