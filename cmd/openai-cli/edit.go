package main

import (
	"github.com/spf13/cobra"

	"github.com/rizome-dev/openaigo/pkg/models"
)

func editCmd(a *app) *cobra.Command {
	var (
		model       string
		input       string
		instruction string
		n           int
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit input text following an instruction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := models.NewEditRequestBuilder().
				Model(model).
				Instruction(instruction)

			if cmd.Flags().Changed("input") {
				b.Input(input)
			}
			if cmd.Flags().Changed("count") {
				b.N(n)
			}

			req, err := b.Build()
			if err != nil {
				return err
			}

			result, err := a.client.CreateEdit(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "text-davinci-edit-001", "model ID")
	cmd.Flags().StringVar(&input, "input", "", "text to edit")
	cmd.Flags().StringVar(&instruction, "instruction", "", "how the model should edit the input")
	cmd.Flags().IntVarP(&n, "count", "n", 0, "number of edits (n)")

	return cmd
}
