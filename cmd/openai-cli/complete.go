package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rizome-dev/openaigo/pkg/models"
)

func completeCmd(a *app) *cobra.Command {
	var (
		model       string
		suffix      string
		maxTokens   int
		temperature float64
		n           int
		stop        []string
		echo        bool
	)

	cmd := &cobra.Command{
		Use:   "complete <prompt...>",
		Short: "Create a text completion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := models.NewCompletionRequestBuilder().
				Model(model).
				Prompt(strings.Join(args, " "))

			flags := cmd.Flags()
			if flags.Changed("suffix") {
				b.Suffix(suffix)
			}
			if flags.Changed("max-tokens") {
				b.MaxTokens(maxTokens)
			}
			if flags.Changed("temperature") {
				b.Temperature(temperature)
			}
			if flags.Changed("count") {
				b.N(n)
			}
			if flags.Changed("echo") {
				b.Echo(echo)
			}
			if len(stop) == 1 {
				b.Stop(stop[0])
			} else if len(stop) > 1 {
				b.StopList(stop...)
			}

			req, err := b.Build()
			if err != nil {
				return err
			}

			result, err := a.client.CreateCompletion(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "text-davinci-003", "model ID")
	cmd.Flags().StringVar(&suffix, "suffix", "", "text that comes after the completion")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "maximum tokens to generate")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "sampling temperature (0-2)")
	cmd.Flags().IntVarP(&n, "count", "n", 0, "number of completions (n)")
	cmd.Flags().StringArrayVar(&stop, "stop", nil, "stop sequence, repeatable")
	cmd.Flags().BoolVar(&echo, "echo", false, "echo back the prompt")

	return cmd
}
