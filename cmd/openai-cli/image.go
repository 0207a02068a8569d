package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rizome-dev/openaigo/pkg/models"
)

func imageCmd(a *app) *cobra.Command {
	var (
		n      int
		size   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "image <prompt...>",
		Short: "Generate images from a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := models.NewCreateImageRequestBuilder().Prompt(strings.Join(args, " "))

			if cmd.Flags().Changed("count") {
				b.N(n)
			}
			if size != "" {
				b.Size(models.ImageSize(size))
			}
			if format != "" {
				b.ResponseFormat(models.ImageResponseFormat(format))
			}

			req, err := b.Build()
			if err != nil {
				return err
			}

			result, err := a.client.CreateImage(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 0, "number of images (n)")
	cmd.Flags().StringVar(&size, "size", "", "256x256, 512x512 or 1024x1024")
	cmd.Flags().StringVar(&format, "format", "", "url or b64_json")

	return cmd
}
