package openai

import (
	"context"

	"github.com/rizome-dev/openaigo/pkg/models"
)

// CreateCompletion creates a text completion for the provided prompt
func (c *Client) CreateCompletion(ctx context.Context, req models.CompletionRequest) (*models.TextResult, error) {
	resp, err := Post[models.TextResult](ctx, c, c.config.CompletionsPath(), req)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
