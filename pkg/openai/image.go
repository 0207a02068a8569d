package openai

import (
	"context"

	"github.com/rizome-dev/openaigo/pkg/models"
)

// CreateImage generates images from a prompt
func (c *Client) CreateImage(ctx context.Context, req models.CreateImageRequest) (*models.ImageResult, error) {
	resp, err := Post[models.ImageResult](ctx, c, c.config.ImageGenerationsPath(), req)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
