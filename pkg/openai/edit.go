package openai

import (
	"context"

	"github.com/rizome-dev/openaigo/pkg/models"
)

// CreateEdit returns an edited version of the input following the instruction
func (c *Client) CreateEdit(ctx context.Context, req models.EditRequest) (*models.TextResult, error) {
	resp, err := Post[models.TextResult](ctx, c, c.config.EditsPath(), req)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
