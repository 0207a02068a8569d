package openai

import (
	"context"

	"github.com/rizome-dev/openaigo/pkg/errors"
	"github.com/rizome-dev/openaigo/pkg/models"
)

// ListModels lists the models available to the account
func (c *Client) ListModels(ctx context.Context) (*models.ModelList, error) {
	resp, err := Get[models.ModelList](ctx, c, c.config.ModelsPath())
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}

// GetModel retrieves a single model by ID
func (c *Client) GetModel(ctx context.Context, id string) (*models.Model, error) {
	if id == "" {
		return nil, &errors.MissingParamError{Request: "GetModel", Field: "id"}
	}

	resp, err := Get[models.Model](ctx, c, c.config.ModelPath(id))
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
