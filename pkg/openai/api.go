// Package openai is a client for the OpenAI models, completions, edits and
// image generation endpoints.
//
//	client := openai.NewClient(openai.NewConfig("<ACCESS_TOKEN>"))
//
//	req, err := models.NewEditRequestBuilder().
//		Model("text-davinci-edit-001").
//		Input("What day of the wek is it?").
//		Instruction("Fix the spelling mistakes").
//		Build()
//	if err != nil {
//		return err
//	}
//
//	result, err := client.CreateEdit(ctx, req)
//
// Every call returns either the decoded payload or one typed error from
// package errors. Nothing is retried.
package openai

import (
	"context"

	"github.com/rizome-dev/openaigo/pkg/models"
)

// API is the set of operations supported by Client
type API interface {
	ListModels(ctx context.Context) (*models.ModelList, error)
	GetModel(ctx context.Context, id string) (*models.Model, error)
	CreateCompletion(ctx context.Context, req models.CompletionRequest) (*models.TextResult, error)
	CreateEdit(ctx context.Context, req models.EditRequest) (*models.TextResult, error)
	CreateImage(ctx context.Context, req models.CreateImageRequest) (*models.ImageResult, error)
}

var (
	_ API = (*Client)(nil)
	_ API = (*ObservableClient)(nil)
)
