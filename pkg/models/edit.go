package models

import (
	"github.com/rizome-dev/openaigo/pkg/errors"
)

// EditRequest represents a request to the edits endpoint
type EditRequest struct {
	Model       string   `json:"model"`
	Input       *string  `json:"input,omitempty"`
	Instruction string   `json:"instruction"`
	N           *int     `json:"n,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
}

// EditRequestBuilder builds a validated EditRequest
type EditRequestBuilder struct {
	req EditRequest
}

// NewEditRequestBuilder creates an empty builder
func NewEditRequestBuilder() *EditRequestBuilder {
	return &EditRequestBuilder{}
}

// Model sets the model ID (required)
func (b *EditRequestBuilder) Model(model string) *EditRequestBuilder {
	b.req.Model = model
	return b
}

// Input sets the text to edit. The API treats a missing input as empty.
func (b *EditRequestBuilder) Input(input string) *EditRequestBuilder {
	b.req.Input = &input
	return b
}

// Instruction tells the model how to edit the input (required)
func (b *EditRequestBuilder) Instruction(instruction string) *EditRequestBuilder {
	b.req.Instruction = instruction
	return b
}

// N sets how many edits to generate
func (b *EditRequestBuilder) N(n int) *EditRequestBuilder {
	b.req.N = &n
	return b
}

// Temperature sets the sampling temperature (0-2)
func (b *EditRequestBuilder) Temperature(t float64) *EditRequestBuilder {
	b.req.Temperature = &t
	return b
}

// TopP sets nucleus sampling probability mass
func (b *EditRequestBuilder) TopP(p float64) *EditRequestBuilder {
	b.req.TopP = &p
	return b
}

// Build validates required fields and returns the request
func (b *EditRequestBuilder) Build() (EditRequest, error) {
	if b.req.Model == "" {
		return EditRequest{}, &errors.MissingParamError{Request: "EditRequest", Field: "model"}
	}
	if b.req.Instruction == "" {
		return EditRequest{}, &errors.MissingParamError{Request: "EditRequest", Field: "instruction"}
	}
	return b.req, nil
}
