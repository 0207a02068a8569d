package models

import (
	"github.com/rizome-dev/openaigo/pkg/errors"
)

// ImageSize is the resolution of a generated image
type ImageSize string

const (
	ImageSize256  ImageSize = "256x256"
	ImageSize512  ImageSize = "512x512"
	ImageSize1024 ImageSize = "1024x1024"
)

// ImageResponseFormat selects how generated images are returned
type ImageResponseFormat string

const (
	ImageFormatURL     ImageResponseFormat = "url"
	ImageFormatB64JSON ImageResponseFormat = "b64_json"
)

// CreateImageRequest represents a request to the image generations endpoint
type CreateImageRequest struct {
	Prompt         string               `json:"prompt"`
	N              *int                 `json:"n,omitempty"`
	Size           *ImageSize           `json:"size,omitempty"`
	ResponseFormat *ImageResponseFormat `json:"response_format,omitempty"`
	User           *string              `json:"user,omitempty"`
}

// CreateImageRequestBuilder builds a validated CreateImageRequest
type CreateImageRequestBuilder struct {
	req CreateImageRequest
}

// NewCreateImageRequestBuilder creates an empty builder
func NewCreateImageRequestBuilder() *CreateImageRequestBuilder {
	return &CreateImageRequestBuilder{}
}

// Prompt describes the desired image (required)
func (b *CreateImageRequestBuilder) Prompt(prompt string) *CreateImageRequestBuilder {
	b.req.Prompt = prompt
	return b
}

// N sets the number of images to generate
func (b *CreateImageRequestBuilder) N(n int) *CreateImageRequestBuilder {
	b.req.N = &n
	return b
}

// Size sets the resolution of the generated images
func (b *CreateImageRequestBuilder) Size(size ImageSize) *CreateImageRequestBuilder {
	b.req.Size = &size
	return b
}

// ResponseFormat selects hosted URLs or inline base64 data
func (b *CreateImageRequestBuilder) ResponseFormat(format ImageResponseFormat) *CreateImageRequestBuilder {
	b.req.ResponseFormat = &format
	return b
}

// User identifies the end user
func (b *CreateImageRequestBuilder) User(user string) *CreateImageRequestBuilder {
	b.req.User = &user
	return b
}

// Build validates required fields and returns the request
func (b *CreateImageRequestBuilder) Build() (CreateImageRequest, error) {
	if b.req.Prompt == "" {
		return CreateImageRequest{}, &errors.MissingParamError{Request: "CreateImageRequest", Field: "prompt"}
	}
	return b.req, nil
}

// ImageResult represents a response from the image generations endpoint
type ImageResult struct {
	Created int64       `json:"created"`
	Data    []ImageItem `json:"data"`
}

// ImageItem is a single generated image, either hosted or embedded
type ImageItem struct {
	URL     string `json:"url,omitempty"`
	B64JSON string `json:"b64_json,omitempty"`
}

// RequiredFields implements Shaped
func (ImageResult) RequiredFields() []string {
	return []string{"created", "data"}
}
