package models

import (
	"maps"

	"github.com/rizome-dev/openaigo/pkg/errors"
)

// CompletionRequest represents a request to the completions endpoint.
// Optional fields are nil unless set so that the API applies its own defaults.
type CompletionRequest struct {
	Model            string         `json:"model"`
	Prompt           *StringOrList  `json:"prompt,omitempty"`
	Suffix           *string        `json:"suffix,omitempty"`
	MaxTokens        *int           `json:"max_tokens,omitempty"`
	Temperature      *float64       `json:"temperature,omitempty"`
	TopP             *float64       `json:"top_p,omitempty"`
	N                *int           `json:"n,omitempty"`
	Logprobs         *int           `json:"logprobs,omitempty"`
	Echo             *bool          `json:"echo,omitempty"`
	Stop             *StringOrList  `json:"stop,omitempty"`
	PresencePenalty  *float64       `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64       `json:"frequency_penalty,omitempty"`
	BestOf           *int           `json:"best_of,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             *string        `json:"user,omitempty"`
}

// CompletionRequestBuilder builds a validated CompletionRequest
type CompletionRequestBuilder struct {
	req CompletionRequest
}

// NewCompletionRequestBuilder creates an empty builder
func NewCompletionRequestBuilder() *CompletionRequestBuilder {
	return &CompletionRequestBuilder{}
}

// Model sets the model ID (required)
func (b *CompletionRequestBuilder) Model(model string) *CompletionRequestBuilder {
	b.req.Model = model
	return b
}

// Prompt sets a single prompt
func (b *CompletionRequestBuilder) Prompt(prompt string) *CompletionRequestBuilder {
	b.req.Prompt = Ptr(String(prompt))
	return b
}

// PromptList sets a batch of prompts
func (b *CompletionRequestBuilder) PromptList(prompts ...string) *CompletionRequestBuilder {
	b.req.Prompt = Ptr(List(prompts...))
	return b
}

// Suffix sets the text that comes after the completion
func (b *CompletionRequestBuilder) Suffix(suffix string) *CompletionRequestBuilder {
	b.req.Suffix = &suffix
	return b
}

// MaxTokens caps the number of generated tokens
func (b *CompletionRequestBuilder) MaxTokens(n int) *CompletionRequestBuilder {
	b.req.MaxTokens = &n
	return b
}

// Temperature sets the sampling temperature (0-2)
func (b *CompletionRequestBuilder) Temperature(t float64) *CompletionRequestBuilder {
	b.req.Temperature = &t
	return b
}

// TopP sets nucleus sampling probability mass
func (b *CompletionRequestBuilder) TopP(p float64) *CompletionRequestBuilder {
	b.req.TopP = &p
	return b
}

// N sets how many completions to generate per prompt
func (b *CompletionRequestBuilder) N(n int) *CompletionRequestBuilder {
	b.req.N = &n
	return b
}

// Logprobs requests log probabilities for the n most likely tokens
func (b *CompletionRequestBuilder) Logprobs(n int) *CompletionRequestBuilder {
	b.req.Logprobs = &n
	return b
}

// Echo returns the prompt along with the completion
func (b *CompletionRequestBuilder) Echo(echo bool) *CompletionRequestBuilder {
	b.req.Echo = &echo
	return b
}

// Stop sets a single stop sequence
func (b *CompletionRequestBuilder) Stop(stop string) *CompletionRequestBuilder {
	b.req.Stop = Ptr(String(stop))
	return b
}

// StopList sets up to four stop sequences
func (b *CompletionRequestBuilder) StopList(stops ...string) *CompletionRequestBuilder {
	b.req.Stop = Ptr(List(stops...))
	return b
}

// PresencePenalty penalizes tokens that already appeared
func (b *CompletionRequestBuilder) PresencePenalty(p float64) *CompletionRequestBuilder {
	b.req.PresencePenalty = &p
	return b
}

// FrequencyPenalty penalizes tokens by how often they appeared
func (b *CompletionRequestBuilder) FrequencyPenalty(p float64) *CompletionRequestBuilder {
	b.req.FrequencyPenalty = &p
	return b
}

// BestOf generates this many completions server-side and returns the best
func (b *CompletionRequestBuilder) BestOf(n int) *CompletionRequestBuilder {
	b.req.BestOf = &n
	return b
}

// LogitBias sets the bias for a single token ID, keeping earlier entries
func (b *CompletionRequestBuilder) LogitBias(token string, bias int) *CompletionRequestBuilder {
	if b.req.LogitBias == nil {
		b.req.LogitBias = make(map[string]int)
	}
	b.req.LogitBias[token] = bias
	return b
}

// User identifies the end user
func (b *CompletionRequestBuilder) User(user string) *CompletionRequestBuilder {
	b.req.User = &user
	return b
}

// Build validates required fields and returns the request
func (b *CompletionRequestBuilder) Build() (CompletionRequest, error) {
	if b.req.Model == "" {
		return CompletionRequest{}, &errors.MissingParamError{Request: "CompletionRequest", Field: "model"}
	}

	req := b.req
	req.LogitBias = maps.Clone(b.req.LogitBias)
	return req, nil
}
