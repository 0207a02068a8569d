package models

// TextResult is returned by both the completions and the edits endpoints.
// Edits carry no id or model.
type TextResult struct {
	ID      string       `json:"id,omitempty"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model,omitempty"`
	Choices []TextChoice `json:"choices"`
	Usage   *Usage       `json:"usage,omitempty"`
}

// TextChoice represents a single generated text
type TextChoice struct {
	Text         string    `json:"text"`
	Index        int       `json:"index"`
	Logprobs     *Logprobs `json:"logprobs,omitempty"`
	FinishReason *string   `json:"finish_reason,omitempty"`
}

// Logprobs holds per-token log probabilities when requested via logprobs
type Logprobs struct {
	Tokens        []string             `json:"tokens"`
	TokenLogprobs []float64            `json:"token_logprobs"`
	TopLogprobs   []map[string]float64 `json:"top_logprobs,omitempty"`
	TextOffset    []int                `json:"text_offset"`
}

// Usage represents token usage information
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// RequiredFields implements Shaped
func (TextResult) RequiredFields() []string {
	return []string{"object", "created", "choices"}
}

// FirstText returns the text of the first choice, or "" if there is none
func (r *TextResult) FirstText() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Text
}
