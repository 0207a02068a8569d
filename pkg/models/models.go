package models

// ModelList represents the response from the models endpoint
type ModelList struct {
	Data   []Model `json:"data"`
	Object *string `json:"object,omitempty"`
}

// Model represents an available model
type Model struct {
	ID         string            `json:"id"`
	Object     string            `json:"object"`
	Created    int64             `json:"created"`
	OwnedBy    string            `json:"owned_by"`
	Root       string            `json:"root,omitempty"`
	Parent     *string           `json:"parent,omitempty"`
	Permission []ModelPermission `json:"permission,omitempty"`
}

// ModelPermission describes what an organization may do with a model
type ModelPermission struct {
	ID                 string  `json:"id"`
	Object             string  `json:"object"`
	Created            int64   `json:"created"`
	AllowCreateEngine  bool    `json:"allow_create_engine"`
	AllowSampling      bool    `json:"allow_sampling"`
	AllowLogprobs      bool    `json:"allow_logprobs"`
	AllowSearchIndices bool    `json:"allow_search_indices"`
	AllowView          bool    `json:"allow_view"`
	AllowFineTuning    bool    `json:"allow_fine_tuning"`
	Organization       string  `json:"organization"`
	Group              *string `json:"group"`
	IsBlocking         bool    `json:"is_blocking"`
}

// RequiredFields implements Shaped
func (ModelList) RequiredFields() []string {
	return []string{"data"}
}

// RequiredFields implements Shaped
func (Model) RequiredFields() []string {
	return []string{"id", "object", "created", "owned_by"}
}
