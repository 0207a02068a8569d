package openai

import (
	"os"
	"time"

	"github.com/rizome-dev/openaigo/pkg/errors"
)

const (
	// DefaultBaseURL is the default base URL for the OpenAI API
	DefaultBaseURL = "https://api.openai.com"

	// DefaultVersion is the API version path segment
	DefaultVersion = "v1"

	// TokenEnvVar is read when no access token is configured
	TokenEnvVar = "OPENAI_API_KEY"

	// DefaultTimeout is the default timeout for HTTP requests
	DefaultTimeout = 2 * time.Minute
)

// Config holds the API location and credentials. It is a value type: the
// With* setters return a modified copy.
type Config struct {
	baseURL     string
	version     string
	accessToken string
	timeout     time.Duration
}

// NewConfig returns a config for the public API with the given access token
func NewConfig(accessToken string) Config {
	return CreateConfig(DefaultBaseURL, DefaultVersion, accessToken)
}

// CreateConfig returns a config for an arbitrary API location
func CreateConfig(baseURL, version, accessToken string) Config {
	return Config{
		baseURL:     baseURL,
		version:     version,
		accessToken: accessToken,
		timeout:     DefaultTimeout,
	}
}

// DefaultConfig returns a config whose token comes from OPENAI_API_KEY
func DefaultConfig() Config {
	return NewConfig("")
}

// WithBaseURL returns a copy pointing at another API host
func (c Config) WithBaseURL(baseURL string) Config {
	c.baseURL = baseURL
	return c
}

// WithVersion returns a copy using another API version segment
func (c Config) WithVersion(version string) Config {
	c.version = version
	return c
}

// WithAccessToken returns a copy with an explicit access token
func (c Config) WithAccessToken(accessToken string) Config {
	c.accessToken = accessToken
	return c
}

// WithTimeout sets the HTTP timeout used by clients built from this config.
// Zero disables the timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.timeout = timeout
	return c
}

// BaseURL returns the API host
func (c Config) BaseURL() string { return c.baseURL }

// Version returns the API version segment
func (c Config) Version() string { return c.version }

// Timeout returns the HTTP timeout
func (c Config) Timeout() time.Duration { return c.timeout }

// APIURL returns the versioned API root
func (c Config) APIURL() string {
	return c.baseURL + "/" + c.version
}

// EndpointURL joins the API root and path. Segments are not escaped.
func (c Config) EndpointURL(path string) string {
	return c.APIURL() + "/" + path
}

// ResolveToken returns the configured token, falling back to OPENAI_API_KEY
func (c Config) ResolveToken() (string, error) {
	if c.accessToken != "" {
		return c.accessToken, nil
	}
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}
	return "", errors.ErrMissingToken
}

// ModelsPath is the path of the models listing
func (c Config) ModelsPath() string { return "models" }

// ModelPath is the path of a single model
func (c Config) ModelPath(id string) string { return "models/" + id }

// CompletionsPath is the path of the completions endpoint
func (c Config) CompletionsPath() string { return "completions" }

// EditsPath is the path of the edits endpoint
func (c Config) EditsPath() string { return "edits" }

// ImageGenerationsPath is the path of the image generations endpoint
func (c Config) ImageGenerationsPath() string { return "images/generations" }
