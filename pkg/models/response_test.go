package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseDecodesSuccess(t *testing.T) {
	body := `{
		"object": "edit",
		"created": 1589478378,
		"choices": [{"text": "What day of the week is it?", "index": 0}],
		"usage": {"prompt_tokens": 25, "completion_tokens": 32, "total_tokens": 57}
	}`

	var resp Response[TextResult]
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, ResponseSuccess, resp.Kind)
	require.NotNil(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Nil(t, resp.Raw)
	assert.Equal(t, "What day of the week is it?", resp.Success.FirstText())
	assert.Equal(t, 57, resp.Success.Usage.TotalTokens)
}

func TestResponseDecodesErrorEnvelope(t *testing.T) {
	body := `{
		"error": {
			"code": null,
			"message": "That model does not exist",
			"param": "model",
			"type": "invalid_request_error"
		}
	}`

	var resp Response[Model]
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, ResponseError, resp.Kind)
	assert.Nil(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "That model does not exist", resp.Error.Error.Message)
	assert.Nil(t, resp.Error.Error.Code)
	require.NotNil(t, resp.Error.Error.Param)
	assert.Equal(t, "model", *resp.Error.Error.Param)
}

func TestResponseFallsBackToRaw(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unexpected fields", `{"foo": "bar"}`},
		{"error without message", `{"error": {"code": "x"}}`},
		{"required field null", `{"object": "list", "created": 1, "choices": null}`},
		{"wrong field type", `{"object": "edit", "created": "yesterday", "choices": []}`},
		{"array", `[1, 2, 3]`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp Response[TextResult]
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))

			assert.Equal(t, ResponseUnrecognized, resp.Kind)
			assert.Nil(t, resp.Success)
			assert.Nil(t, resp.Error)
		})
	}
}

func TestResponsePrefersSuccessShape(t *testing.T) {
	// A payload that also happens to carry an error key still matches the success shape first.
	body := `{"data": [], "object": "list", "error": {"message": "ignored"}}`

	var resp Response[ModelList]
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, ResponseSuccess, resp.Kind)
}

func TestResponseMalformedJSON(t *testing.T) {
	var resp Response[Model]
	assert.Error(t, json.Unmarshal([]byte(`{"id": "text-davinci-003", "object": `), &resp))
}

func TestResponseKindString(t *testing.T) {
	assert.Equal(t, "success", ResponseSuccess.String())
	assert.Equal(t, "error", ResponseError.String())
	assert.Equal(t, "unrecognized", ResponseUnrecognized.String())
}

func TestResponseReuseResetsKind(t *testing.T) {
	var resp Response[Model]
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m","object":"model","created":1,"owned_by":"openai"}`), &resp))
	require.Equal(t, ResponseSuccess, resp.Kind)

	assert.Error(t, resp.UnmarshalJSON([]byte(`{"id": `)))
	assert.Equal(t, ResponseUnrecognized, resp.Kind)
	assert.Nil(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Nil(t, resp.Raw)
}
