package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOrListString(t *testing.T) {
	in := String("test_string")

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"test_string"`, string(data))

	var out StringOrList
	require.NoError(t, json.Unmarshal(data, &out))
	assert.False(t, out.IsList())
	assert.Equal(t, in, out)
}

func TestStringOrListList(t *testing.T) {
	in := List("test_string", "test_string2")

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `["test_string","test_string2"]`, string(data))

	var out StringOrList
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, out.IsList())
	items, _ := out.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, in, out)
}

func TestStringOrListEmptyList(t *testing.T) {
	data, err := json.Marshal(List())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestStringOrListRejectsOtherShapes(t *testing.T) {
	for _, input := range []string{`42`, `{"a":"b"}`, `[1,2]`, `true`} {
		var out StringOrList
		assert.Error(t, json.Unmarshal([]byte(input), &out), input)
	}
}

func TestStringOrListInsideRequest(t *testing.T) {
	var req CompletionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"model":"m","prompt":["a","b"],"stop":"\n"}`), &req))

	prompts, ok := req.Prompt.Items()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, prompts)

	stop, ok := req.Stop.Value()
	require.True(t, ok)
	assert.Equal(t, "\n", stop)
}
