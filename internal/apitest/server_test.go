package apitest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

// errorCollector records Errorf calls instead of failing the surrounding test
type errorCollector struct {
	testing.TB
	errs []string
}

func (c *errorCollector) Errorf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Sprintf(format, args...))
}

func TestRecordKeepsBodyForHandler(t *testing.T) {
	server := NewServer(t)
	server.HandleFunc(http.MethodPost, "/v1/edits", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Write(body)
	})

	resp, err := http.Post(server.URL+"/v1/edits", "application/json", strings.NewReader(`{"model":"m"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	echoed, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"model":"m"}`, string(echoed))

	sent, ok := server.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, sent.Method)
	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, `{"model":"m"}`, string(sent.Body))
}

func TestRecordReportsBodyReadError(t *testing.T) {
	collector := &errorCollector{TB: t}
	s := &Server{t: collector}

	called := false
	handler := s.record(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/edits", failingReader{})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, collector.errs, 1)
	assert.Contains(t, collector.errs[0], "connection reset")
	assert.Empty(t, s.Requests())
}
