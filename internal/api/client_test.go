package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientURL(t *testing.T) {
	tests := []struct {
		base, prefix, endpoint, want string
	}{
		{"http://localhost:3000", "/api/v1", "vocabulary/x/words", "http://localhost:3000/api/v1/vocabulary/x/words"},
		{"http://localhost:3000/", "api/v1/", "/vocabulary/x/words", "http://localhost:3000/api/v1/vocabulary/x/words"},
		{"https://example.com", "", "words", "https://example.com/words"},
	}
	for _, tt := range tests {
		c := NewClient(tt.base, tt.prefix)
		assert.Equal(t, tt.want, c.URL(tt.endpoint))
	}
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var got http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = *r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestDo_Success(t *testing.T) {
	srv, req := newTestServer(t, http.StatusOK, `{"success":true,"data":{"name":"apple"}}`)
	c := NewClient(srv.URL, "/api/v1")

	var out struct {
		Name string `json:"name"`
	}
	err := c.Do(context.Background(), http.MethodGet, "things/1", nil, nil, &out)
	require.NoError(t, err)

	assert.Equal(t, "apple", out.Name)
	assert.Equal(t, "/api/v1/things/1", req.URL.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestDo_SendsBody(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = io.WriteString(w, `{"success":true,"data":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	var out []any
	err := c.Do(context.Background(), http.MethodPost, "words", map[string]any{"word": "apple"}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "apple", received["word"])
}

func TestDo_HTTPErrorWithEnvelope(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadRequest,
		`{"success":false,"data":null,"error":{"statusCode":400,"message":"date is malformed","error":"Bad Request"}}`)
	c := NewClient(srv.URL, "")

	err := c.Do(context.Background(), http.MethodGet, "x", nil, nil, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "date is malformed", apiErr.Message)
}

func TestDo_HTTPErrorWithoutEnvelope(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, `<html>not found</html>`)
	c := NewClient(srv.URL, "")

	err := c.Do(context.Background(), http.MethodGet, "x", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "HTTP error! status: 404")
}

func TestDo_SuccessFalse(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"success":false}`)
	c := NewClient(srv.URL, "")

	err := c.Do(context.Background(), http.MethodGet, "x", nil, nil, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API request failed", apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestDo_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `not json`)
	c := NewClient(srv.URL, "")

	var out any
	err := c.Do(context.Background(), http.MethodGet, "x", nil, nil, &out)
	var invalid *ErrInvalidResponse
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []byte("not json"), invalid.Body)
}

func TestDo_NullData(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"success":true,"data":null}`)
	c := NewClient(srv.URL, "")

	var out []any
	err := c.Do(context.Background(), http.MethodGet, "x", nil, nil, &out)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestDo_EmptyBodyWithoutOutput(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNoContent, ``)
	c := NewClient(srv.URL, "")

	assert.NoError(t, c.Do(context.Background(), http.MethodDelete, "x", nil, nil, nil))
}

func TestDo_DataSchema(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"success":true,"data":{"count":"three"}}`)
	c := NewClient(srv.URL, "")

	schema := &Schema{
		Name: "test_count",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"count"},
			"properties": map[string]any{
				"count": map[string]any{"type": "integer"},
			},
		},
	}

	var out map[string]any
	err := c.Do(context.Background(), http.MethodGet, "x", nil, schema, &out)
	var invalid *ErrInvalidResponse
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "test_count")
}

func TestDo_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", WithTimeout(5*time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Do(ctx, http.MethodGet, "x", nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
