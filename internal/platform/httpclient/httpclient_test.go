package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_NonSuccess_DecodesMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"rut duplicado"}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodPost, "dueno", nil, map[string]any{"a": 1})

	var he *HTTPError
	require.True(t, errors.As(err, &he), "expected *HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "Bad Request", he.Status)
	assert.Equal(t, "rut duplicado", he.Message)
}

func TestDo_NonSuccess_FallbackMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>boom</html>", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, 0)
	_, err := c.Do(context.Background(), http.MethodGet, "/dueno", nil, nil)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, GenericErrorMessage, he.Message)
	assert.Contains(t, he.Body, "boom")
}

func TestDo_OversizedBody_IsTooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1},{"id":2},{"id":3}]`))
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, 0)
	c.MaxBodyBytes = 10
	_, err := c.Do(context.Background(), http.MethodGet, "/dueno", nil, nil)

	require.ErrorIs(t, err, ErrResponseTooLarge)
	var ne *NetworkError
	assert.False(t, errors.As(err, &ne))

	c.MaxBodyBytes = 0
	var out []map[string]any
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/dueno", nil, nil, &out))
	assert.Len(t, out, 3)
}

func TestDo_TransportFailure_IsNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, _ := NewWithBaseURL(url, 0)
	_, err := c.Do(context.Background(), http.MethodGet, "/dueno", nil, nil)

	var ne *NetworkError
	require.True(t, errors.As(err, &ne), "expected *NetworkError, got %T", err)
	assert.Equal(t, http.MethodGet, ne.Method)
}

func TestDo_CanceledContext_IsNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, _ := NewWithBaseURL(ts.URL, 0)
	_, err := c.Do(ctx, http.MethodGet, "/dueno", nil, nil)

	var ne *NetworkError
	require.True(t, errors.As(err, &ne))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoJSON_SendsBodyAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		in["id"] = 7

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL+"/", 0)

	var out map[string]any
	err := c.DoJSON(context.Background(), http.MethodPost, "dueno", nil, map[string]any{"rut": "1.234.567-8"}, &out)
	require.NoError(t, err)
	assert.Equal(t, json.Number("7"), out["id"])
	assert.Equal(t, "1.234.567-8", out["rut"])
}

func TestResolveURL(t *testing.T) {
	c := New(0)
	_, err := c.resolveURL("dueno")
	assert.Error(t, err, "relative path without base url")

	u, err := c.resolveURL("https://example.com/api/dueno")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/dueno", u)

	_, err = NewWithBaseURL("::bad", 0)
	assert.Error(t, err)
}
