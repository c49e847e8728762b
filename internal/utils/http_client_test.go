package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{})

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(HTTPClientOptions{})
	client2 := NewHTTPClient(HTTPClientOptions{})

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_TrimsBaseURL(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{BaseURL: "https://example.com/"})

	assert.Equal(t, "https://example.com", client.BaseURL)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{Timeout: 3 * time.Second})

	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_SendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "airs-adapter/test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{
		BaseURL:   srv.URL,
		APIKey:    "secret",
		UserAgent: "airs-adapter/test",
	})

	resp, err := client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestNewHTTPClient_NoAPIKeyHeaderWhenEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[http.CanonicalHeaderKey(APIKeyHeader)]
		assert.False(t, present)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(HTTPClientOptions{BaseURL: srv.URL}).R().Get("/")
	require.NoError(t, err)
}
