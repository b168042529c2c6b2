package shortener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/config"
	serviceErrors "github.com/nathdadu26/viralbox-uploader-bot/internal/service/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	client, err := InitClient(&config.ShortenerConfig{ShortenerDomain: ts.URL})
	assert.NoError(t, err)
	return client, ts
}

// Tests

func TestInitClient_NilConfig(t *testing.T) {
	_, err := InitClient(nil)
	var nilDependencyError *serviceErrors.ServiceFoundNilDependency
	assert.ErrorAs(t, err, &nilDependencyError)
}

func TestShorten_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "some_api_key", r.URL.Query().Get("api"))
		assert.Equal(t, "https://worker.example.com/aB3xY9", r.URL.Query().Get("url"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","shortenedUrl":"https://viralbox.in/abc123"}`))
	})
	shortURL, err := client.Shorten(context.Background(), "some_api_key", "https://worker.example.com/aB3xY9")
	assert.NoError(t, err)
	assert.Equal(t, "https://viralbox.in/abc123", shortURL)
}

func TestShorten_APIFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"failure"}`))
	})
	_, err := client.Shorten(context.Background(), "some_api_key", "https://worker.example.com/aB3xY9")
	var apiError *serviceErrors.ShortenerAPIError
	assert.ErrorAs(t, err, &apiError)
	assert.Equal(t, "failure", apiError.Status)
}

func TestShorten_MissingShortenedURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success"}`))
	})
	_, err := client.Shorten(context.Background(), "some_api_key", "https://worker.example.com/aB3xY9")
	var apiError *serviceErrors.ShortenerAPIError
	assert.ErrorAs(t, err, &apiError)
}

func TestShorten_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})
	_, err := client.Shorten(context.Background(), "some_api_key", "https://worker.example.com/aB3xY9")
	var responseError *serviceErrors.ShortenerResponseError
	assert.ErrorAs(t, err, &responseError)
}

func TestShorten_Timeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"status":"success","shortenedUrl":"https://viralbox.in/abc123"}`))
	})
	client.http.SetTimeout(50 * time.Millisecond)
	_, err := client.Shorten(context.Background(), "some_api_key", "https://worker.example.com/aB3xY9")
	var timeoutError *serviceErrors.ShortenerTimeoutError
	assert.ErrorAs(t, err, &timeoutError)
}

func TestShorten_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := InitClient(&config.ShortenerConfig{ShortenerDomain: ts.URL})
	assert.NoError(t, err)
	ts.Close()
	_, err = client.Shorten(context.Background(), "some_api_key", "https://worker.example.com/aB3xY9")
	var networkError *serviceErrors.ShortenerNetworkError
	assert.ErrorAs(t, err, &networkError)
}
