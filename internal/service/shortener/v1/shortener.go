// Package shortener provides a client for the external link shortening API.
package shortener

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/config"
	serviceErrors "github.com/nathdadu26/viralbox-uploader-bot/internal/service/errors"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/shortener"
)

const requestTimeout = 10 * time.Second

// Check interface implementation explicitly
var (
	_ shortener.Client = (*Client)(nil)
)

// shortenResponse models the JSON body returned by the shortening API.
type shortenResponse struct {
	Status       string `json:"status"`
	ShortenedURL string `json:"shortenedUrl"`
}

// Client performs single-attempt shortening calls with a bounded timeout.
type Client struct {
	endpoint string
	http     *resty.Client
}

// InitClient initializes a Client object and sets its attributes.
func InitClient(cfg *config.ShortenerConfig) (*Client, error) {
	if cfg == nil {
		return nil, &serviceErrors.ServiceFoundNilDependency{Msg: "nil shortener config was passed to client initializer"}
	}
	endpoint := cfg.ShortenerDomain
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}
	return &Client{
		endpoint: endpoint + "/api",
		http:     resty.New().SetTimeout(requestTimeout),
	}, nil
}

// Shorten performs one call to the shortening API and returns the shortened URL.
// Timeouts, transport failures, malformed bodies and explicit API failures are
// surfaced as distinct error kinds for logging; no retry is performed here.
func (c *Client) Shorten(ctx context.Context, apiKey string, longURL string) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api": apiKey,
			"url": longURL,
		}).
		Get(c.endpoint)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", &serviceErrors.ShortenerTimeoutError{Err: err}
		}
		return "", &serviceErrors.ShortenerNetworkError{Err: err}
	}
	var data shortenResponse
	if err := json.Unmarshal(res.Body(), &data); err != nil {
		return "", &serviceErrors.ShortenerResponseError{Msg: err.Error()}
	}
	if data.Status != "success" || data.ShortenedURL == "" {
		return "", &serviceErrors.ShortenerAPIError{Status: data.Status}
	}
	return data.ShortenedURL, nil
}
