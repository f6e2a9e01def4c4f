package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// The underlying client keeps a cookie jar, so the session cookie issued by
// POST /jwt is replayed on every following request of the same client.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:7000")
//	resp, err := client.R().Get("/foods")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient bound to baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool and cookie jar.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
