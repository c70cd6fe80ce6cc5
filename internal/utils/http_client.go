package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose requests
// send and accept JSON by default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetBody(models.LoginRequest{Email: "a@b.c", Password: "secret"}).
//	    Post("http://localhost:3000/member/login")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}
