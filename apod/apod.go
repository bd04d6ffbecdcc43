package apod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"apod-wallpaper/logger"
)

// ErrMissingHDURL is returned when the response carries no high-definition image URL.
var ErrMissingHDURL = errors.New("response has no hdurl")

// Metadata represents the Astronomy Picture of the Day entry.
// Only HDURL is required; the rest is kept for progress output.
//
// Example JSON response:
//
//	{
//	  "date": "2026-10-18",
//	  "title": "The Horsehead Nebula",
//	  "media_type": "image",
//	  "url": "https://apod.nasa.gov/apod/image/2610/horsehead1024.jpg",
//	  "hdurl": "https://apod.nasa.gov/apod/image/2610/horsehead.jpg"
//	}
type Metadata struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	MediaType string `json:"media_type"`
	URL       string `json:"url"`
	HDURL     string `json:"hdurl"`
}

// Client fetches metadata from one APOD endpoint with one API key.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func NewClient(httpClient *http.Client, endpoint, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, endpoint: endpoint, apiKey: apiKey}
}

// URL returns the endpoint with the API key attached as the api_key query parameter.
func (c *Client) URL() string {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		// Leave validation to the request so the error surfaces from Fetch.
		return c.endpoint + "?api_key=" + url.QueryEscape(c.apiKey)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) Fetch(ctx context.Context) (*Metadata, error) {
	return Fetch(ctx, c.httpClient, c.URL())
}

// Fetch issues a single GET against apiURL and decodes the APOD record.
// Unknown fields are ignored; a missing or non-string hdurl is an error.
func Fetch(ctx context.Context, httpClient *http.Client, apiURL string) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		// *url.Error repeats the full URL, key included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("GET %s: %w", redact(req.URL), err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: HTTP status %d", redact(req.URL), resp.StatusCode)
	}

	var data Metadata
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	logger.Debug("Decoded metadata: %+v\n", data)

	if data.HDURL == "" {
		if data.MediaType == "video" {
			return nil, fmt.Errorf("today's picture is a video (%s): %w", data.URL, ErrMissingHDURL)
		}
		return nil, ErrMissingHDURL
	}
	return &data, nil
}

// redact hides the API key so it never reaches the terminal.
func redact(u *url.URL) string {
	c := *u
	q := c.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		c.RawQuery = q.Encode()
	}
	return c.String()
}
