package apod

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public APOD endpoint.
const DefaultBaseURL = "https://api.nasa.gov/planetary/apod"

const maxFeedBody = 8 << 20

// ErrFeedFormat marks responses that decode as JSON but do not carry the
// expected top-level array of items.
var ErrFeedFormat = errors.New("feed format: expected a JSON array of items")

// StatusError reports a feed request that came back with a non-200 status.
// The message always carries the status code so it survives into user-facing
// error text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("feed request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("feed request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the APOD HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	nowFn   func() time.Time
}

// NewClient builds an APOD API client. Pass nil for httpClient to use a
// default client with a sane timeout.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
		nowFn:   time.Now,
	}
}

func (c *Client) newRequest(ctx context.Context, query url.Values) (*http.Request, error) {
	u := c.baseURL
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// FetchLatest requests the most recent days of the picture feed, today
// included, and returns the items in the order the feed delivered them.
func (c *Client) FetchLatest(ctx context.Context, days int) ([]Item, error) {
	if days < 1 {
		days = 1
	}
	end := c.nowFn().UTC()
	start := end.AddDate(0, 0, -(days - 1))

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("start_date", start.Format(time.DateOnly))
	query.Set("end_date", end.Format(time.DateOnly))
	query.Set("thumbs", "true")

	req, err := c.newRequest(ctx, query)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBody))
	if err != nil {
		return nil, fmt.Errorf("read feed response: %w", err)
	}
	payload := bytes.TrimSpace(body)
	if !json.Valid(payload) {
		return nil, fmt.Errorf("decode feed response: invalid JSON")
	}
	if len(payload) == 0 || payload[0] != '[' {
		return nil, fmt.Errorf("%w, got %s", ErrFeedFormat, payloadShape(payload))
	}
	var items []Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}
	return items, nil
}

// payloadShape names the top-level JSON value for format error messages
// without echoing a potentially huge body.
func payloadShape(payload []byte) string {
	if len(payload) == 0 {
		return "an empty body"
	}
	switch payload[0] {
	case '{':
		return "a JSON object"
	case '"':
		return "a JSON string"
	case 't', 'f':
		return "a JSON boolean"
	case 'n':
		return "JSON null"
	default:
		return "a JSON number"
	}
}
