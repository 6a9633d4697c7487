// Package assist wraps the third-party generative-AI API behind the
// natural-language conversion and text-to-image features. The conversion
// core never calls this service; failures here are surfaced to the caller
// and retried by re-prompting.
package assist

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoAPIKey signals a client constructed without credentials.
var ErrNoAPIKey = errors.New("assist client: api key required")

// Conversion is the structured result the model returns for a free-text
// conversion query.
type Conversion struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Value    float64 `json:"value"`
	Result   float64 `json:"result"`
}

// Client calls the generative-AI API.
type Client struct {
	baseURL    string
	apiKey     string
	imageModel string
	client     *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithImageModel selects the image-generation model.
func WithImageModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.imageModel = model
		}
	}
}

// NewClient constructs an assist client.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("assist client: empty base url")
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		imageModel: "uniconv-image-1",
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Convert sends a free-text query and decodes the structured conversion
// the model extracted from it.
func (c *Client) Convert(ctx context.Context, query string) (*Conversion, error) {
	if query == "" {
		return nil, errors.New("assist client: empty query")
	}
	body := map[string]string{"query": query}
	var conv Conversion
	if err := c.post(ctx, "/v1/convert", body, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// GenerateImage sends a prompt and returns the raw image payload.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if prompt == "" {
		return nil, errors.New("assist client: empty prompt")
	}
	body := map[string]string{"prompt": prompt, "model": c.imageModel}
	var resp struct {
		ImageB64 string `json:"image_b64"`
	}
	if err := c.post(ctx, "/v1/images", body, &resp); err != nil {
		return nil, err
	}
	image, err := base64.StdEncoding.DecodeString(resp.ImageB64)
	if err != nil {
		return nil, fmt.Errorf("assist client: decode image payload: %w", err)
	}
	return image, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("assist client: non-2xx response %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
