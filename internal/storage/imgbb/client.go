package imgbb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

const defaultEndpoint = "https://api.imgbb.com/1/upload"

// Internal adapter interface to enable mocking without the real image host.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client uploads listing and profile images to the imgbb image host.
type Client struct {
	api      httpDoer
	apiKey   string
	endpoint string
}

// NewClient creates an image host client with the given API key.
func NewClient(apiKey string) *Client {
	return NewClientWithAPI(http.DefaultClient, apiKey, defaultEndpoint)
}

// NewClientWithAPI allows injecting a mockable HTTP doer and endpoint (used
// in tests).
func NewClientWithAPI(api httpDoer, apiKey, endpoint string) *Client {
	return &Client{
		api:      api,
		apiKey:   apiKey,
		endpoint: endpoint,
	}
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one image as a multipart form and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	target := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, &form)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.api.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if !result.Success {
		msg := result.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("image host rejected upload: %s", msg)
	}

	return result.Data.URL, nil
}
