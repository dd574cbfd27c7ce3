// internal/notion/client.go
package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"notion-relay/internal/common/config"
	commonhttp "notion-relay/internal/common/http"
)

// Client fetches pages from the Notion API. A non-success response is
// reported as an error; the relay never retries, the page will be refetched
// on the next event.
type Client struct {
	baseURL    string
	token      string
	apiVersion string
	httpClient *commonhttp.Client
}

func NewClient(cfg config.NotionConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		apiVersion: cfg.APIVersion,
		httpClient: commonhttp.NewClient(config.GetDuration(cfg.Timeout)),
	}
}

// GetPage retrieves the full page for the given id.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	url := fmt.Sprintf("%s/v1/pages/%s", c.baseURL, pageID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.apiVersion)

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", pageID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read page response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page %s: status %d: %s", pageID, resp.StatusCode, string(body))
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode page %s: %w", pageID, err)
	}

	return &page, nil
}
