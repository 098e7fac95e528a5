package quickwit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fastjson"

	"logsearch-gateway/config"
	"logsearch-gateway/internal/apperror"
)

const defaultTimeout = 30 * time.Second

// Client is the long-lived handle to one Quickwit index. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	baseURL    string
	indexID    string
	username   string
	password   string
	httpClient *http.Client
}

func NewClient(cfg config.QuickwitConfig) *Client {
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		indexID:  cfg.IndexID,
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

func (c *Client) IndexID() string { return c.indexID }

func (c *Client) searchURL() string {
	return fmt.Sprintf("%s/api/v1/%s/search", c.baseURL, c.indexID)
}

// Search posts payload to the index search endpoint and returns the decoded
// top-level response. Every failure is a backend error.
func (c *Client) Search(ctx context.Context, payload interface{}) (*fastjson.Value, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.Internal("failed to encode search request", err)
	}

	url := c.searchURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.Internal("failed to create search request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)

	log.Debug().Str("url", url).RawJSON("payload", body).Msg("Sending Quickwit search request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Quickwit search request failed")
		return nil, apperror.Backend(err.Error(), fmt.Errorf("executing search request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read Quickwit search response")
		return nil, apperror.Backend(err.Error(), fmt.Errorf("reading search response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status_code", resp.StatusCode).Bytes("response_body", respBody).Msg("Quickwit returned non-success status")
		return nil, apperror.Backend(string(respBody), &HTTPStatusError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       string(respBody),
		})
	}

	v, err := fastjson.ParseBytes(respBody)
	if err != nil {
		log.Error().Err(err).Bytes("response_body", respBody).Msg("Failed to decode Quickwit search response")
		return nil, apperror.Backend(err.Error(), fmt.Errorf("decoding search response: %w", err))
	}
	return v, nil
}

// Ping checks the node liveness endpoint.
func (c *Client) Ping(ctx context.Context) error {
	url := c.baseURL + "/health/livez"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating liveness request: %w", err)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing liveness request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &HTTPStatusError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       string(respBody),
		}
	}
	return nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
}
