// Package github implements the remote sync port against the GitHub
// contents API. The serialized ledger lives as one base64-encoded file in a
// private repository; every push is a commit, so the backup history doubles
// as an audit trail.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/daftar-app/daftar/internal/application/ports"
)

const defaultBaseURL = "https://api.github.com"

// Compile-time check that Client implements the sync port.
var _ ports.SyncClient = (*Client)(nil)

// Client talks to the GitHub contents API with plain net/http; the API is
// two endpoints, no SDK needed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds the client with a network timeout suited for a single-file
// round trip.
func New() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

// NewWithBaseURL is used by tests to point the client at a stub server.
func NewWithBaseURL(baseURL string) *Client {
	c := New()
	c.baseURL = baseURL
	return c
}

type contentResponse struct {
	SHA     string `json:"sha"`
	Content string `json:"content"`
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

func (c *Client) contentURL(target ports.SyncTarget) string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", c.baseURL, target.Repo, target.File)
}

// Push uploads the snapshot, creating or updating the remote file. The
// contents API requires the current blob SHA when updating, so an existing
// file is looked up first.
func (c *Client) Push(ctx context.Context, target ports.SyncTarget, content []byte, message string) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	sha, err := c.currentSHA(ctx, target)
	if err != nil {
		return err
	}

	body, err := json.Marshal(putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     sha,
	})
	if err != nil {
		return fmt.Errorf("github: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentURL(target), bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req, target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("github: push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return apiError("push", resp)
	}
	return nil
}

// Pull fetches and decodes the remote snapshot.
func (c *Client) Pull(ctx context.Context, target ports.SyncTarget) ([]byte, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentURL(target), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: pull: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("pull", resp)
	}

	var out contentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("github: decode response: %w", err)
	}
	// The API wraps base64 at 60 columns; the std decoder rejects the
	// newlines unless stripped.
	content, err := base64.StdEncoding.DecodeString(stripNewlines(out.Content))
	if err != nil {
		return nil, fmt.Errorf("github: decode content: %w", err)
	}
	return content, nil
}

// currentSHA returns the blob SHA of the remote file, or "" when the file
// does not exist yet.
func (c *Client) currentSHA(ctx context.Context, target ports.SyncTarget) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentURL(target), nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req, target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("github: lookup: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out contentResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("github: decode lookup: %w", err)
		}
		return out.SHA, nil
	case http.StatusNotFound:
		return "", nil
	default:
		return "", apiError("lookup", resp)
	}
}

func (c *Client) setHeaders(req *http.Request, target ports.SyncTarget) {
	req.Header.Set("Authorization", "token "+target.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
}

func validateTarget(target ports.SyncTarget) error {
	if target.Token == "" || target.Repo == "" || target.File == "" {
		return fmt.Errorf("github: sync target requires token, repo and file name")
	}
	return nil
}

func apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("github: %s failed with status %d: %s", op, resp.StatusCode, bytes.TrimSpace(body))
}

func stripNewlines(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			continue
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
