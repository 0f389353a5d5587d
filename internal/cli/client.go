package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/SscSPs/journal_entry_store/internal/utils"
	"github.com/google/uuid"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status int
	Body   dto.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Body.Name != "" && e.Body.Code != nil {
		return fmt.Sprintf("%s (code %d): %s", e.Body.Name, *e.Body.Code, e.Body.Error)
	}
	if e.Body.Error != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Body.Error)
	}
	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}

// Client calls the journal entry API, signing every request with its keypair.
type Client struct {
	baseURL *url.URL
	keypair *Keypair
	http    *http.Client
	now     func() time.Time
}

// NewClient creates a client for the API rooted at baseURL, e.g. http://localhost:8080/api/v1.
func NewClient(baseURL string, keypair *Keypair, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: scheme and host required", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: u, keypair: keypair, http: httpClient, now: time.Now}, nil
}

// entryPath escapes title into a single path segment.
func entryPath(title string) string {
	return "/entries/" + url.PathEscape(title)
}

// do sends method to path with an optional JSON body and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var raw []byte
	if body != nil {
		var err error
		if raw, err = json.Marshal(body); err != nil {
			return err
		}
	}

	// path is already escaped; the signature covers the escaped request URI.
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.keypair != nil {
		ts := c.now().Unix()
		nonce := uuid.NewString()
		req.Header.Set(utils.HeaderOwner, c.keypair.Public.String())
		req.Header.Set(utils.HeaderTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(utils.HeaderNonce, nonce)
		req.Header.Set(utils.HeaderSignature, utils.SignRequest(c.keypair.Private, method, req.URL.RequestURI(), ts, nonce, raw))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(respBody, &apiErr.Body)
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) CreateEntry(ctx context.Context, title, message string) (*dto.JournalEntryResponse, error) {
	var out dto.JournalEntryResponse
	err := c.do(ctx, http.MethodPost, "/entries", dto.CreateJournalEntryRequest{Title: title, Message: message}, &out)
	return &out, err
}

func (c *Client) UpdateEntry(ctx context.Context, title, message string) (*dto.JournalEntryResponse, error) {
	var out dto.JournalEntryResponse
	err := c.do(ctx, http.MethodPut, entryPath(title), dto.UpdateJournalEntryRequest{Message: message}, &out)
	return &out, err
}

func (c *Client) DeleteEntry(ctx context.Context, title string) (*dto.DeleteJournalEntryResponse, error) {
	var out dto.DeleteJournalEntryResponse
	err := c.do(ctx, http.MethodDelete, entryPath(title), nil, &out)
	return &out, err
}

func (c *Client) GetEntry(ctx context.Context, title string) (*dto.JournalEntryResponse, error) {
	var out dto.JournalEntryResponse
	err := c.do(ctx, http.MethodGet, entryPath(title), nil, &out)
	return &out, err
}

// GetAccount reads an entry by address without authenticating.
func (c *Client) GetAccount(ctx context.Context, address string) (*dto.JournalEntryResponse, error) {
	var out dto.JournalEntryResponse
	err := c.do(ctx, http.MethodGet, "/accounts/"+url.PathEscape(address), nil, &out)
	return &out, err
}

func (c *Client) Wallet(ctx context.Context) (*dto.WalletResponse, error) {
	var out dto.WalletResponse
	err := c.do(ctx, http.MethodGet, "/wallet", nil, &out)
	return &out, err
}

func (c *Client) Airdrop(ctx context.Context, lamports int64) (*dto.WalletResponse, error) {
	var out dto.WalletResponse
	err := c.do(ctx, http.MethodPost, "/wallet/airdrop", dto.AirdropRequest{Lamports: lamports}, &out)
	return &out, err
}

// Login exchanges a signed challenge for a bearer token.
func (c *Client) Login(ctx context.Context) (*dto.LoginResponse, error) {
	ts := c.now().Unix()
	owner := c.keypair.Public.String()
	req := dto.LoginRequest{Owner: owner, Timestamp: ts, Signature: utils.SignLogin(c.keypair.Private, owner, ts)}
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", req, &out)
	return &out, err
}
