// Package privy implements a custody client for Privy server wallets.
//
// Requests are authenticated with HTTP basic auth using the application id and secret. When an
// authorization private key is configured every request is also signed (see [authorizer]), which
// Privy requires for write operations on wallets owned by an authorization key.
package privy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartcontractkit/wallet-providers/custody"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

const (
	// Name is the custody service name reported by [Client.Name].
	Name = "privy"

	// DefaultBaseURL is the Privy API endpoint.
	DefaultBaseURL = "https://api.privy.io"

	// chainTypeEthereum is the Privy chain type of EVM wallets.
	chainTypeEthereum = "ethereum"

	headerAppID          = "privy-app-id"
	headerAuthSignature  = "privy-authorization-signature"
	headerIdempotencyKey = "privy-idempotency-key"
)

var _ custody.Client = (*Client)(nil)

// APIError is returned when the Privy API responds with a non 2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("privy API returned status %d: %s", e.StatusCode, e.Body)
}

// Client is a Privy server wallet API client.
type Client struct {
	baseURL    string
	appID      string
	appSecret  string
	auth       *authorizer
	httpClient *http.Client
	lggr       logger.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL overrides the Privy API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger.
func WithLogger(lggr logger.Logger) Option {
	return func(c *Client) {
		c.lggr = lggr.Named("privy")
	}
}

// NewClient creates a Privy client. The API key is used as the basic auth secret when no app
// secret is provided.
func NewClient(creds custody.Credentials, opts ...Option) (*Client, error) {
	if creds.AppID == "" {
		return nil, errors.New("privy app id is required")
	}

	secret := creds.AppSecret
	if secret == "" {
		secret = creds.APIKey
	}
	if secret == "" {
		return nil, errors.New("privy app secret or api key is required")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		appID:     creds.AppID,
		appSecret: secret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		lggr: logger.Nop(),
	}

	if creds.AuthorizationPrivateKey != "" {
		auth, err := newAuthorizer(creds.AuthorizationPrivateKey)
		if err != nil {
			return nil, err
		}
		c.auth = auth
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Name returns "privy".
func (*Client) Name() string {
	return Name
}

// walletResponse is the wallet object returned by the Privy API.
type walletResponse struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	ChainType string `json:"chain_type"`
}

func (w walletResponse) toWallet() custody.Wallet {
	return custody.Wallet{ID: w.ID, Address: w.Address}
}

type createWalletRequest struct {
	ChainType           string   `json:"chain_type"`
	AuthorizationKeyIDs []string `json:"authorization_key_ids,omitempty"`
}

// Create creates a new Ethereum server wallet. Each call sends a fresh idempotency key.
func (c *Client) Create(ctx context.Context, req custody.CreateRequest) (custody.Wallet, error) {
	idempotencyKey := uuid.NewString()

	var resp walletResponse
	err := c.do(ctx, http.MethodPost, []string{"v1", "wallets"}, createWalletRequest{
		ChainType:           chainTypeEthereum,
		AuthorizationKeyIDs: req.AuthorizationKeyIDs,
	}, &resp, header{headerIdempotencyKey, idempotencyKey})
	if err != nil {
		return custody.Wallet{}, fmt.Errorf("failed to create wallet: %w", err)
	}

	c.lggr.Infow("Created wallet", "walletID", resp.ID, "address", resp.Address, "idempotencyKey", idempotencyKey)

	return resp.toWallet(), nil
}

// GetWallet fetches an existing wallet.
func (c *Client) GetWallet(ctx context.Context, walletID string) (custody.Wallet, error) {
	if walletID == "" {
		return custody.Wallet{}, errors.New("wallet id is required")
	}

	var resp walletResponse
	if err := c.do(ctx, http.MethodGet, []string{"v1", "wallets", walletID}, nil, &resp); err != nil {
		return custody.Wallet{}, fmt.Errorf("failed to fetch wallet %s: %w", walletID, err)
	}

	return resp.toWallet(), nil
}

// header is an additional privy header. Privy headers are covered by the authorization signature.
type header struct {
	key   string
	value string
}

// do sends a request to the Privy API and decodes the JSON response into out. A nil body sends
// no request body.
func (c *Client) do(ctx context.Context, method string, path []string, body, out any, extra ...header) error {
	reqURL, err := url.JoinPath(c.baseURL, escapePath(path)...)
	if err != nil {
		return fmt.Errorf("failed to build request URL: %w", err)
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	signed := map[string]string{headerAppID: c.appID}
	for _, h := range extra {
		signed[h.key] = h.value
	}

	req.SetBasicAuth(c.appID, c.appSecret)
	for k, v := range signed {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.auth != nil {
		sig, serr := c.auth.sign(method, reqURL, payload, signed)
		if serr != nil {
			return serr
		}
		req.Header.Set(headerAuthSignature, sig)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse privy response: %w", err)
	}

	return nil
}

func escapePath(path []string) []string {
	escaped := make([]string, len(path))
	for i, p := range path {
		escaped[i] = url.PathEscape(p)
	}

	return escaped
}
