// Package wallet implements the JSON-RPC 2.0 client for the pool wallet
// daemon. The daemon is treated as possibly having moved real funds whenever
// a transfer call fails: an error here means "unconfirmed", never "not sent".
package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"poolpay/internal/payout/models"
	"poolpay/pkg/sentinel"
)

// Client talks to the wallet daemon's /json_rpc endpoint.
type Client struct {
	endpoint string
	httpc    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New constructs a wallet client for the daemon at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimSuffix(baseURL, "/") + "/json_rpc",
		httpc:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("wallet rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type transferDestination struct {
	Amount  int64  `json:"amount"`
	Address string `json:"address"`
}

type transferParams struct {
	Destinations []transferDestination `json:"destinations"`
	Fee          int64                 `json:"fee"`
	Mixin        uint64                `json:"mixin"`
	UnlockTime   uint64                `json:"unlock_time"`
}

type transferResult struct {
	TxHash string `json:"tx_hash"`
}

// Transfer submits one batched transfer. The returned tx hash has the
// daemon's angle-bracket wrapping stripped.
func (c *Client) Transfer(ctx context.Context, req models.TransferRequest) (models.TransferResult, error) {
	params := transferParams{
		Destinations: make([]transferDestination, len(req.Destinations)),
		Fee:          req.Fee,
		Mixin:        req.Mixin,
		UnlockTime:   req.UnlockTime,
	}
	for i, d := range req.Destinations {
		params.Destinations[i] = transferDestination{Amount: d.Amount, Address: d.Address}
	}

	var res transferResult
	if err := c.call(ctx, "transfer", params, &res); err != nil {
		return models.TransferResult{}, err
	}
	if res.TxHash == "" {
		return models.TransferResult{}, fmt.Errorf("wallet returned no tx hash")
	}
	return models.TransferResult{TxHash: strings.Trim(res.TxHash, "<>")}, nil
}

func (c *Client) call(ctx context.Context, method string, params, result any) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: "0", Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpRes, err := c.httpc.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s call: %w: %w", method, sentinel.ErrUnavailable, err)
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode != http.StatusOK {
		return fmt.Errorf("%s call: unexpected status %d", method, httpRes.StatusCode)
	}

	var rpcRes rpcResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&rpcRes); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if rpcRes.Error != nil {
		return rpcRes.Error
	}
	if err := json.Unmarshal(rpcRes.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
