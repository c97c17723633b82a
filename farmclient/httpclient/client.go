// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package httpclient provides an HTTP client for the farm API.
// It reads farming config, positions, token balances and event logs, and submits signed transactions.
package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vechain/farm/api/accounts"
	"github.com/vechain/farm/api/events"
	"github.com/vechain/farm/api/farming"
	"github.com/vechain/farm/api/node"
	"github.com/vechain/farm/api/tokens"
	"github.com/vechain/farm/api/transactions"
	"github.com/vechain/farm/api/utils/types"
	"github.com/vechain/farm/farmclient/common"
	"github.com/vechain/farm/thor"
)

// Client represents the HTTP client of a farm node.
type Client struct {
	url string
	c   *http.Client
}

// New creates a new Client with the provided URL.
func New(url string) *Client {
	return NewWithHTTP(url, http.DefaultClient)
}

func NewWithHTTP(url string, c *http.Client) *Client {
	return &Client{
		url: strings.TrimSuffix(url, "/"),
		c:   c,
	}
}

// GetConfig retrieves the farming configuration.
func (c *Client) GetConfig() (*farming.Config, error) {
	var cfg farming.Config
	if err := c.getJSON("/farming/config", &cfg); err != nil {
		return nil, fmt.Errorf("unable to retrieve config - %w", err)
	}
	return &cfg, nil
}

// GetPosition retrieves the position of addr, including its pending reward.
func (c *Client) GetPosition(addr *thor.Address) (*farming.Position, error) {
	var pos farming.Position
	if err := c.getJSON("/farming/positions/"+addr.String(), &pos); err != nil {
		return nil, fmt.Errorf("unable to retrieve position - %w", err)
	}
	return &pos, nil
}

// GetToken retrieves token metadata. token is "stake", "reward" or a token address.
func (c *Client) GetToken(token string) (*tokens.Token, error) {
	var t tokens.Token
	if err := c.getJSON("/tokens/"+token, &t); err != nil {
		return nil, fmt.Errorf("unable to retrieve token - %w", err)
	}
	return &t, nil
}

// GetBalance retrieves the token balance of addr.
func (c *Client) GetBalance(token string, addr *thor.Address) (*tokens.Balance, error) {
	var bal tokens.Balance
	if err := c.getJSON("/tokens/"+token+"/balances/"+addr.String(), &bal); err != nil {
		return nil, fmt.Errorf("unable to retrieve balance - %w", err)
	}
	return &bal, nil
}

// GetAllowance retrieves the amount spender may move on behalf of owner.
func (c *Client) GetAllowance(token string, owner, spender *thor.Address) (*tokens.Allowance, error) {
	var allowance tokens.Allowance
	if err := c.getJSON("/tokens/"+token+"/allowances/"+owner.String()+"/"+spender.String(), &allowance); err != nil {
		return nil, fmt.Errorf("unable to retrieve allowance - %w", err)
	}
	return &allowance, nil
}

// GetAccount retrieves nonce and balances of addr.
func (c *Client) GetAccount(addr *thor.Address) (*accounts.Account, error) {
	var acc accounts.Account
	if err := c.getJSON("/accounts/"+addr.String(), &acc); err != nil {
		return nil, fmt.Errorf("unable to retrieve account - %w", err)
	}
	return &acc, nil
}

// GetNonce retrieves the nonce the next transaction of addr must carry.
func (c *Client) GetNonce(addr *thor.Address) (uint64, error) {
	var nonce accounts.Nonce
	if err := c.getJSON("/accounts/"+addr.String()+"/nonce", &nonce); err != nil {
		return 0, fmt.Errorf("unable to retrieve nonce - %w", err)
	}
	return nonce.Nonce, nil
}

// GetNodeInfo retrieves the node description.
func (c *Client) GetNodeInfo() (*node.Status, error) {
	var status node.Status
	if err := c.getJSON("/node/info", &status); err != nil {
		return nil, fmt.Errorf("unable to retrieve node info - %w", err)
	}
	return &status, nil
}

// SendTransaction submits a raw transaction and returns its receipt.
func (c *Client) SendTransaction(obj *transactions.RawTx) (*types.Receipt, error) {
	body, err := c.httpPOST(c.url+"/transactions", obj)
	if err != nil {
		return nil, fmt.Errorf("unable to send raw transaction - %w", err)
	}

	var receipt types.Receipt
	if err = json.Unmarshal(body, &receipt); err != nil {
		return nil, fmt.Errorf("unable to unmarshal receipt - %w", err)
	}
	return &receipt, nil
}

// FilterEvents filters events based on the provided event filter.
func (c *Client) FilterEvents(req *events.EventFilter) ([]*types.FilteredEvent, error) {
	body, err := c.httpPOST(c.url+"/logs/events", req)
	if err != nil {
		return nil, fmt.Errorf("unable to filter events - %w", err)
	}

	var filtered []*types.FilteredEvent
	if err = json.Unmarshal(body, &filtered); err != nil {
		return nil, fmt.Errorf("unable to unmarshal events - %w", err)
	}
	return filtered, nil
}

// RawHTTPPost sends a raw HTTP POST request to the specified path with the provided data.
func (c *Client) RawHTTPPost(path string, calldata any) ([]byte, int, error) {
	data, err := marshal(calldata)
	if err != nil {
		return nil, 0, err
	}
	return c.rawHTTPRequest(http.MethodPost, c.url+path, bytes.NewReader(data))
}

// RawHTTPGet sends a raw HTTP GET request to the specified path.
func (c *Client) RawHTTPGet(path string) ([]byte, int, error) {
	return c.rawHTTPRequest(http.MethodGet, c.url+path, nil)
}

func (c *Client) getJSON(path string, v any) error {
	body, err := c.httpGET(c.url + path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unable to unmarshal response - %w", err)
	}
	return nil
}

func (c *Client) httpGET(url string) ([]byte, error) {
	body, status, err := c.rawHTTPRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return checkStatus(body, status)
}

func (c *Client) httpPOST(url string, payload any) ([]byte, error) {
	data, err := marshal(payload)
	if err != nil {
		return nil, err
	}
	body, status, err := c.rawHTTPRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return checkStatus(body, status)
}

func (c *Client) rawHTTPRequest(method, url string, payload io.Reader) ([]byte, int, error) {
	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to create request - %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to do request - %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to read response body - %w", err)
	}
	return body, resp.StatusCode, nil
}

func marshal(payload any) ([]byte, error) {
	if data, ok := payload.([]byte); ok {
		return data, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal payload - %w", err)
	}
	return data, nil
}

func checkStatus(body []byte, status int) ([]byte, error) {
	switch status {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, strings.TrimSpace(string(body)))
	default:
		return nil, fmt.Errorf("%w: %d %s", common.ErrNot200Status, status, strings.TrimSpace(string(body)))
	}
}
