// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package farmclient talks to a farm node over its HTTP and websocket API.
package farmclient

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"net/url"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/vechain/farm/api/accounts"
	"github.com/vechain/farm/api/events"
	"github.com/vechain/farm/api/farming"
	"github.com/vechain/farm/api/node"
	"github.com/vechain/farm/api/tokens"
	"github.com/vechain/farm/api/transactions"
	"github.com/vechain/farm/api/utils/types"
	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/farmclient/httpclient"
	"github.com/vechain/farm/farmclient/wsclient"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

// Token selectors accepted by the token endpoints.
const (
	StakeToken  = "stake"
	RewardToken = "reward"
)

type Client struct {
	httpConn *httpclient.Client
	wsConn   *wsclient.Client

	chainTag atomic.Pointer[byte]
}

func New(url string) *Client {
	return &Client{
		httpConn: httpclient.New(url),
	}
}

func NewWithWS(url string) (*Client, error) {
	wsClient, err := wsclient.NewClient(url)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpConn: httpclient.New(url),
		wsConn:   wsClient,
	}, nil
}

// Config returns the farming configuration.
func (c *Client) Config() (*farming.Config, error) {
	return c.httpConn.GetConfig()
}

// Position returns the position of addr.
func (c *Client) Position(addr *thor.Address) (*farming.Position, error) {
	return c.httpConn.GetPosition(addr)
}

// Token returns token metadata.
func (c *Client) Token(token string) (*tokens.Token, error) {
	return c.httpConn.GetToken(token)
}

// Balance returns the token balance of addr.
func (c *Client) Balance(token string, addr *thor.Address) (*big.Int, error) {
	bal, err := c.httpConn.GetBalance(token, addr)
	if err != nil {
		return nil, err
	}
	return (*big.Int)(bal.Balance), nil
}

// Allowance returns how much spender may transfer from owner.
func (c *Client) Allowance(token string, owner, spender *thor.Address) (*big.Int, error) {
	a, err := c.httpConn.GetAllowance(token, owner, spender)
	if err != nil {
		return nil, err
	}
	return (*big.Int)(a.Allowance), nil
}

func (c *Client) Account(addr *thor.Address) (*accounts.Account, error) {
	return c.httpConn.GetAccount(addr)
}

func (c *Client) Nonce(addr *thor.Address) (uint64, error) {
	return c.httpConn.GetNonce(addr)
}

func (c *Client) NodeInfo() (*node.Status, error) {
	return c.httpConn.GetNodeInfo()
}

// FilterEvents queries the event log.
func (c *Client) FilterEvents(filter *events.EventFilter) ([]*types.FilteredEvent, error) {
	return c.httpConn.FilterEvents(filter)
}

// SendTransaction submits a signed transaction.
func (c *Client) SendTransaction(trx *tx.Transaction) (*types.Receipt, error) {
	data, err := rlp.EncodeToBytes(trx)
	if err != nil {
		return nil, fmt.Errorf("unable to encode transaction - %w", err)
	}
	return c.httpConn.SendTransaction(&transactions.RawTx{Raw: hexutil.Encode(data)})
}

// ChainTag returns the chain tag of the node. It is fetched once and cached.
func (c *Client) ChainTag() (byte, error) {
	if tag := c.chainTag.Load(); tag != nil {
		return *tag, nil
	}
	status, err := c.NodeInfo()
	if err != nil {
		return 0, err
	}
	tag := status.ChainTag
	c.chainTag.Store(&tag)
	return tag, nil
}

// Send fills the chain tag and the nonce of the key's account, signs the
// transaction built by b and submits it.
func (c *Client) Send(key *ecdsa.PrivateKey, b *tx.Builder) (*types.Receipt, error) {
	tag, err := c.ChainTag()
	if err != nil {
		return nil, err
	}
	origin := thor.Address(crypto.PubkeyToAddress(key.PublicKey))
	nonce, err := c.Nonce(&origin)
	if err != nil {
		return nil, err
	}
	trx, err := tx.Sign(b.ChainTag(tag).Nonce(nonce).Build(), key)
	if err != nil {
		return nil, fmt.Errorf("unable to sign transaction - %w", err)
	}
	return c.SendTransaction(trx)
}

// Approve lets spender move amount of token on behalf of the key's account.
func (c *Client) Approve(key *ecdsa.PrivateKey, token, spender thor.Address, amount *big.Int) (*types.Receipt, error) {
	return c.Send(key, tx.NewBuilder(tx.OpApprove).Contract(token).To(spender).Value(amount))
}

// Stake approves the farming contract for amount and stakes it.
// The approval receipt is returned when it reverted.
func (c *Client) Stake(key *ecdsa.PrivateKey, amount *big.Int) (*types.Receipt, error) {
	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}
	receipt, err := c.Approve(key, cfg.StakeToken, builtin.Farming.Address, amount)
	if err != nil || receipt.Reverted {
		return receipt, err
	}
	return c.Send(key, tx.NewBuilder(tx.OpStake).Value(amount))
}

func (c *Client) Claim(key *ecdsa.PrivateKey) (*types.Receipt, error) {
	return c.Send(key, tx.NewBuilder(tx.OpClaim))
}

func (c *Client) Unstake(key *ecdsa.PrivateKey) (*types.Receipt, error) {
	return c.Send(key, tx.NewBuilder(tx.OpUnstake))
}

func (c *Client) SetRewardRate(key *ecdsa.PrivateKey, rate uint64) (*types.Receipt, error) {
	return c.Send(key, tx.NewBuilder(tx.OpSetRewardRate).Value(new(big.Int).SetUint64(rate)))
}

func (c *Client) SetMinimumHoldPeriod(key *ecdsa.PrivateKey, period uint64) (*types.Receipt, error) {
	return c.Send(key, tx.NewBuilder(tx.OpSetMinimumHoldPeriod).Value(new(big.Int).SetUint64(period)))
}

// SubscribeEvents streams events matching the given criteria. Nil criteria match everything.
func (c *Client) SubscribeEvents(criteria *events.EventCriteria) (*wsclient.Subscription[types.FilteredEvent], error) {
	if c.wsConn == nil {
		return nil, fmt.Errorf("not a websocket typed client")
	}
	q := url.Values{}
	if criteria != nil {
		if criteria.Address != nil {
			q.Set("address", criteria.Address.String())
		}
		if criteria.Name != "" {
			q.Set("name", criteria.Name)
		}
		if criteria.Subject != nil {
			q.Set("subject", criteria.Subject.String())
		}
		if criteria.Counterparty != nil {
			q.Set("counterparty", criteria.Counterparty.String())
		}
	}
	return c.wsConn.SubscribeEvents(q)
}

// SubscribeReceipts streams receipts, of origin only when it is not nil.
func (c *Client) SubscribeReceipts(origin *thor.Address) (*wsclient.Subscription[types.Receipt], error) {
	if c.wsConn == nil {
		return nil, fmt.Errorf("not a websocket typed client")
	}
	q := url.Values{}
	if origin != nil {
		q.Set("origin", origin.String())
	}
	return c.wsConn.SubscribeReceipts(q)
}
