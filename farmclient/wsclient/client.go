// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wsclient

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/vechain/farm/api/utils/types"
	"github.com/vechain/farm/farmclient/common"
)

type Client struct {
	host   string
	scheme string
}

func NewClient(url string) (*Client, error) {
	var host string
	var scheme string

	if strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "wss://") {
		host = strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "wss://")
		scheme = "wss"
	} else if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "ws://") {
		host = strings.TrimPrefix(strings.TrimPrefix(url, "http://"), "ws://")
		scheme = "ws"
	} else {
		return nil, fmt.Errorf("invalid url")
	}

	return &Client{
		host:   strings.TrimSuffix(host, "/"),
		scheme: scheme,
	}, nil
}

// Subscription is a live stream. Close ends it and closes the message channel.
type Subscription[T any] struct {
	C    <-chan common.EventWrapper[*T]
	conn *websocket.Conn
	done chan struct{}
	once sync.Once
}

func (s *Subscription[T]) Close() (err error) {
	s.once.Do(func() {
		close(s.done)
		err = s.conn.Close()
	})
	return
}

// SubscribeEvents streams farming and token events matching query
// (address, name, subject, counterparty).
func (c *Client) SubscribeEvents(query url.Values) (*Subscription[types.FilteredEvent], error) {
	conn, err := c.connect("/subscriptions/events", query.Encode())
	if err != nil {
		return nil, fmt.Errorf("unable to connect - %w", err)
	}
	return subscribe[types.FilteredEvent](conn), nil
}

// SubscribeReceipts streams receipts, optionally of a single origin.
func (c *Client) SubscribeReceipts(query url.Values) (*Subscription[types.Receipt], error) {
	conn, err := c.connect("/subscriptions/receipts", query.Encode())
	if err != nil {
		return nil, fmt.Errorf("unable to connect - %w", err)
	}
	return subscribe[types.Receipt](conn), nil
}

// subscribe reads JSON messages of type T from conn until it fails.
// The last message on the channel carries the error.
func subscribe[T any](conn *websocket.Conn) *Subscription[T] {
	ch := make(chan common.EventWrapper[*T])
	sub := &Subscription[T]{C: ch, conn: conn, done: make(chan struct{})}

	go func() {
		defer close(ch)
		defer conn.Close()

		for {
			var msg common.EventWrapper[*T]
			var data T
			if err := conn.ReadJSON(&data); err != nil {
				msg.Error = fmt.Errorf("%w: %w", common.ErrUnexpectedMsg, err)
			} else {
				msg.Data = &data
			}
			select {
			case ch <- msg:
			case <-sub.done:
				return
			}
			if msg.Error != nil {
				return
			}
		}
	}()

	return sub
}

func (c *Client) connect(endpoint, rawQuery string) (*websocket.Conn, error) {
	u := url.URL{
		Scheme:   c.scheme,
		Host:     c.host,
		Path:     endpoint,
		RawQuery: rawQuery,
	}

	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%w (status %d)", err, resp.StatusCode)
		}
		return nil, err
	}
	resp.Body.Close()
	return conn, nil
}
