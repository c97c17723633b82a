// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package subscriptions

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/vechain/farm/api/events"
	"github.com/vechain/farm/api/utils"
	"github.com/vechain/farm/api/utils/types"
	"github.com/vechain/farm/co"
	"github.com/vechain/farm/log"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

var logger = log.WithContext("pkg", "subscriptions")

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Receipts buffered per connection.
	listenerBuffer = 64
)

type Subscriptions struct {
	dispatcher *receiptDispatcher
	upgrader   *websocket.Upgrader
	choes      *co.Choes
}

func New(rt *runtime.Runtime, allowedOrigins []string) *Subscriptions {
	s := &Subscriptions{
		dispatcher: newReceiptDispatcher(rt),
		upgrader: &websocket.Upgrader{
			EnableCompression: true,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == origin || allowed == "*" {
						return true
					}
				}
				return false
			},
		},
		choes: co.NewChoes(),
	}
	s.choes.Go(func(stop <-chan struct{}) {
		s.dispatcher.DispatchLoop(stop)
	})
	return s
}

func parseAddressQuery(values url.Values, name string) (*thor.Address, error) {
	s := values.Get(name)
	if s == "" {
		return nil, nil
	}
	addr, err := thor.ParseAddress(s)
	if err != nil {
		return nil, utils.BadRequest(errors.WithMessage(err, name))
	}
	return &addr, nil
}

func parseEventCriteria(values url.Values) (*events.EventCriteria, error) {
	var (
		criteria = &events.EventCriteria{Name: values.Get("name")}
		err      error
	)
	if criteria.Address, err = parseAddressQuery(values, "address"); err != nil {
		return nil, err
	}
	if criteria.Subject, err = parseAddressQuery(values, "subject"); err != nil {
		return nil, err
	}
	if criteria.Counterparty, err = parseAddressQuery(values, "counterparty"); err != nil {
		return nil, err
	}
	return criteria, nil
}

func (s *Subscriptions) handleSubscribeEvents(w http.ResponseWriter, req *http.Request) error {
	criteria, err := parseEventCriteria(req.URL.Query())
	if err != nil {
		return err
	}
	return s.serve(w, req, "event", func(receipt *tx.Receipt) []any {
		var msgs []any
		for i, fe := range types.ConvertReceiptEvents(receipt) {
			if criteria.Match(receipt.Events[i]) {
				msgs = append(msgs, fe)
			}
		}
		return msgs
	})
}

func (s *Subscriptions) handleSubscribeReceipts(w http.ResponseWriter, req *http.Request) error {
	origin, err := parseAddressQuery(req.URL.Query(), "origin")
	if err != nil {
		return err
	}
	return s.serve(w, req, "receipt", func(receipt *tx.Receipt) []any {
		if origin != nil && *origin != receipt.Origin {
			return nil
		}
		return []any{types.ConvertReceipt(receipt)}
	})
}

// serve upgrades the connection and pipes the messages made of every
// receipt until the peer leaves or the subscriptions are closed.
func (s *Subscriptions) serve(w http.ResponseWriter, req *http.Request, kind string, convert func(*tx.Receipt) []any) error {
	// listen before the handshake completes, so that nothing executed after it is missed
	ch := make(chan *tx.Receipt, listenerBuffer)
	s.dispatcher.Subscribe(ch)
	defer s.dispatcher.Unsubscribe(ch)

	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		// the upgrader already responded
		logger.Debug("upgrade failed", "err", err)
		return nil
	}

	labels := map[string]string{"type": kind}
	metricActiveSubscriptions().AddWithLabel(1, labels)
	defer metricActiveSubscriptions().AddWithLabel(-1, labels)

	done := make(chan struct{})
	s.choes.Go(func(stop <-chan struct{}) {
		defer close(done)
		s.pipe(conn, ch, stop, convert)
	})
	<-done
	return nil
}

func (s *Subscriptions) pipe(conn *websocket.Conn, ch <-chan *tx.Receipt, stop <-chan struct{}, convert func(*tx.Receipt) []any) {
	defer conn.Close()

	closed := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(closed)
		// the peer is not expected to send anything, reading processes control frames
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
			if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
				logger.Debug("failed to send close message", "err", err)
			}
			return
		case <-closed:
			return
		case receipt := <-ch:
			for _, msg := range convert(receipt) {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(msg); err != nil {
					logger.Debug("failed to write message", "err", err)
					return
				}
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logger.Debug("failed to write ping", "err", err)
				return
			}
		}
	}
}

// Close closes all subscriptions. Hijacked connections are not tracked by
// the http server, so this must be called on shutdown.
func (s *Subscriptions) Close() {
	s.choes.Stop()
	s.choes.Wait()
}

func (s *Subscriptions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/events").
		Methods(http.MethodGet).
		Name("WS /subscriptions/events").
		HandlerFunc(utils.WrapHandlerFunc(s.handleSubscribeEvents))
	sub.Path("/receipts").
		Methods(http.MethodGet).
		Name("WS /subscriptions/receipts").
		HandlerFunc(utils.WrapHandlerFunc(s.handleSubscribeReceipts))
}
