// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vechain/farm/api/farming"
	"github.com/vechain/farm/api/node"
	"github.com/vechain/farm/api/utils/types"
	"github.com/vechain/farm/genesis"
	"github.com/vechain/farm/test/testfarm"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

func newTestServer(t *testing.T, opts Options) (*testfarm.Farm, *httptest.Server) {
	farm, err := testfarm.NewDefault()
	require.NoError(t, err)

	opts.NodeInfo = node.Info{Name: "farm", GenesisID: farm.Genesis().ID()}
	handler, closeFn := New(farm.Runtime(), farm.LogDB(), opts)
	ts := httptest.NewServer(handler)
	t.Cleanup(func() {
		closeFn()
		ts.Close()
		farm.Close()
	})
	return farm, ts
}

func TestRoutes(t *testing.T) {
	_, ts := newTestServer(t, Options{AllowedOrigins: "*", LogsLimit: 100, EnableMetrics: true})

	for _, path := range []string{
		"/farming/config",
		"/farming/positions/" + genesis.DevAccounts()[0].Address.String(),
		"/tokens/stake",
		"/tokens/reward/balances/" + genesis.DevAccounts()[0].Address.String(),
		"/accounts/" + genesis.DevAccounts()[0].Address.String(),
		"/accounts/" + genesis.DevAccounts()[0].Address.String() + "/nonce",
		"/node/info",
	} {
		_, code := httpGet(t, ts.URL+path)
		assert.Equal(t, http.StatusOK, code, path)
	}

	res, err := http.Post(ts.URL+"/logs/events", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	_, code := httpGet(t, ts.URL+"/debug/pprof/")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSkipLogs(t *testing.T) {
	_, ts := newTestServer(t, Options{AllowedOrigins: "*", SkipLogs: true})

	res, err := http.Post(ts.URL+"/logs/events", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCORS(t *testing.T) {
	_, ts := newTestServer(t, Options{AllowedOrigins: "https://farm.example"})

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/farming/config", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://farm.example")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "https://farm.example", res.Header.Get("Access-Control-Allow-Origin"))

	var cfg farming.Config
	require.NoError(t, json.NewDecoder(res.Body).Decode(&cfg))
	assert.Equal(t, thor.InitialRewardRate, cfg.RewardRate)
}

func TestWebsocketThroughMiddlewares(t *testing.T) {
	farm, ts := newTestServer(t, Options{AllowedOrigins: "*", EnableMetrics: true})

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/subscriptions/events?name=" + tx.EventStaked
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	resp.Body.Close()
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	alice := genesis.DevAccounts()[1]
	receipt, err := farm.Stake(alice, testfarm.Units(1, thor.DefaultStakeTokenDecimals))
	require.NoError(t, err)

	var fe types.FilteredEvent
	require.NoError(t, conn.ReadJSON(&fe))
	assert.Equal(t, alice.Address, fe.Subject)
	assert.Equal(t, receipt.TxID, fe.Meta.TxID)
}
