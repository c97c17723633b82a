// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/farm/api/events"
	"github.com/vechain/farm/api/transactions"
	"github.com/vechain/farm/farmclient/common"
	"github.com/vechain/farm/thor"
)

func TestClient_GetConfig(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/farming/config", r.URL.Path)
		w.Write([]byte(`{"rewardRate":10,"minimumHoldPeriod":600,"accrualInterval":300,"totalStaked":"0x0"}`))
	}))
	defer ts.Close()

	cfg, err := New(ts.URL + "/").GetConfig()
	require.NoError(t, err)
	assert.Equal(t, uint64(10), cfg.RewardRate)
	assert.Equal(t, uint64(600), cfg.MinimumHoldPeriod)
	assert.Equal(t, uint64(300), cfg.AccrualInterval)
}

func TestClient_GetNonce(t *testing.T) {
	addr := thor.BytesToAddress([]byte("alice"))
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/"+addr.String()+"/nonce", r.URL.Path)
		w.Write([]byte(`{"nonce":7}`))
	}))
	defer ts.Close()

	nonce, err := New(ts.URL).GetNonce(&addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), nonce)
}

func TestClient_SendTransaction(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var raw transactions.RawTx
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "0xc0", raw.Raw)
		w.Write([]byte(`{"op":"claim","reverted":true,"revertReason":"Nothing staked","events":[]}`))
	}))
	defer ts.Close()

	receipt, err := New(ts.URL).SendTransaction(&transactions.RawTx{Raw: "0xc0"})
	require.NoError(t, err)
	assert.True(t, receipt.Reverted)
	assert.Equal(t, "Nothing staked", receipt.RevertReason)
}

func TestClient_FilterEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logs/events", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"txID":null,"criteriaSet":[{"address":null,"name":"Staked","subject":null,"counterparty":null}],"range":null,"options":null,"order":""}`, string(body))
		w.Write([]byte(`[{"name":"Staked","amount":"0x10","meta":{"time":5}}]`))
	}))
	defer ts.Close()

	filtered, err := New(ts.URL).FilterEvents(&events.EventFilter{
		CriteriaSet: []*events.EventCriteria{{Name: "Staked"}},
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Staked", filtered[0].Name)
	assert.Equal(t, uint64(5), filtered[0].Meta.Time)
}

func TestClient_Errors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tokens/missing":
			http.Error(w, "unknown token", http.StatusNotFound)
		case "/farming/config":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			w.Write([]byte(`not json`))
		}
	}))
	defer ts.Close()
	c := New(ts.URL)

	_, err := c.GetToken("missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, err.Error(), "unknown token")

	_, err = c.GetConfig()
	assert.ErrorIs(t, err, common.ErrNot200Status)
	assert.Contains(t, err.Error(), "500 boom")

	_, err = c.GetNodeInfo()
	assert.Error(t, err)

	body, status, err := c.RawHTTPGet("/anything")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "not json", string(body))

	_, _, err = New("http://127.0.0.1:0").RawHTTPPost("/", []byte("{}"))
	assert.Error(t, err)
}
